package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// TaskRun tracks one execution of a discovered task across tracing and
// metrics. The caller starts a span before running the task function and
// ends the run with the outcome.
type TaskRun struct {
	Task      string
	Module    string
	RequestID string
	StartTime time.Time
	Metrics   *Metrics
}

// NewTaskRun creates a task run record. If metrics is nil, metric
// recording is silently skipped.
func NewTaskRun(task, module string, metrics *Metrics) *TaskRun {
	return &TaskRun{
		Task:      task,
		Module:    module,
		StartTime: time.Now(),
		Metrics:   metrics,
	}
}

// taskRunKey is the context key for TaskRun.
type taskRunKey struct{}

// WithTaskRun stores a TaskRun in the context.
func WithTaskRun(ctx context.Context, tr *TaskRun) context.Context {
	return context.WithValue(ctx, taskRunKey{}, tr)
}

// TaskRunFromContext retrieves the TaskRun from context, or nil.
func TaskRunFromContext(ctx context.Context) *TaskRun {
	if tr, ok := ctx.Value(taskRunKey{}).(*TaskRun); ok {
		return tr
	}
	return nil
}

// Start opens the task span and records the run start metric.
func (tr *TaskRun) Start(ctx context.Context) (context.Context, trace.Span) {
	ctx, span := StartSpan(ctx, SpanTaskRun)
	span.SetAttributes(
		attribute.String(AttrTaskName, tr.Task),
		attribute.String(AttrModuleID, tr.Module),
	)
	if tr.RequestID != "" {
		span.SetAttributes(attribute.String(AttrRequestID, tr.RequestID))
	}

	if tr.Metrics != nil {
		tr.Metrics.RecordTaskStart(ctx)
	}
	return ctx, span
}

// End closes the span and records the run-end metrics.
func (tr *TaskRun) End(ctx context.Context, span trace.Span, status string, err error) {
	duration := time.Since(tr.StartTime)

	if err != nil {
		span.RecordError(err)
		span.SetAttributes(attribute.String(AttrErrorMessage, err.Error()))
	}

	span.SetAttributes(
		attribute.String(AttrStatus, status),
		attribute.Int64(AttrDurationMs, duration.Milliseconds()),
	)
	span.End()

	if tr.Metrics != nil {
		tr.Metrics.RecordTaskEnd(ctx, tr.Task, tr.Module, status, duration)
	}
}

// Duration returns the elapsed time since the run started.
func (tr *TaskRun) Duration() time.Duration {
	return time.Since(tr.StartTime)
}
