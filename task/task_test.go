package task

import (
	"testing"
	"time"

	"github.com/kbukum/turbokit/component"
)

func TestTask_Defaults(t *testing.T) {
	tags := &component.Tags{}
	Task()(tags)

	if !tags.IsTask {
		t.Error("expected IsTask")
	}
	if tags.TaskName != "" {
		t.Errorf("expected empty name before declaration, got %q", tags.TaskName)
	}
	if tags.RetryCount != 0 || tags.Timeout != 0 {
		t.Errorf("expected zero retries and timeout, got %d, %v", tags.RetryCount, tags.Timeout)
	}
	if !tags.HasDecorator("task") {
		t.Errorf("expected decorator name 'task', got %q", tags.DecoratorName)
	}
}

func TestTask_Options(t *testing.T) {
	tags := &component.Tags{}
	Task(
		WithName("nightly_rollup"),
		WithDescription("rolls up usage counters"),
		WithRetries(3),
		WithTimeout(time.Minute),
	)(tags)

	if tags.TaskName != "nightly_rollup" {
		t.Errorf("unexpected name: %q", tags.TaskName)
	}
	if tags.TaskDescription != "rolls up usage counters" {
		t.Errorf("unexpected description: %q", tags.TaskDescription)
	}
	if tags.RetryCount != 3 {
		t.Errorf("unexpected retries: %d", tags.RetryCount)
	}
	if tags.Timeout != time.Minute {
		t.Errorf("unexpected timeout: %v", tags.Timeout)
	}
}

func TestTask_NameDefaultsToDeclaration(t *testing.T) {
	c := component.Func("send_report", func() {}, Task())
	if c.Tags.TaskName != "send_report" {
		t.Errorf("expected name to default to the declared name, got %q", c.Tags.TaskName)
	}

	named := component.Func("send_report", func() {}, Task(WithName("reports.send")))
	if named.Tags.TaskName != "reports.send" {
		t.Errorf("expected explicit name to win, got %q", named.Tags.TaskName)
	}
}
