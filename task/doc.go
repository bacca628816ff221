// Package task marks functions and methods as background tasks.
//
// A task is declared by attaching the Task marker to a function component
// or a class method:
//
//	component.Register(component.NewModule("apps.reports",
//	    component.Func("send_report", SendReport,
//	        task.Task(task.WithRetries(3), task.WithTimeout(time.Minute)),
//	    ),
//	))
//
// The scanner lists every marked declaration via FindTasks. This package
// carries only the markers; scheduling and execution are left to the task
// queue the application chooses.
package task
