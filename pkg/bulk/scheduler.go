// Package bulk runs per-id requests one after another in a fixed order.
package bulk

import (
	"context"
	"errors"
	"fmt"
)

// Strategy decides what happens to the remaining tasks after one fails
type Strategy int

const (
	// StopOnFirstError skips every task after the first failure
	StopOnFirstError Strategy = iota
	// ContinueOnError runs every task and reports all failures
	ContinueOnError
)

func (s Strategy) String() string {
	switch s {
	case StopOnFirstError:
		return "stop"
	case ContinueOnError:
		return "continue"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy maps the config value to a Strategy. An empty value means StopOnFirstError.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "", "stop":
		return StopOnFirstError, nil
	case "continue":
		return ContinueOnError, nil
	}
	return StopOnFirstError, fmt.Errorf("unknown bulk strategy %q (want stop or continue)", name)
}

// Task is one request of a bulk operation
type Task struct {
	ID  int64
	Run func(ctx context.Context) error
}

// Failure is a task that returned an error
type Failure struct {
	ID  int64
	Err error
}

// Outcome records what happened to every task. Effects of completed tasks are
// never rolled back.
type Outcome struct {
	Completed []int64
	Failed    []Failure
	Skipped   []int64
}

// Partial reports whether some tasks succeeded and some did not
func (o Outcome) Partial() bool {
	return len(o.Completed) > 0 && (len(o.Failed) > 0 || len(o.Skipped) > 0)
}

// TaskError is returned by Run for the first failing task
type TaskError struct {
	ID  int64
	Err error
}

func (e *TaskError) Error() string {
	return fmt.Sprintf("id %d: %v", e.ID, e.Err)
}

func (e *TaskError) Unwrap() error {
	return e.Err
}

// Scheduler runs tasks sequentially
type Scheduler struct {
	Strategy Strategy
}

func NewScheduler(strategy Strategy) *Scheduler {
	return &Scheduler{Strategy: strategy}
}

// Run executes tasks in order, never more than one at a time.
// The returned error is a *TaskError for the first failure, or ctx.Err() when the
// context ends before every task ran. Tasks not started are listed in Outcome.Skipped.
func (s *Scheduler) Run(ctx context.Context, tasks []Task) (Outcome, error) {
	var out Outcome
	var firstErr error

	for i, task := range tasks {
		if err := ctx.Err(); err != nil {
			out.Skipped = append(out.Skipped, idsOf(tasks[i:])...)
			if firstErr == nil {
				firstErr = err
			}
			return out, firstErr
		}

		if err := task.Run(ctx); err != nil {
			out.Failed = append(out.Failed, Failure{ID: task.ID, Err: err})
			if firstErr == nil {
				firstErr = &TaskError{ID: task.ID, Err: err}
			}
			if s.Strategy == StopOnFirstError {
				out.Skipped = append(out.Skipped, idsOf(tasks[i+1:])...)
				return out, firstErr
			}
			continue
		}
		out.Completed = append(out.Completed, task.ID)
	}

	return out, firstErr
}

// FailedID returns the id of the failing task if err came from Run
func FailedID(err error) (int64, bool) {
	var te *TaskError
	if errors.As(err, &te) {
		return te.ID, true
	}
	return 0, false
}

func idsOf(tasks []Task) []int64 {
	ids := make([]int64, 0, len(tasks))
	for _, t := range tasks {
		ids = append(ids, t.ID)
	}
	return ids
}
