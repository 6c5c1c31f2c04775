// Package flow implements the submit/poll/rollback pattern shared by every
// asynchronous Akamai control-plane operation. DNS changelist submission,
// property activation, certificate deployment, and network-list activation
// all follow the same lifecycle: a write is accepted immediately, the
// resource transitions through pending states, and the caller polls until a
// terminal state is reached. On a failed terminal state the submitted change
// can often be compensated (discard the changelist, cancel the activation).
package flow

import (
	"context"
	"errors"
	"fmt"
	"time"

	apierrors "github.com/acedergren/alecs-mcp-server-go/internal/errors"
	"github.com/acedergren/alecs-mcp-server-go/metrics"
)

const (
	// DefaultInterval between status polls
	DefaultInterval = 5 * time.Second

	// DefaultTimeout before a pending operation is abandoned
	DefaultTimeout = 10 * time.Minute
)

// ErrTimeout is returned when an operation stays pending past the deadline.
var ErrTimeout = errors.New("timed out waiting for terminal state")

// PollConfig controls the polling loop.
type PollConfig struct {
	Interval time.Duration // defaults to DefaultInterval
	Timeout  time.Duration // defaults to DefaultTimeout
}

func (c PollConfig) withDefaults() PollConfig {
	if c.Interval <= 0 {
		c.Interval = DefaultInterval
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	return c
}

// CheckFunc inspects remote state once. Returning done=true stops polling.
// Transient errors should be returned; the loop stops on any error since the
// underlying session already retries transport failures.
type CheckFunc func(ctx context.Context) (done bool, err error)

// Poll invokes check at the configured interval until it reports done, the
// timeout elapses, or the context is canceled. The first check runs
// immediately; submissions often complete synchronously on fast changes.
func Poll(ctx context.Context, operation string, cfg PollConfig, check CheckFunc) error {
	cfg = cfg.withDefaults()

	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	ticker := time.NewTicker(cfg.Interval)
	defer ticker.Stop()

	for {
		metrics.WorkflowPolls.WithLabelValues(operation).Inc()
		done, err := check(ctx)
		if err != nil {
			return err
		}
		if done {
			return nil
		}

		select {
		case <-ticker.C:
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return fmt.Errorf("%s: %w", operation, ErrTimeout)
			}
			return ctx.Err()
		}
	}
}

// Status is the observed state of an asynchronous operation.
type Status struct {
	State    string // raw state from the API ("PENDING", "ACTIVE", "FAILED", ...)
	Terminal bool
	Failed   bool // only meaningful when Terminal
	Detail   string
}

// Workflow describes one asynchronous operation end to end. Submit must be
// idempotent with respect to retries at the transport layer: the control
// plane deduplicates resubmission of an identical changelist or activation.
type Workflow[T any] struct {
	// Operation names the workflow for errors and metrics,
	// e.g. "dns changelist submit".
	Operation string

	// Submit starts the operation and returns a handle used to poll it
	// (activation ID, zone name, enrollment ID).
	Submit func(ctx context.Context) (T, error)

	// Check reports the operation's current status.
	Check func(ctx context.Context, handle T) (Status, error)

	// Rollback compensates a submitted operation that failed or timed out.
	// Optional; nil means the operation has no compensation.
	Rollback func(ctx context.Context, handle T) error

	Poll PollConfig
}

// Run submits the operation and polls it to a terminal state. When the
// terminal state is a failure, or polling times out, Rollback runs (with a
// fresh context so cancellation does not strand the remote side) and the
// returned error is a *errors.WorkflowError carrying the terminal state.
func (w Workflow[T]) Run(ctx context.Context) (T, Status, error) {
	var zero T

	handle, err := w.Submit(ctx)
	if err != nil {
		metrics.RecordWorkflowOutcome(metricName(w.Operation), false)
		return zero, Status{}, fmt.Errorf("%s: submit failed: %w", w.Operation, err)
	}

	var last Status
	pollErr := Poll(ctx, metricName(w.Operation), w.Poll, func(ctx context.Context) (bool, error) {
		status, err := w.Check(ctx, handle)
		if err != nil {
			return false, err
		}
		last = status
		return status.Terminal, nil
	})

	if pollErr == nil && !last.Failed {
		metrics.RecordWorkflowOutcome(metricName(w.Operation), true)
		return handle, last, nil
	}

	rolledBack := w.rollback(handle)
	metrics.RecordWorkflowOutcome(metricName(w.Operation), false)

	state := last.State
	if state == "" {
		state = "UNKNOWN"
	}
	return handle, last, &apierrors.WorkflowError{
		Operation:  w.Operation,
		State:      state,
		RolledBack: rolledBack,
		Cause:      cause(pollErr, last),
	}
}

// rollback runs compensation on a detached context; the caller's context may
// already be canceled or past its deadline.
func (w Workflow[T]) rollback(handle T) bool {
	if w.Rollback == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return w.Rollback(ctx, handle) == nil
}

func cause(pollErr error, last Status) error {
	if pollErr != nil {
		return pollErr
	}
	if last.Detail != "" {
		return errors.New(last.Detail)
	}
	return nil
}

// metricName flattens an operation name for use as a metric label.
func metricName(operation string) string {
	out := make([]byte, len(operation))
	for i := 0; i < len(operation); i++ {
		c := operation[i]
		if c == ' ' {
			c = '-'
		}
		out[i] = c
	}
	return string(out)
}
