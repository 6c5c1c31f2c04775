package flow

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	apierrors "github.com/acedergren/alecs-mcp-server-go/internal/errors"
)

func fastPoll() PollConfig {
	return PollConfig{Interval: 5 * time.Millisecond, Timeout: 500 * time.Millisecond}
}

func TestPoll_CompletesImmediately(t *testing.T) {
	var checks int32
	err := Poll(context.Background(), "test", fastPoll(), func(ctx context.Context) (bool, error) {
		atomic.AddInt32(&checks, 1)
		return true, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if atomic.LoadInt32(&checks) != 1 {
		t.Errorf("checks = %d, want 1 (first check runs before any wait)", checks)
	}
}

func TestPoll_EventuallyDone(t *testing.T) {
	var checks int32
	err := Poll(context.Background(), "test", fastPoll(), func(ctx context.Context) (bool, error) {
		return atomic.AddInt32(&checks, 1) >= 3, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := atomic.LoadInt32(&checks); got != 3 {
		t.Errorf("checks = %d, want 3", got)
	}
}

func TestPoll_Timeout(t *testing.T) {
	cfg := PollConfig{Interval: 5 * time.Millisecond, Timeout: 30 * time.Millisecond}
	err := Poll(context.Background(), "test", cfg, func(ctx context.Context) (bool, error) {
		return false, nil
	})
	if !errors.Is(err, ErrTimeout) {
		t.Errorf("err = %v, want ErrTimeout", err)
	}
}

func TestPoll_CheckError(t *testing.T) {
	wantErr := errors.New("status endpoint 500")
	err := Poll(context.Background(), "test", fastPoll(), func(ctx context.Context) (bool, error) {
		return false, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Errorf("err = %v, want %v", err, wantErr)
	}
}

func TestPoll_ContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()
	err := Poll(ctx, "test", PollConfig{Interval: time.Second, Timeout: time.Minute}, func(ctx context.Context) (bool, error) {
		return false, nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestWorkflow_Success(t *testing.T) {
	var polls int32
	w := Workflow[string]{
		Operation: "dns changelist submit",
		Poll:      fastPoll(),
		Submit: func(ctx context.Context) (string, error) {
			return "example.com", nil
		},
		Check: func(ctx context.Context, zone string) (Status, error) {
			if atomic.AddInt32(&polls, 1) < 3 {
				return Status{State: "PENDING"}, nil
			}
			return Status{State: "ACTIVE", Terminal: true}, nil
		},
		Rollback: func(ctx context.Context, zone string) error {
			t.Error("rollback must not run on success")
			return nil
		},
	}

	handle, status, err := w.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if handle != "example.com" {
		t.Errorf("handle = %q, want example.com", handle)
	}
	if status.State != "ACTIVE" {
		t.Errorf("state = %q, want ACTIVE", status.State)
	}
}

func TestWorkflow_SubmitError(t *testing.T) {
	wantErr := errors.New("validation failed")
	w := Workflow[int]{
		Operation: "property activation",
		Poll:      fastPoll(),
		Submit: func(ctx context.Context) (int, error) {
			return 0, wantErr
		},
		Check: func(ctx context.Context, id int) (Status, error) {
			t.Error("check must not run when submit fails")
			return Status{}, nil
		},
	}

	_, _, err := w.Run(context.Background())
	if !errors.Is(err, wantErr) {
		t.Errorf("err = %v, want wrapped submit error", err)
	}
	var wfErr *apierrors.WorkflowError
	if errors.As(err, &wfErr) {
		t.Error("submit failure should not produce a WorkflowError")
	}
}

func TestWorkflow_FailedTerminalStateRollsBack(t *testing.T) {
	var rolledBack atomic.Bool
	w := Workflow[string]{
		Operation: "dns changelist submit",
		Poll:      fastPoll(),
		Submit: func(ctx context.Context) (string, error) {
			return "example.com", nil
		},
		Check: func(ctx context.Context, zone string) (Status, error) {
			return Status{State: "FAILED", Terminal: true, Failed: true, Detail: "zone did not validate"}, nil
		},
		Rollback: func(ctx context.Context, zone string) error {
			rolledBack.Store(true)
			return nil
		},
	}

	_, status, err := w.Run(context.Background())
	if err == nil {
		t.Fatal("expected error for failed terminal state")
	}
	if !rolledBack.Load() {
		t.Error("expected rollback to run")
	}
	if status.State != "FAILED" {
		t.Errorf("state = %q, want FAILED", status.State)
	}

	var wfErr *apierrors.WorkflowError
	if !errors.As(err, &wfErr) {
		t.Fatalf("err = %T, want *WorkflowError", err)
	}
	if !wfErr.RolledBack {
		t.Error("WorkflowError should report rollback")
	}
	if wfErr.State != "FAILED" {
		t.Errorf("WorkflowError state = %q, want FAILED", wfErr.State)
	}
}

func TestWorkflow_TimeoutRollsBack(t *testing.T) {
	var rolledBack atomic.Bool
	w := Workflow[string]{
		Operation: "certificate deployment",
		Poll:      PollConfig{Interval: 5 * time.Millisecond, Timeout: 25 * time.Millisecond},
		Submit: func(ctx context.Context) (string, error) {
			return "enrollment-1", nil
		},
		Check: func(ctx context.Context, id string) (Status, error) {
			return Status{State: "IN_PROGRESS"}, nil
		},
		Rollback: func(ctx context.Context, id string) error {
			rolledBack.Store(true)
			return nil
		},
	}

	_, _, err := w.Run(context.Background())
	var wfErr *apierrors.WorkflowError
	if !errors.As(err, &wfErr) {
		t.Fatalf("err = %T (%v), want *WorkflowError", err, err)
	}
	if !errors.Is(err, ErrTimeout) {
		t.Errorf("err should wrap ErrTimeout, got %v", err)
	}
	if !rolledBack.Load() {
		t.Error("expected rollback after timeout")
	}
	if wfErr.State != "IN_PROGRESS" {
		t.Errorf("state = %q, want last observed IN_PROGRESS", wfErr.State)
	}
}

func TestWorkflow_RollbackFailureReported(t *testing.T) {
	w := Workflow[string]{
		Operation: "network list activation",
		Poll:      fastPoll(),
		Submit: func(ctx context.Context) (string, error) {
			return "atv_1", nil
		},
		Check: func(ctx context.Context, id string) (Status, error) {
			return Status{State: "ABORTED", Terminal: true, Failed: true}, nil
		},
		Rollback: func(ctx context.Context, id string) error {
			return errors.New("discard failed too")
		},
	}

	_, _, err := w.Run(context.Background())
	var wfErr *apierrors.WorkflowError
	if !errors.As(err, &wfErr) {
		t.Fatalf("err = %T, want *WorkflowError", err)
	}
	if wfErr.RolledBack {
		t.Error("failed rollback must not be reported as rolled back")
	}
}

func TestWorkflow_NoRollbackConfigured(t *testing.T) {
	w := Workflow[string]{
		Operation: "property activation",
		Poll:      fastPoll(),
		Submit: func(ctx context.Context) (string, error) {
			return "atv_2", nil
		},
		Check: func(ctx context.Context, id string) (Status, error) {
			return Status{State: "FAILED", Terminal: true, Failed: true}, nil
		},
	}

	_, _, err := w.Run(context.Background())
	var wfErr *apierrors.WorkflowError
	if !errors.As(err, &wfErr) {
		t.Fatalf("err = %T, want *WorkflowError", err)
	}
	if wfErr.RolledBack {
		t.Error("no rollback configured, must not be reported as rolled back")
	}
}
