package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"testing"
)

// mockStep is a test helper that implements the Step interface.
type mockStep struct {
	name      string
	doFunc    func(ctx context.Context, state *ScanState) error
	callCount int
}

// Do implements Step.Do.
func (m *mockStep) Do(ctx context.Context, state *ScanState) error {
	m.callCount++
	if m.doFunc != nil {
		return m.doFunc(ctx, state)
	}
	return nil
}

// Name implements Step.Name.
func (m *mockStep) Name() string {
	return m.name
}

// TestPipelineNew tests the Pipeline constructor.
func TestPipelineNew(t *testing.T) {
	t.Parallel()

	t.Run("creates pipeline with default settings", func(t *testing.T) {
		t.Parallel()

		p := New()

		if p == nil {
			t.Fatal("expected non-nil pipeline")
		}
		if p.StepCount() != 0 {
			t.Errorf("expected 0 steps, got %d", p.StepCount())
		}
	})

	t.Run("applies WithLogger option", func(t *testing.T) {
		t.Parallel()

		logger := slog.New(slog.DiscardHandler)
		p := New(WithLogger(logger))

		if p.logger != logger {
			t.Error("expected custom logger to be applied")
		}
	})
}

// TestPipelineAddStep tests adding steps to the pipeline.
func TestPipelineAddStep(t *testing.T) {
	t.Parallel()

	t.Run("adds single step", func(t *testing.T) {
		t.Parallel()

		p := New()
		p.AddStep(&mockStep{name: "test-step"})

		if p.StepCount() != 1 {
			t.Errorf("expected 1 step, got %d", p.StepCount())
		}
	})

	t.Run("maintains step order", func(t *testing.T) {
		t.Parallel()

		p := New()
		p.AddSteps(
			&mockStep{name: "first"},
			&mockStep{name: "second"},
			&mockStep{name: "third"},
		)

		names := p.StepNames()
		expected := []string{"first", "second", "third"}
		for i, name := range names {
			if name != expected[i] {
				t.Errorf("step %d: got %q, expected %q", i, name, expected[i])
			}
		}
	})
}

// TestPipelineExecute tests pipeline execution.
func TestPipelineExecute(t *testing.T) {
	t.Parallel()

	t.Run("executes all steps in order", func(t *testing.T) {
		t.Parallel()

		executionOrder := make([]string, 0)
		record := func(name string) *mockStep {
			return &mockStep{
				name: name,
				doFunc: func(_ context.Context, _ *ScanState) error {
					executionOrder = append(executionOrder, name)
					return nil
				},
			}
		}

		p := New(WithLogger(slog.New(slog.DiscardHandler)))
		p.AddSteps(record("fetch"), record("analyze"))

		if err := p.Execute(context.Background(), NewScanState("org-1")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(executionOrder) != 2 || executionOrder[0] != "fetch" || executionOrder[1] != "analyze" {
			t.Errorf("unexpected execution order: %v", executionOrder)
		}
	})

	t.Run("stops on first error", func(t *testing.T) {
		t.Parallel()

		wantErr := errors.New("fetch failed")
		failing := &mockStep{
			name: "failing",
			doFunc: func(_ context.Context, _ *ScanState) error {
				return wantErr
			},
		}
		never := &mockStep{name: "never"}

		p := New(WithLogger(slog.New(slog.DiscardHandler)))
		p.AddSteps(failing, never)

		err := p.Execute(context.Background(), NewScanState("org-1"))
		if !errors.Is(err, wantErr) {
			t.Errorf("expected wrapped step error, got %v", err)
		}
		if never.callCount != 0 {
			t.Errorf("expected subsequent step to be skipped, called %d times", never.callCount)
		}
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		step := &mockStep{name: "step"}

		p := New(WithLogger(slog.New(slog.DiscardHandler)))
		p.AddStep(step)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if err := p.Execute(ctx, NewScanState("org-1")); !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
		if step.callCount != 0 {
			t.Errorf("expected no step execution after cancellation, called %d times", step.callCount)
		}
	})

	t.Run("steps share the scan state", func(t *testing.T) {
		t.Parallel()

		writer := &mockStep{
			name: "writer",
			doFunc: func(_ context.Context, state *ScanState) error {
				state.OrgID = "rewritten"
				return nil
			},
		}

		var seen string
		reader := &mockStep{
			name: "reader",
			doFunc: func(_ context.Context, state *ScanState) error {
				seen = state.OrgID
				return nil
			},
		}

		p := New(WithLogger(slog.New(slog.DiscardHandler)))
		p.AddSteps(writer, reader)

		if err := p.Execute(context.Background(), NewScanState("org-1")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if seen != "rewritten" {
			t.Errorf("expected shared state, reader saw %q", seen)
		}
	})
}

// TestNewScanState tests scan state construction.
func TestNewScanState(t *testing.T) {
	t.Parallel()

	state := NewScanState("org-1")

	if state.OrgID != "org-1" {
		t.Errorf("unexpected org ID: %q", state.OrgID)
	}
	if state.Targets == nil {
		t.Error("expected non-nil target map")
	}
	if state.Duplicates != nil {
		t.Error("expected nil duplicates before analysis")
	}
}
