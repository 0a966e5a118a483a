package pipeline

import (
	"context"
	"log/slog"

	"github.com/nao1215/snykdup/internal/analyzer"
	"github.com/nao1215/snykdup/internal/model"
)

// ScanState carries the accumulated results of one run through the pipeline.
// It is owned by a single goroutine for the duration of the run; no locking
// is needed.
type ScanState struct {
	// OrgID is the organization being scanned.
	OrgID string

	// Projects is the complete ordered list of fetched raw project records.
	Projects []model.Project

	// Targets maps target ID to the target records embedded in responses.
	Targets map[string]model.Target

	// Duplicates is the analyzer's two-level duplicate mapping.
	// Populated by the analyze step.
	Duplicates *analyzer.Duplicates
}

// NewScanState creates a ScanState for the given organization.
func NewScanState(orgID string) *ScanState {
	return &ScanState{
		OrgID:   orgID,
		Targets: make(map[string]model.Target),
	}
}

// Step defines the interface that all pipeline steps must implement.
// Steps are executed in sequence, with each step receiving the accumulated
// state from previous steps.
type Step interface {
	// Do executes the pipeline step.
	// It receives the context for cancellation, and the state to modify.
	Do(ctx context.Context, state *ScanState) error

	// Name returns the step's name for logging purposes.
	Name() string
}

// Pipeline orchestrates the execution of multiple steps.
// It maintains a list of steps and executes them in order.
type Pipeline struct {
	// steps contains the ordered list of steps to execute.
	steps []Step

	// logger is used for structured logging during execution.
	logger *slog.Logger
}

// Option is a function that configures a Pipeline.
// This follows the functional options pattern for clean API design.
type Option func(*Pipeline)

// WithLogger sets a custom logger for the pipeline.
// If not set, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// New creates a new Pipeline with the given options.
// Steps should be added using AddStep after creation.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		steps: make([]Step, 0),
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		p.logger = slog.Default()
	}

	return p
}

// AddStep appends a step to the pipeline.
// Steps are executed in the order they are added.
func (p *Pipeline) AddStep(step Step) {
	p.steps = append(p.steps, step)
}

// AddSteps appends multiple steps to the pipeline.
func (p *Pipeline) AddSteps(steps ...Step) {
	p.steps = append(p.steps, steps...)
}

// StepCount returns the number of steps in the pipeline.
func (p *Pipeline) StepCount() int {
	return len(p.steps)
}

// StepNames returns the names of the steps in execution order.
func (p *Pipeline) StepNames() []string {
	names := make([]string, 0, len(p.steps))
	for _, step := range p.steps {
		names = append(names, step.Name())
	}
	return names
}

// Execute runs all pipeline steps in sequence.
// It respects context cancellation and logs each step's execution.
// The first step error aborts the run; fetching and analysis have no
// meaningful partial-continue semantics beyond what the fetch step itself
// implements (its soft stop on API error payloads).
func (p *Pipeline) Execute(ctx context.Context, state *ScanState) error {
	for _, step := range p.steps {
		// Check for cancellation before starting each step
		select {
		case <-ctx.Done():
			p.logger.Warn("pipeline cancelled",
				"step", step.Name(),
				"reason", ctx.Err(),
			)
			return ctx.Err()
		default:
		}

		p.logger.Debug("executing step", "step", step.Name())

		if err := step.Do(ctx, state); err != nil {
			p.logger.Error("step failed", "step", step.Name(), "error", err)
			return err
		}
	}

	return nil
}
