package pipeline

import (
	"context"
	"log/slog"

	"github.com/nao1215/snykdup/internal/analyzer"
	"github.com/nao1215/snykdup/internal/snyk"
)

// FetchStep retrieves every project page of the organization and collects
// the embedded target records. Pagination is strictly sequential: each
// request depends on the previous response's next link.
type FetchStep struct {
	// client is the Snyk REST API client.
	client *snyk.Client

	// logger for structured logging.
	logger *slog.Logger
}

// FetchStepOption configures a FetchStep.
type FetchStepOption func(*FetchStep)

// WithFetchLogger sets a custom logger for the fetch step.
func WithFetchLogger(logger *slog.Logger) FetchStepOption {
	return func(s *FetchStep) {
		s.logger = logger
	}
}

// NewFetchStep creates a new fetch step using the given client.
func NewFetchStep(client *snyk.Client, opts ...FetchStepOption) *FetchStep {
	s := &FetchStep{
		client: client,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Name returns the step name.
func (s *FetchStep) Name() string {
	return "fetch_projects"
}

// Do executes the fetch step.
// Transport failures abort the pipeline; an API error payload inside a page
// is a soft stop handled by the client, which still returns everything
// accumulated up to that point.
func (s *FetchStep) Do(ctx context.Context, state *ScanState) error {
	s.logger.Info("fetching projects", "org", state.OrgID)

	projects, targets, err := s.client.FetchOrgProjects(ctx, state.OrgID)
	if err != nil {
		return err
	}

	state.Projects = projects
	state.Targets = targets

	s.logger.Info("fetch completed",
		"totalProjects", len(projects),
		"uniqueTargets", len(targets),
	)
	return nil
}

// AnalyzeStep groups the fetched projects by target and project name and
// keeps only the duplicate groups.
type AnalyzeStep struct {
	// logger for structured logging.
	logger *slog.Logger
}

// AnalyzeStepOption configures an AnalyzeStep.
type AnalyzeStepOption func(*AnalyzeStep)

// WithAnalyzeLogger sets a custom logger for the analyze step.
func WithAnalyzeLogger(logger *slog.Logger) AnalyzeStepOption {
	return func(s *AnalyzeStep) {
		s.logger = logger
	}
}

// NewAnalyzeStep creates a new analyze step.
func NewAnalyzeStep(opts ...AnalyzeStepOption) *AnalyzeStep {
	s := &AnalyzeStep{
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Name returns the step name.
func (s *AnalyzeStep) Name() string {
	return "analyze_duplicates"
}

// Do executes the analyze step.
// The grouping is pure and in-memory; it never fails.
func (s *AnalyzeStep) Do(_ context.Context, state *ScanState) error {
	s.logger.Info("analyzing for duplicates", "projects", len(state.Projects))

	state.Duplicates = analyzer.FindDuplicates(state.Projects, state.Targets)

	if state.Duplicates.Empty() {
		s.logger.Info("no duplicate projects found")
		return nil
	}

	s.logger.Info("found targets with duplicate projects",
		"targets", state.Duplicates.TargetCount(),
	)
	return nil
}

// DefaultPipeline creates the standard fetch-then-analyze pipeline.
func DefaultPipeline(client *snyk.Client, opts ...Option) *Pipeline {
	p := New(opts...)
	p.AddSteps(
		NewFetchStep(client, WithFetchLogger(p.logger)),
		NewAnalyzeStep(WithAnalyzeLogger(p.logger)),
	)
	return p
}
