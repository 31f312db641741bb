package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/nao1215/senadoexport/internal/model"
)

// Step is one stage of an export run.
//
// Steps share a single *model.Dataset: each one reads what earlier steps
// stored (for example the bill list) and adds its own rows or tables.
// Steps are not run concurrently, so they may mutate the dataset without
// locking.
type Step interface {
	// Do executes the step against the dataset. API failures are not errors:
	// they leave the dataset without the step's rows. An error means the step
	// could not do its job at all (e.g. an output file could not be written).
	Do(ctx context.Context, ds *model.Dataset) error

	// Name returns the step's name for logging purposes.
	Name() string
}

// Pipeline runs steps in sequence.
// It holds the ordered step list and runs each step against the same dataset.
// A Pipeline is not safe for concurrent use while steps are being added.
type Pipeline struct {
	// steps contains the ordered list of steps to execute.
	steps []Step

	// logger is used for structured logging during execution.
	// Each step is logged at debug level with its duration; failures at
	// error level.
	logger *slog.Logger

	// continueOnError determines whether to continue executing steps
	// after one fails. If false, the pipeline stops on the first error.
	// Either way the failure is recorded in Dataset.Errors.
	continueOnError bool
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// WithContinueOnError keeps executing steps after a failure. Failures are
// still recorded in Dataset.Errors.
func WithContinueOnError(continueOnError bool) Option {
	return func(p *Pipeline) {
		p.continueOnError = continueOnError
	}
}

// New creates an empty Pipeline.
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
func (p *Pipeline) AddStep(step Step) {
	p.steps = append(p.steps, step)
}

// AddSteps appends multiple steps to the pipeline.
func (p *Pipeline) AddSteps(steps ...Step) {
	p.steps = append(p.steps, steps...)
}

// Execute runs every step in order against ds.
//
// Cancellation is checked before each step; a cancelled context stops the
// run with ctx.Err() and the remaining steps are skipped. A step that is
// already running sees the same ctx and is expected to return promptly.
//
// A failing step is recorded in ds.Errors as "<step name>: <error>" and,
// unless WithContinueOnError is set, its error is returned immediately.
// With WithContinueOnError, Execute returns nil after the last step even if
// some steps failed; callers inspect ds.Errors instead.
//
// An empty pipeline returns nil without touching ds.
func (p *Pipeline) Execute(ctx context.Context, ds *model.Dataset) error {
	for _, step := range p.steps {
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
		start := time.Now()

		if err := step.Do(ctx, ds); err != nil {
			p.logger.Error("step failed",
				"step", step.Name(),
				"error", err,
				"duration", time.Since(start),
			)
			ds.Errors = append(ds.Errors, step.Name()+": "+err.Error())

			if !p.continueOnError {
				return err
			}
			continue
		}

		p.logger.Debug("step completed",
			"step", step.Name(),
			"duration", time.Since(start),
		)
	}
	return nil
}

// StepCount returns the number of steps in the pipeline.
func (p *Pipeline) StepCount() int {
	return len(p.steps)
}

// StepNames returns the names of all steps in execution order.
func (p *Pipeline) StepNames() []string {
	names := make([]string, len(p.steps))
	for i, step := range p.steps {
		names[i] = step.Name()
	}
	return names
}
