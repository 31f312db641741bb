package pipeline

import (
	"log/slog"

	"github.com/nao1215/senadoexport/internal/senado"
	"github.com/nao1215/senadoexport/internal/transform"
)

// Options selects the optional steps and their parameters for Default.
type Options struct {
	// Bills filters the bill search.
	Bills senado.BillQuery

	// Votes adds the senator-votes step.
	Votes bool

	// Sessions adds the sessions step with this range when non-nil.
	Sessions *senado.SessionQuery

	// Export configures the final export step.
	Export ExportOptions

	// Logger is shared by the pipeline and its steps.
	Logger *slog.Logger
}

// Default builds the standard export sequence.
func Default(api API, tr *transform.Transformer, opts Options) *Pipeline {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if tr == nil {
		tr = transform.New(logger)
	}

	p := New(WithLogger(logger))
	p.AddSteps(
		NewFetchSenatorsStep(api, tr, logger),
		NewSearchBillsStep(api, tr, opts.Bills, logger),
		NewBillProgressStep(api, tr, logger),
		NewSenatorDetailStep(api, tr, logger),
	)
	if opts.Votes {
		p.AddStep(NewSenatorVotesStep(api, tr, logger))
	}
	if opts.Sessions != nil {
		p.AddStep(NewSessionsStep(api, tr, *opts.Sessions, logger))
	}
	p.AddStep(NewExportStep(opts.Export, logger))
	return p
}
