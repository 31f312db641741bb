package pipeline

import (
	"context"
	"log/slog"

	"github.com/nao1215/senadoexport/internal/envelope"
	"github.com/nao1215/senadoexport/internal/model"
	"github.com/nao1215/senadoexport/internal/senado"
	"github.com/nao1215/senadoexport/internal/transform"
)

// API is the part of the Senate client used by the fetch steps.
// *senado.Client implements it.
type API interface {
	ListCurrentSenators(ctx context.Context) []envelope.Object
	GetSenatorDetail(ctx context.Context, id string) envelope.Object
	SearchBills(ctx context.Context, q senado.BillQuery) []envelope.Object
	GetBillProgress(ctx context.Context, billID string) []envelope.Object
	GetSenatorVotes(ctx context.Context, senatorID string) []envelope.Object
	ListSessions(ctx context.Context, q senado.SessionQuery) []envelope.Object
}

var _ API = (*senado.Client)(nil)

// fetchStep holds what every fetch step needs.
type fetchStep struct {
	api    API
	tr     *transform.Transformer
	logger *slog.Logger
}

func newFetchStep(api API, tr *transform.Transformer, logger *slog.Logger) fetchStep {
	if logger == nil {
		logger = slog.Default()
	}
	if tr == nil {
		tr = transform.New(logger)
	}
	return fetchStep{api: api, tr: tr, logger: logger}
}

// fetched logs the outcome of a fetch and records skipped records.
func (s fetchStep) fetched(ds *model.Dataset, table string, raw, rows int) {
	ds.AddSkipped(table, raw-rows)
	s.logger.Info("fetched records",
		"table", table,
		"records", raw,
		"rows", rows,
	)
	if raw == 0 {
		s.logger.Warn("no records fetched", "table", table)
	}
}

// FetchSenatorsStep fetches the senators in office.
type FetchSenatorsStep struct {
	fetchStep
}

// NewFetchSenatorsStep creates a FetchSenatorsStep.
func NewFetchSenatorsStep(api API, tr *transform.Transformer, logger *slog.Logger) *FetchSenatorsStep {
	return &FetchSenatorsStep{fetchStep: newFetchStep(api, tr, logger)}
}

// Name returns the step name.
func (s *FetchSenatorsStep) Name() string { return "fetch-senators" }

// Do fills ds.Senators.
func (s *FetchSenatorsStep) Do(ctx context.Context, ds *model.Dataset) error {
	raw := s.api.ListCurrentSenators(ctx)
	ds.Senators = s.tr.SenatorsToRows(raw)
	s.fetched(ds, model.TableSenators, len(raw), len(ds.Senators))
	return nil
}

// SearchBillsStep searches bills by type, number and year.
type SearchBillsStep struct {
	fetchStep
	query senado.BillQuery
}

// NewSearchBillsStep creates a SearchBillsStep.
func NewSearchBillsStep(api API, tr *transform.Transformer, query senado.BillQuery, logger *slog.Logger) *SearchBillsStep {
	return &SearchBillsStep{fetchStep: newFetchStep(api, tr, logger), query: query}
}

// Name returns the step name.
func (s *SearchBillsStep) Name() string { return "search-bills" }

// Do fills ds.Bills.
func (s *SearchBillsStep) Do(ctx context.Context, ds *model.Dataset) error {
	raw := s.api.SearchBills(ctx, s.query)
	ds.Bills = s.tr.BillsToRows(raw)
	s.fetched(ds, model.TableBills, len(raw), len(ds.Bills))
	return nil
}

// BillProgressStep fetches the legislative history of the first bill found.
type BillProgressStep struct {
	fetchStep
}

// NewBillProgressStep creates a BillProgressStep.
func NewBillProgressStep(api API, tr *transform.Transformer, logger *slog.Logger) *BillProgressStep {
	return &BillProgressStep{fetchStep: newFetchStep(api, tr, logger)}
}

// Name returns the step name.
func (s *BillProgressStep) Name() string { return "bill-progress" }

// Do fills ds.Progress. It does nothing when no bill was found.
func (s *BillProgressStep) Do(ctx context.Context, ds *model.Dataset) error {
	if len(ds.Bills) == 0 {
		s.logger.Info("no bill to follow, skipping progress")
		return nil
	}

	billID := ds.Bills[0].ID
	raw := s.api.GetBillProgress(ctx, billID)
	ds.ProgressBillID = billID
	ds.Progress = s.tr.ProgressEventsToRows(raw)
	s.fetched(ds, model.TableProgress, len(raw), len(ds.Progress))
	return nil
}

// SenatorDetailStep looks up the detail document of the first senator.
type SenatorDetailStep struct {
	fetchStep
}

// NewSenatorDetailStep creates a SenatorDetailStep.
func NewSenatorDetailStep(api API, tr *transform.Transformer, logger *slog.Logger) *SenatorDetailStep {
	return &SenatorDetailStep{fetchStep: newFetchStep(api, tr, logger)}
}

// Name returns the step name.
func (s *SenatorDetailStep) Name() string { return "senator-detail" }

// Do sets ds.Detail. It does nothing when no senator was fetched.
func (s *SenatorDetailStep) Do(ctx context.Context, ds *model.Dataset) error {
	if len(ds.Senators) == 0 {
		s.logger.Info("no senator to look up, skipping detail")
		return nil
	}

	id := ds.Senators[0].ID
	detail, ok := s.tr.SenatorDetail(s.api.GetSenatorDetail(ctx, id))
	if !ok {
		s.logger.Warn("senator detail unavailable", "id", id)
		return nil
	}
	ds.Detail = detail
	s.logger.Info("fetched senator detail", "id", detail.ID, "name", detail.Name)
	return nil
}

// SenatorVotesStep fetches the nominal votes of the first senator.
type SenatorVotesStep struct {
	fetchStep
}

// NewSenatorVotesStep creates a SenatorVotesStep.
func NewSenatorVotesStep(api API, tr *transform.Transformer, logger *slog.Logger) *SenatorVotesStep {
	return &SenatorVotesStep{fetchStep: newFetchStep(api, tr, logger)}
}

// Name returns the step name.
func (s *SenatorVotesStep) Name() string { return "senator-votes" }

// Do fills ds.Votes. It does nothing when no senator was fetched.
func (s *SenatorVotesStep) Do(ctx context.Context, ds *model.Dataset) error {
	if len(ds.Senators) == 0 {
		s.logger.Info("no senator to follow, skipping votes")
		return nil
	}

	id := ds.Senators[0].ID
	raw := s.api.GetSenatorVotes(ctx, id)
	ds.VotesSenatorID = id
	ds.Votes = s.tr.VotesToRows(raw)
	s.fetched(ds, model.TableVotes, len(raw), len(ds.Votes))
	return nil
}

// SessionsStep lists the plenary sessions in a date range.
type SessionsStep struct {
	fetchStep
	query senado.SessionQuery
}

// NewSessionsStep creates a SessionsStep.
func NewSessionsStep(api API, tr *transform.Transformer, query senado.SessionQuery, logger *slog.Logger) *SessionsStep {
	return &SessionsStep{fetchStep: newFetchStep(api, tr, logger), query: query}
}

// Name returns the step name.
func (s *SessionsStep) Name() string { return "sessions" }

// Do fills ds.Sessions.
func (s *SessionsStep) Do(ctx context.Context, ds *model.Dataset) error {
	raw := s.api.ListSessions(ctx, s.query)
	ds.Sessions = s.tr.SessionsToRows(raw)
	s.fetched(ds, model.TableSessions, len(raw), len(ds.Sessions))
	return nil
}
