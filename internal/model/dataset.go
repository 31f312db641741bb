package model

import "time"

// SenatorDetail is the subset of the senator detail document that an export
// run reports on.
type SenatorDetail struct {
	ID    string `json:"id"`
	Name  string `json:"nome"`
	Party string `json:"partido"`
	State string `json:"uf"`
}

// Dataset accumulates everything fetched and flattened during one export run.
// Pipeline steps fill it in order; exporters read from it.
type Dataset struct {
	// StartedAt is when the run began.
	StartedAt time.Time `json:"started_at"`

	Senators []Senator       `json:"senadores"`
	Bills    []Bill          `json:"materias"`
	Progress []ProgressEvent `json:"tramitacoes"`
	Votes    []Vote          `json:"votacoes"`
	Sessions []Session       `json:"sessoes"`

	// ProgressBillID is the bill whose progress was fetched.
	ProgressBillID string `json:"progress_bill_id,omitempty"`

	// VotesSenatorID is the senator whose votes were fetched.
	VotesSenatorID string `json:"votes_senator_id,omitempty"`

	// Detail holds the detail lookup of the first senator, if any.
	Detail *SenatorDetail `json:"detalhe_senador,omitempty"`

	// Skipped counts source records dropped per table for missing required fields.
	Skipped map[string]int `json:"skipped,omitempty"`

	// Files lists the paths written by the export step.
	Files []string `json:"files,omitempty"`

	// Errors records non-fatal step failures.
	Errors []string `json:"errors,omitempty"`
}

// NewDataset creates an empty Dataset stamped with the current time.
func NewDataset() *Dataset {
	return &Dataset{
		StartedAt: time.Now(),
		Skipped:   make(map[string]int),
	}
}

// AddSkipped records n dropped records for the given table.
func (d *Dataset) AddSkipped(table string, n int) {
	if n <= 0 {
		return
	}
	if d.Skipped == nil {
		d.Skipped = make(map[string]int)
	}
	d.Skipped[table] += n
}

// Tables returns the dataset as exportable tables in a fixed order.
func (d *Dataset) Tables() []*Table {
	return []*Table{
		NewTable(TableSenators, SenatorColumns, d.Senators),
		NewTable(TableBills, BillColumns, d.Bills),
		NewTable(TableProgress, ProgressEventColumns, d.Progress),
		NewTable(TableVotes, VoteColumns, d.Votes),
		NewTable(TableSessions, SessionColumns, d.Sessions),
	}
}

// TotalRows returns the number of rows across all tables.
func (d *Dataset) TotalRows() int {
	return len(d.Senators) + len(d.Bills) + len(d.Progress) + len(d.Votes) + len(d.Sessions)
}
