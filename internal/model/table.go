package model

// Table names. Exporters derive file names from them.
const (
	TableSenators = "senadores_atuais"
	TableBills    = "materias_legislativas"
	TableProgress = "tramitacoes"
	TableVotes    = "votacoes"
	TableSessions = "sessoes"
)

// Row is implemented by every flat record type.
type Row interface {
	Header() []string
	Record() []string
}

// Table is a named, schema-fixed set of records ready for export.
type Table struct {
	name    string
	header  []string
	records [][]string
}

// NewTable builds a Table from typed rows. The header is passed explicitly so
// that an empty table still carries its column set.
func NewTable[T Row](name string, header []string, rows []T) *Table {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, r.Record())
	}
	return &Table{
		name:    name,
		header:  append([]string(nil), header...),
		records: records,
	}
}

// Name returns the table name.
func (t *Table) Name() string { return t.name }

// Header returns the column names in export order.
func (t *Table) Header() []string { return t.header }

// Records returns the rows, each with one cell per column.
func (t *Table) Records() [][]string { return t.records }

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.records) }
