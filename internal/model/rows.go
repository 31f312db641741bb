package model

// Column names, in export order.
var (
	SenatorColumns = []string{"id", "nome", "partido", "uf", "email", "foto_url", "pagina_url"}

	BillColumns = []string{"id", "sigla", "numero", "ano", "ementa", "data_apresentacao", "autor"}

	ProgressEventColumns = []string{
		"data_tramitacao", "descricao_situacao", "descricao_tramitacao", "orgao", "sigla_orgao",
	}

	VoteColumns = []string{"codigo_sessao_votacao", "data_sessao", "materia", "descricao_votacao", "voto"}

	SessionColumns = []string{"codigo_sessao", "data_sessao", "hora_inicio", "tipo_sessao", "numero_sessao"}
)

// Senator is one row of the current-senators export.
// ID and Name are required; the remaining fields default to "".
type Senator struct {
	ID       string `json:"id"`
	Name     string `json:"nome"`
	Party    string `json:"partido"`
	State    string `json:"uf"`
	Email    string `json:"email"`
	PhotoURL string `json:"foto_url"`
	PageURL  string `json:"pagina_url"`
}

// Header returns the senator column names.
func (Senator) Header() []string { return SenatorColumns }

// Record returns the row cells in column order.
func (s Senator) Record() []string {
	return []string{s.ID, s.Name, s.Party, s.State, s.Email, s.PhotoURL, s.PageURL}
}

// Bill is one row of the bill ("matéria") search export.
// ID, Acronym, Number and Year are required.
type Bill struct {
	ID               string `json:"id"`
	Acronym          string `json:"sigla"`
	Number           string `json:"numero"`
	Year             string `json:"ano"`
	Summary          string `json:"ementa"`
	PresentationDate string `json:"data_apresentacao"`
	Author           string `json:"autor"`
}

// Header returns the bill column names.
func (Bill) Header() []string { return BillColumns }

// Record returns the row cells in column order.
func (b Bill) Record() []string {
	return []string{b.ID, b.Acronym, b.Number, b.Year, b.Summary, b.PresentationDate, b.Author}
}

// ProgressEvent is one step ("tramitação") of a bill's legislative history.
// No field is required.
type ProgressEvent struct {
	Date          string `json:"data_tramitacao"`
	SituationDesc string `json:"descricao_situacao"`
	StepDesc      string `json:"descricao_tramitacao"`
	BodyName      string `json:"orgao"`
	BodyAcronym   string `json:"sigla_orgao"`
}

// Header returns the progress event column names.
func (ProgressEvent) Header() []string { return ProgressEventColumns }

// Record returns the row cells in column order.
func (p ProgressEvent) Record() []string {
	return []string{p.Date, p.SituationDesc, p.StepDesc, p.BodyName, p.BodyAcronym}
}

// Vote is one nominal vote cast by a senator.
type Vote struct {
	VotingSessionCode string `json:"codigo_sessao_votacao"`
	SessionDate       string `json:"data_sessao"`
	Bill              string `json:"materia"`
	Description       string `json:"descricao_votacao"`
	Vote              string `json:"voto"`
}

// Header returns the vote column names.
func (Vote) Header() []string { return VoteColumns }

// Record returns the row cells in column order.
func (v Vote) Record() []string {
	return []string{v.VotingSessionCode, v.SessionDate, v.Bill, v.Description, v.Vote}
}

// Session is one plenary session.
type Session struct {
	Code      string `json:"codigo_sessao"`
	Date      string `json:"data_sessao"`
	StartTime string `json:"hora_inicio"`
	Type      string `json:"tipo_sessao"`
	Number    string `json:"numero_sessao"`
}

// Header returns the session column names.
func (Session) Header() []string { return SessionColumns }

// Record returns the row cells in column order.
func (s Session) Record() []string {
	return []string{s.Code, s.Date, s.StartTime, s.Type, s.Number}
}
