package senado

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/nao1215/senadoexport/internal/envelope"
)

// Endpoint paths, relative to the base URL. "%s" marks an interpolated id.
const (
	EndpointCurrentSenators = "senador/lista/atual"
	EndpointSenatorDetail   = "senador/%s"
	EndpointBillSearch      = "materia/pesquisa/lista"
	EndpointBillProgress    = "materia/%s/tramitacoes"
	EndpointSenatorVotes    = "senador/%s/votacoes"
	EndpointSessions        = "plenario/lista/sessao"
)

// Envelope paths of each entity kind.
var (
	pathCurrentSenators = []string{"ListaParlamentarEmExercicio", "Parlamentares", "Parlamentar"}
	pathSenatorDetail   = []string{"DetalheParlamentar", "Parlamentar"}
	pathBills           = []string{"PesquisaBasicaMateria", "Materias", "Materia"}
	pathBillProgress    = []string{"HistoricoTramitacao", "Tramitacoes", "Tramitacao"}
	pathSenatorVotes    = []string{"VotacaoParlamentar", "Votacoes", "Votacao"}
	pathSessions        = []string{"ListaSessoes", "Sessoes", "Sessao"}
)

// BillQuery filters a bill search. Zero-valued fields are left out of the
// query string instead of being sent empty.
type BillQuery struct {
	// Acronym is the bill type, e.g. "PL" or "PEC".
	Acronym string
	// Number is the bill number within its type and year.
	Number int
	// Year is the presentation year.
	Year int
}

// Params returns the query parameters for the search.
func (q BillQuery) Params() Params {
	p := Params{}
	if q.Acronym != "" {
		p["sigla"] = q.Acronym
	}
	if q.Number != 0 {
		p["numero"] = strconv.Itoa(q.Number)
	}
	if q.Year != 0 {
		p["ano"] = strconv.Itoa(q.Year)
	}
	return p
}

// SessionQuery bounds a plenary session listing. Dates use the API's
// YYYYMMDD format; empty bounds are omitted.
type SessionQuery struct {
	StartDate string
	EndDate   string
}

// Params returns the query parameters for the listing.
func (q SessionQuery) Params() Params {
	p := Params{}
	if q.StartDate != "" {
		p["dataInicio"] = q.StartDate
	}
	if q.EndDate != "" {
		p["dataFim"] = q.EndDate
	}
	return p
}

// withID interpolates an escaped id into an endpoint template.
func withID(template, id string) string {
	return fmt.Sprintf(template, url.PathEscape(id))
}

// list requests endpoint and unwraps a list-shaped path.
func (c *Client) list(ctx context.Context, endpoint string, params Params, path []string) []envelope.Object {
	doc := c.Request(ctx, endpoint, params)
	items := envelope.ListAt(doc, path...)
	if len(doc) > 0 && len(items) == 0 {
		c.logger.Debug("no records at envelope path", "endpoint", endpoint, "path", path)
	}
	return items
}

// ListCurrentSenators returns the senators currently in office.
func (c *Client) ListCurrentSenators(ctx context.Context) []envelope.Object {
	return c.list(ctx, EndpointCurrentSenators, nil, pathCurrentSenators)
}

// GetSenatorDetail returns the detail document of one senator, or an empty
// object when it cannot be fetched. An empty id yields an empty object
// without a request.
func (c *Client) GetSenatorDetail(ctx context.Context, id string) envelope.Object {
	if id == "" {
		return envelope.Object{}
	}
	doc := c.Request(ctx, withID(EndpointSenatorDetail, id), nil)
	return envelope.ObjectAt(doc, pathSenatorDetail...)
}

// SearchBills returns the bills matching q.
func (c *Client) SearchBills(ctx context.Context, q BillQuery) []envelope.Object {
	return c.list(ctx, EndpointBillSearch, q.Params(), pathBills)
}

// GetBillProgress returns the legislative history of a bill.
// An empty id yields an empty list without a request.
func (c *Client) GetBillProgress(ctx context.Context, billID string) []envelope.Object {
	if billID == "" {
		return []envelope.Object{}
	}
	return c.list(ctx, withID(EndpointBillProgress, billID), nil, pathBillProgress)
}

// GetSenatorVotes returns the nominal votes cast by a senator.
// An empty id yields an empty list without a request.
func (c *Client) GetSenatorVotes(ctx context.Context, senatorID string) []envelope.Object {
	if senatorID == "" {
		return []envelope.Object{}
	}
	return c.list(ctx, withID(EndpointSenatorVotes, senatorID), nil, pathSenatorVotes)
}

// ListSessions returns the plenary sessions within q.
func (c *Client) ListSessions(ctx context.Context, q SessionQuery) []envelope.Object {
	return c.list(ctx, EndpointSessions, q.Params(), pathSessions)
}
