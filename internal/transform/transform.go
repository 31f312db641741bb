package transform

import (
	"log/slog"

	"github.com/nao1215/senadoexport/internal/envelope"
	"github.com/nao1215/senadoexport/internal/model"
)

// Source field names in the Senate API documents.
const (
	keyIdentification = "IdentificacaoParlamentar"
	keySenatorCode    = "CodigoParlamentar"
	keySenatorName    = "NomeParlamentar"
	keyPartyAcronym   = "SiglaPartidoParlamentar"
	keyState          = "UfParlamentar"
	keyEmail          = "EmailParlamentar"
	keyPhotoURL       = "UrlFotoParlamentar"
	keyPageURL        = "UrlPaginaParlamentar"

	keyBillCode         = "CodigoMateria"
	keyBillAcronym      = "Sigla"
	keyBillNumber       = "Numero"
	keyBillYear         = "Ano"
	keyBillSummary      = "Ementa"
	keyPresentationDate = "DataApresentacao"
	keyAuthor           = "Autor"
	keyAuthorName       = "NomeAutor"

	keyProgressDate  = "DataTramitacao"
	keySituationDesc = "DescricaoSituacao"
	keyStepDesc      = "DescricaoTramitacao"
	keyBodyName      = "NomeOrgao"
	keyBodyAcronym   = "SiglaOrgao"
)

// Transformer converts raw API records into rows.
// It holds no state besides the logger used to report skipped records.
type Transformer struct {
	logger *slog.Logger
}

// New creates a Transformer. A nil logger falls back to slog.Default().
func New(logger *slog.Logger) *Transformer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Transformer{logger: logger}
}

// required collects the text of each key in obj, stopping at the first one that
// is absent. It returns the values and the name of the missing key, if any.
func required(obj envelope.Object, keys ...string) ([]string, string) {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		v, ok := envelope.Text(obj, k)
		if !ok {
			return nil, k
		}
		out = append(out, v)
	}
	return out, ""
}

// skip reports a dropped record.
func (t *Transformer) skip(kind string, index int, missing string) {
	t.logger.Warn("skipping record with missing required field",
		"kind", kind,
		"index", index,
		"field", missing,
	)
}

// SenatorsToRows flattens senator records.
// Each record must carry IdentificacaoParlamentar with CodigoParlamentar and
// NomeParlamentar; records without them are skipped.
func (t *Transformer) SenatorsToRows(records []envelope.Object) []model.Senator {
	rows := make([]model.Senator, 0, len(records))
	for i, rec := range records {
		ident, ok := envelope.Path(rec, keyIdentification)
		identObj, isObj := ident.(envelope.Object)
		if !ok || !isObj {
			t.skip("senator", i, keyIdentification)
			continue
		}

		vals, missing := required(identObj, keySenatorCode, keySenatorName)
		if missing != "" {
			t.skip("senator", i, missing)
			continue
		}

		rows = append(rows, model.Senator{
			ID:       vals[0],
			Name:     vals[1],
			Party:    envelope.OptText(identObj, keyPartyAcronym),
			State:    envelope.OptText(identObj, keyState),
			Email:    envelope.OptText(identObj, keyEmail),
			PhotoURL: envelope.OptText(identObj, keyPhotoURL),
			PageURL:  envelope.OptText(identObj, keyPageURL),
		})
	}
	return rows
}

// BillsToRows flattens bill ("matéria") records.
// CodigoMateria, Sigla, Numero and Ano are required. The author name is read
// from the optional nested Autor object.
func (t *Transformer) BillsToRows(records []envelope.Object) []model.Bill {
	rows := make([]model.Bill, 0, len(records))
	for i, rec := range records {
		vals, missing := required(rec, keyBillCode, keyBillAcronym, keyBillNumber, keyBillYear)
		if missing != "" {
			t.skip("bill", i, missing)
			continue
		}

		rows = append(rows, model.Bill{
			ID:               vals[0],
			Acronym:          vals[1],
			Number:           vals[2],
			Year:             vals[3],
			Summary:          envelope.OptText(rec, keyBillSummary),
			PresentationDate: envelope.OptText(rec, keyPresentationDate),
			Author:           envelope.OptTextAt(rec, keyAuthor, keyAuthorName),
		})
	}
	return rows
}

// ProgressEventsToRows flattens "tramitação" records. Every field is
// optional, so no record is ever skipped.
func (t *Transformer) ProgressEventsToRows(records []envelope.Object) []model.ProgressEvent {
	rows := make([]model.ProgressEvent, 0, len(records))
	for _, rec := range records {
		rows = append(rows, model.ProgressEvent{
			Date:          envelope.OptText(rec, keyProgressDate),
			SituationDesc: envelope.OptText(rec, keySituationDesc),
			StepDesc:      envelope.OptText(rec, keyStepDesc),
			BodyName:      envelope.OptText(rec, keyBodyName),
			BodyAcronym:   envelope.OptText(rec, keyBodyAcronym),
		})
	}
	return rows
}
