package transform

import (
	"github.com/nao1215/senadoexport/internal/envelope"
	"github.com/nao1215/senadoexport/internal/model"
)

// SenatorDetail extracts the identification block of a senator detail
// document. It reports false when the code or name is missing, which is also
// the case for the empty object the client returns on failure.
func (t *Transformer) SenatorDetail(detail envelope.Object) (*model.SenatorDetail, bool) {
	ident := envelope.ObjectAt(detail, keyIdentification)
	vals, missing := required(ident, keySenatorCode, keySenatorName)
	if missing != "" {
		return nil, false
	}
	return &model.SenatorDetail{
		ID:    vals[0],
		Name:  vals[1],
		Party: envelope.OptText(ident, keyPartyAcronym),
		State: envelope.OptText(ident, keyState),
	}, true
}
