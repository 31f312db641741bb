package transform

import (
	"github.com/nao1215/senadoexport/internal/envelope"
	"github.com/nao1215/senadoexport/internal/model"
)

// Vote and session documents nest their descriptive fields one level down.
var (
	pathVotingSessionCode = []string{"CodigoSessaoVotacao"}
	pathVoteSessionDate   = []string{"SessaoPlenaria", "DataSessao"}
	pathVoteBill          = []string{"IdentificacaoMateria", "DescricaoIdentificacaoMateria"}
	pathVoteDescription   = []string{"DescricaoVotacao"}
	pathVoteValue         = []string{"DescricaoVoto"}
	pathVoteValueFallback = []string{"SiglaDescricaoVoto"}

	pathSessionCode   = []string{"CodigoSessao"}
	pathSessionDate   = []string{"DataSessao"}
	pathSessionStart  = []string{"HoraInicioSessao"}
	pathSessionType   = []string{"TipoSessao"}
	pathSessionNumber = []string{"NumeroSessao"}
)

// VotesToRows flattens a senator's vote records. Every field is optional.
// The vote value falls back to its abbreviated form when the long
// description is absent.
func (t *Transformer) VotesToRows(records []envelope.Object) []model.Vote {
	rows := make([]model.Vote, 0, len(records))
	for _, rec := range records {
		value, ok := envelope.TextAt(rec, pathVoteValue...)
		if !ok {
			value = envelope.OptTextAt(rec, pathVoteValueFallback...)
		}
		rows = append(rows, model.Vote{
			VotingSessionCode: envelope.OptTextAt(rec, pathVotingSessionCode...),
			SessionDate:       envelope.OptTextAt(rec, pathVoteSessionDate...),
			Bill:              envelope.OptTextAt(rec, pathVoteBill...),
			Description:       envelope.OptTextAt(rec, pathVoteDescription...),
			Vote:              value,
		})
	}
	return rows
}

// SessionsToRows flattens plenary session records. Every field is optional.
func (t *Transformer) SessionsToRows(records []envelope.Object) []model.Session {
	rows := make([]model.Session, 0, len(records))
	for _, rec := range records {
		rows = append(rows, model.Session{
			Code:      envelope.OptTextAt(rec, pathSessionCode...),
			Date:      envelope.OptTextAt(rec, pathSessionDate...),
			StartTime: envelope.OptTextAt(rec, pathSessionStart...),
			Type:      envelope.OptTextAt(rec, pathSessionType...),
			Number:    envelope.OptTextAt(rec, pathSessionNumber...),
		})
	}
	return rows
}
