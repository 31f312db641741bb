package model

import (
	"slices"
	"testing"
)

// TestRowSchemas checks that every row type emits one cell per column.
func TestRowSchemas(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		row  Row
		want []string
	}{
		{
			name: "senator",
			row:  Senator{ID: "5", Name: "Ana"},
			want: []string{"id", "nome", "partido", "uf", "email", "foto_url", "pagina_url"},
		},
		{
			name: "bill",
			row:  Bill{ID: "1", Acronym: "PL", Number: "00001", Year: "2024"},
			want: []string{"id", "sigla", "numero", "ano", "ementa", "data_apresentacao", "autor"},
		},
		{
			name: "progress event",
			row:  ProgressEvent{Date: "2024-01-01"},
			want: []string{"data_tramitacao", "descricao_situacao", "descricao_tramitacao", "orgao", "sigla_orgao"},
		},
		{
			name: "vote",
			row:  Vote{Vote: "Sim"},
			want: []string{"codigo_sessao_votacao", "data_sessao", "materia", "descricao_votacao", "voto"},
		},
		{
			name: "session",
			row:  Session{Code: "1"},
			want: []string{"codigo_sessao", "data_sessao", "hora_inicio", "tipo_sessao", "numero_sessao"},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if !slices.Equal(tc.row.Header(), tc.want) {
				t.Errorf("Header() = %v, expected %v", tc.row.Header(), tc.want)
			}
			if got := len(tc.row.Record()); got != len(tc.want) {
				t.Errorf("len(Record()) = %d, expected %d", got, len(tc.want))
			}
		})
	}
}

// TestSenatorRecord tests that cells follow the declared column order.
func TestSenatorRecord(t *testing.T) {
	t.Parallel()

	s := Senator{
		ID:       "5",
		Name:     "Ana",
		Party:    "PT",
		State:    "SP",
		Email:    "ana@senado.leg.br",
		PhotoURL: "http://foto",
		PageURL:  "http://pagina",
	}
	want := []string{"5", "Ana", "PT", "SP", "ana@senado.leg.br", "http://foto", "http://pagina"}
	if got := s.Record(); !slices.Equal(got, want) {
		t.Errorf("Record() = %v, expected %v", got, want)
	}
}
