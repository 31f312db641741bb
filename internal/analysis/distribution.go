package analysis

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nao1215/senadoexport/internal/model"
)

// BlankKey groups rows whose key field is empty.
const BlankKey = "-"

// Count is the number of rows sharing a key.
type Count struct {
	Key string `json:"key"`
	N   int    `json:"n"`
}

// Distribution is a list of counts sorted by N descending, then Key ascending.
type Distribution []Count

// Total returns the sum of all counts.
func (d Distribution) Total() int {
	total := 0
	for _, c := range d {
		total += c.N
	}
	return total
}

// Share returns c.N as a percentage of the total.
func (d Distribution) Share(c Count) float64 {
	total := d.Total()
	if total == 0 {
		return 0
	}
	return float64(c.N) * 100 / float64(total)
}

// ByParty counts senators per party acronym.
func ByParty(rows []model.Senator) Distribution {
	return countBy(rows, func(s model.Senator) string { return s.Party })
}

// ByState counts senators per federative unit.
func ByState(rows []model.Senator) Distribution {
	return countBy(rows, func(s model.Senator) string { return s.State })
}

func countBy(rows []model.Senator, key func(model.Senator) string) Distribution {
	upper := cases.Upper(language.BrazilianPortuguese)

	counts := make(map[string]int)
	for _, r := range rows {
		k := strings.TrimSpace(key(r))
		if k == "" {
			k = BlankKey
		} else {
			k = upper.String(k)
		}
		counts[k]++
	}

	out := make(Distribution, 0, len(counts))
	for k, n := range counts {
		out = append(out, Count{Key: k, N: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].N != out[j].N {
			return out[i].N > out[j].N
		}
		return out[i].Key < out[j].Key
	})
	return out
}
