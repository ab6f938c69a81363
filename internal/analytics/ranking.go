package analytics

import (
	"sort"

	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

// TopN ordena uma cópia das linhas pela medida e retorna as n primeiras.
// Empates são desfeitos pela chave em ordem crescente, nas duas direções.
func TopN(rows []domain.AggregateRow, n int, measure domain.Measure, direction domain.Direction) ([]domain.AggregateRow, error) {
	if n <= 0 {
		return nil, newError(ErrInvalidArgument, "topn", "n deve ser positivo, recebido %d", n)
	}
	if measure != domain.MeasureAmount && measure != domain.MeasureQuantity {
		return nil, newError(ErrInvalidArgument, "topn", "medida desconhecida %q", measure)
	}
	if direction != domain.Descending && direction != domain.Ascending {
		return nil, newError(ErrInvalidArgument, "topn", "direção desconhecida %q", direction)
	}

	sorted := make([]domain.AggregateRow, len(rows))
	copy(sorted, rows)

	sort.SliceStable(sorted, func(i, j int) bool {
		vi, vj := sorted[i].Value(measure), sorted[j].Value(measure)
		if vi != vj {
			if direction == domain.Ascending {
				return vi < vj
			}
			return vi > vj
		}
		return sorted[i].Key < sorted[j].Key
	})

	if n > len(sorted) {
		n = len(sorted)
	}

	return sorted[:n], nil
}
