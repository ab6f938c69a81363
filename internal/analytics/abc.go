package analytics

import (
	"math"

	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

// Classify atribui as classes ABC pelo percentual acumulado do valor vendido.
// As linhas devem vir em ordem não crescente de valor. O total considerado é a
// soma de todas as linhas recebidas.
func Classify(rows []domain.AggregateRow, thresholds domain.ABCThresholds) ([]domain.ABCRow, error) {
	if !thresholds.IsValid() {
		return nil, newError(ErrInvalidArgument, "classify", "limites inválidos A=%.2f B=%.2f", thresholds.A, thresholds.B)
	}

	var total float64
	for i, row := range rows {
		if math.IsNaN(row.Amount) || math.IsInf(row.Amount, 0) {
			return nil, newError(ErrInvalidArgument, "classify", "valor não finito na posição %d (%q)", i, row.Key)
		}
		if i > 0 && row.Amount > rows[i-1].Amount {
			return nil, newError(ErrPrecondition, "classify",
				"linhas fora de ordem decrescente na posição %d (%q)", i, row.Key)
		}
		total += row.Amount
	}

	if total == 0 {
		return nil, newError(ErrDivisionUndefined, "classify", "valor total igual a zero")
	}

	result := make([]domain.ABCRow, 0, len(rows))
	var cumulative float64
	for i, row := range rows {
		cumulative += row.Amount
		pct := 100 * cumulative / total

		result = append(result, domain.ABCRow{
			RankedRow: domain.RankedRow{
				AggregateRow:      row,
				Rank:              i + 1,
				CumulativeAmount:  cumulative,
				CumulativePercent: pct,
			},
			Class: classFor(pct, thresholds),
		})
	}

	return result, nil
}

func classFor(pct float64, thresholds domain.ABCThresholds) domain.ABCClass {
	switch {
	case pct <= thresholds.A:
		return domain.ClassA
	case pct <= thresholds.B:
		return domain.ClassB
	default:
		return domain.ClassC
	}
}
