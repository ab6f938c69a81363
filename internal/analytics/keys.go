package analytics

import (
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

// ParseAggregationKey converte o texto recebido numa chave de agregação conhecida
func ParseAggregationKey(value string) (domain.AggregationKey, error) {
	key := domain.AggregationKey(value)
	if !key.IsValid() {
		return "", newError(ErrInvalidArgument, "parse", "chave de agregação desconhecida %q", value)
	}
	return key, nil
}

// ParseMeasure aceita "amount" ou "quantity". Vazio assume amount.
func ParseMeasure(value string) (domain.Measure, error) {
	switch domain.Measure(value) {
	case "", domain.MeasureAmount:
		return domain.MeasureAmount, nil
	case domain.MeasureQuantity:
		return domain.MeasureQuantity, nil
	default:
		return "", newError(ErrInvalidArgument, "parse", "medida desconhecida %q", value)
	}
}

// ParseDirection aceita "desc" ou "asc". Vazio assume desc.
func ParseDirection(value string) (domain.Direction, error) {
	switch domain.Direction(value) {
	case "", domain.Descending:
		return domain.Descending, nil
	case domain.Ascending:
		return domain.Ascending, nil
	default:
		return "", newError(ErrInvalidArgument, "parse", "direção desconhecida %q", value)
	}
}
