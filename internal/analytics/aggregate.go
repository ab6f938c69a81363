package analytics

import (
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

// Aggregate agrupa os registros pela chave, somando quantidade e valor.
// As linhas saem na ordem da primeira ocorrência de cada chave e apenas
// chaves presentes nos registros geram linha.
func Aggregate(records []domain.SalesRecord, key domain.AggregationKey) ([]domain.AggregateRow, error) {
	if !key.IsValid() {
		return nil, newError(ErrInvalidArgument, "aggregate", "chave de agregação desconhecida %q", key)
	}

	rows := make([]domain.AggregateRow, 0)
	index := make(map[string]int)

	for i := range records {
		value := keyValue(&records[i], key)

		pos, ok := index[value]
		if !ok {
			pos = len(rows)
			index[value] = pos
			rows = append(rows, domain.AggregateRow{Key: value})
		}

		rows[pos].Quantity += records[i].Quantity
		rows[pos].Amount += records[i].TotalAmount
		rows[pos].Records++
	}

	return rows, nil
}

func keyValue(record *domain.SalesRecord, key domain.AggregationKey) string {
	switch key {
	case domain.KeyMonth:
		return record.Month()
	case domain.KeyDay:
		return record.Day()
	default:
		return record.Dimension(key.Dimension())
	}
}
