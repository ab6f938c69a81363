// Package analytics implementa filtro, agregação, KPIs, ranking e classificação ABC
// sobre os registros de vendas. Todas as funções são puras e não alteram a entrada.
package analytics

import (
	"fmt"
	"time"

	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

// RecordSource é a visão mínima do store usada pelo filtro
type RecordSource interface {
	Records() []domain.SalesRecord
	HasDimension(dim domain.Dimension) bool
}

// FilterResult é o subconjunto filtrado e os avisos gerados
type FilterResult struct {
	Records  []domain.SalesRecord
	Warnings []string
}

type predicate struct {
	dim   domain.Dimension
	value string
}

// Filter seleciona os registros dentro do intervalo de datas que satisfazem todos
// os filtros categóricos, mantendo a ordem original.
func Filter(source RecordSource, criteria domain.FilterCriteria) (*FilterResult, error) {
	if !criteria.DateRange.IsValid() {
		return nil, newError(ErrInvalidRange, "filter", "início %s posterior ao fim %s",
			criteria.DateRange.Start.Format(time.DateOnly), criteria.DateRange.End.Format(time.DateOnly))
	}

	month := criteria.Month
	if !domain.IsAll(month) {
		if _, err := time.Parse(domain.MonthLayout, month); err != nil {
			return nil, newError(ErrInvalidArgument, "filter", "mês %q fora do formato yyyy-mm", month)
		}
	} else {
		month = ""
	}

	result := &FilterResult{
		Records:  make([]domain.SalesRecord, 0),
		Warnings: make([]string, 0),
	}

	predicates := make([]predicate, 0, len(domain.FilterDimensions))
	for _, dim := range domain.FilterDimensions {
		value := criteria.Value(dim)
		if domain.IsAll(value) {
			continue
		}
		if !source.HasDimension(dim) {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("filtro %s ignorado: coluna ausente no dataset", dim))
			continue
		}
		predicates = append(predicates, predicate{dim: dim, value: value})
	}

	records := source.Records()
	for i := range records {
		record := &records[i]

		if !criteria.DateRange.Contains(record.OrderDate) {
			continue
		}
		if month != "" && record.Month() != month {
			continue
		}
		if !matches(record, predicates) {
			continue
		}

		result.Records = append(result.Records, *record)
	}

	return result, nil
}

func matches(record *domain.SalesRecord, predicates []predicate) bool {
	for _, p := range predicates {
		if record.Dimension(p.dim) != p.value {
			return false
		}
	}
	return true
}
