package analytics

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

// ClassifyByKey executa agregação, ranking por valor e classificação ABC.
// limit <= 0 classifica todos os grupos.
func ClassifyByKey(records []domain.SalesRecord, key domain.AggregationKey, limit int, thresholds domain.ABCThresholds) ([]domain.ABCRow, error) {
	rows, err := Aggregate(records, key)
	if err != nil {
		return nil, err
	}

	n := limit
	if n <= 0 {
		n = len(rows)
	}
	if n == 0 {
		return nil, newError(ErrDivisionUndefined, "classify", "nenhum grupo para a chave %q", key)
	}

	top, err := TopN(rows, n, domain.MeasureAmount, domain.Descending)
	if err != nil {
		return nil, err
	}

	return Classify(top, thresholds)
}

// ClassifyAll roda ClassifyByKey para cada chave em paralelo.
// O primeiro erro cancela as demais.
func ClassifyAll(ctx context.Context, records []domain.SalesRecord, keys []domain.AggregationKey, limit int, thresholds domain.ABCThresholds) (map[domain.AggregationKey][]domain.ABCRow, error) {
	results := make([][]domain.ABCRow, len(keys))

	g, ctx := errgroup.WithContext(ctx)
	for i, key := range keys {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			rows, err := ClassifyByKey(records, key, limit, thresholds)
			if err != nil {
				return err
			}
			results[i] = rows
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[domain.AggregationKey][]domain.ABCRow, len(keys))
	for i, key := range keys {
		out[key] = results[i]
	}
	return out, nil
}
