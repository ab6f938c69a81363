package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

func TestFilter(t *testing.T) {
	source := &fakeSource{records: sampleRecords()}

	testCases := []struct {
		name        string
		criteria    domain.FilterCriteria
		expectedIDs []string
		expectedErr error
	}{
		{
			name:        "Sem filtros categóricos retorna tudo no intervalo",
			criteria:    domain.FilterCriteria{DateRange: fullRange()},
			expectedIDs: []string{"P1", "P1", "P2", "P3", "P4", "P5"},
		},
		{
			name: "Intervalo fechado inclui as duas pontas",
			criteria: domain.FilterCriteria{
				DateRange: domain.DateRange{Start: day(2024, 1, 20), End: day(2024, 2, 28)},
			},
			expectedIDs: []string{"P2", "P3", "P4"},
		},
		{
			name: "Valor all não restringe",
			criteria: domain.FilterCriteria{
				DateRange: fullRange(),
				Locality:  domain.AllValues,
				Seller:    "Ana",
			},
			expectedIDs: []string{"P1", "P1", "P3"},
		},
		{
			name: "Conjunção de filtros",
			criteria: domain.FilterCriteria{
				DateRange:        fullRange(),
				Locality:         "Norte",
				PaymentCondition: "30 dias",
			},
			expectedIDs: []string{"P4"},
		},
		{
			name: "Comparação exata sensível a maiúsculas",
			criteria: domain.FilterCriteria{
				DateRange: fullRange(),
				Client:    "alfa",
			},
			expectedIDs: []string{"P5"},
		},
		{
			name: "Valor inexistente retorna subconjunto vazio",
			criteria: domain.FilterCriteria{
				DateRange: fullRange(),
				Client:    "Delta",
			},
			expectedIDs: []string{},
		},
		{
			name: "Filtro por mês",
			criteria: domain.FilterCriteria{
				DateRange: fullRange(),
				Month:     "2024-02",
			},
			expectedIDs: []string{"P3", "P4"},
		},
		{
			name: "Início posterior ao fim",
			criteria: domain.FilterCriteria{
				DateRange: domain.DateRange{Start: day(2024, 3, 1), End: day(2024, 2, 1)},
			},
			expectedErr: ErrInvalidRange,
		},
		{
			name: "Mês em formato inválido",
			criteria: domain.FilterCriteria{
				DateRange: fullRange(),
				Month:     "02/2024",
			},
			expectedErr: ErrInvalidArgument,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := Filter(source, tc.criteria)

			if tc.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.expectedErr)
				assert.Nil(t, result)
				return
			}

			require.NoError(t, err)
			ids := make([]string, 0, len(result.Records))
			for _, r := range result.Records {
				ids = append(ids, r.OrderID)
			}
			assert.Equal(t, tc.expectedIDs, ids)
			assert.Empty(t, result.Warnings)
		})
	}
}

func TestFilter_EveryRecordSatisfiesPredicates(t *testing.T) {
	records := sampleRecords()
	criteria := domain.FilterCriteria{
		DateRange: domain.DateRange{Start: day(2024, 1, 1), End: day(2024, 2, 28)},
		Seller:    "Ana",
	}

	result, err := Filter(&fakeSource{records: records}, criteria)
	require.NoError(t, err)

	assert.LessOrEqual(t, len(result.Records), len(records))
	for _, r := range result.Records {
		assert.True(t, criteria.DateRange.Contains(r.OrderDate))
		assert.Equal(t, "Ana", r.Seller)
	}
}

func TestFilter_MissingDimensionIsIgnored(t *testing.T) {
	source := &fakeSource{
		records: sampleRecords(),
		missing: map[domain.Dimension]bool{domain.DimensionLocality: true},
	}

	result, err := Filter(source, domain.FilterCriteria{DateRange: fullRange(), Locality: "Norte"})

	require.NoError(t, err)
	assert.Len(t, result.Records, 6)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "locality")
}

func TestFilter_DoesNotMutateSource(t *testing.T) {
	records := sampleRecords()
	source := &fakeSource{records: records}

	first, err := Filter(source, domain.FilterCriteria{DateRange: fullRange(), Client: "Beta"})
	require.NoError(t, err)
	first.Records[0].Client = "Alterado"

	second, err := Filter(source, domain.FilterCriteria{DateRange: fullRange(), Client: "Beta"})
	require.NoError(t, err)

	assert.Equal(t, "Beta", records[2].Client)
	assert.Len(t, second.Records, 2)
}
