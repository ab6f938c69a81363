package reporting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analytics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-analytics-api/internal/analytics"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/store"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testRecords() []domain.SalesRecord {
	return []domain.SalesRecord{
		{OrderDate: date(2024, 1, 5), OrderID: "P1", Client: "Alfa", Seller: "Ana", Product: "Caneta", Locality: "Norte", PaymentCondition: "Contado", Quantity: 2, Discount: 5, TotalAmount: 500},
		{OrderDate: date(2024, 1, 20), OrderID: "P2", Client: "Beta", Seller: "Bruno", Product: "Lapis", Locality: "Sul", PaymentCondition: "30 dias", Quantity: 1, Discount: 0, TotalAmount: 300},
		{OrderDate: date(2024, 2, 3), OrderID: "P3", Client: "Gama", Seller: "Ana", Product: "Caneta", Locality: "Norte", PaymentCondition: "Contado", Quantity: 1, Discount: 10, TotalAmount: 100},
		{OrderDate: date(2024, 2, 10), OrderID: "P4", Client: "Delta", Seller: "Bruno", Product: "Borracha", Locality: "Norte", PaymentCondition: "Contado", Quantity: 3, Discount: 2, TotalAmount: 100},
	}
}

func newHolder(dimensions []domain.Dimension) *store.Holder {
	holder := store.NewHolder()
	holder.Replace(&store.Dataset{
		Info:  domain.DatasetInfo{ID: "teste"},
		Store: store.NewMemoryStore(testRecords(), dimensions),
	})
	return holder
}

func newTestService(provider DatasetProvider, repo *mocks.MockABCSnapshotRepository) Reporter {
	options := Options{Thresholds: domain.DefaultABCThresholds(), ABCLimit: 30, TopN: 2}
	if repo == nil {
		return NewService(provider, nil, options)
	}
	return NewService(provider, repo, options)
}

func aggregateKeys(rows []domain.AggregateRow) []string {
	keys := make([]string, 0, len(rows))
	for _, row := range rows {
		keys = append(keys, row.Key)
	}
	return keys
}

func intPtr(v int) *int {
	return &v
}

func TestService_Dashboard(t *testing.T) {
	service := newTestService(newHolder(nil), nil)

	report, err := service.Dashboard(domain.FilterCriteria{})

	require.NoError(t, err)
	assert.Equal(t, date(2024, 1, 5), report.Filters.DateRange.Start)
	assert.Equal(t, date(2024, 2, 10), report.Filters.DateRange.End)
	assert.Equal(t, 4, report.KPIs.Clients)
	assert.Equal(t, 2, report.KPIs.Sellers)
	assert.Equal(t, 4, report.KPIs.Orders)
	assert.InDelta(t, 1000, report.KPIs.TotalAmount, 1e-9)
	assert.InDelta(t, 800, report.TopClientsShare, 1e-9)
	assert.InDelta(t, 1000, report.TopSellersShare, 1e-9)
	assert.Equal(t, []string{"2024-01-05", "2024-01-20"}, aggregateKeys(report.BestDays))
	assert.Equal(t, []string{"2024-02-03", "2024-02-10"}, aggregateKeys(report.WorstDays))
	assert.Empty(t, report.Warnings)
}

func TestService_Dashboard_Filters(t *testing.T) {
	tests := []struct {
		name          string
		criteria      domain.FilterCriteria
		dimensions    []domain.Dimension
		expectedTotal float64
		expectedWarns int
	}{
		{
			name:          "Filtro por vendedor",
			criteria:      domain.FilterCriteria{Seller: "Ana"},
			expectedTotal: 600,
		},
		{
			name:          "Filtro por mês",
			criteria:      domain.FilterCriteria{Month: "2024-02"},
			expectedTotal: 200,
		},
		{
			name: "Filtro por intervalo de datas",
			criteria: domain.FilterCriteria{DateRange: domain.DateRange{
				Start: date(2024, 1, 20),
				End:   date(2024, 2, 3),
			}},
			expectedTotal: 400,
		},
		{
			name:          "Valor all não restringe",
			criteria:      domain.FilterCriteria{Client: domain.AllValues, Locality: ""},
			expectedTotal: 1000,
		},
		{
			name:          "Coluna ausente gera aviso e ignora o filtro",
			criteria:      domain.FilterCriteria{Locality: "Norte"},
			dimensions:    []domain.Dimension{domain.DimensionClient, domain.DimensionSeller, domain.DimensionProduct, domain.DimensionOrder},
			expectedTotal: 1000,
			expectedWarns: 1,
		},
		{
			name:          "Valor inexistente retorna relatório zerado",
			criteria:      domain.FilterCriteria{Client: "Ninguém"},
			expectedTotal: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newTestService(newHolder(tt.dimensions), nil)

			report, err := service.Dashboard(tt.criteria)

			require.NoError(t, err)
			assert.InDelta(t, tt.expectedTotal, report.KPIs.TotalAmount, 1e-9)
			assert.Len(t, report.Warnings, tt.expectedWarns)
		})
	}
}

func TestService_Errors(t *testing.T) {
	invalidRange := domain.FilterCriteria{DateRange: domain.DateRange{Start: date(2024, 3, 1), End: date(2024, 1, 1)}}

	tests := []struct {
		name         string
		provider     DatasetProvider
		call         func(service Reporter) error
		expectedErr  error
		expectedCode string
	}{
		{
			name:     "Intervalo invertido",
			provider: newHolder(nil),
			call: func(service Reporter) error {
				_, err := service.Dashboard(invalidRange)
				return err
			},
			expectedErr:  analytics.ErrInvalidRange,
			expectedCode: apiErrors.ErrInvalidDateRange,
		},
		{
			name:     "Nenhum dataset carregado",
			provider: store.NewHolder(),
			call: func(service Reporter) error {
				_, err := service.ABC(domain.FilterCriteria{}, domain.KeyClient, nil)
				return err
			},
			expectedErr:  store.ErrNoDataset,
			expectedCode: apiErrors.ErrNoDataset,
		},
		{
			name:     "ABC sobre subconjunto vazio",
			provider: newHolder(nil),
			call: func(service Reporter) error {
				_, err := service.ABC(domain.FilterCriteria{Client: "Ninguém"}, domain.KeyClient, nil)
				return err
			},
			expectedErr:  analytics.ErrDivisionUndefined,
			expectedCode: apiErrors.ErrDivisionUndefined,
		},
		{
			name:     "Ranking com n zero",
			provider: newHolder(nil),
			call: func(service Reporter) error {
				_, err := service.Ranking(domain.FilterCriteria{}, domain.KeyClient, intPtr(0), domain.MeasureAmount, domain.Descending)
				return err
			},
			expectedErr:  analytics.ErrInvalidArgument,
			expectedCode: apiErrors.ErrInvalidRequest,
		},
		{
			name:     "Mês fora do formato",
			provider: newHolder(nil),
			call: func(service Reporter) error {
				_, err := service.Crosstab(domain.FilterCriteria{Month: "02/2024"})
				return err
			},
			expectedErr:  analytics.ErrInvalidArgument,
			expectedCode: apiErrors.ErrInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call(newTestService(tt.provider, nil))

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.expectedErr)
			assert.Equal(t, tt.expectedCode, ErrorCode(err))
		})
	}
}

func TestService_Aggregates(t *testing.T) {
	service := newTestService(newHolder(nil), nil)

	report, err := service.Aggregates(domain.FilterCriteria{}, domain.KeySeller, domain.MeasureAmount, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"Ana", "Bruno"}, aggregateKeys(report.Rows))
	assert.Equal(t, 2, report.Rows[0].Records)

	report, err = service.Aggregates(domain.FilterCriteria{}, domain.KeySeller, domain.MeasureAmount, domain.Ascending)
	require.NoError(t, err)
	assert.Equal(t, []string{"Bruno", "Ana"}, aggregateKeys(report.Rows))

	report, err = service.Aggregates(domain.FilterCriteria{Client: "Ninguém"}, domain.KeySeller, domain.MeasureAmount, domain.Descending)
	require.NoError(t, err)
	assert.Empty(t, report.Rows)
}

func TestService_Ranking(t *testing.T) {
	service := newTestService(newHolder(nil), nil)

	report, err := service.Ranking(domain.FilterCriteria{}, domain.KeyClient, nil, domain.MeasureAmount, domain.Descending)
	require.NoError(t, err)
	assert.Equal(t, []string{"Alfa", "Beta"}, aggregateKeys(report.Rows))

	report, err = service.Ranking(domain.FilterCriteria{}, domain.KeyClient, intPtr(3), domain.MeasureQuantity, domain.Descending)
	require.NoError(t, err)
	assert.Equal(t, []string{"Delta", "Alfa", "Beta"}, aggregateKeys(report.Rows))
}

func TestService_ABC(t *testing.T) {
	service := newTestService(newHolder(nil), nil)

	tests := []struct {
		name            string
		limit           *int
		expectedKeys    []string
		expectedClasses []domain.ABCClass
		expectedLimit   int
	}{
		{
			name:            "Limite padrão",
			expectedKeys:    []string{"Alfa", "Beta", "Delta", "Gama"},
			expectedClasses: []domain.ABCClass{domain.ClassA, domain.ClassA, domain.ClassB, domain.ClassC},
			expectedLimit:   30,
		},
		{
			name:            "Limite informado recalcula o total",
			limit:           intPtr(2),
			expectedKeys:    []string{"Alfa", "Beta"},
			expectedClasses: []domain.ABCClass{domain.ClassA, domain.ClassC},
			expectedLimit:   2,
		},
		{
			name:            "Limite zero classifica todos",
			limit:           intPtr(0),
			expectedKeys:    []string{"Alfa", "Beta", "Delta", "Gama"},
			expectedClasses: []domain.ABCClass{domain.ClassA, domain.ClassA, domain.ClassB, domain.ClassC},
			expectedLimit:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := service.ABC(domain.FilterCriteria{}, domain.KeyClient, tt.limit)

			require.NoError(t, err)
			assert.Equal(t, tt.expectedLimit, report.Limit)
			require.Len(t, report.Rows, len(tt.expectedKeys))
			for i, row := range report.Rows {
				assert.Equal(t, tt.expectedKeys[i], row.Key)
				assert.Equal(t, tt.expectedClasses[i], row.Class)
				assert.Equal(t, i+1, row.Rank)
			}
		})
	}
}

func TestService_ABCAll(t *testing.T) {
	service := newTestService(newHolder(nil), nil)

	report, err := service.ABCAll(context.Background(), domain.FilterCriteria{}, nil)

	require.NoError(t, err)
	require.Len(t, report.Results, len(ABCKeys))
	assert.Len(t, report.Results[domain.KeyClient], 4)
	assert.Len(t, report.Results[domain.KeySeller], 2)
	assert.Len(t, report.Results[domain.KeyProduct], 3)
	assert.Equal(t, "Caneta", report.Results[domain.KeyProduct][0].Key)
}

func TestService_Crosstab(t *testing.T) {
	service := newTestService(newHolder(nil), nil)

	report, err := service.Crosstab(domain.FilterCriteria{})

	require.NoError(t, err)
	assert.Equal(t, []string{"Ana", "Bruno"}, report.Grid.Sellers)
	assert.Equal(t, []string{"2024-01", "2024-02"}, report.Grid.Months)
	assert.Equal(t, [][]float64{{500, 100}, {300, 100}}, report.Grid.Cells)
}

func TestService_Discounts(t *testing.T) {
	service := newTestService(newHolder(nil), nil)

	report, err := service.Discounts(domain.FilterCriteria{})

	require.NoError(t, err)
	require.Len(t, report.Sellers, 2)
	assert.Equal(t, "Ana", report.Sellers[0].Seller)
	assert.Equal(t, 2, report.Sellers[0].Count)
	assert.InDelta(t, 7.5, report.Sellers[0].Mean, 1e-9)
	assert.InDelta(t, 10, report.Sellers[0].Max, 1e-9)
}

func TestService_MissingSellerColumn(t *testing.T) {
	withoutSeller := []domain.Dimension{domain.DimensionClient, domain.DimensionProduct, domain.DimensionOrder}
	sellerWarning := "agregação por seller: coluna ausente no dataset"

	service := newTestService(newHolder(withoutSeller), nil)

	t.Run("Agregação sem linhas e com aviso", func(t *testing.T) {
		report, err := service.Aggregates(domain.FilterCriteria{}, domain.KeySeller, domain.MeasureAmount, domain.Descending)

		require.NoError(t, err)
		assert.Empty(t, report.Rows)
		assert.Contains(t, report.Warnings, sellerWarning)
	})

	t.Run("Ranking sem linhas e com aviso", func(t *testing.T) {
		report, err := service.Ranking(domain.FilterCriteria{}, domain.KeySeller, nil, domain.MeasureAmount, domain.Descending)

		require.NoError(t, err)
		assert.Empty(t, report.Rows)
		assert.Contains(t, report.Warnings, sellerWarning)
	})

	t.Run("ABC sem grupo vazio", func(t *testing.T) {
		report, err := service.ABC(domain.FilterCriteria{}, domain.KeySeller, nil)

		require.NoError(t, err)
		assert.Empty(t, report.Rows)
		assert.Contains(t, report.Warnings, sellerWarning)
	})

	t.Run("ABC das demais chaves continua disponível", func(t *testing.T) {
		report, err := service.ABCAll(context.Background(), domain.FilterCriteria{}, nil)

		require.NoError(t, err)
		assert.Empty(t, report.Results[domain.KeySeller])
		assert.Len(t, report.Results[domain.KeyClient], 4)
		assert.Len(t, report.Results[domain.KeyProduct], 3)
		assert.Equal(t, []string{sellerWarning}, report.Warnings)
	})

	t.Run("Painel zera a contagem de vendedores", func(t *testing.T) {
		report, err := service.Dashboard(domain.FilterCriteria{})

		require.NoError(t, err)
		assert.Zero(t, report.KPIs.Sellers)
		assert.Zero(t, report.TopSellersShare)
		assert.Equal(t, 4, report.KPIs.Clients)
		assert.InDelta(t, 1000, report.KPIs.TotalAmount, 1e-9)
		assert.Equal(t, []string{"indicador de seller indisponível: coluna ausente no dataset"}, report.Warnings)
	})

	t.Run("Grade vendedor x mês vazia", func(t *testing.T) {
		report, err := service.Crosstab(domain.FilterCriteria{})

		require.NoError(t, err)
		assert.Empty(t, report.Grid.Sellers)
		assert.Contains(t, report.Warnings, sellerWarning)
	})

	t.Run("Descontos por vendedor vazios", func(t *testing.T) {
		report, err := service.Discounts(domain.FilterCriteria{})

		require.NoError(t, err)
		assert.Empty(t, report.Sellers)
		assert.Contains(t, report.Warnings, sellerWarning)
	})

	t.Run("Mês continua disponível", func(t *testing.T) {
		report, err := service.Aggregates(domain.FilterCriteria{}, domain.KeyMonth, domain.MeasureAmount, "")

		require.NoError(t, err)
		assert.Equal(t, []string{"2024-01", "2024-02"}, aggregateKeys(report.Rows))
		assert.Empty(t, report.Warnings)
	})
}

func TestService_FilterOptions(t *testing.T) {
	service := newTestService(newHolder([]domain.Dimension{domain.DimensionClient, domain.DimensionSeller}), nil)

	options, err := service.FilterOptions()

	require.NoError(t, err)
	assert.Equal(t, []string{"Alfa", "Beta", "Gama", "Delta"}, options.Values[domain.DimensionClient])
	assert.Equal(t, []string{"Ana", "Bruno"}, options.Values[domain.DimensionSeller])
	assert.NotContains(t, options.Values, domain.DimensionLocality)
	assert.Equal(t, []string{"2024-01", "2024-02"}, options.Months)
	assert.Equal(t, date(2024, 1, 5), options.MinDate)
	assert.Equal(t, date(2024, 2, 10), options.MaxDate)
}

func TestService_Snapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockABCSnapshotRepository(ctrl)
	service := newTestService(newHolder(nil), repo)

	expected := &domain.ABCSnapshotResponse{Dimension: "client", Period: "2024-01"}
	repo.EXPECT().ListByPeriod("client", "2024-01").Return(expected, nil)
	repo.EXPECT().ListByPeriod("seller", "2024-02").Return(nil, errors.New("timeout"))

	snapshot, err := service.Snapshot("client", "2024-01")
	require.NoError(t, err)
	assert.Equal(t, expected, snapshot)

	_, err = service.Snapshot("seller", "2024-02")
	assert.Error(t, err)
	assert.Equal(t, apiErrors.ErrInternalServer, ErrorCode(err))

	_, err = service.Snapshot("client", "01-2024")
	assert.ErrorIs(t, err, analytics.ErrInvalidArgument)

	_, err = service.Snapshot("cidade", "2024-01")
	assert.ErrorIs(t, err, analytics.ErrInvalidArgument)

	_, err = newTestService(newHolder(nil), nil).Snapshot("client", "2024-01")
	assert.ErrorIs(t, err, ErrSnapshotsUnavailable)
}
