// Package reporting expõe as análises de vendas para a camada de apresentação
package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/infrastructure/repository"
	"github.com/vfg2006/sales-analytics-api/internal/analytics"
	"github.com/vfg2006/sales-analytics-api/internal/config"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/store"
	"github.com/vfg2006/sales-analytics-api/pkg/metrics"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

// ABCKeys são as chaves classificadas em conjunto pelo ABCAll
var ABCKeys = []domain.AggregationKey{domain.KeyClient, domain.KeyProduct, domain.KeySeller}

// DatasetProvider entrega o dataset corrente
type DatasetProvider interface {
	Current() (*store.Dataset, error)
}

type Reporter interface {
	Dashboard(criteria domain.FilterCriteria) (*domain.DashboardReport, error)
	// Aggregates agrupa pela chave. direction vazio mantém a ordem da primeira ocorrência.
	Aggregates(criteria domain.FilterCriteria, key domain.AggregationKey, measure domain.Measure, direction domain.Direction) (*domain.AggregateReport, error)
	// Ranking retorna os n maiores (ou menores) grupos. n nil usa o padrão configurado.
	Ranking(criteria domain.FilterCriteria, key domain.AggregationKey, n *int, measure domain.Measure, direction domain.Direction) (*domain.AggregateReport, error)
	// ABC classifica os grupos da chave. limit nil usa o padrão configurado, <= 0 classifica todos.
	ABC(criteria domain.FilterCriteria, key domain.AggregationKey, limit *int) (*domain.ABCReport, error)
	ABCAll(ctx context.Context, criteria domain.FilterCriteria, limit *int) (*domain.ABCMultiReport, error)
	Crosstab(criteria domain.FilterCriteria) (*domain.CrosstabReport, error)
	Discounts(criteria domain.FilterCriteria) (*domain.DiscountReport, error)
	FilterOptions() (*domain.FilterOptions, error)
	Snapshot(dimension, period string) (*domain.ABCSnapshotResponse, error)
}

type Options struct {
	Thresholds domain.ABCThresholds
	ABCLimit   int
	TopN       int
}

// OptionsFromConfig lê os parâmetros de análise da configuração
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Thresholds: domain.ABCThresholds{A: cfg.Analytics.ThresholdA, B: cfg.Analytics.ThresholdB},
		ABCLimit:   cfg.Analytics.ABCLimit,
		TopN:       cfg.Analytics.TopN,
	}
}

type Service struct {
	datasets     DatasetProvider
	snapshotRepo repository.ABCSnapshotRepository
	options      Options
}

// NewService cria o serviço. snapshotRepo pode ser nil quando o banco está desabilitado.
func NewService(datasets DatasetProvider, snapshotRepo repository.ABCSnapshotRepository, options Options) Reporter {
	if !options.Thresholds.IsValid() {
		options.Thresholds = domain.DefaultABCThresholds()
	}
	if options.TopN <= 0 {
		options.TopN = 10
	}

	return &Service{
		datasets:     datasets,
		snapshotRepo: snapshotRepo,
		options:      options,
	}
}

// subset aplica o filtro sobre o dataset corrente. Datas ausentes assumem os limites do dataset.
func (s *Service) subset(kind string, criteria domain.FilterCriteria) (domain.FilterCriteria, *analytics.FilterResult, store.RecordStore, error) {
	dataset, err := s.datasets.Current()
	if err != nil {
		return criteria, nil, nil, s.fail(kind, err)
	}

	if minDate, maxDate, ok := dataset.Store.DateBounds(); ok {
		if criteria.DateRange.Start.IsZero() {
			criteria.DateRange.Start = minDate
		}
		if criteria.DateRange.End.IsZero() {
			criteria.DateRange.End = maxDate
		}
	}

	result, err := analytics.Filter(dataset.Store, criteria)
	if err != nil {
		return criteria, nil, nil, s.fail(kind, err)
	}

	return criteria, result, dataset.Store, nil
}

// missingKey indica que a chave depende de uma coluna que não existe no arquivo.
// Mês e dia vêm da data do pedido e estão sempre disponíveis.
func missingKey(source store.RecordStore, key domain.AggregationKey) bool {
	dim := key.Dimension()
	return dim != "" && !source.HasDimension(dim)
}

func missingKeyWarning(key domain.AggregationKey) string {
	return fmt.Sprintf("agregação por %s: coluna ausente no dataset", key)
}

func (s *Service) fail(kind string, err error) error {
	code := ErrorCode(err)
	metrics.AnalysisErrors.WithLabelValues(kind, code).Inc()

	logrus.WithFields(logrus.Fields{
		"kind": kind,
		"code": code,
	}).WithError(err).Warn("reporting: análise não concluída")

	return err
}

func (s *Service) Dashboard(criteria domain.FilterCriteria) (*domain.DashboardReport, error) {
	const kind = "dashboard"
	start := time.Now()

	criteria, subset, source, err := s.subset(kind, criteria)
	if err != nil {
		return nil, err
	}

	report := &domain.DashboardReport{
		Filters:  criteria,
		KPIs:     analytics.Summarize(subset.Records),
		Warnings: subset.Warnings,
	}
	for _, dim := range analytics.ClearUnavailable(&report.KPIs, source) {
		report.Warnings = append(report.Warnings, fmt.Sprintf("indicador de %s indisponível: coluna ausente no dataset", dim))
	}

	if !missingKey(source, domain.KeyClient) {
		if report.TopClientsShare, err = analytics.TopNShare(subset.Records, domain.KeyClient, s.options.TopN); err != nil {
			return nil, s.fail(kind, err)
		}
	}
	if !missingKey(source, domain.KeySeller) {
		if report.TopSellersShare, err = analytics.TopNShare(subset.Records, domain.KeySeller, s.options.TopN); err != nil {
			return nil, s.fail(kind, err)
		}
	}

	days, err := analytics.Aggregate(subset.Records, domain.KeyDay)
	if err != nil {
		return nil, s.fail(kind, err)
	}
	if report.BestDays, err = analytics.TopN(days, s.options.TopN, domain.MeasureAmount, domain.Descending); err != nil {
		return nil, s.fail(kind, err)
	}
	if report.WorstDays, err = analytics.TopN(days, s.options.TopN, domain.MeasureAmount, domain.Ascending); err != nil {
		return nil, s.fail(kind, err)
	}

	metrics.ObserveAnalysis(kind, start)
	return report, nil
}

func (s *Service) Aggregates(criteria domain.FilterCriteria, key domain.AggregationKey, measure domain.Measure, direction domain.Direction) (*domain.AggregateReport, error) {
	const kind = "aggregate"
	start := time.Now()

	criteria, subset, source, err := s.subset(kind, criteria)
	if err != nil {
		return nil, err
	}

	rows, warnings, err := s.aggregateAvailable(subset, source, key)
	if err != nil {
		return nil, s.fail(kind, err)
	}

	if direction != "" && len(rows) > 0 {
		if rows, err = analytics.TopN(rows, len(rows), measure, direction); err != nil {
			return nil, s.fail(kind, err)
		}
	}

	metrics.ObserveAnalysis(kind, start)
	return &domain.AggregateReport{
		Filters:  criteria,
		Key:      key,
		Rows:     rows,
		Warnings: warnings,
	}, nil
}

// aggregateAvailable agrupa pela chave. Chave sem coluna no arquivo gera aviso e nenhuma linha.
func (s *Service) aggregateAvailable(subset *analytics.FilterResult, source store.RecordStore, key domain.AggregationKey) ([]domain.AggregateRow, []string, error) {
	if missingKey(source, key) {
		return []domain.AggregateRow{}, append(subset.Warnings, missingKeyWarning(key)), nil
	}

	rows, err := analytics.Aggregate(subset.Records, key)
	if err != nil {
		return nil, nil, err
	}
	return rows, subset.Warnings, nil
}

func (s *Service) Ranking(criteria domain.FilterCriteria, key domain.AggregationKey, n *int, measure domain.Measure, direction domain.Direction) (*domain.AggregateReport, error) {
	const kind = "ranking"
	start := time.Now()

	limit := s.options.TopN
	if n != nil {
		limit = *n
	}

	criteria, subset, source, err := s.subset(kind, criteria)
	if err != nil {
		return nil, err
	}

	rows, warnings, err := s.aggregateAvailable(subset, source, key)
	if err != nil {
		return nil, s.fail(kind, err)
	}

	top, err := analytics.TopN(rows, limit, measure, direction)
	if err != nil {
		return nil, s.fail(kind, err)
	}

	metrics.ObserveAnalysis(kind, start)
	return &domain.AggregateReport{
		Filters:  criteria,
		Key:      key,
		Rows:     top,
		Warnings: warnings,
	}, nil
}

func (s *Service) abcLimit(limit *int) int {
	if limit == nil {
		return s.options.ABCLimit
	}
	return *limit
}

func (s *Service) ABC(criteria domain.FilterCriteria, key domain.AggregationKey, limit *int) (*domain.ABCReport, error) {
	const kind = "abc"
	start := time.Now()

	criteria, subset, source, err := s.subset(kind, criteria)
	if err != nil {
		return nil, err
	}

	n := s.abcLimit(limit)
	report := &domain.ABCReport{
		Filters:    criteria,
		Key:        key,
		Limit:      n,
		Thresholds: s.options.Thresholds,
		Rows:       []domain.ABCRow{},
		Warnings:   subset.Warnings,
	}

	if missingKey(source, key) {
		report.Warnings = append(report.Warnings, missingKeyWarning(key))
		metrics.ObserveAnalysis(kind, start)
		return report, nil
	}

	if report.Rows, err = analytics.ClassifyByKey(subset.Records, key, n, s.options.Thresholds); err != nil {
		return nil, s.fail(kind, err)
	}

	metrics.ObserveAnalysis(kind, start)
	return report, nil
}

func (s *Service) ABCAll(ctx context.Context, criteria domain.FilterCriteria, limit *int) (*domain.ABCMultiReport, error) {
	const kind = "abc_all"
	start := time.Now()

	criteria, subset, source, err := s.subset(kind, criteria)
	if err != nil {
		return nil, err
	}

	warnings := subset.Warnings
	keys := make([]domain.AggregationKey, 0, len(ABCKeys))
	for _, key := range ABCKeys {
		if missingKey(source, key) {
			warnings = append(warnings, missingKeyWarning(key))
			continue
		}
		keys = append(keys, key)
	}

	n := s.abcLimit(limit)
	results := make(map[domain.AggregationKey][]domain.ABCRow, len(ABCKeys))
	if len(keys) > 0 {
		if results, err = analytics.ClassifyAll(ctx, subset.Records, keys, n, s.options.Thresholds); err != nil {
			return nil, s.fail(kind, err)
		}
	}
	for _, key := range ABCKeys {
		if _, ok := results[key]; !ok {
			results[key] = []domain.ABCRow{}
		}
	}

	metrics.ObserveAnalysis(kind, start)
	return &domain.ABCMultiReport{
		Filters:    criteria,
		Limit:      n,
		Thresholds: s.options.Thresholds,
		Results:    results,
		Warnings:   warnings,
	}, nil
}

func (s *Service) Crosstab(criteria domain.FilterCriteria) (*domain.CrosstabReport, error) {
	const kind = "crosstab"
	start := time.Now()

	criteria, subset, source, err := s.subset(kind, criteria)
	if err != nil {
		return nil, err
	}

	report := &domain.CrosstabReport{
		Filters:  criteria,
		Grid:     domain.SellerMonthGrid{Months: []string{}, Sellers: []string{}, Cells: [][]float64{}},
		Warnings: subset.Warnings,
	}
	if missingKey(source, domain.KeySeller) {
		report.Warnings = append(report.Warnings, missingKeyWarning(domain.KeySeller))
	} else {
		report.Grid = analytics.MonthlyBySeller(subset.Records)
	}

	metrics.ObserveAnalysis(kind, start)
	return report, nil
}

func (s *Service) Discounts(criteria domain.FilterCriteria) (*domain.DiscountReport, error) {
	const kind = "discounts"
	start := time.Now()

	criteria, subset, source, err := s.subset(kind, criteria)
	if err != nil {
		return nil, err
	}

	report := &domain.DiscountReport{
		Filters:  criteria,
		Sellers:  []domain.DiscountStats{},
		Warnings: subset.Warnings,
	}
	if missingKey(source, domain.KeySeller) {
		report.Warnings = append(report.Warnings, missingKeyWarning(domain.KeySeller))
	} else {
		report.Sellers = analytics.DiscountStats(subset.Records)
	}

	metrics.ObserveAnalysis(kind, start)
	return report, nil
}

// FilterOptions usa o dataset inteiro, sem filtros aplicados
func (s *Service) FilterOptions() (*domain.FilterOptions, error) {
	dataset, err := s.datasets.Current()
	if err != nil {
		return nil, s.fail("filter_options", err)
	}

	options := &domain.FilterOptions{
		Values: make(map[domain.Dimension][]string, len(domain.FilterDimensions)),
		Months: dataset.Store.Months(),
	}
	for _, dim := range domain.FilterDimensions {
		if dataset.Store.HasDimension(dim) {
			options.Values[dim] = dataset.Store.Distinct(dim)
		}
	}
	if minDate, maxDate, ok := dataset.Store.DateBounds(); ok {
		options.MinDate = minDate
		options.MaxDate = maxDate
	}

	return options, nil
}

func (s *Service) Snapshot(dimension, period string) (*domain.ABCSnapshotResponse, error) {
	if s.snapshotRepo == nil {
		return nil, ErrSnapshotsUnavailable
	}

	key, err := analytics.ParseAggregationKey(dimension)
	if err != nil {
		return nil, s.fail("snapshot", err)
	}
	if _, err := time.Parse(domain.MonthLayout, period); err != nil {
		return nil, s.fail("snapshot", &analytics.AnalyticsError{
			Err:     analytics.ErrInvalidArgument,
			Op:      "snapshot",
			Details: "período deve estar no formato yyyy-mm",
		})
	}

	snapshot, err := s.snapshotRepo.ListByPeriod(string(key), period)
	if err != nil {
		logrus.WithError(err).Error("reporting: erro ao buscar snapshot ABC")
		return nil, err
	}

	return snapshot, nil
}
