// Package scheduler contém os serviços de agendamento para geração de snapshots
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/infrastructure/repository"
	"github.com/vfg2006/sales-analytics-api/internal/analytics"
	"github.com/vfg2006/sales-analytics-api/internal/config"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/store"
	"github.com/vfg2006/sales-analytics-api/pkg/metrics"
)

// DatasetProvider entrega o dataset corrente
type DatasetProvider interface {
	Current() (*store.Dataset, error)
}

type AbcSnapshotSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
	Dimensions   []domain.AggregationKey
	Limit        int
	Thresholds   domain.ABCThresholds
}

type AbcSnapshotService struct {
	scheduler           *gocron.Scheduler
	datasets            DatasetProvider
	snapshotRepo        repository.ABCSnapshotRepository
	config              AbcSnapshotSyncConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
}

func NewAbcSnapshotService(
	datasets DatasetProvider,
	snapshotRepo repository.ABCSnapshotRepository,
	cfg *config.Config,
) *AbcSnapshotService {
	dimensions := make([]domain.AggregationKey, 0, len(cfg.AbcSnapshotSync.Dimensions))
	for _, dim := range cfg.AbcSnapshotSync.Dimensions {
		key, err := analytics.ParseAggregationKey(dim)
		if err != nil {
			logrus.WithError(err).Warnf("AbcSnapshotService: dimensão %q ignorada", dim)
			continue
		}
		dimensions = append(dimensions, key)
	}

	syncConfig := AbcSnapshotSyncConfig{
		CronSchedule: cfg.AbcSnapshotSync.CronSchedule, // Default: dia 1 às 6h
		SyncEnabled:  cfg.AbcSnapshotSync.SyncEnabled,  // Default: desabilitado
		Dimensions:   dimensions,
		Limit:        cfg.Analytics.ABCLimit,
		Thresholds: domain.ABCThresholds{
			A: cfg.Analytics.ThresholdA,
			B: cfg.Analytics.ThresholdB,
		},
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"dimensions":    syncConfig.Dimensions,
	}).Info("Configuração do agendador de snapshots ABC carregada")

	return &AbcSnapshotService{
		scheduler:    gocron.NewScheduler(time.Local),
		datasets:     datasets,
		snapshotRepo: snapshotRepo,
		config:       syncConfig,
	}
}

func (s *AbcSnapshotService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de snapshots ABC desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de snapshots ABC")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.UpdateSnapshots(); err != nil {
			logrus.WithError(err).Error("Erro na geração dos snapshots ABC")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar snapshots ABC: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de snapshots ABC")
		s.scheduler.Stop()
	}()

	return nil
}

// UpdateSnapshots gera o snapshot do mês anterior para cada dimensão configurada.
// Execuções manuais no meio do mês também usam o último mês fechado.
func (s *AbcSnapshotService) UpdateSnapshots() error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Geração de snapshots ABC já está em execução")
		return nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	var syncErr error
	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.lastSyncError = ""
		if syncErr != nil {
			s.lastSyncError = syncErr.Error()
		}
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando geração dos snapshots ABC")

	processingDate := time.Now()
	for _, dimension := range s.config.Dimensions {
		if _, err := s.processSnapshotWithDate(dimension, processingDate); err != nil {
			logrus.WithError(err).WithField("dimension", dimension).Error("AbcSnapshotService: Erro ao gerar snapshot")
			syncErr = errors.Join(syncErr, err)
		}
	}

	logrus.Info("Geração dos snapshots ABC concluída")

	return syncErr
}

// processSnapshotWithDate classifica as vendas do mês anterior à data de processamento
// e grava o resultado com a variação de posição em relação ao mês anterior a ele.
func (s *AbcSnapshotService) processSnapshotWithDate(dimension domain.AggregationKey, processingDate time.Time) ([]*domain.ABCSnapshotItem, error) {
	dataset, err := s.datasets.Current()
	if err != nil {
		return nil, err
	}

	firstDayOfMonth := previousMonth(processingDate)
	lastDayOfMonth := firstDayOfMonth.AddDate(0, 1, -1)
	period := firstDayOfMonth.Format(domain.MonthLayout)
	previousPeriod := firstDayOfMonth.AddDate(0, -1, 0).Format(domain.MonthLayout)

	filtered, err := analytics.Filter(dataset.Store, domain.FilterCriteria{
		DateRange: domain.DateRange{Start: firstDayOfMonth, End: lastDayOfMonth},
	})
	if err != nil {
		return nil, err
	}

	if len(filtered.Records) == 0 {
		logrus.WithFields(logrus.Fields{
			"dimension": dimension,
			"period":    period,
		}).Info("AbcSnapshotService: nenhuma venda no período, snapshot não gerado")
		return []*domain.ABCSnapshotItem{}, nil
	}

	rows, err := analytics.ClassifyByKey(filtered.Records, dimension, s.config.Limit, s.config.Thresholds)
	if err != nil {
		if errors.Is(err, analytics.ErrDivisionUndefined) {
			logrus.WithField("period", period).Warn("AbcSnapshotService: valor total zero no período, snapshot não gerado")
			return []*domain.ABCSnapshotItem{}, nil
		}
		return nil, err
	}

	previous, err := s.snapshotRepo.ListByPeriod(string(dimension), previousPeriod)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar snapshot anterior: %w", err)
	}

	positionsBefore := make(map[string]int)
	if previous != nil {
		for _, item := range previous.Items {
			positionsBefore[item.Key] = item.Position
		}
	}

	items := make([]*domain.ABCSnapshotItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, &domain.ABCSnapshotItem{
			Dimension:         string(dimension),
			Period:            period,
			Key:               row.Key,
			Amount:            row.Amount,
			CumulativePercent: row.CumulativePercent,
			Class:             row.Class,
			Position:          row.Rank,
		})
	}

	updatePositions(items, positionsBefore)

	if err := s.snapshotRepo.SaveOrUpdate(items); err != nil {
		return nil, fmt.Errorf("erro ao salvar snapshot: %w", err)
	}

	metrics.SnapshotsSaved.WithLabelValues(string(dimension)).Add(float64(len(items)))

	logrus.WithFields(logrus.Fields{
		"dimension": dimension,
		"period":    period,
		"items":     len(items),
	}).Info("AbcSnapshotService: snapshot atualizado")

	return items, nil
}

// updatePositions preenche a posição anterior e a variação. Itens novos ficam com zero.
func updatePositions(items []*domain.ABCSnapshotItem, positionsBefore map[string]int) {
	for _, item := range items {
		before, exists := positionsBefore[item.Key]
		if !exists {
			continue
		}
		item.PreviousPosition = before
		item.PositionChange = before - item.Position
	}
}

// TriggerManualSync inicia manualmente a geração dos snapshots
func (s *AbcSnapshotService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Geração de snapshots ABC já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando geração manual dos snapshots ABC")
	go func() {
		if err := s.UpdateSnapshots(); err != nil {
			logrus.WithError(err).Error("Erro na geração manual dos snapshots ABC")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *AbcSnapshotService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"dimensions":             s.config.Dimensions,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_error":        s.lastSyncError,
	}
}

// previousMonth retorna o primeiro dia do mês fechado anterior à data
func previousMonth(date time.Time) time.Time {
	return getFirstDayOfMonth(date).AddDate(0, -1, 0)
}

func getFirstDayOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC)
}
