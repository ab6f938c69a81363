// Package dataset carrega arquivos de vendas e mantém o dataset corrente
package dataset

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/infrastructure/loader"
	"github.com/vfg2006/sales-analytics-api/infrastructure/repository"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/store"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/sales-analytics-api/pkg/metrics"
	"github.com/vfg2006/sales-analytics-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

type DatasetService interface {
	// Upload lê o arquivo enviado e troca o dataset corrente
	Upload(ctx context.Context, fileName string, r io.Reader) (*domain.DatasetInfo, error)
	// LoadFile carrega um arquivo do disco
	LoadFile(ctx context.Context, path string) (*domain.DatasetInfo, error)
	// Restore recarrega o último dataset gravado no banco
	Restore(ctx context.Context) (*domain.DatasetInfo, error)
	Current() (*store.Dataset, error)
}

type Service struct {
	holder *store.Holder
	repo   repository.SalesRecordRepository
	now    func() time.Time
}

// NewService cria o serviço. repo pode ser nil quando o banco está desabilitado.
func NewService(holder *store.Holder, repo repository.SalesRecordRepository) DatasetService {
	return &Service{
		holder: holder,
		repo:   repo,
		now:    time.Now,
	}
}

func (s *Service) Upload(ctx context.Context, fileName string, r io.Reader) (*domain.DatasetInfo, error) {
	logrus.WithField("file_name", fileName).Info("dataset: carregando arquivo enviado")

	result, err := loader.Load(fileName, r)
	if err != nil {
		return nil, loadError(fileName, err)
	}

	return s.replace(ctx, fileName, result)
}

func (s *Service) LoadFile(ctx context.Context, path string) (*domain.DatasetInfo, error) {
	logrus.WithField("path", path).Info("dataset: carregando arquivo do disco")

	result, err := loader.LoadFile(path)
	if err != nil {
		return nil, loadError(filepath.Base(path), err)
	}

	return s.replace(ctx, filepath.Base(path), result)
}

func (s *Service) Restore(ctx context.Context) (*domain.DatasetInfo, error) {
	if s.repo == nil {
		return nil, ErrPersistenceOff
	}

	info, err := s.repo.GetLatestDataset()
	if err != nil {
		return nil, NewDatasetError(ErrRestoreDataset, apiErrors.ErrDatabaseOperation, "", err.Error())
	}
	if info == nil {
		return nil, ErrDatasetNotStored
	}

	records, err := s.repo.ListByDataset(info.ID)
	if err != nil {
		return nil, NewDatasetError(ErrRestoreDataset, apiErrors.ErrDatabaseOperation, info.FileName, err.Error())
	}

	s.holder.Replace(&store.Dataset{
		Info:  *info,
		Store: store.NewMemoryStore(records, info.Dimensions),
	})
	metrics.RecordsLoaded.Set(float64(len(records)))

	logrus.WithFields(logrus.Fields{
		"dataset_id": info.ID,
		"records":    len(records),
	}).Info("dataset: dataset restaurado do banco")

	return info, nil
}

func (s *Service) Current() (*store.Dataset, error) {
	return s.holder.Current()
}

func (s *Service) replace(ctx context.Context, fileName string, result *loader.Result) (*domain.DatasetInfo, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewDatasetError(ErrGenerateID, apiErrors.ErrInternalServer, fileName, err.Error())
	}

	memStore := store.NewMemoryStore(result.Records, result.Dimensions)

	info := domain.DatasetInfo{
		ID:         id,
		FileName:   fileName,
		Records:    memStore.Len(),
		Dimensions: result.Dimensions,
		Warnings:   result.Warnings,
		LoadedAt:   s.now().UTC(),
	}
	if minDate, maxDate, ok := memStore.DateBounds(); ok {
		info.MinDate = minDate
		info.MaxDate = maxDate
	}

	// O dataset só é trocado depois de gravado, assim banco e memória não divergem
	if s.repo != nil {
		if err := s.repo.ReplaceDataset(ctx, &info, memStore.Records()); err != nil {
			logrus.WithError(err).Error("dataset: erro ao gravar dataset no banco")
			return nil, NewDatasetError(ErrPersistDataset, apiErrors.ErrDatabaseOperation, fileName, err.Error())
		}
	}

	s.holder.Replace(&store.Dataset{Info: info, Store: memStore})
	metrics.RecordsLoaded.Set(float64(info.Records))

	logrus.WithFields(logrus.Fields{
		"dataset_id": info.ID,
		"file_name":  fileName,
		"records":    info.Records,
		"warnings":   len(info.Warnings),
	}).Info("dataset: novo dataset carregado")

	return &info, nil
}

// loadError traduz os erros do loader em códigos da API
func loadError(fileName string, err error) error {
	code := apiErrors.ErrInvalidDataset
	if errors.Is(err, loader.ErrUnsupportedFormat) {
		code = apiErrors.ErrUnsupportedFile
	}

	logrus.WithError(err).WithField("file_name", fileName).Warn("dataset: arquivo rejeitado")
	return NewDatasetError(ErrInvalidFile, code, fileName, err.Error())
}
