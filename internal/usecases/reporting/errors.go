package reporting

import (
	"errors"

	"github.com/vfg2006/sales-analytics-api/internal/analytics"
	"github.com/vfg2006/sales-analytics-api/internal/store"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
)

// ErrSnapshotsUnavailable indica que o banco de snapshots não está configurado
var ErrSnapshotsUnavailable = errors.New("snapshots ABC indisponíveis sem banco de dados")

// ErrorCode traduz os erros de análise nos códigos da API
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, analytics.ErrInvalidRange):
		return apiErrors.ErrInvalidDateRange
	case errors.Is(err, analytics.ErrInvalidArgument):
		return apiErrors.ErrInvalidRequest
	case errors.Is(err, analytics.ErrPrecondition):
		return apiErrors.ErrPrecondition
	case errors.Is(err, analytics.ErrDivisionUndefined):
		return apiErrors.ErrDivisionUndefined
	case errors.Is(err, store.ErrNoDataset):
		return apiErrors.ErrNoDataset
	case errors.Is(err, ErrSnapshotsUnavailable):
		return apiErrors.ErrExternalService
	default:
		return apiErrors.ErrInternalServer
	}
}
