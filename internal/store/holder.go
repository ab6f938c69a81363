package store

import (
	"errors"
	"sync/atomic"

	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

// ErrNoDataset indica que nenhum dataset foi carregado ainda
var ErrNoDataset = errors.New("nenhum dataset de vendas carregado")

// Dataset associa o store aos metadados do arquivo carregado
type Dataset struct {
	Info  domain.DatasetInfo
	Store RecordStore
}

// Holder guarda o dataset corrente. A troca é atômica, então leitores sempre
// enxergam um dataset completo.
type Holder struct {
	current atomic.Pointer[Dataset]
}

func NewHolder() *Holder {
	return &Holder{}
}

// Current retorna o dataset carregado ou ErrNoDataset
func (h *Holder) Current() (*Dataset, error) {
	dataset := h.current.Load()
	if dataset == nil {
		return nil, ErrNoDataset
	}
	return dataset, nil
}

// Replace troca o dataset corrente
func (h *Holder) Replace(dataset *Dataset) {
	h.current.Store(dataset)
}
