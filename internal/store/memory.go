// Package store contém o armazenamento em memória dos registros de vendas carregados
package store

import (
	"sort"
	"time"

	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

// RecordStore é a tabela imutável de registros de vendas
type RecordStore interface {
	Records() []domain.SalesRecord
	Len() int
	HasDimension(dim domain.Dimension) bool
	Distinct(dim domain.Dimension) []string
	Months() []string
	DateBounds() (min time.Time, max time.Time, ok bool)
}

// MemoryStore implementa RecordStore sobre um slice que nunca é alterado após a criação
type MemoryStore struct {
	records    []domain.SalesRecord
	dimensions map[domain.Dimension]bool
	distinct   map[domain.Dimension][]string
	months     []string
	minDate    time.Time
	maxDate    time.Time
}

// NewMemoryStore copia os registros e pré-calcula os valores distintos de cada dimensão.
// dimensions indica as colunas presentes no arquivo de origem; nil significa todas.
func NewMemoryStore(records []domain.SalesRecord, dimensions []domain.Dimension) *MemoryStore {
	copied := make([]domain.SalesRecord, len(records))
	copy(copied, records)

	available := make(map[domain.Dimension]bool)
	if dimensions == nil {
		for _, dim := range domain.FilterDimensions {
			available[dim] = true
		}
		available[domain.DimensionProduct] = true
		available[domain.DimensionOrder] = true
	} else {
		for _, dim := range dimensions {
			available[dim] = true
		}
	}

	s := &MemoryStore{
		records:    copied,
		dimensions: available,
		distinct:   make(map[domain.Dimension][]string),
	}
	s.index()

	return s
}

func (s *MemoryStore) index() {
	seen := make(map[domain.Dimension]map[string]bool)
	monthSeen := make(map[string]bool)

	for dim := range s.dimensions {
		seen[dim] = make(map[string]bool)
		s.distinct[dim] = make([]string, 0)
	}

	for i := range s.records {
		record := &s.records[i]

		for dim := range s.dimensions {
			value := record.Dimension(dim)
			if !seen[dim][value] {
				seen[dim][value] = true
				s.distinct[dim] = append(s.distinct[dim], value)
			}
		}

		month := record.Month()
		if !monthSeen[month] {
			monthSeen[month] = true
			s.months = append(s.months, month)
		}

		if i == 0 || record.OrderDate.Before(s.minDate) {
			s.minDate = record.OrderDate
		}
		if i == 0 || record.OrderDate.After(s.maxDate) {
			s.maxDate = record.OrderDate
		}
	}

	sort.Strings(s.months)
}

// Records retorna os registros. O slice é compartilhado e não deve ser alterado.
func (s *MemoryStore) Records() []domain.SalesRecord {
	return s.records
}

func (s *MemoryStore) Len() int {
	return len(s.records)
}

// HasDimension indica se a coluna da dimensão existia no arquivo de origem
func (s *MemoryStore) HasDimension(dim domain.Dimension) bool {
	return s.dimensions[dim]
}

// Distinct retorna os valores distintos da dimensão na ordem da primeira ocorrência
func (s *MemoryStore) Distinct(dim domain.Dimension) []string {
	values := s.distinct[dim]
	out := make([]string, len(values))
	copy(out, values)
	return out
}

// Months retorna os meses (yyyy-mm) presentes no dataset, em ordem crescente
func (s *MemoryStore) Months() []string {
	out := make([]string, len(s.months))
	copy(out, s.months)
	return out
}

func (s *MemoryStore) DateBounds() (time.Time, time.Time, bool) {
	if len(s.records) == 0 {
		return time.Time{}, time.Time{}, false
	}
	return s.minDate, s.maxDate, true
}
