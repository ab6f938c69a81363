package domain

import "time"

// DatasetInfo descreve o dataset de vendas atualmente carregado
type DatasetInfo struct {
	ID         string      `json:"id"`
	FileName   string      `json:"file_name"`
	Records    int         `json:"records"`
	Dimensions []Dimension `json:"dimensions"` // Dimensões presentes no arquivo
	Warnings   []string    `json:"warnings,omitempty"`
	MinDate    time.Time   `json:"min_date"`
	MaxDate    time.Time   `json:"max_date"`
	LoadedAt   time.Time   `json:"loaded_at"`
}

// FilterOptions lista os valores disponíveis para montar os filtros
type FilterOptions struct {
	Values  map[Dimension][]string `json:"values"`
	Months  []string               `json:"months"`
	MinDate time.Time              `json:"min_date"`
	MaxDate time.Time              `json:"max_date"`
}
