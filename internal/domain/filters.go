package domain

import "time"

// AllValues é o sentinela que representa "sem restrição" num filtro categórico
const AllValues = "all"

// DateRange é um intervalo fechado de datas do calendário
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains verifica se a data está dentro do intervalo, ignorando a hora
func (d DateRange) Contains(date time.Time) bool {
	day := TruncateDate(date)
	return !day.Before(TruncateDate(d.Start)) && !day.After(TruncateDate(d.End))
}

// IsValid retorna false quando a data de início é posterior à data de fim
func (d DateRange) IsValid() bool {
	return !TruncateDate(d.Start).After(TruncateDate(d.End))
}

// FilterCriteria reúne o intervalo de datas obrigatório e os filtros categóricos opcionais
type FilterCriteria struct {
	DateRange        DateRange `json:"date_range"`
	Locality         string    `json:"locality,omitempty"`
	Client           string    `json:"client,omitempty"`
	Seller           string    `json:"seller,omitempty"`
	PaymentCondition string    `json:"payment_condition,omitempty"`
	Month            string    `json:"month,omitempty"` // yyyy-mm, opcional
}

// Value retorna o valor do filtro para a dimensão informada
func (f FilterCriteria) Value(dim Dimension) string {
	switch dim {
	case DimensionLocality:
		return f.Locality
	case DimensionClient:
		return f.Client
	case DimensionSeller:
		return f.Seller
	case DimensionPaymentCondition:
		return f.PaymentCondition
	default:
		return ""
	}
}

// IsAll indica se o valor do filtro não restringe a seleção
func IsAll(value string) bool {
	return value == "" || value == AllValues
}

// TruncateDate remove a parte de hora mantendo apenas a data do calendário
func TruncateDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
