package domain

import "time"

// SalesRecord representa uma linha de venda do dataset carregado
type SalesRecord struct {
	OrderDate        time.Time `json:"order_date"` // Apenas a data do calendário, sem hora
	OrderID          string    `json:"order_id"`
	ClientID         string    `json:"client_id"`
	Client           string    `json:"client"`
	SellerID         string    `json:"seller_id"`
	Seller           string    `json:"seller"`
	Product          string    `json:"product"`
	Locality         string    `json:"locality"`
	PaymentCondition string    `json:"payment_condition"`
	Quantity         float64   `json:"quantity"`
	UnitPrice        float64   `json:"unit_price"`
	Discount         float64   `json:"discount"`
	TotalAmount      float64   `json:"total_amount"` // Quantidade x preço líquido, já calculado na origem
}

// Dimension retorna o valor da dimensão categórica do registro
func (r *SalesRecord) Dimension(dim Dimension) string {
	switch dim {
	case DimensionClient:
		return r.Client
	case DimensionSeller:
		return r.Seller
	case DimensionProduct:
		return r.Product
	case DimensionLocality:
		return r.Locality
	case DimensionPaymentCondition:
		return r.PaymentCondition
	case DimensionOrder:
		return r.OrderID
	default:
		return ""
	}
}

// Month retorna o mês do pedido no formato yyyy-mm
func (r *SalesRecord) Month() string {
	return r.OrderDate.Format(MonthLayout)
}

// Day retorna o dia do pedido no formato yyyy-mm-dd
func (r *SalesRecord) Day() string {
	return r.OrderDate.Format(time.DateOnly)
}
