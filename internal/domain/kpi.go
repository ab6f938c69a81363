package domain

// KPIReport reúne os indicadores escalares de um recorte filtrado
type KPIReport struct {
	Sellers                int     `json:"sellers"`
	Orders                 int     `json:"orders"`
	Clients                int     `json:"clients"`
	Products               int     `json:"products"`
	TotalQuantity          float64 `json:"total_quantity"`
	TotalAmount            float64 `json:"total_amount"`
	AverageAmountPerClient float64 `json:"average_amount_per_client"`
	AverageTicket          float64 `json:"average_ticket"`
	MaxLineAmount          float64 `json:"max_line_amount"`
}

// DiscountStats resume a distribuição de descontos de um vendedor
type DiscountStats struct {
	Seller string  `json:"seller"`
	Count  int     `json:"count"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
}

// SellerMonthGrid é a tabela densa vendedor x mês, com zero nas células sem venda
type SellerMonthGrid struct {
	Months  []string    `json:"months"`
	Sellers []string    `json:"sellers"`
	Cells   [][]float64 `json:"cells"` // Cells[vendedor][mês]
}
