package domain

// DashboardReport reúne os indicadores exibidos no painel principal
type DashboardReport struct {
	Filters         FilterCriteria `json:"filters"`
	KPIs            KPIReport      `json:"kpis"`
	TopClientsShare float64        `json:"top_clients_share"` // Valor vendido pelos N maiores clientes
	TopSellersShare float64        `json:"top_sellers_share"`
	BestDays        []AggregateRow `json:"best_days"`
	WorstDays       []AggregateRow `json:"worst_days"`
	Warnings        []string       `json:"warnings,omitempty"`
}

type AggregateReport struct {
	Filters  FilterCriteria `json:"filters"`
	Key      AggregationKey `json:"key"`
	Rows     []AggregateRow `json:"rows"`
	Warnings []string       `json:"warnings,omitempty"`
}

type ABCReport struct {
	Filters    FilterCriteria `json:"filters"`
	Key        AggregationKey `json:"key"`
	Limit      int            `json:"limit"`
	Thresholds ABCThresholds  `json:"thresholds"`
	Rows       []ABCRow       `json:"rows"`
	Warnings   []string       `json:"warnings,omitempty"`
}

// ABCMultiReport traz a classificação de várias chaves calculadas em paralelo
type ABCMultiReport struct {
	Filters    FilterCriteria              `json:"filters"`
	Limit      int                         `json:"limit"`
	Thresholds ABCThresholds               `json:"thresholds"`
	Results    map[AggregationKey][]ABCRow `json:"results"`
	Warnings   []string                    `json:"warnings,omitempty"`
}

type CrosstabReport struct {
	Filters  FilterCriteria  `json:"filters"`
	Grid     SellerMonthGrid `json:"grid"`
	Warnings []string        `json:"warnings,omitempty"`
}

type DiscountReport struct {
	Filters  FilterCriteria  `json:"filters"`
	Sellers  []DiscountStats `json:"sellers"`
	Warnings []string        `json:"warnings,omitempty"`
}
