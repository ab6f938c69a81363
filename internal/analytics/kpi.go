package analytics

import (
	"sort"

	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

// Summarize calcula os indicadores do subconjunto. Entrada vazia gera relatório zerado.
func Summarize(records []domain.SalesRecord) domain.KPIReport {
	var report domain.KPIReport
	if len(records) == 0 {
		return report
	}

	sellers := make(map[string]struct{})
	orders := make(map[string]struct{})
	clients := make(map[string]struct{})
	products := make(map[string]struct{})

	report.MaxLineAmount = records[0].TotalAmount
	for i := range records {
		r := &records[i]
		sellers[r.Seller] = struct{}{}
		orders[r.OrderID] = struct{}{}
		clients[r.Client] = struct{}{}
		products[r.Product] = struct{}{}

		report.TotalQuantity += r.Quantity
		report.TotalAmount += r.TotalAmount
		if r.TotalAmount > report.MaxLineAmount {
			report.MaxLineAmount = r.TotalAmount
		}
	}

	report.Sellers = len(sellers)
	report.Orders = len(orders)
	report.Clients = len(clients)
	report.Products = len(products)
	report.AverageAmountPerClient = report.TotalAmount / float64(report.Clients)
	report.AverageTicket = report.TotalAmount / float64(report.Orders)

	return report
}

// ClearUnavailable zera as contagens cujas colunas não existem no arquivo, junto com a
// média que depende delas, e retorna as dimensões zeradas.
func ClearUnavailable(report *domain.KPIReport, source interface {
	HasDimension(dim domain.Dimension) bool
}) []domain.Dimension {
	cleared := make([]domain.Dimension, 0)

	if !source.HasDimension(domain.DimensionSeller) {
		report.Sellers = 0
		cleared = append(cleared, domain.DimensionSeller)
	}
	if !source.HasDimension(domain.DimensionOrder) {
		report.Orders = 0
		report.AverageTicket = 0
		cleared = append(cleared, domain.DimensionOrder)
	}
	if !source.HasDimension(domain.DimensionClient) {
		report.Clients = 0
		report.AverageAmountPerClient = 0
		cleared = append(cleared, domain.DimensionClient)
	}
	if !source.HasDimension(domain.DimensionProduct) {
		report.Products = 0
		cleared = append(cleared, domain.DimensionProduct)
	}

	return cleared
}

// TopNShare soma o valor vendido pelos n maiores grupos da chave
func TopNShare(records []domain.SalesRecord, key domain.AggregationKey, n int) (float64, error) {
	rows, err := Aggregate(records, key)
	if err != nil {
		return 0, err
	}

	top, err := TopN(rows, n, domain.MeasureAmount, domain.Descending)
	if err != nil {
		return 0, err
	}

	var total float64
	for _, row := range top {
		total += row.Amount
	}
	return total, nil
}

// DiscountStats resume os descontos por vendedor, na ordem da primeira ocorrência
func DiscountStats(records []domain.SalesRecord) []domain.DiscountStats {
	index := make(map[string]int)
	sellers := make([]string, 0)
	discounts := make([][]float64, 0)

	for i := range records {
		seller := records[i].Seller
		pos, ok := index[seller]
		if !ok {
			pos = len(sellers)
			index[seller] = pos
			sellers = append(sellers, seller)
			discounts = append(discounts, nil)
		}
		discounts[pos] = append(discounts[pos], records[i].Discount)
	}

	stats := make([]domain.DiscountStats, 0, len(sellers))
	for i, seller := range sellers {
		values := discounts[i]
		sort.Float64s(values)

		var sum float64
		for _, v := range values {
			sum += v
		}

		stats = append(stats, domain.DiscountStats{
			Seller: seller,
			Count:  len(values),
			Min:    values[0],
			Max:    values[len(values)-1],
			Mean:   sum / float64(len(values)),
			Median: median(values),
		})
	}

	return stats
}

// median espera os valores já ordenados
func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
