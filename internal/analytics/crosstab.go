package analytics

import (
	"sort"

	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

// MonthlyBySeller monta a grade vendedor x mês com o valor vendido.
// Células sem venda ficam com zero. Vendedores e meses saem ordenados.
func MonthlyBySeller(records []domain.SalesRecord) domain.SellerMonthGrid {
	sellerIdx := make(map[string]int)
	monthIdx := make(map[string]int)
	sellers := make([]string, 0)
	months := make([]string, 0)

	for i := range records {
		seller := records[i].Seller
		if _, ok := sellerIdx[seller]; !ok {
			sellerIdx[seller] = 0
			sellers = append(sellers, seller)
		}
		month := records[i].Month()
		if _, ok := monthIdx[month]; !ok {
			monthIdx[month] = 0
			months = append(months, month)
		}
	}

	sort.Strings(sellers)
	sort.Strings(months)
	for i, s := range sellers {
		sellerIdx[s] = i
	}
	for i, m := range months {
		monthIdx[m] = i
	}

	cells := make([][]float64, len(sellers))
	for i := range cells {
		cells[i] = make([]float64, len(months))
	}

	for i := range records {
		row := sellerIdx[records[i].Seller]
		col := monthIdx[records[i].Month()]
		cells[row][col] += records[i].TotalAmount
	}

	return domain.SellerMonthGrid{
		Months:  months,
		Sellers: sellers,
		Cells:   cells,
	}
}
