package analytics

import (
	"time"

	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sampleRecords() []domain.SalesRecord {
	return []domain.SalesRecord{
		{OrderDate: day(2024, 1, 5), OrderID: "P1", Client: "Alfa", Seller: "Ana", Product: "Caneta", Locality: "Norte", PaymentCondition: "Contado", Quantity: 2, Discount: 5, TotalAmount: 100},
		{OrderDate: day(2024, 1, 5), OrderID: "P1", Client: "Alfa", Seller: "Ana", Product: "Lapis", Locality: "Norte", PaymentCondition: "Contado", Quantity: 1, Discount: 0, TotalAmount: 50},
		{OrderDate: day(2024, 1, 20), OrderID: "P2", Client: "Beta", Seller: "Bruno", Product: "Caneta", Locality: "Sul", PaymentCondition: "30 dias", Quantity: 4, Discount: 10, TotalAmount: 200},
		{OrderDate: day(2024, 2, 3), OrderID: "P3", Client: "Gama", Seller: "Ana", Product: "Caderno", Locality: "Sul", PaymentCondition: "Contado", Quantity: 3, Discount: 15, TotalAmount: 300},
		{OrderDate: day(2024, 2, 28), OrderID: "P4", Client: "Beta", Seller: "Carla", Product: "Lapis", Locality: "Norte", PaymentCondition: "30 dias", Quantity: 5, Discount: 0, TotalAmount: 250},
		{OrderDate: day(2024, 3, 10), OrderID: "P5", Client: "alfa", Seller: "Bruno", Product: "Caderno", Locality: "Leste", PaymentCondition: "Contado", Quantity: 1, Discount: 20, TotalAmount: 100},
	}
}

func fullRange() domain.DateRange {
	return domain.DateRange{Start: day(2024, 1, 1), End: day(2024, 12, 31)}
}

type fakeSource struct {
	records []domain.SalesRecord
	missing map[domain.Dimension]bool
}

func (f *fakeSource) Records() []domain.SalesRecord { return f.records }

func (f *fakeSource) HasDimension(dim domain.Dimension) bool { return !f.missing[dim] }
