package loader

import (
	"strings"

	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

// Cabeçalhos do arquivo de vendas exportado pelo sistema de pedidos
const (
	ColumnOrderDate        = "FechaPedidoServerN"
	ColumnOrderID          = "NoPedidoStr"
	ColumnClient           = "Cliente"
	ColumnClientID         = "ClienteID"
	ColumnSeller           = "Vendedor"
	ColumnSellerID         = "VendedorID"
	ColumnProduct          = "Descripcion"
	ColumnLocality         = "Localidad Nombre"
	ColumnPaymentCondition = "Condicion Pago"
	ColumnQuantity         = "Cantidad"
	ColumnUnitPrice        = "Precio"
	ColumnDiscount         = "Descuento"
	ColumnTotalAmount      = "Total Vendido"
)

var requiredColumns = []string{ColumnOrderDate, ColumnTotalAmount}

var optionalColumns = []string{
	ColumnOrderID,
	ColumnClient,
	ColumnClientID,
	ColumnSeller,
	ColumnSellerID,
	ColumnProduct,
	ColumnLocality,
	ColumnPaymentCondition,
	ColumnQuantity,
	ColumnUnitPrice,
	ColumnDiscount,
}

// dimensionColumns liga cada dimensão categórica à coluna de origem
var dimensionColumns = map[domain.Dimension]string{
	domain.DimensionClient:           ColumnClient,
	domain.DimensionSeller:           ColumnSeller,
	domain.DimensionProduct:          ColumnProduct,
	domain.DimensionLocality:         ColumnLocality,
	domain.DimensionPaymentCondition: ColumnPaymentCondition,
	domain.DimensionOrder:            ColumnOrderID,
}

type columnIndex map[string]int

// get retorna a célula da coluna ou vazio quando a coluna não existe ou a linha é curta
func (c columnIndex) get(row []string, column string) string {
	idx, ok := c[column]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func (c columnIndex) has(column string) bool {
	_, ok := c[column]
	return ok
}

func buildColumnIndex(headers []string) columnIndex {
	index := make(columnIndex, len(headers))
	for i, header := range headers {
		name := strings.TrimSpace(header)
		if _, exists := index[name]; !exists {
			index[name] = i
		}
	}
	return index
}
