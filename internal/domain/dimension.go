package domain

// Dimension identifica uma coluna categórica do dataset de vendas
type Dimension string

const (
	DimensionClient           Dimension = "client"
	DimensionSeller           Dimension = "seller"
	DimensionProduct          Dimension = "product"
	DimensionLocality         Dimension = "locality"
	DimensionPaymentCondition Dimension = "payment_condition"
	DimensionOrder            Dimension = "order"
)

// FilterDimensions são as dimensões que podem ser usadas como filtro
var FilterDimensions = []Dimension{
	DimensionLocality,
	DimensionClient,
	DimensionSeller,
	DimensionPaymentCondition,
}

// MonthLayout é o formato usado para agrupar por mês (ex: 2024-01)
const MonthLayout = "2006-01"
