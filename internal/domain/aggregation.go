package domain

// AggregationKey é a dimensão usada para agrupar os registros
type AggregationKey string

const (
	KeyClient           AggregationKey = "client"
	KeySeller           AggregationKey = "seller"
	KeyProduct          AggregationKey = "product"
	KeyLocality         AggregationKey = "locality"
	KeyPaymentCondition AggregationKey = "payment_condition"
	KeyMonth            AggregationKey = "month"
	KeyDay              AggregationKey = "day"
)

// AggregationKeys lista todas as chaves suportadas
var AggregationKeys = []AggregationKey{
	KeyClient,
	KeySeller,
	KeyProduct,
	KeyLocality,
	KeyPaymentCondition,
	KeyMonth,
	KeyDay,
}

// IsValid verifica se a chave é conhecida
func (k AggregationKey) IsValid() bool {
	for _, key := range AggregationKeys {
		if k == key {
			return true
		}
	}
	return false
}

// Dimension retorna a dimensão categórica da chave (vazio para mês e dia)
func (k AggregationKey) Dimension() Dimension {
	switch k {
	case KeyClient:
		return DimensionClient
	case KeySeller:
		return DimensionSeller
	case KeyProduct:
		return DimensionProduct
	case KeyLocality:
		return DimensionLocality
	case KeyPaymentCondition:
		return DimensionPaymentCondition
	default:
		return ""
	}
}

// Measure é a medida numérica usada em ordenações
type Measure string

const (
	MeasureAmount   Measure = "amount"
	MeasureQuantity Measure = "quantity"
)

// Direction define a ordem do ranking
type Direction string

const (
	Descending Direction = "desc"
	Ascending  Direction = "asc"
)

// AggregateRow é o resultado de um grupo
type AggregateRow struct {
	Key      string  `json:"key"`
	Quantity float64 `json:"quantity"`
	Amount   float64 `json:"amount"`
	Records  int     `json:"records"`
}

// Value retorna o valor da medida informada
func (r AggregateRow) Value(measure Measure) float64 {
	if measure == MeasureQuantity {
		return r.Quantity
	}
	return r.Amount
}

// RankedRow é um AggregateRow com posição e valores acumulados
type RankedRow struct {
	AggregateRow
	Rank              int     `json:"rank"`
	CumulativeAmount  float64 `json:"cumulative_amount"`
	CumulativePercent float64 `json:"cumulative_percent"`
}

// ABCClass é a classe de Pareto atribuída a um grupo
type ABCClass string

const (
	ClassA ABCClass = "A"
	ClassB ABCClass = "B"
	ClassC ABCClass = "C"
)

// ABCRow é um RankedRow com a classe ABC
type ABCRow struct {
	RankedRow
	Class ABCClass `json:"class"`
}

// ABCThresholds são os limites percentuais acumulados das classes A e B
type ABCThresholds struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// DefaultABCThresholds retorna os limites 80/95
func DefaultABCThresholds() ABCThresholds {
	return ABCThresholds{A: 80, B: 95}
}

// IsValid verifica se 0 < A <= B <= 100
func (t ABCThresholds) IsValid() bool {
	return t.A > 0 && t.A <= t.B && t.B <= 100
}
