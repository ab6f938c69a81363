package domain

import "time"

// ABCSnapshotItem é uma linha persistida da classificação ABC de um período
type ABCSnapshotItem struct {
	ID                int64     `json:"id"`
	Dimension         string    `json:"dimension"`
	Period            string    `json:"period"` // Formato yyyy-mm
	Key               string    `json:"key"`
	Amount            float64   `json:"amount"`
	CumulativePercent float64   `json:"cumulative_percent"`
	Class             ABCClass  `json:"class"`
	Position          int       `json:"position"`
	PositionChange    int       `json:"position_change"` // Valor positivo = subiu, negativo = desceu, 0 = manteve
	PreviousPosition  int       `json:"previous_position"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// ABCSnapshotResponse agrupa os itens de um snapshot
type ABCSnapshotResponse struct {
	Dimension  string            `json:"dimension"`
	Period     string            `json:"period"`
	Items      []ABCSnapshotItem `json:"items"`
	LastUpdate time.Time         `json:"last_update"`
}
