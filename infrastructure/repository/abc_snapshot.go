package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

const (
	abcSnapshotsTable = "abc_snapshots s"
)

var abcSnapshotColumns = []string{
	"s.id",
	"s.dimension",
	"s.period",
	"s.key",
	"s.amount",
	"s.cumulative_percent",
	"s.class",
	"s.position",
	"s.position_change",
	"s.previous_position",
	"s.created_at",
	"s.updated_at",
}

//go:generate mockgen -source=abc_snapshot.go -destination=mocks/abc_snapshot.go -package=mocks

type ABCSnapshotRepository interface {
	ListByPeriod(dimension string, period string) (*domain.ABCSnapshotResponse, error)
	SaveOrUpdate(items []*domain.ABCSnapshotItem) error
}

type abcSnapshotRepository struct {
	conn *postgres.Connection
}

func NewABCSnapshotRepository(conn *postgres.Connection) ABCSnapshotRepository {
	return &abcSnapshotRepository{
		conn: conn,
	}
}

func (r *abcSnapshotRepository) ListByPeriod(dimension string, period string) (*domain.ABCSnapshotResponse, error) {
	sqlQuery, args, err := buildSnapshotSelect(dimension, period).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	items := make([]domain.ABCSnapshotItem, 0)
	var lastUpdate time.Time

	for rows.Next() {
		item, err := scanSnapshotItem(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear item do snapshot: %w", err)
		}

		items = append(items, *item)

		if item.UpdatedAt.After(lastUpdate) {
			lastUpdate = item.UpdatedAt
		}
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return &domain.ABCSnapshotResponse{
		Dimension:  dimension,
		Period:     period,
		Items:      items,
		LastUpdate: lastUpdate,
	}, nil
}

func (r *abcSnapshotRepository) SaveOrUpdate(items []*domain.ABCSnapshotItem) error {
	if len(items) == 0 {
		return nil
	}

	sqlQuery, args, err := buildSnapshotUpsert(items).ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar query de inserção: %w", err)
	}

	return nil
}

func buildSnapshotSelect(dimension string, period string) squirrel.SelectBuilder {
	return squirrel.
		Select(abcSnapshotColumns...).
		From(abcSnapshotsTable).
		Where(squirrel.Eq{"s.dimension": dimension, "s.period": period}).
		OrderBy("s.position ASC").
		PlaceholderFormat(squirrel.Dollar)
}

func buildSnapshotUpsert(items []*domain.ABCSnapshotItem) squirrel.InsertBuilder {
	query := squirrel.StatementBuilder.
		Insert("abc_snapshots").
		Columns(
			"dimension",
			"period",
			"key",
			"amount",
			"cumulative_percent",
			"class",
			"position",
			"position_change",
			"previous_position",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, item := range items {
		query = query.Values(
			item.Dimension,
			item.Period,
			item.Key,
			item.Amount,
			item.CumulativePercent,
			string(item.Class),
			item.Position,
			item.PositionChange,
			item.PreviousPosition,
		)
	}

	return query.Suffix(`ON CONFLICT (dimension, period, key) DO UPDATE SET
			amount = EXCLUDED.amount,
			cumulative_percent = EXCLUDED.cumulative_percent,
			class = EXCLUDED.class,
			position = EXCLUDED.position,
			position_change = EXCLUDED.position_change,
			previous_position = EXCLUDED.previous_position,
			updated_at = CURRENT_TIMESTAMP`)
}

func scanSnapshotItem(rows *sql.Rows) (*domain.ABCSnapshotItem, error) {
	item := &domain.ABCSnapshotItem{}
	var class string

	err := rows.Scan(
		&item.ID,
		&item.Dimension,
		&item.Period,
		&item.Key,
		&item.Amount,
		&item.CumulativePercent,
		&class,
		&item.Position,
		&item.PositionChange,
		&item.PreviousPosition,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	item.Class = domain.ABCClass(class)

	return item, nil
}
