package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/sales-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

const (
	datasetsTable     = "datasets"
	salesRecordsTable = "sales_records"

	// 15 colunas por linha, abaixo do limite de 65535 parâmetros do postgres
	salesRecordBatchSize = 1000
)

var salesRecordColumns = []string{
	"dataset_id",
	"line",
	"order_date",
	"order_id",
	"client_id",
	"client",
	"seller_id",
	"seller",
	"product",
	"locality",
	"payment_condition",
	"quantity",
	"unit_price",
	"discount",
	"total_amount",
}

//go:generate mockgen -source=sales_record.go -destination=mocks/sales_record.go -package=mocks

type SalesRecordRepository interface {
	ReplaceDataset(ctx context.Context, info *domain.DatasetInfo, records []domain.SalesRecord) error
	GetLatestDataset() (*domain.DatasetInfo, error)
	ListByDataset(datasetID string) ([]domain.SalesRecord, error)
}

type salesRecordRepository struct {
	conn *postgres.Connection
}

func NewSalesRecordRepository(conn *postgres.Connection) SalesRecordRepository {
	return &salesRecordRepository{
		conn: conn,
	}
}

// ReplaceDataset remove o dataset anterior e grava o novo numa única transação
func (r *salesRecordRepository) ReplaceDataset(ctx context.Context, info *domain.DatasetInfo, records []domain.SalesRecord) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+datasetsTable); err != nil {
			return fmt.Errorf("erro ao remover dataset anterior: %w", err)
		}

		query, args, err := buildDatasetInsert(info).ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir query de inserção: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("erro ao inserir dataset: %w", err)
		}

		for start := 0; start < len(records); start += salesRecordBatchSize {
			end := min(start+salesRecordBatchSize, len(records))

			query, args, err := buildSalesRecordInsert(info.ID, start, records[start:end]).ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir query de inserção: %w", err)
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("erro ao inserir registros %d-%d: %w", start, end, err)
			}
		}

		return nil
	})
}

func (r *salesRecordRepository) GetLatestDataset() (*domain.DatasetInfo, error) {
	query, args, err := squirrel.
		Select("id", "file_name", "records", "dimensions", "warnings", "min_date", "max_date", "loaded_at").
		From(datasetsTable).
		OrderBy("loaded_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var (
		info       domain.DatasetInfo
		dimensions []string
		minDate    sql.NullTime
		maxDate    sql.NullTime
	)
	err = r.conn.QueryRow(query, args...).Scan(
		&info.ID,
		&info.FileName,
		&info.Records,
		pq.Array(&dimensions),
		pq.Array(&info.Warnings),
		&minDate,
		&maxDate,
		&info.LoadedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear dataset: %w", err)
	}

	info.Dimensions = make([]domain.Dimension, 0, len(dimensions))
	for _, dim := range dimensions {
		info.Dimensions = append(info.Dimensions, domain.Dimension(dim))
	}
	info.MinDate = minDate.Time
	info.MaxDate = maxDate.Time

	return &info, nil
}

func (r *salesRecordRepository) ListByDataset(datasetID string) ([]domain.SalesRecord, error) {
	query, args, err := squirrel.
		Select(salesRecordColumns[2:]...).
		From(salesRecordsTable).
		Where(squirrel.Eq{"dataset_id": datasetID}).
		OrderBy("line ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	records := make([]domain.SalesRecord, 0)
	for rows.Next() {
		var record domain.SalesRecord
		if err := rows.Scan(
			&record.OrderDate,
			&record.OrderID,
			&record.ClientID,
			&record.Client,
			&record.SellerID,
			&record.Seller,
			&record.Product,
			&record.Locality,
			&record.PaymentCondition,
			&record.Quantity,
			&record.UnitPrice,
			&record.Discount,
			&record.TotalAmount,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear registro de venda: %w", err)
		}
		record.OrderDate = domain.TruncateDate(record.OrderDate)
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

func buildDatasetInsert(info *domain.DatasetInfo) squirrel.InsertBuilder {
	dimensions := make([]string, 0, len(info.Dimensions))
	for _, dim := range info.Dimensions {
		dimensions = append(dimensions, string(dim))
	}

	return squirrel.
		Insert(datasetsTable).
		Columns("id", "file_name", "records", "dimensions", "warnings", "min_date", "max_date", "loaded_at").
		Values(
			info.ID,
			info.FileName,
			info.Records,
			pq.Array(dimensions),
			pq.Array(info.Warnings),
			info.MinDate.Format(time.DateOnly),
			info.MaxDate.Format(time.DateOnly),
			info.LoadedAt,
		).
		PlaceholderFormat(squirrel.Dollar)
}

// buildSalesRecordInsert monta o insert em lote. offset é a posição do primeiro registro no dataset.
func buildSalesRecordInsert(datasetID string, offset int, records []domain.SalesRecord) squirrel.InsertBuilder {
	query := squirrel.
		Insert(salesRecordsTable).
		Columns(salesRecordColumns...).
		PlaceholderFormat(squirrel.Dollar)

	for i, record := range records {
		query = query.Values(
			datasetID,
			offset+i,
			record.OrderDate.Format(time.DateOnly),
			record.OrderID,
			record.ClientID,
			record.Client,
			record.SellerID,
			record.Seller,
			record.Product,
			record.Locality,
			record.PaymentCondition,
			record.Quantity,
			record.UnitPrice,
			record.Discount,
			record.TotalAmount,
		)
	}

	return query
}
