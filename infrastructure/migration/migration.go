// Package migration cria as tabelas usadas pela API
package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/infrastructure/database/postgres"
)

// Step é um passo idempotente de migração
type Step struct {
	Name      string
	Statement string
}

// Steps na ordem em que devem ser aplicados
var Steps = []Step{
	{
		Name: "create_roles",
		Statement: `CREATE TABLE IF NOT EXISTS roles (
			id INTEGER PRIMARY KEY,
			name VARCHAR(50) NOT NULL
		)`,
	},
	{
		Name: "seed_roles",
		Statement: `INSERT INTO roles (id, name) VALUES (1, 'admin'), (2, 'supervisor'), (3, 'analyst')
			ON CONFLICT (id) DO NOTHING`,
	},
	{
		Name: "create_users",
		Statement: `CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			lastname VARCHAR(100) NOT NULL,
			email VARCHAR(255) NOT NULL UNIQUE,
			password_hash VARCHAR(255) NOT NULL,
			active BOOLEAN NOT NULL DEFAULT false,
			role_id INTEGER NOT NULL REFERENCES roles(id),
			deleted BOOLEAN NOT NULL DEFAULT false,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
	},
	{
		Name: "create_datasets",
		Statement: `CREATE TABLE IF NOT EXISTS datasets (
			id VARCHAR(21) PRIMARY KEY,
			file_name VARCHAR(255) NOT NULL,
			records INTEGER NOT NULL,
			dimensions TEXT[] NOT NULL DEFAULT '{}',
			warnings TEXT[] NOT NULL DEFAULT '{}',
			min_date DATE,
			max_date DATE,
			loaded_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
	},
	{
		Name: "create_sales_records",
		Statement: `CREATE TABLE IF NOT EXISTS sales_records (
			id BIGSERIAL PRIMARY KEY,
			dataset_id VARCHAR(21) NOT NULL REFERENCES datasets(id) ON DELETE CASCADE,
			line INTEGER NOT NULL,
			order_date DATE NOT NULL,
			order_id VARCHAR(100) NOT NULL DEFAULT '',
			client_id VARCHAR(100) NOT NULL DEFAULT '',
			client VARCHAR(255) NOT NULL DEFAULT '',
			seller_id VARCHAR(100) NOT NULL DEFAULT '',
			seller VARCHAR(255) NOT NULL DEFAULT '',
			product VARCHAR(255) NOT NULL DEFAULT '',
			locality VARCHAR(255) NOT NULL DEFAULT '',
			payment_condition VARCHAR(255) NOT NULL DEFAULT '',
			quantity DOUBLE PRECISION NOT NULL DEFAULT 0,
			unit_price DOUBLE PRECISION NOT NULL DEFAULT 0,
			discount DOUBLE PRECISION NOT NULL DEFAULT 0,
			total_amount DOUBLE PRECISION NOT NULL DEFAULT 0
		)`,
	},
	{
		Name:      "index_sales_records_dataset",
		Statement: `CREATE INDEX IF NOT EXISTS idx_sales_records_dataset ON sales_records (dataset_id, line)`,
	},
	{
		Name: "create_abc_snapshots",
		Statement: `CREATE TABLE IF NOT EXISTS abc_snapshots (
			id BIGSERIAL PRIMARY KEY,
			dimension VARCHAR(50) NOT NULL,
			period VARCHAR(7) NOT NULL,
			key VARCHAR(255) NOT NULL,
			amount DOUBLE PRECISION NOT NULL,
			cumulative_percent DOUBLE PRECISION NOT NULL,
			class CHAR(1) NOT NULL,
			position INTEGER NOT NULL,
			position_change INTEGER NOT NULL DEFAULT 0,
			previous_position INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT abc_snapshots_dimension_period_key UNIQUE (dimension, period, key)
		)`,
	},
}

// Run aplica todos os passos numa única transação
func Run(ctx context.Context, conn postgres.Conn) error {
	logrus.Info("Iniciando migração do banco de dados...")
	startTime := time.Now()

	err := conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, step := range Steps {
			if _, err := tx.ExecContext(ctx, step.Statement); err != nil {
				return fmt.Errorf("erro ao aplicar migração %s: %w", step.Name, err)
			}
			logrus.Debugf("Migração %s aplicada", step.Name)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logrus.Infof("Migração concluída em %v", time.Since(startTime))
	return nil
}
