package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

func TestBuildSnapshotUpsert(t *testing.T) {
	items := []*domain.ABCSnapshotItem{
		{Dimension: "client", Period: "2024-01", Key: "Alfa", Amount: 500, CumulativePercent: 50, Class: domain.ClassA, Position: 1, PositionChange: 2, PreviousPosition: 3},
		{Dimension: "client", Period: "2024-01", Key: "Beta", Amount: 300, CumulativePercent: 80, Class: domain.ClassA, Position: 2},
	}

	query, args, err := buildSnapshotUpsert(items).ToSql()

	require.NoError(t, err)
	assert.Contains(t, query, "INSERT INTO abc_snapshots (dimension,period,key,amount,cumulative_percent,class,position,position_change,previous_position) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9),($10,")
	assert.Contains(t, query, "ON CONFLICT (dimension, period, key) DO UPDATE SET")
	require.Len(t, args, 18)
	assert.Equal(t, "Alfa", args[2])
	assert.Equal(t, "A", args[5])
	assert.Equal(t, 3, args[8])
	assert.Equal(t, "Beta", args[11])
}

func TestBuildSnapshotSelect(t *testing.T) {
	query, args, err := buildSnapshotSelect("product", "2024-02").ToSql()

	require.NoError(t, err)
	assert.Contains(t, query, "FROM abc_snapshots s WHERE s.dimension = $1 AND s.period = $2 ORDER BY s.position ASC")
	assert.Equal(t, []any{"product", "2024-02"}, args)
}

func TestBuildSalesRecordInsert(t *testing.T) {
	records := []domain.SalesRecord{
		{OrderDate: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), OrderID: "P1", Client: "Alfa", TotalAmount: 100},
		{OrderDate: time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC), OrderID: "P2", Client: "Beta", TotalAmount: 50},
	}

	query, args, err := buildSalesRecordInsert("ds1", 1000, records).ToSql()

	require.NoError(t, err)
	assert.Contains(t, query, "INSERT INTO sales_records (dataset_id,line,order_date,")
	require.Len(t, args, 2*len(salesRecordColumns))
	assert.Equal(t, "ds1", args[0])
	assert.Equal(t, 1000, args[1])
	assert.Equal(t, "2024-01-05", args[2])
	assert.Equal(t, 1001, args[len(salesRecordColumns)+1])
}

func TestBuildDatasetInsert(t *testing.T) {
	info := &domain.DatasetInfo{
		ID:         "abc",
		FileName:   "ventas.csv",
		Records:    10,
		Dimensions: []domain.Dimension{domain.DimensionClient},
		MinDate:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		MaxDate:    time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
	}

	query, args, err := buildDatasetInsert(info).ToSql()

	require.NoError(t, err)
	assert.Contains(t, query, "INSERT INTO datasets (id,file_name,records,dimensions,warnings,min_date,max_date,loaded_at)")
	require.Len(t, args, 8)
	assert.Equal(t, "2024-01-01", args[5])
	assert.Equal(t, "2024-03-31", args[6])
}

func TestMemoryUserRepository(t *testing.T) {
	repo := NewMemoryUserRepository(domain.User{ID: 1, Email: "Admin@Sales.local", RoleID: 1, Active: true})

	user, err := repo.GetUserByEmail("admin@sales.local")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, 1, user.ID)

	user, err = repo.GetUserByID(1)
	require.NoError(t, err)
	require.NotNil(t, user)

	user, err = repo.GetUserByEmail("outro@sales.local")
	require.NoError(t, err)
	assert.Nil(t, user)

	user, err = repo.GetUserByID(2)
	require.NoError(t, err)
	assert.Nil(t, user)
}
