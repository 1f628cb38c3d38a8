package services

import (
	"database/sql"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/Deep6432/Blinkrloan-Dashboard/src/models"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`
		CREATE TABLE monthly_targets (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			month INTEGER NOT NULL,
			year INTEGER NOT NULL,
			target_amount TEXT NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE(month, year)
		)`)
	require.NoError(t, err)
	return db
}

func TestTargetServiceRoundTrip(t *testing.T) {
	svc := NewTargetService(newTestDB(t))

	err := svc.SetMonthlyTarget(models.MonthlyTarget{
		Month:        7,
		Year:         2025,
		TargetAmount: decimal.NewFromInt(500000),
	})
	require.NoError(t, err)

	got, err := svc.GetMonthlyTarget(7, 2025)
	require.NoError(t, err)
	assert.Equal(t, 7, got.Month)
	assert.Equal(t, 2025, got.Year)
	assert.True(t, got.TargetAmount.Equal(decimal.NewFromInt(500000)))
}

func TestTargetServiceUpsertOverwrites(t *testing.T) {
	svc := NewTargetService(newTestDB(t))

	require.NoError(t, svc.SetMonthlyTarget(models.MonthlyTarget{
		Month: 7, Year: 2025, TargetAmount: decimal.NewFromInt(100000),
	}))
	require.NoError(t, svc.SetMonthlyTarget(models.MonthlyTarget{
		Month: 7, Year: 2025, TargetAmount: decimal.NewFromFloat(250000.50),
	}))

	got, err := svc.GetMonthlyTarget(7, 2025)
	require.NoError(t, err)
	assert.Equal(t, "250000.5", got.TargetAmount.String())
}

func TestTargetServiceMissingMonthIsZero(t *testing.T) {
	svc := NewTargetService(newTestDB(t))

	got, err := svc.GetMonthlyTarget(1, 2024)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Month)
	assert.Equal(t, 2024, got.Year)
	assert.True(t, got.TargetAmount.IsZero())
}

func TestTargetServiceMonthsAreIndependent(t *testing.T) {
	svc := NewTargetService(newTestDB(t))

	require.NoError(t, svc.SetMonthlyTarget(models.MonthlyTarget{
		Month: 6, Year: 2025, TargetAmount: decimal.NewFromInt(400000),
	}))
	require.NoError(t, svc.SetMonthlyTarget(models.MonthlyTarget{
		Month: 7, Year: 2025, TargetAmount: decimal.NewFromInt(500000),
	}))

	june, err := svc.GetMonthlyTarget(6, 2025)
	require.NoError(t, err)
	july, err := svc.GetMonthlyTarget(7, 2025)
	require.NoError(t, err)
	assert.Equal(t, "400000", june.TargetAmount.String())
	assert.Equal(t, "500000", july.TargetAmount.String())
}
