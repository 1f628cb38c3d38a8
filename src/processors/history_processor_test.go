package processors

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Deep6432/Blinkrloan-Dashboard/src/models"
)

func TestBuildCollectionHistory(t *testing.T) {
	records := []models.LoanRecord{
		loan(func(r *models.LoanRecord) {
			r.RepaymentDate = day(2025, time.July, 10)
			r.RepaymentAmount = dec(10000)
			r.TotalReceived = dec(9000)
		}),
		loan(func(r *models.LoanRecord) {
			r.RepaymentDate = day(2025, time.July, 20)
			r.RepaymentAmount = dec(10000)
			r.TotalReceived = dec(8000)
		}),
		loan(func(r *models.LoanRecord) {
			r.RepaymentDate = day(2025, time.June, 5)
			r.RepaymentAmount = dec(5000)
			r.TotalReceived = dec(1000)
		}),
	}

	months := []HistoryMonth{
		{2025, time.June},
		{2025, time.July},
		{2025, time.August},
	}
	rows := BuildCollectionHistory(records, months)
	require.Len(t, rows, 3)

	// Most recent month first, regardless of input order.
	assert.Equal(t, "Aug 2025", rows[0].Month)
	assert.Zero(t, rows[0].RepaymentAmount)
	assert.Zero(t, rows[0].Efficiency)

	assert.Equal(t, "Jul 2025", rows[1].Month)
	assert.InDelta(t, 20000, rows[1].RepaymentAmount, 1e-9)
	assert.InDelta(t, 17000, rows[1].CollectedAmount, 1e-9)
	assert.InDelta(t, 85.0, rows[1].Efficiency, 1e-9)

	assert.Equal(t, "Jun 2025", rows[2].Month)
	assert.InDelta(t, 20.0, rows[2].Efficiency, 1e-9)

	for _, row := range rows {
		assert.Equal(t, CollectionBenchmark, row.Benchmark)
	}
}

func TestDefaultHistoryMonthsAreFixed(t *testing.T) {
	require.Len(t, DefaultHistoryMonths, 6)
	assert.Equal(t, HistoryMonth{2025, time.August}, DefaultHistoryMonths[0])
	assert.Equal(t, HistoryMonth{2025, time.March}, DefaultHistoryMonths[5])
}
