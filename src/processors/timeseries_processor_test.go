package processors

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Deep6432/Blinkrloan-Dashboard/src/models"
)

func TestRepaymentTimeSeries(t *testing.T) {
	records := []models.LoanRecord{
		loan(func(r *models.LoanRecord) {
			r.RepaymentDate = day(2025, time.July, 2)
			r.RepaymentAmount = dec(1000)
			r.TotalReceived = dec(600)
		}),
		loan(func(r *models.LoanRecord) {
			r.RepaymentDate = day(2025, time.July, 2)
			r.RepaymentAmount = dec(1000)
			r.TotalReceived = dec(0)
		}),
		// 19:00 UTC on July 1 is July 2 in IST: same group as above.
		loan(func(r *models.LoanRecord) {
			r.RepaymentDate = time.Date(2025, time.July, 1, 19, 0, 0, 0, time.UTC)
			r.RepaymentAmount = dec(500)
			r.TotalReceived = dec(500)
		}),
		loan(func(r *models.LoanRecord) {
			r.RepaymentDate = day(2025, time.July, 1)
			r.RepaymentAmount = dec(2000)
			r.TotalReceived = dec(2000)
		}),
		loan(func(r *models.LoanRecord) { r.RepaymentDate = time.Time{} }),
	}

	rows := RepaymentTimeSeries(records)
	require.Len(t, rows, 2, "records without repayment dates are left out")

	assert.Equal(t, "2025-07-01", rows[0].Date)
	assert.InDelta(t, 100.0, rows[0].CollectionPercentage, 1e-9)

	july2 := rows[1]
	assert.Equal(t, "2025-07-02", july2.Date)
	assert.InDelta(t, 2500, july2.RepaymentAmount, 1e-9)
	assert.InDelta(t, 1100, july2.CollectedAmount, 1e-9)
	assert.Equal(t, 2, july2.CollectedCases)
	assert.Equal(t, 1, july2.PendingCases)
	assert.InDelta(t, 44.0, july2.CollectionPercentage, 1e-9)
}
