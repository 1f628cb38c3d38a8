package processors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Deep6432/Blinkrloan-Dashboard/src/models"
)

func TestGroupAndSum(t *testing.T) {
	records := []models.LoanRecord{
		loan(func(r *models.LoanRecord) { r.State = "A"; r.RepaymentAmount = dec(100); r.TotalReceived = dec(40) }),
		loan(func(r *models.LoanRecord) { r.State = "A"; r.RepaymentAmount = dec(200); r.TotalReceived = dec(60) }),
		loan(func(r *models.LoanRecord) { r.State = "B"; r.RepaymentAmount = dec(50); r.TotalReceived = dec(50) }),
	}

	groups := GroupAndSum(records,
		func(r models.LoanRecord) (string, bool) { return r.State, true },
		sumRepayment, sumReceived,
	)
	require.Len(t, groups, 2)
	assert.Equal(t, 2, groups["A"].Count)
	assert.True(t, groups["A"].Sums[0].Equal(dec(300)))
	assert.True(t, groups["A"].Sums[1].Equal(dec(100)))
	assert.Equal(t, 1, groups["B"].Count)
}

func TestGroupAndSumKeyRejection(t *testing.T) {
	records := []models.LoanRecord{
		loan(func(r *models.LoanRecord) { r.State = "keep" }),
		loan(func(r *models.LoanRecord) { r.State = "" }),
	}
	groups := GroupAndSum(records,
		func(r models.LoanRecord) (string, bool) { return r.State, r.State != "" },
	)
	assert.Len(t, groups, 1)
	assert.Contains(t, groups, "keep")
}

func TestRatioGuardsDenominator(t *testing.T) {
	assert.Equal(t, 0.0, Ratio(dec(100), dec(0)))
	assert.Equal(t, 0.0, Ratio(dec(100), dec(-5)))
	assert.InDelta(t, 50.0, Ratio(dec(100), dec(200)), 1e-9)
}
