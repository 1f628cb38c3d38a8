package processors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Deep6432/Blinkrloan-Dashboard/src/models"
)

func TestDPDBucketDistributionConsolidatesLegacyLabels(t *testing.T) {
	records := []models.LoanRecord{
		loan(func(r *models.LoanRecord) { r.DPDBucket = "0-30"; r.NetDisbursal = dec(100); r.RepaymentAmount = dec(120) }),
		loan(func(r *models.LoanRecord) { r.DPDBucket = "DPD 1-30"; r.NetDisbursal = dec(200); r.RepaymentAmount = dec(240) }),
		loan(func(r *models.LoanRecord) { r.DPDBucket = "0"; r.NetDisbursal = dec(50); r.RepaymentAmount = dec(60) }),
	}

	rows := DPDBucketDistribution(records, "")
	require.Len(t, rows, 2)

	assert.Equal(t, "0 days DPD", rows[0].DPDBucket)
	assert.Equal(t, 1, rows[0].Count)

	assert.Equal(t, "DPD 1-30", rows[1].DPDBucket)
	assert.Equal(t, 2, rows[1].Count, "0-30 and DPD 1-30 consolidate into one group")
	assert.InDelta(t, 300, rows[1].TotalNetDisbursal, 1e-9)
	assert.InDelta(t, 360, rows[1].TotalRepaymentAmount, 1e-9)
}

func TestDPDBucketDistributionSelection(t *testing.T) {
	records := []models.LoanRecord{
		loan(func(r *models.LoanRecord) { r.DPDBucket = "0-30" }),
		loan(func(r *models.LoanRecord) { r.DPDBucket = "31-60" }),
	}
	rows := DPDBucketDistribution(records, "DPD 31-60")
	require.Len(t, rows, 2)
	assert.False(t, rows[0].IsSelected)
	assert.True(t, rows[1].IsSelected)
}

func TestDPDBucketDistributionUnknownLabelsTrail(t *testing.T) {
	records := []models.LoanRecord{
		loan(func(r *models.LoanRecord) { r.DPDBucket = "zz-custom" }),
		loan(func(r *models.LoanRecord) { r.DPDBucket = "No DPD" }),
		loan(func(r *models.LoanRecord) { r.DPDBucket = "a-custom" }),
	}
	rows := DPDBucketDistribution(records, "")
	require.Len(t, rows, 3)
	assert.Equal(t, "No DPD", rows[0].DPDBucket, "canonical buckets come first")
	assert.Equal(t, "a-custom", rows[1].DPDBucket)
	assert.Equal(t, "zz-custom", rows[2].DPDBucket)
}

func TestRawDPDBucketSummary(t *testing.T) {
	records := []models.LoanRecord{
		loan(func(r *models.LoanRecord) { r.DPDBucket = "0-30"; r.NetDisbursal = dec(100); r.RepaymentAmount = dec(110) }),
		loan(func(r *models.LoanRecord) { r.DPDBucket = "DPD 1-30"; r.NetDisbursal = dec(200); r.RepaymentAmount = dec(220) }),
		loan(func(r *models.LoanRecord) { r.DPDBucket = "" }),
	}

	rows := RawDPDBucketSummary(records)
	require.Len(t, rows, 3, "raw summary never consolidates")

	assert.Equal(t, "0-30", rows[0].Bucket)
	assert.Equal(t, "DPD 1-30", rows[1].Bucket)
	assert.Equal(t, "Unknown", rows[2].Bucket)
	assert.InDelta(t, 100, rows[0].TotalDisbursal, 1e-9)
	assert.InDelta(t, 220, rows[1].TotalDue, 1e-9)
}
