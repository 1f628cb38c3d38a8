package processors

import (
	"sort"

	"github.com/Deep6432/Blinkrloan-Dashboard/src/models"
)

// DPDBucketRow is one consolidated row of the DPD distribution chart.
type DPDBucketRow struct {
	DPDBucket            string  `json:"dpd_bucket"`
	Count                int     `json:"count"`
	TotalNetDisbursal    float64 `json:"total_net_disbursal"`
	TotalRepaymentAmount float64 `json:"total_repayment_amount"`
	IsSelected           bool    `json:"is_selected"`
}

// DPDBucketDistribution consolidates raw bucket labels under their canonical
// names and returns rows in the fixed canonical order; labels outside the
// canonical set pass through and trail the list alphabetically. selectedDPD
// marks the bucket the user has drilled into.
func DPDBucketDistribution(records []models.LoanRecord, selectedDPD string) []DPDBucketRow {
	groups := GroupAndSum(records,
		func(r models.LoanRecord) (string, bool) { return NormalizeDPDBucket(r.DPDBucket), true },
		sumDisbursal, sumRepayment,
	)

	canonical := make(map[string]bool, len(CanonicalDPDOrder))
	for _, b := range CanonicalDPDOrder {
		canonical[b] = true
	}

	var rows []DPDBucketRow
	appendRow := func(bucket string) {
		g, ok := groups[bucket]
		if !ok {
			return
		}
		rows = append(rows, DPDBucketRow{
			DPDBucket:            bucket,
			Count:                g.Count,
			TotalNetDisbursal:    Float(g.Sums[0]),
			TotalRepaymentAmount: Float(g.Sums[1]),
			IsSelected:           bucket == selectedDPD,
		})
	}

	for _, bucket := range CanonicalDPDOrder {
		appendRow(bucket)
	}

	var unknown []string
	for bucket := range groups {
		if !canonical[bucket] {
			unknown = append(unknown, bucket)
		}
	}
	sort.Strings(unknown)
	for _, bucket := range unknown {
		appendRow(bucket)
	}
	return rows
}

// RawDPDBucketSummary groups on raw bucket labels with no consolidation,
// sorted by label. The fraud-summary dashboard still charts raw labels; this
// intentionally differs from DPDBucketDistribution.
type RawDPDBucketRow struct {
	Bucket         string  `json:"bucket"`
	Count          int     `json:"count"`
	TotalDisbursal float64 `json:"total_disbursal"`
	TotalDue       float64 `json:"total_due"`
}

func RawDPDBucketSummary(records []models.LoanRecord) []RawDPDBucketRow {
	groups := GroupAndSum(records,
		func(r models.LoanRecord) (string, bool) {
			if r.DPDBucket == "" {
				return "Unknown", true
			}
			return r.DPDBucket, true
		},
		sumDisbursal, sumRepayment,
	)

	rows := make([]RawDPDBucketRow, 0, len(groups))
	for bucket, g := range groups {
		rows = append(rows, RawDPDBucketRow{
			Bucket:         bucket,
			Count:          g.Count,
			TotalDisbursal: Float(g.Sums[0]),
			TotalDue:       Float(g.Sums[1]),
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Bucket < rows[j].Bucket })
	return rows
}
