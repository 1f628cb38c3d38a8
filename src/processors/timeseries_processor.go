package processors

import (
	"sort"

	"github.com/Deep6432/Blinkrloan-Dashboard/src/models"
)

// TimeSeriesRow is one calendar day of repayment activity.
type TimeSeriesRow struct {
	Date                 string  `json:"date"` // YYYY-MM-DD, IST calendar date
	RepaymentAmount      float64 `json:"repayment_amount"`
	CollectedAmount      float64 `json:"collected_amount"`
	CollectedCases       int     `json:"collected_cases"`
	PendingCases         int     `json:"pending_cases"`
	CollectionPercentage float64 `json:"collection_percentage"`
}

// RepaymentTimeSeries buckets records by the IST calendar date of their
// repayment date, oldest first. Records without a repayment date are left
// out of the series entirely.
func RepaymentTimeSeries(records []models.LoanRecord) []TimeSeriesRow {
	groups := GroupAndSum(records,
		func(r models.LoanRecord) (string, bool) {
			if !r.HasRepaymentDate() {
				return "", false
			}
			return ISTDate(r.RepaymentDate).Format("2006-01-02"), true
		},
		sumRepayment, sumReceived,
	)

	collectedCases := make(map[string]int)
	for _, r := range records {
		if r.HasRepaymentDate() && r.TotalReceived.Sign() > 0 {
			collectedCases[ISTDate(r.RepaymentDate).Format("2006-01-02")]++
		}
	}

	rows := make([]TimeSeriesRow, 0, len(groups))
	for date, g := range groups {
		repayment, collected := g.Sums[0], g.Sums[1]
		rows = append(rows, TimeSeriesRow{
			Date:                 date,
			RepaymentAmount:      Float(repayment),
			CollectedAmount:      Float(collected),
			CollectedCases:       collectedCases[date],
			PendingCases:         g.Count - collectedCases[date],
			CollectionPercentage: Ratio(collected, repayment),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Date < rows[j].Date })
	return rows
}
