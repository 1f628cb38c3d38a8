package processors

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/Deep6432/Blinkrloan-Dashboard/src/models"
)

// StateRepaymentRow is one state's repayment/collection summary.
type StateRepaymentRow struct {
	State           string  `json:"state"`
	RepaymentAmount float64 `json:"repayment_amount"`
	CollectedAmount float64 `json:"collected_amount"`
	PendingAmount   float64 `json:"pending_amount"`
	CollectionRate  float64 `json:"collection_rate"`
}

// StateRepaymentSummary groups by raw state name (states arrive clean from
// upstream, unlike cities). Pending is clamped at zero: over-collection must
// not show as negative pending on the map widget.
func StateRepaymentSummary(records []models.LoanRecord) []StateRepaymentRow {
	groups := GroupAndSum(records,
		func(r models.LoanRecord) (string, bool) {
			if r.State == "" {
				return "Unknown", true
			}
			return r.State, true
		},
		sumRepayment, sumReceived,
	)

	rows := make([]StateRepaymentRow, 0, len(groups))
	for state, g := range groups {
		repayment, collected := g.Sums[0], g.Sums[1]
		pending := repayment.Sub(collected)
		if pending.Sign() < 0 {
			pending = decimal.Zero
		}
		rows = append(rows, StateRepaymentRow{
			State:           state,
			RepaymentAmount: Float(repayment),
			CollectedAmount: Float(collected),
			PendingAmount:   Float(pending),
			CollectionRate:  Ratio(collected, repayment),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].RepaymentAmount > rows[j].RepaymentAmount
	})
	return rows
}
