package processors

import (
	"github.com/shopspring/decimal"

	"github.com/Deep6432/Blinkrloan-Dashboard/src/models"
)

// Amount bands over repayment_amount in thousands. The bands are
// non-overlapping and cover every non-negative amount; negative repayment
// amounts (dirty data) fall through unclassified and are excluded from the
// band totals rather than silently clamped.
var amountBandOrder = []string{
	"<5k", "5-10k", "10-20k", "20-30k", "30-40k", "40-50k",
	"50-60k", "60-70k", "70-80k", "80-90k", "90+k",
}

var amountBandUpperK = []int64{5, 10, 20, 30, 40, 50, 60, 70, 80, 90}

// AmountBandFor classifies a repayment amount into its band, or "" for
// negative amounts.
func AmountBandFor(repaymentAmount decimal.Decimal) string {
	if repaymentAmount.Sign() < 0 {
		return ""
	}
	thousands := repaymentAmount.Div(decimal.NewFromInt(1000))
	for i, upper := range amountBandUpperK {
		if thousands.LessThan(decimal.NewFromInt(upper)) {
			return amountBandOrder[i]
		}
	}
	return "90+k"
}

// AmountBandRow is one band of the due-amount distribution.
type AmountBandRow struct {
	Band          string  `json:"band"`
	TotalCount    int     `json:"total_count"`
	PendingCount  int     `json:"pending_count"`  // "Not Closed" cases in the band
	PendingAmount float64 `json:"pending_amount"` // due minus collected over those cases, never negative
}

// AmountBandDistribution is the full banded view plus the pending total
// across all bands.
type AmountBandDistribution struct {
	Bands        []AmountBandRow `json:"bands"`
	TotalPending float64         `json:"total_pending"`
}

// AmountBands partitions the records into the fixed due-amount bands and
// tracks pending collection for "Not Closed" loans per band.
func AmountBands(records []models.LoanRecord) AmountBandDistribution {
	type accum struct {
		total         int
		pendingCount  int
		pendingAmount decimal.Decimal
	}
	byBand := make(map[string]*accum, len(amountBandOrder))
	var totalPending decimal.Decimal

	for _, r := range records {
		band := AmountBandFor(r.RepaymentAmount)
		if band == "" {
			continue
		}
		a := byBand[band]
		if a == nil {
			a = &accum{}
			byBand[band] = a
		}
		a.total++
		if r.ClosedStatus == "Not Closed" {
			pending := r.PendingAmount()
			if pending.Sign() < 0 {
				pending = decimal.Zero
			}
			a.pendingCount++
			a.pendingAmount = a.pendingAmount.Add(pending)
			totalPending = totalPending.Add(pending)
		}
	}

	rows := make([]AmountBandRow, 0, len(amountBandOrder))
	for _, band := range amountBandOrder {
		row := AmountBandRow{Band: band}
		if a, ok := byBand[band]; ok {
			row.TotalCount = a.total
			row.PendingCount = a.pendingCount
			row.PendingAmount = Float(a.pendingAmount)
		}
		rows = append(rows, row)
	}
	return AmountBandDistribution{Bands: rows, TotalPending: Float(totalPending)}
}
