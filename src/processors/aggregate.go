package processors

import (
	"github.com/shopspring/decimal"

	"github.com/Deep6432/Blinkrloan-Dashboard/src/models"
)

// GroupAccum is one group's accumulator: a record count plus one running sum
// per requested sum function.
type GroupAccum struct {
	Count int
	Sums  []decimal.Decimal
}

// KeyFunc derives the group key for a record. Returning ok=false drops the
// record from the grouping (e.g. records without a repayment date in the
// time series).
type KeyFunc func(models.LoanRecord) (key string, ok bool)

// SumFunc extracts one monetary field to accumulate per group.
type SumFunc func(models.LoanRecord) decimal.Decimal

// GroupAndSum is the shared group-by engine behind the DPD, city, state, date
// and amount-band aggregations: one pass, count plus decimal sums per key.
func GroupAndSum(records []models.LoanRecord, key KeyFunc, sums ...SumFunc) map[string]*GroupAccum {
	groups := make(map[string]*GroupAccum)
	for _, r := range records {
		k, ok := key(r)
		if !ok {
			continue
		}
		g := groups[k]
		if g == nil {
			g = &GroupAccum{Sums: make([]decimal.Decimal, len(sums))}
			groups[k] = g
		}
		g.Count++
		for i, sum := range sums {
			g.Sums[i] = g.Sums[i].Add(sum(r))
		}
	}
	return groups
}

// Ratio returns num/den*100 as a float, or 0 when the denominator is not
// positive. Every percentage in the dashboard goes through this guard.
func Ratio(num, den decimal.Decimal) float64 {
	if den.Sign() <= 0 {
		return 0
	}
	f, _ := num.Div(den).Mul(decimal.NewFromInt(100)).Float64()
	return f
}

// Float renders a decimal for the JSON boundary.
func Float(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}

func sumRepayment(r models.LoanRecord) decimal.Decimal { return r.RepaymentAmount }
func sumReceived(r models.LoanRecord) decimal.Decimal  { return r.TotalReceived }
func sumDisbursal(r models.LoanRecord) decimal.Decimal { return r.NetDisbursal }
