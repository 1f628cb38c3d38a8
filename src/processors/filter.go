package processors

import (
	"strings"
	"time"

	"github.com/Deep6432/Blinkrloan-Dashboard/src/models"
)

// The upstream feed timestamps are UTC; the dashboard's date filters are
// expressed in Indian local dates, so timestamps are shifted +5:30 before the
// calendar-date comparison.
var istZone = time.FixedZone("IST", 5*3600+30*60)

// ISTDate reduces a timestamp to its IST calendar date. The returned value is
// midnight UTC of that date, comparable with the parsed query-date bounds.
func ISTDate(t time.Time) time.Time {
	y, m, d := t.In(istZone).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ApplyFilters runs the shared dashboard filter pipeline over a snapshot and
// returns a new slice; the input is never mutated. Records missing the
// requested date field are dropped by the date filter only; every other
// filter is an exact match on raw field values.
func ApplyFilters(records []models.LoanRecord, spec models.FilterSpec) []models.LoanRecord {
	out := make([]models.LoanRecord, 0, len(records))
	out = append(out, records...)

	if spec.HasDateRange() {
		out = filterByDate(out, spec)
	}
	if spec.ClosingStatus != "" {
		out = keep(out, func(r models.LoanRecord) bool { return r.ClosedStatus == spec.ClosingStatus })
	}
	if spec.DPD != "" {
		out = keep(out, func(r models.LoanRecord) bool { return r.DPDBucket == spec.DPD })
	}

	// State and city are hierarchical: a state filter narrows first, an
	// additional city filter narrows within it. A city filter alone applies
	// directly.
	if spec.State != "" {
		out = keep(out, func(r models.LoanRecord) bool { return r.State == spec.State })
	}
	if spec.City != "" {
		city := strings.TrimSpace(spec.City)
		out = keep(out, func(r models.LoanRecord) bool { return strings.TrimSpace(r.City) == city })
	}
	return out
}

func filterByDate(records []models.LoanRecord, spec models.FilterSpec) []models.LoanRecord {
	pick := func(r models.LoanRecord) time.Time { return r.RepaymentDate }
	if spec.DateType == models.DateTypeDisbursal {
		pick = func(r models.LoanRecord) time.Time { return r.DisbursalDate }
	}
	return keep(records, func(r models.LoanRecord) bool {
		t := pick(r)
		if t.IsZero() {
			return false
		}
		d := ISTDate(t)
		return !d.Before(spec.DateFrom) && !d.After(spec.DateTo)
	})
}

func keep(records []models.LoanRecord, pred func(models.LoanRecord) bool) []models.LoanRecord {
	filtered := records[:0:0]
	for _, r := range records {
		if pred(r) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
