package models

import "time"

// Date type selectors accepted by the dashboard filters.
const (
	DateTypeRepayment = "repayment_date"
	DateTypeDisbursal = "disbursal_date"
)

// FilterSpec carries the query-string filters shared by every dashboard
// endpoint. Zero values mean "not set".
type FilterSpec struct {
	DateFrom time.Time // inclusive, local (IST) calendar date
	DateTo   time.Time // inclusive
	DateType string    // DateTypeRepayment (default) or DateTypeDisbursal

	ClosingStatus string // exact match on raw ClosedStatus
	DPD           string // exact match on raw DPDBucket
	State         string // exact match; enables hierarchical city filtering
	City          string // exact match on trimmed raw city
}

// HasDateRange reports whether both date bounds are set; the pipeline only
// applies the date filter when the range is complete, matching the upstream
// dashboard behavior.
func (f FilterSpec) HasDateRange() bool {
	return !f.DateFrom.IsZero() && !f.DateTo.IsZero()
}
