package processors

import (
	"sort"
	"time"

	"github.com/Deep6432/Blinkrloan-Dashboard/src/models"
)

// CollectionBenchmark is the efficiency target every month is compared
// against on the history panel.
const CollectionBenchmark = 85.0

// HistoryMonth names one calendar month of the historical series.
type HistoryMonth struct {
	Year  int
	Month time.Month
}

// DefaultHistoryMonths is the fixed window the dashboard ships with. The
// builder accepts any explicit list; this is not a rolling window.
var DefaultHistoryMonths = []HistoryMonth{
	{2025, time.August},
	{2025, time.July},
	{2025, time.June},
	{2025, time.May},
	{2025, time.April},
	{2025, time.March},
}

// HistoryRow is one month of collection efficiency.
type HistoryRow struct {
	Month           string  `json:"month"` // e.g. "Aug 2025"
	RepaymentAmount float64 `json:"repayment_amount"`
	CollectedAmount float64 `json:"collected_amount"`
	Efficiency      float64 `json:"efficiency"`
	Benchmark       float64 `json:"benchmark"`
}

// BuildCollectionHistory computes per-month collection efficiency over the
// records whose repayment date (IST) falls inside each month, most recent
// month first.
func BuildCollectionHistory(records []models.LoanRecord, months []HistoryMonth) []HistoryRow {
	ordered := make([]HistoryMonth, len(months))
	copy(ordered, months)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Year != ordered[j].Year {
			return ordered[i].Year > ordered[j].Year
		}
		return ordered[i].Month > ordered[j].Month
	})

	rows := make([]HistoryRow, 0, len(ordered))
	for _, m := range ordered {
		groups := GroupAndSum(records,
			func(r models.LoanRecord) (string, bool) {
				if !r.HasRepaymentDate() {
					return "", false
				}
				d := ISTDate(r.RepaymentDate)
				if d.Year() != m.Year || d.Month() != m.Month {
					return "", false
				}
				return "month", true
			},
			sumRepayment, sumReceived,
		)

		row := HistoryRow{
			Month:     time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC).Format("Jan 2006"),
			Benchmark: CollectionBenchmark,
		}
		if g, ok := groups["month"]; ok {
			row.RepaymentAmount = Float(g.Sums[0])
			row.CollectedAmount = Float(g.Sums[1])
			row.Efficiency = Ratio(g.Sums[1], g.Sums[0])
		}
		rows = append(rows, row)
	}
	return rows
}
