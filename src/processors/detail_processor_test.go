package processors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Deep6432/Blinkrloan-Dashboard/src/models"
)

func detailSample(n int) []models.LoanRecord {
	records := make([]models.LoanRecord, 0, n)
	for i := 0; i < n; i++ {
		i := i
		records = append(records, loan(func(r *models.LoanRecord) {
			r.LoanNo = fmt.Sprintf("BL-%03d", i)
			r.PAN = fmt.Sprintf("pan%03d", i)
			r.OverdueDays = i
			r.LoanAmount = dec(int64(1000 + i))
		}))
	}
	return records
}

func TestSearchRecords(t *testing.T) {
	records := detailSample(5)
	records[2].PAN = "ZZTOP9999X"

	assert.Len(t, SearchRecords(records, ""), 5)
	assert.Len(t, SearchRecords(records, "bl-003"), 1, "loan number match is case-insensitive")
	assert.Len(t, SearchRecords(records, "zztop"), 1, "pan match is case-insensitive")
	assert.Empty(t, SearchRecords(records, "missing"))
}

func TestSortRecords(t *testing.T) {
	records := detailSample(4)
	SortRecords(records, "overdue_days", "desc")
	assert.Equal(t, 3, records[0].OverdueDays)
	assert.Equal(t, 0, records[3].OverdueDays)

	SortRecords(records, "loan_amount", "asc")
	assert.Equal(t, "BL-000", records[0].LoanNo)

	// Unknown field leaves order untouched under the stable sort.
	before := make([]models.LoanRecord, len(records))
	copy(before, records)
	SortRecords(records, "not_a_field", "desc")
	assert.Equal(t, before, records)
}

func TestPaginate(t *testing.T) {
	records := detailSample(45)

	page, pg := Paginate(records, 1, 20)
	assert.Len(t, page, 20)
	assert.Equal(t, 3, pg.TotalPages)
	assert.Equal(t, 45, pg.TotalRecords)
	assert.True(t, pg.HasNext)
	assert.False(t, pg.HasPrevious)

	page, pg = Paginate(records, 3, 20)
	assert.Len(t, page, 5)
	assert.False(t, pg.HasNext)
	assert.True(t, pg.HasPrevious)

	// Out of range clamps back to page one.
	page, pg = Paginate(records, 9, 20)
	assert.Equal(t, 1, pg.CurrentPage)
	assert.Len(t, page, 20)
	assert.Equal(t, "BL-000", page[0].LoanNo)
}

func TestPaginatePagesConcatenateToFullList(t *testing.T) {
	records := detailSample(53)
	SortRecords(records, "loan_no", "asc")

	var combined []models.LoanRecord
	_, first := Paginate(records, 1, 10)
	for p := 1; p <= first.TotalPages; p++ {
		page, _ := Paginate(records, p, 10)
		combined = append(combined, page...)
	}
	require.Equal(t, records, combined)
}

func TestBuildDetailListTotalsCoverWholeMatch(t *testing.T) {
	records := detailSample(30)
	page, matched, pg := BuildDetailList(records, DetailQuery{
		SortBy:    "loan_no",
		SortOrder: "asc",
		Page:      2,
		PerPage:   10,
	})

	assert.Len(t, page, 10)
	assert.Equal(t, 2, pg.CurrentPage)
	assert.Len(t, matched, 30, "totals input is the full matched set, not the page")

	totals := SumDetailTotals(matched)
	var wantLoan float64
	for i := 0; i < 30; i++ {
		wantLoan += float64(1000 + i)
	}
	assert.InDelta(t, wantLoan, totals.TotalLoanAmount, 1e-9)
}

func TestSumDetailTotalsEmpty(t *testing.T) {
	assert.Equal(t, DetailTotals{}, SumDetailTotals(nil))
}
