package processors

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Deep6432/Blinkrloan-Dashboard/src/models"
)

// DetailQuery is the search/sort/pagination envelope shared by the detail
// list endpoints. Defaults differ per endpoint and are filled by the handler.
type DetailQuery struct {
	Search    string
	SortBy    string
	SortOrder string // "asc" or "desc"
	Page      int
	PerPage   int
}

// Pagination mirrors the response pagination object.
type Pagination struct {
	CurrentPage  int  `json:"current_page"`
	TotalPages   int  `json:"total_pages"`
	TotalRecords int  `json:"total_records"`
	PerPage      int  `json:"per_page"`
	HasNext      bool `json:"has_next"`
	HasPrevious  bool `json:"has_previous"`
}

// DetailTotals are the full-set monetary totals, computed before pagination
// so they cover every matching record, not just the visible page.
type DetailTotals struct {
	TotalLoanAmount      float64 `json:"total_loan_amount"`
	TotalNetDisbursal    float64 `json:"total_net_disbursal"`
	TotalRepaymentAmount float64 `json:"total_repayment_amount"`
	TotalProcessingFee   float64 `json:"total_processing_fee"`
	TotalInterestAmount  float64 `json:"total_interest_amount"`
	TotalReceived        float64 `json:"total_received"`
}

// SearchRecords keeps records whose loan number or PAN contains the search
// term, case-insensitively. An empty term keeps everything.
func SearchRecords(records []models.LoanRecord, search string) []models.LoanRecord {
	if search == "" {
		return records
	}
	needle := strings.ToLower(search)
	return keep(records, func(r models.LoanRecord) bool {
		return strings.Contains(strings.ToLower(r.LoanNo), needle) ||
			strings.Contains(strings.ToLower(r.PAN), needle)
	})
}

// SortRecords orders records by the named field. The sort is stable and an
// unknown field name compares everything equal, leaving the input order
// untouched rather than erroring.
func SortRecords(records []models.LoanRecord, sortBy, sortOrder string) {
	less := lessFunc(sortBy)
	if sortOrder == "desc" {
		inner := less
		less = func(a, b models.LoanRecord) bool { return inner(b, a) }
	}
	sort.SliceStable(records, func(i, j int) bool { return less(records[i], records[j]) })
}

func lessFunc(field string) func(a, b models.LoanRecord) bool {
	byTime := func(get func(models.LoanRecord) time.Time) func(a, b models.LoanRecord) bool {
		return func(a, b models.LoanRecord) bool { return get(a).Before(get(b)) }
	}
	byDecimal := func(get func(models.LoanRecord) decimal.Decimal) func(a, b models.LoanRecord) bool {
		return func(a, b models.LoanRecord) bool { return get(a).LessThan(get(b)) }
	}
	byString := func(get func(models.LoanRecord) string) func(a, b models.LoanRecord) bool {
		return func(a, b models.LoanRecord) bool { return get(a) < get(b) }
	}

	switch field {
	case "loan_no":
		return byString(func(r models.LoanRecord) string { return r.LoanNo })
	case "lead_no":
		return byString(func(r models.LoanRecord) string { return r.LeadNo })
	case "pan":
		return byString(func(r models.LoanRecord) string { return r.PAN })
	case "sanction_date":
		return byTime(func(r models.LoanRecord) time.Time { return r.SanctionDate })
	case "disbursal_date":
		return byTime(func(r models.LoanRecord) time.Time { return r.DisbursalDate })
	case "repayment_date":
		return byTime(func(r models.LoanRecord) time.Time { return r.RepaymentDate })
	case "last_received_date":
		return byTime(func(r models.LoanRecord) time.Time { return r.LastReceivedDate })
	case "loan_amount":
		return byDecimal(func(r models.LoanRecord) decimal.Decimal { return r.LoanAmount })
	case "net_disbursal":
		return byDecimal(func(r models.LoanRecord) decimal.Decimal { return r.NetDisbursal })
	case "repayment_amount":
		return byDecimal(func(r models.LoanRecord) decimal.Decimal { return r.RepaymentAmount })
	case "processing_fee":
		return byDecimal(func(r models.LoanRecord) decimal.Decimal { return r.ProcessingFee })
	case "interest_amount":
		return byDecimal(func(r models.LoanRecord) decimal.Decimal { return r.InterestAmount })
	case "total_received":
		return byDecimal(func(r models.LoanRecord) decimal.Decimal { return r.TotalReceived })
	case "outstanding":
		return byDecimal(func(r models.LoanRecord) decimal.Decimal { return r.Outstanding })
	case "overdue_amount":
		return byDecimal(func(r models.LoanRecord) decimal.Decimal { return r.OverdueAmount })
	case "overdue_days":
		return func(a, b models.LoanRecord) bool { return a.OverdueDays < b.OverdueDays }
	case "tenure":
		return func(a, b models.LoanRecord) bool { return a.Tenure < b.Tenure }
	case "dpd_bucket":
		return byString(func(r models.LoanRecord) string { return r.DPDBucket })
	case "closed_status":
		return byString(func(r models.LoanRecord) string { return r.ClosedStatus })
	case "state":
		return byString(func(r models.LoanRecord) string { return r.State })
	case "city":
		return byString(func(r models.LoanRecord) string { return r.City })
	default:
		return func(a, b models.LoanRecord) bool { return false }
	}
}

// Paginate slices one page out of the full list. An out-of-range page clamps
// back to page one instead of failing, mirroring the dashboard's behavior.
func Paginate(records []models.LoanRecord, page, perPage int) ([]models.LoanRecord, Pagination) {
	if perPage <= 0 {
		perPage = 20
	}
	totalRecords := len(records)
	totalPages := (totalRecords + perPage - 1) / perPage

	if page < 1 || (totalPages > 0 && page > totalPages) {
		page = 1
	}

	start := (page - 1) * perPage
	end := start + perPage
	if start > totalRecords {
		start = totalRecords
	}
	if end > totalRecords {
		end = totalRecords
	}

	return records[start:end], Pagination{
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalRecords: totalRecords,
		PerPage:      perPage,
		HasNext:      page < totalPages,
		HasPrevious:  page > 1,
	}
}

// BuildDetailList applies search, sort and pagination in order and returns
// the visible page together with pagination metadata. The caller computes
// totals from the searched set before pagination via SumDetailTotals.
func BuildDetailList(records []models.LoanRecord, q DetailQuery) (page []models.LoanRecord, matched []models.LoanRecord, pg Pagination) {
	matched = SearchRecords(records, q.Search)
	sorted := make([]models.LoanRecord, len(matched))
	copy(sorted, matched)
	SortRecords(sorted, q.SortBy, q.SortOrder)
	page, pg = Paginate(sorted, q.Page, q.PerPage)
	return page, matched, pg
}

// SumDetailTotals sums the monetary columns over an entire matched set.
func SumDetailTotals(records []models.LoanRecord) DetailTotals {
	var loan, disbursal, repayment, fee, interest, received decimal.Decimal
	for _, r := range records {
		loan = loan.Add(r.LoanAmount)
		disbursal = disbursal.Add(r.NetDisbursal)
		repayment = repayment.Add(r.RepaymentAmount)
		fee = fee.Add(r.ProcessingFee)
		interest = interest.Add(r.InterestAmount)
		received = received.Add(r.TotalReceived)
	}
	return DetailTotals{
		TotalLoanAmount:      Float(loan),
		TotalNetDisbursal:    Float(disbursal),
		TotalRepaymentAmount: Float(repayment),
		TotalProcessingFee:   Float(fee),
		TotalInterestAmount:  Float(interest),
		TotalReceived:        Float(received),
	}
}
