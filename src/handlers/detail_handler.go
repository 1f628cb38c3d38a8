package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/Deep6432/Blinkrloan-Dashboard/src/logger"
	"github.com/Deep6432/Blinkrloan-Dashboard/src/models"
	"github.com/Deep6432/Blinkrloan-Dashboard/src/processors"
	"github.com/Deep6432/Blinkrloan-Dashboard/src/services"
	"github.com/Deep6432/Blinkrloan-Dashboard/src/utils"
)

// DetailHandler serves the drill-down record tables under the dashboard
// charts, with search, sort and pagination.
type DetailHandler struct {
	snapshotService services.SnapshotService
}

func NewDetailHandler(snapshotService services.SnapshotService) *DetailHandler {
	return &DetailHandler{snapshotService: snapshotService}
}

// displayDate renders dates the way the tables show them; absent dates render
// as an em-dash placeholder.
func displayDate(t time.Time) string {
	if t.IsZero() {
		return "—"
	}
	return t.Format("02/01/2006")
}

func displayTenure(tenure int) any {
	if tenure == 0 {
		return "—"
	}
	return tenure
}

func (h *DetailHandler) HandleGetTotalApplicationsDetails(w http.ResponseWriter, r *http.Request) {
	q := parseDetailQuery(r, "disbursal_date", "desc")

	records, err := h.snapshotService.PortfolioRecords(r.Context())
	if err != nil {
		logger.L.Error("Error fetching total applications details", "error", err)
		// The table frontend expects the full shape even on failure.
		utils.WriteJSON(w, http.StatusInternalServerError, map[string]any{
			"records": []any{},
			"pagination": processors.Pagination{
				CurrentPage: 1,
				PerPage:     q.PerPage,
			},
			"totals": processors.DetailTotals{},
			"search": q.Search,
			"error":  "Failed to fetch data",
		})
		return
	}

	filtered := processors.ApplyFilters(records, parseFilterSpec(r))
	page, matched, pagination := processors.BuildDetailList(filtered, q)

	formatted := make([]map[string]any, 0, len(page))
	for _, rec := range page {
		formatted = append(formatted, map[string]any{
			"loan_no":            rec.LoanNo,
			"pan":                strings.ToUpper(rec.PAN),
			"disbursal_date":     displayDate(rec.DisbursalDate),
			"loan_amount":        processors.Float(rec.LoanAmount),
			"net_disbursal":      processors.Float(rec.NetDisbursal),
			"tenure":             displayTenure(rec.Tenure),
			"repayment_date":     displayDate(rec.RepaymentDate),
			"repayment_amount":   processors.Float(rec.RepaymentAmount),
			"processing_fee":     processors.Float(rec.ProcessingFee),
			"interest_amount":    processors.Float(rec.InterestAmount),
			"last_received_date": displayDate(rec.LastReceivedDate),
			"total_received":     processors.Float(rec.TotalReceived),
			"closed_status":      rec.ClosedStatus,
		})
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"records":    formatted,
		"pagination": pagination,
		"totals":     processors.SumDetailTotals(matched),
		"search":     q.Search,
	})
}

func (h *DetailHandler) HandleGetDPDBucketDetails(w http.ResponseWriter, r *http.Request) {
	dpdBucket := r.URL.Query().Get("dpd_bucket")
	if dpdBucket == "" {
		utils.SendJSONError(w, "DPD bucket is required", http.StatusBadRequest)
		return
	}
	q := parseDetailQuery(r, "overdue_days", "desc")

	records, err := h.snapshotService.PortfolioRecords(r.Context())
	if err != nil {
		logger.L.Error("Error fetching DPD bucket details", "dpdBucket", dpdBucket, "error", err)
		utils.SendJSONError(w, "Failed to fetch data", http.StatusInternalServerError)
		return
	}

	// The chart shows normalized bucket names; match every raw label that
	// consolidates into the requested one.
	rawBuckets := processors.RawDPDBuckets(dpdBucket)
	inBucket := make([]models.LoanRecord, 0, len(records))
	for _, rec := range records {
		for _, raw := range rawBuckets {
			if rec.DPDBucket == raw {
				inBucket = append(inBucket, rec)
				break
			}
		}
	}

	filtered := processors.ApplyFilters(inBucket, parseFilterSpec(r))
	page, matched, pagination := processors.BuildDetailList(filtered, q)

	totals := processors.SumDetailTotals(matched)
	formatted := make([]map[string]any, 0, len(page))
	for _, rec := range page {
		formatted = append(formatted, map[string]any{
			"loan_no":          rec.LoanNo,
			"pan":              strings.ToUpper(rec.PAN),
			"disbursal_date":   displayDate(rec.DisbursalDate),
			"net_disbursal":    processors.Float(rec.NetDisbursal),
			"repayment_date":   displayDate(rec.RepaymentDate),
			"repayment_amount": processors.Float(rec.RepaymentAmount),
			"overdue_days":     rec.OverdueDays,
			"dpd_bucket":       rec.DPDBucket,
		})
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"records":    formatted,
		"pagination": pagination,
		"totals": map[string]float64{
			"total_net_disbursal":    totals.TotalNetDisbursal,
			"total_repayment_amount": totals.TotalRepaymentAmount,
		},
		"dpd_bucket": dpdBucket,
		"search":     q.Search,
	})
}
