package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Deep6432/Blinkrloan-Dashboard/src/logger"
	"github.com/Deep6432/Blinkrloan-Dashboard/src/models"
	"github.com/Deep6432/Blinkrloan-Dashboard/src/processors"
	"github.com/Deep6432/Blinkrloan-Dashboard/src/services"
	"github.com/Deep6432/Blinkrloan-Dashboard/src/utils"
)

// TargetHandler serves the monthly collection targets and the target-vs-actual
// performance view.
type TargetHandler struct {
	targetService   services.TargetService
	snapshotService services.SnapshotService
}

func NewTargetHandler(targetService services.TargetService, snapshotService services.SnapshotService) *TargetHandler {
	return &TargetHandler{
		targetService:   targetService,
		snapshotService: snapshotService,
	}
}

// HandleGetMonthlyTarget returns the target for the requested month, or the
// current month when month/year are omitted. Months with no stored target
// return a zero amount rather than 404.
func (h *TargetHandler) HandleGetMonthlyTarget(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	month := int(now.Month())
	year := now.Year()

	q := r.URL.Query()
	if m, err := strconv.Atoi(q.Get("month")); err == nil {
		month = m
	}
	if y, err := strconv.Atoi(q.Get("year")); err == nil {
		year = y
	}
	if month < 1 || month > 12 {
		utils.SendJSONError(w, "month must be between 1 and 12", http.StatusBadRequest)
		return
	}

	target, err := h.targetService.GetMonthlyTarget(month, year)
	if err != nil {
		logger.L.Error("Error reading monthly target", "month", month, "year", year, "error", err)
		utils.SendJSONError(w, "Failed to read monthly target", http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]any{"data": target})
}

// HandleSetMonthlyTarget upserts the target for a month. Omitted month/year
// default to the current month.
func (h *TargetHandler) HandleSetMonthlyTarget(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Month        int             `json:"month"`
		Year         int             `json:"year"`
		TargetAmount decimal.Decimal `json:"target_amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.SendJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	now := time.Now()
	if payload.Month == 0 {
		payload.Month = int(now.Month())
	}
	if payload.Year == 0 {
		payload.Year = now.Year()
	}
	if payload.Month < 1 || payload.Month > 12 {
		utils.SendJSONError(w, "month must be between 1 and 12", http.StatusBadRequest)
		return
	}
	if payload.TargetAmount.Sign() < 0 {
		utils.SendJSONError(w, "target_amount must not be negative", http.StatusBadRequest)
		return
	}

	target := models.MonthlyTarget{
		Month:        payload.Month,
		Year:         payload.Year,
		TargetAmount: payload.TargetAmount,
	}
	if err := h.targetService.SetMonthlyTarget(target); err != nil {
		logger.L.Error("Error storing monthly target", "month", target.Month, "year", target.Year, "error", err)
		utils.SendJSONError(w, "Failed to store monthly target", http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]any{"data": target})
}

// monthlyPerformanceRow is one month of collected-versus-target performance.
type monthlyPerformanceRow struct {
	Month           string  `json:"month"` // e.g. "Aug 2025"
	TargetAmount    float64 `json:"target_amount"`
	RepaymentAmount float64 `json:"repayment_amount"`
	CollectedAmount float64 `json:"collected_amount"`
	AchievementRate float64 `json:"achievement_rate"` // collected vs target
	CollectionRate  float64 `json:"collection_rate"`  // collected vs due
}

// HandleGetMonthlyPerformance compares per-month collections against the
// stored targets over an explicit date range. startDate and endDate are
// required; the range is validated before any upstream fetch.
func (h *TargetHandler) HandleGetMonthlyPerformance(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	start, okStart := utils.ParseQueryDate(q.Get("startDate"))
	end, okEnd := utils.ParseQueryDate(q.Get("endDate"))
	if !okStart || !okEnd {
		utils.SendJSONError(w, "startDate and endDate are required (YYYY-MM-DD)", http.StatusBadRequest)
		return
	}
	if end.Before(start) {
		utils.SendJSONError(w, "endDate must not be before startDate", http.StatusBadRequest)
		return
	}

	records, err := h.snapshotService.PortfolioRecords(r.Context())
	if err != nil {
		logger.L.Error("Error fetching monthly performance data", "error", err)
		utils.SendJSONError(w, "Failed to fetch data", http.StatusInternalServerError)
		return
	}

	months := monthsBetween(start, end)
	rows := make([]monthlyPerformanceRow, 0, len(months))
	for _, m := range months {
		var repayment, collected decimal.Decimal
		for _, rec := range records {
			if !rec.HasRepaymentDate() {
				continue
			}
			d := processors.ISTDate(rec.RepaymentDate)
			if d.Year() != m.Year || d.Month() != m.Month {
				continue
			}
			repayment = repayment.Add(rec.RepaymentAmount)
			collected = collected.Add(rec.TotalReceived)
		}

		target, err := h.targetService.GetMonthlyTarget(int(m.Month), m.Year)
		if err != nil {
			logger.L.Error("Error reading monthly target", "month", m.Month, "year", m.Year, "error", err)
			utils.SendJSONError(w, "Failed to read monthly target", http.StatusInternalServerError)
			return
		}

		rows = append(rows, monthlyPerformanceRow{
			Month:           time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC).Format("Jan 2006"),
			TargetAmount:    processors.Float(target.TargetAmount),
			RepaymentAmount: processors.Float(repayment),
			CollectedAmount: processors.Float(collected),
			AchievementRate: processors.Ratio(collected, target.TargetAmount),
			CollectionRate:  processors.Ratio(collected, repayment),
		})
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{"data": rows})
}

// monthsBetween lists the calendar months touched by [start, end], most
// recent first to match the history panel ordering.
func monthsBetween(start, end time.Time) []processors.HistoryMonth {
	var months []processors.HistoryMonth
	cur := time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, time.UTC)
	floor := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
	for !cur.Before(floor) {
		months = append(months, processors.HistoryMonth{Year: cur.Year(), Month: cur.Month()})
		cur = cur.AddDate(0, -1, 0)
	}
	return months
}
