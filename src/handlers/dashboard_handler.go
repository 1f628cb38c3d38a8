package handlers

import (
	"net/http"

	"github.com/Deep6432/Blinkrloan-Dashboard/src/logger"
	"github.com/Deep6432/Blinkrloan-Dashboard/src/processors"
	"github.com/Deep6432/Blinkrloan-Dashboard/src/services"
	"github.com/Deep6432/Blinkrloan-Dashboard/src/utils"
)

// DashboardHandler serves the main collection dashboard: KPI block,
// distributions, rankings, history and filter support endpoints, all on the
// portfolio feed.
type DashboardHandler struct {
	snapshotService services.SnapshotService
}

func NewDashboardHandler(snapshotService services.SnapshotService) *DashboardHandler {
	return &DashboardHandler{snapshotService: snapshotService}
}

func (h *DashboardHandler) HandleGetKPIData(w http.ResponseWriter, r *http.Request) {
	records, err := h.snapshotService.PortfolioRecords(r.Context())
	if err != nil {
		logger.L.Error("Error fetching KPI data", "error", err)
		utils.SendJSONError(w, "Failed to fetch data", http.StatusInternalServerError)
		return
	}
	filtered := processors.ApplyFilters(records, parseFilterSpec(r))
	utils.WriteJSON(w, http.StatusOK, map[string]any{"data": processors.PortfolioKPIs(filtered)})
}

func (h *DashboardHandler) HandleGetDPDBuckets(w http.ResponseWriter, r *http.Request) {
	records, err := h.snapshotService.PortfolioRecords(r.Context())
	if err != nil {
		logger.L.Error("Error fetching DPD bucket data", "error", err)
		utils.SendJSONError(w, "Failed to fetch data", http.StatusInternalServerError)
		return
	}
	spec := parseFilterSpec(r)
	filtered := processors.ApplyFilters(records, spec)
	utils.WriteJSON(w, http.StatusOK, map[string]any{"data": processors.DPDBucketDistribution(filtered, spec.DPD)})
}

func (h *DashboardHandler) HandleGetStateRepayment(w http.ResponseWriter, r *http.Request) {
	records, err := h.snapshotService.PortfolioRecords(r.Context())
	if err != nil {
		logger.L.Error("Error fetching state repayment data", "error", err)
		utils.SendJSONError(w, "Failed to fetch data", http.StatusInternalServerError)
		return
	}
	filtered := processors.ApplyFilters(records, parseFilterSpec(r))
	utils.WriteJSON(w, http.StatusOK, map[string]any{"data": processors.StateRepaymentSummary(filtered)})
}

func (h *DashboardHandler) HandleGetTimeSeries(w http.ResponseWriter, r *http.Request) {
	records, err := h.snapshotService.PortfolioRecords(r.Context())
	if err != nil {
		logger.L.Error("Error fetching time series data", "error", err)
		utils.SendJSONError(w, "Failed to fetch data", http.StatusInternalServerError)
		return
	}
	filtered := processors.ApplyFilters(records, parseFilterSpec(r))
	utils.WriteJSON(w, http.StatusOK, map[string]any{"data": processors.RepaymentTimeSeries(filtered)})
}

func (h *DashboardHandler) HandleGetCityCollected(w http.ResponseWriter, r *http.Request) {
	records, err := h.snapshotService.PortfolioRecords(r.Context())
	if err != nil {
		logger.L.Error("Error fetching city collection data", "error", err)
		utils.SendJSONError(w, "Failed to fetch data", http.StatusInternalServerError)
		return
	}
	filtered := processors.ApplyFilters(records, parseFilterSpec(r))
	utils.WriteJSON(w, http.StatusOK, map[string]any{"data": processors.TopCitiesByCollection(filtered)})
}

func (h *DashboardHandler) HandleGetCityUncollected(w http.ResponseWriter, r *http.Request) {
	records, err := h.snapshotService.PortfolioRecords(r.Context())
	if err != nil {
		logger.L.Error("Error fetching city uncollected data", "error", err)
		utils.SendJSONError(w, "Failed to fetch data", http.StatusInternalServerError)
		return
	}
	filtered := processors.ApplyFilters(records, parseFilterSpec(r))
	utils.WriteJSON(w, http.StatusOK, map[string]any{"data": processors.BottomCitiesByCollection(filtered)})
}

func (h *DashboardHandler) HandleGetAmountBands(w http.ResponseWriter, r *http.Request) {
	records, err := h.snapshotService.PortfolioRecords(r.Context())
	if err != nil {
		logger.L.Error("Error fetching amount band data", "error", err)
		utils.SendJSONError(w, "Failed to fetch data", http.StatusInternalServerError)
		return
	}
	filtered := processors.ApplyFilters(records, parseFilterSpec(r))
	utils.WriteJSON(w, http.StatusOK, map[string]any{"data": processors.AmountBands(filtered)})
}

func (h *DashboardHandler) HandleGetCollectionHistory(w http.ResponseWriter, r *http.Request) {
	records, err := h.snapshotService.PortfolioRecords(r.Context())
	if err != nil {
		logger.L.Error("Error fetching collection history", "error", err)
		utils.SendJSONError(w, "Failed to fetch data", http.StatusInternalServerError)
		return
	}
	history := processors.BuildCollectionHistory(records, processors.DefaultHistoryMonths)
	utils.WriteJSON(w, http.StatusOK, map[string]any{"data": history})
}

func (h *DashboardHandler) HandleGetCitiesByState(w http.ResponseWriter, r *http.Request) {
	state := r.URL.Query().Get("state")
	if state == "" {
		utils.WriteJSON(w, http.StatusOK, map[string]any{"cities": []string{}})
		return
	}
	records, err := h.snapshotService.PortfolioRecords(r.Context())
	if err != nil {
		logger.L.Error("Error fetching cities by state", "state", state, "error", err)
		utils.SendJSONError(w, "Failed to fetch data", http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]any{"cities": processors.CitiesInState(records, state)})
}

func (h *DashboardHandler) HandleGetFilterOptions(w http.ResponseWriter, r *http.Request) {
	records, err := h.snapshotService.PortfolioRecords(r.Context())
	if err != nil {
		logger.L.Error("Error fetching filter options", "error", err)
		utils.SendJSONError(w, "Failed to fetch data", http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, processors.BuildFilterOptions(records))
}
