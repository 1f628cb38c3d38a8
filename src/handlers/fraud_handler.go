package handlers

import (
	"net/http"

	"github.com/Deep6432/Blinkrloan-Dashboard/src/logger"
	"github.com/Deep6432/Blinkrloan-Dashboard/src/processors"
	"github.com/Deep6432/Blinkrloan-Dashboard/src/services"
	"github.com/Deep6432/Blinkrloan-Dashboard/src/utils"
)

// FraudHandler serves the fraud-summary dashboard on the
// collection-without-fraud feed. Its KPI family uses the strict fresh/reloan
// predicate and responds with the flat historical shapes.
type FraudHandler struct {
	snapshotService services.SnapshotService
}

func NewFraudHandler(snapshotService services.SnapshotService) *FraudHandler {
	return &FraudHandler{snapshotService: snapshotService}
}

func (h *FraudHandler) HandleGetFraudKPIData(w http.ResponseWriter, r *http.Request) {
	records, err := h.snapshotService.CollectionRecords(r.Context())
	if err != nil {
		logger.L.Error("Error fetching fraud KPI data", "error", err)
		utils.SendJSONError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	filtered := processors.ApplyFilters(records, parseFilterSpec(r))
	utils.WriteJSON(w, http.StatusOK, processors.FraudKPIs(filtered))
}

func (h *FraudHandler) HandleGetFraudDPDBuckets(w http.ResponseWriter, r *http.Request) {
	records, err := h.snapshotService.CollectionRecords(r.Context())
	if err != nil {
		logger.L.Error("Error fetching fraud DPD buckets", "error", err)
		utils.SendJSONError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	filtered := processors.ApplyFilters(records, parseFilterSpec(r))
	utils.WriteJSON(w, http.StatusOK, map[string]any{"buckets": processors.RawDPDBucketSummary(filtered)})
}

func (h *FraudHandler) HandleGetFraudStateRepayment(w http.ResponseWriter, r *http.Request) {
	records, err := h.snapshotService.CollectionRecords(r.Context())
	if err != nil {
		logger.L.Error("Error fetching fraud state repayment", "error", err)
		utils.SendJSONError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	filtered := processors.ApplyFilters(records, parseFilterSpec(r))
	utils.WriteJSON(w, http.StatusOK, map[string]any{"states": processors.StateRepaymentSummary(filtered)})
}

func (h *FraudHandler) HandleGetFraudTimeSeries(w http.ResponseWriter, r *http.Request) {
	records, err := h.snapshotService.CollectionRecords(r.Context())
	if err != nil {
		logger.L.Error("Error fetching fraud time series", "error", err)
		utils.SendJSONError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	filtered := processors.ApplyFilters(records, parseFilterSpec(r))
	utils.WriteJSON(w, http.StatusOK, map[string]any{"data": processors.RepaymentTimeSeries(filtered)})
}

func (h *FraudHandler) HandleGetFraudCityCollected(w http.ResponseWriter, r *http.Request) {
	records, err := h.snapshotService.CollectionRecords(r.Context())
	if err != nil {
		logger.L.Error("Error fetching fraud city collection", "error", err)
		utils.SendJSONError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	filtered := processors.ApplyFilters(records, parseFilterSpec(r))
	utils.WriteJSON(w, http.StatusOK, map[string]any{"cities": processors.TopCitiesByCollection(filtered)})
}

func (h *FraudHandler) HandleGetFraudCityUncollected(w http.ResponseWriter, r *http.Request) {
	records, err := h.snapshotService.CollectionRecords(r.Context())
	if err != nil {
		logger.L.Error("Error fetching fraud city uncollected", "error", err)
		utils.SendJSONError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	filtered := processors.ApplyFilters(records, parseFilterSpec(r))
	utils.WriteJSON(w, http.StatusOK, map[string]any{"cities": processors.BottomCitiesByCollection(filtered)})
}
