package handlers

import (
	"encoding/json"
	"log"
	"net/http"
)

// GetStockSummaryHandler godoc
// @Summary Stock health metrics for the admin dashboard
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} repo.StockSummary
// @Failure 500 {string} string "Internal error"
// @Router /admin/metrics [get]
func GetStockSummaryHandler(w http.ResponseWriter, r *http.Request) {
	s, err := metricsRepo.GetStockSummary()
	if err != nil {
		http.Error(w, "failed to fetch metrics", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}
