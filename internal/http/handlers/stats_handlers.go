package handlers

import (
	"net/http"

	"github.com/rs/zerolog/log"
)

// GetStats godoc
// @Summary Inventory aggregates for the dashboard
// @Description Product count, total stock, distinct categories and total inventory value
// @Tags stats
// @Produce json
// @Success 200 {object} repo.Stats
// @Failure 500 {string} string "Internal error"
// @Router /api/stats [get]
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.products.Stats()
	if err != nil {
		log.Error().Err(err).Msg("could not compute stats")
		http.Error(w, "could not compute stats", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
