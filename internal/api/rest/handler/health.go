package handler

import (
	"net/http"
	"time"

	"spendtrack/internal/api/rest/response"
)

// Health reports service liveness.
type Health struct{}

// NewHealth creates a new Health handler.
func NewHealth() *Health {
	return &Health{}
}

type pingResponse struct {
	OK        bool   `json:"ok"`
	Timestamp string `json:"timestamp"`
}

// Ping confirms the service is up.
func (h *Health) Ping(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, pingResponse{
		OK:        true,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
