package health

import (
	"encoding/json"
	"net/http"
	"time"
)

const serviceName = "Philippines NCL Cruises API"

// Response ответ проверки состояния, отдаётся без общего конверта
type Response struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
}

type Handler struct {
	now func() time.Time
}

func NewHandler() *Handler {
	return &Handler{now: time.Now}
}

// Handle GET /api/health
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(Response{
		Status:    "OK",
		Timestamp: h.now().UTC(),
		Service:   serviceName,
	})
}
