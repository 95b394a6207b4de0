// Package mockgateway imitates both upstream SMS gateway contracts so
// the dispatch engine can be exercised locally without a carrier
// account. Everything well-formed is accepted with HTTP 200.
package mockgateway

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"

	"github.com/example/sms-dispatch/internal/sms"
)

var receivedCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "mock_gateway_requests_total",
	Help: "Requests received by the mock gateway",
}, []string{"contract", "status"})

type Server struct {
	Logger zerolog.Logger
}

type genericRequest struct {
	Reference string         `json:"reference"`
	Payload   map[string]any `json:"payload"`
}

type geezRequest struct {
	Token string `json:"token"`
	Phone string `json:"phone"`
	Msg   string `json:"msg"`
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Get("/", s.ready)
	r.Post("/", s.handleGeez)
	r.Post("/send_sms", s.handleGeneric)
	return r
}

func (s *Server) ready(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "running",
		"message": "mock SMS gateway is ready, send POST requests here",
	})
}

func (s *Server) handleGeneric(w http.ResponseWriter, r *http.Request) {
	var req genericRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		receivedCounter.WithLabelValues("generic", "rejected").Inc()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Reference == "" {
		receivedCounter.WithLabelValues("generic", "rejected").Inc()
		http.Error(w, "reference is required", http.StatusBadRequest)
		return
	}

	s.Logger.Info().Str("reference", req.Reference).Interface("payload", req.Payload).
		Msg("mock gateway received sms request")
	receivedCounter.WithLabelValues("generic", "accepted").Inc()

	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "success",
		"message": "mock SMS accepted",
	})
}

func (s *Server) handleGeez(w http.ResponseWriter, r *http.Request) {
	var req geezRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		receivedCounter.WithLabelValues("geez", "rejected").Inc()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Token == "" || req.Phone == "" || req.Msg == "" {
		receivedCounter.WithLabelValues("geez", "rejected").Inc()
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error": true,
			"msg":   "token, phone and msg are required",
		})
		return
	}

	s.Logger.Info().Str("phone", sms.MaskPhone(req.Phone)).Int("msg_len", len(req.Msg)).
		Msg("mock gateway received geez request")
	receivedCounter.WithLabelValues("geez", "accepted").Inc()

	writeJSON(w, http.StatusOK, map[string]any{
		"error": false,
		"msg":   "mock SMS accepted",
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
