package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/example/sms-dispatch/internal/common"
	"github.com/example/sms-dispatch/internal/dispatch"
	"github.com/example/sms-dispatch/internal/sms"
)

var (
	reqCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sms_api_requests_total",
		Help: "Total SMS API requests received",
	}, []string{"endpoint", "status"})
	requestLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "sms_api_request_duration_seconds",
		Help:    "Latency for SMS API requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint"})
)

type SendRequest struct {
	Phone   string         `json:"phone"`
	Message string         `json:"message"`
	Type    string         `json:"type,omitempty"`
	Data    map[string]any `json:"data,omitempty"`
}

type BulkRequest struct {
	Messages []dispatch.Request `json:"messages"`
}

type Server struct {
	engine *dispatch.Engine
	audit  AuditRepository
	cfg    *common.Config
	tracer trace.Tracer
	logger zerolog.Logger
}

// NewServer builds the inbound HTTP surface over the dispatch engine.
// audit may be nil when no database is configured.
func NewServer(engine *dispatch.Engine, audit AuditRepository, cfg *common.Config, logger zerolog.Logger) *Server {
	return &Server{
		engine: engine,
		audit:  audit,
		cfg:    cfg,
		tracer: otel.Tracer("httpapi"),
		logger: logger,
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Get("/", s.index)
	r.Post("/v1/sms/send", s.send)
	r.Post("/v1/sms/bulk", s.bulk)
	return r
}

func (s *Server) index(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "running",
		"service": s.cfg.ServiceName,
		"endpoints": map[string]string{
			"send": "/v1/sms/send",
			"bulk": "/v1/sms/bulk",
		},
	})
}

func (s *Server) send(w http.ResponseWriter, r *http.Request) {
	ctx, span := s.tracer.Start(r.Context(), "send_sms")
	defer span.End()

	var req SendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondErr(ctx, w, "send", http.StatusBadRequest, err)
		return
	}
	if req.Phone == "" || req.Message == "" {
		s.respondErr(ctx, w, "send", http.StatusBadRequest, errors.New("phone and message are required"))
		return
	}
	span.SetAttributes(attribute.String("sms.phone", sms.MaskPhone(req.Phone)))

	start := time.Now()
	ok := s.engine.SendCustom(ctx, req.Phone, req.Message, req.Type, req.Data)
	requestLatency.WithLabelValues("send").Observe(time.Since(start).Seconds())

	s.record(ctx, req, ok)

	if !ok {
		reqCounter.WithLabelValues("send", "failed").Inc()
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"status":  "error",
			"message": "failed to send SMS",
		})
		return
	}

	reqCounter.WithLabelValues("send", "sent").Inc()
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "success",
		"message": "SMS sent",
	})
}

func (s *Server) bulk(w http.ResponseWriter, r *http.Request) {
	ctx, span := s.tracer.Start(r.Context(), "bulk_sms")
	defer span.End()

	var req BulkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondErr(ctx, w, "bulk", http.StatusBadRequest, err)
		return
	}
	if len(req.Messages) == 0 {
		s.respondErr(ctx, w, "bulk", http.StatusBadRequest, errors.New("messages is required"))
		return
	}
	span.SetAttributes(attribute.Int("sms.recipients", len(req.Messages)))

	start := time.Now()
	results := s.engine.SendMultiple(ctx, req.Messages)
	requestLatency.WithLabelValues("bulk").Observe(time.Since(start).Seconds())

	sent := 0
	for _, ok := range results {
		if ok {
			sent++
		}
	}
	reqCounter.WithLabelValues("bulk", "accepted").Inc()

	writeJSON(w, http.StatusOK, map[string]any{
		"results": results,
		"sent":    sent,
		"failed":  len(results) - sent,
	})
}

func (s *Server) record(ctx context.Context, req SendRequest, success bool) {
	if s.audit == nil {
		return
	}
	rec := DispatchRecord{
		ID:          uuid.NewString(),
		Phone:       req.Phone,
		MessageType: req.Type,
		Success:     success,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.audit.Record(ctx, rec); err != nil {
		// the audit trail must never fail a send
		logger := common.WithContext(ctx, s.logger)
		logger.Error().Err(err).Msg("audit record failed")
	}
}

func (s *Server) respondErr(ctx context.Context, w http.ResponseWriter, endpoint string, status int, err error) {
	logger := common.WithContext(ctx, s.logger)
	logger.Error().Err(err).Int("status", status).Str("endpoint", endpoint).Msg("sms api request failed")
	reqCounter.WithLabelValues(endpoint, "rejected").Inc()
	http.Error(w, err.Error(), status)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
