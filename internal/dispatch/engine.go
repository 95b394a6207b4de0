// Package dispatch is the notification delivery engine: provider
// selection, retry with capped exponential backoff, per-attempt
// timeouts and concurrent bulk fan-out. Failure never crosses the
// public surface as a panic or an error value; every operation
// resolves to a boolean so a failed notification can never abort the
// business transaction that triggered it.
package dispatch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/example/sms-dispatch/internal/common"
	"github.com/example/sms-dispatch/internal/gateway"
	"github.com/example/sms-dispatch/internal/payload"
	"github.com/example/sms-dispatch/internal/sms"
)

var (
	attemptCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sms_dispatch_attempts_total",
		Help: "Gateway delivery attempts, including retries",
	}, []string{"provider"})
	outcomeCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sms_dispatch_total",
		Help: "Completed dispatches by final outcome",
	}, []string{"provider", "outcome"})
)

// Engine dispatches notifications to the configured upstream gateway.
// Configuration is read-only after construction; each dispatch owns
// its reference, payload and attempt counter exclusively, so Engine is
// safe for concurrent use.
type Engine struct {
	Config  *common.Config
	Generic gateway.Provider
	Geez    gateway.Provider
	Logger  zerolog.Logger

	// Timer overrides the retry wait timer. Tests use it to observe
	// backoff sleeps; nil means real time.
	Timer backoff.Timer
}

// Outcome records what one dispatch consumed and how it ended.
type Outcome struct {
	Success    bool
	Attempts   int
	LastStatus int
	LastErr    error
}

// New wires an Engine to real gateway providers sharing one pooled
// transport.
func New(cfg *common.Config, logger zerolog.Logger) *Engine {
	tr := gateway.NewTransport()
	return &Engine{
		Config:  cfg,
		Generic: &gateway.GenericProvider{BaseURL: cfg.GatewayBaseURL, Transport: tr},
		Geez:    &gateway.GeezProvider{BaseURL: cfg.GatewayBaseURL, Token: cfg.APIKey, Transport: tr},
		Logger:  logger,
	}
}

// Send dispatches a structured payload through the generic gateway
// contract. The optional phone gates on ValidatePhone; configuration
// and validation failures are terminal and consume no attempts.
func (e *Engine) Send(ctx context.Context, reference string, p payload.Payload, phone string) bool {
	if e.Config.GatewayBaseURL == "" {
		e.Logger.Error().Str("reference", reference).Msg("sms config error: gateway base URL not configured")
		return false
	}
	if phone != "" && !sms.ValidatePhone(phone) {
		e.Logger.Warn().Str("reference", reference).Str("phone", sms.MaskPhone(phone)).Msg("sms validation error: invalid phone format")
		return false
	}

	target := "in_payload"
	if phone != "" {
		target = sms.MaskPhone(phone)
	}
	logger := e.Logger.With().Str("reference", reference).Str("phone", target).Logger()
	logger.Info().Msg("sending sms")

	out := e.deliver(ctx, logger, e.Generic, gateway.Dispatch{Reference: reference, Payload: p})
	return out.Success
}

// SendCustom sanitizes and dispatches freeform text, routing through
// the gateway variant selected at startup.
func (e *Engine) SendCustom(ctx context.Context, phone, message, messageType string, extra map[string]any) bool {
	if !sms.ValidatePhone(phone) {
		e.Logger.Warn().Str("phone", sms.MaskPhone(phone)).Msg("custom sms: invalid phone")
		return false
	}
	clean := sms.SanitizeMessage(message)
	if clean == "" {
		e.Logger.Warn().Str("phone", sms.MaskPhone(phone)).Msg("custom sms: empty message after sanitization")
		return false
	}

	if e.Config.Provider == common.ProviderGeez {
		return e.sendGeez(ctx, phone, clean)
	}

	p := payload.Custom{Phone: phone, Message: clean, Type: messageType, Extra: extra}.Payload()
	return e.Send(ctx, sms.NewReference(refPrefixCustom), p, phone)
}

// SendNotification sends a plain informational SMS.
func (e *Engine) SendNotification(ctx context.Context, phone, message string) bool {
	return e.SendCustom(ctx, phone, message, payload.TypeNotification, nil)
}

func (e *Engine) sendGeez(ctx context.Context, phone, message string) bool {
	if e.Config.GatewayBaseURL == "" {
		e.Logger.Error().Msg("sms config error: gateway base URL not configured")
		return false
	}
	if e.Config.APIKey == "" {
		e.Logger.Error().Msg("sms config error: geez api key not configured")
		return false
	}
	normalized, ok := sms.NormalizeGatewayPhone(phone)
	if !ok {
		e.Logger.Warn().Str("phone", sms.MaskPhone(phone)).Msg("sms validation error: phone not normalizable for geez gateway")
		return false
	}

	logger := e.Logger.With().Str("phone", sms.MaskPhone(normalized)).Logger()
	logger.Info().Msg("sending sms via geez gateway")

	out := e.deliver(ctx, logger, e.Geez, gateway.Dispatch{Phone: normalized, Message: message})
	return out.Success
}

// deliver is the single retrying path shared by both provider
// variants: per-attempt timeout, capped exponential backoff between
// failures, a hard attempt cap.
func (e *Engine) deliver(ctx context.Context, logger zerolog.Logger, provider gateway.Provider, d gateway.Dispatch) Outcome {
	ctx, span := otel.Tracer("dispatch").Start(ctx, "deliver_sms")
	defer span.End()
	span.SetAttributes(
		attribute.String("sms.provider", provider.Name()),
		attribute.String("sms.reference", d.Reference),
	)

	var out Outcome
	operation := func() error {
		out.Attempts++
		attemptCounter.WithLabelValues(provider.Name()).Inc()

		attemptCtx, cancel := context.WithTimeout(ctx, e.Config.AttemptTimeout)
		defer cancel()

		res, err := provider.Send(attemptCtx, d)
		if err != nil {
			out.LastStatus = 0
			out.LastErr = err
			logger.Warn().Err(err).Int("attempt", out.Attempts).Msg("sms attempt failed")
			return err
		}

		out.LastStatus = res.StatusCode
		if res.StatusCode != http.StatusOK {
			err := fmt.Errorf("gateway status %d", res.StatusCode)
			out.LastErr = err
			logger.Warn().Int("attempt", out.Attempts).Int("status", res.StatusCode).
				Str("response", snippet(res.Body, 200)).Msg("sms attempt failed")
			return err
		}

		if len(res.Body) > 0 && json.Valid(res.Body) {
			logger.Debug().RawJSON("response", res.Body).Msg("gateway response")
		}
		return nil
	}

	maxRetries := e.Config.MaxAttempts - 1
	if maxRetries < 0 {
		maxRetries = 0
	}
	policy := backoff.WithContext(
		backoff.WithMaxRetries(newCappedBackoff(e.Config.BackoffUnit), uint64(maxRetries)),
		ctx,
	)

	var err error
	if e.Timer != nil {
		err = backoff.RetryNotifyWithTimer(operation, policy, nil, e.Timer)
	} else {
		err = backoff.Retry(operation, policy)
	}

	if err != nil {
		span.RecordError(err)
		outcomeCounter.WithLabelValues(provider.Name(), "failure").Inc()
		logger.Error().Err(err).Int("attempts", out.Attempts).Msg("all sms attempts failed")
		return out
	}

	out.Success = true
	outcomeCounter.WithLabelValues(provider.Name(), "success").Inc()
	logger.Info().Int("attempts", out.Attempts).Msg("sms sent successfully")
	return out
}

// cappedBackoff waits min(2^(n-1), 10) units before retry n+1.
type cappedBackoff struct {
	unit time.Duration
	n    int
}

func newCappedBackoff(unit time.Duration) *cappedBackoff {
	if unit <= 0 {
		unit = time.Second
	}
	return &cappedBackoff{unit: unit}
}

func (b *cappedBackoff) NextBackOff() time.Duration {
	units := 10
	if b.n < 4 {
		units = 1 << b.n
	}
	b.n++
	return time.Duration(units) * b.unit
}

func (b *cappedBackoff) Reset() { b.n = 0 }

func snippet(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n])
}
