package main

import (
	"context"
	"log"
	"time"

	"github.com/example/sms-dispatch/internal/common"
	"github.com/example/sms-dispatch/internal/gateway"
	"github.com/example/sms-dispatch/internal/sms"
)

// Sends a canary request to the configured gateway and reports whether it
// answered. Useful for verifying credentials and connectivity before
// pointing real traffic at a new environment.
func main() {
	cfg, err := common.LoadConfig("sms-smoke")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := common.NewLogger(cfg.ServiceName)

	if cfg.GatewayBaseURL == "" {
		logger.Fatal().Msg("SMS_GATEWAY_URL is not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.AttemptTimeout)
	defer cancel()

	transport := gateway.NewTransport()
	reference := sms.NewReference("SMOKE")

	var (
		url  string
		body any
	)
	switch cfg.Provider {
	case common.ProviderGeez:
		url = cfg.GatewayBaseURL
		body = map[string]any{
			"token": cfg.APIKey,
			"phone": "251900000000",
			"msg":   "connectivity check",
		}
	default:
		url = cfg.GatewayBaseURL + "/send_sms"
		body = map[string]any{
			"reference": reference,
			"payload":   map[string]any{"type": "smoke_test"},
		}
	}

	start := time.Now()
	res, err := transport.Post(ctx, url, body)
	if err != nil {
		logger.Fatal().Err(err).Str("url", url).Msg("gateway unreachable")
	}

	logger.Info().
		Str("provider", string(cfg.Provider)).
		Str("reference", reference).
		Int("status", res.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("gateway answered")

	if res.StatusCode != 200 {
		logger.Warn().Str("body", string(res.Body)).Msg("gateway returned non-success status")
	}
}
