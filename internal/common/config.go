package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// ProviderKind is the upstream gateway variant, chosen once at process
// start. Dispatch paths branch on this tag, never on URL substrings at
// call time.
type ProviderKind string

const (
	ProviderGeneric ProviderKind = "generic"
	ProviderGeez    ProviderKind = "geezsms"
)

const (
	defaultMaxAttempts    = 3
	defaultAttemptTimeout = 30 * time.Second
	defaultBackoffUnit    = time.Second
)

type Config struct {
	HTTPPort       int
	MetricsPort    int
	DatabaseURL    string
	GatewayBaseURL string
	APIKey         string
	Provider       ProviderKind
	MaxAttempts    int
	AttemptTimeout time.Duration
	BackoffUnit    time.Duration
	OTLPEndpoint   string
	ServiceName    string
}

func LoadConfig(service string) (*Config, error) {
	cfg := &Config{ServiceName: service}

	httpPort, err := getEnvInt("HTTP_PORT", 8080)
	if err != nil {
		return nil, err
	}
	cfg.HTTPPort = httpPort

	metricsPort, err := getEnvInt("METRICS_PORT", httpPort+1000)
	if err != nil {
		return nil, err
	}
	cfg.MetricsPort = metricsPort

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	cfg.OTLPEndpoint = os.Getenv("OTLP_ENDPOINT")
	cfg.GatewayBaseURL = strings.TrimRight(os.Getenv("SMS_GATEWAY_URL"), "/")
	cfg.APIKey = os.Getenv("SMS_API_KEY")

	maxAttempts, err := getEnvInt("SMS_MAX_RETRIES", defaultMaxAttempts)
	if err != nil {
		return nil, err
	}
	if maxAttempts < 1 {
		return nil, fmt.Errorf("SMS_MAX_RETRIES must be at least 1, got %d", maxAttempts)
	}
	cfg.MaxAttempts = maxAttempts

	timeoutSecs, err := getEnvInt("SMS_TIMEOUT_SECONDS", int(defaultAttemptTimeout/time.Second))
	if err != nil {
		return nil, err
	}
	cfg.AttemptTimeout = time.Duration(timeoutSecs) * time.Second
	cfg.BackoffUnit = defaultBackoffUnit

	provider, err := detectProvider(os.Getenv("SMS_PROVIDER"), cfg.GatewayBaseURL)
	if err != nil {
		return nil, err
	}
	cfg.Provider = provider

	return cfg, nil
}

// detectProvider resolves the gateway variant: an explicit SMS_PROVIDER
// value wins, otherwise the base URL host decides. Resolution happens
// exactly once, at load time.
func detectProvider(explicit, baseURL string) (ProviderKind, error) {
	switch strings.ToLower(strings.TrimSpace(explicit)) {
	case "":
		// fall through to URL detection
	case string(ProviderGeneric):
		return ProviderGeneric, nil
	case string(ProviderGeez):
		return ProviderGeez, nil
	default:
		return "", fmt.Errorf("unknown SMS_PROVIDER %q", explicit)
	}

	if strings.Contains(baseURL, "geezsms.com") {
		return ProviderGeez, nil
	}
	return ProviderGeneric, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	if v := os.Getenv(key); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("invalid value for %s: %w", key, err)
		}
		return parsed, nil
	}
	return fallback, nil
}
