package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

const (
	defaultDialTimeout     = 10 * time.Second
	defaultKeepAlive       = 30 * time.Second
	defaultIdleConnTimeout = 90 * time.Second
	maxIdleConns           = 100
	maxIdleConnsPerHost    = 10

	// maxResponseBytes bounds how much of a gateway response is read
	// for diagnostics; upstream bodies are small JSON documents.
	maxResponseBytes = 64 << 10
)

// Result is the observable outcome of one gateway call. Interpreting
// the status code is the delivery engine's job, not the transport's.
type Result struct {
	StatusCode int
	Body       []byte
}

// Transport issues a single HTTP POST with a JSON body. It never
// retries and treats every status code alike; connection-level
// failures surface as errors with no Result.
type Transport struct {
	Client *http.Client
}

// NewTransport returns a Transport backed by a pooled http.Client.
// The overall request timeout is enforced by the caller's context, so
// no client-level timeout is set here.
func NewTransport() *Transport {
	return &Transport{
		Client: &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        maxIdleConns,
				MaxIdleConnsPerHost: maxIdleConnsPerHost,
				IdleConnTimeout:     defaultIdleConnTimeout,
				DialContext: (&net.Dialer{
					Timeout:   defaultDialTimeout,
					KeepAlive: defaultKeepAlive,
				}).DialContext,
				ForceAttemptHTTP2: true,
			},
		},
	}
}

func (t *Transport) Post(ctx context.Context, url string, body any) (*Result, error) {
	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(encoded))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	client := t.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	return &Result{StatusCode: resp.StatusCode, Body: data}, nil
}
