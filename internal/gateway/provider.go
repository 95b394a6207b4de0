package gateway

import "context"

// Dispatch is one notification handed to a provider. The generic
// gateway consumes Reference and Payload; GeezSMS consumes Phone (in
// its 12-digit normalized shape) and Message.
type Dispatch struct {
	Reference string
	Payload   map[string]any
	Phone     string
	Message   string
}

// Provider submits one dispatch to an upstream gateway. Implementations
// perform exactly one attempt per call; retry policy lives in the
// delivery engine.
type Provider interface {
	Name() string
	Send(ctx context.Context, d Dispatch) (*Result, error)
}
