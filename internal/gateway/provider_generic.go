package gateway

import "context"

// GenericProvider targets the primary savings-platform gateway:
// POST {base}/send_sms with a reference and the structured payload.
type GenericProvider struct {
	BaseURL   string
	Transport *Transport
}

func (p *GenericProvider) Name() string { return "generic" }

func (p *GenericProvider) Send(ctx context.Context, d Dispatch) (*Result, error) {
	body := map[string]any{
		"reference": d.Reference,
		"payload":   d.Payload,
	}
	return p.transport().Post(ctx, p.BaseURL+"/send_sms", body)
}

func (p *GenericProvider) transport() *Transport {
	if p.Transport != nil {
		return p.Transport
	}
	return NewTransport()
}
