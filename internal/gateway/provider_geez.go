package gateway

import "context"

// GeezProvider targets the GeezSMS aggregator, whose contract is a
// bare POST to the base URL with token, phone and msg fields. Phone
// must already be in the normalized 2519XXXXXXXX shape.
type GeezProvider struct {
	BaseURL   string
	Token     string
	Transport *Transport
}

func (p *GeezProvider) Name() string { return "geezsms" }

func (p *GeezProvider) Send(ctx context.Context, d Dispatch) (*Result, error) {
	body := map[string]any{
		"token": p.Token,
		"phone": d.Phone,
		"msg":   d.Message,
	}
	return p.transport().Post(ctx, p.BaseURL, body)
}

func (p *GeezProvider) transport() *Transport {
	if p.Transport != nil {
		return p.Transport
	}
	return NewTransport()
}
