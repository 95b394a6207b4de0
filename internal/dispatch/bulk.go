package dispatch

import (
	"context"
	"sync"

	"github.com/example/sms-dispatch/internal/sms"
)

// Request is one recipient's entry in a bulk send.
type Request struct {
	Phone   string         `json:"phone"`
	Message string         `json:"message"`
	Type    string         `json:"type,omitempty"`
	Data    map[string]any `json:"data,omitempty"`
}

// SendMultiple fans out one dispatch per recipient concurrently and
// returns phone -> success. Entries missing phone or message are
// recorded false immediately (keyed "invalid" when the phone itself is
// missing) without any delivery attempt. A panic in one recipient's
// flow is recorded as failure for that recipient only; the batch
// always runs to completion. Duplicate phones are last-write-wins.
func (e *Engine) SendMultiple(ctx context.Context, requests []Request) map[string]bool {
	results := make(map[string]bool, len(requests))
	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, req := range requests {
		if req.Phone == "" || req.Message == "" {
			key := req.Phone
			if key == "" {
				key = "invalid"
			}
			// recipient goroutines from earlier iterations may already
			// be writing results
			mu.Lock()
			results[key] = false
			mu.Unlock()
			continue
		}

		wg.Add(1)
		go func(req Request) {
			defer wg.Done()
			ok := e.sendRecipient(ctx, req)
			mu.Lock()
			results[req.Phone] = ok
			mu.Unlock()
		}(req)
	}

	wg.Wait()
	return results
}

func (e *Engine) sendRecipient(ctx context.Context, req Request) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			e.Logger.Error().Interface("panic", r).Str("phone", sms.MaskPhone(req.Phone)).
				Msg("recipient dispatch panicked")
			ok = false
		}
	}()
	return e.SendCustom(ctx, req.Phone, req.Message, req.Type, req.Data)
}
