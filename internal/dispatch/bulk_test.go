package dispatch

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/sms-dispatch/internal/gateway"
)

func TestSendMultipleMixedEntries(t *testing.T) {
	stub := &stubProvider{fn: func(_ int, d gateway.Dispatch) (*gateway.Result, error) {
		if d.Payload["phone"] == "0911000002" {
			return &gateway.Result{StatusCode: http.StatusServiceUnavailable}, nil
		}
		return &gateway.Result{StatusCode: http.StatusOK}, nil
	}}
	cfg := testConfig()
	cfg.MaxAttempts = 1
	e := newTestEngine(cfg, stub, nil)

	results := e.SendMultiple(context.Background(), []Request{
		{Phone: "0911000001", Message: "hello"},
		{Phone: "0911000002", Message: "hello"},
		{Phone: "0911000003", Message: "hello"},
		{Phone: "0911000004"},         // message missing
		{Message: "orphaned message"}, // phone missing
	})

	require.Len(t, results, 5)
	assert.True(t, results["0911000001"])
	assert.False(t, results["0911000002"], "one recipient's failure is independent of the others")
	assert.True(t, results["0911000003"])
	assert.False(t, results["0911000004"], "missing message fails without a delivery attempt")
	assert.False(t, results["invalid"], "missing phone is keyed under invalid")
	assert.Equal(t, 3, stub.callCount(), "invalid entries never reach the gateway")
}

func TestSendMultipleInterleavedInvalidEntries(t *testing.T) {
	stub := &stubProvider{}
	cfg := testConfig()
	cfg.MaxAttempts = 1
	e := newTestEngine(cfg, stub, nil)

	// alternate valid and invalid entries so invalid-entry bookkeeping
	// overlaps with in-flight recipient goroutines
	var reqs []Request
	for i := 0; i < 50; i++ {
		reqs = append(reqs,
			Request{Phone: fmt.Sprintf("09110%05d", i), Message: "hello"},
			Request{Phone: fmt.Sprintf("09120%05d", i)},
		)
	}

	results := e.SendMultiple(context.Background(), reqs)

	require.Len(t, results, 100)
	sent := 0
	for _, ok := range results {
		if ok {
			sent++
		}
	}
	assert.Equal(t, 50, sent)
	assert.Equal(t, 50, stub.callCount())
}

func TestSendMultiplePanicIsolatedToRecipient(t *testing.T) {
	stub := &stubProvider{fn: func(_ int, d gateway.Dispatch) (*gateway.Result, error) {
		if d.Payload["phone"] == "0911000002" {
			panic("provider bug")
		}
		return &gateway.Result{StatusCode: http.StatusOK}, nil
	}}
	cfg := testConfig()
	cfg.MaxAttempts = 1
	e := newTestEngine(cfg, stub, nil)

	results := e.SendMultiple(context.Background(), []Request{
		{Phone: "0911000001", Message: "hello"},
		{Phone: "0911000002", Message: "hello"},
		{Phone: "0911000003", Message: "hello"},
	})

	require.Len(t, results, 3)
	assert.True(t, results["0911000001"])
	assert.False(t, results["0911000002"], "panic recorded as failure for that recipient only")
	assert.True(t, results["0911000003"])
}

func TestSendMultipleDuplicatePhonesCollapse(t *testing.T) {
	stub := &stubProvider{}
	cfg := testConfig()
	cfg.MaxAttempts = 1
	e := newTestEngine(cfg, stub, nil)

	results := e.SendMultiple(context.Background(), []Request{
		{Phone: "0911000001", Message: "first"},
		{Phone: "0911000001", Message: "second"},
	})

	require.Len(t, results, 1)
	assert.True(t, results["0911000001"])
	assert.Equal(t, 2, stub.callCount(), "both duplicates are dispatched")
}

func TestSendMultipleEmptyInput(t *testing.T) {
	e := newTestEngine(testConfig(), &stubProvider{}, nil)
	assert.Empty(t, e.SendMultiple(context.Background(), nil))
}
