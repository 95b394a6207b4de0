package sms

import (
	"strings"
	"testing"
)

func TestNewReferenceShape(t *testing.T) {
	ref := NewReference("BULK_AUTH")
	parts := strings.Split(ref, "_")
	if len(parts) != 4 {
		t.Fatalf("reference %q has %d segments, expected prefix + timestamp + suffix", ref, len(parts))
	}
	if parts[0] != "BULK" || parts[1] != "AUTH" {
		t.Fatalf("reference %q lost its prefix", ref)
	}
	if len(parts[2]) != 17 {
		t.Fatalf("timestamp segment %q is %d chars, expected 17", parts[2], len(parts[2]))
	}
	if len(parts[3]) != 8 {
		t.Fatalf("random suffix %q is %d chars, expected 8", parts[3], len(parts[3]))
	}
}

func TestNewReferenceDefaultPrefix(t *testing.T) {
	if ref := NewReference(""); !strings.HasPrefix(ref, DefaultReferencePrefix+"_") {
		t.Fatalf("reference %q missing default prefix", ref)
	}
}

func TestNewReferenceUniqueness(t *testing.T) {
	const n = 10000
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		ref := NewReference("LOAD")
		if _, dup := seen[ref]; dup {
			t.Fatalf("duplicate reference after %d generations: %s", i, ref)
		}
		seen[ref] = struct{}{}
	}
}
