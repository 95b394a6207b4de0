package sms

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultReferencePrefix is used when a caller does not supply one.
const DefaultReferencePrefix = "SMS"

// NewReference builds a dispatch reference of the form
// PREFIX_20060102150405000_xxxxxxxx: a millisecond timestamp plus
// eight hex characters of randomness. One reference covers every retry
// of the same logical send. Never blocks, never touches the network.
func NewReference(prefix string) string {
	if prefix == "" {
		prefix = DefaultReferencePrefix
	}
	ts := strings.Replace(time.Now().Format("20060102150405.000"), ".", "", 1)
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return prefix + "_" + ts + "_" + suffix
}
