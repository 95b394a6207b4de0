package sms

import "strings"

// ValidatePhone reports whether raw is acceptable for the generic
// gateway: after stripping spaces and an optional leading "+", the
// remainder must be all digits and at least nine characters.
func ValidatePhone(raw string) bool {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), " ", "")
	cleaned = strings.TrimPrefix(cleaned, "+")
	if len(cleaned) < 9 {
		return false
	}
	return allDigits(cleaned)
}

// NormalizeGatewayPhone converts raw into the 12-digit GeezSMS shape
// (2519 followed by eight digits). Accepted inputs: +251911223344,
// 251911223344, 0911223344 and 911223344. Anything else is rejected;
// normalization never guesses digits.
func NormalizeGatewayPhone(raw string) (string, bool) {
	cleaned := strings.NewReplacer(" ", "", "-", "").Replace(strings.TrimSpace(raw))
	cleaned = strings.TrimPrefix(cleaned, "+")

	switch {
	case strings.HasPrefix(cleaned, "251"):
		// already carries the country code
	case strings.HasPrefix(cleaned, "0"):
		cleaned = "251" + cleaned[1:]
	case len(cleaned) == 9 && strings.HasPrefix(cleaned, "9"):
		cleaned = "251" + cleaned
	default:
		return "", false
	}

	if !strings.HasPrefix(cleaned, "2519") || len(cleaned) != 12 || !allDigits(cleaned) {
		return "", false
	}
	return cleaned, true
}

// MaskPhone redacts a subscriber number down to its non-sensitive
// prefix. Full numbers must never reach log output.
func MaskPhone(phone string) string {
	switch {
	case len(phone) >= 12:
		return phone[:8] + "****"
	case len(phone) > 4:
		return phone[:4] + "****"
	default:
		return "****"
	}
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
