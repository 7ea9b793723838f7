package config

import (
	"os"
	"strings"
)

// RevenueHiddenFor reports whether the dashboard should omit total revenue
// for the given account. The contact-desk login must not see money totals.
//
// Set via env:
// - REVENUE_HIDDEN_USERS="contact@axisogreen.in,frontdesk@axisogreen.in"
//
// Emails are case-insensitive.
func RevenueHiddenFor(email string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return false
	}
	raw := os.Getenv("REVENUE_HIDDEN_USERS")
	if strings.TrimSpace(raw) == "" {
		return false
	}
	for _, part := range strings.Split(raw, ",") {
		if strings.ToLower(strings.TrimSpace(part)) == email {
			return true
		}
	}
	return false
}

// MutationGuardEnabled gates the per-project single-flight lock on mutating
// endpoints. On by default; disable only for local debugging without redis.
//
// Set via env:
// - MUTATION_GUARD_DISABLED=true
func MutationGuardEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("MUTATION_GUARD_DISABLED")))
	return !(v == "1" || v == "true" || v == "yes" || v == "y")
}
