package config

import (
	"os"
	"strings"
	"time"
)

func envTrue(key string) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	return v == "1" || v == "true" || v == "yes" || v == "y"
}

// CartReAddIncrements switches the credit-bill cart from "re-adding an item is a no-op"
// to "re-adding an item bumps its quantity".
//
// Set via env:
// - CART_READD_INCREMENTS=true
func CartReAddIncrements() bool {
	return envTrue("CART_READD_INCREMENTS")
}

// OutstandingExportEnabled gates the xlsx export of the outstanding screen.
//
// Set via env:
// - DISABLE_OUTSTANDING_EXPORT=true
func OutstandingExportEnabled() bool {
	return !envTrue("DISABLE_OUTSTANDING_EXPORT")
}

// LoginRateLimit bounds login attempts per client IP.
//
// Set via env:
// - LOGIN_RATE_LIMIT_ENABLED=true
// - LOGIN_RATE_LIMIT_MAX_REQUESTS=10
// - LOGIN_RATE_LIMIT_WINDOW_SECONDS=60
func LoginRateLimit() (enabled bool, limit int64, window time.Duration) {
	enabled = envTrue("LOGIN_RATE_LIMIT_ENABLED")
	limit = int64(intFromEnv("LOGIN_RATE_LIMIT_MAX_REQUESTS", 10))
	if limit <= 0 {
		limit = 10
	}
	seconds := intFromEnv("LOGIN_RATE_LIMIT_WINDOW_SECONDS", 60)
	if seconds <= 0 {
		seconds = 60
	}
	return enabled, limit, time.Duration(seconds) * time.Second
}
