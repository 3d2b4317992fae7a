package config

import (
	"os"
	"strings"
	"time"
)

const (
	defaultCatalogURL = "https://positnow.com:8010"
	defaultAccountURL = "https://positnow.com:8040"
)

// UpstreamConfig describes the remote positnow API. The catalog host serves items, stock,
// profit and billing; the account host serves login, permissions, company and customers.
type UpstreamConfig struct {
	CatalogBaseURL string
	AccountBaseURL string
	Timeout        time.Duration
	SalesRefId     int
}

func Upstream() UpstreamConfig {
	return UpstreamConfig{
		CatalogBaseURL: strings.TrimRight(stringFromEnv("POSITNOW_CATALOG_URL", defaultCatalogURL), "/"),
		AccountBaseURL: strings.TrimRight(stringFromEnv("POSITNOW_ACCOUNT_URL", defaultAccountURL), "/"),
		Timeout:        time.Duration(intFromEnv("UPSTREAM_TIMEOUT_SECONDS", 30)) * time.Second,
		SalesRefId:     intFromEnv("POSITNOW_SALES_REF_ID", 0),
	}
}

// SessionTTL bounds how long a gateway session and its screen state live in Redis.
func SessionTTL() time.Duration {
	// Env: SESSION_TTL_HOURS (default 12h)
	return time.Duration(intFromEnv("SESSION_TTL_HOURS", 12)) * time.Hour
}

func stringFromEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
