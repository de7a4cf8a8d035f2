package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	CatalogFile     string        // path to the catalog.yaml file
	ReloadInterval  time.Duration // interval to reload catalog.yaml (default: 24h)
	SearchEngineURL string        // base URL for search hand-off (ex: https://www.google.com/search)
	FixFeedbackTTL  time.Duration // how long clients should keep fix feedback visible (default: 8s)

	// Redis
	RedisAddr             string        // ex: "localhost:6379"
	RedisUser             string        // optional
	RedisPassword         string        // optional
	RedisPasswordRequired bool          // true => require password, false => allow empty password
	RedisDB               int           // Redis DB number
	RedisDT               time.Duration // Redis dial timeout (ex: 5s)
	RedisRT               time.Duration // Redis read timeout (ex: 3s)
	RedisWT               time.Duration // Redis write timeout (ex: 3s)
	RedisMaxWait          time.Duration // max wait between retries (ex: 10s)
	RedisPingTimeout      time.Duration // timeout for each ping attempt (ex: 5s)
	RedisPoolSize         int           // Redis connection pool size
	RedisConnectTimeout   time.Duration // Total time to retry connecting (ex: 30s)
	RedisRetryInterval    time.Duration // Initial wait between retries (ex: 2s, grows exponentially)

	AllowedHosts []string // optional, restrict access to specific Host headers
	AllowedCIDRS []string // optional, restrict access to specific IP (e.g. "1.2.3.4, 5.6.7.8")
	TrustProxy   bool     // true => trust X-Forwarded-For headers (e.g. cloudflared)

	// Rate limiting for the write endpoints
	RateLimitBurst      int
	RateLimitPerMin     int
	RateLimitMaxEntries int
}

func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenPort:      getenv("DORKPILOT_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("DORKPILOT_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("DORKPILOT_LOG_LEVEL", "info"),
		PrettyLog: mustBool("DORKPILOT_PRETTY_LOG", true),

		// Catalog and search hand-off
		CatalogFile:     getenv("DORKPILOT_CATALOG_FILE", "/app/catalog.yaml"),
		ReloadInterval:  mustDuration("DORKPILOT_RELOAD_CATALOG_INTERVAL", 24*time.Hour),
		SearchEngineURL: getenv("DORKPILOT_SEARCH_ENGINE_URL", "https://www.google.com/search"),
		FixFeedbackTTL:  mustDuration("DORKPILOT_FIX_FEEDBACK_TTL", 8*time.Second),

		// Redis settings
		RedisAddr:             requireEnv("DORKPILOT_REDIS_ADDR"),
		RedisUser:             getenv("DORKPILOT_REDIS_USERNAME", "default"),
		RedisPasswordRequired: mustBool("DORKPILOT_REDIS_PASSWORD_REQUIRED", true),
		RedisPassword:         getenv("DORKPILOT_REDIS_PASSWORD", ""),
		RedisDB:               requireEnvInt("DORKPILOT_REDIS_DB"),
		RedisDT:               mustDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:               mustDuration("REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:               mustDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisMaxWait:          mustDuration("REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:      mustDuration("REDIS_PING_TIMEOUT", 5*time.Second),
		RedisPoolSize:         getenvInt("REDIS_POOL_SIZE", 10),
		RedisConnectTimeout:   mustDuration("REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:    mustDuration("REDIS_RETRY_INTERVAL", 2*time.Second),

		// Access restrictions
		AllowedHosts: requireEnvSlice("DORKPILOT_ALLOWED_HOSTS"),
		AllowedCIDRS: parseAllowedIPs(getenv("DORKPILOT_ALLOWED_CIDRS", "")),
		TrustProxy:   mustBool("DORKPILOT_TRUST_PROXY", true),

		// Rate limiting
		RateLimitBurst:      getenvInt("DORKPILOT_RATE_LIMIT_BURST", 20),
		RateLimitPerMin:     getenvInt("DORKPILOT_RATE_LIMIT_PER_MIN", 60),
		RateLimitMaxEntries: getenvInt("DORKPILOT_RATE_LIMIT_MAX_ENTRIES", 10000),
	}

	// Validate Redis password configuration
	if cfg.RedisPasswordRequired && cfg.RedisPassword == "" {
		panic("❌ FATAL: DORKPILOT_REDIS_PASSWORD is required when DORKPILOT_REDIS_PASSWORD_REQUIRED=true")
	}

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		cfgCopy := *cfg
		cfgCopy.RedisPassword = "***REDACTED***"
		if cfg.RedisUser != "" {
			cfgCopy.RedisUser = "***REDACTED***"
		}
		log.Printf("[DEBUG] cfg: %+v\n", cfgCopy)
	}

	return cfg
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func requireEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		panic(fmt.Sprintf("❌ FATAL: Required environment variable %s is not set", key))
	}
	return v
}

func requireEnvInt(key string) int {
	v := os.Getenv(key)
	if v == "" {
		panic(fmt.Sprintf("❌ FATAL: Required environment variable %s is not set", key))
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		panic(fmt.Sprintf("❌ FATAL: Invalid integer value for %s: %s", key, v))
	}
	return i
}

func requireEnvSlice(key string) []string {
	v := os.Getenv(key)
	if v == "" {
		panic(fmt.Sprintf("❌ FATAL: Required environment variable %s is not set", key))
	}
	return splitAndTrim(v)
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func parseAllowedIPs(allowed string) []string {
	if allowed == "" {
		return nil
	}
	ips := make([]string, 0, 4)
	for _, ip := range splitAndTrim(allowed) {
		if ip != "" {
			ips = append(ips, ip)
		}
	}
	return ips
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		// Remove surrounding quotes if present
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
