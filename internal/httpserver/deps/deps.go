package deps

import (
	"time"

	"github.com/dorkpilot/dorkpilot/internal/index"
	"github.com/dorkpilot/dorkpilot/internal/logger"
	"github.com/redis/go-redis/v9"
)

type Deps struct {
	Logger          logger.Logger
	StartTime       time.Time
	Version         string
	Commit          string
	BuildDate       string
	GoVersion       string
	TimeNow         func() time.Time   // for testing, defaults to time.Now
	AllowedHosts    []string           // Host headers allowed to access the server
	AllowedCIDRS    []string           // IPs allowed to access the operational endpoints
	TrustProxy      bool               // true if running behind a trusted reverse proxy (e.g., cloudflared)
	CatalogFile     string             // Path to the catalog definitions file
	RedisClient     *redis.Client      // Redis client connection
	MemoryIndex     *index.MemoryIndex // In-memory catalog snapshot
	SearchEngineURL string             // Base URL for hand-off to the external search engine
	FixFeedbackTTL  time.Duration      // How long clients should surface fix feedback
	ReloadTrigger   chan struct{}      // Channel to trigger manual catalog reload

	// Rate limiting for the library write endpoints
	RateLimitBurst      int
	RateLimitPerMin     int
	RateLimitMaxEntries int
}
