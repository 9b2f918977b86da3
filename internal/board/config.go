package board

import (
	"net/http"
	"time"
)

// Config holds all client configuration, injected from main.
type Config struct {
	APIBaseURL           string
	PageSize             int // cards per listing page
	AvatarScanPageSize   int // page size for the profile-owner scan
	FetchTimeout         time.Duration
	UploadMaxBytes       int64
	CacheTTL             time.Duration
	CacheMaxEntries      int
	CacheCleanupInterval time.Duration
	HTTPClient           *http.Client
	Interactive          bool // progress bars and colored output enabled
}

var cfg Config

// Cfg exposes the client configuration for sub-packages (api, screens, render).
// Always points to the current cfg value.
var Cfg = &cfg

// Init initializes the client with the given configuration.
func Init(c Config) {
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: 15 * time.Second}
	}
	if c.PageSize <= 0 {
		c.PageSize = 9
	}
	if c.AvatarScanPageSize <= 0 {
		c.AvatarScanPageSize = 100
	}
	cfg = c
	Cfg = &cfg
}
