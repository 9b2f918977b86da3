package board

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metrics tracks operational counters across the client.
var metrics struct {
	APIRequests      atomic.Int64
	APIErrors        atomic.Int64
	ListingLoads     atomic.Int64
	OvershootRetries atomic.Int64
	SuggestRequests  atomic.Int64
	Logins           atomic.Int64
	Signups          atomic.Int64
	Uploads          atomic.Int64
	AvatarScanPages  atomic.Int64
}

// GetMetrics returns a snapshot of all metrics including cache stats.
func GetMetrics() map[string]int64 {
	hits, misses := CacheStats()
	return map[string]int64{
		"api_requests":      metrics.APIRequests.Load(),
		"api_errors":        metrics.APIErrors.Load(),
		"listing_loads":     metrics.ListingLoads.Load(),
		"overshoot_retries": metrics.OvershootRetries.Load(),
		"suggest_requests":  metrics.SuggestRequests.Load(),
		"logins":            metrics.Logins.Load(),
		"signups":           metrics.Signups.Load(),
		"uploads":           metrics.Uploads.Load(),
		"avatar_scan_pages": metrics.AvatarScanPages.Load(),
		"cache_hits":        hits,
		"cache_misses":      misses,
	}
}

// FormatMetrics returns metrics as a simple text snapshot.
func FormatMetrics() string {
	m := GetMetrics()
	keys := []string{
		"api_requests", "api_errors",
		"listing_loads", "overshoot_retries", "suggest_requests",
		"logins", "signups", "uploads", "avatar_scan_pages",
		"cache_hits", "cache_misses",
	}
	var sb strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}

// Incrementors for the api sub-package.
func IncrAPIRequests() { metrics.APIRequests.Add(1) }
func IncrAPIErrors()   { metrics.APIErrors.Add(1) }
func IncrUploads()     { metrics.Uploads.Add(1) }

// Incrementors for the screens sub-package.
func IncrListingLoads()     { metrics.ListingLoads.Add(1) }
func IncrOvershootRetries() { metrics.OvershootRetries.Add(1) }
func IncrSuggestRequests()  { metrics.SuggestRequests.Add(1) }
func IncrLogins()           { metrics.Logins.Add(1) }
func IncrSignups()          { metrics.Signups.Add(1) }
func IncrAvatarScanPages()  { metrics.AvatarScanPages.Add(1) }
