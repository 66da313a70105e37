package riot

import (
	"sync"
	"time"
)

// Cache memoizes immutable Riot API responses in process memory. Finished
// match details never change upstream, so caching them is pure memoization;
// league entries move slowly and get a short TTL because a single live-game
// view looks up every player on a ten-person roster.
// It is safe for concurrent use and supports per-type TTLs with periodic cleanup.
type Cache struct {
	mu sync.RWMutex

	// TTLs
	matchTTL  time.Duration
	leagueTTL time.Duration

	// Data stores
	matches map[string]cachedItem[*MatchDto]     // key: matchID
	leagues map[string]cachedItem[[]LeagueEntry] // key: summonerID

	// janitor
	janitorStop chan struct{}
}

// cachedItem wraps a cached value with an expiration time.
type cachedItem[T any] struct {
	value     T
	expiresAt time.Time
}

// NewCache creates a new Cache instance with the provided TTLs.
// If any TTL is <= 0, a sensible default will be used:
// - matchTTL: 24 hours
// - leagueTTL: 15 minutes
func NewCache(matchTTL, leagueTTL time.Duration) *Cache {
	if matchTTL <= 0 {
		matchTTL = 24 * time.Hour
	}
	if leagueTTL <= 0 {
		leagueTTL = 15 * time.Minute
	}

	return &Cache{
		matchTTL:  matchTTL,
		leagueTTL: leagueTTL,
		matches:   make(map[string]cachedItem[*MatchDto]),
		leagues:   make(map[string]cachedItem[[]LeagueEntry]),
	}
}

// NewDefaultCache creates a Cache with default TTLs.
func NewDefaultCache() *Cache {
	return NewCache(24*time.Hour, 15*time.Minute)
}

// SetMatch caches a MatchDto for a matchID.
func (c *Cache) SetMatch(matchID string, match *MatchDto) {
	if c == nil || match == nil || matchID == "" {
		return
	}
	exp := time.Now().Add(c.matchTTL)

	c.mu.Lock()
	c.matches[matchID] = cachedItem[*MatchDto]{value: match, expiresAt: exp}
	c.mu.Unlock()
}

// GetMatch returns a cached MatchDto for a matchID, if present and not expired.
func (c *Cache) GetMatch(matchID string) (*MatchDto, bool) {
	if c == nil || matchID == "" {
		return nil, false
	}

	c.mu.RLock()
	item, ok := c.matches[matchID]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}

	if time.Now().After(item.expiresAt) {
		// Expired - evict eagerly
		c.mu.Lock()
		delete(c.matches, matchID)
		c.mu.Unlock()
		return nil, false
	}

	return item.value, true
}

// SetLeagueEntries caches the league entries for a summonerID.
func (c *Cache) SetLeagueEntries(summonerID string, entries []LeagueEntry) {
	if c == nil || summonerID == "" || entries == nil {
		return
	}
	exp := time.Now().Add(c.leagueTTL)

	// Make a shallow copy to avoid accidental external mutation
	copied := make([]LeagueEntry, len(entries))
	copy(copied, entries)

	c.mu.Lock()
	c.leagues[summonerID] = cachedItem[[]LeagueEntry]{value: copied, expiresAt: exp}
	c.mu.Unlock()
}

// GetLeagueEntries returns cached league entries for a summonerID, if present
// and not expired.
func (c *Cache) GetLeagueEntries(summonerID string) ([]LeagueEntry, bool) {
	if c == nil || summonerID == "" {
		return nil, false
	}

	c.mu.RLock()
	item, ok := c.leagues[summonerID]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}

	if time.Now().After(item.expiresAt) {
		// Expired - evict eagerly
		c.mu.Lock()
		delete(c.leagues, summonerID)
		c.mu.Unlock()
		return nil, false
	}

	// Return a shallow copy to avoid external mutation of cached slice
	out := make([]LeagueEntry, len(item.value))
	copy(out, item.value)
	return out, true
}

// PurgeExpired removes expired entries from all caches.
// This can be called manually or via the janitor.
func (c *Cache) PurgeExpired() {
	if c == nil {
		return
	}
	now := time.Now()

	c.mu.Lock()
	for k, v := range c.matches {
		if now.After(v.expiresAt) {
			delete(c.matches, k)
		}
	}
	for k, v := range c.leagues {
		if now.After(v.expiresAt) {
			delete(c.leagues, k)
		}
	}
	c.mu.Unlock()
}

// StartJanitor starts a background goroutine that periodically purges expired
// entries. It returns a function that can be called to stop the janitor.
// If interval <= 0, a default of 5 minutes is used.
func (c *Cache) StartJanitor(interval time.Duration) func() {
	if c == nil {
		return func() {}
	}
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	c.mu.Lock()
	// If already running, stop the previous one
	if c.janitorStop != nil {
		close(c.janitorStop)
	}
	stop := make(chan struct{})
	c.janitorStop = stop
	c.mu.Unlock()

	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				c.PurgeExpired()
			case <-stop:
				return
			}
		}
	}()

	return func() {
		c.mu.Lock()
		if c.janitorStop != nil {
			close(c.janitorStop)
			c.janitorStop = nil
		}
		c.mu.Unlock()
	}
}

// Stats returns the current number of non-expired entries in the cache.
// This performs an eager purge before counting to ensure accuracy.
func (c *Cache) Stats() (matches int, leagues int) {
	if c == nil {
		return 0, 0
	}
	c.PurgeExpired()

	c.mu.RLock()
	matches = len(c.matches)
	leagues = len(c.leagues)
	c.mu.RUnlock()
	return
}
