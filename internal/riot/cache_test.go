package riot

import (
	"testing"
	"time"
)

func TestCache_MatchRoundTrip(t *testing.T) {
	cache := NewDefaultCache()

	if _, ok := cache.GetMatch("EUW1_1"); ok {
		t.Error("Expected miss on empty cache")
	}

	match := &MatchDto{Metadata: MetadataDto{MatchID: "EUW1_1"}}
	cache.SetMatch("EUW1_1", match)

	got, ok := cache.GetMatch("EUW1_1")
	if !ok {
		t.Fatal("Expected hit after set")
	}
	if got.Metadata.MatchID != "EUW1_1" {
		t.Errorf("Expected EUW1_1, got %s", got.Metadata.MatchID)
	}
}

func TestCache_Expiry(t *testing.T) {
	cache := NewCache(time.Millisecond, time.Millisecond)

	cache.SetMatch("EUW1_1", &MatchDto{Metadata: MetadataDto{MatchID: "EUW1_1"}})
	cache.SetLeagueEntries("summoner-1", []LeagueEntry{{QueueType: QueueTypeSolo}})

	time.Sleep(5 * time.Millisecond)

	if _, ok := cache.GetMatch("EUW1_1"); ok {
		t.Error("Expected expired match to miss")
	}
	if _, ok := cache.GetLeagueEntries("summoner-1"); ok {
		t.Error("Expected expired league entries to miss")
	}

	matches, leagues := cache.Stats()
	if matches != 0 || leagues != 0 {
		t.Errorf("Expected empty cache after expiry, got %d/%d", matches, leagues)
	}
}

func TestCache_LeagueEntriesCopied(t *testing.T) {
	cache := NewDefaultCache()
	entries := []LeagueEntry{{QueueType: QueueTypeSolo, Tier: "GOLD"}}
	cache.SetLeagueEntries("summoner-1", entries)

	entries[0].Tier = "MUTATED"

	got, ok := cache.GetLeagueEntries("summoner-1")
	if !ok {
		t.Fatal("Expected hit")
	}
	if got[0].Tier != "GOLD" {
		t.Errorf("Cached value should not alias the caller's slice, got tier %s", got[0].Tier)
	}
}

func TestCache_NilAndEmptyKeysAreNoOps(t *testing.T) {
	cache := NewDefaultCache()

	cache.SetMatch("", &MatchDto{})
	cache.SetMatch("EUW1_1", nil)
	cache.SetLeagueEntries("", []LeagueEntry{})

	matches, leagues := cache.Stats()
	if matches != 0 || leagues != 0 {
		t.Errorf("Expected nothing cached, got %d/%d", matches, leagues)
	}

	var nilCache *Cache
	if _, ok := nilCache.GetMatch("EUW1_1"); ok {
		t.Error("Nil cache should always miss")
	}
	nilCache.PurgeExpired() // must not panic
}

func TestCache_JanitorPurges(t *testing.T) {
	cache := NewCache(time.Millisecond, time.Millisecond)
	stop := cache.StartJanitor(5 * time.Millisecond)
	defer stop()

	cache.SetMatch("EUW1_1", &MatchDto{Metadata: MetadataDto{MatchID: "EUW1_1"}})

	time.Sleep(30 * time.Millisecond)

	cache.mu.RLock()
	_, present := cache.matches["EUW1_1"]
	cache.mu.RUnlock()
	if present {
		t.Error("Expected janitor to evict the expired entry")
	}
}
