package cache

import (
	"fmt"
	"sync"
	"time"

	"github.com/dgraph-io/ristretto"
	"github.com/shopspring/decimal"
)

// SummaryCache holds monthly spending totals keyed by user and period.
// Keys are tracked alongside ristretto so every summary can be dropped at
// once when a write changes what they add up to.
//
// Every ClearAll starts a new generation. A total computed under an older
// generation is never stored or served.
type SummaryCache struct {
	cache *ristretto.Cache
	ttl   time.Duration

	mu   sync.Mutex
	keys map[string]struct{}
	gen  uint64
}

type summaryEntry struct {
	total decimal.Decimal
	gen   uint64
}

// NewSummaryCache returns a cache whose entries expire after ttl. A zero
// ttl returns a cache that never stores anything.
func NewSummaryCache(ttl time.Duration) (*SummaryCache, error) {
	if ttl <= 0 {
		return &SummaryCache{}, nil
	}

	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 10000, // number of keys to track frequency of
		MaxCost:     10000,
		BufferItems: 64, // number of keys per Get buffer
		// Each summary costs 1, so MaxCost bounds the number of entries.
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cache: %w", err)
	}

	return &SummaryCache{
		cache: c,
		ttl:   ttl,
		keys:  make(map[string]struct{}),
	}, nil
}

func Key(userID int64, month string, year int) string {
	return fmt.Sprintf("summary:%d:%s:%d", userID, month, year)
}

// Generation must be read before the total passed to Set is computed.
func (s *SummaryCache) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen
}

func (s *SummaryCache) Get(userID int64, month string, year int) (decimal.Decimal, bool) {
	if s.cache == nil {
		return decimal.Zero, false
	}
	v, ok := s.cache.Get(Key(userID, month, year))
	if !ok {
		return decimal.Zero, false
	}
	entry, ok := v.(summaryEntry)
	if !ok || entry.gen != s.Generation() {
		return decimal.Zero, false
	}
	return entry.total, true
}

// Set stores total unless the cache was cleared since gen was read.
func (s *SummaryCache) Set(userID int64, month string, year int, total decimal.Decimal, gen uint64) {
	if s.cache == nil {
		return
	}
	key := Key(userID, month, year)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return
	}
	s.keys[key] = struct{}{}
	s.cache.SetWithTTL(key, summaryEntry{total: total, gen: gen}, 1, s.ttl)
}

// ClearAll drops every cached summary.
func (s *SummaryCache) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	if s.cache == nil {
		return
	}

	for key := range s.keys {
		s.cache.Del(key)
	}
	s.keys = make(map[string]struct{})
}

// Wait blocks until buffered writes are visible to Get.
func (s *SummaryCache) Wait() {
	if s.cache != nil {
		s.cache.Wait()
	}
}

func (s *SummaryCache) Close() {
	if s.cache != nil {
		s.cache.Close()
	}
}
