package feeds

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// DefaultHomeFeedTTL is how long a home feed page snapshot is served
// before it is recomputed.
const DefaultHomeFeedTTL = 20 * time.Second

// HomeFeedCache serves the shared All-scope home feed from page
// snapshots with a fixed TTL. Writes that land after a snapshot is
// populated are not visible until the TTL lapses or Clear is called;
// the home feed is read-heavy and trades freshness for cheap reads.
// Personalized and scoped feeds bypass this cache entirely.
type HomeFeedCache struct {
	mu        sync.RWMutex
	pages     map[int]cachedPage // page number -> snapshot
	assembler *Assembler
	ttl       time.Duration
	logger    *slog.Logger
	now       func() time.Time
}

type cachedPage struct {
	page      Page
	expiresAt time.Time
}

// NewHomeFeedCache creates a home feed cache in front of the assembler.
// A ttl of 0 or less falls back to DefaultHomeFeedTTL.
func NewHomeFeedCache(assembler *Assembler, ttl time.Duration, logger *slog.Logger) *HomeFeedCache {
	if ttl <= 0 {
		ttl = DefaultHomeFeedTTL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &HomeFeedCache{
		pages:     make(map[int]cachedPage),
		assembler: assembler,
		ttl:       ttl,
		logger:    logger,
		now:       time.Now,
	}
}

// Page returns the requested home feed page, serving the cached snapshot
// while it is within its TTL and recomputing it otherwise. Concurrent
// populations of the same page are not ordered against each other; the
// last one wins for the new TTL window.
func (c *HomeFeedCache) Page(ctx context.Context, pageNumber int) (Page, error) {
	c.mu.RLock()
	entry, ok := c.pages[pageNumber]
	c.mu.RUnlock()

	if ok && c.now().Before(entry.expiresAt) {
		return entry.page, nil
	}

	// Recompute outside the lock so slow queries don't serialize readers
	page, err := c.assembler.Assemble(ctx, ScopeAll(), pageNumber)
	if err != nil {
		return Page{}, err
	}

	expiresAt := c.now().Add(c.ttl)
	c.mu.Lock()
	c.pages[pageNumber] = cachedPage{page: page, expiresAt: expiresAt}
	c.mu.Unlock()

	c.logger.Debug("home feed page cached",
		"page", pageNumber,
		"items", len(page.Items),
		"expires_at", expiresAt)

	return page, nil
}

// Clear drops every cached snapshot. Normal mutation paths never call
// this; it exists for operational invalidation.
func (c *HomeFeedCache) Clear() {
	c.mu.Lock()
	dropped := len(c.pages)
	c.pages = make(map[int]cachedPage)
	c.mu.Unlock()

	c.logger.Info("home feed cache cleared", "pages_dropped", dropped)
}
