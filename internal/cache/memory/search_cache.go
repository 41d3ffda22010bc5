package memory

import (
	"container/list"
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/Gunvolt24/cafe_order/internal/domain"
	"github.com/Gunvolt24/cafe_order/internal/ports"
	"github.com/Gunvolt24/cafe_order/pkg/metrics"
)

var _ ports.CatalogSearchCache = (*SearchCache)(nil)

type entry struct {
	query     string
	items     []domain.CatalogItem
	expiresAt time.Time
}

// SearchCache — LRU с TTL для результатов поиска по каталогу (запрос → позиции).
// Ключ — запрос в нижнем регистре без пробелов по краям.
type SearchCache struct {
	capacity int
	ttl      time.Duration

	ll    *list.List
	index map[string]*list.Element

	mu sync.Mutex
}

func NewSearchCache(capacity int, ttl time.Duration) *SearchCache {
	if capacity <= 0 {
		capacity = 1
	}
	return &SearchCache{
		capacity: capacity,
		ttl:      ttl,
		ll:       list.New(),
		index:    make(map[string]*list.Element),
	}
}

func (c *SearchCache) Get(_ context.Context, query string) ([]domain.CatalogItem, bool) {
	key := normalize(query)
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.index[key]
	if !ok {
		metrics.CatalogCacheOps.WithLabelValues("miss").Inc()
		return nil, false
	}
	ent := elem.Value.(*entry)
	if c.isExpired(ent, now) {
		metrics.CatalogCacheOps.WithLabelValues("expired").Inc()
		c.removeElement(elem)
		metrics.CatalogCacheSize.Set(float64(len(c.index)))
		return nil, false
	}
	c.ll.MoveToFront(elem)

	metrics.CatalogCacheOps.WithLabelValues("hit").Inc()
	return slices.Clone(ent.items), true
}

func (c *SearchCache) Set(_ context.Context, query string, items []domain.CatalogItem) {
	key := normalize(query)
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.index[key]; ok {
		ent := elem.Value.(*entry)
		ent.items = slices.Clone(items)
		ent.expiresAt = c.expiryFrom(now)
		c.ll.MoveToFront(elem)
		return
	}

	c.pruneExpiredFromBack(now)

	c.index[key] = c.ll.PushFront(&entry{
		query:     key,
		items:     slices.Clone(items),
		expiresAt: c.expiryFrom(now),
	})
	if c.ll.Len() > c.capacity {
		c.evictLRU()
	}
	metrics.CatalogCacheSize.Set(float64(len(c.index)))
}

// Purge — сброс всех результатов: каталог изменился.
func (c *SearchCache) Purge(_ context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.ll.Init()
	clear(c.index)
	metrics.CatalogCacheOps.WithLabelValues("purge").Inc()
	metrics.CatalogCacheSize.Set(0)
}

// Len — число закэшированных запросов.
func (c *SearchCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}

// ------вспомогательные функции------

func normalize(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

func (c *SearchCache) evictLRU() {
	if back := c.ll.Back(); back != nil {
		c.removeElement(back)
		metrics.CatalogCacheOps.WithLabelValues("evicted").Inc()
	}
}

func (c *SearchCache) removeElement(elem *list.Element) {
	ent := elem.Value.(*entry)
	delete(c.index, ent.query)
	c.ll.Remove(elem)
}

func (c *SearchCache) isExpired(ent *entry, now time.Time) bool {
	if c.ttl <= 0 {
		return false
	}
	return now.After(ent.expiresAt)
}

func (c *SearchCache) expiryFrom(now time.Time) time.Time {
	if c.ttl <= 0 {
		return time.Time{}
	}
	return now.Add(c.ttl)
}

// pruneExpiredFromBack — удаляет записи с истекшим TTL из хвоста до первой актуальной.
func (c *SearchCache) pruneExpiredFromBack(now time.Time) {
	if c.ttl <= 0 {
		return
	}
	for {
		back := c.ll.Back()
		if back == nil {
			return
		}
		if !now.After(back.Value.(*entry).expiresAt) {
			return
		}
		c.removeElement(back)
		metrics.CatalogCacheOps.WithLabelValues("expired").Inc()
	}
}
