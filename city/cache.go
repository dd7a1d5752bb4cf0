package city

import "sync"

// DistanceCache memoizes Distance for unordered pairs of points.
//
// Storage is a nested map keyed by coordinates, not by City, so any table
// sharing coordinates shares entries. Each unordered pair is stored once,
// under whichever ordering its first writer used; lookups probe both.
//
// Concurrency: readers share mu.RLock. A miss computes the distance outside
// the lock and inserts under mu.Lock after re-probing both orderings, so
// racing first writers may compute twice but every caller observes the
// value that was stored first.
//
// There is no eviction: the key space is bounded by N²/2 for a fixed table.
type DistanceCache struct {
	mu    sync.RWMutex
	table map[Point]map[Point]float64
	pairs int
}

// NewDistanceCache returns an empty cache that fills lazily.
func NewDistanceCache() *DistanceCache {
	return &DistanceCache{table: make(map[Point]map[Point]float64)}
}

// NewDistanceCacheFor returns a cache warmed with every unordered pair of
// points, so the hot path never takes the write lock.
//
// Complexity: O(n²) time and space.
func NewDistanceCacheFor(points []Point) *DistanceCache {
	c := NewDistanceCache()

	var i, j int
	for i = 0; i < len(points); i++ {
		for j = i + 1; j < len(points); j++ {
			c.store(points[i], points[j], Distance(points[i], points[j]))
		}
	}
	return c
}

// Between returns the distance between p1 and p2, identical on every call
// for the same unordered pair.
//
// Complexity: O(1) expected.
func (c *DistanceCache) Between(p1, p2 Point) float64 {
	c.mu.RLock()
	d, ok := c.lookup(p1, p2)
	c.mu.RUnlock()
	if ok {
		return d
	}

	// Pure computation stays outside the critical section.
	d = Distance(p1, p2)

	c.mu.Lock()
	defer c.mu.Unlock()
	if prev, ok := c.lookup(p1, p2); ok {
		return prev
	}
	c.store(p1, p2, d)
	return d
}

// Len returns the number of unordered pairs stored.
func (c *DistanceCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.pairs
}

// lookup probes (p1,p2) then (p2,p1). Caller holds mu (read or write).
func (c *DistanceCache) lookup(p1, p2 Point) (float64, bool) {
	if row, ok := c.table[p1]; ok {
		if d, ok := row[p2]; ok {
			return d, true
		}
	}
	if row, ok := c.table[p2]; ok {
		if d, ok := row[p1]; ok {
			return d, true
		}
	}
	return 0, false
}

// store inserts (p1,p2) -> d unless either ordering exists.
// Caller holds mu for writing, or owns c exclusively.
func (c *DistanceCache) store(p1, p2 Point, d float64) {
	if _, ok := c.lookup(p1, p2); ok {
		return
	}
	row, ok := c.table[p1]
	if !ok {
		row = make(map[Point]float64)
		c.table[p1] = row
	}
	row[p2] = d
	c.pairs++
}
