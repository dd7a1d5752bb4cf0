package ga

import (
	"cmp"
	"math"
	"slices"

	"github.com/katalvlaran/gatsp/city"
)

// roundScale stabilizes fitness to 1e-9 so sums do not drift across
// platforms or optimization levels.
const roundScale = 1e9

// Evaluator measures tours against a coordinate table.
// It is safe for concurrent use; its only shared state is the cache.
type Evaluator struct {
	table      *city.Table
	cache      *city.DistanceCache
	origin     city.Point
	fromOrigin bool
	workers    int
}

// NewEvaluator binds a table and cache. A nil cache is replaced by one
// warmed with every pair of the table.
func NewEvaluator(table *city.Table, cache *city.DistanceCache, opts Options) *Evaluator {
	if cache == nil {
		cache = city.NewDistanceCacheFor(table.Points())
	}
	return &Evaluator{
		table:      table,
		cache:      cache,
		origin:     opts.Origin,
		fromOrigin: opts.FromOrigin,
		workers:    max(opts.Workers, 1),
	}
}

// Fitness returns the open-path length of itinerary: the optional leg from
// the origin to the first city, then every consecutive leg. There is no
// closing leg back to the start.
//
// Complexity: O(n).
func (e *Evaluator) Fitness(itinerary []city.City) float64 {
	if len(itinerary) == 0 {
		return 0
	}

	var (
		sum  float64
		prev = e.table.Point(itinerary[0])
		cur  city.Point
		j    int
	)
	if e.fromOrigin {
		sum = e.cache.Between(e.origin, prev)
	}
	for j = 1; j < len(itinerary); j++ {
		cur = e.table.Point(itinerary[j])
		sum += e.cache.Between(prev, cur)
		prev = cur
	}
	return math.Round(sum*roundScale) / roundScale
}

// Evaluate writes Fitness into every tour in parallel and then sorts tours
// ascending by fitness. The sort is stable, so equal tours keep their
// relative order. Afterwards tours[0] is the best of the slice.
//
// Complexity: O(P·n / workers + P log P).
func (e *Evaluator) Evaluate(tours []Tour) {
	_ = forChunks(e.workers, len(tours), func(_, lo, hi int) error {
		for i := lo; i < hi; i++ {
			tours[i].Fitness = e.Fitness(tours[i].Itinerary)
		}
		return nil
	})
	slices.SortStableFunc(tours, func(a, b Tour) int {
		return cmp.Compare(a.Fitness, b.Fitness)
	})
}

// Cache exposes the distance cache shared with the recombiner.
func (e *Evaluator) Cache() *city.DistanceCache { return e.cache }
