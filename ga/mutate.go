package ga

import "math/rand"

// Mutator applies swap mutation to offspring.
type Mutator struct {
	workers int
	rngs    []*rand.Rand
	swaps   []int // per-worker counters
}

// NewMutator returns a mutator with one stream per worker derived from base.
func NewMutator(workers int, base *rand.Rand) *Mutator {
	workers = max(workers, 1)
	return &Mutator{
		workers: workers,
		rngs:    deriveStreams(base, workers),
		swaps:   make([]int, workers),
	}
}

// Mutate decides independently for every offspring, with probability
// ratePercent/100, to swap the cities at two distinct random positions.
// Rate 0 never touches an itinerary; rate 100 swaps exactly once per
// offspring. It returns the number of swaps performed.
//
// Complexity: O(len(offspring) / workers).
func (m *Mutator) Mutate(offspring []Tour, ratePercent int) int {
	clear(m.swaps)
	_ = forChunks(m.workers, len(offspring), func(w, lo, hi int) error {
		rng := m.rngs[w]
		for i := lo; i < hi; i++ {
			if rng.Intn(100) >= ratePercent {
				continue
			}
			if swapTwo(offspring[i].Itinerary, rng) {
				offspring[i].Fitness = Unevaluated
				m.swaps[w]++
			}
		}
		return nil
	})

	total := 0
	for _, s := range m.swaps {
		total += s
	}
	return total
}

// swapTwo exchanges two distinct random positions; false when len < 2.
func swapTwo[T any](p []T, rng *rand.Rand) bool {
	if len(p) < 2 {
		return false
	}
	i := rng.Intn(len(p))
	j := rng.Intn(len(p) - 1)
	if j >= i {
		j++
	}
	p[i], p[j] = p[j], p[i]
	return true
}
