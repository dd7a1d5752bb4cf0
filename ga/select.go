package ga

import (
	"fmt"
	"math/rand"
	"slices"
	"sync"
)

// Selector fills the parent pool by tournament selection.
//
// Each slot runs one tournament: up to size distinct contenders are drawn
// uniformly from the whole population, skipping individuals that already
// won a slot in this call; the lowest fitness wins. Wins are claimed under
// mu, so an index is never returned twice. A worker that loses a claim race
// reruns its tournament.
type Selector struct {
	size    int
	workers int
	rngs    []*rand.Rand
	drawn   [][]int // per-worker contender scratch

	mu      sync.RWMutex
	claimed []bool
	count   int
	winners []int
}

// NewSelector returns a selector with one random stream per worker,
// derived from base.
func NewSelector(tournamentSize, workers int, base *rand.Rand) *Selector {
	workers = max(workers, 1)
	s := &Selector{
		size:    max(tournamentSize, 1),
		workers: workers,
		rngs:    deriveStreams(base, workers),
		drawn:   make([][]int, workers),
	}
	for w := range s.drawn {
		s.drawn[w] = make([]int, 0, s.size)
	}
	return s
}

// Select copies one tournament winner into every slot of parents.
// population is only read. parents must be preallocated (see MakeTours)
// and len(parents) must not exceed len(population).
//
// Complexity: O(len(parents)·size) expected draws.
func (s *Selector) Select(population, parents []Tour) error {
	if len(parents) > len(population) {
		return fmt.Errorf("%w: %d parents from %d tours", ErrPoolSize, len(parents), len(population))
	}
	s.reset(len(population), len(parents))

	return forChunks(s.workers, len(parents), func(w, lo, hi int) error {
		rng := s.rngs[w]
		for i := lo; i < hi; i++ {
			idx := s.tournament(rng, population, w)
			s.winners[i] = idx
			parents[i].assign(population[idx])
		}
		return nil
	})
}

// Winners returns the population indices won in the last Select call,
// aligned with the parent slots. The slice is reused by the next call.
func (s *Selector) Winners() []int { return s.winners }

func (s *Selector) reset(population, slots int) {
	if cap(s.claimed) < population {
		s.claimed = make([]bool, population)
	}
	s.claimed = s.claimed[:population]
	clear(s.claimed)
	s.count = 0

	if cap(s.winners) < slots {
		s.winners = make([]int, slots)
	}
	s.winners = s.winners[:slots]
}

// tournament returns a freshly claimed winner index.
//
// At least one individual is unclaimed while a slot is pending, because
// slots <= population and every finished slot claims exactly one index.
// The contender count is therefore clamped to what is still unclaimed.
func (s *Selector) tournament(rng *rand.Rand, population []Tour, w int) int {
	n := len(population)
	for {
		drawn := s.drawn[w][:0]
		for len(drawn) < s.size && len(drawn) < s.remaining() {
			idx := rng.Intn(n)
			if s.isClaimed(idx) || slices.Contains(drawn, idx) {
				continue
			}
			drawn = append(drawn, idx)
		}
		s.drawn[w] = drawn

		winner := drawn[0]
		for _, idx := range drawn[1:] {
			if population[idx].Fitness < population[winner].Fitness {
				winner = idx
			}
		}
		if s.claim(winner) {
			return winner
		}
	}
}

func (s *Selector) isClaimed(idx int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.claimed[idx]
}

func (s *Selector) remaining() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.claimed) - s.count
}

// claim marks idx as won; false if another worker got there first.
func (s *Selector) claim(idx int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.claimed[idx] {
		return false
	}
	s.claimed[idx] = true
	s.count++
	return true
}
