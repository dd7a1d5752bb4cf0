package ga

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gatsp/city"
)

// Unevaluated is the fitness of a tour that has not been measured yet.
// It orders after every real fitness.
const Unevaluated = math.MaxFloat64

// Tour is one chromosome: a full permutation of the cities plus its fitness.
// Tours compare by fitness only; lower is better.
type Tour struct {
	Itinerary []city.City
	Fitness   float64
}

// NewTour copies itinerary into an unevaluated Tour.
func NewTour(itinerary []city.City) Tour {
	it := make([]city.City, len(itinerary))
	copy(it, itinerary)
	return Tour{Itinerary: it, Fitness: Unevaluated}
}

// Evaluated reports whether Fitness holds a measured length.
func (t Tour) Evaluated() bool { return t.Fitness != Unevaluated }

// Less orders tours by fitness.
func (t Tour) Less(o Tour) bool { return t.Fitness < o.Fitness }

// Clone returns a deep copy.
func (t Tour) Clone() Tour {
	c := NewTour(t.Itinerary)
	c.Fitness = t.Fitness
	return c
}

// assign copies src into t without reallocating t.Itinerary.
// Both itineraries must have the same length.
func (t *Tour) assign(src Tour) {
	copy(t.Itinerary, src.Itinerary)
	t.Fitness = src.Fitness
}

// MakeTours allocates count unevaluated tours of n cities over one backing
// array.
func MakeTours(count, n int) []Tour {
	backing := make([]city.City, count*n)
	out := make([]Tour, count)
	for i := range out {
		out[i] = Tour{Itinerary: backing[i*n : (i+1)*n : (i+1)*n], Fitness: Unevaluated}
	}
	return out
}

// Population is the fixed-size set of tours evolved by an Engine.
//
// It is a double buffer: Replace writes survivors and offspring into the
// idle buffer and then swaps, so no tour is read and written in the same
// parallel step. Buffers are allocated once.
type Population struct {
	cur     []Tour
	next    []Tour
	workers int
}

// NewPopulation validates seeds as permutations of n cities and copies
// them into a fresh double buffer.
//
// Errors: ErrPopulationSize for fewer than 2 seeds; city.ErrLengthMismatch,
// city.ErrOutOfRange or city.ErrNotPermutation (wrapped with the seed
// index) for malformed seeds.
//
// Complexity: O(len(seeds)·n).
func NewPopulation(seeds [][]city.City, n, workers int) (*Population, error) {
	if len(seeds) < 2 {
		return nil, fmt.Errorf("%w: %d seeds", ErrPopulationSize, len(seeds))
	}
	p := &Population{
		cur:     MakeTours(len(seeds), n),
		next:    MakeTours(len(seeds), n),
		workers: max(workers, 1),
	}
	for i, s := range seeds {
		if err := city.ValidatePermutation(s, n); err != nil {
			return nil, fmt.Errorf("seed %d: %w", i, err)
		}
		copy(p.cur[i].Itinerary, s)
	}
	return p, nil
}

// Tours returns the current generation. The slice is owned by the
// Population and is reordered by Evaluator.Evaluate.
func (p *Population) Tours() []Tour { return p.cur }

// Len returns the population size.
func (p *Population) Len() int { return len(p.cur) }

// Replace forms the next generation: the first Len()-len(offspring) tours of
// the current (sorted) generation survive, offspring fill the worst slots.
// Survivors keep their fitness; offspring are unevaluated.
//
// Complexity: O(Len()·n) copying, split across workers.
func (p *Population) Replace(offspring []Tour) error {
	if len(offspring) > len(p.cur) {
		return fmt.Errorf("%w: %d offspring for population %d", ErrPoolSize, len(offspring), len(p.cur))
	}
	survivors := len(p.cur) - len(offspring)

	_ = forChunks(p.workers, len(p.cur), func(_, lo, hi int) error {
		for i := lo; i < hi; i++ {
			if i < survivors {
				p.next[i].assign(p.cur[i])
				continue
			}
			p.next[i].assign(offspring[i-survivors])
			p.next[i].Fitness = Unevaluated
		}
		return nil
	})

	p.cur, p.next = p.next, p.cur
	return nil
}
