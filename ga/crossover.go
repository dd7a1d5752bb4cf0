package ga

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/gatsp/city"
)

// Recombiner produces two offspring per parent pair.
//
// Offspring A starts at Parent 1's first city. At every later position j it
// looks at both parents' cities at j:
//
//   - both already placed    → random repair: a uniformly random unplaced city;
//   - exactly one placed     → the other one, even if it is farther;
//   - neither placed         → the one closer to A's previous city
//     (strictly closer wins, Parent 1 on ties).
//
// Offspring B is the index complement of A (k → N-1-k under the alphabet),
// not a product of Parent 2.
//
// Pairs are independent and processed in parallel. Each worker owns one
// visited buffer, reused across its pairs.
type Recombiner struct {
	table   *city.Table
	cache   *city.DistanceCache
	workers int
	shuffle *rand.Rand
	rngs    []*rand.Rand
	visited [][]bool
}

// NewRecombiner returns a recombiner over table. A nil cache is replaced by
// a warmed one. Random streams are derived from base.
func NewRecombiner(table *city.Table, cache *city.DistanceCache, workers int, base *rand.Rand) *Recombiner {
	if cache == nil {
		cache = city.NewDistanceCacheFor(table.Points())
	}
	workers = max(workers, 1)
	r := &Recombiner{
		table:   table,
		cache:   cache,
		workers: workers,
		shuffle: deriveRNG(base, uint64(workers)),
		rngs:    deriveStreams(base, workers),
		visited: make([][]bool, workers),
	}
	for w := range r.visited {
		r.visited[w] = make([]bool, table.Size())
	}
	return r
}

// Crossover shuffles parents in place, then breeds pairs (i, i+1) into
// offspring[i] (A) and offspring[i+1] (B). Offspring must be preallocated
// with len(offspring) == len(parents), an even number.
//
// Errors: ErrPoolSize on shape mismatch; ErrNoUnvisitedCity (wrapped with
// the partial tour) on a broken permutation invariant.
//
// Complexity: O(P·n / workers).
func (r *Recombiner) Crossover(parents, offspring []Tour) error {
	if len(parents)%2 != 0 || len(offspring) != len(parents) {
		return fmt.Errorf("%w: %d parents, %d offspring", ErrPoolSize, len(parents), len(offspring))
	}

	// Selection fills slots in tournament order; pairing adjacent slots
	// must not inherit that order.
	r.shuffle.Shuffle(len(parents), func(i, j int) {
		parents[i], parents[j] = parents[j], parents[i]
	})

	return forChunks(r.workers, len(parents)/2, func(w, lo, hi int) error {
		for k := lo; k < hi; k++ {
			i := 2 * k
			err := r.breed(
				parents[i].Itinerary, parents[i+1].Itinerary,
				offspring[i].Itinerary, offspring[i+1].Itinerary,
				r.visited[w], r.rngs[w],
			)
			if err != nil {
				return fmt.Errorf("pair %d: %w", k, err)
			}
			offspring[i].Fitness = Unevaluated
			offspring[i+1].Fitness = Unevaluated
		}
		return nil
	})
}

// Breed runs the pair primitive on caller-owned buffers: p1 and p2 must be
// permutations of the table's cities, a and b receive the offspring.
// It uses worker 0's scratch and stream, so it must not run concurrently
// with Crossover or another Breed on the same Recombiner.
//
// Errors: city.ErrLengthMismatch, city.ErrOutOfRange,
// city.ErrNotPermutation for invalid parents.
func (r *Recombiner) Breed(p1, p2, a, b []city.City) error {
	n := r.table.Size()
	if err := city.ValidatePermutation(p1, n); err != nil {
		return fmt.Errorf("parent 1: %w", err)
	}
	if err := city.ValidatePermutation(p2, n); err != nil {
		return fmt.Errorf("parent 2: %w", err)
	}
	if len(a) != n || len(b) != n {
		return fmt.Errorf("%w: offspring buffers %d/%d, want %d", city.ErrLengthMismatch, len(a), len(b), n)
	}
	return r.breed(p1, p2, a, b, r.visited[0], r.rngs[0])
}

// breed is the hot-path pair merge; inputs are trusted.
func (r *Recombiner) breed(p1, p2, a, b []city.City, visited []bool, rng *rand.Rand) error {
	clear(visited)

	a[0] = p1[0]
	visited[a[0]] = true

	var (
		j      int
		c1, c2 city.City
		next   city.City
		prev   city.Point
		ok     bool
	)
	for j = 1; j < len(a); j++ {
		c1, c2 = p1[j], p2[j]

		switch {
		case visited[c1] && visited[c2]:
			if next, ok = randomUnvisited(visited, rng); !ok {
				return fmt.Errorf("%w: position %d, partial offspring %s",
					ErrNoUnvisitedCity, j, r.table.Alphabet().Format(a[:j]))
			}
		case visited[c1]:
			next = c2
		case visited[c2]:
			next = c1
		default:
			prev = r.table.Point(a[j-1])
			next = c1
			if r.cache.Between(prev, r.table.Point(c2)) < r.cache.Between(prev, r.table.Point(c1)) {
				next = c2
			}
		}

		a[j] = next
		visited[next] = true
	}

	alphabet := r.table.Alphabet()
	for j = range a {
		b[j] = alphabet.Complement(a[j])
	}
	return nil
}

// randomUnvisited picks a uniformly random index with visited[i]==false.
// ok is false when every city is visited.
//
// Complexity: O(n).
func randomUnvisited(visited []bool, rng *rand.Rand) (city.City, bool) {
	free := 0
	for _, v := range visited {
		if !v {
			free++
		}
	}
	if free == 0 {
		return 0, false
	}

	k := rng.Intn(free)
	for i, v := range visited {
		if v {
			continue
		}
		if k == 0 {
			return city.City(i), true
		}
		k--
	}
	return 0, false
}
