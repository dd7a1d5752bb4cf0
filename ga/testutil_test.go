// Package ga_test holds black-box tests for the ga package. Helpers in this
// file build small deterministic instances shared by the focused test files.
package ga_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gatsp/city"
	"github.com/katalvlaran/gatsp/ga"
	"github.com/stretchr/testify/require"
)

const (
	// seedDet is the fixed seed for every RNG-driven test.
	seedDet = int64(42)

	// unitSquareBest is the open path through the unit square in perimeter
	// order starting at the origin corner.
	unitSquareBest = 3.0
)

// squareTable is A(0,0) B(1,0) C(1,1) D(0,1).
func squareTable(t testing.TB) *city.Table {
	t.Helper()
	tbl, err := city.NewTable(city.MustAlphabet("ABCD"), []city.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}})
	require.NoError(t, err)
	return tbl
}

// lineTable is A(0,0) B(1,0) C(5,0) D(2,0): distances along one axis make
// greedy choices easy to predict.
func lineTable(t testing.TB) *city.Table {
	t.Helper()
	tbl, err := city.NewTable(city.MustAlphabet("ABCD"), []city.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 5, Y: 0}, {X: 2, Y: 0}})
	require.NoError(t, err)
	return tbl
}

// standardTable scatters the 36 standard cities on a 100x100 grid.
func standardTable(t testing.TB, rng *rand.Rand) *city.Table {
	t.Helper()
	pts := make([]city.Point, city.Standard.Size())
	for i := range pts {
		pts[i] = city.Point{X: rng.Intn(100), Y: rng.Intn(100)}
	}
	tbl, err := city.NewTable(city.Standard, pts)
	require.NoError(t, err)
	return tbl
}

// allPerms returns every permutation of 0..n-1 in lexicographic order.
func allPerms(n int) [][]city.City {
	var (
		out  [][]city.City
		cur  = make([]city.City, 0, n)
		used = make([]bool, n)
		rec  func()
	)
	rec = func() {
		if len(cur) == n {
			out = append(out, append([]city.City(nil), cur...))
			return
		}
		for c := 0; c < n; c++ {
			if used[c] {
				continue
			}
			used[c] = true
			cur = append(cur, city.City(c))
			rec()
			cur = cur[:len(cur)-1]
			used[c] = false
		}
	}
	rec()
	return out
}

// randomSeeds returns count random permutations of n cities.
func randomSeeds(rng *rand.Rand, n, count int) [][]city.City {
	out := make([][]city.City, count)
	for i := range out {
		perm := rng.Perm(n)
		out[i] = make([]city.City, n)
		for j, v := range perm {
			out[i][j] = city.City(v)
		}
	}
	return out
}

// toursOf wraps itineraries into unevaluated tours.
func toursOf(seeds [][]city.City) []ga.Tour {
	out := make([]ga.Tour, len(seeds))
	for i, s := range seeds {
		out[i] = ga.NewTour(s)
	}
	return out
}

// requirePermutations asserts the permutation invariant on every tour.
func requirePermutations(t testing.TB, tours []ga.Tour, n int) {
	t.Helper()
	for i, tr := range tours {
		require.NoError(t, city.ValidatePermutation(tr.Itinerary, n), "tour %d", i)
	}
}

// smallOptions is a tiny configuration suitable for unit tests.
func smallOptions(population, pool int, opts ...ga.Option) ga.Options {
	base := []ga.Option{
		ga.WithPopulation(population, pool),
		ga.WithTournamentSize(3),
		ga.WithSeed(seedDet),
	}
	return ga.NewOptions(append(base, opts...)...)
}
