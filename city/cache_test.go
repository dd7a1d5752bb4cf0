package city_test

import (
	"math"
	"sync"
	"testing"

	"github.com/katalvlaran/gatsp/city"
	"github.com/stretchr/testify/require"
)

// TestDistance checks the pure euclidean kernel on a 3-4-5 triangle.
func TestDistance(t *testing.T) {
	require.Equal(t, 5.0, city.Distance(city.Point{X: 1, Y: 2}, city.Point{X: 4, Y: 6}))
	require.Equal(t, 0.0, city.Distance(city.Point{X: 3, Y: 3}, city.Point{X: 3, Y: 3}))
}

// TestDistanceCache_Symmetric verifies Between(p1,p2) == Between(p2,p1) and
// that a pair is stored once regardless of the probing order.
func TestDistanceCache_Symmetric(t *testing.T) {
	c := city.NewDistanceCache()
	p1 := city.Point{X: 1, Y: 2}
	p2 := city.Point{X: 4, Y: 4}

	d1 := c.Between(p1, p2)
	d2 := c.Between(p2, p1)
	require.Equal(t, d1, d2)
	require.Equal(t, math.Sqrt(13), d1)
	require.Equal(t, 1, c.Len())

	// Repeated calls are stable.
	for i := 0; i < 10; i++ {
		require.Equal(t, d1, c.Between(p1, p2))
	}
	require.Equal(t, 1, c.Len())
}

// TestNewDistanceCacheFor checks that warming stores every unordered pair.
func TestNewDistanceCacheFor(t *testing.T) {
	pts := []city.Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {5, 5}}
	c := city.NewDistanceCacheFor(pts)
	require.Equal(t, len(pts)*(len(pts)-1)/2, c.Len())

	for i := range pts {
		for j := range pts {
			if i == j {
				continue
			}
			require.Equal(t, city.Distance(pts[i], pts[j]), c.Between(pts[i], pts[j]))
		}
	}
	// No lookup above was a miss.
	require.Equal(t, len(pts)*(len(pts)-1)/2, c.Len())
}

// TestDistanceCache_ConcurrentFirstWriters hammers one cold cache from many
// goroutines. Every caller must observe the same value per pair and the
// map must end up with exactly one entry per unordered pair.
func TestDistanceCache_ConcurrentFirstWriters(t *testing.T) {
	c := city.NewDistanceCache()
	pts := make([]city.Point, 12)
	for i := range pts {
		pts[i] = city.Point{X: i * 7 % 13, Y: i * 5 % 11}
	}

	const workers = 32
	results := make([][]float64, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			out := make([]float64, 0, len(pts)*len(pts))
			for i := range pts {
				for j := range pts {
					// Alternate orderings between workers.
					if id%2 == 0 {
						out = append(out, c.Between(pts[i], pts[j]))
					} else {
						out = append(out, c.Between(pts[j], pts[i]))
					}
				}
			}
			results[id] = out
		}(w)
	}
	wg.Wait()

	for w := 1; w < workers; w++ {
		require.Equal(t, results[0], results[w])
	}
	// n unordered pairs + n self pairs (distance 0) of distinct points.
	require.Equal(t, len(pts)*(len(pts)-1)/2+len(pts), c.Len())
}
