package ga

import (
	"math"
	"slices"

	"github.com/katalvlaran/gatsp/city"
)

// polishEps is the smallest gain a 2-opt move must bring to be accepted.
const polishEps = 1e-9

// TwoOpt improves itinerary in place with deterministic first-improvement
// 2-opt on the open path (including the origin leg when enabled) and
// returns the number of accepted moves.
//
// A move reverses the segment [i..k]. With a = the point before position i
// (the origin, or nothing for i == 0 without an origin) and d = the point
// after position k (nothing for the last city):
//
//	Δ = d(a,c) + d(b,d) − d(a,b) − d(c,d),  b = itinerary[i], c = itinerary[k]
//
// Missing endpoints contribute 0, so the open end can be re-anchored.
// Moves with Δ < −1e-9 are applied and the scan restarts. maxMoves > 0
// stops after that many moves.
//
// Complexity: O(n²) per scan, O(n) per accepted move, no allocation.
func (e *Evaluator) TwoOpt(itinerary []city.City, maxMoves int) int {
	n := len(itinerary)
	if n < 2 {
		return 0
	}

	var (
		accepted int
		i, k     int
		a, b     city.Point
		c, d     city.Point
		hasA     bool
		delta    float64
	)
	for {
		improved := false
		for i = 0; i < n-1 && !improved; i++ {
			hasA = i > 0 || e.fromOrigin
			switch {
			case i > 0:
				a = e.table.Point(itinerary[i-1])
			case e.fromOrigin:
				a = e.origin
			}
			b = e.table.Point(itinerary[i])

			for k = i + 1; k < n; k++ {
				c = e.table.Point(itinerary[k])
				delta = 0
				if hasA {
					delta += e.cache.Between(a, c) - e.cache.Between(a, b)
				}
				if k < n-1 {
					d = e.table.Point(itinerary[k+1])
					delta += e.cache.Between(b, d) - e.cache.Between(c, d)
				}
				if math.IsNaN(delta) || delta >= -polishEps {
					continue
				}

				slices.Reverse(itinerary[i : k+1])
				accepted++
				improved = true
				if maxMoves > 0 && accepted >= maxMoves {
					return accepted
				}
				break
			}
		}
		if !improved {
			return accepted
		}
	}
}
