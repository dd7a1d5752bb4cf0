package dataset

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"

	"github.com/katalvlaran/gatsp/city"
)

// ReadChromosomes parses up to limit whitespace-separated itinerary strings
// (limit <= 0 reads everything). Each must be a permutation of a.
//
// Errors: ErrNoChromosomes for an empty source; city sentinels wrapped with
// the 1-based chromosome number.
//
// Complexity: O(count·N).
func ReadChromosomes(r io.Reader, a *city.Alphabet, limit int) ([][]city.City, error) {
	var (
		out [][]city.City
		sc  = bufio.NewScanner(r)
	)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		if limit > 0 && len(out) == limit {
			break
		}
		it, err := a.Parse(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("chromosome %d: %w", len(out)+1, err)
		}
		out = append(out, it)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("dataset: read chromosomes: %w", err)
	}
	if len(out) == 0 {
		return nil, ErrNoChromosomes
	}
	return out, nil
}

// RandomChromosomes returns count uniformly random permutations of n cities.
func RandomChromosomes(n, count int, rng *rand.Rand) [][]city.City {
	out := make([][]city.City, count)
	for i := range out {
		it := city.Identity(n)
		rng.Shuffle(n, func(a, b int) { it[a], it[b] = it[b], it[a] })
		out[i] = it
	}
	return out
}
