package city

import "fmt"

// ValidatePermutation checks that itinerary holds every City in [0..n-1]
// exactly once.
//
// Errors: ErrLengthMismatch, ErrOutOfRange, ErrNotPermutation.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(itinerary []City, n int) error {
	if len(itinerary) != n || n <= 0 {
		return fmt.Errorf("%w: got %d cities, want %d", ErrLengthMismatch, len(itinerary), n)
	}
	seen := make([]bool, n)

	var (
		i int
		c City
	)
	for i = 0; i < n; i++ {
		c = itinerary[i]
		if c < 0 || int(c) >= n {
			return fmt.Errorf("%w: position %d holds %d", ErrOutOfRange, i, c)
		}
		if seen[c] {
			return fmt.Errorf("%w: city %d repeated at position %d", ErrNotPermutation, c, i)
		}
		seen[c] = true
	}
	return nil
}

// Identity returns the itinerary 0, 1, ..., n-1.
func Identity(n int) []City {
	out := make([]City, n)
	for i := range out {
		out[i] = City(i)
	}
	return out
}
