package city

import "errors"

// Sentinel errors for alphabet, table and permutation handling.
// Callers match them with errors.Is; context is added with %w at the
// boundary that knows it (line numbers, offending strings).
var (
	// ErrEmptyAlphabet is returned when an alphabet has no symbols.
	ErrEmptyAlphabet = errors.New("city: alphabet is empty")

	// ErrDuplicateSymbol is returned when an alphabet lists a symbol twice.
	ErrDuplicateSymbol = errors.New("city: duplicate alphabet symbol")

	// ErrUnknownSymbol is returned for a symbol outside the alphabet.
	ErrUnknownSymbol = errors.New("city: symbol not in alphabet")

	// ErrOutOfRange is returned for a City index outside [0..N-1].
	ErrOutOfRange = errors.New("city: index out of range")

	// ErrLengthMismatch is returned when an itinerary or table does not
	// hold exactly N entries.
	ErrLengthMismatch = errors.New("city: length does not match alphabet size")

	// ErrNotPermutation is returned when an itinerary repeats a city.
	ErrNotPermutation = errors.New("city: itinerary is not a permutation")
)
