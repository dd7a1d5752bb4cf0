package dataset

import "errors"

var (
	// ErrMalformedLine is returned for a city record that does not parse
	// as "name x y", or that repeats a city.
	ErrMalformedLine = errors.New("dataset: malformed record")

	// ErrMissingCity is returned when a table does not list every city of
	// the alphabet.
	ErrMissingCity = errors.New("dataset: city missing from table")

	// ErrNoChromosomes is returned when a chromosome source is empty.
	ErrNoChromosomes = errors.New("dataset: no chromosomes")
)
