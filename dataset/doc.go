// Package dataset loads solver inputs from disk: the coordinate table of
// the cities and the seed chromosomes of the initial population.
//
// Two city formats are accepted:
//
//	name    x       y          (optional header)
//	A       83      99
//	B       77      35
//
// and a JSON document {"cities":[{"name":"A","x":83,"y":99}, ...]}.
// Chromosome files hold one itinerary string per whitespace-separated token,
// e.g. "T8JHFKM7BO5XWYSQ29IP04DL6NU3ERVA1CZG".
//
// Every city of the alphabet must appear exactly once in a table and every
// chromosome must be a permutation of the alphabet. Errors carry the line
// (or JSON element) they refer to and wrap the package sentinels or the
// city sentinels.
package dataset
