// Package city defines the closed city set a tour is drawn from.
//
// A city is addressed two ways:
//
//   - at the I/O boundary by a single-byte symbol of an Alphabet
//     (Standard = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789");
//   - inside every algorithm by its City index in [0..N-1].
//
// Alphabet is the only place where the two meet; it is total and
// bijective, so Parse(Format(x)) == x for every valid itinerary.
//
// Alongside the enumeration the package owns the geometry:
//
//   - Point   — integer (x, y) coordinate of a city;
//   - Table   — the coordinate table indexed by City;
//   - DistanceCache — a goroutine-safe memo of euclidean distances keyed by
//     unordered coordinate pairs (first writer wins, never evicts).
//
// Nothing in this package logs or panics on user input; failures are
// reported with the sentinel errors in errors.go.
package city
