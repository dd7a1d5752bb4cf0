package city

import (
	"fmt"
	"strings"
)

// StandardSymbols is the 36-city alphabet: 26 letters followed by 10 digits.
const StandardSymbols = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Standard is the production alphabet built from StandardSymbols.
var Standard = MustAlphabet(StandardSymbols)

// City is the index of a city within its Alphabet, in [0..N-1].
type City int

// Alphabet is an explicit, ordered symbol <-> City table.
// It is immutable after construction and safe for concurrent use.
type Alphabet struct {
	symbols []byte
	index   [256]int16 // symbol -> City, -1 when absent
}

// NewAlphabet builds an Alphabet from symbols, one byte per city, in City order.
//
// Errors: ErrEmptyAlphabet, ErrDuplicateSymbol.
//
// Complexity: O(N).
func NewAlphabet(symbols string) (*Alphabet, error) {
	if len(symbols) == 0 {
		return nil, ErrEmptyAlphabet
	}
	a := &Alphabet{symbols: []byte(symbols)}
	for i := range a.index {
		a.index[i] = -1
	}

	var (
		i int
		s byte
	)
	for i = 0; i < len(a.symbols); i++ {
		s = a.symbols[i]
		if a.index[s] >= 0 {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSymbol, s)
		}
		a.index[s] = int16(i)
	}

	return a, nil
}

// MustAlphabet is NewAlphabet for package-level tables; it panics on error.
func MustAlphabet(symbols string) *Alphabet {
	a, err := NewAlphabet(symbols)
	if err != nil {
		panic(err)
	}
	return a
}

// Size returns N, the number of cities.
func (a *Alphabet) Size() int { return len(a.symbols) }

// Symbols returns the alphabet as a string in City order.
func (a *Alphabet) Symbols() string { return string(a.symbols) }

// Index maps a symbol to its City.
func (a *Alphabet) Index(symbol byte) (City, error) {
	v := a.index[symbol]
	if v < 0 {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSymbol, symbol)
	}
	return City(v), nil
}

// Symbol maps a City back to its symbol.
func (a *Alphabet) Symbol(c City) (byte, error) {
	if c < 0 || int(c) >= len(a.symbols) {
		return 0, fmt.Errorf("%w: %d", ErrOutOfRange, c)
	}
	return a.symbols[c], nil
}

// Complement returns the mirrored index N-1-c.
// It is an involution: Complement(Complement(c)) == c.
func (a *Alphabet) Complement(c City) City {
	return City(len(a.symbols)-1) - c
}

// Parse converts a chromosome string into a validated itinerary.
// The string must be a permutation of the whole alphabet.
//
// Errors: ErrLengthMismatch, ErrUnknownSymbol, ErrNotPermutation.
//
// Complexity: O(N).
func (a *Alphabet) Parse(s string) ([]City, error) {
	if len(s) != len(a.symbols) {
		return nil, fmt.Errorf("%w: got %d symbols, want %d", ErrLengthMismatch, len(s), len(a.symbols))
	}
	out := make([]City, len(s))

	var (
		i   int
		c   City
		err error
	)
	for i = 0; i < len(s); i++ {
		if c, err = a.Index(s[i]); err != nil {
			return nil, err
		}
		out[i] = c
	}
	if err = ValidatePermutation(out, len(a.symbols)); err != nil {
		return nil, fmt.Errorf("%q: %w", s, err)
	}

	return out, nil
}

// Format renders an itinerary with the alphabet symbols.
// Indices outside the alphabet are rendered as '?' so diagnostics never fail.
func (a *Alphabet) Format(itinerary []City) string {
	var b strings.Builder
	b.Grow(len(itinerary))
	for _, c := range itinerary {
		if c < 0 || int(c) >= len(a.symbols) {
			b.WriteByte('?')
			continue
		}
		b.WriteByte(a.symbols[c])
	}
	return b.String()
}
