package city

import (
	"fmt"
	"math"
)

// Point is an integer coordinate on the plane.
type Point struct {
	X int
	Y int
}

// String implements fmt.Stringer, e.g. "(83,99)".
func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Distance is the euclidean distance between p1 and p2. Pure and cheap;
// DistanceCache only memoizes it.
func Distance(p1, p2 Point) float64 {
	dx := float64(p2.X - p1.X)
	dy := float64(p2.Y - p1.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// Table is the coordinate table: one Point per City of its Alphabet.
type Table struct {
	alphabet *Alphabet
	points   []Point
}

// NewTable binds points (indexed by City) to alphabet.
// The slice is copied; later changes by the caller do not leak in.
//
// Errors: ErrLengthMismatch when len(points) != alphabet.Size().
func NewTable(alphabet *Alphabet, points []Point) (*Table, error) {
	if alphabet == nil {
		return nil, ErrEmptyAlphabet
	}
	if len(points) != alphabet.Size() {
		return nil, fmt.Errorf("%w: got %d points, want %d", ErrLengthMismatch, len(points), alphabet.Size())
	}
	cp := make([]Point, len(points))
	copy(cp, points)
	return &Table{alphabet: alphabet, points: cp}, nil
}

// Alphabet returns the alphabet the table is indexed by.
func (t *Table) Alphabet() *Alphabet { return t.alphabet }

// Size returns the number of cities N.
func (t *Table) Size() int { return len(t.points) }

// Point returns the coordinate of c. c must be in range; algorithms only
// see validated itineraries.
func (t *Table) Point(c City) Point { return t.points[c] }

// Points returns a copy of the coordinate slice in City order.
func (t *Table) Points() []Point {
	cp := make([]Point, len(t.points))
	copy(cp, t.points)
	return cp
}
