package dataset

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/gatsp/city"
	"github.com/tidwall/gjson"
)

// headerName is the first column of the optional header line.
const headerName = "name"

// ReadCities parses whitespace-separated "name x y" records, one per line.
// A leading "name x y" header is skipped; blank lines are ignored.
//
// Errors: ErrMalformedLine, ErrMissingCity, city.ErrUnknownSymbol (each
// wrapped with the line number).
//
// Complexity: O(lines).
func ReadCities(r io.Reader, a *city.Alphabet) (*city.Table, error) {
	var (
		b    = newTableBuilder(a)
		sc   = bufio.NewScanner(r)
		line int
	)
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if line == 1 && strings.EqualFold(fields[0], headerName) {
			continue
		}
		if len(fields) != 3 {
			return nil, fmt.Errorf("line %d: %w: %d fields", line, ErrMalformedLine, len(fields))
		}
		x, errX := strconv.Atoi(fields[1])
		y, errY := strconv.Atoi(fields[2])
		if errX != nil || errY != nil {
			return nil, fmt.Errorf("line %d: %w: bad coordinate in %q", line, ErrMalformedLine, sc.Text())
		}
		if err := b.add(fields[0], city.Point{X: x, Y: y}); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("dataset: read cities: %w", err)
	}
	return b.build()
}

// ReadCitiesJSON parses {"cities":[{"name":"A","x":83,"y":99}, ...]}.
// Coordinates may be JSON numbers or numeric strings; fractional values are
// truncated.
//
// Errors: ErrMalformedLine for invalid JSON or a record without a
// one-symbol name, ErrMissingCity, city.ErrUnknownSymbol.
func ReadCitiesJSON(data []byte, a *city.Alphabet) (*city.Table, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrMalformedLine)
	}

	var (
		b   = newTableBuilder(a)
		err error
		i   int
	)
	gjson.GetBytes(data, "cities").ForEach(func(_, v gjson.Result) bool {
		name := v.Get("name")
		x, y := v.Get("x"), v.Get("y")
		if !name.Exists() || !x.Exists() || !y.Exists() {
			err = fmt.Errorf("cities[%d]: %w: need name, x and y", i, ErrMalformedLine)
			return false
		}
		if e := b.add(name.String(), city.Point{X: int(x.Int()), Y: int(y.Int())}); e != nil {
			err = fmt.Errorf("cities[%d]: %w", i, e)
			return false
		}
		i++
		return true
	})
	if err != nil {
		return nil, err
	}
	return b.build()
}

// tableBuilder collects points by symbol and checks completeness.
type tableBuilder struct {
	alphabet *city.Alphabet
	points   []city.Point
	seen     []bool
	count    int
}

func newTableBuilder(a *city.Alphabet) *tableBuilder {
	return &tableBuilder{
		alphabet: a,
		points:   make([]city.Point, a.Size()),
		seen:     make([]bool, a.Size()),
	}
}

func (b *tableBuilder) add(name string, p city.Point) error {
	if len(name) != 1 {
		return fmt.Errorf("%w: city name %q is not one symbol", ErrMalformedLine, name)
	}
	c, err := b.alphabet.Index(name[0])
	if err != nil {
		return err
	}
	if b.seen[c] {
		return fmt.Errorf("%w: city %q listed twice", ErrMalformedLine, name)
	}
	b.seen[c] = true
	b.points[c] = p
	b.count++
	return nil
}

func (b *tableBuilder) build() (*city.Table, error) {
	if b.count != len(b.points) {
		var missing []byte
		for c, ok := range b.seen {
			if !ok {
				s, _ := b.alphabet.Symbol(city.City(c))
				missing = append(missing, s)
			}
		}
		return nil, fmt.Errorf("%w: %q", ErrMissingCity, missing)
	}
	return city.NewTable(b.alphabet, b.points)
}
