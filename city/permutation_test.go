package city_test

import (
	"testing"

	"github.com/katalvlaran/gatsp/city"
	"github.com/stretchr/testify/require"
)

func TestValidatePermutation(t *testing.T) {
	cases := []struct {
		name string
		in   []city.City
		n    int
		want error
	}{
		{"identity", city.Identity(5), 5, nil},
		{"reversed", []city.City{3, 2, 1, 0}, 4, nil},
		{"short", []city.City{0, 1}, 3, city.ErrLengthMismatch},
		{"empty", nil, 0, city.ErrLengthMismatch},
		{"range", []city.City{0, 1, 7}, 3, city.ErrOutOfRange},
		{"negative", []city.City{0, -1, 2}, 3, city.ErrOutOfRange},
		{"duplicate", []city.City{0, 1, 1}, 3, city.ErrNotPermutation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := city.ValidatePermutation(tc.in, tc.n)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNewTable(t *testing.T) {
	a := city.MustAlphabet("ABCD")
	pts := []city.Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	tbl, err := city.NewTable(a, pts)
	require.NoError(t, err)
	require.Equal(t, 4, tbl.Size())
	require.Equal(t, city.Point{X: 1, Y: 1}, tbl.Point(2))

	// The table owns its copy.
	pts[2] = city.Point{X: 9, Y: 9}
	require.Equal(t, city.Point{X: 1, Y: 1}, tbl.Point(2))

	_, err = city.NewTable(a, pts[:3])
	require.ErrorIs(t, err, city.ErrLengthMismatch)
}
