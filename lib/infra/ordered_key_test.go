package infra

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompare(t *testing.T) {
	testcases := []struct {
		name string
		i, j float64
		res  int64
		ok   bool
	}{
		{"less", 1.0, 1.1, -1, true},
		{"greater", 2.0, -2.0, 1, true},
		{"equal", 3.5, 3.5, 0, true},
		{"inf", math.Inf(-1), math.Inf(1), -1, true},
		{"nan left", math.NaN(), 1.0, 0, false},
		{"nan right", 1.0, math.NaN(), 0, false},
		{"nan both", math.NaN(), math.NaN(), 0, false},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(tt *testing.T) {
			res, ok := Compare(tc.i, tc.j)
			require.Equal(tt, tc.ok, ok)
			require.Equal(tt, tc.res, res)
		})
	}
}

func TestCompareIntegerAndString(t *testing.T) {
	res, ok := Compare[uint8](3, 200)
	require.True(t, ok)
	require.Equal(t, int64(-1), res)

	res, ok = Compare("b", "a")
	require.True(t, ok)
	require.Equal(t, int64(1), res)

	type level int16
	res, ok = Compare[level](-7, -7)
	require.True(t, ok)
	require.Equal(t, int64(0), res)
}

func TestUnordered(t *testing.T) {
	require.True(t, Unordered(math.NaN()))
	require.True(t, Unordered(float32(math.NaN())))
	require.False(t, Unordered(math.Inf(1)))
	require.False(t, Unordered(0))
	require.False(t, Unordered(""))
}
