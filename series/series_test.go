package series_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/deltarun/numeric"
	"github.com/katalvlaran/deltarun/series"
	"github.com/katalvlaran/deltarun/span"
)

// TestSeries_Accessors covers domain, indexing and windows.
func TestSeries_Accessors(t *testing.T) {
	s := series.Anchored(10, []int{4, 5, 6, 7})

	assert.Equal(t, 4, s.Len())
	assert.Equal(t, span.Span{Start: 10, End: 14}, s.Domain())

	v, err := s.Index(12)
	require.NoError(t, err)
	assert.Equal(t, 6, v)

	_, err = s.Index(14)
	assert.ErrorIs(t, err, series.ErrOutOfBounds)
	_, err = s.Index(9)
	assert.ErrorIs(t, err, series.ErrOutOfBounds)

	w, err := s.Window(span.Span{Start: 11, End: 13})
	require.NoError(t, err)
	assert.Equal(t, []int{5, 6}, w)

	w, err = s.Window(span.Span{Start: 14, End: 14})
	require.NoError(t, err)
	assert.Empty(t, w)

	_, err = s.Window(span.Span{Start: 0, End: 2})
	assert.ErrorIs(t, err, series.ErrOutOfBounds)

	assert.Equal(t, "[4 5 6 7]", s.String())
}

// TestSeries_NoAliasing verifies constructors and Values copy their data.
func TestSeries_NoAliasing(t *testing.T) {
	raw := []int{1, 2, 3}
	s := series.Of(raw...)
	raw[0] = 99
	assert.Equal(t, []int{1, 2, 3}, s.Values(), "constructor must copy")

	out := s.Values()
	out[1] = 42
	assert.Equal(t, []int{1, 2, 3}, s.Values(), "Values must return a copy")

	a := series.Anchored(3, raw)
	raw[1] = -1
	assert.Equal(t, []int{99, 2, 3}, a.Values())
}

// TestEqualWithin compares under exact and tolerant policies.
func TestEqualWithin(t *testing.T) {
	ip := numeric.Exact[int]{}
	assert.True(t, series.EqualWithin(ip, series.Of(1, 2), series.Anchored(5, []int{1, 2})),
		"domains are not compared")
	assert.False(t, series.EqualWithin(ip, series.Of(1, 2), series.Of(1, 3)))
	assert.False(t, series.EqualWithin(ip, series.Of(1, 2), series.Of(1, 2, 3)))

	fp := numeric.Float64()
	assert.True(t, series.EqualWithin(fp, series.Of(0.1, 0.2), series.Of(0.100001, 0.199999)))
	assert.False(t, series.EqualWithin(fp, series.Of(0.1, 0.2), series.Of(0.1, 0.21)))
}
