package series_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/deltarun/numeric"
	"github.com/katalvlaran/deltarun/series"
	"github.com/katalvlaran/deltarun/span"
)

// TestApply_Table covers in-bounds and out-of-bounds spans.
func TestApply_Table(t *testing.T) {
	base := series.Of(1, 32, 152, 44, 68, 8, 2)

	tests := []struct {
		name    string
		r       span.Span
		want    []int
		wantErr bool
	}{
		{"inner span", span.Span{Start: 1, End: 4}, []int{1, 82, 202, 94, 68, 8, 2}, false},
		{"through the end", span.Span{Start: 2, End: 7}, []int{1, 32, 202, 94, 118, 58, 52}, false},
		{"whole domain", span.Span{Start: 0, End: 7}, []int{51, 82, 202, 94, 118, 58, 52}, false},
		{"empty span", span.Span{Start: 3, End: 3}, []int{1, 32, 152, 44, 68, 8, 2}, false},
		{"far outside", span.Span{Start: 10, End: 40}, nil, true},
		{"past the end", span.Span{Start: 2, End: 8}, nil, true},
		{"before the start", span.Span{Start: -1, End: 7}, nil, true},
		{"inverted", span.Span{Start: 4, End: 2}, nil, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := series.Apply(base, 50, tc.r)
			if tc.wantErr {
				assert.ErrorIs(t, err, series.ErrOutOfBounds)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.Values())
			assert.Equal(t, base.Domain(), got.Domain())
		})
	}

	// the input is untouched
	assert.Equal(t, []int{1, 32, 152, 44, 68, 8, 2}, base.Values())
}

// TestApply_AnchoredDomain checks spans are read in the series' own domain.
func TestApply_AnchoredDomain(t *testing.T) {
	s := series.Anchored(-3, []int{0, 0, 0, 0})

	got, err := series.Apply(s, 5, span.Span{Start: -2, End: 0})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 5, 5, 0}, got.Values())
	assert.Equal(t, span.Span{Start: -3, End: 1}, got.Domain())

	_, err = series.Apply(s, 5, span.Span{Start: 0, End: 2})
	assert.ErrorIs(t, err, series.ErrOutOfBounds)
}

// TestApply_Inverse verifies apply(apply(s, d, r), -d, r) == s.
func TestApply_Inverse(t *testing.T) {
	ints := series.Of(3, -7, 12, 0, 9)
	fl := series.Of(0.1, 2.7, -3.3, 1e6, 0.0003)

	for s := 0; s <= 5; s++ {
		for e := s; e <= 5; e++ {
			r := span.Span{Start: s, End: e}

			up, err := series.Apply(ints, 17, r)
			require.NoError(t, err)
			back, err := series.Apply(up, -17, r)
			require.NoError(t, err)
			assert.True(t, series.EqualWithin(numeric.Exact[int]{}, ints, back), "int span %v", r)

			upf, err := series.Apply(fl, 0.37, r)
			require.NoError(t, err)
			backf, err := series.Apply(upf, -0.37, r)
			require.NoError(t, err)
			assert.True(t, series.EqualWithin(numeric.Float64(), fl, backf), "float span %v", r)
		}
	}
}
