package glyph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTypographyLayout(t *testing.T) {
	typo := DefaultTypography()

	require.Equal(t, 9, typo.Variations())
	assert.Equal(t, []int{16, 17, 18, 19, 20, 21, 22}, typo.Word(0))
	assert.Equal(t, []int{72, 73, 74, 75, 76, 77, 78}, typo.Word(8))
	// B A S E = positions 0 1 6 5
	assert.Equal(t, []int{16, 17, 22, 21}, typo.BaseWord(0))
	assert.Equal(t, 23+6, typo.Base(1, 2))
}

func TestTypographyLookup(t *testing.T) {
	typo := DefaultTypography()

	l, ok := typo.Lookup(25)
	require.True(t, ok)
	assert.Equal(t, Letter{Variation: 1, Position: 2}, l)
	assert.Equal(t, 25, typo.Letter(l.Variation, l.Position))

	assert.False(t, typo.IsTypographic(15))
	assert.False(t, typo.IsTypographic(79))
	assert.True(t, typo.IsTypographic(16))
}

func TestNewTypographyCustomGroups(t *testing.T) {
	typo, err := NewTypography([][]int{
		{40, 41, 42, 43, 44, 45, 46},
		{90, 91, 92, 93, 94, 95, 96},
	})
	require.NoError(t, err)

	l, ok := typo.Lookup(93)
	require.True(t, ok)
	assert.Equal(t, Letter{Variation: 1, Position: 3}, l)
	assert.Equal(t, []int{90, 91, 96, 95}, typo.BaseWord(1))
}

func TestNewTypographyRejects(t *testing.T) {
	tests := []struct {
		name   string
		groups [][]int
	}{
		{"empty", nil},
		{"short group", [][]int{{16, 17}}},
		{"duplicate id", [][]int{{16, 17, 18, 19, 20, 21, 22}, {22, 23, 24, 25, 26, 27, 28}}},
		{"block id", [][]int{{1, 17, 18, 19, 20, 21, 22}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTypography(tt.groups)
			assert.ErrorIs(t, err, ErrInvalidTypography)
		})
	}
}
