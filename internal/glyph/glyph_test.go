package glyph

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitmapOn(t *testing.T) {
	var top Bitmap = 0xFF00000000000000

	for x := 0; x < Size; x++ {
		assert.True(t, top.On(x, 0), "x=%d y=0", x)
		assert.False(t, top.On(x, 1), "x=%d y=1", x)
	}
	assert.False(t, top.On(-1, 0))
	assert.False(t, top.On(8, 0))
	assert.Equal(t, 8, top.Count())
}

func TestBitmapTopLeftIsHighBit(t *testing.T) {
	var b Bitmap = 1 << 63
	assert.True(t, b.On(0, 0))
	assert.False(t, b.On(7, 7))

	b = 1
	assert.True(t, b.On(7, 7))
}

func TestBitmapUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Bitmap
	}{
		{"decimal string", `"18446744073709551615"`, Bitmap(^uint64(0))},
		{"hex string", `"0xFF"`, 0xFF},
		{"number", `18446744073709551615`, Bitmap(^uint64(0))},
		{"small number", `255`, 255},
		{"null", `null`, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b Bitmap
			require.NoError(t, json.Unmarshal([]byte(tt.in), &b))
			assert.Equal(t, tt.want, b)
		})
	}
}

func TestBitmapUnmarshalInvalid(t *testing.T) {
	var b Bitmap
	assert.Error(t, json.Unmarshal([]byte(`"nope"`), &b))
}

func TestBitmapMarshalIsString(t *testing.T) {
	data, err := json.Marshal(Glyph{ID: 1, Bitmap: Bitmap(^uint64(0))})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"bitmap":"18446744073709551615"}`, string(data))
}

func TestPoolLookup(t *testing.T) {
	p := NewPool([]Glyph{{ID: 3, Bitmap: 7}, {ID: 1, Bitmap: 1}, {ID: 3, Bitmap: 9}})

	assert.Equal(t, 2, p.Len())
	b, ok := p.Get(3)
	require.True(t, ok)
	assert.Equal(t, Bitmap(9), b, "later duplicate wins")
	assert.False(t, p.Has(2))
	assert.Equal(t, []int{1, 3}, p.IDs())
}

func TestPoolGraphic(t *testing.T) {
	p := Fallback()
	ids := p.Graphic(DefaultGraphicRange)

	require.Len(t, ids, 15)
	assert.Equal(t, 1, ids[0])
	assert.Equal(t, 15, ids[len(ids)-1])
}

func TestNilPool(t *testing.T) {
	var p *Pool
	assert.Equal(t, 0, p.Len())
	assert.False(t, p.Has(1))
	assert.Nil(t, p.IDs())
}

func TestFallbackContents(t *testing.T) {
	p := Fallback()

	require.Equal(t, MaxID, p.Len())
	block, ok := p.Get(BlockID)
	require.True(t, ok)
	assert.Equal(t, Bitmap(^uint64(0)), block, "block glyph must be solid")

	typo := DefaultTypography()
	for v := 0; v < typo.Variations(); v++ {
		for _, id := range typo.Word(v) {
			assert.True(t, p.Has(id), "fallback lacks typographic glyph %d", id)
		}
	}
}
