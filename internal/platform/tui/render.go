package tui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/glyphgrid/internal/glyph"
	"github.com/vovakirdan/glyphgrid/internal/grid"
	"github.com/vovakirdan/glyphgrid/internal/palette"
)

// halfBlock draws the upper pixel in the foreground colour and the lower one
// in the background colour, giving square pixels in a 1x2 terminal cell.
const halfBlock = "▀"

// chromeLines is the number of terminal lines around the canvas.
const chromeLines = 5

// cellSizeFor returns the largest raster cell size, a multiple of the glyph
// size, that fits in a width x height terminal. It never goes below one
// pixel per glyph bit.
func cellSizeFor(width, height int) int {
	cs := glyph.Size
	for next := cs + glyph.Size; ; next += glyph.Size {
		if grid.Dim*next > width || grid.Dim*next/2 > height-chromeLines {
			return cs
		}
		cs = next
	}
}

// cellRect returns the pixel bounds of cell i at the given cell size.
func cellRect(i, cellSize int) image.Rectangle {
	row, col := grid.RowCol(i)
	return image.Rect(col*cellSize, row*cellSize, (col+1)*cellSize, (row+1)*cellSize)
}

// outline draws a one pixel border just inside r.
func outline(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	for x := r.Min.X; x < r.Max.X; x++ {
		img.SetRGBA(x, r.Min.Y, c)
		img.SetRGBA(x, r.Max.Y-1, c)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		img.SetRGBA(r.Min.X, y, c)
		img.SetRGBA(r.Max.X-1, y, c)
	}
}

// cursorColor picks a colour that stands out against cell i.
func cursorColor(g *grid.Grid, pal palette.Palette, i int) color.RGBA {
	bg := palette.Backdrop
	if ref, ok := g.BgColor[i].Get(); ok {
		if rgb, ok := pal.Lookup(ref); ok {
			bg = rgb
		}
	}
	return bg.Contrast().Color()
}

func hexColor(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

// RenderImage converts img to half-block lines.
// Groups adjacent cells with the same colours to minimize ANSI escape sequences.
func RenderImage(r *lipgloss.Renderer, img *image.RGBA) string {
	b := img.Bounds()
	var sb strings.Builder
	sb.Grow(b.Dx() * b.Dy())

	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		if y > b.Min.Y {
			sb.WriteRune('\n')
		}

		x := b.Min.X
		for x < b.Max.X {
			top, bottom := pair(img, x, y)
			n := 0
			for x < b.Max.X {
				t, bt := pair(img, x, y)
				if t != top || bt != bottom {
					break
				}
				n++
				x++
			}
			style := r.NewStyle().Foreground(hexColor(top)).Background(hexColor(bottom))
			sb.WriteString(style.Render(strings.Repeat(halfBlock, n)))
		}
	}
	return sb.String()
}

func pair(img *image.RGBA, x, y int) (top, bottom color.RGBA) {
	top = img.RGBAAt(x, y)
	bottom = top
	if y+1 < img.Bounds().Max.Y {
		bottom = img.RGBAAt(x, y+1)
	}
	return top, bottom
}
