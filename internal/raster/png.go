package raster

import (
	"fmt"
	"image"
	"image/png"
	"io"

	xdraw "golang.org/x/image/draw"
)

// Upscale enlarges img by an integer factor without smoothing.
func Upscale(img image.Image, scale int) image.Image {
	if scale <= 1 {
		return img
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, xdraw.Over, nil)
	return dst
}

// WritePNG encodes img as PNG, upscaled by scale.
func WritePNG(w io.Writer, img image.Image, scale int) error {
	if err := png.Encode(w, Upscale(img, scale)); err != nil {
		return fmt.Errorf("raster: cannot encode png: %w", err)
	}
	return nil
}
