package imageio

import (
	"image"
	"image/color"

	"github.com/df07/go-instance-raytracer/pkg/core"
)

// Image is a linear RGB pixel buffer stored row-major, top row first
type Image struct {
	width  int
	height int
	pixels []core.Color
}

// NewImage creates a black image. Negative dimensions are treated as zero.
func NewImage(width, height int) *Image {
	width, height = max(0, width), max(0, height)
	return &Image{
		width:  width,
		height: height,
		pixels: make([]core.Color, width*height),
	}
}

// NewImageWithBackground creates an image filled with background
func NewImageWithBackground(width, height int, background core.Color) *Image {
	img := NewImage(width, height)
	for i := range img.pixels {
		img.pixels[i] = background
	}
	return img
}

func (img *Image) Width() int  { return img.width }
func (img *Image) Height() int { return img.height }

// InBounds reports whether (x, y) addresses a pixel
func (img *Image) InBounds(x, y int) bool {
	return x >= 0 && x < img.width && y >= 0 && y < img.height
}

// Set stores c at (x, y). Out-of-range coordinates are ignored and reported with false.
func (img *Image) Set(x, y int, c core.Color) bool {
	if !img.InBounds(x, y) {
		return false
	}
	img.pixels[y*img.width+x] = c
	return true
}

// At returns the colour at (x, y), or black when out of range
func (img *Image) At(x, y int) core.Color {
	if !img.InBounds(x, y) {
		return core.Color{}
	}
	return img.pixels[y*img.width+x]
}

// Fill sets every pixel to c
func (img *Image) Fill(c core.Color) {
	for i := range img.pixels {
		img.pixels[i] = c
	}
}

// GammaCorrect returns a copy with every pixel raised to 1/gamma
func (img *Image) GammaCorrect(gamma float64) *Image {
	out := NewImage(img.width, img.height)
	for i, c := range img.pixels {
		out.pixels[i] = c.GammaCorrect(gamma)
	}
	return out
}

// ToRGBA converts the buffer to an 8-bit image using Quantize on each channel
func (img *Image) ToRGBA() *image.RGBA {
	rgba := image.NewRGBA(image.Rect(0, 0, img.width, img.height))
	for y := 0; y < img.height; y++ {
		for x := 0; x < img.width; x++ {
			c := img.pixels[y*img.width+x]
			rgba.SetRGBA(x, y, color.RGBA{
				R: Quantize(c.X),
				G: Quantize(c.Y),
				B: Quantize(c.Z),
				A: 255,
			})
		}
	}
	return rgba
}

// FromImage converts any decoded image into a linear buffer with channels in [0, 1]
func FromImage(src image.Image) *Image {
	bounds := src.Bounds()
	img := NewImage(bounds.Dx(), bounds.Dy())
	for y := 0; y < img.height; y++ {
		for x := 0; x < img.width; x++ {
			r, g, b, _ := src.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535]
			img.pixels[y*img.width+x] = core.NewColor(
				float64(r)/65535.0,
				float64(g)/65535.0,
				float64(b)/65535.0,
			)
		}
	}
	return img
}
