package imageio

import (
	"testing"

	"github.com/df07/go-instance-raytracer/pkg/core"
)

func TestNewImage(t *testing.T) {
	img := NewImage(4, 3)
	if img.Width() != 4 || img.Height() != 3 {
		t.Fatalf("Expected 4x3, got %dx%d", img.Width(), img.Height())
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if !img.At(x, y).IsZero() {
				t.Errorf("Expected black at (%d,%d), got %v", x, y, img.At(x, y))
			}
		}
	}

	empty := NewImage(-1, 5)
	if empty.Width() != 0 || empty.Height() != 5 {
		t.Errorf("Expected negative width clamped to 0, got %dx%d", empty.Width(), empty.Height())
	}
}

func TestNewImageWithBackground(t *testing.T) {
	bg := core.NewColor(0.1, 0.2, 0.3)
	img := NewImageWithBackground(3, 2, bg)
	if img.At(2, 1) != bg || img.At(0, 0) != bg {
		t.Errorf("Expected background fill %v", bg)
	}
}

func TestImage_SetBounds(t *testing.T) {
	img := NewImage(2, 2)
	red := core.NewColor(1, 0, 0)

	tests := []struct {
		name string
		x, y int
		ok   bool
	}{
		{"origin", 0, 0, true},
		{"last pixel", 1, 1, true},
		{"x too large", 2, 0, false},
		{"y too large", 0, 2, false},
		{"negative x", -1, 0, false},
		{"negative y", 0, -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := img.Set(tt.x, tt.y, red); got != tt.ok {
				t.Errorf("Set(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.ok)
			}
		})
	}

	// Out-of-range writes must not wrap into other rows
	if !img.At(0, 1).IsZero() || !img.At(1, 0).IsZero() {
		t.Error("Out-of-range Set modified an in-range pixel")
	}
	if !img.At(5, 5).IsZero() {
		t.Error("Expected black for out-of-range At")
	}
}

func TestImage_GammaCorrect(t *testing.T) {
	img := NewImage(1, 1)
	img.Set(0, 0, core.NewColor(0.25, 1, -0.5))

	corrected := img.GammaCorrect(2)
	got := corrected.At(0, 0)
	if !got.ApproxEqual(core.NewColor(0.5, 1, 0), 1e-12) {
		t.Errorf("Expected (0.5, 1, 0), got %v", got)
	}
	if img.At(0, 0).X != 0.25 {
		t.Error("GammaCorrect must not modify the source image")
	}
}

func TestImage_ToRGBA(t *testing.T) {
	img := NewImage(2, 1)
	img.Set(1, 0, core.NewColor(1, 0.5, 0))

	rgba := img.ToRGBA()
	c := rgba.RGBAAt(1, 0)
	if c.R != 255 || c.G != 128 || c.B != 0 || c.A != 255 {
		t.Errorf("Expected (255,128,0,255), got %v", c)
	}
	back := FromImage(rgba)
	if back.Width() != 2 || back.Height() != 1 {
		t.Errorf("Expected 2x1, got %dx%d", back.Width(), back.Height())
	}
	if back.At(1, 0).X != 1 {
		t.Errorf("Expected full red, got %v", back.At(1, 0))
	}
}
