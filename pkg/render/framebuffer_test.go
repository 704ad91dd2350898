package render

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestSetGetPixel(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	fb.SetPixel(1, 2, ColorRed)
	if got := fb.GetPixel(1, 2); got != ColorRed {
		t.Errorf("GetPixel = %v, want red", got)
	}

	// Out of bounds is ignored on write and transparent on read
	fb.SetPixel(-1, 0, ColorRed)
	fb.SetPixel(4, 0, ColorRed)
	if got := fb.GetPixel(9, 9); got.A != 0 {
		t.Errorf("out of bounds GetPixel = %v, want transparent", got)
	}
}

func TestDrawLine(t *testing.T) {
	fb := NewFramebuffer(8, 8)
	fb.DrawLine(0, 0, 3, 0, ColorWhite)
	fb.DrawLine(6, 5, 6, 2, ColorGreen)
	fb.DrawLine(0, 7, 7, 0, ColorBlue)

	for x := range 4 {
		if fb.GetPixel(x, 0) != ColorWhite {
			t.Errorf("pixel (%d, 0) not drawn", x)
		}
	}
	if fb.GetPixel(4, 0) == ColorWhite {
		t.Error("line overran its endpoint")
	}
	for y := 2; y <= 5; y++ {
		if fb.GetPixel(6, y) != ColorGreen {
			t.Errorf("pixel (6, %d) not drawn", y)
		}
	}
	for i := range 8 {
		if fb.GetPixel(i, 7-i) != ColorBlue {
			t.Errorf("diagonal pixel (%d, %d) not drawn", i, 7-i)
		}
	}
}

func TestClear(t *testing.T) {
	fb := NewFramebuffer(3, 2)
	bg := RGB(30, 30, 40)
	fb.Clear(bg)
	for i, p := range fb.Pixels {
		if p != bg {
			t.Fatalf("pixel %d = %v, want %v", i, p, bg)
		}
	}
}

func TestScaled(t *testing.T) {
	fb := NewFramebuffer(4, 3)
	fb.Clear(ColorGray)

	if img := fb.Scaled(0); img.Bounds().Dx() != 4 || img.Bounds().Dy() != 3 {
		t.Errorf("Scaled(0) bounds = %v, want 4x3", img.Bounds())
	}

	img := fb.Scaled(3)
	if img.Bounds().Dx() != 12 || img.Bounds().Dy() != 9 {
		t.Fatalf("Scaled(3) bounds = %v, want 12x9", img.Bounds())
	}
	c := img.RGBAAt(6, 4)
	if diff := int(c.R) - int(ColorGray.R); diff < -2 || diff > 2 {
		t.Errorf("resampled flat color = %v, want about %v", c, ColorGray)
	}
}

func TestSavePNG(t *testing.T) {
	fb := NewFramebuffer(5, 4)
	fb.Clear(ColorBlue)
	fb.SetPixel(2, 1, ColorRed)

	path := filepath.Join(t.TempDir(), "snap.png")
	if err := fb.Save(path, 1); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 5 || img.Bounds().Dy() != 4 {
		t.Errorf("bounds = %v, want 5x4", img.Bounds())
	}
	if r, g, b, _ := img.At(2, 1).RGBA(); r>>8 != 255 || g != 0 || b != 0 {
		t.Errorf("pixel (2, 1) = %v, want red", img.At(2, 1))
	}
}

func TestSaveWebP(t *testing.T) {
	fb := NewFramebuffer(6, 6)
	fb.Clear(ColorGreen)

	path := filepath.Join(t.TempDir(), "snap.webp")
	if err := fb.Save(path, 2); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) < 12 || string(data[0:4]) != "RIFF" || string(data[8:12]) != "WEBP" {
		t.Errorf("output is not a WebP container: % x", data[:min(len(data), 12)])
	}
}

func TestSaveUnsupported(t *testing.T) {
	fb := NewFramebuffer(1, 1)
	if err := fb.Save(filepath.Join(t.TempDir(), "snap.bmp"), 1); err == nil {
		t.Error("expected error for .bmp")
	}
}
