package export

import (
	"errors"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// twoRows is a 1x2 frame: bottom row red, top row blue.
var twoRows = []byte{
	255, 0, 0, 255,
	0, 0, 255, 255,
}

func TestToImageFlipsRows(t *testing.T) {
	img, err := ToImage(twoRows, 1, 2)
	if err != nil {
		t.Fatalf("ToImage: %v", err)
	}

	if got := img.RGBAAt(0, 0); got != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("top pixel = %v, want blue", got)
	}
	if got := img.RGBAAt(0, 1); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("bottom pixel = %v, want red", got)
	}
}

func TestToImageSizeMismatch(t *testing.T) {
	tests := []struct {
		name          string
		pixels        []byte
		width, height int
	}{
		{"short", twoRows[:4], 1, 2},
		{"long", twoRows, 1, 1},
		{"zero width", nil, 0, 2},
		{"negative", nil, -1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ToImage(tt.pixels, tt.width, tt.height); !errors.Is(err, ErrPixelSize) {
				t.Errorf("expected ErrPixelSize, got %v", err)
			}
		})
	}
}

func TestSaveTo(t *testing.T) {
	dir := t.TempDir()
	c := New(dir, "")
	path := filepath.Join(dir, "out", "frame")

	if err := c.SaveTo(path, twoRows, 1, 2); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	f, err := os.Open(path + ".png")
	if err != nil {
		t.Fatalf("expected .png to be appended: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 1 || b.Dy() != 2 {
		t.Errorf("bounds = %v, want 1x2", b)
	}
	r, _, b, _ := img.At(0, 0).RGBA()
	if r != 0 || b == 0 {
		t.Errorf("top pixel should be blue after flip")
	}
}

func TestSavePixelsTimestamped(t *testing.T) {
	dir := t.TempDir()
	c := New(dir, "wave")
	c.now = func() time.Time { return time.Date(2024, 3, 1, 12, 30, 5, 0, time.UTC) }

	path, err := c.SavePixels(twoRows, 1, 2)
	if err != nil {
		t.Fatalf("SavePixels: %v", err)
	}

	want := filepath.Join(dir, "wave_2024-03-01_12-30-05.png")
	if path != want {
		t.Errorf("path = %s, want %s", path, want)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("file not written: %v", err)
	}
}

func TestDefaultPath(t *testing.T) {
	c := New("", "")
	if got := c.DefaultPath(); got != "wireframe.png" {
		t.Errorf("DefaultPath() = %s, want wireframe.png", got)
	}

	c = New("shots", "surface")
	if got := c.DefaultPath(); got != filepath.Join("shots", "surface.png") {
		t.Errorf("DefaultPath() = %s", got)
	}
}

func TestSavePixelsRejectsBadSize(t *testing.T) {
	c := New(t.TempDir(), "")
	if _, err := c.SavePixels(twoRows, 2, 2); !errors.Is(err, ErrPixelSize) {
		t.Errorf("expected ErrPixelSize, got %v", err)
	}
}
