// Package export writes rendered frames to PNG files.
package export

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DefaultPrefix names exported files when no prefix is configured.
const DefaultPrefix = "wireframe"

// ErrPixelSize is returned when the pixel slice does not match the size.
var ErrPixelSize = errors.New("pixel data size mismatch")

// Capture saves frames read back from the viewport.
type Capture struct {
	Dir    string
	Prefix string

	now func() time.Time
}

// New creates a Capture writing into dir. An empty prefix means DefaultPrefix.
func New(dir, prefix string) *Capture {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Capture{Dir: dir, Prefix: prefix, now: time.Now}
}

// DefaultPath is the suggested save-as target, e.g. "wireframe.png".
func (c *Capture) DefaultPath() string {
	return filepath.Join(c.Dir, c.Prefix+".png")
}

// NextPath returns a timestamped file name in Dir.
func (c *Capture) NextPath() string {
	now := time.Now
	if c.now != nil {
		now = c.now
	}
	name := fmt.Sprintf("%s_%s.png", c.Prefix, now().Format("2006-01-02_15-04-05"))
	return filepath.Join(c.Dir, name)
}

// SavePixels writes a bottom-up RGBA frame to a timestamped file and
// returns its path.
func (c *Capture) SavePixels(pixels []byte, width, height int) (string, error) {
	path := c.NextPath()
	if err := c.SaveTo(path, pixels, width, height); err != nil {
		return "", err
	}
	return path, nil
}

// SaveTo writes a bottom-up RGBA frame to path. A missing ".png"
// extension is appended.
func (c *Capture) SaveTo(path string, pixels []byte, width, height int) error {
	img, err := ToImage(pixels, width, height)
	if err != nil {
		return err
	}

	if !strings.EqualFold(filepath.Ext(path), ".png") {
		path += ".png"
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	if err := png.Encode(file, img); err != nil {
		file.Close()
		return fmt.Errorf("encoding PNG: %w", err)
	}
	return file.Close()
}

// ToImage converts GL read-back pixels, whose first row is the bottom of the
// frame, into a top-down image.
func ToImage(pixels []byte, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 || len(pixels) != width*height*4 {
		return nil, fmt.Errorf("%w: %dx%d needs %d bytes, got %d",
			ErrPixelSize, width, height, max(width*height*4, 0), len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		src := (height - 1 - y) * rowSize
		dst := y * img.Stride
		copy(img.Pix[dst:dst+rowSize], pixels[src:src+rowSize])
	}
	return img, nil
}
