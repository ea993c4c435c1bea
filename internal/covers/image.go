package covers

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/nfnt/resize"
)

// Accepted width:height range. An image outside it is presumed to be a
// composite scan (front and back in one picture) and refused for
// embedding.
const (
	minAspectRatio = 0.5
	maxAspectRatio = 2.0
)

// jpegQuality is used when a downscaled cover is re-encoded.
const jpegQuality = 90

// resizeSuffix is appended to the stem of the original cover when the
// downscaled copy is persisted next to it.
const resizeSuffix = "-resize"

// AspectRatioError reports a cover image whose shape falls outside the
// accepted range.
type AspectRatioError struct {
	Path  string
	Ratio float64
}

func (e *AspectRatioError) Error() string {
	return fmt.Sprintf("cover %s has aspect ratio %.2f, accepted range is %.1f to %.1f",
		e.Path, e.Ratio, minAspectRatio, maxAspectRatio)
}

func checkAspect(path string, width, height int) error {
	if height == 0 {
		return &AspectRatioError{Path: path, Ratio: 0}
	}
	ratio := float64(width) / float64(height)
	if ratio < minAspectRatio || ratio > maxAspectRatio {
		return &AspectRatioError{Path: path, Ratio: ratio}
	}
	return nil
}

// NeedsResize reports whether the image at path has an edge longer than
// maxSize. maxSize 0 disables resizing entirely. The aspect gate applies
// here too, so a composite scan is refused before anything is decoded in
// full.
func NeedsResize(path string, maxSize int) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("open cover: %w", err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return false, fmt.Errorf("decode cover %s: %w", path, err)
	}
	if err := checkAspect(path, cfg.Width, cfg.Height); err != nil {
		return false, err
	}
	if maxSize <= 0 {
		return false, nil
	}
	return cfg.Width > maxSize || cfg.Height > maxSize, nil
}

// ResizedPath derives the name the downscaled copy of a cover is saved
// under, next to the original.
func ResizedPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + resizeSuffix + ".jpg"
}

// Load returns the bytes to embed for a cover. An image within maxSize
// is returned as is; a larger one is downscaled so neither edge exceeds
// maxSize, re-encoded as JPEG and, unless dryRun is set, also persisted
// next to the original under the ResizedPath name. A previously
// persisted downscale is reused instead of resizing again.
func Load(path string, maxSize int, dryRun bool) ([]byte, error) {
	needed, err := NeedsResize(path, maxSize)
	if err != nil {
		return nil, err
	}
	if !needed {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read cover: %w", err)
		}
		return data, nil
	}

	if resized := ResizedPath(path); fileExists(resized) {
		data, err := os.ReadFile(resized)
		if err != nil {
			return nil, fmt.Errorf("read resized cover: %w", err)
		}
		return data, nil
	}

	data, err := shrink(path, maxSize)
	if err != nil {
		return nil, err
	}
	if !dryRun {
		if err := os.WriteFile(ResizedPath(path), data, 0o644); err != nil {
			return nil, fmt.Errorf("save resized cover: %w", err)
		}
	}
	return data, nil
}

// shrink decodes the image at path and scales it down so neither edge
// exceeds maxSize, preserving aspect ratio, then re-encodes it as JPEG.
func shrink(path string, maxSize int) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open cover: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode cover %s: %w", path, err)
	}
	bounds := img.Bounds()
	if err := checkAspect(path, bounds.Dx(), bounds.Dy()); err != nil {
		return nil, err
	}

	small := resize.Thumbnail(uint(maxSize), uint(maxSize), img, resize.Lanczos3)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, small, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("encode resized cover: %w", err)
	}
	return buf.Bytes(), nil
}
