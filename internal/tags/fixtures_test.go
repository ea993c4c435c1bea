package tags

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// Test file creation helpers

// createTestMP3 writes a minimal MP3 file: a single MPEG1 Layer3 frame,
// 128kbps, 44100Hz, stereo. No external tooling needed.
func createTestMP3(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)

	frame := make([]byte, 417)
	frame[0] = 0xff
	frame[1] = 0xfb
	frame[2] = 0x90
	frame[3] = 0x00

	if err := os.WriteFile(path, frame, 0o600); err != nil {
		t.Fatalf("create test MP3: %v", err)
	}
	return path
}

// createTestFLAC encodes a one-second FLAC using ffmpeg, with optional
// "key=value" metadata pairs. Skips the test when ffmpeg is missing.
func createTestFLAC(t *testing.T, dir string, metadata ...string) string {
	t.Helper()
	path := filepath.Join(dir, "test.flac")

	args := []string{"-y", "-f", "lavfi", "-i", "sine=frequency=440:duration=1"}
	for _, m := range metadata {
		args = append(args, "-metadata", m)
	}
	args = append(args, "-c:a", "flac", path)

	cmd := exec.Command("ffmpeg", args...)
	cmd.Stderr = nil
	cmd.Stdout = nil
	if err := cmd.Run(); err != nil {
		t.Skipf("ffmpeg not available: %v", err)
	}
	return path
}

// createTestM4A encodes a one-second AAC-in-M4A file using ffmpeg.
// Skips the test when ffmpeg is missing.
func createTestM4A(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "test.m4a")

	cmd := exec.Command("ffmpeg", "-y", "-f", "lavfi", "-i", "sine=frequency=440:duration=1", "-c:a", "aac", path)
	cmd.Stderr = nil
	cmd.Stdout = nil
	if err := cmd.Run(); err != nil {
		t.Skipf("ffmpeg not available: %v", err)
	}
	return path
}

// testJPEG encodes a solid-color JPEG of the given dimensions.
func testJPEG(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		t.Fatalf("encode jpeg: %v", err)
	}
	return buf.Bytes()
}

// fullResolved returns a Resolved covering every text field.
func fullResolved() *Resolved {
	r := NewResolved()
	r.Set(FieldAlbumArtist, "Test Album Artist")
	r.Set(FieldAlbumArtistSort, "Album Artist, Test")
	r.Set(FieldAlbumTitle, "Test Album")
	r.Set(FieldAlbumTitleSort, "Album, Test")
	r.Set(FieldDiscNumber, "1")
	r.Set(FieldDiscTotal, "2")
	r.Set(FieldTrackArtist, "Test Artist")
	r.Set(FieldTrackArtistSort, "Artist, Test")
	r.Set(FieldTrackTitle, "Test Title")
	r.Set(FieldTrackTitleSort, "Title, Test")
	r.Set(FieldTrackNumber, "3")
	r.Set(FieldTrackTotal, "12")
	r.Set(FieldGenre, "Rock")
	r.Set(FieldComposer, "Test Composer")
	r.Set(FieldComposerSort, "Composer, Test")
	r.Set(FieldDate, "2023-06-15")
	r.Set(FieldComments, "a comment")
	return r
}

func assertField(t *testing.T, state map[Field]string, f Field, want string) {
	t.Helper()
	if got := state[f]; got != want {
		t.Errorf("%s = %q, want %q", f, got, want)
	}
}
