package tags

import (
	"path/filepath"
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		input time.Duration
		want  string
	}{
		{0, "0:00"},
		{7 * time.Second, "0:07"},
		{59 * time.Second, "0:59"},
		{60 * time.Second, "1:00"},
		{61 * time.Second, "1:01"},
		{1499 * time.Millisecond, "0:01"},
		{3661 * time.Second, "61:01"},
	}

	for _, tt := range tests {
		if got := FormatDuration(tt.input); got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestReadAudioInfo(t *testing.T) {
	path := createTestFLAC(t, t.TempDir())

	info, err := ReadAudioInfo(path)
	if err != nil {
		t.Fatalf("ReadAudioInfo: %v", err)
	}
	if got := info.Duration.Round(time.Second); got != time.Second {
		t.Errorf("Duration = %v, want ~1s", info.Duration)
	}
	if info.SampleRate != 44100 {
		t.Errorf("SampleRate = %d, want 44100", info.SampleRate)
	}
	if info.Channels != 1 {
		t.Errorf("Channels = %d, want 1", info.Channels)
	}
	if info.Bitrate <= 0 {
		t.Errorf("Bitrate = %d, want > 0", info.Bitrate)
	}
}

func TestReadAudioInfoMissingFile(t *testing.T) {
	if _, err := ReadAudioInfo(filepath.Join(t.TempDir(), "gone.flac")); err == nil {
		t.Error("ReadAudioInfo on a missing file should fail")
	}
}
