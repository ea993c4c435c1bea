package tags

import (
	"fmt"
	"time"

	"go.senan.xyz/taglib"
)

// AudioInfo is the technical shape of a file's audio stream.
type AudioInfo struct {
	Duration   time.Duration
	SampleRate int
	Bitrate    int
	Channels   int
}

// ReadAudioInfo reads stream properties through TagLib.
func ReadAudioInfo(path string) (*AudioInfo, error) {
	props, err := taglib.ReadProperties(path)
	if err != nil {
		return nil, fmt.Errorf("read properties: %w", err)
	}
	return &AudioInfo{
		Duration:   props.Length,
		SampleRate: int(props.SampleRate),
		Bitrate:    int(props.Bitrate),
		Channels:   int(props.Channels),
	}, nil
}

// FormatDuration renders a duration as m:ss for display.
func FormatDuration(d time.Duration) string {
	total := int(d.Round(time.Second).Seconds())
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
