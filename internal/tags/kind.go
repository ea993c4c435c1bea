package tags

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/dhowden/tag"
)

// Kind is the container format of a music file. It is determined once
// per file and drives which backend key table the adapters use.
type Kind int

const (
	KindUnknown Kind = iota
	KindApe
	KindDsf
	KindFlac
	KindMP3
	KindM4A
)

func (k Kind) String() string {
	switch k {
	case KindApe:
		return "APE"
	case KindDsf:
		return "DSF"
	case KindFlac:
		return "FLAC"
	case KindMP3:
		return "MP3"
	case KindM4A:
		return "M4A"
	default:
		return "Unknown"
	}
}

// DetectKind determines the container kind of a file, sniffing content
// first and falling back to the extension for formats the sniffer does
// not identify (bare MPEG streams, APE, DSF).
func DetectKind(path string) Kind {
	if k := sniffKind(path); k != KindUnknown {
		return k
	}
	return kindFromExt(path)
}

func sniffKind(path string) Kind {
	f, err := os.Open(path)
	if err != nil {
		return KindUnknown
	}
	defer f.Close()

	_, fileType, err := tag.Identify(f)
	if err != nil {
		return KindUnknown
	}

	switch fileType {
	case tag.FLAC:
		return KindFlac
	case tag.MP3:
		return KindMP3
	case tag.M4A, tag.M4B, tag.M4P, tag.ALAC:
		return KindM4A
	case tag.DSF:
		return KindDsf
	default:
		return KindUnknown
	}
}

func kindFromExt(path string) Kind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ape":
		return KindApe
	case ".dsf":
		return KindDsf
	case ".flac":
		return KindFlac
	case ".mp3":
		return KindMP3
	case ".m4a", ".mp4":
		return KindM4A
	default:
		return KindUnknown
	}
}

// IsMusicFile reports whether the path carries a supported music file
// extension.
func IsMusicFile(path string) bool {
	return kindFromExt(path) != KindUnknown
}
