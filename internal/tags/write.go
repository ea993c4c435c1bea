package tags

import (
	"errors"
	"fmt"
	"net/http"
	"os"
)

// ErrUnsupportedContainer is returned when a file's container kind has
// no write adapter.
var ErrUnsupportedContainer = errors.New("unsupported container format")

// WriteRequest is one file's pending update: the resolved text fields
// plus any cover images to embed, already loaded and resized.
type WriteRequest struct {
	Tags     *Resolved
	FrontArt []byte
	BackArt  []byte
}

// Write applies the request to the file in place through the adapter
// for its container kind. Fields the request does not carry keep their
// current values, and frames, comments and atoms outside the canonical
// field set survive untouched.
func Write(path string, kind Kind, req *WriteRequest) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("file not found: %w", err)
	}

	switch kind {
	case KindFlac:
		return writeFlacTags(path, req)
	case KindMP3:
		return writeMP3Tags(path, req)
	case KindM4A:
		return writeM4ATags(path, req)
	case KindApe:
		return writeApeTags(path, req)
	case KindDsf:
		return writeDsfTags(path, req)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedContainer, path)
	}
}

const (
	mimeJPEG = "image/jpeg"
	mimePNG  = "image/png"
)

// detectMimeType detects the MIME type of image data, normalized to the
// two types cover art actually uses.
func detectMimeType(data []byte) string {
	if len(data) == 0 {
		return mimeJPEG
	}
	if http.DetectContentType(data) == mimePNG {
		return mimePNG
	}
	return mimeJPEG
}

// combinedNumbering renders the "number/total" form that ID3-style
// frames pack track and disc numbering into. The half the request does
// not set is kept from the file's existing tags; a total without any
// known number rides on "00" rather than being dropped.
func combinedNumbering(req *WriteRequest, existing map[Field]string, number, total Field) string {
	n, ok := req.Tags.Get(number)
	if !ok {
		n = existing[number]
	}
	t, ok := req.Tags.Get(total)
	if !ok {
		t = existing[total]
	}
	switch {
	case t == "":
		return n
	case n == "":
		return "00/" + t
	default:
		return n + "/" + t
	}
}
