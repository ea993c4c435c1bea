// Package tags is the heart of the tagging engine: it defines the
// canonical metadata fields, maps them onto each container format's
// native key convention, resolves effective per-file values from
// configuration and directory inference, and writes the result through
// one adapter per format.
package tags

import "errors"

// Field is a canonical, format-independent metadata field. The engine
// operates on Fields only; the literal backend key strings appear at the
// format adapter boundary (see TagTable).
type Field int

const (
	FieldAlbumArtist Field = iota
	FieldAlbumArtistSort
	FieldAlbumTitle
	FieldAlbumTitleSort
	FieldDiscNumber
	FieldDiscTotal
	FieldTrackArtist
	FieldTrackArtistSort
	FieldTrackTitle
	FieldTrackTitleSort
	FieldTrackNumber
	FieldTrackTotal
	FieldGenre
	FieldComposer
	FieldComposerSort
	FieldDate
	FieldComments
	FieldPictureFront
	FieldPictureBack

	numFields
)

// ErrUnknownField is returned when an alias or backend key has no
// mapping for the requested container kind.
var ErrUnknownField = errors.New("no field mapping for container kind")

var fieldNames = [numFields]string{
	"album artist",
	"album artist sort",
	"album title",
	"album title sort",
	"disc number",
	"disc total",
	"track artist",
	"track artist sort",
	"track title",
	"track title sort",
	"track number",
	"track total",
	"genre",
	"composer",
	"composer sort",
	"date",
	"comments",
	"front cover",
	"back cover",
}

func (f Field) String() string {
	if f < 0 || f >= numFields {
		return "unknown field"
	}
	return fieldNames[f]
}

// Fields returns every canonical field in table order.
func Fields() []Field {
	fields := make([]Field, numFields)
	for i := range fields {
		fields[i] = Field(i)
	}
	return fields
}

// IsPicture reports whether the field carries a cover image path rather
// than a text value.
func (f Field) IsPicture() bool {
	return f == FieldPictureFront || f == FieldPictureBack
}
