package tags

import (
	"fmt"
	"path/filepath"

	"go.senan.xyz/taglib"

	"github.com/llehouerou/etiq/internal/console"
)

// writeApeTags updates an APEv2 tag through TagLib's property layer,
// which passes the Vorbis-style key names through to APE items
// verbatim. Items under other keys are preserved.
func writeApeTags(path string, req *WriteRequest) error {
	table := TagTable(KindApe)

	props := make(map[string][]string)
	for _, field := range req.Tags.Fields() {
		if field.IsPicture() {
			continue
		}
		value, _ := req.Tags.Get(field)
		props[table[field]] = []string{value}
	}

	if err := taglib.WriteTags(path, props, 0); err != nil {
		return fmt.Errorf("write tags: %w", err)
	}
	return writeTaglibImage(path, req)
}

// writeDsfTags updates the ID3v2 chunk of a DSF file through TagLib,
// which maps the standard property names onto the same frame IDs the
// MP3 adapter writes directly. Numbering is packed into the
// "number/total" frame form first, completing the missing half from
// the file's current tags.
func writeDsfTags(path string, req *WriteRequest) error {
	existing := State(path)

	props := make(map[string][]string)
	for _, field := range req.Tags.Fields() {
		value, _ := req.Tags.Get(field)
		var key string
		switch field {
		case FieldAlbumArtist:
			key = taglib.AlbumArtist
		case FieldAlbumArtistSort:
			key = keyAlbumArtistSort
		case FieldAlbumTitle:
			key = taglib.Album
		case FieldAlbumTitleSort:
			key = keyAlbumSort
		case FieldTrackArtist:
			key = taglib.Artist
		case FieldTrackArtistSort:
			key = taglib.ArtistSort
		case FieldTrackTitle:
			key = taglib.Title
		case FieldTrackTitleSort:
			key = keyTitleSort
		case FieldGenre:
			key = taglib.Genre
		case FieldComposer:
			key = keyComposer
		case FieldComposerSort:
			key = keyComposerSort
		case FieldDate:
			key = taglib.Date
		case FieldComments:
			key = keyComment
		default:
			// numbering is packed below; pictures travel as bytes
			continue
		}
		props[key] = []string{value}
	}

	if req.Tags.Has(FieldTrackNumber) || req.Tags.Has(FieldTrackTotal) {
		props[taglib.TrackNumber] = []string{combinedNumbering(req, existing, FieldTrackNumber, FieldTrackTotal)}
	}
	if req.Tags.Has(FieldDiscNumber) || req.Tags.Has(FieldDiscTotal) {
		props[taglib.DiscNumber] = []string{combinedNumbering(req, existing, FieldDiscNumber, FieldDiscTotal)}
	}

	if err := taglib.WriteTags(path, props, 0); err != nil {
		return fmt.Errorf("write tags: %w", err)
	}
	return writeTaglibImage(path, req)
}

// writeTaglibImage embeds the front cover. TagLib's image interface
// carries a single picture, so a back cover cannot be written for these
// formats and is skipped with a warning.
func writeTaglibImage(path string, req *WriteRequest) error {
	if len(req.BackArt) > 0 {
		console.Warning.Printf("back cover not supported for %s, skipping\n", filepath.Base(path))
	}
	if len(req.FrontArt) == 0 {
		return nil
	}
	if err := taglib.WriteImage(path, req.FrontArt); err != nil {
		return fmt.Errorf("write image: %w", err)
	}
	return nil
}
