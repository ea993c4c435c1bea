package tags

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Sorrow446/go-mp4tag"

	"github.com/llehouerou/etiq/internal/console"
)

// writeM4ATags updates the iTunes-style atoms of an M4A file using
// go-mp4tag, which merges with the existing tag set so that only the
// requested fields change. Track and disc atoms pack number and total
// together; the half the request does not set is completed from the
// file's current tags.
func writeM4ATags(path string, req *WriteRequest) error {
	mp4, err := mp4tag.Open(path)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	defer mp4.Close()

	current, err := mp4.Read()
	if err != nil {
		console.Warning.Printf("cannot read existing tags of %s, packed numbering starts empty: %v\n",
			filepath.Base(path), err)
		current = &mp4tag.MP4Tags{}
	}

	custom := make(map[string]string)
	tags := &mp4tag.MP4Tags{Custom: custom}

	for _, field := range req.Tags.Fields() {
		value, _ := req.Tags.Get(field)
		switch field {
		case FieldAlbumArtist:
			tags.AlbumArtist = value
		case FieldAlbumArtistSort:
			tags.AlbumArtistSort = value
		case FieldAlbumTitle:
			tags.Album = value
		case FieldAlbumTitleSort:
			tags.AlbumSort = value
		case FieldTrackArtist:
			tags.Artist = value
		case FieldTrackArtistSort:
			tags.ArtistSort = value
		case FieldTrackTitle:
			tags.Title = value
		case FieldTrackTitleSort:
			tags.TitleSort = value
		case FieldGenre:
			tags.CustomGenre = value
		case FieldComposer:
			tags.Composer = value
		case FieldComposerSort:
			tags.ComposerSort = value
		case FieldDate:
			tags.Date = value
		case FieldComments:
			tags.Comment = value
		case FieldTrackNumber, FieldTrackTotal, FieldDiscNumber, FieldDiscTotal:
			// packed atoms, both halves handled below
		case FieldPictureFront, FieldPictureBack:
			// pictures travel as raw bytes, not field values
		}
	}

	tags.TrackNumber, tags.TrackTotal = packedNumbering(req,
		FieldTrackNumber, FieldTrackTotal, current.TrackNumber, current.TrackTotal)
	tags.DiscNumber, tags.DiscTotal = packedNumbering(req,
		FieldDiscNumber, FieldDiscTotal, current.DiscNumber, current.DiscTotal)

	// Some players only read the freeform total atoms.
	if v, ok := req.Tags.Get(FieldTrackTotal); ok && v != "" {
		custom["TOTALTRACKS"] = v
	}
	if v, ok := req.Tags.Get(FieldDiscTotal); ok && v != "" {
		custom["TOTALDISCS"] = v
	}

	// The covr atom holds a plain image list, front first.
	var pics []*mp4tag.MP4Picture
	if len(req.FrontArt) > 0 {
		pics = append(pics, &mp4tag.MP4Picture{Data: req.FrontArt})
	}
	if len(req.BackArt) > 0 {
		pics = append(pics, &mp4tag.MP4Picture{Data: req.BackArt})
	}
	if len(pics) > 0 {
		tags.Pictures = pics
	}

	if err := mp4.Write(tags, nil); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// packedNumbering merges the requested and current halves of a packed
// number/total atom pair.
func packedNumbering(req *WriteRequest, number, total Field, curN, curT int16) (int16, int16) {
	n, t := curN, curT
	if v, ok := req.Tags.Get(number); ok {
		n = parseAtomNumber(v)
	}
	if v, ok := req.Tags.Get(total); ok {
		t = parseAtomNumber(v)
	}
	return n, t
}

// parseAtomNumber converts a numbering value to the int16 the trkn and
// disk atoms store. Unparsable or negative values become zero, which
// go-mp4tag treats as unset.
func parseAtomNumber(value string) int16 {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < 0 {
		return 0
	}
	return safeInt16(n)
}

// safeInt16 converts int to int16 with bounds checking.
func safeInt16(n int) int16 {
	if n > 32767 {
		return 32767
	}
	if n < -32768 {
		return -32768
	}
	return int16(n)
}
