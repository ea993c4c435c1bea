package tags

import (
	"os"

	"github.com/dhowden/tag"
	"go.senan.xyz/taglib"
)

// Property keys understood by TagLib's property layer but absent from
// its generated constant set.
const (
	keyAlbumArtistSort = "ALBUMARTISTSORT"
	keyAlbumTitleSort  = "ALBUMTITLESORT"
	keyAlbumSort       = "ALBUMSORT"
	keyTitleSort       = "TITLESORT"
	keyComposer        = "COMPOSER"
	keyComposerSort    = "COMPOSERSORT"
	keyComment         = "COMMENT"
	keyDescription     = "DESCRIPTION"
	keyTrackTotal      = "TRACKTOTAL"
	keyDiscTotal       = "DISCTOTAL"
	keyTotalTracks     = "TOTALTRACKS"
	keyTotalDiscs      = "TOTALDISCS"
)

// readFields maps each text field to the property keys it may be stored
// under, in priority order. The adapters disagree on a few spellings,
// so the reader accepts all of them.
var readFields = []struct {
	field Field
	keys  []string
}{
	{FieldAlbumArtist, []string{taglib.AlbumArtist}},
	{FieldAlbumArtistSort, []string{keyAlbumArtistSort}},
	{FieldAlbumTitle, []string{taglib.Album}},
	{FieldAlbumTitleSort, []string{keyAlbumTitleSort, keyAlbumSort}},
	{FieldDiscNumber, []string{taglib.DiscNumber}},
	{FieldDiscTotal, []string{keyDiscTotal, keyTotalDiscs}},
	{FieldTrackArtist, []string{taglib.Artist}},
	{FieldTrackArtistSort, []string{taglib.ArtistSort}},
	{FieldTrackTitle, []string{taglib.Title}},
	{FieldTrackTitleSort, []string{keyTitleSort}},
	{FieldTrackNumber, []string{taglib.TrackNumber}},
	{FieldTrackTotal, []string{keyTrackTotal, keyTotalTracks}},
	{FieldGenre, []string{taglib.Genre}},
	{FieldComposer, []string{keyComposer}},
	{FieldComposerSort, []string{keyComposerSort}},
	{FieldDate, []string{taglib.Date}},
	{FieldComments, []string{keyComment, keyDescription}},
}

// State reads a file's current text tags as canonical fields. Combined
// "number/total" and "number of total" values found in the numbering
// tags are split into their two fields before anything else looks at
// them. Reading is best effort: an unreadable file yields an empty
// state.
func State(path string) map[Field]string {
	raw, err := taglib.ReadTags(path)
	if err != nil {
		return map[Field]string{}
	}
	tags := taglibTags(raw)

	state := make(map[Field]string, len(readFields))
	for _, rf := range readFields {
		if v := tags.get(rf.keys...); v != "" {
			state[rf.field] = v
		}
	}
	normalizeNumbering(state, FieldTrackNumber, FieldTrackTotal)
	normalizeNumbering(state, FieldDiscNumber, FieldDiscTotal)
	return state
}

// normalizeNumbering splits a combined numbering value in place. A
// total read from its own tag wins over one recovered from the
// combined form.
func normalizeNumbering(state map[Field]string, number, total Field) {
	n, t := splitNumbering(state[number])
	if t == "" {
		return
	}
	state[number] = n
	if _, ok := state[total]; !ok {
		state[total] = t
	}
}

// Merged overlays the resolved values on a file's pre-write state,
// yielding the text tags as they stand once the write completes. File
// renaming draws its placeholder values from this view, so a pattern
// can use tags the current run never touched.
func Merged(state map[Field]string, r *Resolved) map[Field]string {
	merged := make(map[Field]string, len(state)+r.Len())
	for f, v := range state {
		merged[f] = v
	}
	for _, f := range r.Fields() {
		if f.IsPicture() {
			continue
		}
		merged[f], _ = r.Get(f)
	}
	return merged
}

// taglibTags wraps the raw TagLib property map with first-value lookup.
type taglibTags map[string][]string

func (t taglibTags) get(keys ...string) string {
	for _, key := range keys {
		if vals, ok := t[key]; ok && len(vals) > 0 && vals[0] != "" {
			return vals[0]
		}
	}
	return ""
}

// EmbeddedPicture returns a file's first embedded cover image and its
// MIME type, or nil when the file carries none.
func EmbeddedPicture(path string) ([]byte, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return nil, "", err
	}

	pic := m.Picture()
	if pic == nil {
		return nil, "", nil
	}
	return pic.Data, pic.MIMEType, nil
}
