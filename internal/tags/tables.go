package tags

// Backend key tables. These literal strings are a contract: downstream
// tooling and the rename placeholder machinery match on them exactly.
// APE and FLAC share the Vorbis-style names, MP3 and DSF the ID3v2.4
// frame IDs, and M4A uses the iTunes atom names. The "-T" / "-t"
// variants separate a total from its number where the native format
// packs both into one frame or atom.

var vorbisKeys = [numFields]string{
	FieldAlbumArtist:     "ALBUMARTIST",
	FieldAlbumArtistSort: "ALBUMARTISTSORT",
	FieldAlbumTitle:      "ALBUM",
	FieldAlbumTitleSort:  "ALBUMTITLESORT",
	FieldDiscNumber:      "DISCNUMBER",
	FieldDiscTotal:       "DISCTOTAL",
	FieldTrackArtist:     "ARTIST",
	FieldTrackArtistSort: "ARTISTSORT",
	FieldTrackTitle:      "TITLE",
	FieldTrackTitleSort:  "TITLESORT",
	FieldTrackNumber:     "TRACKNUMBER",
	FieldTrackTotal:      "TRACKTOTAL",
	FieldGenre:           "GENRE",
	FieldComposer:        "COMPOSER",
	FieldComposerSort:    "COMPOSERSORT",
	FieldDate:            "DATE",
	FieldComments:        "DESCRIPTION",
	FieldPictureFront:    "PICTUREFRONT",
	FieldPictureBack:     "PICTUREBACK",
}

var id3Keys = [numFields]string{
	FieldAlbumArtist:     "TPE2",
	FieldAlbumArtistSort: "TSO2",
	FieldAlbumTitle:      "TALB",
	FieldAlbumTitleSort:  "TSOA",
	FieldDiscNumber:      "TPOS",
	FieldDiscTotal:       "TPOS-T",
	FieldTrackArtist:     "TPE1",
	FieldTrackArtistSort: "TSOP",
	FieldTrackTitle:      "TIT2",
	FieldTrackTitleSort:  "TSOT",
	FieldTrackNumber:     "TRCK",
	FieldTrackTotal:      "TRCK-T",
	FieldGenre:           "TCON",
	FieldComposer:        "TCOM",
	FieldComposerSort:    "TSOC",
	FieldDate:            "TDRC",
	FieldComments:        "COMM",
	FieldPictureFront:    "APIC-F",
	FieldPictureBack:     "APIC-B",
}

var mp4Keys = [numFields]string{
	FieldAlbumArtist:     "aART",
	FieldAlbumArtistSort: "soaa",
	FieldAlbumTitle:      "©alb",
	FieldAlbumTitleSort:  "soal",
	FieldDiscNumber:      "disk",
	FieldDiscTotal:       "disk-t",
	FieldTrackArtist:     "©ART",
	FieldTrackArtistSort: "soar",
	FieldTrackTitle:      "©nam",
	FieldTrackTitleSort:  "sonm",
	FieldTrackNumber:     "trkn",
	FieldTrackTotal:      "trkn-t",
	FieldGenre:           "©gen",
	FieldComposer:        "©wrt",
	FieldComposerSort:    "soco",
	FieldDate:            "©day",
	FieldComments:        "©cmt",
	FieldPictureFront:    "covr-f",
	FieldPictureBack:     "covr-b",
}

// TagTable returns the canonical-field to backend-key mapping for a
// container kind. The map is built fresh on every call; the unknown
// kind maps every field to the empty string.
func TagTable(kind Kind) map[Field]string {
	table := make(map[Field]string, numFields)
	keys := backendKeys(kind)
	for _, f := range Fields() {
		if keys == nil {
			table[f] = ""
			continue
		}
		table[f] = keys[f]
	}
	return table
}

func backendKeys(kind Kind) *[numFields]string {
	switch kind {
	case KindApe, KindFlac:
		return &vorbisKeys
	case KindMP3, KindDsf:
		return &id3Keys
	case KindM4A:
		return &mp4Keys
	default:
		return nil
	}
}

// BackendKey returns the backend key for one field, failing with
// ErrUnknownField when the kind has no mapping.
func BackendKey(kind Kind, f Field) (string, error) {
	keys := backendKeys(kind)
	if keys == nil || f < 0 || f >= numFields {
		return "", ErrUnknownField
	}
	return keys[f], nil
}

// Rename pattern aliases. Every text field has a long form and at least
// one short form; the totals carry an extra historical spelling.
// Comments and covers have no alias on purpose: neither belongs in a
// filename.
var aliasTable = []struct {
	field   Field
	aliases []string
}{
	{FieldAlbumArtist, []string{"%album-artist", "%aa"}},
	{FieldAlbumArtistSort, []string{"%album-artist-sort", "%aas"}},
	{FieldAlbumTitle, []string{"%album-title", "%at"}},
	{FieldAlbumTitleSort, []string{"%album-title-sort", "%ats"}},
	{FieldDiscNumber, []string{"%disc-number", "%dn"}},
	{FieldDiscTotal, []string{"%disc-number-total", "%dnt", "%dt"}},
	{FieldTrackArtist, []string{"%track-artist", "%ta"}},
	{FieldTrackArtistSort, []string{"%track-artist-sort", "%tas"}},
	{FieldTrackTitle, []string{"%track-title", "%tt"}},
	{FieldTrackTitleSort, []string{"%track-title-sort", "%tts"}},
	{FieldTrackNumber, []string{"%track-number", "%tn"}},
	{FieldTrackTotal, []string{"%track-number-total", "%tnt", "%to"}},
	{FieldGenre, []string{"%track-genre", "%tg"}},
	{FieldComposer, []string{"%track-composer", "%tc"}},
	{FieldComposerSort, []string{"%track-composer-sort", "%tcs"}},
	{FieldDate, []string{"%track-date", "%td"}},
}

// Aliases returns the placeholder-alias to canonical-field mapping used
// by the filename renderer. The unknown kind has no aliases.
func Aliases(kind Kind) map[string]Field {
	aliases := make(map[string]Field)
	if backendKeys(kind) == nil {
		return aliases
	}
	for _, entry := range aliasTable {
		for _, alias := range entry.aliases {
			aliases[alias] = entry.field
		}
	}
	return aliases
}
