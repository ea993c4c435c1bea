package tags

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-flac/flacpicture"
	"github.com/go-flac/flacvorbis"
	"github.com/go-flac/go-flac"
)

// writeFlacTags rewrites the Vorbis comment block of a FLAC file,
// carrying over every existing comment whose key the request does not
// set. Files prefixed with a stray ID3v2 tag are stripped first, since
// the FLAC parser chokes on them.
func writeFlacTags(path string, req *WriteRequest) error {
	f, id3Size, err := parseFlacWithID3Prefix(path)
	if err != nil {
		return fmt.Errorf("parse file: %w", err)
	}

	if id3Size > 0 {
		if err := stripID3v2Prefix(path, id3Size); err != nil {
			return fmt.Errorf("strip ID3v2 prefix: %w", err)
		}
		f, err = flac.ParseFile(path)
		if err != nil {
			return fmt.Errorf("parse file after ID3 strip: %w", err)
		}
	}

	table := TagTable(KindFlac)

	// Keys this write owns. Existing comments under them are replaced
	// instead of carried over.
	replaced := make(map[string]bool)
	for _, field := range req.Tags.Fields() {
		if !field.IsPicture() {
			replaced[table[field]] = true
		}
	}

	cmtIdx := -1
	var existing *flacvorbis.MetaDataBlockVorbisComment
	for i, meta := range f.Meta {
		if meta.Type == flac.VorbisComment {
			cmtIdx = i
			if parsed, parseErr := flacvorbis.ParseFromMetaDataBlock(*meta); parseErr == nil {
				existing = parsed
			}
			break
		}
	}

	cmts := flacvorbis.New()
	if existing != nil {
		for _, comment := range existing.Comments {
			key, value, ok := strings.Cut(comment, "=")
			if !ok || replaced[strings.ToUpper(key)] {
				continue
			}
			if err := cmts.Add(key, value); err != nil {
				return fmt.Errorf("carry over %s: %w", key, err)
			}
		}
	}

	for _, field := range req.Tags.Fields() {
		if field.IsPicture() {
			continue
		}
		value, _ := req.Tags.Get(field)
		if err := cmts.Add(table[field], value); err != nil {
			return fmt.Errorf("add %s: %w", field, err)
		}
	}

	cmtBlock := cmts.Marshal()
	if cmtIdx >= 0 {
		f.Meta[cmtIdx] = &cmtBlock
	} else {
		f.Meta = append(f.Meta, &cmtBlock)
	}

	if err := embedFlacPicture(f, flacpicture.PictureTypeFrontCover, "Front Cover", req.FrontArt); err != nil {
		return err
	}
	if err := embedFlacPicture(f, flacpicture.PictureTypeBackCover, "Back Cover", req.BackArt); err != nil {
		return err
	}

	if err := f.Save(path); err != nil {
		return fmt.Errorf("save file: %w", err)
	}
	return nil
}

// embedFlacPicture replaces the picture blocks of one picture type with
// a single new image. Blocks of other types stay.
func embedFlacPicture(f *flac.File, picType flacpicture.PictureType, description string, data []byte) error {
	if len(data) == 0 {
		return nil
	}

	kept := make([]*flac.MetaDataBlock, 0, len(f.Meta))
	for _, meta := range f.Meta {
		if meta.Type == flac.Picture {
			if pic, err := flacpicture.ParseFromMetaDataBlock(*meta); err == nil && pic.PictureType == picType {
				continue
			}
		}
		kept = append(kept, meta)
	}
	f.Meta = kept

	pic, err := flacpicture.NewFromImageData(picType, description, data, detectMimeType(data))
	if err != nil {
		return fmt.Errorf("create picture: %w", err)
	}
	picBlock := pic.Marshal()
	f.Meta = append(f.Meta, &picBlock)
	return nil
}

// parseFlacWithID3Prefix parses a FLAC file, detecting an ID3v2 tag
// glued in front of the stream. It returns the parsed file, or the size
// of the ID3v2 prefix that must be stripped before parsing can work.
func parseFlacWithID3Prefix(path string) (*flac.File, int64, error) {
	f, err := flac.ParseFile(path)
	if err == nil {
		return f, 0, nil
	}

	file, openErr := os.Open(path)
	if openErr != nil {
		return nil, 0, err
	}
	defer file.Close()

	header := make([]byte, 10)
	if _, readErr := io.ReadFull(file, header); readErr != nil {
		return nil, 0, err
	}
	if !bytes.Equal(header[:3], []byte(id3Magic)) {
		return nil, 0, err
	}

	// Tag size lives in bytes 6-9 as a syncsafe integer, 7 bits per
	// byte, not counting the 10-byte header itself.
	id3Size := int64(10)
	id3Size += int64(header[6]&0x7f)<<21 |
		int64(header[7]&0x7f)<<14 |
		int64(header[8]&0x7f)<<7 |
		int64(header[9]&0x7f)

	if header[5]&0x40 != 0 {
		extHeader := make([]byte, 4)
		if _, seekErr := file.Seek(10, io.SeekStart); seekErr != nil {
			return nil, 0, err
		}
		if _, readErr := io.ReadFull(file, extHeader); readErr != nil {
			return nil, 0, err
		}
		id3Size += int64(extHeader[0]&0x7f)<<21 |
			int64(extHeader[1]&0x7f)<<14 |
			int64(extHeader[2]&0x7f)<<7 |
			int64(extHeader[3]&0x7f)
	}

	if _, seekErr := file.Seek(id3Size, io.SeekStart); seekErr != nil {
		return nil, 0, err
	}
	flacMagic := make([]byte, 4)
	if _, readErr := io.ReadFull(file, flacMagic); readErr != nil {
		return nil, 0, err
	}
	if !bytes.Equal(flacMagic, []byte("fLaC")) {
		return nil, 0, errors.New("no fLaC marker found after ID3v2 header")
	}

	return nil, id3Size, nil
}

// stripID3v2Prefix removes an ID3v2 prefix by rewriting the file,
// preserving its permissions.
func stripID3v2Prefix(path string, id3Size int64) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if int64(len(data)) <= id3Size {
		return errors.New("file too small to strip ID3v2 prefix")
	}

	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data[id3Size:], info.Mode().Perm())
}
