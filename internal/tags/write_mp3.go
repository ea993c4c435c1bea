package tags

import (
	"errors"
	"fmt"
	"os"

	"github.com/bogem/id3v2/v2"
)

// id3Magic is the ID3v2 tag header magic.
const id3Magic = "ID3"

// writeMP3Tags updates the ID3v2 tag of an MP3 file in place. Text
// frames are replaced per frame ID, so frames outside the request
// survive. The tag is upgraded to ID3v2.4 with UTF-8 text on save.
func writeMP3Tags(path string, req *WriteRequest) error {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if errors.Is(err, id3v2.ErrUnsupportedVersion) {
		// ID3v2.2 or older, strip the tag and retag from scratch
		if stripErr := stripID3v2Tag(path); stripErr != nil {
			return fmt.Errorf("strip unsupported ID3v2.2 tag: %w", stripErr)
		}
		tag, err = id3v2.Open(path, id3v2.Options{Parse: true})
	}
	if err != nil {
		return fmt.Errorf("open file: %w", err)
	}
	defer tag.Close()

	tag.SetVersion(4)
	tag.SetDefaultEncoding(id3v2.EncodingUTF8)

	for _, field := range req.Tags.Fields() {
		value, _ := req.Tags.Get(field)
		switch field {
		case FieldTrackNumber, FieldTrackTotal, FieldDiscNumber, FieldDiscTotal:
			// packed frames, both halves handled below
		case FieldComments:
			setID3Comment(tag, value)
		case FieldPictureFront, FieldPictureBack:
			// pictures travel as raw bytes, not field values
		default:
			tag.AddTextFrame(id3Keys[field], id3v2.EncodingUTF8, value)
		}
	}

	setID3Numbering(tag, req, "TRCK", FieldTrackNumber, FieldTrackTotal)
	setID3Numbering(tag, req, "TPOS", FieldDiscNumber, FieldDiscTotal)

	setID3Picture(tag, id3v2.PTFrontCover, "Front Cover", req.FrontArt)
	setID3Picture(tag, id3v2.PTBackCover, "Back Cover", req.BackArt)

	if err := tag.Save(); err != nil {
		return fmt.Errorf("save tags: %w", err)
	}
	return nil
}

// setID3Numbering writes a TRCK or TPOS frame packing number and total.
// The half the request does not set is preserved from the frame's
// current value.
func setID3Numbering(tag *id3v2.Tag, req *WriteRequest, frameID string, number, total Field) {
	if !req.Tags.Has(number) && !req.Tags.Has(total) {
		return
	}

	curN, curT := splitNumbering(tag.GetTextFrame(frameID).Text)
	n, ok := req.Tags.Get(number)
	if !ok {
		n = curN
	}
	t, ok := req.Tags.Get(total)
	if !ok {
		t = curT
	}

	value := n
	if t != "" {
		if n == "" {
			n = "00"
		}
		value = n + "/" + t
	}
	if value == "" {
		return
	}
	tag.AddTextFrame(frameID, id3v2.EncodingUTF8, value)
}

// setID3Comment replaces every COMM frame with a single comment.
func setID3Comment(tag *id3v2.Tag, value string) {
	tag.DeleteFrames("COMM")
	tag.AddCommentFrame(id3v2.CommentFrame{
		Encoding: id3v2.EncodingUTF8,
		Language: "eng",
		Text:     value,
	})
}

// setID3Picture replaces the attached picture of one picture type,
// keeping pictures of other types.
func setID3Picture(tag *id3v2.Tag, picType byte, description string, data []byte) {
	if len(data) == 0 {
		return
	}

	var kept []id3v2.PictureFrame
	for _, framer := range tag.GetFrames("APIC") {
		if pic, ok := framer.(id3v2.PictureFrame); ok && pic.PictureType != picType {
			kept = append(kept, pic)
		}
	}
	tag.DeleteFrames("APIC")
	for _, pic := range kept {
		tag.AddAttachedPicture(pic)
	}

	tag.AddAttachedPicture(id3v2.PictureFrame{
		Encoding:    id3v2.EncodingUTF8,
		MimeType:    detectMimeType(data),
		PictureType: picType,
		Description: description,
		Picture:     data,
	})
}

// stripID3v2Tag removes the ID3v2 tag from an MP3 file. Used for
// ID3v2.2 tags, which the id3v2 library cannot parse.
func stripID3v2Tag(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	if len(data) < 10 || string(data[:3]) != id3Magic {
		return nil
	}

	// Syncsafe size in bytes 6-9 plus the 10-byte header.
	size := int(data[6])<<21 | int(data[7])<<14 | int(data[8])<<7 | int(data[9])
	tagSize := size + 10

	// ID3v2.4 footer flag adds another 10 bytes.
	if data[5]&0x10 != 0 {
		tagSize += 10
	}

	if tagSize >= len(data) {
		return fmt.Errorf("ID3v2 tag size (%d) exceeds file size (%d)", tagSize, len(data))
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat file: %w", err)
	}
	if err := os.WriteFile(path, data[tagSize:], info.Mode()); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}
