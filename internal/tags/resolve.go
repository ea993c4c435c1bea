package tags

import (
	"fmt"
	"strconv"

	"github.com/llehouerou/etiq/internal/config"
	"github.com/llehouerou/etiq/internal/console"
	"github.com/llehouerou/etiq/internal/genre"
	"github.com/llehouerou/etiq/internal/infer"
)

// Resolve turns the effective settings into the ordered set of fields
// to write for one file. Values come from the settings themselves; disc
// and track numbering can additionally be inferred from the file's
// place in the folder layout, which is the only reason this needs the
// path.
//
// track_album_artist overrides both artist settings at once. Combined
// numbering values ("2/3", "2 of 3") are split into number and total.
// A genre code outside the known table is dropped with a warning
// rather than failing the file.
func Resolve(cfg *config.Config, path string) (*Resolved, error) {
	r := NewResolved()

	albumArtist := cfg.AlbumArtist
	trackArtist := cfg.TrackArtist
	if cfg.TrackAlbumArtist != "" {
		albumArtist = cfg.TrackAlbumArtist
		trackArtist = cfg.TrackAlbumArtist
	}

	setIfGiven(r, FieldAlbumArtist, albumArtist)
	setIfGiven(r, FieldAlbumArtistSort, cfg.AlbumArtistSort)
	setIfGiven(r, FieldAlbumTitle, cfg.AlbumTitle)
	setIfGiven(r, FieldAlbumTitleSort, cfg.AlbumTitleSort)

	setNumbering(r, FieldDiscNumber, FieldDiscTotal, cfg.DiscNumber)
	if cfg.DiscNumberCount {
		number, err := infer.DiscNumber(path)
		if err != nil {
			return nil, fmt.Errorf("infer disc number: %w", err)
		}
		total, err := infer.DiscCount(path)
		if err != nil {
			return nil, fmt.Errorf("infer disc count: %w", err)
		}
		r.Set(FieldDiscNumber, fmt.Sprintf("%02d", number))
		r.Set(FieldDiscTotal, fmt.Sprintf("%02d", total))
	}

	setIfGiven(r, FieldTrackArtist, trackArtist)
	setIfGiven(r, FieldTrackArtistSort, cfg.TrackArtistSort)
	setIfGiven(r, FieldTrackTitle, cfg.TrackTitle)
	setIfGiven(r, FieldTrackTitleSort, cfg.TrackTitleSort)

	setNumbering(r, FieldTrackNumber, FieldTrackTotal, cfg.TrackNumber)
	if cfg.TrackCount {
		total, err := infer.TrackCount(path)
		if err != nil {
			return nil, fmt.Errorf("infer track count: %w", err)
		}
		r.Set(FieldTrackTotal, total)
		if !r.Has(FieldTrackNumber) {
			number, err := infer.TrackNumber(path)
			if err != nil {
				return nil, fmt.Errorf("infer track number: %w", err)
			}
			r.Set(FieldTrackNumber, fmt.Sprintf("%02d", number))
		}
	}

	switch {
	case cfg.TrackGenre != "":
		r.Set(FieldGenre, cfg.TrackGenre)
	case cfg.TrackGenreNumber >= 0:
		name, err := genre.Name(cfg.TrackGenreNumber)
		if err != nil {
			console.Warning.Printf("ignoring genre code %d: %v\n", cfg.TrackGenreNumber, err)
		} else {
			r.Set(FieldGenre, name)
		}
	}

	setIfGiven(r, FieldComposer, cfg.TrackComposer)
	setIfGiven(r, FieldComposerSort, cfg.TrackComposerSort)
	setIfGiven(r, FieldDate, cfg.TrackDate)
	setIfGiven(r, FieldComments, cfg.TrackComments)

	return r, nil
}

func setIfGiven(r *Resolved, f Field, value string) {
	if value != "" {
		r.Set(f, value)
	}
}

// setNumbering records an explicit disc or track value, splitting the
// combined "2/3" and "2 of 3" forms into number and total.
func setNumbering(r *Resolved, number, total Field, value string) {
	if value == "" {
		return
	}
	if !needSplit(value) {
		r.Set(number, value)
		return
	}
	n, t := splitPair(value)
	r.Set(number, strconv.Itoa(n))
	r.Set(total, strconv.Itoa(t))
}
