// etiq batch-edits music file tags and renames files from their tags.
// Values come from the command line, a TOML config file, or are
// inferred from the folder layout; the actual work runs per file
// through internal/batch.
package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/llehouerou/etiq/internal/batch"
	"github.com/llehouerou/etiq/internal/config"
	"github.com/llehouerou/etiq/internal/console"
	"github.com/llehouerou/etiq/internal/errmsg"
	"github.com/llehouerou/etiq/internal/genre"
	"github.com/llehouerou/etiq/internal/tags"
)

const version = "1.0.0"

var (
	cli        = config.NewCLI()
	configFile string
)

var rootCmd = &cobra.Command{
	Use:     "etiq [flags] <file|folder>...",
	Version: version,
	Short:   "Batch music tagger and file renamer.",
	Long: `etiq writes metadata tags to music files (FLAC, MP3, M4A, APE, DSF)
and optionally renames them from a tag-based pattern.

Tag values come from flags or the config file; disc and track numbering
can be inferred from the folder layout ("CD 2" parents, same-extension
siblings). Cover art is picked up from the file's folder, checked for a
sane aspect ratio and downscaled before embedding.`,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	f := rootCmd.Flags()

	f.StringVarP(&configFile, "config-file", "c", "", "config file to load (default "+config.DefaultPath()+" when given without a value)")
	f.Lookup("config-file").NoOptDefVal = config.DefaultPath()

	f.StringVar(&cli.AlbumArtist, "album-artist", "", "album artist")
	f.StringVar(&cli.AlbumArtistSort, "album-artist-sort", "", "album artist sort name")
	f.StringVar(&cli.AlbumTitle, "album-title", "", "album title")
	f.StringVar(&cli.AlbumTitleSort, "album-title-sort", "", "album title sort name")
	f.StringVar(&cli.DiscNumber, "disc-number", "", "disc number, also as \"2/3\" or \"2 of 3\"")
	f.BoolVar(&cli.DiscNumberCount, "disc-number-count", false, "infer disc number and total from the folder layout")
	f.StringVar(&cli.TrackArtist, "track-artist", "", "track artist")
	f.StringVar(&cli.TrackArtistSort, "track-artist-sort", "", "track artist sort name")
	f.StringVar(&cli.TrackAlbumArtist, "track-album-artist", "", "set both track artist and album artist")
	f.StringVar(&cli.TrackTitle, "track-title", "", "track title")
	f.StringVar(&cli.TrackTitleSort, "track-title-sort", "", "track title sort name")
	f.StringVar(&cli.TrackNumber, "track-number", "", "track number, also as \"2/12\" or \"2 of 12\"")
	f.BoolVar(&cli.TrackCount, "track-count", false, "infer track total (and number when not given) from sibling files")
	f.StringVar(&cli.TrackGenre, "track-genre", "", "genre name")
	f.IntVar(&cli.TrackGenreNumber, "track-genre-number", -1, "genre as an ID3v1 code (0-191)")
	f.StringVar(&cli.TrackComposer, "track-composer", "", "composer")
	f.StringVar(&cli.TrackComposerSort, "track-composer-sort", "", "composer sort name")
	f.StringVar(&cli.TrackDate, "track-date", "", "release date")
	f.StringVar(&cli.TrackComments, "track-comments", "", "comments")

	f.StringVar(&cli.PictureFront, "picture-front", "", "front cover image filename")
	f.StringVar(&cli.PictureBack, "picture-back", "", "back cover image filename")
	f.StringSliceVar(&cli.PictureFrontCandidates, "picture-front-candidate", nil, "fallback front cover filename (repeatable)")
	f.StringSliceVar(&cli.PictureBackCandidates, "picture-back-candidate", nil, "fallback back cover filename (repeatable)")
	f.StringSliceVar(&cli.PictureSearchFolders, "picture-search-folder", nil, "folder to search for covers, relative to the music file (repeatable)")
	f.IntVar(&cli.PictureMaxSize, "picture-max-size", -1, "longest cover edge in pixels before downscaling, 0 disables")

	f.StringVar(&cli.RenamePattern, "rename-file", "", "rename files from a pattern of %-placeholders, e.g. \"%dn-%tn %tt\"")

	f.BoolVarP(&cli.StopOnError, "stop-on-error", "s", false, "abort the batch on the first failing file")
	f.BoolVarP(&cli.DryRun, "dry-run", "r", false, "report what would be done without touching any file")
	f.BoolVarP(&cli.SingleThread, "single-thread", "1", false, "process files one at a time")
	f.BoolVarP(&cli.PrintSummary, "print-summary", "p", false, "print totals when the batch finishes")
	f.BoolVarP(&cli.DetailOff, "detail-off", "o", false, "suppress per-file detail lines")

	rootCmd.MarkFlagsMutuallyExclusive("disc-number", "disc-number-count")
	rootCmd.MarkFlagsMutuallyExclusive("track-genre", "track-genre-number")
}

func run(cmd *cobra.Command, args []string) error {
	console.Init()

	// A genre code from the CLI is rejected up front; one from the
	// config file merely warns later and is dropped.
	if cmd.Flags().Changed("track-genre-number") {
		if _, err := genre.Name(cli.TrackGenreNumber); err != nil {
			return fmt.Errorf("--track-genre-number: %w", err)
		}
	}

	cfg, err := config.Resolve(cli, configFile)
	if err != nil {
		return fmt.Errorf("%s", errmsg.Format(errmsg.OpResolveConfig, err))
	}

	files, err := collectFiles(args)
	if err != nil {
		return fmt.Errorf("%s", errmsg.Format(errmsg.OpCollectFiles, err))
	}
	if len(files) == 0 {
		console.Warning.Println("no music files found")
		return nil
	}

	summary, err := batch.Run(files, cfg)
	if cfg.PrintSummary {
		printSummary(summary)
	}
	return err
}

// collectFiles expands the command line arguments into the list of
// music files to process: folders recurse, plain files must carry a
// supported extension.
func collectFiles(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			if tags.IsMusicFile(arg) {
				files = append(files, arg)
			}
			continue
		}
		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && tags.IsMusicFile(path) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	sort.Strings(files)
	return files, nil
}

func printSummary(s batch.Summary) {
	console.Info.Printf("Processed %s file(s), skipped %s, in %s\n",
		humanize.Comma(int64(s.Processed)),
		humanize.Comma(int64(s.Skipped)),
		s.Elapsed.Round(time.Millisecond))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		console.Error.Printf("%v\n", err)
		os.Exit(1)
	}
}
