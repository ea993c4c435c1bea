package batch

import (
	"fmt"
	"sync"

	"github.com/llehouerou/etiq/internal/config"
	"github.com/llehouerou/etiq/internal/console"
	"github.com/llehouerou/etiq/internal/covers"
	"github.com/llehouerou/etiq/internal/rename"
	"github.com/llehouerou/etiq/internal/tags"
)

// processFile runs the full pipeline for one music file: detect the
// container kind, resolve the tag values, locate and load cover art,
// write everything through the format adapter, and finally rename the
// file when a pattern is configured. Stages run in that order because
// each consumes the previous one's output.
func processFile(path string, cfg *config.Config, out *output) error {
	kind := tags.DetectKind(path)
	if kind == tags.KindUnknown {
		return fmt.Errorf("%w: %s", tags.ErrUnsupportedContainer, path)
	}

	resolved, err := tags.Resolve(cfg, path)
	if err != nil {
		return fmt.Errorf("resolve tags: %w", err)
	}

	front, back, err := covers.Search(path, cfg)
	if err != nil {
		return fmt.Errorf("find cover art: %w", err)
	}

	req := &tags.WriteRequest{Tags: resolved}
	if front != nil {
		req.FrontArt, err = covers.Load(front.Path, cfg.PictureMaxSize, cfg.DryRun)
		if err != nil {
			return fmt.Errorf("load front cover: %w", err)
		}
		resolved.Set(tags.FieldPictureFront, front.Path)
	}
	if back != nil {
		req.BackArt, err = covers.Load(back.Path, cfg.PictureMaxSize, cfg.DryRun)
		if err != nil {
			return fmt.Errorf("load back cover: %w", err)
		}
		resolved.Set(tags.FieldPictureBack, back.Path)
	}

	if resolved.Len() > 0 {
		if !cfg.DryRun {
			if err := tags.Write(path, kind, req); err != nil {
				return fmt.Errorf("write tags: %w", err)
			}
		}

		// Stream properties only dress up the detail header, so a file
		// TagLib cannot probe still gets its tags written.
		var info *tags.AudioInfo
		if out.detailOn {
			var infoErr error
			if info, infoErr = tags.ReadAudioInfo(path); infoErr != nil {
				console.Warning.Printf("cannot read stream properties of %s: %v\n", path, infoErr)
			}
		}
		out.detail(path, kind, info, resolved, cfg.DryRun)
	}

	if cfg.RenamePattern != "" {
		if err := renameFile(path, kind, resolved, cfg, out); err != nil {
			return fmt.Errorf("rename: %w", err)
		}
	}
	return nil
}

// renameFile renders the configured pattern against the file's
// post-write tag state: what the file already carried, overlaid with
// the values this run resolved. A pattern can therefore use tags the
// run never touched.
func renameFile(path string, kind tags.Kind, resolved *tags.Resolved, cfg *config.Config, out *output) error {
	merged := tags.Merged(tags.State(path), resolved)

	values := make(map[string]string)
	for alias, field := range tags.Aliases(kind) {
		values[alias] = merged[field]
	}

	target, err := rename.Apply(path, cfg.RenamePattern, values, cfg.DryRun)
	if err != nil {
		return err
	}
	out.renamed(path, target, cfg.DryRun)
	return nil
}

// output serializes per-file reporting. Workers run concurrently, so
// the lines of one file are printed in one critical section instead of
// interleaving.
type output struct {
	mu       sync.Mutex
	detailOn bool
}

func newOutput(detailOn bool) *output {
	return &output{detailOn: detailOn}
}

func (o *output) detail(path string, kind tags.Kind, info *tags.AudioInfo, r *tags.Resolved, dryRun bool) {
	if !o.detailOn {
		return
	}
	o.mu.Lock()
	defer o.mu.Unlock()

	verb := "set"
	if dryRun {
		verb = "would set"
	}
	header := fmt.Sprintf("%s [%s]", path, kind)
	if info != nil {
		header += fmt.Sprintf(" %s, %d kbps, %d Hz", tags.FormatDuration(info.Duration), info.Bitrate, info.SampleRate)
	}
	console.Info.Println(header)
	for _, field := range r.Fields() {
		value, _ := r.Get(field)
		fmt.Printf("  %s %s: %s\n", verb, field, value)
	}
}

func (o *output) renamed(path, target string, dryRun bool) {
	if !o.detailOn || target == path {
		return
	}
	o.mu.Lock()
	defer o.mu.Unlock()

	if dryRun {
		console.Info.Printf("%s would be renamed to %s\n", path, target)
		return
	}
	console.Success.Printf("%s renamed to %s\n", path, target)
}
