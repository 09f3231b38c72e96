// Package pipeline discovers images in the working directory, names them from
// their EXIF data and copies them into the run folder.
package pipeline

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"base36-images/internal/config"
	"base36-images/internal/exifmeta"
	"base36-images/internal/logging"
	"base36-images/internal/naming"
)

var (
	// ErrNoCaptureMoment marks an image whose EXIF data has no usable date.
	ErrNoCaptureMoment = errors.New("no capture date")

	// ErrCollision marks a destination that already exists.
	ErrCollision = errors.New("destination exists")
)

// MetadataReader extracts the fields used for naming from an image file.
type MetadataReader interface {
	Read(path string) (exifmeta.Metadata, error)
}

// RunContext carries everything a run needs to know about its environment.
type RunContext struct {
	WorkDir    string
	OutputRoot string
	UseFolders bool
	DryRun     bool
	Manifest   bool
	Extensions []string
}

// NewRunContext places the output root of a run started at start directly
// under workDir.
func NewRunContext(cfg config.Config, workDir string, start time.Time) RunContext {
	return RunContext{
		WorkDir:    workDir,
		OutputRoot: filepath.Join(workDir, naming.RunFolderName(start)),
		UseFolders: cfg.UseFolders,
		DryRun:     cfg.DryRun,
		Manifest:   cfg.Manifest,
		Extensions: cfg.Extensions,
	}
}

// CreateOutputRoot makes the run folder. An existing folder is reused.
func (rc RunContext) CreateOutputRoot() error {
	if rc.DryRun {
		return nil
	}
	if err := os.MkdirAll(rc.OutputRoot, 0o755); err != nil {
		return fmt.Errorf("create output folder: %w", err)
	}
	return nil
}

// Copy describes one image copied (or, in a dry run, to be copied).
type Copy struct {
	Source      string
	Destination string
	Identifier  string
	Author      exifmeta.Author
	Moment      naming.Moment
	Size        int64
}

// Run processes every discovered image in order. Per-file problems are
// logged and counted; the returned error is reserved for failures that stop
// the whole run.
func Run(rc RunContext, reader MetadataReader, log *logging.Logger) (RunStats, error) {
	var stats RunStats

	files, err := Discover(rc.WorkDir, rc.Extensions)
	if err != nil {
		return stats, fmt.Errorf("list %s: %w", rc.WorkDir, err)
	}
	stats.Total = len(files)
	log.Info("Found %d images", stats.Total)

	ex := &executor{rc: rc, reader: reader, claimed: make(map[string]bool)}
	var copies []Copy
	for _, src := range files {
		c, err := ex.copyOne(src)
		name := filepath.Base(src)
		switch {
		case err == nil:
			copies = append(copies, c)
			stats.Copied++
			stats.BytesCopied += c.Size
			if rc.DryRun {
				log.Info("[DRY] %s -> %s", name, relTo(rc.OutputRoot, c.Destination))
			} else {
				log.Info("%s -> %s", name, relTo(rc.OutputRoot, c.Destination))
			}
		case errors.Is(err, exifmeta.ErrUnreadable):
			log.Warn("%s isn't readable or doesn't contain exif data, ignoring it", name)
			stats.Skipped++
		case errors.Is(err, ErrNoCaptureMoment):
			log.Debug("%s has no capture date, ignoring it", name)
			stats.Skipped++
		case errors.Is(err, ErrCollision):
			log.Error("File %s exists", c.Destination)
			stats.Collisions++
		default:
			log.Error("Cannot copy %s: %v", name, err)
			stats.Failed++
		}
	}

	if rc.Manifest && !rc.DryRun && len(copies) > 0 {
		added, err := UpdateManifest(rc.OutputRoot, copies, time.Now())
		if err != nil {
			log.Error("Cannot update manifest: %v", err)
			stats.Failed++
		} else {
			log.Debug("Added %d entries to manifest", added)
		}
	}

	logSummary(rc, log, &stats)
	return stats, nil
}

// executor copies one file at a time. claimed holds the destinations handed
// out during a dry run, where nothing is written to disk.
type executor struct {
	rc      RunContext
	reader  MetadataReader
	claimed map[string]bool
}

// copyOne names src and copies it into the run folder. The returned Copy
// carries the destination even when err is ErrCollision.
func (ex *executor) copyOne(src string) (Copy, error) {
	rc := ex.rc
	md, err := ex.reader.Read(src)
	if err != nil {
		return Copy{}, err
	}
	if md.Moment == nil {
		return Copy{}, ErrNoCaptureMoment
	}

	acronym := naming.AuthorAcronym(md.Author.Name, md.Author.Present)
	id, _ := naming.Identifier(md.Moment, acronym)
	dest, _ := naming.OutputPath(rc.OutputRoot, md.Moment, acronym, rc.UseFolders)

	c := Copy{
		Source:      src,
		Destination: dest,
		Identifier:  id,
		Author:      md.Author,
		Moment:      *md.Moment,
	}

	if rc.DryRun {
		if exists(dest) || ex.claimed[dest] {
			return c, fmt.Errorf("%w: %s", ErrCollision, dest)
		}
		ex.claimed[dest] = true
		if fi, err := os.Stat(src); err == nil {
			c.Size = fi.Size()
		}
		return c, nil
	}

	if rc.UseFolders {
		if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			return c, fmt.Errorf("create date folder: %w", err)
		}
	}

	n, err := copyFile(src, dest)
	if err != nil {
		return c, err
	}
	c.Size = n
	return c, nil
}

func logSummary(rc RunContext, log *logging.Logger, stats *RunStats) {
	verb := "copied"
	if rc.DryRun {
		verb = "would be copied"
	}
	msg := fmt.Sprintf("Done: %d %s (%s), %d skipped, %d collisions, %d failed",
		stats.Copied, verb, FormatBytes(stats.BytesCopied), stats.Skipped, stats.Collisions, stats.Failed)
	if stats.OK() {
		log.Success("%s", msg)
	} else {
		log.Warn("%s", msg)
	}
}

func relTo(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return rel
}
