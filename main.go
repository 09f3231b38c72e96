// Base36 Images - copy camera output under short, nearly unique names
//
// This tool picks up the JPEG files in the current directory, reads their
// capture time and artist from EXIF metadata, and copies each one into a new
// run folder under a name such as 0n3-5-00qh-jqd.jpg:
//
//	0n    year since 2000, base 36
//	3     month, base 36
//	5     day, decimal
//	00qh  hour, minute and second joined as decimals, then base 36
//	jqd   initials of the artist ("xx" when unknown)
//
// Originals are never modified, and an existing copy is never overwritten.
//
// Usage:
//
//	base36-images              # Copy into base_36_images_of_<run time>/
//	base36-images use_folders  # Nest copies in one folder per capture date
//	base36-images -n           # Preview (dry-run)
//	base36-images -m           # Also write manifest.csv into the run folder
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"base36-images/internal/config"
	"base36-images/internal/exifmeta"
	"base36-images/internal/logging"
	"base36-images/internal/pipeline"
)

// Exit codes.
const (
	exitOK    = 0
	exitFault = 1 // a copy failed or the run could not start
	exitUsage = 2
)

// =============================================================================
// Main Entry Point
// =============================================================================

func main() {
	os.Exit(run(os.Args[1:], nil, time.Now(), os.Stdout, os.Stderr))
}

// run executes one invocation against the current directory and returns the
// process exit code. environ nil means the process environment.
func run(args []string, environ map[string]string, start time.Time, stdout, stderr io.Writer) int {
	cfg, err := config.Load(args, environ, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		fmt.Fprintf(stderr, "base36-images: %v\n", err)
		return exitUsage
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "base36-images: %v\n", err)
		return exitUsage
	}

	log := logging.New(stdout, cfg.Verbose)

	workDir, err := os.Getwd()
	if err != nil {
		log.Error("Cannot determine current directory: %v", err)
		return exitFault
	}

	rc := pipeline.NewRunContext(cfg, workDir, start)

	// Print banner
	log.Plain("%s", strings.Repeat("=", 50))
	log.Plain("Base36 Images")
	log.Plain("%s", strings.Repeat("=", 50))
	log.Plain("Note: Find renamed images in %s", rc.OutputRoot)
	if rc.UseFolders {
		log.Plain("Layout:  one folder per capture date")
	}
	if rc.DryRun {
		log.Plain("[DRY RUN MODE - nothing will be copied]")
	}
	log.Plain("")

	if err := rc.CreateOutputRoot(); err != nil {
		log.Error("%v", err)
		return exitFault
	}

	stats, err := pipeline.Run(rc, exifmeta.Reader{}, log)
	if err != nil {
		log.Error("%v", err)
		return exitFault
	}
	if !stats.OK() {
		return exitFault
	}
	return exitOK
}
