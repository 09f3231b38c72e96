// Package config loads run settings from B36_* environment variables and the
// command line. Flags win over the environment.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "B36_"

// FolderModeArg is the positional argument that turns on per-date folders.
const FolderModeArg = "use_folders"

// Config holds the settings of one run.
type Config struct {
	// UseFolders nests copies under one folder per capture date.
	UseFolders bool `env:"USE_FOLDERS"`

	// DryRun logs what would be copied without touching the filesystem.
	DryRun bool `env:"DRY_RUN"`

	// Manifest writes manifest.csv into the run folder.
	Manifest bool `env:"MANIFEST"`

	Verbose bool `env:"VERBOSE"`

	// Extensions are matched as exact, case-sensitive file name suffixes.
	Extensions []string `env:"EXTENSIONS" envSeparator:"," envDefault:".jpg,.JPG"`
}

// Load parses environ (nil means the process environment) and then args,
// which excludes the program name. It returns flag.ErrHelp when -h was given.
func Load(args []string, environ map[string]string, usageOut io.Writer) (Config, error) {
	var cfg Config
	opts := env.Options{Prefix: EnvPrefix}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("config: parse environment: %w", err)
	}

	if err := parseFlags(&cfg, args, usageOut); err != nil {
		return Config{}, err
	}

	cfg.Extensions = normalizeExtensions(cfg.Extensions)
	return cfg, nil
}

func parseFlags(cfg *Config, args []string, usageOut io.Writer) error {
	fs := flag.NewFlagSet("base36-images", flag.ContinueOnError)
	fs.SetOutput(usageOut)
	fs.Usage = func() { printUsage(fs, usageOut) }

	fs.BoolVar(&cfg.UseFolders, "use-folders", cfg.UseFolders, "Nest copies in one folder per capture date")
	fs.BoolVar(&cfg.UseFolders, "f", cfg.UseFolders, "Same as --use-folders")
	fs.BoolVar(&cfg.DryRun, "dry-run", cfg.DryRun, "Show what would be copied without copying")
	fs.BoolVar(&cfg.DryRun, "n", cfg.DryRun, "Same as --dry-run")
	fs.BoolVar(&cfg.Manifest, "manifest", cfg.Manifest, "Write manifest.csv into the run folder")
	fs.BoolVar(&cfg.Manifest, "m", cfg.Manifest, "Same as --manifest")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "Log skipped files without a capture date")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "Same as --verbose")
	fs.Var(&extensionsValue{&cfg.Extensions}, "ext", "Comma separated file name suffixes to pick up (default .jpg,.JPG)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.Arg(0) == FolderModeArg {
		cfg.UseFolders = true
		// flag stops at the first positional; pick up flags given after it.
		if err := fs.Parse(fs.Args()[1:]); err != nil {
			return err
		}
	}
	return nil
}

func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintf(w, "base36-images - copy images under short names built from their capture time\n\n")
	fmt.Fprintf(w, "Usage:\n")
	fmt.Fprintf(w, "  base36-images [options] [%s]\n\n", FolderModeArg)
	fmt.Fprintf(w, "Options:\n")
	fs.PrintDefaults()
	fmt.Fprintf(w, "\nEnvironment:\n")
	fmt.Fprintf(w, "  %sUSE_FOLDERS, %sDRY_RUN, %sMANIFEST, %sVERBOSE, %sEXTENSIONS\n",
		EnvPrefix, EnvPrefix, EnvPrefix, EnvPrefix, EnvPrefix)
}

// Validate reports settings that cannot produce a run.
func (c *Config) Validate() error {
	if len(c.Extensions) == 0 {
		return errors.New("config: no file extensions configured")
	}
	for _, ext := range c.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			return fmt.Errorf("config: extension %q must start with a dot", ext)
		}
	}
	return nil
}

// extensionsValue implements flag.Value for a comma separated list.
type extensionsValue struct{ p *[]string }

func (v *extensionsValue) String() string {
	if v.p == nil {
		return ""
	}
	return strings.Join(*v.p, ",")
}

func (v *extensionsValue) Set(s string) error {
	*v.p = strings.Split(s, ",")
	return nil
}

func normalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	seen := make(map[string]bool, len(exts))
	for _, ext := range exts {
		ext = strings.TrimSpace(ext)
		if ext == "" || seen[ext] {
			continue
		}
		seen[ext] = true
		out = append(out, ext)
	}
	return out
}
