package pipeline

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// ManifestName is the file written into the run folder by UpdateManifest.
const ManifestName = "manifest.csv"

var manifestHeader = []string{
	"filename",        // Destination file name
	"destination",     // Path relative to the run folder
	"source",          // Original file name in the working directory
	"identifier",      // Name without extension
	"author",          // EXIF Artist, empty when absent
	"capture_time",    // EXIF layout
	"file_size_bytes", // Size in bytes
	"copied_at",       // When the copy was made
}

// UpdateManifest merges copies into <outputRoot>/manifest.csv and returns
// the number of rows added. Rows already present are kept, keyed by
// destination, and the file is rewritten sorted by destination.
func UpdateManifest(outputRoot string, copies []Copy, now time.Time) (int, error) {
	path := filepath.Join(outputRoot, ManifestName)

	existing := make(map[string][]string)
	if f, err := os.Open(path); err == nil {
		records, err := csv.NewReader(f).ReadAll()
		f.Close()
		if err != nil {
			return 0, fmt.Errorf("read manifest: %w", err)
		}
		if len(records) > 0 {
			for _, row := range records[1:] {
				if len(row) > 1 {
					existing[row[1]] = row
				}
			}
		}
	} else if !os.IsNotExist(err) {
		return 0, fmt.Errorf("open manifest: %w", err)
	}

	added := 0
	for _, c := range copies {
		rel := relTo(outputRoot, c.Destination)
		if _, ok := existing[rel]; ok {
			continue
		}
		existing[rel] = []string{
			filepath.Base(c.Destination),
			rel,
			filepath.Base(c.Source),
			c.Identifier,
			c.Author.Name,
			formatMoment(c),
			fmt.Sprintf("%d", c.Size),
			now.Format("2006-01-02 15:04:05"),
		}
		added++
	}

	keys := make([]string, 0, len(existing))
	for k := range existing {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create manifest: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(manifestHeader); err != nil {
		return 0, err
	}
	for _, k := range keys {
		if err := w.Write(existing[k]); err != nil {
			return 0, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return 0, fmt.Errorf("write manifest: %w", err)
	}
	return added, nil
}

func formatMoment(c Copy) string {
	m := c.Moment
	return fmt.Sprintf("%04d:%02d:%02d %02d:%02d:%02d", m.Year, m.Month, m.Day, m.Hour, m.Minute, m.Second)
}
