package pipeline

import "fmt"

// RunStats counts what happened to each discovered file.
type RunStats struct {
	Total       int
	Copied      int
	Skipped     int // unreadable or without capture date
	Collisions  int
	Failed      int
	BytesCopied int64
}

// OK reports whether no copy failed. Skips and collisions are not failures.
func (s *RunStats) OK() bool {
	return s.Failed == 0
}

// FormatBytes renders a byte count with binary units, e.g. "1.5 KiB".
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < 4; n /= unit {
		div *= unit
		exp++
	}
	suffixes := []string{"KiB", "MiB", "GiB", "TiB", "PiB"}
	return fmt.Sprintf("%.1f %s", float64(bytes)/float64(div), suffixes[exp])
}
