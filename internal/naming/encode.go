package naming

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// baseYear is subtracted from the capture year; two base-36 digits then
	// cover 2000 through 3295.
	baseYear = 2000

	yearWidth = 2
	timeWidth = 4
)

// EncodeYear returns (year-2000) in base 36, left-padded to two digits.
// Years outside [2000, 3295] do not fit and produce an unspecified string.
func EncodeYear(year int) string {
	return padLeft(strconv.FormatInt(int64(year-baseYear), 36), yearWidth)
}

// ParseYearOffset reverses EncodeYear and returns year-2000.
func ParseYearOffset(s string) (int, error) {
	if len(s) != yearWidth {
		return 0, fmt.Errorf("naming: year component %q is not %d characters", s, yearWidth)
	}
	n, err := strconv.ParseInt(s, 36, 64)
	if err != nil {
		return 0, fmt.Errorf("naming: year component %q: %w", s, err)
	}
	return int(n), nil
}

// Date encodes the date part of m: <year><month>-<day>. The month is base 36
// and the day stays decimal. ok is false when m is nil.
func Date(m *Moment) (string, bool) {
	if m == nil {
		return "", false
	}
	return EncodeYear(m.Year) + strconv.FormatInt(int64(m.Month), 36) + "-" + strconv.Itoa(m.Day), true
}

// Time encodes the time of day of m. Hour, minute and second are joined as
// unpadded decimals (9:05:03 becomes 953), and that number is written in base
// 36, padded to four digits. Different times can share an encoding
// (1:23:45 and 12:3:45 both join to 12345); the format is kept for
// compatibility with names already produced.
func Time(m *Moment) (string, bool) {
	if m == nil {
		return "", false
	}
	joined := strconv.Itoa(m.Hour) + strconv.Itoa(m.Minute) + strconv.Itoa(m.Second)
	n, err := strconv.ParseInt(joined, 10, 64)
	if err != nil {
		return "", false
	}
	return padLeft(strconv.FormatInt(n, 36), timeWidth), true
}

// DateTime joins Date and Time with a dash.
func DateTime(m *Moment) (string, bool) {
	date, ok := Date(m)
	if !ok {
		return "", false
	}
	tod, ok := Time(m)
	if !ok {
		return "", false
	}
	return date + "-" + tod, true
}

// Identifier is the full image name without extension:
// <date>-<time>-<acronym>.
func Identifier(m *Moment, acronym string) (string, bool) {
	dt, ok := DateTime(m)
	if !ok {
		return "", false
	}
	return dt + "-" + acronym, true
}

// RunFolderName names the output folder of a run started at t.
func RunFolderName(t time.Time) string {
	m := MomentOf(t)
	dt, _ := DateTime(&m)
	return RunFolderPrefix + dt
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}
