package naming

import "time"

// Moment is a calendar date plus a time of day, as read from image metadata.
// Time zones are not part of a Moment; the fields are taken as written.
type Moment struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second int
}

// MomentOf returns the Moment for t in t's own location.
func MomentOf(t time.Time) Moment {
	return Moment{
		Year:   t.Year(),
		Month:  int(t.Month()),
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: t.Second(),
	}
}
