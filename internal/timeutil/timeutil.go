package timeutil

import (
	"time"
	_ "time/tzdata"
)

const (
	// ISOLayout renders UTC timestamps with millisecond precision and a Z suffix.
	ISOLayout = "2006-01-02T15:04:05.000Z"
	// LocalLayout renders en-US style local timestamps, e.g. 1/2/2006, 3:04:05 PM.
	LocalLayout = "1/2/2006, 3:04:05 PM"
)

// FormatISO formats t in UTC as YYYY-MM-DDTHH:MM:SS.mmmZ.
func FormatISO(t time.Time) string {
	return t.UTC().Format(ISOLayout)
}

// FormatLocal formats t in loc using LocalLayout. A nil loc falls back to UTC.
func FormatLocal(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(LocalLayout)
}

// LoadLocation resolves an IANA zone name such as "America/Denver", or returns nil
// when tz is empty or unknown.
func LoadLocation(tz string) *time.Location {
	if tz == "" {
		return nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil
	}
	return loc
}
