package youtube

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidSchedule = errors.New("invalid schedule time")

// Browsers submit datetime-local values without a zone or seconds.
var localLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ParseScheduleTime reads an optional publish time. An empty string means
// publish now and returns nil. Zoneless values are read in loc.
func ParseScheduleTime(s string, loc *time.Location) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if loc == nil {
		loc = time.Local
	}

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return &t, nil
		}
	}
	return nil, ErrInvalidSchedule
}

// FormatPublishAt renders t the way the API expects publishAt.
func FormatPublishAt(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
