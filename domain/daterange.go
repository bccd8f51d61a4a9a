package domain

import (
	"fmt"
	"time"
)

// Timestamped is a record that carries the backend's createdAt value.
type Timestamped interface {
	CreatedTime() (time.Time, bool)
}

var createdLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"}

func parseCreated(s string) (time.Time, bool) {
	for _, layout := range createdLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DateRange selects records created between From and To, both inclusive.
type DateRange struct {
	From time.Time
	To   time.Time
}

// ParseDateRange reads the from/to query values. ok is false when both are
// empty. To is moved to the last millisecond of its day.
func ParseDateRange(from, to string) (r DateRange, ok bool, err error) {
	if from == "" && to == "" {
		return DateRange{}, false, nil
	}
	if from == "" || to == "" {
		return DateRange{}, false, fmt.Errorf("%w: both from and to dates are required", ErrInvalidRange)
	}

	start, ok := parseCreated(from)
	if !ok {
		return DateRange{}, false, fmt.Errorf("%w: bad from date %q", ErrInvalidRange, from)
	}
	end, ok := parseCreated(to)
	if !ok {
		return DateRange{}, false, fmt.Errorf("%w: bad to date %q", ErrInvalidRange, to)
	}
	y, m, d := end.Date()
	end = time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), end.Location())

	return DateRange{From: start, To: end}, true, nil
}

// Contains reports whether rec was created inside the range. Records without
// a readable timestamp never match.
func (r DateRange) Contains(rec Record) bool {
	ts, ok := rec.(Timestamped)
	if !ok {
		return false
	}
	created, ok := ts.CreatedTime()
	if !ok {
		return false
	}
	return !created.Before(r.From) && !created.After(r.To)
}
