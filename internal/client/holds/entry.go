package holds

import (
	"maps"
	"time"
)

// HoldDuration is how long a hold stays active after it is added.
const HoldDuration = 5 * time.Minute

// HoldInput is what a caller supplies when adding a hold. Nothing in it is
// validated: start/end ordering, overlaps and missing values are left to the
// booking API.
type HoldInput struct {
	// TechnicianUID and ResourceUID are optional; "" means absent.
	TechnicianUID string
	ResourceUID   string
	StartTime     string
	EndTime       string
	// Details carries display data (service, location, price...). It is
	// stored as is and dropped from the payload.
	Details map[string]string
}

// HoldEntry is one tentative booking selection.
type HoldEntry struct {
	ID            string
	CreatedAt     time.Time
	ExpiresAt     time.Time
	TechnicianUID string
	ResourceUID   string
	StartTime     string
	EndTime       string
	Details       map[string]string
}

// ActiveAt reports whether the hold is still valid at now.
func (e HoldEntry) ActiveAt(now time.Time) bool {
	return e.ExpiresAt.After(now)
}

// Remaining returns the time left until expiry, floored at zero.
func (e HoldEntry) Remaining(now time.Time) time.Duration {
	d := e.ExpiresAt.Sub(now)
	if d < 0 {
		return 0
	}
	return d
}

func (e HoldEntry) clone() HoldEntry {
	e.Details = maps.Clone(e.Details)
	return e
}
