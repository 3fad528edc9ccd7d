package holds

import (
	"slices"
	"time"

	"github.com/dmitrijs2005/bookit/internal/client/models"
)

// Active returns copies of the entries still valid at now, in their original
// order. The input is not modified.
func Active(entries []HoldEntry, now time.Time) []HoldEntry {
	result := make([]HoldEntry, 0, len(entries))
	for _, e := range entries {
		if e.ActiveAt(now) {
			result = append(result, e.clone())
		}
	}
	return result
}

// MinRemainingAt returns the smallest remaining time over the entries active
// at now, or 0 when none are active.
func MinRemainingAt(entries []HoldEntry, now time.Time) time.Duration {
	var (
		shortest time.Duration
		found    bool
	)
	for _, e := range entries {
		if !e.ActiveAt(now) {
			continue
		}
		r := e.Remaining(now)
		if !found || r < shortest {
			shortest = r
			found = true
		}
	}
	return shortest
}

// Payload maps the entries active at now to the create-appointment wire
// shape. Absent technician or resource references become nil. The result is
// never nil.
func Payload(entries []HoldEntry, now time.Time) []models.HoldPayloadItem {
	items := make([]models.HoldPayloadItem, 0, len(entries))
	for _, e := range entries {
		if !e.ActiveAt(now) {
			continue
		}
		items = append(items, models.HoldPayloadItem{
			TechnicianUID: optional(e.TechnicianUID),
			ResourceUID:   optional(e.ResourceUID),
			StartTime:     e.StartTime,
			EndTime:       e.EndTime,
		})
	}
	return items
}

// prune drops entries expired at now, reusing the backing array.
func prune(entries []HoldEntry, now time.Time) []HoldEntry {
	return slices.DeleteFunc(entries, func(e HoldEntry) bool {
		return !e.ActiveAt(now)
	})
}

func optional(uid string) *string {
	if uid == "" {
		return nil
	}
	return &uid
}
