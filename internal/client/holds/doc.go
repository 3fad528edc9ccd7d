// Package holds implements the booking hold store: a client-side cart of
// tentative bookings that each stay valid for HoldDuration.
//
// Entries are never evicted by a timer. An entry whose deadline has passed is
// simply left out of every read (ActiveEntries, TotalCount, MinRemaining,
// HoldPayload) and is physically dropped the next time the store prunes, which
// happens at the start of Add and HoldPayload or when PruneExpired is called
// directly.
//
// Every operation samples the clock exactly once, so within one call an entry
// cannot be both expired and active. Reads are recomputed from scratch on each
// call; callers that want a countdown poll MinRemaining.
//
// Typical usage in a checkout flow:
//
//	store := holds.New()
//	id := store.Add(holds.HoldInput{TechnicianUID: "t1", StartTime: start, EndTime: end})
//	...
//	payload := store.HoldPayload()
//	if err := api.CreateAppointment(ctx, payload); err == nil {
//	    store.Clear()
//	}
package holds
