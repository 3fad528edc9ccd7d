// Package receipts keeps a local record of appointments confirmed by the
// booking API, so the CLI can show them without a round trip.
//
// Timestamps are stored as RFC 3339 text in UTC. Optional references
// (technician, resource) are stored as NULL when empty.
package receipts
