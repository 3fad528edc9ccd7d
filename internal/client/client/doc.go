// Package client contains the client-side building blocks that talk to the
// outside world: the booking REST API and the local SQLite database.
//
// # Overview
//
//  1. A transport contract split by audience (AuthAPI, ScheduleAPI,
//     AdminAPI, all embedded in API) so services depend only on what they use.
//  2. HTTPClient, a JSON-over-HTTP implementation. It attaches the bearer
//     token from a TokenSource, tags requests with X-Request-ID, throttles
//     outbound calls with a token bucket and retries idempotent GETs when
//     the backend is unreachable.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) that opens
//     SQLite and applies the embedded goose migrations.
//
// # Error Handling
//
// Callers match errors with errors.Is / errors.As:
//
//   - ErrUnauthorized  HTTP 401, the session is no longer valid
//   - ErrUnavailable   transport failure or 502/503/504
//   - *APIError        any other non-2xx, carrying the server's "detail"
//   - common.ErrInvalidInput  request rejected locally before sending
package client
