// Package services contains the application services of the bookit CLI.
//
// Services sit between the REPL and the lower layers: they call the booking
// API through narrow client interfaces, keep the session and the hold store
// consistent with what the server said, and persist receipts locally.
//
//   - AuthService     code/admin login, profile refresh, logout, liveness
//   - BookingService  locations, availability, cart (holds), checkout, shifts
//   - AdminService    administrative listings and updates, admin role only
package services
