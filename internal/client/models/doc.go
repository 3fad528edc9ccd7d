// Package models defines the booking domain types shared by the client layers:
// users and roles, schedule objects returned by the booking API, the hold
// payload sent on checkout, and locally stored appointment receipts.
package models
