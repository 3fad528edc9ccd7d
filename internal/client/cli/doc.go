// Package cli provides the interactive bookit command-line client.
//
// It wires configuration, local storage, the booking API and the services
// into a REPL. The prompt shows who is signed in, the role they act in,
// connectivity, and a cart badge ("cart:2 04:31") with the number of held
// slots and the time until the first one lapses.
//
// Typical flow: codelogin or login, availability, hold a few slots, checkout
// before the holds expire. Admins may switch perspective with "role".
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
