// Package app wires the simpletools components into a runnable server.
//
// The serve command builds a Config from its flags and hands it to
// NewApplication, which initializes logging, loads configuration and calls
// InitializeServices to assemble the object graph:
//
//	store.UserStore ─┐
//	                 ├─→ simpletools.Provider ─→ server.Server
//	creds (cached) ──┘
//
// Run then serves until SIGINT/SIGTERM or context cancellation and stops
// everything gracefully.
package app
