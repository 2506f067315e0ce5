// Package state holds the formatting configuration of a dtexplorer session
// and the transition function that drives it.
//
// # Overview
//
// Every form control raises exactly one Action. Reduce folds that action
// into the current Configuration and returns the next one:
//
//	key press ──> Action ──> Reduce(cfg, action) ──> next Configuration
//
// Configuration is a comparable value type. Options is backed by a fixed
// array, so assigning a Configuration copies it; there is no way for a
// reader to observe a later transition through an older value.
//
// # Core Types
//
// Configuration:
//   - Locale: full locale tag including the -u- suffix, or empty
//   - Extension: the one active numbering system / calendar / hour cycle
//   - Options: the ordered options record
//
// Options:
//   - One slot per Field, declaration order is serialisation order
//   - An empty slot means absent; there is no separate "undefined" marker
//   - hour12 is the only boolean field and is stored as "true"/"false"
//
// Store:
//   - Owns the Configuration and the selected moment for one session
//   - Records changing transitions so Undo can step back
//   - Snapshot returns both inputs plus a revision counter
//
// # Transition Rules
//
// The locale extension is kept in one field, so activating a numbering
// system necessarily deactivates a calendar or hour cycle and vice versa.
// The locale string is always recomposed from the base locale and the
// active extension:
//
//	SetLocale{"en-US"}                          -> "en-US"
//	SetLocaleExtension{ExtCalendar, "buddhist"} -> "en-US-u-ca-buddhist"
//	SetLocaleExtension{ExtHourCycle, "h23"}     -> "en-US-u-hc-h23"
//	SetLocale{"de-DE"}                          -> "de-DE-u-hc-h23"
//	SetLocale{Clear}                            -> "" (extension dropped too)
//
// Extension actions issued while no base locale is selected leave the
// configuration untouched.
//
// # Concurrency
//
// The store is owned by the Bubble Tea model (or a single CLI command) and
// is only touched from that goroutine, so it carries no locking.
package state
