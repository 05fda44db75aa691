// Package persistence saves and restores fake hardware property values so an
// emulator session can resume where it stopped.
//
// Snapshots are stored as indented JSON. A missing file is an empty state,
// not an error.
package persistence
