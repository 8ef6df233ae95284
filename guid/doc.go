// Package guid provides a small GUID value type and a monotonic
// time-based generator on top of github.com/google/uuid.
//
// GUID is a comparable value type suitable for map keys. New returns
// random (v4) identifiers; NewTimeBased and Generator return time-based
// (v1) identifiers whose embedded timestamps order them by creation
// within a process.
package guid
