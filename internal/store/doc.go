// Package store persists the book collection as a single JSON document.
//
// Load reads the whole document into an ordered record slice; a missing file
// is a silent empty collection while a corrupt one surfaces an error the
// caller degrades from. Save overwrites the document wholesale through a
// temp-file rename so a failed write never truncates the previous copy.
//
// A sidecar advisory lock lets a session signal ownership of the document;
// contention is reported, not enforced, since the tool assumes one instance
// per library.
package store
