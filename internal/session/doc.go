// Package session drives the interactive menu loop.
//
// A session owns the catalog for its lifetime: it loads nothing itself (the
// caller supplies a loaded catalog and a store), repeatedly displays the
// six-option menu, dispatches validated choices to operation handlers, and
// persists the catalog when the user exits. The loop has a single state; the
// only exits are menu choice 6, which saves, and end of input, which does not.
package session
