// Package library defines the Book record and the ordered Catalog that holds
// a session's collection.
//
// The Catalog preserves insertion order, permits duplicate titles, and is
// mutated only by Add (append) and RemoveAt (delete one). Title lookups for
// removal use exact case-insensitive equality while Search uses substring
// containment; the asymmetry is deliberate — removal needs precision, search
// aids discovery. Statistics group genre and author values by exact string,
// reported in first-occurrence order.
//
// The Catalog is owned by a single goroutine for the life of a session and
// performs no locking of its own.
package library
