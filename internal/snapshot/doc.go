// Package snapshot persists an inventory to a single local file and reads it
// back.
//
// The Gateway is the sole owner of the on-disk format: one JSON document
// carrying a format marker, a version, the ordered records, and a SHA-256
// checksum of the canonical record encoding. Anything else found at the path
// (garbage bytes, truncated writes, foreign JSON) is reported as corrupt.
//
// # Load empties the target first
//
// Load clears its target before it knows whether the file exists. A missing
// or corrupt file therefore leaves the in-memory inventory empty, not in its
// previous state. Callers that want to keep their data after a failed load
// must hold a copy and restore it themselves.
//
// # Atomic save
//
// Save writes to a temporary file in the destination directory, syncs it,
// and renames it over the target. A failed save leaves the previous snapshot
// untouched and removes the temporary file.
package snapshot
