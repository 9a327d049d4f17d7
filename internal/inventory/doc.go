// Package inventory holds the in-memory CD collection for a running process.
//
// A Store is an ordered sequence of Records. Insertion order is the display
// and iteration order, IDs are not required to be unique, and removal deletes
// only the first record whose ID matches. The store never touches the
// filesystem; persistence lives in the snapshot package.
//
// A Store is owned by a single goroutine and performs no locking.
package inventory
