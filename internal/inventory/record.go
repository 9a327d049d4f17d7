package inventory

import "fmt"

// Record is one CD in the inventory.
type Record struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Artist string `json:"artist"`
}

// String renders the record the way the inventory listing shows it.
func (r Record) String() string {
	return fmt.Sprintf("%d\t%s (by: %s)", r.ID, r.Title, r.Artist)
}

// RemovalResult reports whether Remove found a record to delete.
type RemovalResult int

const (
	// Removed means the first record with the requested ID was deleted.
	Removed RemovalResult = iota
	// NotFound means no record carried the requested ID.
	NotFound
)

func (r RemovalResult) String() string {
	switch r {
	case Removed:
		return "removed"
	case NotFound:
		return "not_found"
	default:
		return fmt.Sprintf("removal_result(%d)", int(r))
	}
}
