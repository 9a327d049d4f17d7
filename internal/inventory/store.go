package inventory

// Store is the canonical in-memory record sequence.
type Store struct {
	records []Record
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Add appends a new record to the end of the sequence. Duplicate IDs are
// accepted.
func (s *Store) Add(id int, title, artist string) {
	s.records = append(s.records, Record{ID: id, Title: title, Artist: artist})
}

// Remove deletes the first record whose ID equals id and stops scanning.
// Later records sharing the same ID are left in place.
func (s *Store) Remove(id int) RemovalResult {
	for i, record := range s.records {
		if record.ID != id {
			continue
		}
		s.records = append(s.records[:i], s.records[i+1:]...)
		return Removed
	}
	return NotFound
}

// List returns a copy of the records in insertion order.
func (s *Store) List() []Record {
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// Len reports the number of records held.
func (s *Store) Len() int {
	return len(s.records)
}

// ReplaceAll discards the current contents and appends records in order.
func (s *Store) ReplaceAll(records []Record) {
	s.Clear()
	s.records = append(s.records, records...)
}

// Clear empties the store.
func (s *Store) Clear() {
	s.records = nil
}
