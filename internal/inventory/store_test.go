package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storeWithIDs(ids ...int) *Store {
	s := NewStore()
	for _, id := range ids {
		s.Add(id, "Title", "Artist")
	}
	return s
}

func ids(records []Record) []int {
	out := make([]int, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}

func TestAddPreservesOrder(t *testing.T) {
	s := NewStore()
	s.Add(3, "Kind of Blue", "Miles Davis")
	s.Add(1, "Abbey Road", "Beatles")
	s.Add(2, "Thriller", "Jackson")

	assert.Equal(t, []Record{
		{ID: 3, Title: "Kind of Blue", Artist: "Miles Davis"},
		{ID: 1, Title: "Abbey Road", Artist: "Beatles"},
		{ID: 2, Title: "Thriller", Artist: "Jackson"},
	}, s.List())
	assert.Equal(t, 3, s.Len())
}

func TestAddAcceptsDuplicateIDs(t *testing.T) {
	s := storeWithIDs(7, 7)
	assert.Equal(t, []int{7, 7}, ids(s.List()))
}

func TestRemoveDeletesFirstMatchOnly(t *testing.T) {
	s := NewStore()
	s.Add(1, "One", "A")
	s.Add(2, "Two (first)", "B")
	s.Add(2, "Two (second)", "C")
	s.Add(3, "Three", "D")

	result := s.Remove(2)

	assert.Equal(t, Removed, result)
	got := s.List()
	require.Len(t, got, 3)
	assert.Equal(t, []int{1, 2, 3}, ids(got))
	assert.Equal(t, "Two (second)", got[1].Title)
}

func TestRemoveMissLeavesSequenceUnchanged(t *testing.T) {
	s := storeWithIDs(1, 2, 3)

	result := s.Remove(99)

	assert.Equal(t, NotFound, result)
	assert.Equal(t, []int{1, 2, 3}, ids(s.List()))
}

func TestRemoveOnEmptyStore(t *testing.T) {
	assert.Equal(t, NotFound, NewStore().Remove(1))
}

func TestRemoveLastAndFirst(t *testing.T) {
	s := storeWithIDs(1, 2, 3)

	assert.Equal(t, Removed, s.Remove(3))
	assert.Equal(t, Removed, s.Remove(1))
	assert.Equal(t, []int{2}, ids(s.List()))
}

func TestListReturnsCopy(t *testing.T) {
	s := storeWithIDs(1, 2)

	listed := s.List()
	listed[0].Title = "mutated"

	assert.Equal(t, "Title", s.List()[0].Title)
	assert.Equal(t, 2, s.Len())
}

func TestListIsRestartable(t *testing.T) {
	s := storeWithIDs(4, 5, 6)
	assert.Equal(t, s.List(), s.List())
}

func TestListOnEmptyStoreIsEmptyNotNil(t *testing.T) {
	listed := NewStore().List()
	require.NotNil(t, listed)
	assert.Empty(t, listed)
}

func TestReplaceAllDiscardsPriorContents(t *testing.T) {
	s := storeWithIDs(1, 2, 3)

	s.ReplaceAll([]Record{{ID: 10, Title: "X", Artist: "Y"}, {ID: 11, Title: "Z", Artist: "W"}})

	assert.Equal(t, []int{10, 11}, ids(s.List()))
}

func TestReplaceAllDoesNotAliasInput(t *testing.T) {
	input := []Record{{ID: 1, Title: "A", Artist: "B"}}
	s := NewStore()
	s.ReplaceAll(input)

	input[0].Title = "changed"

	assert.Equal(t, "A", s.List()[0].Title)
}

func TestClear(t *testing.T) {
	s := storeWithIDs(1, 2)
	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.List())
}

func TestRemovalResultString(t *testing.T) {
	assert.Equal(t, "removed", Removed.String())
	assert.Equal(t, "not_found", NotFound.String())
	assert.Equal(t, "removal_result(9)", RemovalResult(9).String())
}

func TestRecordString(t *testing.T) {
	r := Record{ID: 1, Title: "Abbey Road", Artist: "Beatles"}
	assert.Equal(t, "1\tAbbey Road (by: Beatles)", r.String())
}
