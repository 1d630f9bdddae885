package domain

import (
	"sort"
	"time"
)

// ClosedEntry is the archived record of an evicted tab. It is never mutated after creation.
type ClosedEntry struct {
	ID         string
	TabID      TabID
	Title      string
	URL        string
	FavIconURL string
	TimeClosed time.Time
}

// Expired reports whether the entry is older than retention at now.
func (e ClosedEntry) Expired(now time.Time, retention time.Duration) bool {
	return now.Sub(e.TimeClosed) > retention
}

// SortClosedEntries orders entries newest first, ties broken by id.
func SortClosedEntries(entries []ClosedEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		left, right := entries[i].TimeClosed, entries[j].TimeClosed
		if left.Equal(right) {
			return entries[i].ID < entries[j].ID
		}
		return left.After(right)
	})
}
