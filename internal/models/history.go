package models

// EntryStatus represents the outcome recorded for one day
type EntryStatus string

const (
	StatusCompleted EntryStatus = "completed"
	StatusFailed    EntryStatus = "failed"
	StatusSkipped   EntryStatus = "skipped"
)

// HistoryEntry is one day's outcome for one habit. Date is an ISO
// calendar date (YYYY-MM-DD), unique within a habit's history.
type HistoryEntry struct {
	Date   string      `json:"date"`
	Status EntryStatus `json:"status"`
}

// History is the per-habit ledger of dated completion outcomes.
// It holds at most one entry per date.
type History []HistoryEntry

// Upsert records status for date. If an entry for the date already
// exists its status is replaced in place, preserving the entry's
// position; otherwise a new entry is appended. Last write wins.
func (h History) Upsert(date string, status EntryStatus) History {
	for i := range h {
		if h[i].Date == date {
			h[i].Status = status
			return h
		}
	}
	return append(h, HistoryEntry{Date: date, Status: status})
}

// Remove deletes the entry for date if present. Removing an absent
// date is a no-op.
func (h History) Remove(date string) History {
	for i := range h {
		if h[i].Date == date {
			return append(h[:i], h[i+1:]...)
		}
	}
	return h
}

// Get returns the entry for date, if any.
func (h History) Get(date string) (HistoryEntry, bool) {
	for _, e := range h {
		if e.Date == date {
			return e, true
		}
	}
	return HistoryEntry{}, false
}
