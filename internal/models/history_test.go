package models

import (
	"reflect"
	"testing"
)

func TestHistoryUpsert(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		start  History
		date   string
		status EntryStatus
		want   History
	}{
		{
			name:   "append to empty history",
			start:  History{},
			date:   "2024-01-01",
			status: StatusCompleted,
			want:   History{{Date: "2024-01-01", Status: StatusCompleted}},
		},
		{
			name: "append new date preserves order",
			start: History{
				{Date: "2024-01-01", Status: StatusCompleted},
			},
			date:   "2024-01-02",
			status: StatusSkipped,
			want: History{
				{Date: "2024-01-01", Status: StatusCompleted},
				{Date: "2024-01-02", Status: StatusSkipped},
			},
		},
		{
			name: "amend replaces in place",
			start: History{
				{Date: "2024-01-01", Status: StatusSkipped},
				{Date: "2024-01-02", Status: StatusCompleted},
			},
			date:   "2024-01-01",
			status: StatusCompleted,
			want: History{
				{Date: "2024-01-01", Status: StatusCompleted},
				{Date: "2024-01-02", Status: StatusCompleted},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := tt.start.Upsert(tt.date, tt.status)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Upsert(%s, %s) = %v, want %v", tt.date, tt.status, got, tt.want)
			}
		})
	}
}

func TestHistoryUpsertIdempotent(t *testing.T) {
	t.Parallel()

	h := History{}
	h = h.Upsert("2024-03-15", StatusCompleted)
	once := make(History, len(h))
	copy(once, h)

	h = h.Upsert("2024-03-15", StatusCompleted)
	if !reflect.DeepEqual(h, once) {
		t.Errorf("second upsert changed the ledger: %v != %v", h, once)
	}
}

func TestHistoryUniqueDates(t *testing.T) {
	t.Parallel()

	h := History{}
	for _, s := range []EntryStatus{StatusCompleted, StatusSkipped, StatusCompleted} {
		h = h.Upsert("2024-06-01", s)
	}
	if len(h) != 1 {
		t.Fatalf("expected exactly one entry for the date, got %d", len(h))
	}
	if h[0].Status != StatusCompleted {
		t.Errorf("expected last write to win, got %s", h[0].Status)
	}
}

func TestHistoryRemove(t *testing.T) {
	t.Parallel()

	h := History{
		{Date: "2024-01-01", Status: StatusCompleted},
		{Date: "2024-01-02", Status: StatusSkipped},
	}

	h = h.Remove("2024-01-01")
	if _, ok := h.Get("2024-01-01"); ok {
		t.Error("expected 2024-01-01 to be removed")
	}
	if len(h) != 1 {
		t.Fatalf("expected 1 entry after remove, got %d", len(h))
	}

	// removing an absent date is a no-op
	h = h.Remove("2024-12-31")
	if len(h) != 1 {
		t.Errorf("remove of absent date changed the ledger, got %d entries", len(h))
	}
}
