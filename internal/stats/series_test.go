package stats

import (
	"testing"
	"time"

	"github.com/dailydost/dailydost/internal/models"
)

func date(s string) time.Time {
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestDailySeries(t *testing.T) {
	t.Parallel()

	habits := []models.Habit{
		{CompletionHistory: models.History{
			{Date: "2024-01-03", Status: models.StatusCompleted},
			{Date: "2024-01-07", Status: models.StatusCompleted},
		}},
	}

	buckets := DailySeries(habits, date("2024-01-07"))
	if len(buckets) != 7 {
		t.Fatalf("expected 7 buckets, got %d", len(buckets))
	}

	// buckets run 2024-01-01 .. 2024-01-07, oldest first
	if buckets[0].Completed != 0 {
		t.Errorf("first bucket (2024-01-01): completed = %d, want 0", buckets[0].Completed)
	}
	if buckets[2].Completed != 1 {
		t.Errorf("2024-01-03 bucket: completed = %d, want 1", buckets[2].Completed)
	}
	if buckets[6].Completed != 1 {
		t.Errorf("last bucket (2024-01-07): completed = %d, want 1", buckets[6].Completed)
	}

	// 2024-01-01 is a Monday
	wantLabels := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	for i, want := range wantLabels {
		if buckets[i].Label != want {
			t.Errorf("bucket %d label = %q, want %q", i, buckets[i].Label, want)
		}
	}
}

func TestDailySeriesCountsAcrossHabits(t *testing.T) {
	t.Parallel()

	habits := []models.Habit{
		{CompletionHistory: models.History{{Date: "2024-01-05", Status: models.StatusCompleted}}},
		{CompletionHistory: models.History{{Date: "2024-01-05", Status: models.StatusSkipped}}},
		{CompletionHistory: models.History{{Date: "2024-01-05", Status: models.StatusFailed}}},
	}

	buckets := DailySeries(habits, date("2024-01-07"))
	b := buckets[4] // 2024-01-05
	if b.Completed != 1 || b.Skipped != 1 || b.Failed != 1 {
		t.Errorf("2024-01-05 bucket = %+v, want one of each status", b)
	}
}

func TestWeeklySeries(t *testing.T) {
	t.Parallel()

	habits := []models.Habit{
		{CompletionHistory: models.History{
			{Date: "2024-01-02", Status: models.StatusCompleted}, // 27 days before ref: week 1
			{Date: "2024-01-28", Status: models.StatusCompleted}, // day before ref: week 4
			{Date: "2024-01-29", Status: models.StatusCompleted}, // ref itself: outside every span
		}},
	}

	buckets := WeeklySeries(habits, date("2024-01-29"))
	if len(buckets) != 4 {
		t.Fatalf("expected 4 buckets, got %d", len(buckets))
	}
	if buckets[0].Label != "Week 1" || buckets[3].Label != "Week 4" {
		t.Errorf("unexpected labels: %q .. %q", buckets[0].Label, buckets[3].Label)
	}
	if buckets[0].Completed != 1 {
		t.Errorf("week 1 completed = %d, want 1", buckets[0].Completed)
	}
	if buckets[3].Completed != 1 {
		t.Errorf("week 4 completed = %d, want 1", buckets[3].Completed)
	}
	total := 0
	for _, b := range buckets {
		total += b.Completed
	}
	if total != 2 {
		t.Errorf("entries on the reference day must fall outside the window; total = %d, want 2", total)
	}
}

func TestMonthlySeries(t *testing.T) {
	t.Parallel()

	habits := []models.Habit{
		{CompletionHistory: models.History{
			{Date: "2024-01-15", Status: models.StatusCompleted},
			{Date: "2024-06-01", Status: models.StatusSkipped},
			{Date: "2024-06-30", Status: models.StatusCompleted},
			{Date: "2023-12-31", Status: models.StatusCompleted}, // before the window
		}},
	}

	buckets := MonthlySeries(habits, date("2024-06-15"))
	if len(buckets) != 6 {
		t.Fatalf("expected 6 buckets, got %d", len(buckets))
	}

	wantLabels := []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"}
	for i, want := range wantLabels {
		if buckets[i].Label != want {
			t.Errorf("bucket %d label = %q, want %q", i, buckets[i].Label, want)
		}
	}

	if buckets[0].Completed != 1 {
		t.Errorf("Jan completed = %d, want 1", buckets[0].Completed)
	}
	if buckets[5].Completed != 1 || buckets[5].Skipped != 1 {
		t.Errorf("Jun bucket = %+v, want completed=1 skipped=1", buckets[5])
	}
}

func TestSeriesIgnoresMalformedDates(t *testing.T) {
	t.Parallel()

	habits := []models.Habit{
		{CompletionHistory: models.History{
			{Date: "not-a-date", Status: models.StatusCompleted},
			{Date: "2024-01-07", Status: models.StatusCompleted},
		}},
	}

	buckets := DailySeries(habits, date("2024-01-07"))
	total := 0
	for _, b := range buckets {
		total += b.Completed
	}
	if total != 1 {
		t.Errorf("malformed dates must be skipped; total completed = %d, want 1", total)
	}
}

func TestSeriesDeterministic(t *testing.T) {
	t.Parallel()

	habits := []models.Habit{
		{CompletionHistory: models.History{
			{Date: "2024-03-10", Status: models.StatusCompleted},
			{Date: "2024-03-11", Status: models.StatusSkipped},
		}},
	}
	ref := date("2024-03-12")

	first := DailySeries(habits, ref)
	second := DailySeries(habits, ref)
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("bucket %d differs between runs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestCompletedAverage(t *testing.T) {
	t.Parallel()

	buckets := []Bucket{{Completed: 2}, {Completed: 1}, {Completed: 0}, {Completed: 1}}
	if got := CompletedAverage(buckets); got != 1.0 {
		t.Errorf("CompletedAverage = %f, want 1.0", got)
	}
	if got := CompletedAverage(nil); got != 0 {
		t.Errorf("CompletedAverage(nil) = %f, want 0", got)
	}
}
