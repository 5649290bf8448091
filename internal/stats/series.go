package stats

import (
	"strconv"
	"time"

	"github.com/dailydost/dailydost/internal/models"
)

// dateLayout matches the ledger's calendar-date encoding.
const dateLayout = "2006-01-02"

// Bucket is one labeled slot of a time series with per-status counts.
type Bucket struct {
	Label     string `json:"label"`
	Completed int    `json:"completed"`
	Failed    int    `json:"failed"`
	Skipped   int    `json:"skipped"`
}

// Granularity selects the calendar unit a series is bucketed by.
type Granularity int

const (
	Daily Granularity = iota
	Weekly
	Monthly
)

// span is one bucket's half-open date range [start, end).
type span struct {
	label string
	start time.Time
	end   time.Time
}

// Series buckets every history entry across all habits into n
// consecutive calendar spans of the given granularity, oldest first.
// One bucketing walk serves all three chart windows.
func Series(habits []models.Habit, ref time.Time, g Granularity, n int) []Bucket {
	spans := buildSpans(ref, g, n)
	buckets := make([]Bucket, len(spans))
	for i, s := range spans {
		buckets[i].Label = s.label
	}

	for _, habit := range habits {
		for _, entry := range habit.CompletionHistory {
			d, err := time.Parse(dateLayout, entry.Date)
			if err != nil {
				continue
			}
			for i, s := range spans {
				if d.Before(s.start) || !d.Before(s.end) {
					continue
				}
				switch entry.Status {
				case models.StatusCompleted:
					buckets[i].Completed++
				case models.StatusFailed:
					buckets[i].Failed++
				case models.StatusSkipped:
					buckets[i].Skipped++
				}
				break
			}
		}
	}
	return buckets
}

func buildSpans(ref time.Time, g Granularity, n int) []span {
	day := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC)
	spans := make([]span, 0, n)

	switch g {
	case Daily:
		// n calendar days ending at ref inclusive, labeled by weekday.
		for i := n - 1; i >= 0; i-- {
			start := day.AddDate(0, 0, -i)
			spans = append(spans, span{
				label: start.Format("Mon"),
				start: start,
				end:   start.AddDate(0, 0, 1),
			})
		}
	case Weekly:
		// n seven-day spans, the last ending the day before ref.
		for i := 0; i < n; i++ {
			start := day.AddDate(0, 0, -7*(n-i))
			spans = append(spans, span{
				label: "Week " + strconv.Itoa(i+1),
				start: start,
				end:   start.AddDate(0, 0, 7),
			})
		}
	case Monthly:
		// n calendar months ending at ref's month inclusive.
		for i := n - 1; i >= 0; i-- {
			start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -i, 0)
			spans = append(spans, span{
				label: start.Format("Jan"),
				start: start,
				end:   start.AddDate(0, 1, 0),
			})
		}
	}
	return spans
}

// DailySeries reports the 7 calendar days ending at ref inclusive.
func DailySeries(habits []models.Habit, ref time.Time) []Bucket {
	return Series(habits, ref, Daily, 7)
}

// WeeklySeries reports the 4 most recent full 7-day spans before ref.
func WeeklySeries(habits []models.Habit, ref time.Time) []Bucket {
	return Series(habits, ref, Weekly, 4)
}

// MonthlySeries reports the 6 calendar months ending at ref's month.
func MonthlySeries(habits []models.Habit, ref time.Time) []Bucket {
	return Series(habits, ref, Monthly, 6)
}

// CompletedAverage is the mean completed count per bucket, shown under
// each chart.
func CompletedAverage(buckets []Bucket) float64 {
	if len(buckets) == 0 {
		return 0
	}
	sum := 0
	for _, b := range buckets {
		sum += b.Completed
	}
	return float64(sum) / float64(len(buckets))
}
