package habit

import (
	"habitd/internal/clock"
)

// Habit is a recurring habit definition. Habits are immutable after
// creation; completion state lives in per-day records, not here.
type Habit struct {
	ID        string        `json:"id"`
	Title     string        `json:"title"`
	CreatedAt clock.DateKey `json:"createdAt"`
	WeekDays  []int         `json:"weekDays"`
}

// ScheduledOn reports whether the habit recurs on the given weekday index
// (0=Sunday through 6=Saturday).
func (h Habit) ScheduledOn(weekday int) bool {
	for _, wd := range h.WeekDays {
		if wd == weekday {
			return true
		}
	}
	return false
}

// ExistsOn reports whether the habit had been created on or before the day.
func (h Habit) ExistsOn(day clock.DateKey) bool {
	return h.CreatedAt <= day
}

// DaySummary is the completion state of a single day: every habit scheduled
// for that day's weekday that already existed, and the ids of those actually
// marked done.
type DaySummary struct {
	PossibleHabits  []Habit  `json:"possibleHabits"`
	CompletedHabits []string `json:"completedHabits"`
}

// SummaryEntry is one day's aggregate counts. Counts are float64 so
// consumers can compute completed/amount ratios without conversion.
type SummaryEntry struct {
	Date      clock.DateKey `json:"date"`
	Completed float64       `json:"completed"`
	Amount    float64       `json:"amount"`
}
