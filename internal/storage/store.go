package storage

import (
	"habitd/internal/clock"
	"habitd/pkg/habit"
)

// DayRecord is a stored day together with the ids of habits completed on it.
// A day only exists once something has been toggled for it.
type DayRecord struct {
	Date      clock.DateKey
	Completed []string
}

// Store persists habits and per-day completion records.
//
// ToggleCompletion must be atomic: the existence check and the matching
// insert or delete run in a single transaction, so concurrent toggles of the
// same (day, habit) pair can never leave more than one completion record.
// The day row is created lazily on first toggle; nothing else creates days.
type Store interface {
	PutHabit(h habit.Habit) error
	ListHabits() ([]habit.Habit, error)
	CompletedHabits(day clock.DateKey) ([]string, error)
	ToggleCompletion(day clock.DateKey, habitID string) (completed bool, err error)
	ListDays() ([]DayRecord, error)
	Close() error
}
