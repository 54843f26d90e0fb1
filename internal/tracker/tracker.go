// Package tracker implements habit scheduling and the daily completion
// ledger on top of a storage.Store.
package tracker

import (
	"fmt"
	"strings"
	"time"

	"habitd/internal/clock"
	"habitd/internal/storage"
	"habitd/pkg/habit"

	"github.com/google/uuid"
)

// ValidationError rejects malformed input before anything is persisted.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

type Tracker struct {
	store storage.Store
	now   func() time.Time
}

func New(store storage.Store) *Tracker {
	return &Tracker{store: store, now: time.Now}
}

// NewWithClock injects the time source so "today" is deterministic in tests.
func NewWithClock(store storage.Store, now func() time.Time) *Tracker {
	return &Tracker{store: store, now: now}
}

// Today is the day identity of the current instant.
func (t *Tracker) Today() clock.DateKey {
	return clock.DayOf(t.now())
}

// CreateHabit validates and persists a new habit. CreatedAt is the current
// day's identity, so a habit created at any time of day is eligible for the
// whole of that day. Duplicate weekdays collapse to set semantics.
func (t *Tracker) CreateHabit(title string, weekDays []int) (habit.Habit, error) {
	if strings.TrimSpace(title) == "" {
		return habit.Habit{}, &ValidationError{Reason: "title is required"}
	}
	seen := [7]bool{}
	days := []int{}
	for _, wd := range weekDays {
		if wd < 0 || wd > 6 {
			return habit.Habit{}, &ValidationError{
				Reason: fmt.Sprintf("week day %d out of range 0-6", wd),
			}
		}
		if !seen[wd] {
			seen[wd] = true
			days = append(days, wd)
		}
	}

	h := habit.Habit{
		ID:        uuid.NewString(),
		Title:     title,
		CreatedAt: t.Today(),
		WeekDays:  days,
	}
	if err := t.store.PutHabit(h); err != nil {
		return habit.Habit{}, fmt.Errorf("store habit: %w", err)
	}
	return h, nil
}

// PossibleHabits returns every habit eligible on the given day: created on
// or before it and scheduled for its weekday. Evaluated fresh on every call;
// habit creation is append-only, so eligibility never needs invalidation.
func (t *Tracker) PossibleHabits(day clock.DateKey) ([]habit.Habit, error) {
	all, err := t.store.ListHabits()
	if err != nil {
		return nil, fmt.Errorf("list habits: %w", err)
	}

	weekday := day.Weekday()
	out := []habit.Habit{}
	for _, h := range all {
		if h.ExistsOn(day) && h.ScheduledOn(weekday) {
			out = append(out, h)
		}
	}
	return out, nil
}

// ListHabits returns every habit ever created.
func (t *Tracker) ListHabits() ([]habit.Habit, error) {
	return t.store.ListHabits()
}

// DaySummary pairs the habits possible on a day with the ids actually
// completed on it. A day nothing was ever toggled for simply reports no
// completions.
func (t *Tracker) DaySummary(day clock.DateKey) (habit.DaySummary, error) {
	possible, err := t.PossibleHabits(day)
	if err != nil {
		return habit.DaySummary{}, err
	}
	completed, err := t.store.CompletedHabits(day)
	if err != nil {
		return habit.DaySummary{}, fmt.Errorf("list completions: %w", err)
	}
	return habit.DaySummary{PossibleHabits: possible, CompletedHabits: completed}, nil
}

// Toggle flips the completion state for (day, habitID) and reports the new
// state. Toggling is deliberately decoupled from scheduling: no eligibility
// check happens here, and an unknown habit id toggles vacuously.
func (t *Tracker) Toggle(habitID string, day clock.DateKey) (bool, error) {
	completed, err := t.store.ToggleCompletion(day, habitID)
	if err != nil {
		return false, fmt.Errorf("toggle completion: %w", err)
	}
	return completed, nil
}

// Summary aggregates every stored day into completed/eligible counts using
// the same eligibility predicate as PossibleHabits. Days without a stored
// row never appear.
func (t *Tracker) Summary() ([]habit.SummaryEntry, error) {
	habits, err := t.store.ListHabits()
	if err != nil {
		return nil, fmt.Errorf("list habits: %w", err)
	}
	days, err := t.store.ListDays()
	if err != nil {
		return nil, fmt.Errorf("list days: %w", err)
	}

	out := []habit.SummaryEntry{}
	for _, d := range days {
		amount := 0
		weekday := d.Date.Weekday()
		for _, h := range habits {
			if h.ExistsOn(d.Date) && h.ScheduledOn(weekday) {
				amount++
			}
		}
		out = append(out, habit.SummaryEntry{
			Date:      d.Date,
			Completed: float64(len(d.Completed)),
			Amount:    float64(amount),
		})
	}
	return out, nil
}
