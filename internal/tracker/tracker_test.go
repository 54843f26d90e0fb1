package tracker

import (
	"errors"
	"testing"
	"time"

	"habitd/internal/clock"
	"habitd/internal/storage/memory"
)

// 2024-01-10 is a Wednesday (weekday 3).
func fixedNow() time.Time {
	return time.Date(2024, 1, 10, 14, 30, 0, 0, time.UTC)
}

func newTestTracker() *Tracker {
	return NewWithClock(memory.New(), fixedNow)
}

func TestCreateHabit_Validation(t *testing.T) {
	tr := newTestTracker()

	if _, err := tr.CreateHabit("", []int{1}); err == nil {
		t.Fatal("expected error for empty title")
	}
	if _, err := tr.CreateHabit("   ", []int{1}); err == nil {
		t.Fatal("expected error for blank title")
	}
	_, err := tr.CreateHabit("Exercise", []int{1, 7})
	if err == nil {
		t.Fatal("expected error for weekday out of range")
	}
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}

	// Nothing persisted after rejected input.
	habits, err := tr.ListHabits()
	if err != nil {
		t.Fatalf("ListHabits failed: %v", err)
	}
	if len(habits) != 0 {
		t.Fatalf("expected no habits after rejected creates, got %d", len(habits))
	}
}

func TestCreateHabit_CreatedAtIsToday(t *testing.T) {
	tr := newTestTracker()

	h, err := tr.CreateHabit("Drink water", []int{0, 1, 2, 3, 4, 5, 6})
	if err != nil {
		t.Fatalf("CreateHabit failed: %v", err)
	}
	if h.CreatedAt != "2024-01-10" {
		t.Fatalf("got createdAt %s want 2024-01-10", h.CreatedAt)
	}
	if h.ID == "" {
		t.Fatal("expected a generated id")
	}
}

func TestCreateHabit_DuplicateWeekDaysCollapse(t *testing.T) {
	tr := newTestTracker()

	h, err := tr.CreateHabit("Exercise", []int{3, 1, 3, 1})
	if err != nil {
		t.Fatalf("CreateHabit failed: %v", err)
	}
	if len(h.WeekDays) != 2 {
		t.Fatalf("expected duplicates to collapse, got %v", h.WeekDays)
	}
}

func TestPossibleHabits_WeekdayMatch(t *testing.T) {
	tr := newTestTracker()

	// Today is Wednesday (3): scheduled habit shows up, other doesn't.
	scheduled, err := tr.CreateHabit("Exercise", []int{3})
	if err != nil {
		t.Fatalf("CreateHabit failed: %v", err)
	}
	if _, err := tr.CreateHabit("Call mom", []int{0}); err != nil {
		t.Fatalf("CreateHabit failed: %v", err)
	}

	possible, err := tr.PossibleHabits(tr.Today())
	if err != nil {
		t.Fatalf("PossibleHabits failed: %v", err)
	}
	if len(possible) != 1 || possible[0].ID != scheduled.ID {
		t.Fatalf("expected only the Wednesday habit, got %+v", possible)
	}
}

func TestPossibleHabits_CreatedAtCutoff(t *testing.T) {
	tr := newTestTracker()

	// Created Wednesday 2024-01-10, scheduled for Mondays.
	h, err := tr.CreateHabit("Plan week", []int{1})
	if err != nil {
		t.Fatalf("CreateHabit failed: %v", err)
	}

	// Monday before creation: excluded.
	before, err := tr.PossibleHabits(clock.DateKey("2024-01-08"))
	if err != nil {
		t.Fatalf("PossibleHabits failed: %v", err)
	}
	if len(before) != 0 {
		t.Fatalf("habit should not be possible before its creation, got %+v", before)
	}

	// Monday after creation: included.
	after, err := tr.PossibleHabits(clock.DateKey("2024-01-15"))
	if err != nil {
		t.Fatalf("PossibleHabits failed: %v", err)
	}
	if len(after) != 1 || after[0].ID != h.ID {
		t.Fatalf("habit should be possible on a later Monday, got %+v", after)
	}
}

func TestToggle_DoubleToggleIsIdempotent(t *testing.T) {
	tr := newTestTracker()

	h, err := tr.CreateHabit("Drink water", []int{0, 1, 2, 3, 4, 5, 6})
	if err != nil {
		t.Fatalf("CreateHabit failed: %v", err)
	}

	completed, err := tr.Toggle(h.ID, tr.Today())
	if err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	if !completed {
		t.Fatal("first toggle should report completed")
	}

	completed, err = tr.Toggle(h.ID, tr.Today())
	if err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	if completed {
		t.Fatal("second toggle should report not completed")
	}

	summary, err := tr.DaySummary(tr.Today())
	if err != nil {
		t.Fatalf("DaySummary failed: %v", err)
	}
	if len(summary.CompletedHabits) != 0 {
		t.Fatalf("expected no completion record after double toggle, got %v", summary.CompletedHabits)
	}
}

func TestDaySummary_UntoggledDay(t *testing.T) {
	tr := newTestTracker()

	if _, err := tr.CreateHabit("Drink water", []int{0, 1, 2, 3, 4, 5, 6}); err != nil {
		t.Fatalf("CreateHabit failed: %v", err)
	}

	summary, err := tr.DaySummary(tr.Today())
	if err != nil {
		t.Fatalf("DaySummary failed: %v", err)
	}
	if len(summary.PossibleHabits) != 1 {
		t.Fatalf("expected 1 possible habit, got %d", len(summary.PossibleHabits))
	}
	if len(summary.CompletedHabits) != 0 {
		t.Fatalf("expected no completions on untoggled day, got %v", summary.CompletedHabits)
	}
}

func TestSummary_OnlyToggledDays(t *testing.T) {
	tr := newTestTracker()

	h, err := tr.CreateHabit("Drink water", []int{0, 1, 2, 3, 4, 5, 6})
	if err != nil {
		t.Fatalf("CreateHabit failed: %v", err)
	}

	summary, err := tr.Summary()
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}
	if len(summary) != 0 {
		t.Fatalf("summary should be empty before any toggle, got %+v", summary)
	}

	if _, err := tr.Toggle(h.ID, tr.Today()); err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}

	summary, err = tr.Summary()
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}
	if len(summary) != 1 {
		t.Fatalf("expected 1 summary entry, got %d", len(summary))
	}
	entry := summary[0]
	if entry.Date != "2024-01-10" {
		t.Errorf("got date %s want 2024-01-10", entry.Date)
	}
	if entry.Completed != 1 {
		t.Errorf("got completed %v want 1", entry.Completed)
	}
	if entry.Amount != 1 {
		t.Errorf("got amount %v want 1", entry.Amount)
	}
}

func TestSummary_AmountUsesEligibilityPerDay(t *testing.T) {
	tr := newTestTracker()

	// Daily habit created Wednesday 2024-01-10.
	h, err := tr.CreateHabit("Drink water", []int{0, 1, 2, 3, 4, 5, 6})
	if err != nil {
		t.Fatalf("CreateHabit failed: %v", err)
	}

	// A toggle recorded on a day before the habit existed counts as
	// completed there, but the eligible amount for that day stays zero.
	if _, err := tr.Toggle(h.ID, clock.DateKey("2024-01-08")); err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	if _, err := tr.Toggle(h.ID, clock.DateKey("2024-01-12")); err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}

	summary, err := tr.Summary()
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}
	byDate := map[clock.DateKey][2]float64{}
	for _, e := range summary {
		byDate[e.Date] = [2]float64{e.Completed, e.Amount}
	}
	if got := byDate["2024-01-08"]; got != [2]float64{1, 0} {
		t.Errorf("2024-01-08: got completed=%v amount=%v want 1, 0", got[0], got[1])
	}
	if got := byDate["2024-01-12"]; got != [2]float64{1, 1} {
		t.Errorf("2024-01-12: got completed=%v amount=%v want 1, 1", got[0], got[1])
	}
}

func TestToggle_UnknownHabitSucceedsVacuously(t *testing.T) {
	tr := newTestTracker()

	completed, err := tr.Toggle("f2a0c5d8-0000-4000-8000-000000000000", tr.Today())
	if err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	if !completed {
		t.Fatal("toggle of unknown id should still flip to completed")
	}
}
