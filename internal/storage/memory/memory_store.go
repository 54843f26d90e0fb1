// Package memory is a Store kept entirely in process memory. It backs unit
// tests and the ephemeral db driver; nothing survives a restart.
package memory

import (
	"sync"

	"habitd/internal/clock"
	"habitd/internal/storage"
	"habitd/pkg/habit"
)

type Store struct {
	mu     sync.Mutex
	habits []habit.Habit
	days   map[clock.DateKey]map[string]struct{}
}

func New() *Store {
	return &Store{days: map[clock.DateKey]map[string]struct{}{}}
}

func (m *Store) PutHabit(h habit.Habit) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.habits = append(m.habits, h)
	return nil
}

func (m *Store) ListHabits() ([]habit.Habit, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]habit.Habit{}, m.habits...), nil
}

func (m *Store) CompletedHabits(day clock.DateKey) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := []string{}
	for id := range m.days[day] {
		out = append(out, id)
	}
	return out, nil
}

// The store mutex covers the whole flip, which is all the transaction
// atomicity toggling requires here.
func (m *Store) ToggleCompletion(day clock.DateKey, habitID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	completions, ok := m.days[day]
	if !ok {
		completions = map[string]struct{}{}
		m.days[day] = completions
	}

	if _, done := completions[habitID]; done {
		delete(completions, habitID)
		return false, nil
	}
	completions[habitID] = struct{}{}
	return true, nil
}

func (m *Store) ListDays() ([]storage.DayRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := []storage.DayRecord{}
	for date, completions := range m.days {
		rec := storage.DayRecord{Date: date, Completed: []string{}}
		for id := range completions {
			rec.Completed = append(rec.Completed, id)
		}
		out = append(out, rec)
	}
	return out, nil
}

func (m *Store) Close() error {
	return nil
}

var _ storage.Store = (*Store)(nil)
