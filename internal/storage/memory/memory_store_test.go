package memory

import (
	"sync"
	"testing"

	"habitd/pkg/habit"
)

func TestPutHabit_RoundTrip(t *testing.T) {
	store := New()

	h := habit.Habit{
		ID:        "6e7f3c9a-5b21-4c39-9d15-2f8a1e0b7c44",
		Title:     "Drink water",
		CreatedAt: "2024-01-10",
		WeekDays:  []int{0, 1, 2, 3, 4, 5, 6},
	}
	if err := store.PutHabit(h); err != nil {
		t.Fatalf("PutHabit failed: %v", err)
	}

	habits, err := store.ListHabits()
	if err != nil {
		t.Fatalf("ListHabits failed: %v", err)
	}
	if len(habits) != 1 {
		t.Fatalf("expected 1 habit, got %d", len(habits))
	}
	if habits[0].ID != h.ID || habits[0].Title != h.Title {
		t.Fatalf("round trip mismatch: %+v", habits[0])
	}
}

func TestToggleCompletion_Flips(t *testing.T) {
	store := New()

	const id = "6e7f3c9a-5b21-4c39-9d15-2f8a1e0b7c44"

	completed, err := store.ToggleCompletion("2024-01-10", id)
	if err != nil {
		t.Fatalf("ToggleCompletion failed: %v", err)
	}
	if !completed {
		t.Fatal("first toggle should complete")
	}

	completed, err = store.ToggleCompletion("2024-01-10", id)
	if err != nil {
		t.Fatalf("ToggleCompletion failed: %v", err)
	}
	if completed {
		t.Fatal("second toggle should uncomplete")
	}

	done, err := store.CompletedHabits("2024-01-10")
	if err != nil {
		t.Fatalf("CompletedHabits failed: %v", err)
	}
	if len(done) != 0 {
		t.Fatalf("expected no completions after double toggle, got %v", done)
	}
}

func TestListDays_OnlyToggledDays(t *testing.T) {
	store := New()

	if _, err := store.ToggleCompletion("2024-01-10", "a"); err != nil {
		t.Fatalf("ToggleCompletion failed: %v", err)
	}
	if _, err := store.ToggleCompletion("2024-01-11", "a"); err != nil {
		t.Fatalf("ToggleCompletion failed: %v", err)
	}

	days, err := store.ListDays()
	if err != nil {
		t.Fatalf("ListDays failed: %v", err)
	}
	if len(days) != 2 {
		t.Fatalf("expected 2 days, got %d", len(days))
	}
}

func TestToggleCompletion_Concurrent(t *testing.T) {
	store := New()

	const id = "6e7f3c9a-5b21-4c39-9d15-2f8a1e0b7c44"
	const toggles = 50

	var wg sync.WaitGroup
	for g := 0; g < 2; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < toggles; i++ {
				if _, err := store.ToggleCompletion("2024-01-10", id); err != nil {
					t.Errorf("ToggleCompletion failed: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()

	done, err := store.CompletedHabits("2024-01-10")
	if err != nil {
		t.Fatalf("CompletedHabits failed: %v", err)
	}
	if len(done) != 0 {
		t.Fatalf("expected no completions after even toggle count, got %v", done)
	}
}
