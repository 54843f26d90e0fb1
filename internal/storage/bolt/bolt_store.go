package bolt

import (
	"encoding/json"
	"fmt"

	"habitd/internal/clock"
	"habitd/internal/storage"
	"habitd/pkg/habit"

	"go.etcd.io/bbolt"
)

const (
	habitsBucket = "habits"
	daysBucket   = "days"
)

// completion records are presence-only; the value is a fixed marker so a
// stored key is never confused with a missing one.
var marker = []byte{1}

type Store struct {
	db *bbolt.DB
}

func Open(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, err
	}

	if err := db.Update(func(tx *bbolt.Tx) error {
		for _, name := range []string{habitsBucket, daysBucket} {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) PutHabit(h habit.Habit) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		val, err := json.Marshal(h)
		if err != nil {
			return err
		}
		return tx.Bucket([]byte(habitsBucket)).Put([]byte(h.ID), val)
	})
}

func (s *Store) ListHabits() ([]habit.Habit, error) {
	out := []habit.Habit{}
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(habitsBucket)).ForEach(func(_, v []byte) error {
			var h habit.Habit
			if err := json.Unmarshal(v, &h); err != nil {
				return fmt.Errorf("decode habit: %w", err)
			}
			out = append(out, h)
			return nil
		})
	})
	return out, err
}

func (s *Store) CompletedHabits(day clock.DateKey) ([]string, error) {
	out := []string{}
	err := s.db.View(func(tx *bbolt.Tx) error {
		dayBucket := tx.Bucket([]byte(daysBucket)).Bucket([]byte(day))
		if dayBucket == nil {
			return nil
		}
		return dayBucket.ForEach(func(k, _ []byte) error {
			out = append(out, string(k))
			return nil
		})
	})
	return out, err
}

// ToggleCompletion flips the completion record for (day, habitID) inside a
// single write transaction. bbolt serializes Update calls, so the existence
// check and the matching put/delete cannot interleave with another toggle.
// CreateBucketIfNotExists doubles as the lazy insert-or-fetch for the day.
func (s *Store) ToggleCompletion(day clock.DateKey, habitID string) (bool, error) {
	var completed bool
	err := s.db.Update(func(tx *bbolt.Tx) error {
		dayBucket, err := tx.Bucket([]byte(daysBucket)).CreateBucketIfNotExists([]byte(day))
		if err != nil {
			return err
		}
		if dayBucket.Get([]byte(habitID)) != nil {
			completed = false
			return dayBucket.Delete([]byte(habitID))
		}
		completed = true
		return dayBucket.Put([]byte(habitID), marker)
	})
	return completed, err
}

func (s *Store) ListDays() ([]storage.DayRecord, error) {
	out := []storage.DayRecord{}
	err := s.db.View(func(tx *bbolt.Tx) error {
		days := tx.Bucket([]byte(daysBucket))
		return days.ForEachBucket(func(k []byte) error {
			rec := storage.DayRecord{Date: clock.DateKey(k), Completed: []string{}}
			err := days.Bucket(k).ForEach(func(id, _ []byte) error {
				rec.Completed = append(rec.Completed, string(id))
				return nil
			})
			if err != nil {
				return err
			}
			out = append(out, rec)
			return nil
		})
	})
	return out, err
}

var _ storage.Store = (*Store)(nil)
