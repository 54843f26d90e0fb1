package sqlite

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"habitd/internal/clock"
	"habitd/internal/storage"
	"habitd/pkg/habit"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaFS embed.FS

type Store struct {
	db *sql.DB
}

func Open(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("sqlite path is required")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// A single connection serializes writers, which SQLite prefers and which
	// makes each toggle transaction effectively exclusive.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	_, _ = db.Exec("PRAGMA journal_mode = WAL")
	_, _ = db.Exec("PRAGMA synchronous = NORMAL")
	_, _ = db.Exec("PRAGMA busy_timeout = 5000")

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) migrate() error {
	b, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return err
	}
	_, err = s.db.Exec(string(b))
	return err
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) PutHabit(h habit.Habit) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`INSERT INTO habits(id, title, created_at) VALUES(?,?,?)`,
		h.ID, h.Title, string(h.CreatedAt),
	); err != nil {
		return fmt.Errorf("insert habit: %w", err)
	}
	for _, wd := range h.WeekDays {
		// OR IGNORE collapses duplicate weekdays to set semantics.
		if _, err := tx.Exec(
			`INSERT OR IGNORE INTO habit_week_days(habit_id, week_day) VALUES(?,?)`,
			h.ID, wd,
		); err != nil {
			return fmt.Errorf("insert week day: %w", err)
		}
	}
	return tx.Commit()
}

func (s *Store) ListHabits() ([]habit.Habit, error) {
	// LEFT JOIN so a habit scheduled for no weekdays still lists.
	rows, err := s.db.Query(
		`SELECT h.id, h.title, h.created_at, w.week_day
		 FROM habits h LEFT JOIN habit_week_days w ON w.habit_id = h.id
		 ORDER BY h.rowid, w.week_day`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []habit.Habit{}
	index := map[string]int{}
	for rows.Next() {
		var (
			id, title, createdAt string
			weekDay              sql.NullInt64
		)
		if err := rows.Scan(&id, &title, &createdAt, &weekDay); err != nil {
			return nil, err
		}
		i, ok := index[id]
		if !ok {
			i = len(out)
			index[id] = i
			out = append(out, habit.Habit{
				ID:        id,
				Title:     title,
				CreatedAt: clock.DateKey(createdAt),
				WeekDays:  []int{},
			})
		}
		if weekDay.Valid {
			out[i].WeekDays = append(out[i].WeekDays, int(weekDay.Int64))
		}
	}
	return out, rows.Err()
}

func (s *Store) CompletedHabits(day clock.DateKey) ([]string, error) {
	rows, err := s.db.Query(
		`SELECT dh.habit_id
		 FROM day_habits dh JOIN days d ON d.id = dh.day_id
		 WHERE d.date = ?`, string(day))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

// ToggleCompletion runs the whole check-then-write sequence in one
// transaction. The day row is created lazily with an insert-or-ignore
// against the unique date constraint, so two first toggles for the same
// date cannot create two rows.
func (s *Store) ToggleCompletion(day clock.DateKey, habitID string) (bool, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`INSERT INTO days(date) VALUES(?) ON CONFLICT(date) DO NOTHING`,
		string(day),
	); err != nil {
		return false, fmt.Errorf("ensure day: %w", err)
	}
	var dayID int64
	if err := tx.QueryRow(`SELECT id FROM days WHERE date = ?`, string(day)).Scan(&dayID); err != nil {
		return false, fmt.Errorf("fetch day: %w", err)
	}

	res, err := tx.Exec(
		`DELETE FROM day_habits WHERE day_id = ? AND habit_id = ?`, dayID, habitID)
	if err != nil {
		return false, fmt.Errorf("delete completion: %w", err)
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	completed := false
	if deleted == 0 {
		if _, err := tx.Exec(
			`INSERT INTO day_habits(day_id, habit_id) VALUES(?,?)`, dayID, habitID,
		); err != nil {
			return false, fmt.Errorf("insert completion: %w", err)
		}
		completed = true
	}
	return completed, tx.Commit()
}

func (s *Store) ListDays() ([]storage.DayRecord, error) {
	rows, err := s.db.Query(
		`SELECT d.date, dh.habit_id
		 FROM days d LEFT JOIN day_habits dh ON dh.day_id = d.id
		 ORDER BY d.date`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []storage.DayRecord{}
	index := map[clock.DateKey]int{}
	for rows.Next() {
		var (
			date    string
			habitID sql.NullString
		)
		if err := rows.Scan(&date, &habitID); err != nil {
			return nil, err
		}
		key := clock.DateKey(date)
		i, ok := index[key]
		if !ok {
			i = len(out)
			index[key] = i
			out = append(out, storage.DayRecord{Date: key, Completed: []string{}})
		}
		if habitID.Valid {
			out[i].Completed = append(out[i].Completed, habitID.String)
		}
	}
	return out, rows.Err()
}

var _ storage.Store = (*Store)(nil)
