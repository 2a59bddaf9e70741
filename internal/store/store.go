// Package store persists tasks, goals, and the brain state to a local
// SQLite database. The prioritization engine never touches this layer; it
// only sees plain values loaded from here.
package store

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/prioria/prioria/internal/task"
)

// Store provides access to the prioria database.
type Store struct {
	db *sql.DB
}

// New opens (or creates) the SQLite database at the given path.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Enable WAL mode for better concurrent access.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS tasks (
		id                TEXT PRIMARY KEY,
		title             TEXT NOT NULL,
		description       TEXT DEFAULT '',
		deadline          DATETIME,
		estimated_minutes INTEGER NOT NULL,
		type              TEXT NOT NULL,
		difficulty        TEXT NOT NULL,
		importance        INTEGER NOT NULL DEFAULT 3,
		cognitive_load    INTEGER NOT NULL,
		status            TEXT NOT NULL DEFAULT 'pending',
		created_at        DATETIME NOT NULL,
		completed_at      DATETIME,
		recurrence        TEXT NOT NULL DEFAULT 'none',
		goal_id           TEXT DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS subtasks (
		id        TEXT PRIMARY KEY,
		task_id   TEXT NOT NULL REFERENCES tasks(id),
		title     TEXT NOT NULL,
		completed INTEGER NOT NULL DEFAULT 0,
		position  INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS goals (
		id          TEXT PRIMARY KEY,
		title       TEXT NOT NULL,
		description TEXT DEFAULT '',
		deadline    DATETIME,
		created_at  DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS brain_state (
		id           INTEGER PRIMARY KEY CHECK (id = 1),
		fatigue      INTEGER NOT NULL,
		motivation   INTEGER NOT NULL,
		last_updated DATETIME NOT NULL,
		xp           INTEGER NOT NULL DEFAULT 0,
		level        INTEGER NOT NULL DEFAULT 1
	);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return err
	}

	// Seed the singleton brain state row if the database is fresh.
	_, _ = s.db.Exec(
		`INSERT OR IGNORE INTO brain_state (id, fatigue, motivation, last_updated, xp, level)
		 VALUES (1, 5, 5, ?, 0, 1)`,
		time.Now().UTC(),
	)

	return nil
}

// taskColumns is the standard column list for task queries.
const taskColumns = `id, title, description, deadline, estimated_minutes, type, difficulty, importance, cognitive_load, status, created_at, completed_at, recurrence, goal_id`

// CreateTask inserts a task and its subtasks.
func (s *Store) CreateTask(t task.Task) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if err := insertTask(tx, t); err != nil {
		return err
	}
	return tx.Commit()
}

func insertTask(tx *sql.Tx, t task.Task) error {
	_, err := tx.Exec(
		`INSERT INTO tasks (`+taskColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Title, t.Description, nullableTime(t.Deadline), t.EstimatedMinutes,
		string(t.Type), string(t.Difficulty), t.Importance, t.CognitiveLoad,
		string(t.Status), t.CreatedAt, nullableTime(t.CompletedAt),
		string(recurrenceOrNone(t.Recurrence)), t.GoalID,
	)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	for i, st := range t.Subtasks {
		if _, err := tx.Exec(
			`INSERT INTO subtasks (id, task_id, title, completed, position) VALUES (?, ?, ?, ?, ?)`,
			st.ID, t.ID, st.Title, st.Completed, i,
		); err != nil {
			return fmt.Errorf("insert subtask: %w", err)
		}
	}
	return nil
}

// GetTask returns a single task by ID, subtasks included.
func (s *Store) GetTask(id string) (*task.Task, error) {
	row := s.db.QueryRow(`SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	t, err := scanTask(row)
	if err != nil {
		return nil, err
	}
	if err := s.loadSubtasks(t); err != nil {
		return nil, err
	}
	return t, nil
}

// FindTask resolves a full ID or a unique ID prefix.
func (s *Store) FindTask(idOrPrefix string) (*task.Task, error) {
	rows, err := s.db.Query(
		`SELECT `+taskColumns+` FROM tasks WHERE id LIKE ? LIMIT 2`,
		idOrPrefix+"%",
	)
	if err != nil {
		return nil, fmt.Errorf("find task: %w", err)
	}
	defer rows.Close()

	var matches []*task.Task
	for rows.Next() {
		t, err := scanTaskRows(rows)
		if err != nil {
			return nil, err
		}
		matches = append(matches, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("no task matches %q", idOrPrefix)
	case 1:
		if err := s.loadSubtasks(matches[0]); err != nil {
			return nil, err
		}
		return matches[0], nil
	default:
		return nil, fmt.Errorf("ambiguous ID prefix %q, use more characters", idOrPrefix)
	}
}

// ListTasks returns all tasks, optionally filtered by status, ordered by
// creation time.
func (s *Store) ListTasks(status string) ([]task.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks`
	var args []any
	if status != "" {
		query += ` WHERE status = ?`
		args = append(args, status)
	}
	query += ` ORDER BY created_at, id`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer rows.Close()

	var tasks []task.Task
	for rows.Next() {
		t, err := scanTaskRows(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range tasks {
		if err := s.loadSubtasks(&tasks[i]); err != nil {
			return nil, err
		}
	}
	return tasks, nil
}

// UpdateTask rewrites a task row and replaces its subtasks.
func (s *Store) UpdateTask(t task.Task) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		`UPDATE tasks SET title = ?, description = ?, deadline = ?, estimated_minutes = ?,
		 type = ?, difficulty = ?, importance = ?, cognitive_load = ?, status = ?,
		 completed_at = ?, recurrence = ?, goal_id = ?
		 WHERE id = ?`,
		t.Title, t.Description, nullableTime(t.Deadline), t.EstimatedMinutes,
		string(t.Type), string(t.Difficulty), t.Importance, t.CognitiveLoad,
		string(t.Status), nullableTime(t.CompletedAt),
		string(recurrenceOrNone(t.Recurrence)), t.GoalID, t.ID,
	)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("task %s not found", t.ID)
	}

	if _, err := tx.Exec(`DELETE FROM subtasks WHERE task_id = ?`, t.ID); err != nil {
		return fmt.Errorf("clear subtasks: %w", err)
	}
	for i, st := range t.Subtasks {
		if _, err := tx.Exec(
			`INSERT INTO subtasks (id, task_id, title, completed, position) VALUES (?, ?, ?, ?, ?)`,
			st.ID, t.ID, st.Title, st.Completed, i,
		); err != nil {
			return fmt.Errorf("insert subtask: %w", err)
		}
	}

	return tx.Commit()
}

// DeleteTask removes a task and its subtasks. Only explicit user deletes
// reach here; the engine never destroys tasks.
func (s *Store) DeleteTask(id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM subtasks WHERE task_id = ?`, id); err != nil {
		return fmt.Errorf("delete subtasks: %w", err)
	}
	res, err := tx.Exec(`DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("task %s not found", id)
	}
	return tx.Commit()
}

// --- Goals ---

// CreateGoal inserts a goal.
func (s *Store) CreateGoal(g task.Goal) error {
	_, err := s.db.Exec(
		`INSERT INTO goals (id, title, description, deadline, created_at) VALUES (?, ?, ?, ?, ?)`,
		g.ID, g.Title, g.Description, nullableTime(g.Deadline), g.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert goal: %w", err)
	}
	return nil
}

// ListGoals returns all goals ordered by creation time.
func (s *Store) ListGoals() ([]task.Goal, error) {
	rows, err := s.db.Query(`SELECT id, title, description, deadline, created_at FROM goals ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("query goals: %w", err)
	}
	defer rows.Close()

	var goals []task.Goal
	for rows.Next() {
		var g task.Goal
		var deadline sql.NullTime
		if err := rows.Scan(&g.ID, &g.Title, &g.Description, &deadline, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan goal: %w", err)
		}
		if deadline.Valid {
			d := deadline.Time
			g.Deadline = &d
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

// FindGoal resolves a full ID or a unique ID prefix.
func (s *Store) FindGoal(idOrPrefix string) (*task.Goal, error) {
	goals, err := s.ListGoals()
	if err != nil {
		return nil, err
	}
	var match *task.Goal
	for i := range goals {
		if len(idOrPrefix) <= len(goals[i].ID) && goals[i].ID[:len(idOrPrefix)] == idOrPrefix {
			if match != nil {
				return nil, fmt.Errorf("ambiguous ID prefix %q, use more characters", idOrPrefix)
			}
			match = &goals[i]
		}
	}
	if match == nil {
		return nil, fmt.Errorf("no goal matches %q", idOrPrefix)
	}
	return match, nil
}

// DeleteGoal removes a goal. Linked tasks keep their reference; progress for
// a missing goal simply stops being displayed.
func (s *Store) DeleteGoal(id string) error {
	res, err := s.db.Exec(`DELETE FROM goals WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete goal: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("goal %s not found", id)
	}
	// Unlink tasks that pointed at the deleted goal.
	if _, err := s.db.Exec(`UPDATE tasks SET goal_id = '' WHERE goal_id = ?`, id); err != nil {
		return fmt.Errorf("unlink goal tasks: %w", err)
	}
	return nil
}

// --- Brain state ---

// BrainState returns the singleton brain state row.
func (s *Store) BrainState() (task.BrainState, error) {
	row := s.db.QueryRow(`SELECT fatigue, motivation, last_updated, xp, level FROM brain_state WHERE id = 1`)
	var b task.BrainState
	if err := row.Scan(&b.Fatigue, &b.Motivation, &b.LastUpdated, &b.XP, &b.Level); err != nil {
		return task.BrainState{}, fmt.Errorf("load brain state: %w", err)
	}
	return b, nil
}

// SaveBrainState overwrites the singleton brain state row.
func (s *Store) SaveBrainState(b task.BrainState) error {
	_, err := s.db.Exec(
		`INSERT INTO brain_state (id, fatigue, motivation, last_updated, xp, level)
		 VALUES (1, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   fatigue = excluded.fatigue,
		   motivation = excluded.motivation,
		   last_updated = excluded.last_updated,
		   xp = excluded.xp,
		   level = excluded.level`,
		b.Fatigue, b.Motivation, b.LastUpdated, b.XP, b.Level,
	)
	if err != nil {
		return fmt.Errorf("save brain state: %w", err)
	}
	return nil
}

// ReplaceAll wipes the database and loads the given snapshot. Used by
// backup import.
func (s *Store) ReplaceAll(tasks []task.Task, goals []task.Goal, brain *task.BrainState) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"subtasks", "tasks", "goals"} {
		if _, err := tx.Exec(`DELETE FROM ` + table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	for _, t := range tasks {
		if err := insertTask(tx, t); err != nil {
			return err
		}
	}
	for _, g := range goals {
		if _, err := tx.Exec(
			`INSERT INTO goals (id, title, description, deadline, created_at) VALUES (?, ?, ?, ?, ?)`,
			g.ID, g.Title, g.Description, nullableTime(g.Deadline), g.CreatedAt,
		); err != nil {
			return fmt.Errorf("insert goal: %w", err)
		}
	}
	if brain != nil {
		if _, err := tx.Exec(
			`UPDATE brain_state SET fatigue = ?, motivation = ?, last_updated = ?, xp = ?, level = ? WHERE id = 1`,
			brain.Fatigue, brain.Motivation, brain.LastUpdated, brain.XP, brain.Level,
		); err != nil {
			return fmt.Errorf("replace brain state: %w", err)
		}
	}

	return tx.Commit()
}

// --- scanning helpers ---

func (s *Store) loadSubtasks(t *task.Task) error {
	rows, err := s.db.Query(
		`SELECT id, title, completed FROM subtasks WHERE task_id = ? ORDER BY position`,
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("query subtasks: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var st task.Subtask
		if err := rows.Scan(&st.ID, &st.Title, &st.Completed); err != nil {
			return fmt.Errorf("scan subtask: %w", err)
		}
		t.Subtasks = append(t.Subtasks, st)
	}
	return rows.Err()
}

type scannable interface {
	Scan(dest ...any) error
}

func scanInto(row scannable) (*task.Task, error) {
	var t task.Task
	var deadline, completedAt sql.NullTime
	var typ, difficulty, status, recurrence string
	err := row.Scan(
		&t.ID, &t.Title, &t.Description, &deadline, &t.EstimatedMinutes,
		&typ, &difficulty, &t.Importance, &t.CognitiveLoad, &status,
		&t.CreatedAt, &completedAt, &recurrence, &t.GoalID,
	)
	if err != nil {
		return nil, fmt.Errorf("scan task: %w", err)
	}
	t.Type = task.Type(typ)
	t.Difficulty = task.Difficulty(difficulty)
	t.Status = task.Status(status)
	t.Recurrence = task.Recurrence(recurrence)
	if deadline.Valid {
		d := deadline.Time
		t.Deadline = &d
	}
	if completedAt.Valid {
		c := completedAt.Time
		t.CompletedAt = &c
	}
	return &t, nil
}

func scanTask(row *sql.Row) (*task.Task, error)       { return scanInto(row) }
func scanTaskRows(rows *sql.Rows) (*task.Task, error) { return scanInto(rows) }

func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}

func recurrenceOrNone(r task.Recurrence) task.Recurrence {
	if r == "" {
		return task.RecurrenceNone
	}
	return r
}
