/*
Package sqlite provides a SQLite-backed implementation of payroll.Store.

PURPOSE:
  Keeps the roster in an in-process SQLite database so that listing and
  positional removal are expressed as SQL over an ordered table. The
  database always lives in memory: nothing survives a restart.

INTERFACES IMPLEMENTED:
  payroll.Store: Add, Remove, List, Reset, CountByKind

KEY TABLES:
  employees: One row per roster slot
    seq            insertion order (AUTOINCREMENT, never reused)
    id             EmployeeID (UUID)
    kind           staff | manager | engineer (indexed for CountByKind)
    employee_json  factory.EmployeeJSON of the record

ORDERING:
  Roster position N is the N-th row by seq. Removing a row shifts every
  later position down by one without renumbering.

CONCURRENCY:
  Uses sync.RWMutex plus a single pooled connection. An in-memory SQLite
  database is private to the connection that created it.

USAGE:
  store, err := sqlite.New()
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

SEE ALSO:
  - payroll/store.go: Interface definition
  - payroll/store/memory.go: Mutex-only implementation
  - factory/employee.go: employee_json encoding
*/
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	_ "github.com/mattn/go-sqlite3"
	"github.com/warp/payroll-engine/factory"
	"github.com/warp/payroll-engine/payroll"
)

const dsn = ":memory:?_foreign_keys=on"

// Store implements payroll.Store using SQLite.
type Store struct {
	db      *sql.DB
	mu      sync.RWMutex
	factory *factory.EmployeeFactory
}

var _ payroll.Store = (*Store)(nil)

// New opens a fresh in-memory database and creates the schema.
func New() (*Store, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)

	store := &Store{db: db, factory: factory.NewEmployeeFactory()}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection and discards the roster.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS employees (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT NOT NULL UNIQUE,
		kind TEXT NOT NULL,
		employee_json TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_employees_kind
		ON employees(kind);
	`
	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// ROSTER STORE (payroll.Store interface)
// =============================================================================

// Add appends an employee at the end of the roster and returns its position.
func (s *Store) Add(ctx context.Context, e payroll.Employee) (payroll.Entry, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	employeeJSON, err := s.factory.Marshal(e)
	if err != nil {
		return payroll.Entry{}, 0, err
	}

	entry := payroll.Entry{ID: payroll.NewEmployeeID(), Employee: e}

	sqlTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return payroll.Entry{}, 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer sqlTx.Rollback()

	res, err := sqlTx.ExecContext(ctx,
		`INSERT INTO employees (id, kind, employee_json) VALUES (?, ?, ?)`,
		entry.ID, e.Kind(), employeeJSON)
	if err != nil {
		return payroll.Entry{}, 0, fmt.Errorf("failed to insert employee: %w", err)
	}
	seq, err := res.LastInsertId()
	if err != nil {
		return payroll.Entry{}, 0, fmt.Errorf("failed to read insert id: %w", err)
	}

	var index int
	if err := sqlTx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM employees WHERE seq < ?`, seq).Scan(&index); err != nil {
		return payroll.Entry{}, 0, fmt.Errorf("failed to locate employee: %w", err)
	}

	if err := sqlTx.Commit(); err != nil {
		return payroll.Entry{}, 0, fmt.Errorf("failed to commit insert: %w", err)
	}

	return entry, index, nil
}

// Remove deletes the employee at the given roster position.
func (s *Store) Remove(ctx context.Context, index int) (payroll.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sqlTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return payroll.Entry{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer sqlTx.Rollback()

	if index < 0 {
		return payroll.Entry{}, s.outOfRange(ctx, sqlTx, index)
	}

	row := sqlTx.QueryRowContext(ctx,
		`SELECT seq, id, employee_json FROM employees ORDER BY seq LIMIT 1 OFFSET ?`, index)

	var (
		seq          int64
		id           string
		employeeJSON string
	)
	if err := row.Scan(&seq, &id, &employeeJSON); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return payroll.Entry{}, s.outOfRange(ctx, sqlTx, index)
		}
		return payroll.Entry{}, fmt.Errorf("failed to locate employee: %w", err)
	}

	emp, err := s.factory.ParseEmployee(employeeJSON)
	if err != nil {
		return payroll.Entry{}, err
	}

	if _, err := sqlTx.ExecContext(ctx, `DELETE FROM employees WHERE seq = ?`, seq); err != nil {
		return payroll.Entry{}, fmt.Errorf("failed to delete employee: %w", err)
	}

	if err := sqlTx.Commit(); err != nil {
		return payroll.Entry{}, fmt.Errorf("failed to commit removal: %w", err)
	}

	return payroll.Entry{ID: payroll.EmployeeID(id), Employee: emp}, nil
}

// List returns all employees in insertion order.
func (s *Store) List(ctx context.Context) ([]payroll.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `SELECT id, employee_json FROM employees ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	entries := []payroll.Entry{}
	for rows.Next() {
		var id, employeeJSON string
		if err := rows.Scan(&id, &employeeJSON); err != nil {
			return nil, err
		}
		emp, err := s.factory.ParseEmployee(employeeJSON)
		if err != nil {
			return nil, err
		}
		entries = append(entries, payroll.Entry{ID: payroll.EmployeeID(id), Employee: emp})
	}
	return entries, rows.Err()
}

// Reset clears the roster (for demo scenarios).
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, "DELETE FROM employees")
	return err
}

// CountByKind returns how many roster slots hold each kind.
func (s *Store) CountByKind(ctx context.Context) (map[payroll.Kind]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `SELECT kind, COUNT(*) FROM employees GROUP BY kind`)
	if err != nil {
		return nil, fmt.Errorf("failed to count employees: %w", err)
	}
	defer rows.Close()

	counts := make(map[payroll.Kind]int)
	for rows.Next() {
		var (
			kind string
			n    int
		)
		if err := rows.Scan(&kind, &n); err != nil {
			return nil, err
		}
		counts[payroll.Kind(kind)] = n
	}
	return counts, rows.Err()
}

// =============================================================================
// HELPERS
// =============================================================================

func (s *Store) outOfRange(ctx context.Context, tx *sql.Tx, index int) error {
	var n int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM employees`).Scan(&n); err != nil {
		return fmt.Errorf("failed to count employees: %w", err)
	}
	return &payroll.IndexOutOfRangeError{Index: index, Len: n}
}
