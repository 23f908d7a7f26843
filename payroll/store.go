/*
store.go - Roster persistence interface

PURPOSE:
  The API serves concurrent requests, while Roster itself is a plain
  single-threaded value. Store is the synchronized boundary between the two.
  Implementations keep data for the lifetime of the process only.

IMPLEMENTATIONS:
  - payroll/store/memory.go: Mutex around a Roster
  - store/sqlite/sqlite.go: In-process SQLite (":memory:")

CONTRACT:
  - Add appends, assigns a fresh EmployeeID and reports the new position,
    decided under the same lock as the append
  - Remove uses the same out-of-range semantics as Roster.Remove
  - List returns entries in insertion order
  - Reset empties the roster
  - CountByKind reports the headcount per Kind (absent kinds are omitted)
*/
package payroll

import "context"

type Store interface {
	Add(ctx context.Context, e Employee) (Entry, int, error)
	Remove(ctx context.Context, index int) (Entry, error)
	List(ctx context.Context) ([]Entry, error)
	Reset(ctx context.Context) error
	CountByKind(ctx context.Context) (map[Kind]int, error)
}

// ComputeFrom lists the store and computes the payroll of the snapshot.
func ComputeFrom(ctx context.Context, s Store) (Payroll, error) {
	entries, err := s.List(ctx)
	if err != nil {
		return Payroll{}, err
	}
	return Compute(entries), nil
}
