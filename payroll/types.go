/*
Package payroll provides the employee model and the roster/payroll core.

PURPOSE:
  Records employees of different kinds in an ordered roster and computes
  what each of them is paid for the current period. Everything outside this
  package (HTTP, forms, reports, storage) talks to the roster through the
  types declared here.

KEY CONCEPTS IN THIS FILE (types.go):
  - Kind: Discriminator for the employee variants (staff, manager, engineer)
  - EmployeeID: Identity of a roster slot (NOT the employee name)
  - Entry: A roster slot pairing an ID with an employee record
  - Line/Payroll: The computed pay per roster slot

DESIGN PRINCIPLES:
  1. Immutability: Employee records expose accessors only
  2. Precision: All money values are decimal.Decimal
  3. Capability dispatch: Each variant computes its own Pay()
  4. Identity by slot: Duplicate names are allowed

USAGE:
  var r payroll.Roster
  r.Add(payroll.NewManager("Alice", decimal.NewFromInt(500000), decimal.NewFromInt(50000)))
  p := r.ComputePayroll()
  amount, _ := p.Lookup("Alice") // 550000

SEE ALSO:
  - employee.go: Employee variants
  - roster.go: Roster operations and payroll computation
  - store.go: Synchronized persistence interface used by the API
*/
package payroll

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// =============================================================================
// KIND - Employee variant discriminator
// =============================================================================

type Kind string

const (
	KindStaff    Kind = "staff"
	KindManager  Kind = "manager"
	KindEngineer Kind = "engineer"
)

// Kinds lists every known variant in display order.
var Kinds = []Kind{KindStaff, KindManager, KindEngineer}

// ParseKind returns the Kind for s, or ErrUnknownKind.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", &UnknownKindError{Kind: s}
}

// =============================================================================
// IDENTIFIERS
// =============================================================================

type EmployeeID string

// NewEmployeeID returns a fresh random identifier.
func NewEmployeeID() EmployeeID {
	return EmployeeID(uuid.NewString())
}

// =============================================================================
// ROSTER ENTRY
// =============================================================================

// Entry is one roster slot.
type Entry struct {
	ID       EmployeeID
	Employee Employee
}

// =============================================================================
// PAYROLL - Computed pay per roster slot
// =============================================================================

// Line is the computed pay of a single roster entry.
type Line struct {
	ID       EmployeeID
	Employee Employee
	Amount   decimal.Decimal
}

// Payroll maps roster entries to their computed pay.
// Lines follow roster insertion order.
type Payroll struct {
	Lines []Line
	index map[EmployeeID]int
}

func (p Payroll) Len() int { return len(p.Lines) }

// Amount returns the pay computed for the entry with the given ID.
func (p Payroll) Amount(id EmployeeID) (decimal.Decimal, bool) {
	i, ok := p.index[id]
	if !ok {
		return decimal.Zero, false
	}
	return p.Lines[i].Amount, true
}

// Lookup returns the pay of the first entry whose employee has the given name.
func (p Payroll) Lookup(name string) (decimal.Decimal, bool) {
	for _, l := range p.Lines {
		if l.Employee.Name() == name {
			return l.Amount, true
		}
	}
	return decimal.Zero, false
}

// Total sums every line.
func (p Payroll) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range p.Lines {
		total = total.Add(l.Amount)
	}
	return total
}
