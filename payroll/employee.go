package payroll

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// =============================================================================
// EMPLOYEE - Capability shared by every variant
// =============================================================================

// Employee is an immutable employee record.
//
// Implementations compute their own pay, so callers never branch on the
// concrete type:
//
//	Staff    -> base salary
//	Manager  -> base salary + bonus
//	Engineer -> base salary + overtime hours * overtime rate
type Employee interface {
	Name() string
	Position() string
	BaseSalary() decimal.Decimal
	Kind() Kind

	// Pay returns the total pay for the current period.
	Pay() decimal.Decimal
}

// Positions assigned by the specialized constructors.
const (
	PositionManager  = "Manager"
	PositionEngineer = "Engineer"
)

// Compile-time checks
var (
	_ Employee = Staff{}
	_ Employee = Manager{}
	_ Employee = Engineer{}
)

// =============================================================================
// STAFF - Plain employee
// =============================================================================

type Staff struct {
	name       string
	position   string
	baseSalary decimal.Decimal
}

// NewStaff builds a plain employee. No validation is performed: empty names
// and negative salaries are the caller's concern.
func NewStaff(name, position string, baseSalary decimal.Decimal) Staff {
	return Staff{name: name, position: position, baseSalary: baseSalary}
}

func (s Staff) Name() string                { return s.name }
func (s Staff) Position() string            { return s.position }
func (s Staff) BaseSalary() decimal.Decimal { return s.baseSalary }
func (s Staff) Kind() Kind                  { return KindStaff }
func (s Staff) Pay() decimal.Decimal        { return s.baseSalary }

func (s Staff) String() string {
	return fmt.Sprintf("%s (%s)", s.name, s.position)
}

// =============================================================================
// MANAGER - Base salary plus bonus
// =============================================================================

type Manager struct {
	Staff
	bonus decimal.Decimal
}

func NewManager(name string, baseSalary, bonus decimal.Decimal) Manager {
	return Manager{Staff: NewStaff(name, PositionManager, baseSalary), bonus: bonus}
}

func (m Manager) Bonus() decimal.Decimal { return m.bonus }
func (m Manager) Kind() Kind             { return KindManager }
func (m Manager) Pay() decimal.Decimal   { return m.baseSalary.Add(m.bonus) }

// =============================================================================
// ENGINEER - Base salary plus paid overtime
// =============================================================================

type Engineer struct {
	Staff
	overtimeHours decimal.Decimal
	overtimeRate  decimal.Decimal
}

func NewEngineer(name string, baseSalary, overtimeHours, overtimeRate decimal.Decimal) Engineer {
	return Engineer{
		Staff:         NewStaff(name, PositionEngineer, baseSalary),
		overtimeHours: overtimeHours,
		overtimeRate:  overtimeRate,
	}
}

func (e Engineer) OvertimeHours() decimal.Decimal { return e.overtimeHours }
func (e Engineer) OvertimeRate() decimal.Decimal  { return e.overtimeRate }
func (e Engineer) Kind() Kind                     { return KindEngineer }

// OvertimePay is hours * rate.
func (e Engineer) OvertimePay() decimal.Decimal {
	return e.overtimeHours.Mul(e.overtimeRate)
}

func (e Engineer) Pay() decimal.Decimal {
	return e.baseSalary.Add(e.OvertimePay())
}
