/*
Package factory provides JSON to Go employee conversion.

PURPOSE:
  Converts JSON employee definitions into payroll.Employee values and back.
  The same representation is used by the HTTP API request bodies, the SQLite
  store (employee_json column) and the demo scenarios.

JSON SCHEMA:
  {
    "kind": "engineer",
    "name": "Bob",
    "base_salary": "400000",
    "overtime_hours": "10",
    "overtime_rate": "3000"
  }

  kind:     staff | manager | engineer (default: staff)
  position: only read for staff; managers and engineers get a fixed position
  Amounts may be JSON numbers or strings; they are emitted as strings.

USAGE:
  f := factory.NewEmployeeFactory()
  emp, err := f.ParseEmployee(`{"kind":"manager","name":"Alice","base_salary":500000,"bonus":50000}`)

SEE ALSO:
  - payroll/employee.go: Employee variants
  - store/sqlite/sqlite.go: Stores ToJSON output
*/
package factory

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/warp/payroll-engine/payroll"
)

// =============================================================================
// JSON SCHEMA TYPES
// =============================================================================

// EmployeeJSON is the JSON representation of an employee.
type EmployeeJSON struct {
	Kind          string           `json:"kind"`
	Name          string           `json:"name"`
	Position      string           `json:"position,omitempty"`
	BaseSalary    decimal.Decimal  `json:"base_salary"`
	Bonus         *decimal.Decimal `json:"bonus,omitempty"`
	OvertimeHours *decimal.Decimal `json:"overtime_hours,omitempty"`
	OvertimeRate  *decimal.Decimal `json:"overtime_rate,omitempty"`
}

// =============================================================================
// EMPLOYEE FACTORY
// =============================================================================

// EmployeeFactory converts JSON employees to payroll records.
type EmployeeFactory struct{}

func NewEmployeeFactory() *EmployeeFactory {
	return &EmployeeFactory{}
}

// ParseEmployee parses a JSON string into an Employee.
func (f *EmployeeFactory) ParseEmployee(jsonStr string) (payroll.Employee, error) {
	var ej EmployeeJSON
	if err := json.Unmarshal([]byte(jsonStr), &ej); err != nil {
		return nil, fmt.Errorf("failed to parse employee JSON: %w", err)
	}
	return f.FromJSON(ej)
}

// FromJSON converts EmployeeJSON to the matching Employee variant.
// Missing variant fields count as zero.
func (f *EmployeeFactory) FromJSON(ej EmployeeJSON) (payroll.Employee, error) {
	kind := payroll.KindStaff
	if ej.Kind != "" {
		var err error
		kind, err = payroll.ParseKind(ej.Kind)
		if err != nil {
			return nil, err
		}
	}

	switch kind {
	case payroll.KindManager:
		return payroll.NewManager(ej.Name, ej.BaseSalary, orZero(ej.Bonus)), nil
	case payroll.KindEngineer:
		return payroll.NewEngineer(ej.Name, ej.BaseSalary, orZero(ej.OvertimeHours), orZero(ej.OvertimeRate)), nil
	default:
		return payroll.NewStaff(ej.Name, ej.Position, ej.BaseSalary), nil
	}
}

// ToJSON converts an Employee to its JSON representation.
func (f *EmployeeFactory) ToJSON(e payroll.Employee) EmployeeJSON {
	ej := EmployeeJSON{
		Kind:       string(e.Kind()),
		Name:       e.Name(),
		BaseSalary: e.BaseSalary(),
	}

	switch v := e.(type) {
	case payroll.Manager:
		ej.Bonus = ptr(v.Bonus())
	case payroll.Engineer:
		ej.OvertimeHours = ptr(v.OvertimeHours())
		ej.OvertimeRate = ptr(v.OvertimeRate())
	default:
		ej.Position = e.Position()
	}
	return ej
}

// Marshal encodes an Employee as a JSON string.
func (f *EmployeeFactory) Marshal(e payroll.Employee) (string, error) {
	data, err := json.Marshal(f.ToJSON(e))
	if err != nil {
		return "", fmt.Errorf("failed to encode employee: %w", err)
	}
	return string(data), nil
}

func orZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

func ptr(d decimal.Decimal) *decimal.Decimal {
	return &d
}
