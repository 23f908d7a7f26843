/*
Package form holds the presentation state of the "add employee" form.

PURPOSE:
  The form shows a different set of inputs depending on the selected
  employee kind. Instead of toggling widgets, the state is a plain value
  advanced by Reduce. Any front end (HTTP, terminal, desktop) renders
  VisibleFields() and feeds user edits back as actions.

FIELDS PER KIND:
  staff:    name, position, base_salary
  manager:  name, base_salary, bonus
  engineer: name, base_salary, overtime_hours, overtime_rate

ACTIONS:
  SelectKind: Switch kind. Values of fields still visible are kept,
              values of fields that disappear are dropped.
  SetField:   Store raw text for a visible field. Hidden fields are ignored.
  Clear:      Empty every value, keep the kind (after a successful submit).

VALIDATION:
  Build() only checks that numeric inputs parse. Negative amounts and empty
  names are accepted; the payroll model does not validate either.

USAGE:
  s := form.New(payroll.KindManager)
  s = form.Reduce(s, form.SetField{Field: form.FieldName, Value: "Alice"})
  s = form.Reduce(s, form.SetField{Field: form.FieldBaseSalary, Value: "500000"})
  s = form.Reduce(s, form.SetField{Field: form.FieldBonus, Value: "50000"})
  emp, err := s.Build()
*/
package form

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/warp/payroll-engine/payroll"
)

// =============================================================================
// FIELDS
// =============================================================================

type Field string

const (
	FieldName          Field = "name"
	FieldPosition      Field = "position"
	FieldBaseSalary    Field = "base_salary"
	FieldBonus         Field = "bonus"
	FieldOvertimeHours Field = "overtime_hours"
	FieldOvertimeRate  Field = "overtime_rate"
)

var layouts = map[payroll.Kind][]Field{
	payroll.KindStaff:    {FieldName, FieldPosition, FieldBaseSalary},
	payroll.KindManager:  {FieldName, FieldBaseSalary, FieldBonus},
	payroll.KindEngineer: {FieldName, FieldBaseSalary, FieldOvertimeHours, FieldOvertimeRate},
}

// Fields returns the inputs shown for kind, in display order.
func Fields(kind payroll.Kind) []Field {
	out := make([]Field, len(layouts[kind]))
	copy(out, layouts[kind])
	return out
}

// =============================================================================
// STATE
// =============================================================================

// State is an immutable snapshot of the form.
type State struct {
	Kind   payroll.Kind
	Values map[Field]string
}

// New returns an empty form for kind.
func New(kind payroll.Kind) State {
	return State{Kind: kind, Values: map[Field]string{}}
}

func (s State) VisibleFields() []Field {
	return Fields(s.Kind)
}

func (s State) Visible(f Field) bool {
	for _, v := range layouts[s.Kind] {
		if v == f {
			return true
		}
	}
	return false
}

// Value returns the raw text entered for f.
func (s State) Value(f Field) string {
	return s.Values[f]
}

// =============================================================================
// ACTIONS
// =============================================================================

// Action is a user edit applied by Reduce.
type Action interface {
	apply(State) State
}

type SelectKind struct {
	Kind payroll.Kind
}

type SetField struct {
	Field Field
	Value string
}

type Clear struct{}

func (a SelectKind) apply(s State) State {
	next := New(a.Kind)
	for _, f := range next.VisibleFields() {
		if v, ok := s.Values[f]; ok {
			next.Values[f] = v
		}
	}
	return next
}

func (a SetField) apply(s State) State {
	if !s.Visible(a.Field) {
		return s
	}
	next := s.clone()
	next.Values[a.Field] = a.Value
	return next
}

func (Clear) apply(s State) State {
	return New(s.Kind)
}

// Reduce returns the state after applying a. s is not modified.
func Reduce(s State, a Action) State {
	return a.apply(s)
}

func (s State) clone() State {
	values := make(map[Field]string, len(s.Values))
	for k, v := range s.Values {
		values[k] = v
	}
	return State{Kind: s.Kind, Values: values}
}

// =============================================================================
// BUILD
// =============================================================================

// ErrInvalidNumber is wrapped by every FieldError.
var ErrInvalidNumber = errors.New("invalid number")

// FieldError reports a field whose text is not a number.
type FieldError struct {
	Field   Field
	Value   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %q", e.Message, e.Value)
}

func (e *FieldError) Unwrap() error {
	return ErrInvalidNumber
}

// Build converts the form into an employee record.
func (s State) Build() (payroll.Employee, error) {
	name := strings.TrimSpace(s.Value(FieldName))

	base, err := s.number(FieldBaseSalary, "invalid base salary")
	if err != nil {
		return nil, err
	}

	switch s.Kind {
	case payroll.KindManager:
		bonus, err := s.number(FieldBonus, "invalid bonus")
		if err != nil {
			return nil, err
		}
		return payroll.NewManager(name, base, bonus), nil

	case payroll.KindEngineer:
		hours, err := s.number(FieldOvertimeHours, "invalid overtime parameters")
		if err != nil {
			return nil, err
		}
		rate, err := s.number(FieldOvertimeRate, "invalid overtime parameters")
		if err != nil {
			return nil, err
		}
		return payroll.NewEngineer(name, base, hours, rate), nil

	case payroll.KindStaff:
		return payroll.NewStaff(name, strings.TrimSpace(s.Value(FieldPosition)), base), nil
	}

	return nil, &payroll.UnknownKindError{Kind: string(s.Kind)}
}

func (s State) number(f Field, message string) (decimal.Decimal, error) {
	raw := s.Value(f)
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, &FieldError{Field: f, Value: raw, Message: message}
	}
	return d, nil
}
