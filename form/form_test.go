package form_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/payroll-engine/form"
	"github.com/warp/payroll-engine/payroll"
)

func fill(s form.State, values map[form.Field]string) form.State {
	for f, v := range values {
		s = form.Reduce(s, form.SetField{Field: f, Value: v})
	}
	return s
}

func TestVisibleFields_PerKind(t *testing.T) {
	assert.Equal(t,
		[]form.Field{form.FieldName, form.FieldBaseSalary, form.FieldBonus},
		form.New(payroll.KindManager).VisibleFields())
	assert.Equal(t,
		[]form.Field{form.FieldName, form.FieldBaseSalary, form.FieldOvertimeHours, form.FieldOvertimeRate},
		form.New(payroll.KindEngineer).VisibleFields())
	assert.Equal(t,
		[]form.Field{form.FieldName, form.FieldPosition, form.FieldBaseSalary},
		form.New(payroll.KindStaff).VisibleFields())
	assert.Empty(t, form.New("intern").VisibleFields())
}

func TestSelectKind_KeepsSharedDropsHidden(t *testing.T) {
	// GIVEN: A manager form with name, base and bonus filled in
	// WHEN: Switching to engineer
	// THEN: Name and base survive, bonus is dropped

	s := fill(form.New(payroll.KindManager), map[form.Field]string{
		form.FieldName:       "Alice",
		form.FieldBaseSalary: "500000",
		form.FieldBonus:      "50000",
	})

	s = form.Reduce(s, form.SelectKind{Kind: payroll.KindEngineer})

	assert.Equal(t, payroll.KindEngineer, s.Kind)
	assert.Equal(t, "Alice", s.Value(form.FieldName))
	assert.Equal(t, "500000", s.Value(form.FieldBaseSalary))
	assert.Empty(t, s.Value(form.FieldBonus))

	s = form.Reduce(s, form.SelectKind{Kind: payroll.KindManager})
	assert.Empty(t, s.Value(form.FieldBonus))
}

func TestSetField_HiddenFieldIgnored(t *testing.T) {
	s := form.New(payroll.KindManager)
	next := form.Reduce(s, form.SetField{Field: form.FieldOvertimeHours, Value: "10"})

	assert.Empty(t, next.Value(form.FieldOvertimeHours))
}

func TestReduce_DoesNotMutateInput(t *testing.T) {
	s := form.New(payroll.KindManager)
	_ = form.Reduce(s, form.SetField{Field: form.FieldName, Value: "Alice"})

	assert.Empty(t, s.Value(form.FieldName))
}

func TestClear_KeepsKind(t *testing.T) {
	s := fill(form.New(payroll.KindEngineer), map[form.Field]string{form.FieldName: "Bob"})
	s = form.Reduce(s, form.Clear{})

	assert.Equal(t, payroll.KindEngineer, s.Kind)
	assert.Empty(t, s.Values)
}

func TestBuild_Manager(t *testing.T) {
	s := fill(form.New(payroll.KindManager), map[form.Field]string{
		form.FieldName:       "  Alice ",
		form.FieldBaseSalary: "500000",
		form.FieldBonus:      " 50000 ",
	})

	emp, err := s.Build()
	require.NoError(t, err)
	assert.Equal(t, "Alice", emp.Name())
	assert.True(t, emp.Pay().Equal(decimal.NewFromInt(550000)))
}

func TestBuild_Engineer(t *testing.T) {
	s := fill(form.New(payroll.KindEngineer), map[form.Field]string{
		form.FieldName:          "Bob",
		form.FieldBaseSalary:    "400000",
		form.FieldOvertimeHours: "10",
		form.FieldOvertimeRate:  "3000",
	})

	emp, err := s.Build()
	require.NoError(t, err)
	assert.Equal(t, payroll.KindEngineer, emp.Kind())
	assert.True(t, emp.Pay().Equal(decimal.NewFromInt(430000)))
}

func TestBuild_Staff(t *testing.T) {
	s := fill(form.New(payroll.KindStaff), map[form.Field]string{
		form.FieldName:       "Carol",
		form.FieldPosition:   "Accountant",
		form.FieldBaseSalary: "1.5e5",
	})

	emp, err := s.Build()
	require.NoError(t, err)
	assert.Equal(t, "Accountant", emp.Position())
	assert.True(t, emp.Pay().Equal(decimal.NewFromInt(150000)))
}

func TestBuild_EmptyNameAndNegativeAccepted(t *testing.T) {
	s := fill(form.New(payroll.KindManager), map[form.Field]string{
		form.FieldBaseSalary: "-10",
		form.FieldBonus:      "5",
	})

	emp, err := s.Build()
	require.NoError(t, err)
	assert.Equal(t, "", emp.Name())
	assert.Equal(t, "-5", emp.Pay().String())
}

func TestBuild_InvalidNumbers(t *testing.T) {
	tests := []struct {
		name    string
		kind    payroll.Kind
		values  map[form.Field]string
		field   form.Field
		message string
	}{
		{
			name:    "missing base",
			kind:    payroll.KindManager,
			values:  map[form.Field]string{form.FieldBonus: "1"},
			field:   form.FieldBaseSalary,
			message: "invalid base salary",
		},
		{
			name:    "bad bonus",
			kind:    payroll.KindManager,
			values:  map[form.Field]string{form.FieldBaseSalary: "1", form.FieldBonus: "lots"},
			field:   form.FieldBonus,
			message: "invalid bonus",
		},
		{
			name:    "bad hours",
			kind:    payroll.KindEngineer,
			values:  map[form.Field]string{form.FieldBaseSalary: "1", form.FieldOvertimeHours: "ten", form.FieldOvertimeRate: "1"},
			field:   form.FieldOvertimeHours,
			message: "invalid overtime parameters",
		},
		{
			name:    "bad rate",
			kind:    payroll.KindEngineer,
			values:  map[form.Field]string{form.FieldBaseSalary: "1", form.FieldOvertimeHours: "1", form.FieldOvertimeRate: ""},
			field:   form.FieldOvertimeRate,
			message: "invalid overtime parameters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fill(form.New(tt.kind), tt.values).Build()
			require.Error(t, err)
			assert.ErrorIs(t, err, form.ErrInvalidNumber)

			var fieldErr *form.FieldError
			require.ErrorAs(t, err, &fieldErr)
			assert.Equal(t, tt.field, fieldErr.Field)
			assert.Equal(t, tt.message, fieldErr.Message)
		})
	}
}

func TestBuild_UnknownKind(t *testing.T) {
	s := fill(form.New("intern"), nil)
	s.Values[form.FieldBaseSalary] = "1"

	_, err := s.Build()
	assert.ErrorIs(t, err, payroll.ErrUnknownKind)
}
