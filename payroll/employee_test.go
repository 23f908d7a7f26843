package payroll_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/warp/payroll-engine/payroll"
)

func TestEmployee_Accessors(t *testing.T) {
	m := payroll.NewManager("Alice", dec(500000), dec(50000))
	assert.Equal(t, "Alice", m.Name())
	assert.Equal(t, payroll.PositionManager, m.Position())
	assert.Equal(t, payroll.KindManager, m.Kind())
	assert.True(t, m.BaseSalary().Equal(dec(500000)))
	assert.True(t, m.Bonus().Equal(dec(50000)))

	e := payroll.NewEngineer("Bob", dec(400000), dec(10), dec(3000))
	assert.Equal(t, payroll.PositionEngineer, e.Position())
	assert.Equal(t, payroll.KindEngineer, e.Kind())
	assert.True(t, e.OvertimeHours().Equal(dec(10)))
	assert.True(t, e.OvertimeRate().Equal(dec(3000)))
	assert.True(t, e.OvertimePay().Equal(dec(30000)))

	s := payroll.NewStaff("", "Intern", dec(0))
	assert.Equal(t, "", s.Name())
	assert.Equal(t, payroll.KindStaff, s.Kind())
}

func TestEmployee_String(t *testing.T) {
	assert.Equal(t, "Alice (Manager)", fmt.Sprint(payroll.NewManager("Alice", dec(1), dec(1))))
	assert.Equal(t, "Bob (Engineer)", fmt.Sprint(payroll.NewEngineer("Bob", dec(1), dec(1), dec(1))))
	assert.Equal(t, "Carol (Clerk)", fmt.Sprint(payroll.NewStaff("Carol", "Clerk", dec(1))))
}

func TestParseKind(t *testing.T) {
	for _, k := range payroll.Kinds {
		got, err := payroll.ParseKind(string(k))
		assert.NoError(t, err)
		assert.Equal(t, k, got)
	}

	_, err := payroll.ParseKind("intern")
	assert.True(t, errors.Is(err, payroll.ErrUnknownKind))
	assert.True(t, payroll.IsClientError(err))
	assert.Contains(t, err.Error(), `"intern"`)
}
