package store_test

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/payroll-engine/payroll"
	"github.com/warp/payroll-engine/payroll/store"
)

func TestMemory_AddRemoveList(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory()

	alice, index, err := m.Add(ctx, payroll.NewManager("Alice", decimal.NewFromInt(500000), decimal.NewFromInt(50000)))
	require.NoError(t, err)
	assert.Equal(t, 0, index)
	_, index, err = m.Add(ctx, payroll.NewEngineer("Bob", decimal.NewFromInt(400000), decimal.NewFromInt(10), decimal.NewFromInt(3000)))
	require.NoError(t, err)
	assert.Equal(t, 1, index)

	entries, err := m.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, alice.ID, entries[0].ID)

	removed, err := m.Remove(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, removed.ID)

	_, err = m.Remove(ctx, 5)
	assert.ErrorIs(t, err, payroll.ErrIndexOutOfRange)

	p, err := payroll.ComputeFrom(ctx, m)
	require.NoError(t, err)
	amount, ok := p.Lookup("Bob")
	require.True(t, ok)
	assert.True(t, amount.Equal(decimal.NewFromInt(430000)))
}

func TestMemory_Reset(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory()
	_, _, _ = m.Add(ctx, payroll.NewStaff("a", "b", decimal.Zero))

	require.NoError(t, m.Reset(ctx))

	entries, err := m.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestMemory_ConcurrentAdds(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, _ = m.Add(ctx, payroll.NewStaff("w", "Clerk", decimal.NewFromInt(1)))
			_, _ = m.List(ctx)
		}()
	}
	wg.Wait()

	entries, err := m.List(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 50)
}

func TestMemory_AddReportsPositionAfterRemove(t *testing.T) {
	// GIVEN: a, b with a removed
	// WHEN: Adding c
	// THEN: c lands at position 1, right after b

	ctx := context.Background()
	m := store.NewMemory()
	_, _, _ = m.Add(ctx, payroll.NewStaff("a", "Clerk", decimal.Zero))
	_, _, _ = m.Add(ctx, payroll.NewStaff("b", "Clerk", decimal.Zero))
	_, err := m.Remove(ctx, 0)
	require.NoError(t, err)

	c, index, err := m.Add(ctx, payroll.NewStaff("c", "Clerk", decimal.Zero))
	require.NoError(t, err)
	assert.Equal(t, 1, index)

	entries, err := m.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, c.ID, entries[index].ID)
}

func TestMemory_ConcurrentAdds_UniquePositions(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory()

	const n = 50
	positions := make([]int, n)
	ids := make([]payroll.EmployeeID, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		i := i
		go func() {
			defer wg.Done()
			e, index, _ := m.Add(ctx, payroll.NewStaff("w", "Clerk", decimal.Zero))
			positions[i], ids[i] = index, e.ID
		}()
	}
	wg.Wait()

	entries, err := m.List(ctx)
	require.NoError(t, err)
	for i := range positions {
		assert.Equal(t, ids[i], entries[positions[i]].ID)
	}
}

func TestMemory_CountByKind(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory()
	_, _, _ = m.Add(ctx, payroll.NewStaff("s", "Clerk", decimal.Zero))
	_, _, _ = m.Add(ctx, payroll.NewEngineer("e1", decimal.Zero, decimal.Zero, decimal.Zero))
	_, _, _ = m.Add(ctx, payroll.NewEngineer("e2", decimal.Zero, decimal.Zero, decimal.Zero))

	counts, err := m.CountByKind(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[payroll.Kind]int{payroll.KindStaff: 1, payroll.KindEngineer: 2}, counts)
}
