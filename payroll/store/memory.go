// Package store provides payroll.Store implementations.
package store

import (
	"context"
	"sync"

	"github.com/warp/payroll-engine/payroll"
)

// =============================================================================
// MEMORY STORE - Synchronized roster (default backend)
// =============================================================================

type Memory struct {
	mu     sync.RWMutex
	roster payroll.Roster
}

func NewMemory() *Memory {
	return &Memory{}
}

var _ payroll.Store = (*Memory)(nil)

func (m *Memory) Add(_ context.Context, e payroll.Employee) (payroll.Entry, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry := m.roster.Add(e)
	return entry, m.roster.Len() - 1, nil
}

func (m *Memory) Remove(_ context.Context, index int) (payroll.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.roster.Remove(index)
}

func (m *Memory) List(_ context.Context) ([]payroll.Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.roster.List(), nil
}

// Reset drops every entry.
func (m *Memory) Reset(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.roster = payroll.Roster{}
	return nil
}

func (m *Memory) CountByKind(_ context.Context) (map[payroll.Kind]int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	counts := make(map[payroll.Kind]int)
	for _, e := range m.roster.List() {
		counts[e.Employee.Kind()]++
	}
	return counts, nil
}
