package payroll

// =============================================================================
// ROSTER - Ordered, mutable collection of employee records
// =============================================================================

// Roster holds employee records in insertion order.
//
// The zero value is an empty roster ready for use. A Roster is NOT safe for
// concurrent use; wrap it (see payroll/store) when several goroutines share it.
type Roster struct {
	entries []Entry
}

// Add appends e to the end of the roster and returns its slot.
func (r *Roster) Add(e Employee) Entry {
	entry := Entry{ID: NewEmployeeID(), Employee: e}
	r.entries = append(r.entries, entry)
	return entry
}

// Remove deletes the entry at index. Later entries shift down by one.
// An invalid index returns *IndexOutOfRangeError and leaves the roster untouched.
func (r *Roster) Remove(index int) (Entry, error) {
	if index < 0 || index >= len(r.entries) {
		return Entry{}, &IndexOutOfRangeError{Index: index, Len: len(r.entries)}
	}
	removed := r.entries[index]
	copy(r.entries[index:], r.entries[index+1:])
	r.entries[len(r.entries)-1] = Entry{}
	r.entries = r.entries[:len(r.entries)-1]
	return removed, nil
}

// List returns a copy of the entries in insertion order.
func (r *Roster) List() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

func (r *Roster) Len() int { return len(r.entries) }

// ComputePayroll maps every entry to its pay. It does not modify the roster.
func (r *Roster) ComputePayroll() Payroll {
	return Compute(r.entries)
}

// Compute maps each entry to its pay in a single pass, preserving order.
func Compute(entries []Entry) Payroll {
	p := Payroll{
		Lines: make([]Line, 0, len(entries)),
		index: make(map[EmployeeID]int, len(entries)),
	}
	for _, e := range entries {
		p.index[e.ID] = len(p.Lines)
		p.Lines = append(p.Lines, Line{
			ID:       e.ID,
			Employee: e.Employee,
			Amount:   e.Employee.Pay(),
		})
	}
	return p
}
