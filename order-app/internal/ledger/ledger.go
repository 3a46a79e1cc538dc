// Package ledger tracks how many of each extra the customer picked for the
// dish being configured. A Ledger is a value: every mutation returns a new
// Ledger and leaves the receiver untouched.
package ledger

import "gofood/order-app/internal/domain"

type Ledger struct {
	selections []domain.ExtraSelection
}

// Initialize builds a fresh ledger with every extra at quantity zero.
func Initialize(definitions []domain.ExtraDefinition) Ledger {
	selections := make([]domain.ExtraSelection, 0, len(definitions))
	for _, definition := range definitions {
		selections = append(selections, domain.ExtraSelection{ExtraDefinition: definition})
	}
	return Ledger{selections: selections}
}

// Increment adds one to the extra. Unknown ids leave the ledger as is.
func (l Ledger) Increment(extraID int) Ledger {
	return l.adjust(extraID, 1)
}

// Decrement removes one from the extra, never going below zero.
func (l Ledger) Decrement(extraID int) Ledger {
	return l.adjust(extraID, -1)
}

func (l Ledger) adjust(extraID, delta int) Ledger {
	idx := l.indexOf(extraID)
	if idx < 0 {
		return l
	}
	if l.selections[idx].Quantity+delta < 0 {
		return l
	}

	next := l.Selections()
	next[idx].Quantity += delta
	return Ledger{selections: next}
}

// Selections returns a copy of the current selections in definition order.
func (l Ledger) Selections() []domain.ExtraSelection {
	out := make([]domain.ExtraSelection, len(l.selections))
	copy(out, l.selections)
	return out
}

func (l Ledger) Quantity(extraID int) (int, bool) {
	idx := l.indexOf(extraID)
	if idx < 0 {
		return 0, false
	}
	return l.selections[idx].Quantity, true
}

func (l Ledger) Len() int {
	return len(l.selections)
}

func (l Ledger) indexOf(extraID int) int {
	for i, selection := range l.selections {
		if selection.ID == extraID {
			return i
		}
	}
	return -1
}
