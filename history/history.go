// Package history keeps an append-only record of calculations.
//
// The evaluator in package arith is stateless; any memory of past
// calculations belongs to the caller. A List is that memory: the caller
// appends each (input, result) pair and may step backward and forward
// through what it has appended. A List is not safe for concurrent use.
package history

import (
	"time"
)

// Record is one completed calculation.
type Record struct {
	// Input is the expression text as the user entered it.
	Input string
	// Result is the value the expression evaluated to.
	Result float64
	// At is when the calculation happened.
	At time.Time
}

// Observer is notified of each record appended to a List.
type Observer interface {
	Notify(Record)
}

// List is an append-only sequence of calculations with undo and redo.
// The zero List is ready to use.
type List struct {
	recs []Record
	redo []Record
	obs  []Observer
}

// New creates an empty history.
func New() *List {
	return &List{}
}

// Observe registers an observer to be notified of every future Push.
func (l *List) Observe(o Observer) {
	l.obs = append(l.obs, o)
}

// Unobserve removes a previously registered observer. Removing an
// observer that was never registered does nothing.
func (l *List) Unobserve(o Observer) {
	for i, v := range l.obs {
		if v == o {
			l.obs = append(l.obs[:i], l.obs[i+1:]...)
			return
		}
	}
}

// Push appends a calculation to the history and notifies observers.
// Any records undone but not redone are discarded.
func (l *List) Push(input string, result float64) Record {
	rec := Record{Input: input, Result: result, At: time.Now()}
	l.recs = append(l.recs, rec)
	l.redo = l.redo[:0]
	for _, o := range l.obs {
		o.Notify(rec)
	}
	return rec
}

// Undo removes the most recent record, keeping it available for Redo.
// It reports whether there was a record to remove.
func (l *List) Undo() bool {
	if len(l.recs) == 0 {
		return false
	}
	rec := l.recs[len(l.recs)-1]
	l.recs = l.recs[:len(l.recs)-1]
	l.redo = append(l.redo, rec)
	return true
}

// Redo restores the most recently undone record. It reports whether
// there was a record to restore. Redo does not notify observers; the
// calculation already happened.
func (l *List) Redo() bool {
	if len(l.redo) == 0 {
		return false
	}
	rec := l.redo[len(l.redo)-1]
	l.redo = l.redo[:len(l.redo)-1]
	l.recs = append(l.recs, rec)
	return true
}

// Clear discards all records, including those available for Redo.
func (l *List) Clear() {
	l.recs = l.recs[:0]
	l.redo = l.redo[:0]
}

// Len returns the number of records in the history.
func (l *List) Len() int {
	return len(l.recs)
}

// Records returns a copy of the records in the order they were pushed.
func (l *List) Records() []Record {
	return append([]Record(nil), l.recs...)
}
