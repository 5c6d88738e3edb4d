package history

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmpty(t *testing.T) {
	l := New()
	assert.Zero(t, l.Len())
	assert.Empty(t, l.Records())
	assert.False(t, l.Undo())
	assert.False(t, l.Redo())
}

func TestPush(t *testing.T) {
	l := New()
	l.Push("1+1", 2)
	l.Push("2*3", 6)
	require.Equal(t, 2, l.Len())
	recs := l.Records()
	require.Len(t, recs, 2)
	assert.Equal(t, "1+1", recs[0].Input)
	assert.Equal(t, 2.0, recs[0].Result)
	assert.Equal(t, "2*3", recs[1].Input)
	assert.Equal(t, 6.0, recs[1].Result)
	assert.False(t, recs[0].At.After(recs[1].At))
}

func TestUndoRedo(t *testing.T) {
	l := New()
	l.Push("1+1", 2)
	l.Push("2*3", 6)

	require.True(t, l.Undo())
	assert.Equal(t, 1, l.Len())
	require.True(t, l.Redo())
	require.Equal(t, 2, l.Len())
	assert.Equal(t, "2*3", l.Records()[1].Input)

	// Pushing discards anything undone but not redone.
	require.True(t, l.Undo())
	l.Push("4-5", -1)
	assert.False(t, l.Redo())
	require.Equal(t, 2, l.Len())
	assert.Equal(t, "4-5", l.Records()[1].Input)
}

func TestClear(t *testing.T) {
	l := New()
	l.Push("1+1", 2)
	require.True(t, l.Undo())
	l.Push("2*3", 6)
	l.Clear()
	assert.Zero(t, l.Len())
	assert.False(t, l.Undo())
	assert.False(t, l.Redo())
}

func TestRecordsIsACopy(t *testing.T) {
	l := New()
	l.Push("1+1", 2)
	recs := l.Records()
	recs[0].Input = "mutated"
	assert.Equal(t, "1+1", l.Records()[0].Input)
}

type recObserver struct {
	recs []Record
}

func (o *recObserver) Notify(rec Record) {
	o.recs = append(o.recs, rec)
}

func TestObservers(t *testing.T) {
	l := New()
	o := &recObserver{}
	l.Observe(o)

	l.Push("1+1", 2)
	require.Len(t, o.recs, 1)
	assert.Equal(t, "1+1", o.recs[0].Input)

	// Undo and redo replay nothing.
	require.True(t, l.Undo())
	require.True(t, l.Redo())
	assert.Len(t, o.recs, 1)

	l.Unobserve(o)
	l.Push("2*3", 6)
	assert.Len(t, o.recs, 1)

	// Removing an unknown observer is fine.
	l.Unobserve(&recObserver{})
}

func TestLogObserver(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))
	o := NewLogObserver(log)
	o.Notify(Record{Input: "1+1", Result: 2})
	out := buf.String()
	assert.Contains(t, out, "calculation")
	assert.Contains(t, out, "input=1+1")
	assert.Contains(t, out, "result=2")
}
