package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arithgo/arith"
	"github.com/arithgo/arith/history"
)

func newTestRepl(input string) (*repl, *bytes.Buffer, *bytes.Buffer) {
	var out, errw bytes.Buffer
	r := &repl{
		in:   strings.NewReader(input),
		out:  &out,
		errw: &errw,
		hist: history.New(),
		verb: "%g",
	}
	return r, &out, &errw
}

func TestReplSession(t *testing.T) {
	r, out, errw := newTestRepl("2 + 3 * 4\nhistory\nundo\nhistory\nredo\nexit\n")
	require.NoError(t, r.run())
	s := out.String()
	assert.Contains(t, s, "14")
	assert.Contains(t, s, "1. 2 + 3 * 4 = 14")
	assert.Contains(t, s, "operation undone")
	assert.Contains(t, s, "no calculations in history")
	assert.Contains(t, s, "operation redone")
	assert.Contains(t, s, "goodbye")
	assert.Empty(t, errw.String())
	assert.Equal(t, 1, r.hist.Len())
}

func TestReplErrors(t *testing.T) {
	r, _, errw := newTestRepl("2 $ 3\n4 / 0\n2 + \nquit\n")
	require.NoError(t, r.run())
	s := errw.String()
	assert.Contains(t, s, "invalid character")
	assert.Contains(t, s, "division by zero")
	assert.Contains(t, s, "expected expression")
	assert.Zero(t, r.hist.Len())
}

func TestReplCommands(t *testing.T) {
	r, out, _ := newTestRepl("help\n1+1\nclear\nhistory\nundo\nexit\n")
	require.NoError(t, r.run())
	s := out.String()
	assert.Contains(t, s, "commands:")
	assert.Contains(t, s, "history cleared")
	assert.Contains(t, s, "no calculations in history")
	assert.Contains(t, s, "nothing to undo")
}

func TestReplEOF(t *testing.T) {
	r, _, _ := newTestRepl("1+1\n")
	require.NoError(t, r.run())
	assert.Equal(t, 1, r.hist.Len())
}

func TestEvalArgs(t *testing.T) {
	var out bytes.Buffer
	hist := history.New()
	flags := &CalcFlags{Fmt: "%g"}
	require.NoError(t, evalArgs([]string{"2+3", "10-2-3"}, &out, hist, flags))
	assert.Equal(t, "5\n5\n", out.String())
	assert.Equal(t, 2, hist.Len())
}

func TestEvalArgsError(t *testing.T) {
	var out bytes.Buffer
	err := evalArgs([]string{"4/0"}, &out, history.New(), &CalcFlags{Fmt: "%g"})
	require.Error(t, err)
	assert.True(t, errors.As(err, new(*arith.DivisionByZeroError)))
}

func TestEvalStream(t *testing.T) {
	var out bytes.Buffer
	hist := history.New()
	src := strings.NewReader("1+2\n3*4\n\n")
	require.NoError(t, evalStream(src, &out, hist, &CalcFlags{Fmt: "%g"}))
	assert.Equal(t, "3\n12\n", out.String())
	assert.Equal(t, 2, hist.Len())
}

func TestEvalStreamError(t *testing.T) {
	var out bytes.Buffer
	src := strings.NewReader("1+2\n2 +\n")
	err := evalStream(src, &out, history.New(), &CalcFlags{Fmt: "%g"})
	require.Error(t, err)
	assert.True(t, errors.As(err, new(*arith.SyntaxError)))
}

func TestReplEcho(t *testing.T) {
	r, out, _ := newTestRepl("(2+3)*4\nexit\n")
	r.echo = true
	require.NoError(t, r.run())
	assert.Contains(t, out.String(), "((2) + (3)) * (4)")
}
