package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/arithgo/arith"
	"github.com/arithgo/arith/history"
)

var (
	promptColor = color.New(color.FgCyan)
	errColor    = color.New(color.FgRed)
)

// repl reads commands and expressions line by line. Any line that is not
// a recognized command is evaluated as an expression.
type repl struct {
	in    io.Reader
	out   io.Writer
	errw  io.Writer
	hist  *history.List
	verb  string
	echo  bool
	color bool
}

func (r *repl) run() error {
	fmt.Fprintln(r.out, `calc: type an expression, or "help" for commands`)
	scan := bufio.NewScanner(r.in)
	for {
		r.prompt()
		if !scan.Scan() {
			break
		}
		line := strings.TrimSpace(scan.Text())
		switch line {
		case "":
			// Nothing to do.
		case "exit", "quit":
			fmt.Fprintln(r.out, "goodbye")
			return nil
		case "help":
			r.help()
		case "history":
			recs := r.hist.Records()
			if len(recs) == 0 {
				fmt.Fprintln(r.out, "no calculations in history")
				break
			}
			for i, rec := range recs {
				fmt.Fprintf(r.out, "%d. %s = "+r.verb+"\n", i+1, rec.Input, rec.Result)
			}
		case "undo":
			if r.hist.Undo() {
				fmt.Fprintln(r.out, "operation undone")
			} else {
				fmt.Fprintln(r.out, "nothing to undo")
			}
		case "redo":
			if r.hist.Redo() {
				fmt.Fprintln(r.out, "operation redone")
			} else {
				fmt.Fprintln(r.out, "nothing to redo")
			}
		case "clear":
			r.hist.Clear()
			fmt.Fprintln(r.out, "history cleared")
		default:
			v, err := r.eval(line)
			if err != nil {
				r.errorf("%v\n", err)
				continue
			}
			fmt.Fprintf(r.out, r.verb+"\n", v)
		}
	}
	return scan.Err()
}

// eval parses and evaluates one expression line and appends it to the
// history.
func (r *repl) eval(line string) (float64, error) {
	a, err := arith.ParseString(line)
	if err != nil {
		return 0, err
	}
	if r.echo {
		fmt.Fprintf(r.out, "%v : ", a)
	}
	v, err := a.Eval()
	if err != nil {
		return 0, err
	}
	r.hist.Push(line, v)
	return v, nil
}

func (r *repl) prompt() {
	if r.color {
		promptColor.Fprint(r.out, "> ")
		return
	}
	fmt.Fprint(r.out, "> ")
}

func (r *repl) errorf(format string, args ...any) {
	if r.color {
		errColor.Fprintf(r.errw, format, args...)
		return
	}
	fmt.Fprintf(r.errw, format, args...)
}

func (r *repl) help() {
	fmt.Fprint(r.out, `commands:
  help     show this message
  history  list calculations so far
  undo     remove the most recent calculation
  redo     restore the most recently undone calculation
  clear    discard all history
  exit     leave the calculator (also: quit)
anything else is evaluated as an arithmetic expression
`)
}
