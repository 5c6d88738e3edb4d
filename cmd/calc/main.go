package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"unicode"

	"github.com/urfave/cli/v2"
	"golang.org/x/term"

	"github.com/arithgo/arith"
	"github.com/arithgo/arith/history"
)

// CalcFlags defines the command-line flags for calc.
type CalcFlags struct {
	Fmt   string
	Echo  bool
	Quiet bool
}

func (flags *CalcFlags) AsCliFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Destination: &flags.Fmt,
			Name:        "fmt",
			Value:       "%g",
			Usage:       "result formatting verb",
		},
		&cli.BoolFlag{
			Destination: &flags.Echo,
			Name:        "echo",
			Usage:       "print parse trees along with results",
		},
		&cli.BoolFlag{
			Destination: &flags.Quiet,
			Name:        "quiet",
			Usage:       "suppress the calculation log",
		},
	}
}

func main() {
	var flags CalcFlags
	app := &cli.App{
		Name:      "calc",
		Usage:     "evaluate arithmetic expressions",
		ArgsUsage: "[expression ...]",
		Description: "With arguments, each argument is evaluated as one expression.\n" +
			"With no arguments and a terminal on stdin, calc runs interactively;\n" +
			"otherwise it evaluates newline-separated expressions from stdin.",
		Flags: (&flags).AsCliFlags(),
		Action: func(c *cli.Context) error {
			logw := io.Writer(os.Stderr)
			if flags.Quiet {
				logw = io.Discard
			}
			log := slog.New(slog.NewTextHandler(logw, nil))
			hist := history.New()
			hist.Observe(history.NewLogObserver(log))
			if c.NArg() > 0 {
				return evalArgs(c.Args().Slice(), os.Stdout, hist, &flags)
			}
			if term.IsTerminal(int(os.Stdin.Fd())) {
				r := repl{
					in:    os.Stdin,
					out:   os.Stdout,
					errw:  os.Stderr,
					hist:  hist,
					verb:  flags.Fmt,
					echo:  flags.Echo,
					color: true,
				}
				return r.run()
			}
			return evalStream(bufio.NewReader(os.Stdin), os.Stdout, hist, &flags)
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// evalArgs evaluates each argument as one expression, stopping at the
// first error.
func evalArgs(args []string, out io.Writer, hist *history.List, flags *CalcFlags) error {
	for _, arg := range args {
		a, err := arith.ParseString(arg)
		if err != nil {
			return fmt.Errorf("parsing %q: %w", arg, err)
		}
		if flags.Echo {
			fmt.Fprintf(out, "%v : ", a)
		}
		v, err := a.Eval()
		if err != nil {
			return fmt.Errorf("evaluating %q: %w", arg, err)
		}
		hist.Push(arg, v)
		fmt.Fprintf(out, flags.Fmt+"\n", v)
	}
	return nil
}

// evalStream evaluates newline-separated expressions from src until EOF,
// stopping at the first error.
func evalStream(src io.RuneScanner, out io.Writer, hist *history.List, flags *CalcFlags) error {
	for {
		// Skip blank space between expressions and stop cleanly at EOF.
		r, _, err := src.ReadRune()
		switch {
		case errors.Is(err, io.EOF):
			return nil
		case err != nil:
			return err
		case unicode.IsSpace(r):
			continue
		}
		if err := src.UnreadRune(); err != nil {
			return err
		}
		a, err := arith.Parse(src, arith.StopOn('\n'))
		if err != nil {
			return err
		}
		if flags.Echo {
			fmt.Fprintf(out, "%v : ", a)
		}
		v, err := a.Eval()
		if err != nil {
			return err
		}
		hist.Push(a.String(), v)
		fmt.Fprintf(out, flags.Fmt+"\n", v)
	}
}
