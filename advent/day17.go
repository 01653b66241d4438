package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/cespare/aoc2024/chronovm"
	"github.com/dustin/go-humanize"
)

func init() {
	register("17a", day17a)
	register("17b", day17b)
	register("17dis", day17dis)
	register("17debug", day17debug)
}

// readProgram parses the file named by args[0], or stdin if there are no
// args.
func readProgram(e *env, args []string) (*chronovm.Program, error) {
	switch len(args) {
	case 0:
		return chronovm.Parse(e.stdin)
	case 1:
		f, err := os.Open(args[0])
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return chronovm.Parse(f)
	}
	return nil, errors.New("need at most 1 arg (input file)")
}

func day17a(e *env, args []string) error {
	p, err := readProgram(e, args)
	if err != nil {
		return err
	}
	m := p.NewMachine(p.Registers)
	if e.trace {
		m.SetLogger(slog.New(slog.NewTextHandler(e.stderr, &slog.HandlerOptions{
			Level: chronovm.LevelTrace,
		})))
	}
	for range m.Outputs() {
	}
	fmt.Fprintln(e.stdout, chronovm.Format(m.Output()))
	return nil
}

func day17b(e *env, args []string) error {
	p, err := readProgram(e, args)
	if err != nil {
		return err
	}
	var s chronovm.Search
	n, err := s.Run(p)
	if e.verbose {
		fmt.Fprintf(e.stderr, "tried %s candidates (%s instructions)\n",
			humanize.Comma(int64(s.Stats.Trials)), humanize.Comma(int64(s.Stats.Steps)))
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(e.stdout, n)
	return nil
}

func day17dis(e *env, args []string) error {
	p, err := readProgram(e, args)
	if err != nil {
		return err
	}
	fmt.Fprintf(e.stdout, "A=%d B=%d C=%d\n", p.Registers.A, p.Registers.B, p.Registers.C)
	for _, line := range chronovm.Disassemble(p) {
		fmt.Fprintln(e.stdout, line)
	}
	return nil
}

func day17debug(e *env, args []string) error {
	if len(args) != 1 {
		return errors.New("need 1 arg (input file); stdin belongs to the debugger")
	}
	p, err := readProgram(e, args)
	if err != nil {
		return err
	}
	return newDebugger(p, e.stdout).run()
}
