package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cespare/aoc2024/chronovm"
	"github.com/chzyer/readline"
	"github.com/dustin/go-humanize"
	"github.com/kr/pretty"
)

// continueLimit caps "c" without an argument so a looping program returns
// control to the prompt.
const continueLimit = 10000000

const debugHelp = `commands:
  s [n]         step n instructions (default 1)
  c [max]       continue until halt or max steps
  r             show registers
  set a|b|c N   set a register
  reset [A]     restart, optionally with a new value for A
  d             disassemble
  o             show output so far
  q             quit`

type debugger struct {
	prog *chronovm.Program
	m    *chronovm.Machine
	w    io.Writer
}

func newDebugger(p *chronovm.Program, w io.Writer) *debugger {
	return &debugger{prog: p, m: p.NewMachine(p.Registers), w: w}
}

// machineState is what "r" prints.
type machineState struct {
	IP        int
	Steps     int
	Halted    bool
	Registers chronovm.Registers
}

func (d *debugger) run() error {
	l, err := readline.NewEx(&readline.Config{
		Prompt:      "17> ",
		HistoryFile: filepath.Join(os.TempDir(), "advent17.history"),
	})
	if err != nil {
		return err
	}
	defer l.Close()

	for {
		line, err := l.Readline()
		switch err {
		case nil:
		case readline.ErrInterrupt:
			continue
		case io.EOF:
			return nil
		default:
			return err
		}
		quit, err := d.exec(line)
		if err != nil {
			fmt.Fprintln(d.w, err)
			continue
		}
		if quit {
			return nil
		}
	}
}

// exec runs one debugger command.
func (d *debugger) exec(line string) (quit bool, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	args := fields[1:]
	switch fields[0] {
	case "s", "step":
		n, err := optInt(args, 1)
		if err != nil {
			return false, err
		}
		d.step(n)
	case "c", "continue":
		n, err := optInt(args, continueLimit)
		if err != nil {
			return false, err
		}
		start := d.m.Steps()
		halted := d.m.RunN(n)
		verb := "stopped"
		if halted {
			verb = "halted"
		}
		fmt.Fprintf(d.w, "%s after %s steps\n", verb, humanize.Comma(int64(d.m.Steps()-start)))
	case "r", "regs":
		pretty.Fprintf(d.w, "%# v\n", machineState{
			IP:        d.m.IP(),
			Steps:     d.m.Steps(),
			Halted:    d.m.Halted(),
			Registers: d.m.Registers(),
		})
	case "set":
		if len(args) != 2 {
			return false, errors.New("usage: set a|b|c N")
		}
		v, err := strconv.Atoi(args[1])
		if err != nil {
			return false, fmt.Errorf("bad value %q", args[1])
		}
		regs := d.m.Registers()
		switch strings.ToLower(args[0]) {
		case "a":
			regs.A = v
		case "b":
			regs.B = v
		case "c":
			regs.C = v
		default:
			return false, fmt.Errorf("no register %q", args[0])
		}
		d.m.SetRegisters(regs)
	case "reset":
		regs := d.prog.Registers
		if len(args) > 0 {
			a, err := strconv.Atoi(args[0])
			if err != nil {
				return false, fmt.Errorf("bad value %q", args[0])
			}
			regs.A = a
		}
		d.m = d.prog.NewMachine(regs)
	case "d", "dis":
		for i, line := range chronovm.Disassemble(d.prog) {
			mark := "   "
			if i*2 == d.m.IP() {
				mark = "=> "
			}
			fmt.Fprintln(d.w, mark+line)
		}
	case "o", "out":
		fmt.Fprintln(d.w, chronovm.Format(d.m.Output()))
	case "h", "help":
		fmt.Fprintln(d.w, debugHelp)
	case "q", "quit":
		return true, nil
	default:
		return false, fmt.Errorf("unknown command %q (h for help)", fields[0])
	}
	return false, nil
}

func (d *debugger) step(n int) {
	for i := 0; i < n; i++ {
		if d.m.Halted() {
			fmt.Fprintln(d.w, "halted")
			return
		}
		line := chronovm.DisassembleAt(d.prog, d.m.IP())
		if v, ok := d.m.Step(); ok {
			fmt.Fprintf(d.w, "%s  -> out %d\n", line, v)
		} else {
			fmt.Fprintln(d.w, line)
		}
	}
}

func optInt(args []string, def int) (int, error) {
	if len(args) == 0 {
		return def, nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 {
		return 0, fmt.Errorf("bad count %q", args[0])
	}
	return n, nil
}
