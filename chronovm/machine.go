package chronovm

import (
	"context"
	"iter"
	"log/slog"
	"slices"
)

// A Machine is the execution state of one run of a Program.
type Machine struct {
	prog  *Program
	regs  Registers
	ip    int
	steps int
	out   []int
	log   *slog.Logger
}

// NewMachine returns a machine positioned at the start of p with its own
// copy of regs.
func (p *Program) NewMachine(regs Registers) *Machine {
	return &Machine{prog: p, regs: regs}
}

func (m *Machine) Registers() Registers { return m.regs }
func (m *Machine) IP() int              { return m.ip }
func (m *Machine) Steps() int           { return m.steps }

// SetRegisters overwrites the machine's registers. The program's own
// registers are unaffected.
func (m *Machine) SetRegisters(regs Registers) { m.regs = regs }

// Output returns a copy of the values printed so far.
func (m *Machine) Output() []int { return slices.Clone(m.out) }

// Halted reports whether the instruction pointer has run off the end of
// the listing. A pointer at the last value also halts, since there is no
// operand to read.
func (m *Machine) Halted() bool {
	return m.ip < 0 || m.ip+1 >= len(m.prog.code)
}

// Step executes a single instruction. If the instruction printed a value,
// Step returns it with emitted set. Step does nothing on a halted machine.
func (m *Machine) Step() (v int, emitted bool) {
	if m.Halted() {
		return 0, false
	}
	ip := m.ip
	op, operand := Opcode(m.prog.code[ip]), m.prog.code[ip+1]
	next := ip + 2
	switch op {
	case Adv:
		m.regs.A = m.shift(m.regs.A, m.combo(operand))
	case Bxl:
		m.regs.B ^= operand
	case Bst:
		m.regs.B = m.combo(operand) & 7
	case Jnz:
		// A jump back onto itself still advances.
		if m.regs.A != 0 && operand != ip {
			next = operand
		}
	case Bxc:
		m.regs.B ^= m.regs.C
	case Out:
		v, emitted = m.combo(operand)&7, true
		m.out = append(m.out, v)
	case Bdv:
		m.regs.B = m.shift(m.regs.A, m.combo(operand))
	case Cdv:
		m.regs.C = m.shift(m.regs.A, m.combo(operand))
	default:
		panic(invariant(ip, "unknown opcode %d", int(op)))
	}
	m.ip = next
	m.steps++
	if m.log != nil {
		m.trace(ip, op, operand, v, emitted)
	}
	return v, emitted
}

// Outputs returns a sequence that runs the machine and yields each value
// as it is printed. Breaking out of the loop stops execution, leaving the
// machine where it was.
func (m *Machine) Outputs() iter.Seq[int] {
	return func(yield func(int) bool) {
		for !m.Halted() {
			if v, ok := m.Step(); ok && !yield(v) {
				return
			}
		}
	}
}

// RunN executes at most n instructions and reports whether the machine
// has halted.
func (m *Machine) RunN(n int) bool {
	for i := 0; i < n && !m.Halted(); i++ {
		m.Step()
	}
	return m.Halted()
}

func (m *Machine) combo(operand int) int {
	switch operand {
	case 0, 1, 2, 3:
		return operand
	case 4:
		return m.regs.A
	case 5:
		return m.regs.B
	case 6:
		return m.regs.C
	}
	panic(invariant(m.ip, "combo operand %d", operand))
}

func (m *Machine) shift(v, n int) int {
	if n < 0 {
		panic(invariant(m.ip, "negative shift %d", n))
	}
	return v >> uint(n)
}

// LevelTrace is the slog level of per-instruction records.
const LevelTrace = slog.LevelDebug - 4

// SetLogger makes m log every instruction it executes at LevelTrace.
// A nil logger turns tracing off.
func (m *Machine) SetLogger(l *slog.Logger) {
	m.log = l
}

func (m *Machine) trace(ip int, op Opcode, operand, v int, emitted bool) {
	attrs := []any{
		"ip", ip,
		"op", op.String(),
		"operand", operand,
		"a", m.regs.A,
		"b", m.regs.B,
		"c", m.regs.C,
	}
	if emitted {
		attrs = append(attrs, "out", v)
	}
	m.log.Log(context.Background(), LevelTrace, "step", attrs...)
}
