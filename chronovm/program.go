package chronovm

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Registers holds the three machine registers. It is a value type: every
// Machine works on its own copy.
type Registers struct {
	A, B, C int
}

// A Program is a validated instruction listing plus the registers it
// starts with. It is never modified after NewProgram returns.
type Program struct {
	Registers Registers
	code      []int
}

// NewProgram validates code and returns a Program that owns a copy of it.
//
// The listing must have an even length and contain only 3-bit values, and
// no combo-operand instruction (at an even address) may carry operand 7.
// A jump to an odd address re-pairs the listing; operands decoded that way
// are checked when they execute.
func NewProgram(regs Registers, code []int) (*Program, error) {
	if len(code)%2 != 0 {
		return nil, fmt.Errorf("%w (%d values)", ErrOddLength, len(code))
	}
	for i, v := range code {
		if v < 0 || v > 7 {
			return nil, fmt.Errorf("value %d at index %d: %w", v, i, ErrBadValue)
		}
	}
	for ip := 0; ip < len(code); ip += 2 {
		op := Opcode(code[ip])
		if op.Operand() == Combo && code[ip+1] == 7 {
			return nil, fmt.Errorf("%s at index %d: %w", op, ip, ErrReservedOperand)
		}
	}
	return &Program{Registers: regs, code: slices.Clone(code)}, nil
}

// Len returns the number of values in the listing.
func (p *Program) Len() int { return len(p.code) }

// Code returns a copy of the listing.
func (p *Program) Code() []int { return slices.Clone(p.code) }

// Instruction returns the opcode and operand stored at ip.
// ok is false if there is no complete instruction at ip.
func (p *Program) Instruction(ip int) (op Opcode, operand int, ok bool) {
	if ip < 0 || ip+1 >= len(p.code) {
		return 0, 0, false
	}
	return Opcode(p.code[ip]), p.code[ip+1], true
}

// Run executes p from regs until it halts and returns everything it
// printed. Run does not return for a program that never halts.
func (p *Program) Run(regs Registers) []int {
	m := p.NewMachine(regs)
	for range m.Outputs() {
	}
	return m.Output()
}

// Matches reports whether running p from regs prints exactly want.
// Execution stops at the first value that differs from want, or as soon
// as the program prints more than len(want) values.
func (p *Program) Matches(regs Registers, want []int) bool {
	ok, _ := p.matches(regs, want)
	return ok
}

func (p *Program) matches(regs Registers, want []int) (ok bool, steps int) {
	m := p.NewMachine(regs)
	i := 0
	for v := range m.Outputs() {
		if i >= len(want) || v != want[i] {
			return false, m.Steps()
		}
		i++
	}
	return i == len(want), m.Steps()
}

// Format renders output values the way the puzzle expects them:
// decimal, joined with commas.
func Format(out []int) string {
	var sb strings.Builder
	for i, v := range out {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(v))
	}
	return sb.String()
}
