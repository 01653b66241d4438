package chronovm

import "fmt"

// An Opcode is one of the eight machine instructions.
type Opcode int

const (
	Adv Opcode = iota // A = A >> combo
	Bxl               // B = B ^ literal
	Bst               // B = combo % 8
	Jnz               // if A != 0, jump to literal
	Bxc               // B = B ^ C (operand ignored)
	Out               // emit combo % 8
	Bdv               // B = A >> combo
	Cdv               // C = A >> combo
)

var opNames = [...]string{"adv", "bxl", "bst", "jnz", "bxc", "out", "bdv", "cdv"}

func (op Opcode) String() string {
	if op < 0 || int(op) >= len(opNames) {
		return fmt.Sprintf("Opcode(%d)", int(op))
	}
	return opNames[op]
}

// Valid reports whether op is one of the eight defined opcodes.
func (op Opcode) Valid() bool {
	return op >= Adv && op <= Cdv
}

// OperandKind says how an instruction interprets its operand.
type OperandKind int

const (
	Literal OperandKind = iota
	Combo
	Ignored
)

func (k OperandKind) String() string {
	switch k {
	case Literal:
		return "literal"
	case Combo:
		return "combo"
	case Ignored:
		return "ignored"
	}
	return fmt.Sprintf("OperandKind(%d)", int(k))
}

// Operand returns the operand kind op expects.
// It panics if op is not valid.
func (op Opcode) Operand() OperandKind {
	switch op {
	case Adv, Bst, Out, Bdv, Cdv:
		return Combo
	case Bxl, Jnz:
		return Literal
	case Bxc:
		return Ignored
	}
	panic(fmt.Sprintf("chronovm: unknown opcode %d", int(op)))
}
