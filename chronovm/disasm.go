package chronovm

import (
	"fmt"
	"strconv"
)

// Disassemble returns one line per instruction of p, such as
//
//	  0  adv 3
//	  2  out a
//	  4  jnz 0
func Disassemble(p *Program) []string {
	var lines []string
	for ip := 0; ip+1 < len(p.code); ip += 2 {
		lines = append(lines, DisassembleAt(p, ip))
	}
	return lines
}

// DisassembleAt formats the instruction at ip the same way as
// Disassemble. It works at odd addresses too, which a jump can reach.
// It returns "" if there is no complete instruction at ip.
func DisassembleAt(p *Program, ip int) string {
	if ip < 0 || ip+1 >= len(p.code) {
		return ""
	}
	op, arg := Opcode(p.code[ip]), p.code[ip+1]
	if !op.Valid() {
		return fmt.Sprintf("%3d  ??? %d", ip, arg)
	}
	switch op.Operand() {
	case Ignored:
		return fmt.Sprintf("%3d  %s", ip, op)
	case Combo:
		return fmt.Sprintf("%3d  %s %s", ip, op, comboName(arg))
	}
	return fmt.Sprintf("%3d  %s %d", ip, op, arg)
}

func comboName(operand int) string {
	switch operand {
	case 4:
		return "a"
	case 5:
		return "b"
	case 6:
		return "c"
	case 7:
		return "?"
	}
	return strconv.Itoa(operand)
}
