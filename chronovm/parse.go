package chronovm

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

var inputRx = regexp.MustCompile(
	`Register A:\s*(\d+)\s+Register B:\s*(\d+)\s+Register C:\s*(\d+)\s+Program:\s*([0-9,\s]+)`,
)

// Parse reads a program in the puzzle's text form:
//
//	Register A: 729
//	Register B: 0
//	Register C: 0
//
//	Program: 0,1,5,4,3,0
func Parse(r io.Reader) (*Program, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseString(string(b))
}

// ParseString is like Parse but reads from s.
func ParseString(s string) (*Program, error) {
	m := inputRx.FindStringSubmatch(s)
	if m == nil {
		return nil, ErrMalformedInput
	}
	var regs [3]int
	for i := range regs {
		v, err := strconv.Atoi(m[i+1])
		if err != nil {
			return nil, fmt.Errorf("register %c: %w: %s", 'A'+i, ErrMalformedInput, err)
		}
		regs[i] = v
	}
	var code []int
	for _, f := range strings.Split(strings.TrimSpace(m[4]), ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			return nil, fmt.Errorf("empty program value: %w", ErrMalformedInput)
		}
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("program value %q: %w", f, ErrMalformedInput)
		}
		code = append(code, v)
	}
	return NewProgram(Registers{A: regs[0], B: regs[1], C: regs[2]}, code)
}
