package chronovm

import (
	"errors"
	"fmt"
)

var (
	ErrOddLength       = errors.New("program has an odd number of values")
	ErrBadValue        = errors.New("program value is not a 3-bit number")
	ErrReservedOperand = errors.New("combo operand 7 is reserved")
	ErrMalformedInput  = errors.New("malformed program input")
	ErrNoSolution      = errors.New("no solution found within digit bound")
	ErrTooLong         = errors.New("listing too long to search")
)

// An InvariantError is the panic value used when a machine is asked to do
// something a well-formed program never does: decode an unknown opcode,
// resolve combo operand 7, or shift by a negative amount.
type InvariantError struct {
	IP  int
	Msg string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("chronovm: invariant violated at ip %d: %s", e.IP, e.Msg)
}

func invariant(ip int, format string, args ...any) *InvariantError {
	return &InvariantError{IP: ip, Msg: fmt.Sprintf(format, args...)}
}
