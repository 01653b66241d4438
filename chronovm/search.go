package chronovm

import (
	"fmt"
	"strconv"
)

// MaxQuineLen is the longest listing a Search accepts: every value adds
// three bits to A, and A must fit in an int.
const MaxQuineLen = (strconv.IntSize - 1) / 3

// SearchStats counts the work done by a Search.
type SearchStats struct {
	Trials int // forward runs attempted
	Steps  int // instructions executed across all trials
}

// A Search reconstructs the smallest value of register A for which a
// program prints its own listing.
//
// The search builds A one octal digit at a time, most significant first.
// Stage k appends a digit d in 0-7 to the value found so far and keeps it
// if a run prints exactly the last k values of the listing. Digits are
// tried in increasing order, and a stage with no matching digit backtracks
// into the previous one, so the first complete value found is the smallest.
//
// This only works for programs that print one value per octal digit of A
// and consume A from the low end (the shape of every day 17 input). It is
// not a general quine finder: on other programs it fails with
// ErrNoSolution or returns a value that is not minimal.
type Search struct {
	// Stats is reset by each call to Run.
	Stats SearchStats
}

// Run searches for A using p's original B and C registers.
// p is not modified, so Run may be repeated.
func (s *Search) Run(p *Program) (int, error) {
	s.Stats = SearchStats{}
	if len(p.code) > MaxQuineLen {
		return 0, fmt.Errorf("listing has %d values, more than %d: %w",
			len(p.code), MaxQuineLen, ErrTooLong)
	}
	n, ok := s.stage(p, len(p.code), 0)
	if !ok {
		return 0, fmt.Errorf("%w (%d candidates tried)", ErrNoSolution, s.Stats.Trials)
	}
	return n, nil
}

// stage extends n with digits until the program prints code[i-1:], then
// recurses on the next longer suffix.
func (s *Search) stage(p *Program, i, n int) (int, bool) {
	if i == 0 {
		return n, true
	}
	want := p.code[i-1:]
	regs := p.Registers
	for d := 0; d < 8; d++ {
		regs.A = n<<3 | d
		ok, steps := p.matches(regs, want)
		s.Stats.Trials++
		s.Stats.Steps += steps
		if !ok {
			continue
		}
		if a, ok := s.stage(p, i-1, regs.A); ok {
			return a, true
		}
	}
	return 0, false
}

// FindQuine runs a Search on p.
// See Search for the programs this applies to.
func (p *Program) FindQuine() (int, error) {
	var s Search
	return s.Run(p)
}
