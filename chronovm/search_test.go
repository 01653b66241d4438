package chronovm

import (
	"errors"
	"slices"
	"testing"
)

func TestFindQuineSample(t *testing.T) {
	p := mustProgram(t, Registers{A: 2024}, 0, 3, 5, 4, 3, 0)
	got, err := p.FindQuine()
	if err != nil {
		t.Fatal(err)
	}
	if want := 117440; got != want {
		t.Errorf("got %d; want %d", got, want)
	}
	regs := p.Registers
	regs.A = got
	if out := p.Run(regs); !slices.Equal(out, p.Code()) {
		t.Errorf("A=%d prints %v; want the listing %v", got, out, p.Code())
	}
}

func TestFindQuineMinimal(t *testing.T) {
	p := mustProgram(t, Registers{}, 0, 3, 5, 4, 3, 0)
	got, err := p.FindQuine()
	if err != nil {
		t.Fatal(err)
	}
	// Everything below the answer with the same octal length must fail.
	for a := 1 << 15; a < got; a++ {
		if p.Matches(Registers{A: a}, p.Code()) {
			t.Fatalf("A=%d also reproduces the listing; search returned %d", a, got)
		}
	}
}

func TestFindQuineRepeatable(t *testing.T) {
	p := mustProgram(t, Registers{A: 2024, B: 0, C: 0}, 0, 3, 5, 4, 3, 0)
	code := p.Code()
	regs := p.Registers
	first, err := p.FindQuine()
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		got, err := p.FindQuine()
		if err != nil {
			t.Fatal(err)
		}
		if got != first {
			t.Errorf("run %d: got %d; want %d", i, got, first)
		}
	}
	if !slices.Equal(p.Code(), code) {
		t.Errorf("listing changed to %v", p.Code())
	}
	if p.Registers != regs {
		t.Errorf("registers changed to %+v", p.Registers)
	}
}

func TestFindQuineInputs(t *testing.T) {
	for _, tt := range []struct {
		code []int
		want int
	}{
		// bst a; bxl; cdv b; bxl; adv 3; bxc; out b; jnz 0
		{[]int{2, 4, 1, 5, 7, 5, 1, 6, 0, 3, 4, 0, 5, 5, 3, 0}, 105843716614554},
		// bst a; bxl; cdv b; adv 3; bxl; bxc; out b; jnz 0
		{[]int{2, 4, 1, 3, 7, 5, 0, 3, 1, 5, 4, 1, 5, 5, 3, 0}, 216148338630253},
	} {
		p := mustProgram(t, Registers{A: 12345}, tt.code...)
		got, err := p.FindQuine()
		if err != nil {
			t.Errorf("%v: %s", tt.code, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%v: got %d; want %d", tt.code, got, tt.want)
		}
		if out := p.Run(Registers{A: got}); !slices.Equal(out, tt.code) {
			t.Errorf("%v: A=%d prints %v", tt.code, got, out)
		}
	}
}

func TestSearchNoSolution(t *testing.T) {
	for _, tt := range []struct {
		name   string
		code   []int
		trials int
	}{
		// Prints A's octal digits low to high, so the listing would need
		// a leading zero digit.
		{"trailing zero digit", []int{2, 4, 5, 5, 0, 3, 3, 0}, 16},
		// Always prints 1.
		{"constant output", []int{5, 1, 3, 0}, 8},
	} {
		p := mustProgram(t, Registers{}, tt.code...)
		var s Search
		_, err := s.Run(p)
		if !errors.Is(err, ErrNoSolution) {
			t.Errorf("%s: got err %v; want ErrNoSolution", tt.name, err)
		}
		if s.Stats.Trials != tt.trials {
			t.Errorf("%s: got %d trials; want %d", tt.name, s.Stats.Trials, tt.trials)
		}
	}
}

func TestSearchStats(t *testing.T) {
	p := mustProgram(t, Registers{}, 0, 3, 5, 4, 3, 0)
	var s Search
	for i := 0; i < 2; i++ {
		if _, err := s.Run(p); err != nil {
			t.Fatal(err)
		}
		// The lowest digit of A is never printed, so most stages
		// backtrack through several digits of the stage before.
		if got, want := s.Stats.Trials, 141; got != want {
			t.Errorf("run %d: got %d trials; want %d", i, got, want)
		}
		if s.Stats.Steps < s.Stats.Trials {
			t.Errorf("run %d: got %d steps for %d trials", i, s.Stats.Steps, s.Stats.Trials)
		}
	}
}

func TestSearchTooLong(t *testing.T) {
	code := make([]int, 0, MaxQuineLen+1)
	for len(code) <= MaxQuineLen {
		code = append(code, 1, 1) // bxl 1
	}
	p := mustProgram(t, Registers{}, code...)
	var s Search
	if _, err := s.Run(p); !errors.Is(err, ErrTooLong) {
		t.Errorf("%d values: got err %v; want ErrTooLong", len(code), err)
	}
	if s.Stats.Trials != 0 {
		t.Errorf("got %d trials; want none", s.Stats.Trials)
	}
}

func TestFindQuineEmpty(t *testing.T) {
	p := mustProgram(t, Registers{})
	got, err := p.FindQuine()
	if err != nil {
		t.Fatal(err)
	}
	if got != 0 {
		t.Errorf("got %d; want 0", got)
	}
}
