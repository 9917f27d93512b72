package generator

import "fmt"

// Method selects how the full solution cube is produced before carving.
type Method int

const (
	// MethodBacktrack runs the randomized backtracking solver from an
	// empty cube. Expect runtimes on the order of minutes.
	MethodBacktrack Method = iota
	// MethodAlgebraic uses the closed-form Latin-cube construction and is
	// effectively instant. Meant for offline pre-generation.
	MethodAlgebraic
)

func (m Method) String() string {
	if m == MethodAlgebraic {
		return "algebraic"
	}
	return "backtrack"
}

// ParseMethod converts a method tag.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "backtrack", "":
		return MethodBacktrack, nil
	case "algebraic":
		return MethodAlgebraic, nil
	}
	return MethodBacktrack, fmt.Errorf("generator: unknown method %q (want backtrack or algebraic)", s)
}
