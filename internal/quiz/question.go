// Package quiz generates the arithmetic content shared by every game:
// questions, multiple-choice answer sets, and token sets for sum-building
// puzzles. Generation is deterministic for a given seed and always produces
// solvable rounds.
package quiz

import "fmt"

// Op is an arithmetic operator.
type Op int

const (
	OpAdd Op = iota
	OpSub
	OpMul
)

// String returns the display symbol for the operator.
func (o Op) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "×"
	default:
		return "?"
	}
}

// ParseOps converts config operator strings to Ops. Unknown strings are
// skipped; an empty result falls back to addition so a bad config can never
// produce an unanswerable game.
func ParseOps(symbols []string) []Op {
	var ops []Op
	for _, s := range symbols {
		switch s {
		case "+", "add":
			ops = append(ops, OpAdd)
		case "-", "sub":
			ops = append(ops, OpSub)
		case "*", "x", "×", "mul":
			ops = append(ops, OpMul)
		}
	}
	if len(ops) == 0 {
		ops = []Op{OpAdd}
	}
	return ops
}

// Question is a single arithmetic problem. Answers are always non-negative:
// subtraction operands are ordered and operands stay within the configured
// range, so young players never face negative numbers.
type Question struct {
	A, B   int
	Op     Op
	Answer int
}

// Text returns the expression without the answer, e.g. "7 + 5".
func (q Question) Text() string {
	return fmt.Sprintf("%d %s %d", q.A, q.Op, q.B)
}

// Prompt returns the expression as a question, e.g. "7 + 5 = ?".
func (q Question) Prompt() string {
	return q.Text() + " = ?"
}

// Choice is one entry in a multiple-choice answer set.
type Choice struct {
	Value   int
	Correct bool
}

// TokenProblem is a sum-building puzzle: pick tokens from Values so they add
// up to Target. At least one such subset is guaranteed to exist.
type TokenProblem struct {
	Target int
	Values []int
}

// Solvable reports whether any subset of values sums exactly to target.
func Solvable(values []int, target int) bool {
	if target == 0 {
		return true
	}
	return Solution(values, target) != nil
}

// Solution returns the indices of one subset of values summing exactly to
// target, preferring the smallest such subset, or nil if none exists.
// Brute force over subsets; token counts are tiny.
func Solution(values []int, target int) []int {
	n := len(values)
	if n > 20 {
		return nil
	}
	if target == 0 {
		return []int{}
	}

	var best []int
	for mask := 1; mask < 1<<n; mask++ {
		sum := 0
		var idx []int
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				sum += values[i]
				idx = append(idx, i)
			}
		}
		if sum == target && (best == nil || len(idx) < len(best)) {
			best = idx
		}
	}
	return best
}
