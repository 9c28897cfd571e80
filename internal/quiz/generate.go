package quiz

import "math/rand"

// Generator produces questions, choice sets and token sets from a seeded RNG.
// Two generators built from the same seed emit identical sequences, which is
// what makes whole game sessions replayable.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator seeded for deterministic output.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Question generates a random arithmetic problem. maxOperand bounds the
// operands for addition and subtraction; multiplication uses a smaller table
// so products stay age-appropriate.
func (g *Generator) Question(maxOperand int, ops []Op) Question {
	if maxOperand < 2 {
		maxOperand = 2
	}
	if len(ops) == 0 {
		ops = []Op{OpAdd}
	}
	op := ops[g.rng.Intn(len(ops))]

	switch op {
	case OpSub:
		a := 1 + g.rng.Intn(maxOperand)
		b := 1 + g.rng.Intn(a) // b <= a keeps the answer non-negative
		return Question{A: a, B: b, Op: op, Answer: a - b}
	case OpMul:
		hi := maxOperand / 2
		if hi < 2 {
			hi = 2
		}
		if hi > 9 {
			hi = 9
		}
		a := 2 + g.rng.Intn(hi-1)
		b := 2 + g.rng.Intn(hi-1)
		return Question{A: a, B: b, Op: op, Answer: a * b}
	default:
		a := 1 + g.rng.Intn(maxOperand)
		b := 1 + g.rng.Intn(maxOperand)
		return Question{A: a, B: b, Op: OpAdd, Answer: a + b}
	}
}

// Choices builds a shuffled answer set of n values containing the correct
// answer exactly once. Distractors sit within ±6 of the answer, are distinct,
// and never negative. Bounded retries first; if small answers exhaust the
// nearby values, the remainder is filled by walking upward so the set always
// reaches full size.
func (g *Generator) Choices(q Question, n int) []Choice {
	if n < 2 {
		n = 2
	}
	seen := map[int]bool{q.Answer: true}
	out := make([]Choice, 0, n)
	out = append(out, Choice{Value: q.Answer, Correct: true})

	for attempts := 0; len(out) < n && attempts < 64; attempts++ {
		delta := 1 + g.rng.Intn(6)
		if g.rng.Intn(2) == 0 {
			delta = -delta
		}
		v := q.Answer + delta
		if v < 0 || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, Choice{Value: v})
	}
	for v := q.Answer + 1; len(out) < n; v++ {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, Choice{Value: v})
	}

	g.rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// TokenSet builds a solvable sum-building puzzle: between minParts and
// maxParts addends of at most maxAddend are drawn and summed into the target,
// then the set is padded to count tokens with random fillers and shuffled.
// The drawn addends guarantee at least one valid subset regardless of what
// the fillers happen to be.
func (g *Generator) TokenSet(count, minParts, maxParts, maxAddend int) TokenProblem {
	if maxAddend < 1 {
		maxAddend = 9
	}
	if count < 1 {
		count = 1
	}
	if minParts < 1 {
		minParts = 1
	}
	if maxParts < minParts {
		maxParts = minParts
	}
	if minParts > count {
		minParts = count
	}
	if maxParts > count {
		maxParts = count
	}

	parts := minParts + g.rng.Intn(maxParts-minParts+1)
	values := make([]int, 0, count)
	target := 0
	for i := 0; i < parts; i++ {
		v := 1 + g.rng.Intn(maxAddend)
		values = append(values, v)
		target += v
	}
	for len(values) < count {
		values = append(values, 1+g.rng.Intn(maxAddend))
	}

	g.rng.Shuffle(len(values), func(i, j int) {
		values[i], values[j] = values[j], values[i]
	})
	return TokenProblem{Target: target, Values: values}
}

// CorrectIndex returns the position of the correct choice, or -1 if the set
// has none.
func CorrectIndex(cs []Choice) int {
	for i, c := range cs {
		if c.Correct {
			return i
		}
	}
	return -1
}
