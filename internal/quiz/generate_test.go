package quiz

import "testing"

func TestQuestionArithmetic(t *testing.T) {
	g := NewGenerator(42)
	ops := []Op{OpAdd, OpSub, OpMul}

	for i := 0; i < 500; i++ {
		q := g.Question(12, ops)

		var want int
		switch q.Op {
		case OpAdd:
			want = q.A + q.B
		case OpSub:
			want = q.A - q.B
		case OpMul:
			want = q.A * q.B
		}
		if q.Answer != want {
			t.Fatalf("question %d: %s = %d, answer field says %d", i, q.Text(), want, q.Answer)
		}
		if q.Answer < 0 {
			t.Fatalf("question %d: negative answer %d from %s", i, q.Answer, q.Text())
		}
		if q.A < 1 || q.B < 1 {
			t.Fatalf("question %d: operand below 1 in %s", i, q.Text())
		}
	}
}

func TestQuestionOperandBounds(t *testing.T) {
	g := NewGenerator(7)

	for i := 0; i < 200; i++ {
		q := g.Question(10, []Op{OpAdd, OpSub})
		if q.A > 10 || q.B > 10 {
			t.Fatalf("operand exceeds max: %s", q.Text())
		}
	}
}

func TestQuestionSubtractionNeverNegative(t *testing.T) {
	g := NewGenerator(99)

	for i := 0; i < 300; i++ {
		q := g.Question(20, []Op{OpSub})
		if q.Answer < 0 {
			t.Fatalf("subtraction produced negative answer: %s = %d", q.Text(), q.Answer)
		}
		if q.B > q.A {
			t.Fatalf("subtraction operands unordered: %s", q.Text())
		}
	}
}

func TestQuestionDegenerateInputs(t *testing.T) {
	g := NewGenerator(1)

	// Tiny operand range still yields valid questions
	q := g.Question(0, []Op{OpAdd})
	if q.Answer != q.A+q.B {
		t.Errorf("degenerate max operand broke arithmetic: %s = %d", q.Text(), q.Answer)
	}

	// Empty op list falls back to addition
	q = g.Question(10, nil)
	if q.Op != OpAdd {
		t.Errorf("empty ops should fall back to addition, got %s", q.Op)
	}
}

func TestChoicesExactlyOneCorrect(t *testing.T) {
	g := NewGenerator(42)

	for i := 0; i < 200; i++ {
		q := g.Question(15, []Op{OpAdd, OpSub, OpMul})
		cs := g.Choices(q, 4)

		if len(cs) != 4 {
			t.Fatalf("round %d: got %d choices, expected 4", i, len(cs))
		}

		correct := 0
		seen := map[int]bool{}
		for _, c := range cs {
			if c.Correct {
				correct++
				if c.Value != q.Answer {
					t.Fatalf("round %d: correct choice holds %d, answer is %d", i, c.Value, q.Answer)
				}
			}
			if c.Value < 0 {
				t.Fatalf("round %d: negative choice value %d", i, c.Value)
			}
			if seen[c.Value] {
				t.Fatalf("round %d: duplicate choice value %d", i, c.Value)
			}
			seen[c.Value] = true
		}
		if correct != 1 {
			t.Fatalf("round %d: %d correct choices, expected exactly 1", i, correct)
		}
	}
}

func TestChoicesForZeroAnswer(t *testing.T) {
	g := NewGenerator(5)
	q := Question{A: 3, B: 3, Op: OpSub, Answer: 0}

	// Half the nearby deltas are negative and rejected; the set must still fill
	cs := g.Choices(q, 4)
	if len(cs) != 4 {
		t.Fatalf("got %d choices, expected 4", len(cs))
	}
	if idx := CorrectIndex(cs); idx < 0 || cs[idx].Value != 0 {
		t.Fatalf("correct choice missing or wrong: %+v", cs)
	}
	for _, c := range cs {
		if c.Value < 0 {
			t.Fatalf("negative value %d in choice set for zero answer", c.Value)
		}
	}
}

func TestChoicesShuffled(t *testing.T) {
	g := NewGenerator(11)
	q := Question{A: 6, B: 4, Op: OpAdd, Answer: 10}

	// Across many draws the correct answer should land in different slots
	slots := map[int]bool{}
	for i := 0; i < 50; i++ {
		cs := g.Choices(q, 4)
		slots[CorrectIndex(cs)] = true
	}
	if len(slots) < 2 {
		t.Errorf("correct answer always in the same slot across 50 draws: %v", slots)
	}
}

func TestTokenSetAlwaysSolvable(t *testing.T) {
	g := NewGenerator(42)

	for i := 0; i < 300; i++ {
		p := g.TokenSet(6, 2, 3, 9)

		if len(p.Values) != 6 {
			t.Fatalf("round %d: got %d tokens, expected 6", i, len(p.Values))
		}
		if p.Target < 2 {
			t.Fatalf("round %d: target %d too small for 2 positive addends", i, p.Target)
		}
		for _, v := range p.Values {
			if v < 1 || v > 9 {
				t.Fatalf("round %d: token %d out of range [1, 9]", i, v)
			}
		}
		if !Solvable(p.Values, p.Target) {
			t.Fatalf("round %d: unsolvable token set %v for target %d", i, p.Values, p.Target)
		}
	}
}

func TestTokenSetDegenerateBounds(t *testing.T) {
	g := NewGenerator(3)

	// Parts clamped to the token count
	p := g.TokenSet(2, 3, 5, 9)
	if len(p.Values) != 2 {
		t.Fatalf("got %d tokens, expected 2", len(p.Values))
	}
	if !Solvable(p.Values, p.Target) {
		t.Fatalf("clamped token set unsolvable: %v target %d", p.Values, p.Target)
	}

	// Zero and negative inputs fall back to a single-token puzzle
	p = g.TokenSet(0, 0, 0, 0)
	if len(p.Values) != 1 {
		t.Fatalf("got %d tokens, expected 1", len(p.Values))
	}
	if p.Values[0] != p.Target {
		t.Fatalf("single token %d should equal target %d", p.Values[0], p.Target)
	}
}

func TestGeneratorDeterminism(t *testing.T) {
	a := NewGenerator(1234)
	b := NewGenerator(1234)
	ops := []Op{OpAdd, OpSub, OpMul}

	for i := 0; i < 100; i++ {
		qa := a.Question(12, ops)
		qb := b.Question(12, ops)
		if qa != qb {
			t.Fatalf("question %d diverged: %+v vs %+v", i, qa, qb)
		}

		ca := a.Choices(qa, 4)
		cb := b.Choices(qb, 4)
		for j := range ca {
			if ca[j] != cb[j] {
				t.Fatalf("choice %d/%d diverged: %+v vs %+v", i, j, ca[j], cb[j])
			}
		}

		pa := a.TokenSet(6, 2, 3, 9)
		pb := b.TokenSet(6, 2, 3, 9)
		if pa.Target != pb.Target {
			t.Fatalf("token target %d diverged: %d vs %d", i, pa.Target, pb.Target)
		}
		for j := range pa.Values {
			if pa.Values[j] != pb.Values[j] {
				t.Fatalf("token %d/%d diverged: %d vs %d", i, j, pa.Values[j], pb.Values[j])
			}
		}
	}
}

func TestParseOps(t *testing.T) {
	tests := []struct {
		name     string
		in       []string
		expected []Op
	}{
		{"symbols", []string{"+", "-", "×"}, []Op{OpAdd, OpSub, OpMul}},
		{"words", []string{"add", "sub", "mul"}, []Op{OpAdd, OpSub, OpMul}},
		{"ascii multiply", []string{"x", "*"}, []Op{OpMul, OpMul}},
		{"unknown skipped", []string{"+", "glorp"}, []Op{OpAdd}},
		{"empty falls back to add", nil, []Op{OpAdd}},
		{"all unknown falls back to add", []string{"?", "!"}, []Op{OpAdd}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseOps(tc.in)
			if len(got) != len(tc.expected) {
				t.Fatalf("got %v, expected %v", got, tc.expected)
			}
			for i := range got {
				if got[i] != tc.expected[i] {
					t.Fatalf("op %d = %s, expected %s", i, got[i], tc.expected[i])
				}
			}
		})
	}
}

func TestSolvable(t *testing.T) {
	tests := []struct {
		name     string
		values   []int
		target   int
		expected bool
	}{
		{"pair sums", []int{3, 5, 2}, 8, true},
		{"single token", []int{7}, 7, true},
		{"whole set", []int{1, 2, 3}, 6, true},
		{"no subset", []int{2, 4, 6}, 5, false},
		{"empty set zero target", nil, 0, true},
		{"empty set nonzero target", nil, 3, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Solvable(tc.values, tc.target); got != tc.expected {
				t.Errorf("Solvable(%v, %d) = %v, expected %v", tc.values, tc.target, got, tc.expected)
			}
		})
	}
}

func TestSolution(t *testing.T) {
	values := []int{2, 9, 4, 3, 6}
	target := 9

	idx := Solution(values, target)
	if idx == nil {
		t.Fatalf("Solution(%v, %d) found nothing", values, target)
	}

	sum := 0
	for _, i := range idx {
		if i < 0 || i >= len(values) {
			t.Fatalf("Solution returned out-of-range index %d", i)
		}
		sum += values[i]
	}
	if sum != target {
		t.Errorf("Solution indices sum to %d, expected %d", sum, target)
	}

	// 9 alone beats 2+3+4 and 3+6
	if len(idx) != 1 || values[idx[0]] != 9 {
		t.Errorf("Expected the single-token solution, got indices %v", idx)
	}

	if Solution([]int{2, 4, 6}, 5) != nil {
		t.Error("Solution should be nil when no subset fits")
	}
	if got := Solution(nil, 0); got == nil || len(got) != 0 {
		t.Errorf("Zero target should yield the empty subset, got %v", got)
	}
}

func TestQuestionText(t *testing.T) {
	q := Question{A: 7, B: 5, Op: OpAdd, Answer: 12}
	if q.Text() != "7 + 5" {
		t.Errorf("Text() = %q, expected %q", q.Text(), "7 + 5")
	}
	if q.Prompt() != "7 + 5 = ?" {
		t.Errorf("Prompt() = %q, expected %q", q.Prompt(), "7 + 5 = ?")
	}

	q = Question{A: 3, B: 4, Op: OpMul, Answer: 12}
	if q.Text() != "3 × 4" {
		t.Errorf("Text() = %q, expected %q", q.Text(), "3 × 4")
	}
}
