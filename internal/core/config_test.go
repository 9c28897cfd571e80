package core

import "testing"

func TestGameStateTerminalPhases(t *testing.T) {
	tests := []struct {
		phase    Phase
		gameOver bool
		won      bool
	}{
		{PhaseMenu, false, false},
		{PhasePlaying, false, false},
		{PhaseWin, true, true},
		{PhaseLose, true, false},
	}

	for _, tc := range tests {
		s := GameState{Phase: tc.phase}
		if s.GameOver() != tc.gameOver {
			t.Errorf("%s: GameOver() = %v, expected %v", tc.phase, s.GameOver(), tc.gameOver)
		}
		if s.Won() != tc.won {
			t.Errorf("%s: Won() = %v, expected %v", tc.phase, s.Won(), tc.won)
		}
	}
}

func TestInputFrameDigit(t *testing.T) {
	f := NewInputFrame()
	if f.Digit() != 0 {
		t.Errorf("empty frame Digit() = %d, expected 0", f.Digit())
	}

	f.Set(ActionDigit3)
	if f.Digit() != 3 {
		t.Errorf("Digit() = %d, expected 3", f.Digit())
	}

	// Lowest slot wins when several digits land in one frame
	f.Set(ActionDigit1)
	if f.Digit() != 1 {
		t.Errorf("Digit() = %d, expected 1", f.Digit())
	}

	f.Clear()
	if f.Digit() != 0 {
		t.Errorf("cleared frame Digit() = %d, expected 0", f.Digit())
	}
}

func TestActionDigit(t *testing.T) {
	if ActionDigit2.Digit() != 2 {
		t.Errorf("ActionDigit2.Digit() = %d, expected 2", ActionDigit2.Digit())
	}
	if ActionConfirm.Digit() != 0 {
		t.Errorf("non-digit action Digit() = %d, expected 0", ActionConfirm.Digit())
	}
}
