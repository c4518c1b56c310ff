package engine

import "testing"

func TestBoardHelpers(t *testing.T) {
	board := Board{
		{2, 0, 8, 0},
		{0, 64, 0, 256},
		{512, 0, 2048, 0},
		{0, 16, 0, 64},
	}

	if got := board.Size(); got != 4 {
		t.Errorf("Size() = %d, want 4", got)
	}
	if got := len(board.EmptyCells()); got != 8 {
		t.Errorf("EmptyCells count = %d, want 8", got)
	}
	if got := board.MaxTile(); got != 2048 {
		t.Errorf("MaxTile() = %d, want 2048", got)
	}
	if got := board.Sum(); got != 2+8+64+256+512+2048+16+64 {
		t.Errorf("Sum() = %d", got)
	}
	if got := board.At(2, 2); got != 2048 {
		t.Errorf("At(2, 2) = %d, want 2048", got)
	}
	if got := board.At(-1, 9); got != 0 {
		t.Errorf("At(-1, 9) = %d, want 0", got)
	}

	first := board.EmptyCells()[0]
	if first != (Cell{Row: 0, Col: 1}) {
		t.Errorf("first empty cell = %v, want {0 1}", first)
	}
}

func TestBoardCloneIsDeep(t *testing.T) {
	board := Board{{2, 0}, {0, 4}}
	clone := board.Clone()
	clone[0][0] = 1024

	if board[0][0] != 2 {
		t.Error("mutating a clone changed the original board")
	}
	if board.Equal(clone) {
		t.Error("Equal should report different boards")
	}
	if !board.Equal(board.Clone()) {
		t.Error("Equal should report identical boards")
	}
	if board.Equal(Board{{2, 0}}) {
		t.Error("Equal should compare dimensions")
	}
}

func TestBoardString(t *testing.T) {
	board := Board{
		{2, 0, 128},
		{0, 16, 0},
		{4, 0, 0},
	}

	expected := "  2   . 128\n" +
		"  .  16   .\n" +
		"  4   .   ."
	if got := board.String(); got != expected {
		t.Errorf("String() =\n%s\nwant\n%s", got, expected)
	}
}
