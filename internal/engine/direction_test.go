package engine

import "testing"

func TestParseDirection(t *testing.T) {
	tests := []struct {
		input    string
		expected Direction
		wantErr  bool
	}{
		{"up", DirUp, false},
		{"U", DirUp, false},
		{"down", DirDown, false},
		{"d", DirDown, false},
		{" Left ", DirLeft, false},
		{"r", DirRight, false},
		{"RIGHT", DirRight, false},
		{"north", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			dir, err := ParseDirection(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDirection(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && dir != tt.expected {
				t.Errorf("ParseDirection(%q) = %v, want %v", tt.input, dir, tt.expected)
			}
		})
	}
}

func TestDirectionString(t *testing.T) {
	for _, dir := range Directions {
		parsed, err := ParseDirection(dir.String())
		if err != nil {
			t.Fatalf("ParseDirection(%q) failed: %v", dir.String(), err)
		}
		if parsed != dir {
			t.Errorf("ParseDirection(%q) = %v, want %v", dir.String(), parsed, dir)
		}
	}

	if Direction(9).Valid() {
		t.Error("Direction(9) should not be valid")
	}
	if got := Direction(9).String(); got != "direction(9)" {
		t.Errorf("Direction(9).String() = %q, want direction(9)", got)
	}
}

func TestDirectionCellMapping(t *testing.T) {
	const n = 4

	// Every direction must visit each board cell exactly once.
	for _, dir := range Directions {
		seen := make(map[Cell]bool)
		for line := range n {
			for k := range n {
				row, col := dir.cell(line, k, n)
				c := Cell{Row: row, Col: col}
				if seen[c] {
					t.Fatalf("%v visits %v twice", dir, c)
				}
				seen[c] = true
			}
		}
		if len(seen) != n*n {
			t.Errorf("%v visits %d cells, want %d", dir, len(seen), n*n)
		}
	}

	// Slot 0 lies on the edge the tiles travel toward.
	edges := map[Direction]func(row, col int) bool{
		DirUp:    func(row, _ int) bool { return row == 0 },
		DirDown:  func(row, _ int) bool { return row == n-1 },
		DirLeft:  func(_, col int) bool { return col == 0 },
		DirRight: func(_, col int) bool { return col == n-1 },
	}
	for dir, onEdge := range edges {
		for line := range n {
			row, col := dir.cell(line, 0, n)
			if !onEdge(row, col) {
				t.Errorf("%v slot 0 of line %d = (%d,%d), not on the target edge", dir, line, row, col)
			}
		}
	}
}
