package engine

import (
	"math/rand"
	"slices"
	"testing"
)

func TestCompactLine(t *testing.T) {
	tests := []struct {
		name     string
		input    []int
		expected []int
		changed  bool
	}{
		{
			name:     "two pairs",
			input:    []int{2, 2, 4, 4},
			expected: []int{4, 8, 0, 0},
			changed:  true,
		},
		{
			name:     "gap before pair",
			input:    []int{2, 0, 2, 2},
			expected: []int{4, 2, 0, 0},
			changed:  true,
		},
		{
			name:     "three equal tiles",
			input:    []int{2, 2, 2, 0},
			expected: []int{4, 2, 0, 0},
			changed:  true,
		},
		{
			name:     "no merge possible",
			input:    []int{2, 4, 8, 16},
			expected: []int{2, 4, 8, 16},
			changed:  false,
		},
		{
			name:     "empty line",
			input:    []int{0, 0, 0, 0},
			expected: []int{0, 0, 0, 0},
			changed:  false,
		},
		{
			name:     "four equal tiles",
			input:    []int{4, 4, 4, 4},
			expected: []int{8, 8, 0, 0},
			changed:  true,
		},
		{
			name:     "merged tile does not merge again",
			input:    []int{2, 2, 4, 0},
			expected: []int{4, 4, 0, 0},
			changed:  true,
		},
		{
			name:     "slide with gap",
			input:    []int{0, 0, 2, 2},
			expected: []int{4, 0, 0, 0},
			changed:  true,
		},
		{
			name:     "merge across gaps",
			input:    []int{2, 0, 0, 2},
			expected: []int{4, 0, 0, 0},
			changed:  true,
		},
		{
			name:     "already packed",
			input:    []int{4, 2, 0, 0},
			expected: []int{4, 2, 0, 0},
			changed:  false,
		},
		{
			name:     "single tile slides",
			input:    []int{0, 4, 0, 0},
			expected: []int{4, 0, 0, 0},
			changed:  true,
		},
		{
			name:     "single cell line",
			input:    []int{2},
			expected: []int{2},
			changed:  false,
		},
		{
			name:     "longer line",
			input:    []int{8, 8, 0, 16, 2, 2},
			expected: []int{16, 16, 4, 0, 0, 0},
			changed:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := slices.Clone(tt.input)
			changed := CompactLine(line)
			if !slices.Equal(line, tt.expected) {
				t.Errorf("CompactLine(%v) = %v, want %v", tt.input, line, tt.expected)
			}
			if changed != tt.changed {
				t.Errorf("CompactLine(%v) changed = %v, want %v", tt.input, changed, tt.changed)
			}
		})
	}
}

// randomLine returns a line of n cells where roughly half hold small tiles.
func randomLine(rng *rand.Rand, n int) []int {
	line := make([]int, n)
	for i := range line {
		if rng.Intn(2) == 0 {
			line[i] = 2 << rng.Intn(3)
		}
	}
	return line
}

func TestCompactLineProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 2000; i++ {
		n := 1 + rng.Intn(8)
		input := randomLine(rng, n)
		line := slices.Clone(input)
		changed := CompactLine(line)

		// Merging moves value between cells but never creates or loses any.
		if got, want := (Board{line}).Sum(), (Board{input}).Sum(); got != want {
			t.Fatalf("CompactLine(%v) sum = %d, want %d", input, got, want)
		}

		// No empty cell precedes a tile.
		seenEmpty := false
		for _, v := range line {
			if v == 0 {
				seenEmpty = true
			} else if seenEmpty {
				t.Fatalf("CompactLine(%v) = %v, not left-packed", input, line)
			}
		}

		// Every output tile is an input tile or the double of one.
		for _, v := range line {
			if v != 0 && !slices.Contains(input, v) && !slices.Contains(input, v/2) {
				t.Fatalf("CompactLine(%v) = %v, unexpected tile %d", input, line, v)
			}
		}

		if changed == slices.Equal(input, line) {
			t.Fatalf("CompactLine(%v) changed = %v but output %v", input, changed, line)
		}
	}
}

func TestCompactLineStablePackedLine(t *testing.T) {
	// A left-packed line with no equal neighbours is a fixed point.
	lines := [][]int{
		{2, 4, 2, 4},
		{16, 8, 0, 0},
		{2, 0, 0, 0},
		{1024, 2048, 4096, 0, 0},
	}

	for _, input := range lines {
		line := slices.Clone(input)
		if CompactLine(line) {
			t.Errorf("CompactLine(%v) reported a change", input)
		}
		if !slices.Equal(line, input) {
			t.Errorf("CompactLine(%v) = %v, want unchanged", input, line)
		}
	}
}

func TestOneMergePerTilePerMove(t *testing.T) {
	line := []int{2, 2, 2, 2, 2, 0}
	CompactLine(line)

	expected := []int{4, 4, 2, 0, 0, 0}
	if !slices.Equal(line, expected) {
		t.Errorf("CompactLine = %v, want %v (one merge per tile per move)", line, expected)
	}
}
