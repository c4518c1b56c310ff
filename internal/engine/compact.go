package engine

// CompactLine shifts the tiles of line toward index 0 and merges equal
// neighbours, in place. It reports whether any tile moved or merged.
//
// A tile produced by a merge never merges again during the same pass, so
// [2 2 2 0] becomes [4 2 0 0] and [4 4 4 4] becomes [8 8 0 0].
func CompactLine(line []int) bool {
	changed := false
	pos := 0         // next free slot
	lastMerged := -1 // slot produced by the latest merge

	for k := range line {
		v := line[k]
		if v == 0 {
			continue
		}

		if pos > 0 && pos-1 > lastMerged && line[pos-1] == v {
			line[pos-1] *= 2
			line[k] = 0
			lastMerged = pos - 1
			changed = true
			continue
		}

		line[pos] = v
		if pos != k {
			line[k] = 0
			changed = true
		}
		pos++
	}

	return changed
}
