package engine

// ApplyGravity drops the filled cells of every column to the bottom,
// keeping their top-to-bottom order and emptying the vacated top cells.
// Applying it twice is the same as applying it once.
// Returns true if any cell moved.
func ApplyGravity(b *Board) bool {
	moved := false

	for col := range BoardSize {
		write := BoardSize - 1
		for row := BoardSize - 1; row >= 0; row-- {
			if !b[row][col].Filled {
				continue
			}
			if row != write {
				b[write][col] = b[row][col]
				b[row][col] = Empty()
				moved = true
			}
			write--
		}
	}

	return moved
}

// ColumnEmpty returns true if the column holds no filled cells.
// Off-board columns count as empty.
func ColumnEmpty(b *Board, col int) bool {
	if col < 0 || col >= BoardSize {
		return true
	}
	for row := range BoardSize {
		if b[row][col].Filled {
			return false
		}
	}
	return true
}

// ShiftColumns closes horizontal gaps left by emptied columns.
// Every empty column is filled from the nearest non-empty column to its
// right, so after one call no empty column has a non-empty column to its
// right. Non-empty columns keep their left-to-right order.
// Returns true if any column moved.
func ShiftColumns(b *Board) bool {
	moved := false
	write := 0

	for col := range BoardSize {
		if ColumnEmpty(b, col) {
			continue
		}
		if col != write {
			for row := range BoardSize {
				b[row][write] = b[row][col]
				b[row][col] = Empty()
			}
			moved = true
		}
		write++
	}

	return moved
}

// Compact applies gravity and then closes empty columns.
func Compact(b *Board) {
	ApplyGravity(b)
	ShiftColumns(b)
}
