package engine

// IsGameOver returns true if no cluster on the board can be popped,
// i.e. every filled cell's cluster is smaller than MinClusterSize.
// An empty board is over as well.
func IsGameOver(b *Board) bool {
	for row := range BoardSize {
		for col := range BoardSize {
			if !b[row][col].Filled {
				continue
			}
			cl := FindCluster(b, At(row, col))
			if cl.Poppable() {
				return false
			}
		}
	}
	return true
}

// HasMoves returns true if at least one cluster can be popped.
func HasMoves(b *Board) bool {
	return !IsGameOver(b)
}

// Clusters returns every poppable cluster on the board, scanning row by row
// from the top-left. Each cluster appears once.
func Clusters(b *Board) []Cluster {
	var seen [BoardSize][BoardSize]bool
	var result []Cluster

	for row := range BoardSize {
		for col := range BoardSize {
			if seen[row][col] || !b[row][col].Filled {
				continue
			}
			cl := FindCluster(b, At(row, col))
			for _, c := range cl.Coords() {
				seen[c.Row][c.Col] = true
			}
			if cl.Poppable() {
				result = append(result, cl)
			}
		}
	}

	return result
}

// LargestCluster returns the biggest poppable cluster, preferring the first
// found on ties. ok is false when the board has no moves.
func LargestCluster(b *Board) (cl Cluster, ok bool) {
	for _, c := range Clusters(b) {
		if c.Size > cl.Size {
			cl = c
			ok = true
		}
	}
	return cl, ok
}
