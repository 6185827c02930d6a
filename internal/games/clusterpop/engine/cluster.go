package engine

const maxCells = BoardSize * BoardSize

// Cluster is a maximal group of same-colored, orthogonally connected cells.
// Storage is fixed-capacity; only the first Size entries of Cells are valid.
type Cluster struct {
	Color Color
	Cells [maxCells]Coord
	Size  int
}

// Coords returns the cluster members as a slice.
func (cl *Cluster) Coords() []Coord {
	return cl.Cells[:cl.Size]
}

// Contains reports whether c is a member of the cluster.
func (cl *Cluster) Contains(c Coord) bool {
	for _, m := range cl.Cells[:cl.Size] {
		if m == c {
			return true
		}
	}
	return false
}

// Poppable reports whether the cluster is large enough to remove.
func (cl *Cluster) Poppable() bool {
	return cl.Size >= MinClusterSize
}

// FindCluster returns the cluster containing start.
// An empty or off-board start yields an empty cluster (Size 0).
//
// The search is an explicit-stack flood fill. Cells are marked visited when
// pushed, so each cell enters the stack at most once and the stack never
// exceeds BoardSize*BoardSize entries.
func FindCluster(b *Board, start Coord) Cluster {
	var cl Cluster

	origin := b.at(start)
	if !origin.Filled {
		return cl
	}
	cl.Color = origin.Color

	var visited [BoardSize][BoardSize]bool
	var stack [maxCells]Coord
	top := 0

	stack[top] = start
	top++
	visited[start.Row][start.Col] = true

	for top > 0 {
		top--
		cur := stack[top]
		cl.Cells[cl.Size] = cur
		cl.Size++

		for _, d := range neighborOffsets {
			next := Coord{Row: cur.Row + d.Row, Col: cur.Col + d.Col}
			if !next.InBounds() || visited[next.Row][next.Col] {
				continue
			}
			cell := b[next.Row][next.Col]
			if !cell.Filled || cell.Color != cl.Color {
				continue
			}
			visited[next.Row][next.Col] = true
			stack[top] = next
			top++
		}
	}

	return cl
}

// RemoveCluster empties every cell of cl and returns how many were cleared.
func RemoveCluster(b *Board, cl *Cluster) int {
	removed := 0
	for _, c := range cl.Coords() {
		if b[c.Row][c.Col].Filled {
			b[c.Row][c.Col] = Empty()
			removed++
		}
	}
	return removed
}
