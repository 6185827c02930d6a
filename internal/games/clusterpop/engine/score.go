package engine

// ScoreFor returns the points for popping a cluster of the given size:
// size squared, or zero for clusters too small to pop.
func ScoreFor(size int) int {
	if size < MinClusterSize {
		return 0
	}
	return size * size
}
