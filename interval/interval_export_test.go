package interval

// PickPivot re-exports the internal [pickPivot] function.
func PickPivot(counts []int) int {
	return pickPivot(counts)
}

// OverlapCounts re-exports the internal [overlapCounts] function.
func OverlapCounts[T any, K Coordinate](members []Member[T, K]) []int {
	return overlapCounts(members)
}

// DepthOf re-exports the internal [depthOf] function.
func DepthOf(pos int) int {
	return depthOf(pos)
}
