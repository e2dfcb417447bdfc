package chainmap

// Returns the capacity a table starting at `capacity` has after `grows` doublings.
func NextCapacity(capacity, grows int) int {
	return capacity << grows
}

// Returns the smallest initial capacity that holds n entries without growing.
func CapacityFor(n int) int {
	if n <= 0 {
		return 1
	}

	return n*maxLoadDen/maxLoadNum + 1
}
