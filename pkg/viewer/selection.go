package viewer

// NextSelection steps the selection by delta, wrapping around n commands.
// From no selection, a forward step selects the first command and a backward
// step the last one.
func NextSelection(current, n, delta int) int {
	if n == 0 {
		return -1
	}

	if current < 0 {
		if delta >= 0 {
			return 0
		}

		return n - 1
	}

	return ((current+delta)%n + n) % n
}
