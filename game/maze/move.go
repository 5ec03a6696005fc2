package maze

// TryMove reports whether a player standing at from may step in direction d,
// and where the step lands. A move is allowed only when the destination is
// inside the grid and from has no wall on that side. Carving keeps walls
// symmetric, so the source cell's flag alone decides the move.
//
// A rejected move returns from unchanged and false.
func TryMove(m *Maze, from Position, d Direction) (Position, bool) {
	if m == nil || !d.valid() {
		return from, false
	}

	cell := m.CellAt(from)
	if cell == nil {
		return from, false
	}

	to := from.Step(d)
	if !m.InBound(to) || cell.HasWall(d) {
		return from, false
	}
	return to, true
}
