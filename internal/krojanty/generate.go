package krojanty

// GenerateMoves lists every slide available to side. Soldiers and kings move
// alike: any distance orthogonally over empty squares, never jumping and
// never landing on an occupied square. The board is not modified.
func (b *Board) GenerateMoves(side Side) []Move {
	return b.AppendMoves(make([]Move, 0, 64), side)
}

// AppendMoves is GenerateMoves into a caller-owned buffer.
func (b *Board) AppendMoves(out []Move, side Side) []Move {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if !b.Squares[r][c].Ally(side) {
				continue
			}
			for _, d := range Directions {
				nr, nc := r+d[0], c+d[1]
				for OnBoard(nr, nc) && b.Squares[nr][nc] == Empty {
					out = append(out, Move{R1: r, C1: c, R2: nr, C2: nc})
					nr += d[0]
					nc += d[1]
				}
			}
		}
	}
	return out
}

// CountMoves returns len(GenerateMoves(side)) without allocating.
func (b *Board) CountMoves(side Side) int {
	n := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if !b.Squares[r][c].Ally(side) {
				continue
			}
			for _, d := range Directions {
				nr, nc := r+d[0], c+d[1]
				for OnBoard(nr, nc) && b.Squares[nr][nc] == Empty {
					n++
					nr += d[0]
					nc += d[1]
				}
			}
		}
	}
	return n
}

// IsLegal reports whether m is one of side's generated moves.
func (b *Board) IsLegal(side Side, m Move) bool {
	if !OnBoard(m.R1, m.C1) || !OnBoard(m.R2, m.C2) {
		return false
	}
	if !b.Squares[m.R1][m.C1].Ally(side) {
		return false
	}
	dr, dc := sign(m.R2-m.R1), sign(m.C2-m.C1)
	if (dr == 0) == (dc == 0) {
		// diagonal or null move
		return false
	}
	r, c := m.R1+dr, m.C1+dc
	for {
		if b.Squares[r][c] != Empty {
			return false
		}
		if r == m.R2 && c == m.C2 {
			return true
		}
		r += dr
		c += dc
	}
}
