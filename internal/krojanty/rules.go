package krojanty

// Capture records one piece removed by a move.
type Capture struct {
	Row, Col int
	Piece    Piece
}

// Captures lists the pieces removed by one Apply, push capture first.
type Captures []Capture

// KingTaken returns the side whose king was captured, or NoSide.
func (cs Captures) KingTaken() Side {
	for _, c := range cs {
		if c.Piece.IsKing() {
			return c.Piece.Side()
		}
	}
	return NoSide
}

// SoldiersLost counts captured soldiers belonging to side.
func (cs Captures) SoldiersLost(side Side) int {
	n := 0
	for _, c := range cs {
		if c.Piece.IsSoldier() && c.Piece.Side() == side {
			n++
		}
	}
	return n
}

// Apply plays m on the board and resolves captures around the destination:
// first the push capture along the direction of travel, then the sandwich
// capture in all four directions. The move is assumed legal. Only the
// receiver is modified; callers that need to undo keep a copy of the board.
func (b *Board) Apply(m Move) Captures {
	p := b.Squares[m.R1][m.C1]
	b.Squares[m.R2][m.C2] = p
	b.Squares[m.R1][m.C1] = Empty

	var out Captures
	dr, dc := sign(m.R2-m.R1), sign(m.C2-m.C1)
	out = b.pushCapture(m.R2, m.C2, dr, dc, out)
	out = b.sandwichCapture(m.R2, m.C2, out)
	return out
}

// pushCapture ("Seultou"): the piece on (r,c) that just moved in direction
// (dr,dc) takes the enemy right in front of it, unless a second enemy stands
// directly behind the victim. The board edge never guards.
func (b *Board) pushCapture(r, c, dr, dc int, out Captures) Captures {
	if dr == 0 && dc == 0 {
		return out
	}
	side := b.Squares[r][c].Side()

	vr, vc := r+dr, c+dc
	if !OnBoard(vr, vc) {
		return out
	}
	victim := b.Squares[vr][vc]
	if !victim.Enemy(side) {
		return out
	}
	gr, gc := r+2*dr, c+2*dc
	if OnBoard(gr, gc) && b.Squares[gr][gc].Enemy(side) {
		return out
	}
	b.Squares[vr][vc] = Empty
	return append(out, Capture{Row: vr, Col: vc, Piece: victim})
}

// sandwichCapture ("Linca"): any enemy adjacent to (r,c) with an ally of the
// mover directly behind it is taken. All four directions are checked.
func (b *Board) sandwichCapture(r, c int, out Captures) Captures {
	side := b.Squares[r][c].Side()
	if side == NoSide {
		return out
	}
	for _, d := range Directions {
		nr, nc := r+d[0], c+d[1]
		fr, fc := r+2*d[0], c+2*d[1]
		if !OnBoard(nr, nc) || !OnBoard(fr, fc) {
			continue
		}
		near := b.Squares[nr][nc]
		if near.Enemy(side) && b.Squares[fr][fc].Ally(side) {
			b.Squares[nr][nc] = Empty
			out = append(out, Capture{Row: nr, Col: nc, Piece: near})
		}
	}
	return out
}

// ThreatensPush reports whether m lands facing an enemy along its direction
// of travel, i.e. whether it attempts a push capture.
func (b *Board) ThreatensPush(m Move) bool {
	side := b.Squares[m.R1][m.C1].Side()
	dr, dc := sign(m.R2-m.R1), sign(m.C2-m.C1)
	vr, vc := m.R2+dr, m.C2+dc
	return OnBoard(vr, vc) && b.Squares[vr][vc].Enemy(side)
}
