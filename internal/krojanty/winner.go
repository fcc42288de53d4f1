package krojanty

// Winner is the terminal check used by search. It reports the side that has
// already won on b, or NoSide. Checked in order: a missing king, a king on
// its goal square, a side without soldiers. Dead-soldier counters and the
// turn limit belong to Game and are not visible from a bare board.
func Winner(b *Board) Side {
	var (
		redKing, blueKing         bool
		rr, rc, br, bc            int
		redSoldiers, blueSoldiers int
	)
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			switch b.Squares[r][c] {
			case BlueKing:
				blueKing, br, bc = true, r, c
			case RedKing:
				redKing, rr, rc = true, r, c
			case BlueSoldier:
				blueSoldiers++
			case RedSoldier:
				redSoldiers++
			}
		}
	}

	if !redKing {
		return Blue
	}
	if !blueKing {
		return Red
	}

	if gr, gc := Goal(Blue); br == gr && bc == gc {
		return Blue
	}
	if gr, gc := Goal(Red); rr == gr && rc == gc {
		return Red
	}

	if redSoldiers == 0 {
		return Blue
	}
	if blueSoldiers == 0 {
		return Red
	}
	return NoSide
}
