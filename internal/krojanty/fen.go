package krojanty

import (
	"strings"

	"github.com/pkg/errors"
)

var ErrInvalidPosition = errors.New("invalid position")

// Encode writes the FEN-like form: 9 rows joined by "/", digits for runs of
// empty squares, then a space and "b" or "r" for the side to move.
func (p *Position) Encode() string {
	var sb strings.Builder
	for r := 0; r < Size; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for c := 0; c < Size; c++ {
			pc := p.Board.Squares[r][c]
			if pc == Empty {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteRune(pieceToChar(pc))
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	sb.WriteByte(' ')
	if p.SideToMove == Red {
		sb.WriteByte('r')
	} else {
		sb.WriteByte('b')
	}
	return sb.String()
}

// DecodePosition parses the output of Encode. '.' is accepted as a single
// empty square so boards printed by Board.String can be pasted row by row.
func DecodePosition(fen string) (*Position, error) {
	parts := strings.Fields(fen)
	if len(parts) != 2 {
		return nil, errors.Wrapf(ErrInvalidPosition, "want 2 fields, got %d", len(parts))
	}
	rows := strings.Split(parts[0], "/")
	if len(rows) != Size {
		return nil, errors.Wrapf(ErrInvalidPosition, "want %d rows, got %d", Size, len(rows))
	}

	var b Board
	for r, row := range rows {
		c := 0
		for _, ch := range row {
			if c >= Size {
				return nil, errors.Wrapf(ErrInvalidPosition, "row %d too long", r)
			}
			switch {
			case ch >= '1' && ch <= '9':
				c += int(ch - '0')
				continue
			case ch == '.':
				c++
				continue
			}
			pc, ok := charPieces[ch]
			if !ok {
				return nil, errors.Wrapf(ErrInvalidPosition, "unknown piece %q in row %d", ch, r)
			}
			b.Squares[r][c] = pc
			c++
		}
		if c != Size {
			return nil, errors.Wrapf(ErrInvalidPosition, "row %d has %d columns", r, c)
		}
	}

	var stm Side
	switch parts[1] {
	case "b":
		stm = Blue
	case "r":
		stm = Red
	default:
		return nil, errors.Wrapf(ErrInvalidPosition, "unknown side %q", parts[1])
	}

	pos := &Position{
		Board:      b,
		SideToMove: stm,
	}
	pos.Hash = pos.CalculateHash()
	return pos, nil
}
