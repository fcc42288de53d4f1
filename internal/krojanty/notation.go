package krojanty

import (
	"github.com/pkg/errors"
)

var ErrInvalidSquare = errors.New("invalid square")

// SquareID names (r,c) the way players and the peer protocol do: column
// letter A..I, then 9-row. (0,0) is A9, (8,8) is I1.
func SquareID(r, c int) string {
	if !OnBoard(r, c) {
		return "??"
	}
	return string([]byte{byte('A' + c), byte('0' + Size - r)})
}

// ParseSquare is the inverse of SquareID. Lower-case column letters are
// accepted.
func ParseSquare(s string) (r, c int, err error) {
	if len(s) != 2 {
		return 0, 0, errors.Wrapf(ErrInvalidSquare, "%q", s)
	}
	col := s[0]
	if col >= 'a' && col <= 'i' {
		col -= 'a' - 'A'
	}
	if col < 'A' || col > 'I' || s[1] < '1' || s[1] > '9' {
		return 0, 0, errors.Wrapf(ErrInvalidSquare, "%q", s)
	}
	return Size - int(s[1]-'0'), int(col - 'A'), nil
}

// ParseMove reads the 4-character form "A1A3". It checks syntax only.
func ParseMove(s string) (Move, error) {
	if len(s) != 4 {
		return NoMove, errors.Wrapf(ErrInvalidSquare, "move %q must be 4 characters", s)
	}
	r1, c1, err := ParseSquare(s[:2])
	if err != nil {
		return NoMove, errors.Wrapf(err, "move %q", s)
	}
	r2, c2, err := ParseSquare(s[2:])
	if err != nil {
		return NoMove, errors.Wrapf(err, "move %q", s)
	}
	return Move{R1: r1, C1: c1, R2: r2, C2: c2}, nil
}

func (m Move) String() string {
	if m.IsNone() {
		return "----"
	}
	return SquareID(m.R1, m.C1) + SquareID(m.R2, m.C2)
}

func (m Move) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Move) UnmarshalText(text []byte) error {
	if string(text) == "----" {
		*m = NoMove
		return nil
	}
	mv, err := ParseMove(string(text))
	if err != nil {
		return err
	}
	*m = mv
	return nil
}
