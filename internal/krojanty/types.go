package krojanty

type Side int8

const (
	NoSide Side = -1
	Red    Side = 0
	Blue   Side = 1
)

func (s Side) Opposite() Side {
	switch s {
	case Red:
		return Blue
	case Blue:
		return Red
	default:
		return NoSide
	}
}

func (s Side) String() string {
	switch s {
	case Red:
		return "red"
	case Blue:
		return "blue"
	default:
		return "none"
	}
}

// Piece codes match the snapshot format used by the board UI and the peer
// protocol: 0 empty, 1/2 soldiers, 3/4 kings.
type Piece int8

const (
	Empty       Piece = 0
	RedSoldier  Piece = 1
	BlueSoldier Piece = 2
	RedKing     Piece = 3
	BlueKing    Piece = 4
)

func (p Piece) Side() Side {
	switch p {
	case RedSoldier, RedKing:
		return Red
	case BlueSoldier, BlueKing:
		return Blue
	default:
		return NoSide
	}
}

func (p Piece) IsKing() bool    { return p == RedKing || p == BlueKing }
func (p Piece) IsSoldier() bool { return p == RedSoldier || p == BlueSoldier }

// Ally reports whether p belongs to side. Empty squares belong to nobody.
func (p Piece) Ally(side Side) bool { return p != Empty && p.Side() == side }

// Enemy reports whether p belongs to the opponent of side.
func (p Piece) Enemy(side Side) bool { return p != Empty && p.Side() == side.Opposite() }

func kingOf(side Side) Piece {
	if side == Blue {
		return BlueKing
	}
	return RedKing
}

func soldierOf(side Side) Piece {
	if side == Blue {
		return BlueSoldier
	}
	return RedSoldier
}

// Board is a plain value: assigning it copies the whole grid.
type Board struct {
	Squares [Size][Size]Piece
}

// Move slides the piece on (R1,C1) to (R2,C2).
type Move struct {
	R1, C1 int
	R2, C2 int
}

// NoMove is returned when a side has nothing to play.
var NoMove = Move{R1: -1, C1: -1, R2: -1, C2: -1}

func (m Move) IsNone() bool { return m.R1 < 0 }

// Position = board + side to move.
type Position struct {
	Board      Board
	SideToMove Side
	Hash       uint64
}
