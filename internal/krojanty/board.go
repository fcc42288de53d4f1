package krojanty

import (
	"strings"
)

const (
	Size       = 9
	NumSquares = Size * Size

	// MaxSlides is the most destinations one piece can reach: a full row
	// plus a full column minus its own square counted twice.
	MaxSlides = 2 * (Size - 1)
	// MaxMoves bounds the legal move count of a side that fills half the
	// board. Move lists are growable; this is only a capacity hint.
	MaxMoves = MaxSlides * NumSquares / 2
)

// Directions in generation order: N, S, W, E.
var Directions = [4][2]int{
	{-1, 0},
	{1, 0},
	{0, -1},
	{0, 1},
}

func OnBoard(r, c int) bool {
	return r >= 0 && r < Size && c >= 0 && c < Size
}

// Goal returns the square a side's king must reach to win by conquest:
// the opponent's city.
func Goal(side Side) (int, int) {
	if side == Blue {
		return Size - 1, Size - 1
	}
	return 0, 0
}

// City returns the home square of side.
func City(side Side) (int, int) {
	return Goal(side.Opposite())
}

// GoalDistance is the Manhattan distance from (r,c) to side's goal.
func GoalDistance(side Side, r, c int) int {
	gr, gc := Goal(side)
	return abs(gr-r) + abs(gc-c)
}

func (b *Board) At(r, c int) Piece { return b.Squares[r][c] }

func (b *Board) Set(r, c int, p Piece) { b.Squares[r][c] = p }

// King returns the square of side's king, ok=false if it has been captured.
func (b *Board) King(side Side) (r, c int, ok bool) {
	k := kingOf(side)
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b.Squares[r][c] == k {
				return r, c, true
			}
		}
	}
	return -1, -1, false
}

// Soldiers counts the soldiers side still has on the board.
func (b *Board) Soldiers(side Side) int {
	s := soldierOf(side)
	n := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b.Squares[r][c] == s {
				n++
			}
		}
	}
	return n
}

// Red pieces are lower case, blue pieces upper case.
var pieceChars = map[Piece]rune{
	RedSoldier:  's',
	RedKing:     'k',
	BlueSoldier: 'S',
	BlueKing:    'K',
}

var charPieces = map[rune]Piece{
	's': RedSoldier,
	'k': RedKing,
	'S': BlueSoldier,
	'K': BlueKing,
}

func pieceToChar(p Piece) rune {
	if ch, ok := pieceChars[p]; ok {
		return ch
	}
	return '.'
}

// Starting layout: blue defends A9 (top left), red defends I1 (bottom right).
const initialBoardString = `..SS.....
.KSS.....
SSS......
SS.......
.........
.......ss
......sss
.....ssk.
.....ss..`

func parseInitialBoard() Board {
	var b Board
	lines := strings.Split(initialBoardString, "\n")
	if len(lines) != Size {
		panic("initialBoardString must have 9 rows")
	}
	for r, line := range lines {
		line = strings.TrimSpace(line)
		if len(line) != Size {
			panic("initialBoardString must have 9 columns")
		}
		for c, ch := range line {
			if ch == '.' {
				continue
			}
			p, ok := charPieces[ch]
			if !ok {
				panic("unknown piece letter: " + string(ch))
			}
			b.Squares[r][c] = p
		}
	}
	return b
}

func NewInitialBoard() Board { return parseInitialBoard() }

// NewInitialPosition returns the opening position; blue moves first.
func NewInitialPosition() *Position {
	pos := &Position{
		Board:      parseInitialBoard(),
		SideToMove: Blue,
	}
	pos.Hash = pos.CalculateHash()
	return pos
}

// String renders the board one row per line, '.' for empty squares.
func (b Board) String() string {
	var sb strings.Builder
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			sb.WriteRune(pieceToChar(b.Squares[r][c]))
		}
		if r < Size-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
