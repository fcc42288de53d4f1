package krojanty

import (
	"github.com/pkg/errors"
)

var (
	ErrIllegalMove = errors.New("illegal move")
	ErrGameOver    = errors.New("game is over")
)

const (
	// DefaultTurnLimit is the last turn played before the game is decided on
	// points.
	DefaultTurnLimit = 64
	// ExterminationCount dead soldiers lose the game.
	ExterminationCount = 8
)

type Status int8

const (
	Ongoing Status = iota
	RedWins
	BlueWins
	Draw
)

func (s Status) String() string {
	switch s {
	case Ongoing:
		return "ongoing"
	case RedWins:
		return "red_wins"
	case BlueWins:
		return "blue_wins"
	case Draw:
		return "draw"
	default:
		return "unknown"
	}
}

// Winner returns the winning side for a decided status, NoSide otherwise.
func (s Status) Winner() Side {
	switch s {
	case RedWins:
		return Red
	case BlueWins:
		return Blue
	default:
		return NoSide
	}
}

func winStatus(side Side) Status {
	if side == Blue {
		return BlueWins
	}
	return RedWins
}

const (
	ReasonKingCaptured  = "king_captured"
	ReasonConquest      = "conquest"
	ReasonExtermination = "extermination"
	ReasonScore         = "score"
)

// Game is a full match: board, territory control, casualties and the turn
// counter. Turn 1 is blue's, odd turns are blue's, even turns red's.
type Game struct {
	Board   Board
	Control [Size][Size]Side
	// soldiers lost, indexed by Side
	Dead      [2]int
	Turn      int
	TurnLimit int
	Status    Status
	Reason    string
	History   []Move
}

// NewGameFromPosition starts a game from an arbitrary snapshot. Control is
// seeded from the occupants and the cities, casualties start at zero.
func NewGameFromPosition(pos *Position, turnLimit int) *Game {
	g := NewGame(turnLimit)
	g.Board = pos.Board
	g.seedControl()
	if pos.SideToMove == Red {
		g.Turn = 2
	}
	return g
}

// NewGame sets up the starting layout. turnLimit <= 0 means DefaultTurnLimit.
func NewGame(turnLimit int) *Game {
	if turnLimit <= 0 {
		turnLimit = DefaultTurnLimit
	}
	g := &Game{
		Board:     NewInitialBoard(),
		Turn:      1,
		TurnLimit: turnLimit,
	}
	g.seedControl()
	return g
}

func (g *Game) seedControl() {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			g.Control[r][c] = g.Board.Squares[r][c].Side()
		}
	}
	for _, side := range []Side{Red, Blue} {
		r, c := City(side)
		g.Control[r][c] = side
	}
}

func (g *Game) SideToMove() Side {
	if g.Turn%2 == 1 {
		return Blue
	}
	return Red
}

func (g *Game) Over() bool { return g.Status != Ongoing }

// Position snapshots the board and side to move.
func (g *Game) Position() *Position {
	pos := &Position{Board: g.Board, SideToMove: g.SideToMove()}
	pos.Hash = pos.CalculateHash()
	return pos
}

func (g *Game) LegalMoves() []Move {
	if g.Over() {
		return nil
	}
	return g.Board.GenerateMoves(g.SideToMove())
}

// Play validates and plays m for the side to move, then settles the end
// conditions. The returned captures are those made by m.
func (g *Game) Play(m Move) (Captures, error) {
	if g.Over() {
		return nil, errors.Wrapf(ErrGameOver, "%s (%s)", g.Status, g.Reason)
	}
	side := g.SideToMove()
	if !g.Board.IsLegal(side, m) {
		return nil, errors.Wrapf(ErrIllegalMove, "%s for %s", m, side)
	}

	caps := g.Board.Apply(m)
	g.Control[m.R2][m.C2] = side
	for _, owner := range []Side{Red, Blue} {
		if r, c := City(owner); r == m.R1 && c == m.C1 {
			g.Control[r][c] = owner
		}
	}
	g.Dead[Red] += caps.SoldiersLost(Red)
	g.Dead[Blue] += caps.SoldiersLost(Blue)
	g.History = append(g.History, m)

	g.settle(caps)
	g.Turn++
	if !g.Over() && g.Turn > g.TurnLimit {
		g.decideOnScore()
	}
	return caps, nil
}

func (g *Game) settle(caps Captures) {
	if lost := caps.KingTaken(); lost != NoSide {
		g.finish(winStatus(lost.Opposite()), ReasonKingCaptured)
		return
	}

	if r, c := Goal(Red); g.Board.Squares[r][c] == RedKing {
		g.finish(RedWins, ReasonConquest)
		return
	}
	if r, c := Goal(Blue); g.Board.Squares[r][c] == BlueKing {
		g.finish(BlueWins, ReasonConquest)
		return
	}

	if g.Dead[Red] >= ExterminationCount {
		g.finish(BlueWins, ReasonExtermination)
		return
	}
	if g.Dead[Blue] >= ExterminationCount {
		g.finish(RedWins, ReasonExtermination)
	}
}

// Scores counts controlled squares plus remaining soldiers. Kings score
// nothing.
func (g *Game) Scores() (red, blue int) {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			switch g.Control[r][c] {
			case Red:
				red++
			case Blue:
				blue++
			}
			switch g.Board.Squares[r][c] {
			case RedSoldier:
				red++
			case BlueSoldier:
				blue++
			}
		}
	}
	return red, blue
}

func (g *Game) decideOnScore() {
	red, blue := g.Scores()
	switch {
	case red > blue:
		g.finish(RedWins, ReasonScore)
	case blue > red:
		g.finish(BlueWins, ReasonScore)
	default:
		g.finish(Draw, ReasonScore)
	}
}

func (g *Game) finish(s Status, reason string) {
	g.Status = s
	g.Reason = reason
}

// Clone returns an independent copy, history included.
func (g *Game) Clone() *Game {
	cp := *g
	cp.History = append([]Move(nil), g.History...)
	return &cp
}
