package game

import (
	"sync"
	"time"

	"krojanty/internal/krojanty"
)

type GameState struct {
	ID        string
	CreatedAt time.Time

	mu        sync.Mutex
	game      *krojanty.Game
	updatedAt time.Time
}

// Snapshot is a consistent copy of a game, safe to hand to other goroutines.
type Snapshot struct {
	ID         string
	Position   string
	ToMove     krojanty.Side
	Turn       int
	TurnLimit  int
	Dead       [2]int
	Status     krojanty.Status
	Reason     string
	RedScore   int
	BlueScore  int
	LegalMoves []krojanty.Move
	History    []krojanty.Move
	UpdatedAt  time.Time
}

func (s *GameState) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *GameState) snapshotLocked() Snapshot {
	g := s.game
	red, blue := g.Scores()
	return Snapshot{
		ID:         s.ID,
		Position:   g.Position().Encode(),
		ToMove:     g.SideToMove(),
		Turn:       g.Turn,
		TurnLimit:  g.TurnLimit,
		Dead:       g.Dead,
		Status:     g.Status,
		Reason:     g.Reason,
		RedScore:   red,
		BlueScore:  blue,
		LegalMoves: g.LegalMoves(),
		History:    append([]krojanty.Move(nil), g.History...),
		UpdatedAt:  s.updatedAt,
	}
}
