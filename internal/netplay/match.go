package netplay

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"krojanty/internal/engine"
	"krojanty/internal/krojanty"
)

var ErrNoMove = errors.New("player has no move")

// Player chooses the local side's moves. g is a private copy.
type Player interface {
	NextMove(ctx context.Context, g *krojanty.Game) (krojanty.Move, error)
}

type PlayerFunc func(ctx context.Context, g *krojanty.Game) (krojanty.Move, error)

func (f PlayerFunc) NextMove(ctx context.Context, g *krojanty.Game) (krojanty.Move, error) {
	return f(ctx, g)
}

// EnginePlayer answers with the engine's best move after an optional pause.
type EnginePlayer struct {
	Engine *engine.Engine
	Delay  time.Duration
}

func (p *EnginePlayer) NextMove(ctx context.Context, g *krojanty.Game) (krojanty.Move, error) {
	if p.Delay > 0 {
		t := time.NewTimer(p.Delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return krojanty.NoMove, ctx.Err()
		case <-t.C:
		}
	}
	return p.Engine.BestMove(&g.Board, g.SideToMove()), nil
}

// Match plays Game to the end against the peer on Conn.
type Match struct {
	Conn   *Conn
	Local  krojanty.Side
	Player Player
	Game   *krojanty.Game
	// OnMove, if set, sees every move once it has been played.
	OnMove func(side krojanty.Side, m krojanty.Move, caps krojanty.Captures)
}

type frame struct {
	move krojanty.Move
	err  error
}

// Run returns nil once the game is decided. The connection is closed on
// return.
func (m *Match) Run(ctx context.Context) error {
	if m.Game == nil {
		m.Game = krojanty.NewGame(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	incoming := make(chan frame)
	finished := make(chan struct{})

	g.Go(func() error {
		for {
			mv, err := m.Conn.RecvMove()
			select {
			case incoming <- frame{move: mv, err: err}:
			case <-finished:
				return nil
			}
			if err != nil {
				return nil
			}
		}
	})

	g.Go(func() error {
		defer func() {
			close(finished)
			m.Conn.Close()
		}()
		return m.loop(gctx, incoming)
	})

	return g.Wait()
}

func (m *Match) loop(ctx context.Context, incoming <-chan frame) error {
	for !m.Game.Over() {
		side := m.Game.SideToMove()

		var mv krojanty.Move
		if side == m.Local {
			var err error
			mv, err = m.Player.NextMove(ctx, m.Game.Clone())
			if err != nil {
				return errors.Wrapf(err, "turn %d", m.Game.Turn)
			}
			if mv.IsNone() {
				return errors.Wrapf(ErrNoMove, "%s on turn %d", side, m.Game.Turn)
			}
		} else {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case f := <-incoming:
				if f.err != nil {
					return errors.Wrapf(f.err, "turn %d", m.Game.Turn)
				}
				mv = f.move
			}
		}

		caps, err := m.Game.Play(mv)
		if err != nil {
			return errors.Wrapf(err, "%s move %s", side, mv)
		}
		if side == m.Local {
			if err := m.Conn.SendMove(mv); err != nil {
				return err
			}
		}

		log.Info().
			Int("turn", m.Game.Turn-1).
			Str("side", side.String()).
			Str("move", mv.String()).
			Int("captures", len(caps)).
			Msg("move-played")
		if m.OnMove != nil {
			m.OnMove(side, mv, caps)
		}
	}

	log.Info().
		Str("status", m.Game.Status.String()).
		Str("reason", m.Game.Reason).
		Msg("game-over")
	return nil
}
