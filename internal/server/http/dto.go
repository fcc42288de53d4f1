package httpserver

import (
	"krojanty/internal/krojanty"
	"krojanty/internal/server/game"
)

// Moves travel as four-character strings such as "A1A3".

type GameResponse struct {
	GameID     string          `json:"game_id"`
	Position   string          `json:"position"`
	ToMove     string          `json:"to_move"`
	Turn       int             `json:"turn"`
	TurnLimit  int             `json:"turn_limit"`
	DeadRed    int             `json:"dead_red"`
	DeadBlue   int             `json:"dead_blue"`
	Status     string          `json:"status"`
	Reason     string          `json:"reason,omitempty"`
	RedScore   int             `json:"red_score"`
	BlueScore  int             `json:"blue_score"`
	LegalMoves []krojanty.Move `json:"legal_moves"`
	History    []krojanty.Move `json:"history"`
}

func snapshotToDTO(s game.Snapshot) GameResponse {
	legal := s.LegalMoves
	if legal == nil {
		legal = []krojanty.Move{}
	}
	history := s.History
	if history == nil {
		history = []krojanty.Move{}
	}
	return GameResponse{
		GameID:     s.ID,
		Position:   s.Position,
		ToMove:     s.ToMove.String(),
		Turn:       s.Turn,
		TurnLimit:  s.TurnLimit,
		DeadRed:    s.Dead[krojanty.Red],
		DeadBlue:   s.Dead[krojanty.Blue],
		Status:     s.Status.String(),
		Reason:     s.Reason,
		RedScore:   s.RedScore,
		BlueScore:  s.BlueScore,
		LegalMoves: legal,
		History:    history,
	}
}

type PlayRequest struct {
	Move string `json:"move"`
}

type CaptureDTO struct {
	Square string `json:"square"`
	Piece  string `json:"piece"`
}

type PlayResponse struct {
	Game     GameResponse `json:"game"`
	Move     string       `json:"move"`
	Captures []CaptureDTO `json:"captures"`
}

func capturesToDTO(caps krojanty.Captures) []CaptureDTO {
	out := make([]CaptureDTO, 0, len(caps))
	for _, c := range caps {
		out = append(out, CaptureDTO{
			Square: krojanty.SquareID(c.Row, c.Col),
			Piece:  pieceName(c.Piece),
		})
	}
	return out
}

func pieceName(p krojanty.Piece) string {
	kind := "soldier"
	if p.IsKing() {
		kind = "king"
	}
	return p.Side().String() + "_" + kind
}

type AiMoveRequest struct {
	MaxDepth int `json:"max_depth"`
}

type AiMoveResponse struct {
	Game     GameResponse `json:"game"`
	BestMove string       `json:"best_move"`
	Score    int          `json:"score"`
	Depth    int          `json:"depth"`
	Nodes    int64        `json:"nodes"`
	TimeMs   int64        `json:"time_ms"`
}

type AnalyzeRequest struct {
	Position string `json:"position"`
	MaxDepth int    `json:"max_depth"`
}

type AnalyzeResponse struct {
	Position string `json:"position"`
	ToMove   string `json:"to_move"`
	Winner   string `json:"winner,omitempty"`
	BestMove string `json:"best_move"`
	Score    int    `json:"score"`
	Depth    int    `json:"depth"`
	Nodes    int64  `json:"nodes"`
	TimeMs   int64  `json:"time_ms"`
	Eval     int    `json:"eval"`
}

type errorResponse struct {
	Error string `json:"error"`
}
