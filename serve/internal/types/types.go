package types

import (
	"github.com/HuXin0817/power-boxes/pkg/assess"
	"github.com/HuXin0817/power-boxes/pkg/match"
	"github.com/HuXin0817/power-boxes/pkg/models/chess"
)

type AssessRequest struct {
	Snapshot  chess.Snapshot   `json:"snapshot"`
	Depth     int              `json:"depth,omitempty"`
	Algorithm assess.Algorithm `json:"algorithm"`
	// Power lets the player to move spend a token before the search.
	Power bool  `json:"power,omitempty"`
	Seed  int64 `json:"seed,omitempty"`
}

type AssessResponse struct {
	Move   chess.Line            `json:"move"`
	Found  bool                  `json:"found"`
	Score  int                   `json:"score"`
	Nodes  int                   `json:"nodes"`
	Cached bool                  `json:"cached"`
	Power  *assess.PowerDecision `json:"power,omitempty"`
}

type CreateMatchRequest struct {
	Difficulty  string           `json:"difficulty,omitempty"`
	BoardSize   int              `json:"boardSize,omitempty"`
	Depth       int              `json:"depth,omitempty"`
	Algorithm   assess.Algorithm `json:"algorithm"`
	PowerTokens bool             `json:"powerTokens,omitempty"`
	BonusBoxes  int              `json:"bonusBoxes,omitempty"`
	AIFirst     bool             `json:"aiFirst,omitempty"`
	Seed        int64            `json:"seed,omitempty"`
}

type MoveRequest struct {
	Line chess.Line `json:"line"`
}

type PowerRequest struct {
	Action chess.PowerAction `json:"action"`
}

type MatchResponse struct {
	GameUid  string           `json:"gameUid"`
	Snapshot chess.Snapshot   `json:"snapshot"`
	Over     bool             `json:"over"`
	Winner   string           `json:"winner,omitempty"`
	Power    *chess.PowerPlan `json:"power,omitempty"`
	AIMoves  []match.AIMove   `json:"aiMoves,omitempty"`

	// AIPending is set when the AI ran out of time before finishing its
	// turn. The client resumes it with POST /v1/games/:uid/ai.
	AIPending bool `json:"aiPending,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
