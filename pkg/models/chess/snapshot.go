package chess

import (
	"encoding/hex"
	"fmt"
	"strings"
)

func (p Player) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("player %d has no name", p)
	}
	return []byte(strings.ToLower(p.String())), nil
}

func (p *Player) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "human":
		*p = Human
	case "ai":
		*p = AI
	default:
		return fmt.Errorf("unknown player %q", text)
	}
	return nil
}

type LineRecord struct {
	Line
	Owner Player `json:"owner"`
}

type BoxRecord struct {
	Box
	Owner Player `json:"owner"`
}

// Snapshot is the serializable form of a GameState. Lines are listed in
// the order they were drawn.
type Snapshot struct {
	Size             int          `json:"size"`
	Lines            []LineRecord `json:"lines"`
	Boxes            []BoxRecord  `json:"boxes"`
	CurrentPlayer    Player       `json:"currentPlayer"`
	TurnCount        int          `json:"turnCount"`
	PowerEnabled     bool         `json:"powerEnabled,omitempty"`
	HumanTokens      int          `json:"humanTokens,omitempty"`
	AITokens         int          `json:"aiTokens,omitempty"`
	HumanEarned      bool         `json:"humanEarned,omitempty"`
	AIEarned         bool         `json:"aiEarned,omitempty"`
	ExtraMovePending bool         `json:"extraMovePending,omitempty"`
	BonusBoxes       []Box        `json:"bonusBoxes,omitempty"`
}

func (s *GameState) Snapshot() Snapshot {
	snap := Snapshot{
		Size:             s.grid.size,
		Lines:            make([]LineRecord, 0, len(s.history)),
		Boxes:            []BoxRecord{},
		CurrentPlayer:    s.current,
		TurnCount:        s.turnCount,
		PowerEnabled:     s.powerEnabled,
		HumanTokens:      s.tokens[Human.index()],
		AITokens:         s.tokens[AI.index()],
		HumanEarned:      s.earned[Human.index()],
		AIEarned:         s.earned[AI.index()],
		ExtraMovePending: s.extraMove,
		BonusBoxes:       s.BonusBoxes(),
	}

	for _, id := range s.history {
		snap.Lines = append(snap.Lines, LineRecord{Line: s.grid.lines[id], Owner: s.lines[id]})
	}
	for id, p := range s.boxes {
		if p != nobody {
			snap.Boxes = append(snap.Boxes, BoxRecord{Box: s.grid.boxes[id], Owner: p})
		}
	}
	return snap
}

// FromSnapshot rebuilds a GameState and checks that it is one the rules
// could have produced: every complete box is owned and no other box is.
func FromSnapshot(snap Snapshot) (*GameState, error) {
	if !snap.CurrentPlayer.Valid() {
		return nil, fmt.Errorf("%w: current player %d", ErrInvalidSnapshot, snap.CurrentPlayer)
	}

	opts := []Option{WithFirstPlayer(snap.CurrentPlayer)}
	if snap.PowerEnabled {
		opts = append(opts, WithPowerTokens())
	}

	s, err := New(snap.Size, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
	}

	for _, r := range snap.Lines {
		if !s.Legal(r.Line) {
			return nil, fmt.Errorf("%w: line %v is off the grid or repeated", ErrInvalidSnapshot, r.Line)
		}
		if !r.Owner.Valid() {
			return nil, fmt.Errorf("%w: line %v has no owner", ErrInvalidSnapshot, r.Line)
		}
		id := s.grid.lineID(r.Line)
		s.lines[id] = r.Owner
		s.history = append(s.history, id)
		s.drawn++
	}

	for _, r := range snap.Boxes {
		if !r.Box.Valid(s.grid.size) || !r.Owner.Valid() {
			return nil, fmt.Errorf("%w: box %v", ErrInvalidSnapshot, r.Box)
		}
		id := s.grid.boxID(r.Box)
		if s.boxes[id] != nobody {
			return nil, fmt.Errorf("%w: box %v repeated", ErrInvalidSnapshot, r.Box)
		}
		s.boxes[id] = r.Owner
		s.score[r.Owner.index()]++
	}

	for id := range s.boxes {
		if (s.boxes[id] != nobody) != s.boxComplete(id) {
			return nil, fmt.Errorf("%w: box %v ownership disagrees with its lines", ErrInvalidSnapshot, s.grid.boxes[id])
		}
	}

	if snap.HumanTokens < 0 || snap.HumanTokens > 1 || snap.AITokens < 0 || snap.AITokens > 1 {
		return nil, fmt.Errorf("%w: token counts must be 0 or 1", ErrInvalidSnapshot)
	}
	if !snap.PowerEnabled && (snap.HumanTokens > 0 || snap.AITokens > 0 || snap.ExtraMovePending) {
		return nil, fmt.Errorf("%w: power state without power tokens enabled", ErrInvalidSnapshot)
	}

	s.turnCount = snap.TurnCount
	s.tokens = [2]int{snap.HumanTokens, snap.AITokens}
	s.earned = [2]bool{snap.HumanEarned, snap.AIEarned}
	s.extraMove = snap.ExtraMovePending

	if len(snap.BonusBoxes) > 0 {
		s.bonus = make([]bool, s.grid.BoxCount())
		for _, b := range snap.BonusBoxes {
			if !b.Valid(s.grid.size) {
				return nil, fmt.Errorf("%w: bonus box %v", ErrInvalidSnapshot, b)
			}
			s.bonus[s.grid.boxID(b)] = true
		}
	}

	return s, nil
}

// Key identifies a position for caching search results. Line owners do
// not affect play, so only the drawn set is encoded.
func (s *GameState) Key() string {
	key := fmt.Sprintf("%d:%s:%d:%d:%d:%d:%d:%t:%t:%t",
		s.grid.size, bitset(len(s.lines), func(id int) bool { return s.lines[id] != nobody }), s.current,
		s.score[0], s.score[1], s.tokens[0], s.tokens[1], s.earned[0], s.earned[1], s.extraMove)

	if s.bonus != nil {
		key += ":" + bitset(len(s.bonus), func(id int) bool { return s.bonus[id] })
	}
	return key
}

func bitset(n int, set func(id int) bool) string {
	bits := make([]byte, (n+7)/8)
	for id := range n {
		if set(id) {
			bits[id/8] |= 1 << (id % 8)
		}
	}
	return hex.EncodeToString(bits)
}
