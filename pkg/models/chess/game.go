package chess

import (
	"fmt"
	"math/rand"
)

type Player int8

const (
	Human Player = 1
	AI    Player = -1

	nobody Player = 0
)

func (p Player) Opponent() Player { return -p }

func (p Player) Valid() bool { return p == Human || p == AI }

func (p Player) String() string {
	switch p {
	case Human:
		return "Human"
	case AI:
		return "AI"
	}
	return ""
}

// index maps a player onto the per-player arrays.
func (p Player) index() int {
	if p == AI {
		return 1
	}
	return 0
}

// GameState is the rules engine. It is the only place that mutates lines,
// boxes and scores; search explores positions through Clone.
type GameState struct {
	grid *Grid

	lines []Player
	boxes []Player
	drawn int
	score [2]int

	current   Player
	turnCount int
	history   []int

	powerEnabled bool
	tokens       [2]int
	earned       [2]bool
	extraMove    bool

	// bonus is fixed at construction and shared between clones.
	bonus []bool
}

type Option func(*options)

type options struct {
	power      bool
	first      Player
	bonusCount int
	bonusRand  *rand.Rand
}

// WithPowerTokens enables the power-token variant.
func WithPowerTokens() Option {
	return func(o *options) { o.power = true }
}

func WithFirstPlayer(p Player) Option {
	return func(o *options) {
		if p.Valid() {
			o.first = p
		}
	}
}

// WithBonusBoxes marks n random boxes as bonus boxes. Capturing one grants
// a power token whenever the capturer holds none.
func WithBonusBoxes(n int, rng *rand.Rand) Option {
	return func(o *options) {
		o.bonusCount = n
		o.bonusRand = rng
	}
}

// New creates an empty board of size x size dots.
func New(size int, opts ...Option) (*GameState, error) {
	if size < MinBoardSize || size > MaxBoardSize {
		return nil, fmt.Errorf("%w: %d not in [%d, %d]", ErrBoardSizeOutOfRange, size, MinBoardSize, MaxBoardSize)
	}

	o := options{first: Human}
	for _, opt := range opts {
		opt(&o)
	}

	g := GridOf(size)
	s := &GameState{
		grid:         g,
		lines:        make([]Player, g.LineCount()),
		boxes:        make([]Player, g.BoxCount()),
		current:      o.first,
		powerEnabled: o.power,
	}

	if o.bonusCount > 0 && o.bonusRand != nil {
		s.bonus = make([]bool, g.BoxCount())
		for _, id := range o.bonusRand.Perm(g.BoxCount())[:min(o.bonusCount, g.BoxCount())] {
			s.bonus[id] = true
		}
	}

	return s, nil
}

// Clone returns a fully independent copy of s.
func (s *GameState) Clone() *GameState {
	c := *s
	c.lines = append([]Player(nil), s.lines...)
	c.boxes = append([]Player(nil), s.boxes...)
	c.history = append([]int(nil), s.history...)
	return &c
}

func (s *GameState) Grid() *Grid { return s.grid }

func (s *GameState) Size() int { return s.grid.size }

func (s *GameState) TotalLines() int { return s.grid.LineCount() }

func (s *GameState) LineCount() int { return s.drawn }

func (s *GameState) CurrentPlayer() Player { return s.current }

func (s *GameState) TurnCount() int { return s.turnCount }

func (s *GameState) Score(p Player) int { return s.score[p.index()] }

func (s *GameState) PowerEnabled() bool { return s.powerEnabled }

func (s *GameState) PowerTokens(p Player) int { return s.tokens[p.index()] }

func (s *GameState) ExtraMovePending() bool { return s.extraMove }

// LastMove is the most recently drawn line still on the board.
func (s *GameState) LastMove() (Line, bool) {
	if len(s.history) == 0 {
		return Line{}, false
	}
	return s.grid.lines[s.history[len(s.history)-1]], true
}

// History lists the drawn lines in the order they were drawn.
func (s *GameState) History() []Line {
	lines := make([]Line, len(s.history))
	for i, id := range s.history {
		lines[i] = s.grid.lines[id]
	}
	return lines
}

func (s *GameState) LineOwner(l Line) (Player, bool) {
	if !l.Valid(s.grid.size) {
		return nobody, false
	}
	p := s.lines[s.grid.lineID(l)]
	return p, p != nobody
}

func (s *GameState) BoxOwner(b Box) (Player, bool) {
	if !b.Valid(s.grid.size) {
		return nobody, false
	}
	p := s.boxes[s.grid.boxID(b)]
	return p, p != nobody
}

// Lines returns a copy of the drawn lines and their owners.
func (s *GameState) Lines() map[Line]Player {
	lines := make(map[Line]Player, s.drawn)
	for id, p := range s.lines {
		if p != nobody {
			lines[s.grid.lines[id]] = p
		}
	}
	return lines
}

// Boxes returns a copy of the captured boxes and their owners.
func (s *GameState) Boxes() map[Box]Player {
	boxes := make(map[Box]Player, s.score[0]+s.score[1])
	for id, p := range s.boxes {
		if p != nobody {
			boxes[s.grid.boxes[id]] = p
		}
	}
	return boxes
}

func (s *GameState) BonusBoxes() (boxes []Box) {
	for id, b := range s.bonus {
		if b {
			boxes = append(boxes, s.grid.boxes[id])
		}
	}
	return
}

// Legal reports whether l can be passed to MakeMove.
func (s *GameState) Legal(l Line) bool {
	return l.Valid(s.grid.size) && s.lines[s.grid.lineID(l)] == nobody
}

// PossibleMoves lists the undrawn lines, horizontal lines first, each group
// by row then column.
func (s *GameState) PossibleMoves() (moves []Line) {
	if s.IsTerminal() {
		return nil
	}

	moves = make([]Line, 0, len(s.lines)-s.drawn)
	for id, p := range s.lines {
		if p == nobody {
			moves = append(moves, s.grid.lines[id])
		}
	}
	return
}

func (s *GameState) AdjacentBoxes(l Line) []Box { return s.grid.AdjacentBoxes(l) }

// IsBoxCompleted ignores ownership and only looks at the four lines.
func (s *GameState) IsBoxCompleted(b Box) bool {
	if !b.Valid(s.grid.size) {
		return false
	}
	return s.boxComplete(s.grid.boxID(b))
}

func (s *GameState) boxComplete(id int) bool {
	for _, l := range s.grid.boxLines[id] {
		if s.lines[l] == nobody {
			return false
		}
	}
	return true
}

func (s *GameState) IsTerminal() bool { return s.drawn >= s.grid.LineCount() }

// Evaluate is the AI's box count minus the Human's.
func (s *GameState) Evaluate() int {
	return s.score[AI.index()] - s.score[Human.index()]
}

// MakeMove draws l for the current player. l must be legal; anything else
// is a caller bug and panics.
//
// The turn passes to the opponent unless the move captured a box or an
// extra move was pending.
func (s *GameState) MakeMove(l Line) {
	if !l.Valid(s.grid.size) {
		panic(fmt.Sprintf("chess: line %v is not on a %dx%d grid", l, s.grid.size, s.grid.size))
	}

	id := s.grid.lineID(l)
	if s.lines[id] != nobody {
		panic(fmt.Sprintf("chess: line %v already drawn", l))
	}

	captured := s.draw(id, s.current)
	s.turnCount++

	if s.extraMove {
		s.extraMove = false
		return
	}

	if captured == 0 {
		s.current = s.current.Opponent()
	}
}

// draw records line id for p and captures every box it completes.
func (s *GameState) draw(id int, p Player) (captured int) {
	s.lines[id] = p
	s.drawn++
	s.history = append(s.history, id)

	bonus := false
	for _, b := range s.grid.lineBoxes[id] {
		if s.boxes[b] == nobody && s.boxComplete(b) {
			s.boxes[b] = p
			s.score[p.index()]++
			captured++
			bonus = bonus || (s.bonus != nil && s.bonus[b])
		}
	}

	if captured > 0 && s.powerEnabled {
		s.award(p, bonus)
	}
	return
}

// award grants a token for the first capture of the match, or for a bonus
// box. The count never exceeds one.
func (s *GameState) award(p Player, bonus bool) {
	i := p.index()
	if s.tokens[i] > 0 {
		return
	}
	if !s.earned[i] || bonus {
		s.tokens[i] = 1
		s.earned[i] = true
	}
}
