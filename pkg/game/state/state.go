package state

import (
	"solitaire/pkg/game/catalog"
	"solitaire/pkg/game/evaluate"
	"solitaire/pkg/game/hint"
	"solitaire/pkg/game/placement"
)

// Phase is where the player is in a play-through
type Phase int

// Phases
const (
	Idle Phase = iota
	Playing
	Completed
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "Idle"
	case Playing:
		return "Playing"
	case Completed:
		return "Completed"
	default:
		return "Phase(?)"
	}
}

// Kind tells a success message from a failure one
type Kind int

const (
	Success Kind = iota
	Error
)

// Message is the feedback shown after a submit.
type Message struct {
	Kind Kind
	Key  string // translation key
	Text string
}

// Celebration drives the confetti effect. Recycling goes false first (no new
// particles), then Active (effect hidden).
type Celebration struct {
	Active    bool
	Recycling bool
}

// Session is one play-through of one puzzle
type Session struct {
	Puzzle       *catalog.Puzzle
	Placements   *placement.Store
	Presentation []catalog.ItemID

	LastHint *hint.Suggestion
	Message  *Message

	Phase       Phase
	Celebration Celebration

	Log []string
}

// NewSession creates a session for p with an empty board
func NewSession(p *catalog.Puzzle, presentation []catalog.Item) *Session {
	s := &Session{
		Puzzle:     p,
		Placements: placement.NewStore(p.Size()),
		Phase:      Playing,
		Log:        make([]string, 0),
	}
	s.SetPresentation(presentation)
	return s
}

// SetPresentation replaces the deck order
func (s *Session) SetPresentation(items []catalog.Item) {
	s.Presentation = make([]catalog.ItemID, len(items))
	for i, it := range items {
		s.Presentation[i] = it.ID
	}
}

// AddLog adds an entry to the session's activity log
func (s *Session) AddLog(msg string) {
	const maxEntries = 5
	s.Log = append(s.Log, msg)

	// Keep only the last maxEntries
	if len(s.Log) > maxEntries {
		s.Log = s.Log[len(s.Log)-maxEntries:]
	}
}

// ClearFeedback drops the current hint and message
func (s *Session) ClearFeedback() {
	s.LastHint = nil
	s.Message = nil
}

// Board returns the current placements as an immutable set.
func (s *Session) Board() placement.Set {
	return s.Placements.Snapshot()
}

// Snapshot is everything a renderer needs to draw one frame. It never
// aliases the controller's state.
type Snapshot struct {
	Phase   Phase
	Puzzle  *catalog.Puzzle
	Puzzles []*catalog.Puzzle

	Presentation []catalog.Item
	Placed       map[catalog.ItemID]bool
	Placements   []placement.Placement
	Board        placement.Set

	Evaluation *evaluate.Result // nil while Idle
	Hint       *hint.Suggestion
	Message    *Message

	Celebration Celebration
	Log         []string
}

// Snapshot builds the renderer view of the session
func (s *Session) Snapshot(puzzles []*catalog.Puzzle) Snapshot {
	board := s.Board()
	eval := evaluate.Evaluate(s.Puzzle, board)

	snap := Snapshot{
		Phase:        s.Phase,
		Puzzle:       s.Puzzle,
		Puzzles:      puzzles,
		Presentation: make([]catalog.Item, 0, len(s.Presentation)),
		Placed:       make(map[catalog.ItemID]bool, board.Len()),
		Placements:   board.Placements(),
		Board:        board,
		Evaluation:   &eval,
		Celebration:  s.Celebration,
		Log:          append([]string(nil), s.Log...),
	}
	for _, id := range s.Presentation {
		if it, ok := s.Puzzle.Item(id); ok {
			snap.Presentation = append(snap.Presentation, it)
		}
	}
	for _, p := range snap.Placements {
		snap.Placed[p.Item] = true
	}
	if s.LastHint != nil {
		h := *s.LastHint
		snap.Hint = &h
	}
	if s.Message != nil {
		m := *s.Message
		snap.Message = &m
	}
	return snap
}

// IdleSnapshot is the view when no puzzle is selected
func IdleSnapshot(puzzles []*catalog.Puzzle) Snapshot {
	return Snapshot{
		Phase:   Idle,
		Puzzles: puzzles,
		Placed:  map[catalog.ItemID]bool{},
	}
}

// ShowHint reports whether the hint box should be visible; a message hides it.
func (s Snapshot) ShowHint() bool {
	return s.Hint != nil && s.Message == nil && s.Phase == Playing
}
