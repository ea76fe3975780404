package game

// Cell holds the state of one grid position.
type Cell struct {
	IsMine        bool // mine at this position
	IsRevealed    bool // opened by the player
	IsFlagged     bool // marked by the player
	NeighborCount int  // mines among the up-to-8 neighbours, unused for mines
}

// Pos is a zero-based (row, column) coordinate.
type Pos struct {
	Row, Col int
}

// Board is the grid of a single session.
type Board struct {
	Rows      int
	Cols      int
	MineCount int
	Cells     [][]Cell // Cells[row][col]

	revealedSafe int
	flags        int
}

// Outcome classifies the result of a reveal.
type Outcome int

const (
	NoOp Outcome = iota
	SafeReveal
	MineHit
)

func (o Outcome) String() string {
	switch o {
	case SafeReveal:
		return "safe"
	case MineHit:
		return "mine"
	default:
		return "noop"
	}
}

// RevealResult is returned by Reveal. Cells lists the newly revealed
// positions in the order they were opened.
type RevealResult struct {
	Outcome Outcome
	Cells   []Pos
}

// FlagOutcome classifies the result of a flag toggle.
type FlagOutcome int

const (
	FlagNoOp FlagOutcome = iota
	Flagged
	Unflagged
)

func (o FlagOutcome) String() string {
	switch o {
	case Flagged:
		return "flagged"
	case Unflagged:
		return "unflagged"
	default:
		return "noop"
	}
}

// State is the progress of a session.
type State int

const (
	Ready State = iota
	InProgress
	Won
	Lost
)

func (s State) String() string {
	switch s {
	case InProgress:
		return "in_progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "ready"
	}
}

// Terminal reports whether no further moves are accepted.
func (s State) Terminal() bool {
	return s == Won || s == Lost
}

// CellKind is what a player may see of a cell.
type CellKind int

const (
	Hidden CellKind = iota
	FlaggedCell
	RevealedNumber
	RevealedMine
)

// CellView is the player-visible view of a cell. Count is only meaningful
// for RevealedNumber.
type CellView struct {
	Kind  CellKind
	Count int
}

// BoardView is the read-only surface a solver or renderer may inspect.
// It never exposes mine positions of hidden cells.
type BoardView interface {
	Rows() int
	Cols() int
	MineCount() int
	CellView(row, col int) (CellView, bool)
}
