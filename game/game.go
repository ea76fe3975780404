package game

// Evaluate derives the session state after a reveal. A mine hit loses,
// revealing the last safe cell wins, anything else keeps the game going.
func Evaluate(b *Board, last Outcome) State {
	if last == MineHit {
		return Lost
	}
	if b.CheckClear() {
		return Won
	}
	return InProgress
}

// Game is one session: a board and its state. It is not safe for
// concurrent use.
type Game struct {
	board *Board
	state State
}

// New starts a session on a freshly generated board.
func New(cfg Config, gen *Generator) *Game {
	return NewFromBoard(gen.Generate(cfg))
}

// NewFromBoard starts a session on a prepared board.
func NewFromBoard(b *Board) *Game {
	return &Game{board: b, state: Ready}
}

// Reveal opens a cell and advances the state. Once the game has ended, or
// when nothing was opened, it returns NoOp and the state is unchanged.
// Losing discloses every mine.
func (g *Game) Reveal(row, col int) RevealResult {
	if g.state.Terminal() {
		return RevealResult{Outcome: NoOp}
	}

	res := g.board.Reveal(row, col)
	if res.Outcome == NoOp {
		return res
	}

	g.state = Evaluate(g.board, res.Outcome)
	if g.state == Lost {
		g.board.RevealAllMines()
	}
	return res
}

// ToggleFlag flips a flag. It never changes the state.
func (g *Game) ToggleFlag(row, col int) FlagOutcome {
	if g.state.Terminal() {
		return FlagNoOp
	}
	return g.board.ToggleFlag(row, col)
}

func (g *Game) State() State {
	return g.state
}

func (g *Game) Config() Config {
	return g.board.Config()
}

func (g *Game) Rows() int {
	return g.board.Rows
}

func (g *Game) Cols() int {
	return g.board.Cols
}

func (g *Game) MineCount() int {
	return g.board.MineCount
}

// CellView returns what the player sees at (row, col). ok is false when the
// coordinates are off the board.
func (g *Game) CellView(row, col int) (view CellView, ok bool) {
	return g.board.CellView(row, col)
}

func (g *Game) RevealedCount() int {
	return g.board.RevealedCount()
}

func (g *Game) RemainingMines() int {
	return g.board.RemainingMines()
}
