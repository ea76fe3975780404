package solver

import (
	"github.com/ne241099c/minesweeper/game"
)

// maxSegmentSize bounds the backtracking search; larger segments are skipped.
const maxSegmentSize = 18

// TankSolver enumerates every mine layout consistent with the visible
// numbers on each frontier segment.
type TankSolver struct {
	Board game.BoardView
}

func NewTankSolver(b game.BoardView) *TankSolver {
	return &TankSolver{Board: b}
}

// Solve returns a certain move if one exists, otherwise the open with the
// lowest mine probability. It returns nil when there is no frontier.
func (ts *TankSolver) Solve() *Move {
	segments := ts.createSegments()

	var bestMove *Move
	bestProb := 1.0

	for _, seg := range segments {
		if len(seg.unknowns) > maxSegmentSize {
			continue
		}

		solutions := ts.solveSegment(seg)
		if len(solutions) == 0 {
			continue // inconsistent, e.g. a wrong flag
		}

		counts := make([]int, len(seg.unknowns))
		for _, sol := range solutions {
			for i, isMine := range sol {
				if isMine {
					counts[i]++
				}
			}
		}

		total := float64(len(solutions))
		for i, count := range counts {
			prob := float64(count) / total
			p := seg.unknowns[i]

			if count == 0 {
				return &Move{Row: p.Row, Col: p.Col, Type: MoveOpen, Strategy: StrategyTank, Confidence: 1.0}
			}
			if count == len(solutions) {
				return &Move{Row: p.Row, Col: p.Col, Type: MoveFlag, Strategy: StrategyTank, Confidence: 1.0}
			}

			if prob < bestProb {
				bestProb = prob
				bestMove = &Move{
					Row: p.Row, Col: p.Col,
					Type:       MoveOpen,
					Strategy:   StrategyTankProb,
					Confidence: 1.0 - prob,
				}
			}
		}
	}

	return bestMove
}

// segment is a connected group of frontier cells and the numbers that
// constrain them.
type segment struct {
	unknowns []game.Pos
	rules    []rule
}

type rule struct {
	cells []int // indexes into segment.unknowns
	mines int   // mines still required among cells
}

func (ts *TankSolver) key(p game.Pos) int {
	return p.Row*ts.Board.Cols() + p.Col
}

func (ts *TankSolver) createSegments() []*segment {
	// 1. numbered cells that still border hidden cells
	var numbered []game.Pos
	frontier := make(map[int]game.Pos)
	var order []int

	for r := 0; r < ts.Board.Rows(); r++ {
		for c := 0; c < ts.Board.Cols(); c++ {
			v, _ := ts.Board.CellView(r, c)
			if v.Kind != game.RevealedNumber || v.Count == 0 {
				continue
			}
			_, flags, hidden := neighborsInfo(ts.Board, r, c)
			if len(hidden) == 0 || flags == v.Count {
				continue
			}
			numbered = append(numbered, game.Pos{Row: r, Col: c})
			for _, h := range hidden {
				k := ts.key(h)
				if _, seen := frontier[k]; !seen {
					frontier[k] = h
					order = append(order, k)
				}
			}
		}
	}

	// 2. connect hidden cells that share a number
	adj := make(map[int][]int)
	for _, n := range numbered {
		_, _, hidden := neighborsInfo(ts.Board, n.Row, n.Col)
		for i := 0; i < len(hidden)-1; i++ {
			k1 := ts.key(hidden[i])
			for j := i + 1; j < len(hidden); j++ {
				k2 := ts.key(hidden[j])
				adj[k1] = append(adj[k1], k2)
				adj[k2] = append(adj[k2], k1)
			}
		}
	}

	visited := make(map[int]bool)
	var segments []*segment

	// Walk in discovery order so results do not depend on map iteration.
	for _, start := range order {
		if visited[start] {
			continue
		}

		var group []int
		queue := []int{start}
		visited[start] = true
		for len(queue) > 0 {
			curr := queue[0]
			queue = queue[1:]
			group = append(group, curr)

			for _, next := range adj[curr] {
				if !visited[next] {
					visited[next] = true
					queue = append(queue, next)
				}
			}
		}

		seg := &segment{unknowns: make([]game.Pos, len(group))}
		local := make(map[int]int, len(group))
		for i, k := range group {
			seg.unknowns[i] = frontier[k]
			local[k] = i
		}

		for _, n := range numbered {
			_, flags, hidden := neighborsInfo(ts.Board, n.Row, n.Col)
			// All hidden neighbours of a number are connected, so checking
			// the first is enough.
			if _, ok := local[ts.key(hidden[0])]; !ok {
				continue
			}
			v, _ := ts.Board.CellView(n.Row, n.Col)
			r := rule{cells: make([]int, len(hidden)), mines: v.Count - flags}
			for i, h := range hidden {
				r.cells[i] = local[ts.key(h)]
			}
			seg.rules = append(seg.rules, r)
		}
		segments = append(segments, seg)
	}

	return segments
}

func (ts *TankSolver) solveSegment(seg *segment) [][]bool {
	var solutions [][]bool
	config := make([]bool, len(seg.unknowns))
	ts.backtrack(seg, 0, config, &solutions)
	return solutions
}

func (ts *TankSolver) backtrack(seg *segment, index int, config []bool, solutions *[][]bool) {
	if !isValid(seg, config, index) {
		return
	}
	if index == len(seg.unknowns) {
		sol := make([]bool, len(config))
		copy(sol, config)
		*solutions = append(*solutions, sol)
		return
	}

	config[index] = true
	ts.backtrack(seg, index+1, config, solutions)

	config[index] = false
	ts.backtrack(seg, index+1, config, solutions)
}

// isValid checks every rule against the first decided cells of config.
// Cells at or beyond decided are still open.
func isValid(seg *segment, config []bool, decided int) bool {
	for _, r := range seg.rules {
		mines, open := 0, 0
		for _, idx := range r.cells {
			switch {
			case idx >= decided:
				open++
			case config[idx]:
				mines++
			}
		}
		if mines > r.mines || mines+open < r.mines {
			return false
		}
	}
	return true
}
