package engine

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/sanj0/chessian/internal/board"
)

// Strength throttles the engine for weaker play. A throttled engine only
// searches shallower and shorter; evaluation and move legality are never
// weakened, so even the easiest level plays coherent chess.
type Strength int

const (
	Full Strength = iota // search the whole budget
	Hard
	Medium
	Easy
)

// strengthCaps maps each throttled level to the budget it may not exceed.
var strengthCaps = map[Strength]SearchBudget{
	Hard:   {MaxDepth: 6, MoveTime: 3 * time.Second},
	Medium: {MaxDepth: 4, MoveTime: time.Second},
	Easy:   {MaxDepth: 2, MoveTime: 250 * time.Millisecond},
}

// Search limit defaults.
const (
	// MaxDepth is the hard ply ceiling of any search.
	MaxDepth = 64
	// DefaultMoveTime applies when a budget carries no limit at all.
	DefaultMoveTime = 3 * time.Second
)

// SearchBudget bounds one best-move computation. Zero fields mean
// "unlimited" for that dimension; a budget with no limits at all falls back
// to DefaultMoveTime.
type SearchBudget struct {
	MaxDepth int           // hard ply cutoff, 0 = none
	MoveTime time.Duration // wall-clock cutoff, 0 = none
	Strength Strength      // throttle, Full by default
}

// effective resolves strength throttling and defaults into concrete limits.
func (b SearchBudget) effective() (maxDepth int, moveTime time.Duration) {
	maxDepth, moveTime = b.MaxDepth, b.MoveTime
	if caps, ok := strengthCaps[b.Strength]; ok {
		if maxDepth == 0 || maxDepth > caps.MaxDepth {
			maxDepth = caps.MaxDepth
		}
		if moveTime == 0 || moveTime > caps.MoveTime {
			moveTime = caps.MoveTime
		}
	}
	if maxDepth == 0 && moveTime == 0 {
		moveTime = DefaultMoveTime
	}
	if maxDepth == 0 || maxDepth > MaxDepth {
		maxDepth = MaxDepth
	}
	return maxDepth, moveTime
}

// SearchResult is the outcome of one best-move computation.
// Move is NoMove exactly when the position has no legal moves; the caller
// distinguishes checkmate from stalemate with Position.InCheck.
type SearchResult struct {
	Move    board.Move
	Reply   board.Move // the opponent response the search expects
	Score   int        // centipawns from the mover's perspective
	Depth   int        // deepest fully completed iteration
	Nodes   uint64
	Elapsed time.Duration
}

// NoLegalMoves reports whether the searched position was terminal
// (checkmate or stalemate).
func (r SearchResult) NoLegalMoves() bool {
	return r.Move == board.NoMove
}

// IsMateScore reports whether the score is at or beyond the checkmate
// sentinel in either direction.
func (r SearchResult) IsMateScore() bool {
	return r.Score >= MateScore || r.Score <= -MateScore
}

// Engine is the externally invoked search controller. The zero value is not
// usable; create engines with New. An Engine is cheap and carries no search
// state between calls except the optional game history.
type Engine struct {
	// Logger receives one event per completed deepening iteration.
	Logger zerolog.Logger

	history map[uint64]int
}

// New returns an engine that logs nowhere.
func New() *Engine {
	return &Engine{Logger: zerolog.Nop()}
}

// SetHistory records the Zobrist hashes of the positions played so far.
// Subsequent searches score a move into a twice-seen position as a draw
// (threefold repetition). Pass nil to clear.
func (e *Engine) SetHistory(hashes []uint64) {
	if len(hashes) == 0 {
		e.history = nil
		return
	}
	e.history = make(map[uint64]int, len(hashes))
	for _, h := range hashes {
		e.history[h]++
	}
}

// Evaluate returns the static evaluation of the position, for interaction
// layers that display a live assessment independent of search.
func (e *Engine) Evaluate(p *board.Position) int {
	return Evaluate(p)
}

// BestMove searches the position under the given budget and returns the
// best move of the deepest completed iteration.
//
// The search deepens iteratively and consults the clock only between full
// iterations, never inside one; a single deep iteration may therefore
// overrun MoveTime. Depth 1 always completes, so even a budget too small
// for any iteration yields a legal move rather than a failure.
func (e *Engine) BestMove(p *board.Position, budget SearchBudget) SearchResult {
	start := time.Now()
	maxDepth, moveTime := budget.effective()

	candidates := p.LegalMoves()
	if len(candidates) == 0 {
		score := DrawScore
		if p.InCheck() {
			score = -MateScore
		}
		return SearchResult{Move: board.NoMove, Score: score, Elapsed: time.Since(start)}
	}
	if len(candidates) == 1 {
		return SearchResult{
			Move:    candidates[0],
			Score:   Evaluate(p),
			Elapsed: time.Since(start),
		}
	}

	s := &searcher{history: e.history}
	orderMoves(p, candidates)

	var result SearchResult
	for depth := 1; depth <= maxDepth; depth++ {
		line := s.searchRoot(p, candidates, depth)
		result = SearchResult{
			Move:    line.move,
			Reply:   line.reply,
			Score:   line.score,
			Depth:   depth,
			Nodes:   s.nodes,
			Elapsed: time.Since(start),
		}
		e.Logger.Debug().
			Int("depth", depth).
			Str("move", line.move.String()).
			Int("score", line.score).
			Uint64("nodes", s.nodes).
			Dur("elapsed", result.Elapsed).
			Msg("iteration complete")

		if result.IsMateScore() {
			break
		}
		// Start the next iteration from the current favorite.
		hoistFront(candidates, line.move)
		if moveTime > 0 && time.Since(start) >= moveTime {
			break
		}
	}
	result.Elapsed = time.Since(start)
	return result
}

// BestMoveAsync runs BestMove on its own goroutine so interaction handling
// is never blocked. The channel is buffered and receives exactly one result;
// the caller applies it and advances turn state in one step.
func (e *Engine) BestMoveAsync(p *board.Position, budget SearchBudget) <-chan SearchResult {
	ch := make(chan SearchResult, 1)
	pos := *p
	go func() {
		ch <- e.BestMove(&pos, budget)
	}()
	return ch
}

// GameTime derives a per-move budget from clock settings: a twentieth of
// the base time plus half the increment, capped by the time actually left.
func GameTime(base, increment, left time.Duration) time.Duration {
	t := base/20 + increment/2
	if t > left {
		t = left
	}
	return t
}

// hoistFront moves m to the front of moves, keeping the rest in order.
func hoistFront(moves []board.Move, m board.Move) {
	for i, cur := range moves {
		if cur == m {
			copy(moves[1:i+1], moves[:i])
			moves[0] = m
			return
		}
	}
}
