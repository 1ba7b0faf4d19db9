// Package analysis re-runs the engine over every position of a game, one
// independent search per historical position. Positions are values and each
// worker owns its own engine, so the searches share nothing and run in
// parallel safely.
package analysis

import (
	"context"
	"fmt"
	"runtime"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/sanj0/chessian/internal/board"
	"github.com/sanj0/chessian/internal/engine"
)

// Options configures a game analysis.
type Options struct {
	Budget  engine.SearchBudget // budget per position
	Workers int                 // concurrent searches, 0 = all CPUs
	Logger  zerolog.Logger
}

// MoveReport is the verdict on one historical position.
type MoveReport struct {
	Ply    int        // 0 = the starting position of the game
	FEN    string     // the analyzed position
	Played board.Move // the move actually played, NoMove on the final position
	Best   board.Move // the engine's choice, NoMove if the game was over
	Score  int        // centipawns for the side to move
	Depth  int
}

// AnalyzeGame replays moves from start, rejecting any illegal one, then
// searches each resulting position under opts.Budget. The returned reports
// are ordered by ply: one per position before each played move, plus the
// final position. A canceled context stops unstarted searches; a search
// already in flight finishes its current iteration first.
func AnalyzeGame(ctx context.Context, start board.Position, moves []board.Move, opts Options) ([]MoveReport, error) {
	positions := make([]board.Position, 0, len(moves)+1)
	hashes := make([]uint64, 0, len(moves)+1)
	positions = append(positions, start)
	hashes = append(hashes, start.Hash())

	cur := start
	for i, m := range moves {
		next, err := cur.ApplyMoveStrict(m)
		if err != nil {
			return nil, fmt.Errorf("replaying move %d: %w", i+1, err)
		}
		cur = next
		positions = append(positions, cur)
		hashes = append(hashes, cur.Hash())
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	reports := make([]MoveReport, len(positions))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range positions {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			eng := engine.New()
			eng.Logger = opts.Logger.With().Int("ply", i).Logger()
			eng.SetHistory(hashes[:i+1])

			pos := positions[i]
			res := eng.BestMove(&pos, opts.Budget)

			played := board.NoMove
			if i < len(moves) {
				played = moves[i]
			}
			reports[i] = MoveReport{
				Ply:    i,
				FEN:    pos.FEN(),
				Played: played,
				Best:   res.Move,
				Score:  res.Score,
				Depth:  res.Depth,
			}
			opts.Logger.Info().
				Int("ply", i).
				Str("best", res.Move.String()).
				Int("score", res.Score).
				Msg("position analyzed")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
