// Command chessian searches chess positions: it finds the best move for a
// FEN under a time/depth budget, or analyzes a whole game move by move.
// Reports can be persisted to a local store for later inspection.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/sanj0/chessian/internal/analysis"
	"github.com/sanj0/chessian/internal/board"
	"github.com/sanj0/chessian/internal/engine"
	"github.com/sanj0/chessian/internal/store"
)

func main() {
	var (
		fen       = flag.String("fen", board.StartFEN, "position to search, in FEN")
		depth     = flag.Int("depth", 0, "maximum search depth (0 = unlimited)")
		moveTime  = flag.Duration("movetime", 0, "wall-clock budget (0 = default)")
		strength  = flag.String("strength", "full", "strength level: full, hard, medium or easy")
		movesList = flag.String("moves", "", "space-separated moves to analyze as a game from -fen")
		workers   = flag.Int("workers", 0, "parallel searches during analysis (0 = all CPUs)")
		save      = flag.Bool("save", false, "persist reports to the local store")
		dbDir     = flag.String("db", "", "report store directory (default: platform data dir)")
		verbose   = flag.Bool("v", false, "log every deepening iteration")
	)
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger().
		Level(zerolog.InfoLevel)
	if *verbose {
		logger = logger.Level(zerolog.DebugLevel)
	}

	pos, err := board.ParseFEN(*fen)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot parse position")
	}

	budget := engine.SearchBudget{
		MaxDepth: *depth,
		MoveTime: *moveTime,
		Strength: parseStrength(*strength, logger),
	}

	var st *store.Store
	if *save {
		dir := *dbDir
		if dir == "" {
			dir, err = store.DefaultDir()
			if err != nil {
				logger.Fatal().Err(err).Msg("cannot resolve store directory")
			}
		}
		st, err = store.Open(dir)
		if err != nil {
			logger.Fatal().Err(err).Msg("cannot open report store")
		}
		defer st.Close()
	}

	if *movesList != "" {
		analyzeGame(pos, *movesList, budget, *workers, st, logger)
		return
	}
	searchPosition(pos, budget, st, logger)
}

func searchPosition(pos board.Position, budget engine.SearchBudget, st *store.Store, logger zerolog.Logger) {
	eng := engine.New()
	eng.Logger = logger

	res := eng.BestMove(&pos, budget)
	if res.NoLegalMoves() {
		if pos.InCheck() {
			fmt.Println("checkmate")
		} else {
			fmt.Println("stalemate")
		}
		return
	}

	fmt.Printf("bestmove %s score %s depth %d nodes %d time %s\n",
		res.Move, formatScore(res.Score), res.Depth, res.Nodes, res.Elapsed.Round(time.Millisecond))
	if res.Reply != board.NoMove {
		fmt.Printf("expected reply %s\n", res.Reply)
	}

	if st != nil {
		saveReport(st, pos.FEN(), res, logger)
	}
}

func analyzeGame(pos board.Position, movesList string, budget engine.SearchBudget, workers int, st *store.Store, logger zerolog.Logger) {
	moves, err := parseMoves(pos, movesList)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot parse game")
	}

	reports, err := analysis.AnalyzeGame(context.Background(), pos, moves, analysis.Options{
		Budget:  budget,
		Workers: workers,
		Logger:  logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("analysis failed")
	}

	for _, r := range reports {
		played := "-"
		if r.Played != board.NoMove {
			played = r.Played.String()
		}
		fmt.Printf("ply %3d  played %-6s best %-6s score %s\n",
			r.Ply, played, r.Best, formatScore(r.Score))
		if st != nil {
			err := st.Put(&store.Report{
				FEN:      r.FEN,
				BestMove: r.Best.String(),
				Score:    r.Score,
				Depth:    r.Depth,
			})
			if err != nil {
				logger.Error().Err(err).Int("ply", r.Ply).Msg("cannot save report")
			}
		}
	}
}

// parseMoves reads coordinate-notation moves, replaying them so that
// castling and en passant are recognized and illegal moves are rejected.
func parseMoves(pos board.Position, list string) ([]board.Move, error) {
	var moves []board.Move
	cur := pos
	for _, tok := range strings.Fields(list) {
		m, err := board.ParseMove(tok, &cur)
		if err != nil {
			return nil, err
		}
		next, err := cur.ApplyMoveStrict(m)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
		cur = next
	}
	return moves, nil
}

func saveReport(st *store.Store, fen string, res engine.SearchResult, logger zerolog.Logger) {
	r := &store.Report{
		FEN:      fen,
		BestMove: res.Move.String(),
		Score:    res.Score,
		Depth:    res.Depth,
		Nodes:    res.Nodes,
		Elapsed:  res.Elapsed,
	}
	if res.Reply != board.NoMove {
		r.Reply = res.Reply.String()
	}
	if err := st.Put(r); err != nil {
		logger.Error().Err(err).Msg("cannot save report")
		return
	}
	logger.Info().Str("fen", fen).Msg("report saved")
}

func parseStrength(s string, logger zerolog.Logger) engine.Strength {
	switch s {
	case "full":
		return engine.Full
	case "hard":
		return engine.Hard
	case "medium":
		return engine.Medium
	case "easy":
		return engine.Easy
	default:
		logger.Fatal().Str("strength", s).Msg("unknown strength level")
		return engine.Full
	}
}

// formatScore renders centipawns as pawns, or "mate" beyond the sentinel.
func formatScore(score int) string {
	switch {
	case score >= engine.MateScore:
		return "mate"
	case score <= -engine.MateScore:
		return "mated"
	default:
		return fmt.Sprintf("%+.2f", float64(score)/100)
	}
}
