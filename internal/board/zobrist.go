package board

import "math/rand/v2"

// Zobrist keys, generated once from a fixed seed so hashes are stable
// across runs.
var (
	zobristPiece     [12][64]uint64
	zobristSide      uint64
	zobristCastling  [16]uint64
	zobristEnPassant [8]uint64
)

func init() {
	rng := rand.New(rand.NewPCG(0x63686573, 0x7369616e))
	for p := range zobristPiece {
		for sq := range zobristPiece[p] {
			zobristPiece[p][sq] = rng.Uint64()
		}
	}
	zobristSide = rng.Uint64()
	for i := range zobristCastling {
		zobristCastling[i] = rng.Uint64()
	}
	for i := range zobristEnPassant {
		zobristEnPassant[i] = rng.Uint64()
	}
}

// Hash returns the Zobrist key of the position, covering piece placement,
// side to move, castling rights and the en passant file. Equal keys identify
// repeated positions for threefold detection.
func (p *Position) Hash() uint64 {
	var h uint64
	for sq := A1; sq <= H8; sq++ {
		if piece := p.Board[sq]; piece != NoPiece {
			h ^= zobristPiece[piece][sq]
		}
	}
	if p.SideToMove == Black {
		h ^= zobristSide
	}
	h ^= zobristCastling[p.CastlingRights]
	if p.EnPassant != NoSquare {
		h ^= zobristEnPassant[p.EnPassant.File()]
	}
	return h
}
