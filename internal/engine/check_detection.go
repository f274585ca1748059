package engine

import (
	"github.com/lgbarn/mailbox-attack-go/internal/attack"
	"github.com/lgbarn/mailbox-attack-go/internal/chess"
)

// IsInCheck returns true if the given colour's king is attacked.
// A board without a king for colour is never in check.
func IsInCheck(tables *attack.Tables, board *chess.Board, colour chess.Colour) bool {
	if board == nil {
		return false
	}
	king := board.KingSquare(colour)
	if king == chess.SquareNone {
		return false
	}
	return tables.IsAttacked(board, king, colour.Opposite())
}

// AttackMap returns the set of squares attacked by colour as a 64-bit mask,
// bit file+8*rank per square.
func AttackMap(tables *attack.Tables, board *chess.Board, colour chess.Colour) uint64 {
	var mask uint64
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			sq := chess.SquareMake(file, rank)
			if tables.IsAttacked(board, sq, colour) {
				mask |= 1 << uint(sq.Index64())
			}
		}
	}
	return mask
}

// Report summarises the attack state of one position.
type Report struct {
	FEN     string
	Board   *chess.Board
	InCheck [chess.ColourNb]bool
	Attacks [chess.ColourNb]uint64
}

// Probe loads fen and reports check status and attack maps for both sides.
func Probe(tables *attack.Tables, fen string) (Report, error) {
	board, err := NewBoardFromFEN(fen)
	if err != nil {
		return Report{FEN: fen}, err
	}
	r := Report{FEN: fen, Board: board}
	for _, c := range []chess.Colour{chess.White, chess.Black} {
		r.InCheck[c] = IsInCheck(tables, board, c)
		r.Attacks[c] = AttackMap(tables, board, c)
	}
	return r, nil
}
