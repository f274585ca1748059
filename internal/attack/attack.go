package attack

import "github.com/lgbarn/mailbox-attack-go/internal/chess"

// IsAttacked reports whether any piece of colour by attacks square to on
// board b. It returns false for a nil board, a square off the board or an
// invalid colour. It does not allocate and does not modify b.
func (t *Tables) IsAttacked(b *chess.Board, to chess.Square, by chess.Colour) bool {
	if b == nil || !chess.SquareIsOK(to) || !by.IsOK() {
		return false
	}

	// Pawns attack from the two squares diagonally behind the target,
	// seen from the pawn's direction of travel.
	inc := chess.Square(chess.PawnMoveInc(by))
	pawn := chess.MakePawn(by)
	if b.Squares[to-(inc-1)] == pawn || b.Squares[to-(inc+1)] == pawn {
		return true
	}

	for _, from := range b.Pieces(by) {
		piece := b.Squares[from]
		delta := chess.Delta(to - from)

		if !t.PseudoAttack(piece, delta) {
			continue
		}
		if piece.Flags()&(chess.KnightFlag|chess.KingFlag) != 0 {
			return true
		}
		if rayReaches(b, from, to, t.IncLine(delta)) {
			return true
		}
	}

	return false
}

// rayReaches walks from along inc and reports whether it arrives at to
// before hitting an occupied square or leaving the board.
func rayReaches(b *chess.Board, from, to chess.Square, inc chess.Inc) bool {
	if inc == chess.IncNone {
		return false
	}
	step := chess.Square(inc)
	for sq := from + step; chess.SquareIsOK(sq); sq += step {
		if sq == to {
			return true
		}
		if b.Squares[sq] != chess.Empty {
			return false
		}
	}
	return false
}

// LineIsEmpty reports whether from and to share a rank, file or diagonal and
// every square strictly between them is empty. Adjacent squares on a line
// are trivially clear.
func (t *Tables) LineIsEmpty(b *chess.Board, from, to chess.Square) bool {
	if b == nil || !chess.SquareIsOK(from) || !chess.SquareIsOK(to) || from == to {
		return false
	}
	inc := t.IncLine(chess.Delta(to - from))
	if inc == chess.IncNone {
		return false
	}
	step := chess.Square(inc)
	for sq := from + step; sq != to; sq += step {
		if b.Squares[sq] != chess.Empty {
			return false
		}
	}
	return true
}
