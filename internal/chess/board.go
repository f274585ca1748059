package chess

import (
	"strings"

	"github.com/lgbarn/mailbox-attack-go/internal/errors"
)

// Piece list capacities per colour. Non-pawn pieces and pawns are kept in
// separate lists; the king, when present, always occupies slot 0 of the
// piece list.
const (
	MaxPieces = 16
	MaxPawns  = 8
)

// Board is a mailbox board: a flat square array with an Off border plus
// bounded per-colour lists of occupied squares.
//
// Squares may be read directly. Use Put and Remove to change the position so
// the piece lists stay in step with the square array.
type Board struct {
	Squares [SquareNb]Piece

	// Who has the next move.
	ToMove Colour

	pieces     [ColourNb][MaxPieces]Square
	pieceCount [ColourNb]int
	pawns      [ColourNb][MaxPawns]Square
	pawnCount  [ColourNb]int
}

// NewBoard creates an empty board with White to move.
func NewBoard() *Board {
	b := &Board{ToMove: White}
	for sq := Square(0); sq < SquareNb; sq++ {
		if SquareIsOK(sq) {
			b.Squares[sq] = Empty
		} else {
			b.Squares[sq] = Off
		}
	}
	return b
}

// At returns the piece on sq, or Off for anything outside the array.
func (b *Board) At(sq Square) Piece {
	if sq < 0 || sq >= SquareNb {
		return Off
	}
	return b.Squares[sq]
}

// Put places piece p on the empty square sq.
func (b *Board) Put(sq Square, p Piece) error {
	if !SquareIsOK(sq) {
		return errors.Wrapf(errors.ErrInvalidSquare, "put %d", int(sq))
	}
	if !p.IsPiece() {
		return errors.Wrapf(errors.ErrInvalidPiece, "put %#x on %s", uint8(p), sq)
	}
	if b.Squares[sq] != Empty {
		return errors.Wrapf(errors.ErrOccupied, "put %s on %s", p, sq)
	}

	colour := p.Colour()
	if p.IsPawn() {
		n := b.pawnCount[colour]
		if n >= MaxPawns {
			return errors.Wrapf(errors.ErrBoardFull, "%s pawns", colour)
		}
		b.pawns[colour][n] = sq
		b.pawnCount[colour] = n + 1
		b.Squares[sq] = p
		return nil
	}

	n := b.pieceCount[colour]
	if n >= MaxPieces {
		return errors.Wrapf(errors.ErrBoardFull, "%s pieces", colour)
	}
	list := &b.pieces[colour]
	if p.Kind() == King {
		if b.KingSquare(colour) != SquareNone {
			return errors.Wrapf(errors.ErrInvalidPiece, "second %s king on %s", colour, sq)
		}
		// Keep the king first.
		list[n] = list[0]
		list[0] = sq
	} else {
		list[n] = sq
	}
	b.pieceCount[colour] = n + 1
	b.Squares[sq] = p
	return nil
}

// Remove clears sq and returns the piece that stood there, or Empty.
func (b *Board) Remove(sq Square) Piece {
	if !SquareIsOK(sq) {
		return Empty
	}
	p := b.Squares[sq]
	if !p.IsPiece() {
		return Empty
	}
	colour := p.Colour()
	if p.IsPawn() {
		removeSquare(b.pawns[colour][:], &b.pawnCount[colour], sq)
	} else {
		removeSquare(b.pieces[colour][:], &b.pieceCount[colour], sq)
	}
	b.Squares[sq] = Empty
	return p
}

// removeSquare deletes sq from the first *count entries of list by moving
// the last entry into its slot.
func removeSquare(list []Square, count *int, sq Square) {
	n := *count
	for i := 0; i < n; i++ {
		if list[i] == sq {
			list[i] = list[n-1]
			list[n-1] = SquareNone
			*count = n - 1
			return
		}
	}
}

// Pieces returns the squares of colour's non-pawn pieces, king first.
// The slice aliases the board and must not be modified or retained across
// calls to Put or Remove.
func (b *Board) Pieces(colour Colour) []Square {
	if !colour.IsOK() {
		return nil
	}
	return b.pieces[colour][:b.pieceCount[colour]]
}

// Pawns returns the squares of colour's pawns under the same aliasing rules
// as Pieces.
func (b *Board) Pawns(colour Colour) []Square {
	if !colour.IsOK() {
		return nil
	}
	return b.pawns[colour][:b.pawnCount[colour]]
}

// KingSquare returns the square of colour's king, or SquareNone.
func (b *Board) KingSquare(colour Colour) Square {
	if !colour.IsOK() || b.pieceCount[colour] == 0 {
		return SquareNone
	}
	sq := b.pieces[colour][0]
	if b.Squares[sq].Kind() != King {
		return SquareNone
	}
	return sq
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// String renders the board as eight lines from rank 8 down to rank 1.
func (b *Board) String() string {
	var sb strings.Builder
	for rank := BoardSize - 1; rank >= 0; rank-- {
		for file := 0; file < BoardSize; file++ {
			sb.WriteByte(b.Squares[SquareMake(file, rank)].Letter())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
