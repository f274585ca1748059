// Package engine loads positions into the mailbox board and answers check
// and attack-map questions with the attack tables.
package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/mailbox-attack-go/internal/chess"
	"github.com/lgbarn/mailbox-attack-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ConvertFENCharToPiece converts a FEN character to a coloured piece.
// Upper case is White, lower case Black. Anything else yields chess.Empty.
func ConvertFENCharToPiece(c byte) chess.Piece {
	colour := chess.White
	if c >= 'a' && c <= 'z' {
		colour = chess.Black
		c -= 'a' - 'A'
	}
	switch c {
	case 'K':
		return chess.MakePiece(colour, chess.King)
	case 'Q':
		return chess.MakePiece(colour, chess.Queen)
	case 'R':
		return chess.MakePiece(colour, chess.Rook)
	case 'B':
		return chess.MakePiece(colour, chess.Bishop)
	case 'N':
		return chess.MakePiece(colour, chess.Knight)
	case 'P':
		return chess.MakePiece(colour, chess.Pawn)
	default:
		return chess.Empty
	}
}

// NewBoardFromFEN creates a board from a FEN string. Only the piece
// placement and side-to-move fields are used; castling, en passant and the
// clocks do not affect attacks and are ignored.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	board := chess.NewBoard()

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, err
	}

	if err := parseSideToMove(board, parts); err != nil {
		return nil, err
	}

	return board, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	rank := chess.BoardSize - 1
	file := 0

	for _, c := range positions {
		switch {
		case c == '/':
			if file != chess.BoardSize {
				return fmt.Errorf("rank %d has %d files: %w", rank+1, file, errors.ErrInvalidFEN)
			}
			rank--
			file = 0
			if rank < 0 {
				return fmt.Errorf("too many ranks: %w", errors.ErrInvalidFEN)
			}
		case c >= '1' && c <= '8':
			file += int(c - '0')
			if file > chess.BoardSize {
				return fmt.Errorf("rank %d overflows: %w", rank+1, errors.ErrInvalidFEN)
			}
		default:
			if c > unicode.MaxASCII {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			piece := ConvertFENCharToPiece(byte(c))
			if piece == chess.Empty {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			sq := chess.SquareMake(file, rank)
			if sq == chess.SquareNone {
				return fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN)
			}
			if err := board.Put(sq, piece); err != nil {
				return fmt.Errorf("placing %c: %v: %w", c, err, errors.ErrInvalidFEN)
			}
			file++
		}
	}

	if rank != 0 || file != chess.BoardSize {
		return fmt.Errorf("placement ends at rank %d file %d: %w", rank+1, file, errors.ErrInvalidFEN)
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(board *chess.Board, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		board.ToMove = chess.White
	case "b":
		board.ToMove = chess.Black
	default:
		return fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
	return nil
}

// BoardToFEN converts a board to a FEN string. Fields the board does not
// model are written as "- - 0 1".
func BoardToFEN(board *chess.Board) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	if board.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteString(" - - 0 1")

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.At(chess.SquareMake(file, rank))
			if piece == chess.Empty {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *chess.Board {
	board, _ := NewBoardFromFEN(InitialFEN)
	return board
}
