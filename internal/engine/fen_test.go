package engine

import (
	stderrors "errors"
	"testing"

	"github.com/lgbarn/mailbox-attack-go/internal/chess"
	"github.com/lgbarn/mailbox-attack-go/internal/errors"
)

func sq(name string) chess.Square {
	s, _ := chess.ParseSquare(name)
	return s
}

func TestNewBoardFromFEN(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		wantErr bool
		checkFn func(*chess.Board) bool
	}{
		{
			name:    "initial position",
			fen:     InitialFEN,
			wantErr: false,
			checkFn: func(b *chess.Board) bool {
				return b.At(sq("e1")) == chess.W(chess.King) &&
					b.At(sq("e8")) == chess.B(chess.King) &&
					b.At(sq("e2")) == chess.W(chess.Pawn) &&
					b.At(sq("e7")) == chess.B(chess.Pawn) &&
					b.ToMove == chess.White &&
					len(b.Pieces(chess.White)) == 8 &&
					len(b.Pawns(chess.Black)) == 8
			},
		},
		{
			name:    "after 1.e4",
			fen:     "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			wantErr: false,
			checkFn: func(b *chess.Board) bool {
				return b.At(sq("e4")) == chess.W(chess.Pawn) &&
					b.At(sq("e2")) == chess.Empty &&
					b.ToMove == chess.Black
			},
		},
		{
			name:    "placement only",
			fen:     "4k3/8/8/8/8/8/8/4K3",
			wantErr: false,
			checkFn: func(b *chess.Board) bool {
				return b.KingSquare(chess.White) == sq("e1") &&
					b.KingSquare(chess.Black) == sq("e8") &&
					b.ToMove == chess.White
			},
		},
		{"empty string", "", true, nil},
		{"too few ranks", "8/8/8/8/8/8/8 w", true, nil},
		{"too many ranks", "8/8/8/8/8/8/8/8/8 w", true, nil},
		{"rank overflow", "9/8/8/8/8/8/8/8 w", true, nil},
		{"short rank", "7/8/8/8/8/8/8/8 w", true, nil},
		{"pieces overflow rank", "8/8/8/8/8/8/8/4K4 w", true, nil},
		{"bad piece letter", "8/8/8/8/8/8/8/4X3 w", true, nil},
		{"non-ascii", "8/8/8/8/8/8/8/4♚3 w", true, nil},
		{"two white kings", "8/8/8/8/8/8/8/3KK3 w", true, nil},
		{"bad side to move", "8/8/8/8/8/8/8/8 x", true, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := NewBoardFromFEN(tt.fen)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewBoardFromFEN() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				if !stderrors.Is(err, errors.ErrInvalidFEN) {
					t.Errorf("NewBoardFromFEN() error = %v; want ErrInvalidFEN", err)
				}
				return
			}
			if tt.checkFn != nil && !tt.checkFn(board) {
				t.Errorf("NewBoardFromFEN() board check failed:\n%s", board)
			}
		})
	}
}

func TestBoardToFEN_RoundTrip(t *testing.T) {
	fens := []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1",
		"r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R b - - 0 1",
		"8/5k2/8/8/8/8/5K2/4R3 w - - 0 1",
		"8/8/8/8/8/8/8/8 w - - 0 1",
	}
	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			board, err := NewBoardFromFEN(fen)
			if err != nil {
				t.Fatalf("NewBoardFromFEN(%q) error: %v", fen, err)
			}
			if got := BoardToFEN(board); got != fen {
				t.Errorf("BoardToFEN() = %q; want %q", got, fen)
			}
		})
	}
}

func TestConvertFENCharToPiece(t *testing.T) {
	tests := []struct {
		c    byte
		want chess.Piece
	}{
		{'K', chess.WhiteKing},
		{'q', chess.BlackQueen},
		{'R', chess.WhiteRook},
		{'b', chess.BlackBishop},
		{'N', chess.WhiteKnight},
		{'p', chess.BlackPawn},
		{'x', chess.Empty},
		{'1', chess.Empty},
	}
	for _, tt := range tests {
		if got := ConvertFENCharToPiece(tt.c); got != tt.want {
			t.Errorf("ConvertFENCharToPiece(%c) = %v; want %v", tt.c, got, tt.want)
		}
	}
}

func TestNewInitialBoard(t *testing.T) {
	board := NewInitialBoard()
	if board == nil {
		t.Fatal("NewInitialBoard() = nil, want non-nil board")
	}
	if board.ToMove != chess.White {
		t.Errorf("NewInitialBoard().ToMove = %v, want White", board.ToMove)
	}
	if got := board.At(sq("e4")); got != chess.Empty {
		t.Errorf("NewInitialBoard().At(e4) = %v, want Empty", got)
	}
}
