// Package chess provides the board, piece and geometry types shared by the
// attack tables and the engine helpers.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
	ColourNb
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	}
	return "Invalid"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// IsOK reports whether c is White or Black.
func (c Colour) IsOK() bool {
	return c == White || c == Black
}

// PawnMoveInc returns the square increment of a single pawn push for colour.
func PawnMoveInc(colour Colour) Inc {
	if colour == White {
		return 16
	}
	return -16
}

// PieceFlag is a set of piece-type bits. A pseudo-attack mask is a PieceFlag
// naming every piece type that could attack across a given delta.
type PieceFlag uint8

const (
	BlackPawnFlag PieceFlag = 1 << (iota + 2)
	WhitePawnFlag
	KnightFlag
	BishopFlag
	RookFlag
	KingFlag

	QueenFlags  = BishopFlag | RookFlag
	PawnFlags   = BlackPawnFlag | WhitePawnFlag
	SliderFlags = QueenFlags
)

// PawnFlagFor returns the pawn flag of the given colour.
func PawnFlagFor(colour Colour) PieceFlag {
	if colour == White {
		return WhitePawnFlag
	}
	return BlackPawnFlag
}

// Kind is a colourless piece type.
type Kind int

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Piece is a coloured piece packed into one byte: a colour bit in the low two
// bits and the type flags above it. Testing Piece against a pseudo-attack mask
// therefore needs no decoding.
type Piece uint8

// Colour bits.
const (
	BlackBit Piece = 1 << 0
	WhiteBit Piece = 1 << 1
)

const (
	Empty Piece = 0
	// Off marks the padding around the real board. It carries both colour
	// bits and no type flag.
	Off Piece = BlackBit | WhiteBit

	WhitePawn   = WhiteBit | Piece(WhitePawnFlag)
	WhiteKnight = WhiteBit | Piece(KnightFlag)
	WhiteBishop = WhiteBit | Piece(BishopFlag)
	WhiteRook   = WhiteBit | Piece(RookFlag)
	WhiteQueen  = WhiteBit | Piece(QueenFlags)
	WhiteKing   = WhiteBit | Piece(KingFlag)

	BlackPawn   = BlackBit | Piece(BlackPawnFlag)
	BlackKnight = BlackBit | Piece(KnightFlag)
	BlackBishop = BlackBit | Piece(BishopFlag)
	BlackRook   = BlackBit | Piece(RookFlag)
	BlackQueen  = BlackBit | Piece(QueenFlags)
	BlackKing   = BlackBit | Piece(KingFlag)

	// PieceNb bounds any table indexed by a Piece value.
	PieceNb = 256
)

// MakePiece creates a coloured piece of the given kind.
// It returns Empty for NoKind or an invalid colour.
func MakePiece(colour Colour, kind Kind) Piece {
	if !colour.IsOK() {
		return Empty
	}
	bit := BlackBit
	if colour == White {
		bit = WhiteBit
	}
	switch kind {
	case Pawn:
		return bit | Piece(PawnFlagFor(colour))
	case Knight:
		return bit | Piece(KnightFlag)
	case Bishop:
		return bit | Piece(BishopFlag)
	case Rook:
		return bit | Piece(RookFlag)
	case Queen:
		return bit | Piece(QueenFlags)
	case King:
		return bit | Piece(KingFlag)
	}
	return Empty
}

// MakePawn returns the pawn of the given colour.
func MakePawn(colour Colour) Piece {
	return MakePiece(colour, Pawn)
}

// W creates a white piece.
func W(kind Kind) Piece {
	return MakePiece(White, kind)
}

// B creates a black piece.
func B(kind Kind) Piece {
	return MakePiece(Black, kind)
}

// IsPiece reports whether p is a real coloured piece (not Empty or Off).
func (p Piece) IsPiece() bool {
	return p != Empty && p != Off && p.Flags() != 0
}

// Colour returns the colour of a piece. The result is meaningless for Empty
// and Off; check IsPiece first.
func (p Piece) Colour() Colour {
	if p&WhiteBit != 0 {
		return White
	}
	return Black
}

// Flags returns the piece-type flags of p.
func (p Piece) Flags() PieceFlag {
	return PieceFlag(p &^ (WhiteBit | BlackBit))
}

// Kind returns the colourless type of p.
func (p Piece) Kind() Kind {
	switch f := p.Flags(); {
	case f&PawnFlags != 0:
		return Pawn
	case f == KnightFlag:
		return Knight
	case f == BishopFlag:
		return Bishop
	case f == RookFlag:
		return Rook
	case f == QueenFlags:
		return Queen
	case f == KingFlag:
		return King
	}
	return NoKind
}

// IsPawn reports whether p is a pawn of either colour.
func (p Piece) IsPawn() bool {
	return p.Flags()&PawnFlags != 0
}

// IsSlider reports whether p is a bishop, rook or queen.
func (p Piece) IsSlider() bool {
	return p.Flags()&SliderFlags != 0
}

// Letter returns the FEN letter of p: upper case for White, lower case for
// Black, '.' for Empty and '?' for anything else.
func (p Piece) Letter() byte {
	if p == Empty {
		return '.'
	}
	letters := []byte{'?', 'P', 'N', 'B', 'R', 'Q', 'K'}
	k := p.Kind()
	if k == NoKind || p == Off {
		return '?'
	}
	l := letters[k]
	if p.Colour() == Black {
		l += 'a' - 'A'
	}
	return l
}

// String returns the FEN letter of p as a string.
func (p Piece) String() string {
	return string(p.Letter())
}
