package chess

// Board geometry. The real 8x8 board sits inside a 16x16 mailbox with a
// border of four squares on every side, so a1 is 0x44 and h8 is 0xBB.
// Stepping off the real board by up to a knight leap from any real square
// lands on a border square that is still inside the array.
const (
	BoardSize  = 8
	FileNb     = 16
	Border     = 4
	SquareNb   = FileNb * FileNb
	SquareNone = Square(0)
)

// Square is an index into the 16x16 mailbox.
type Square int

// SquareMake returns the square at the given 0-based file and rank.
// It returns SquareNone if either coordinate is off the board.
func SquareMake(file, rank int) Square {
	if file < 0 || file >= BoardSize || rank < 0 || rank >= BoardSize {
		return SquareNone
	}
	return Square((rank+Border)*FileNb + file + Border)
}

// SquareIsOK reports whether sq is a real board square.
func SquareIsOK(sq Square) bool {
	if sq < 0 || sq >= SquareNb {
		return false
	}
	file := int(sq)%FileNb - Border
	rank := int(sq)/FileNb - Border
	return file >= 0 && file < BoardSize && rank >= 0 && rank < BoardSize
}

// File returns the 0-based file of sq. Only meaningful for real squares.
func (sq Square) File() int {
	return int(sq)%FileNb - Border
}

// Rank returns the 0-based rank of sq. Only meaningful for real squares.
func (sq Square) Rank() int {
	return int(sq)/FileNb - Border
}

// Index64 returns file + 8*rank, the conventional 0..63 square number.
func (sq Square) Index64() int {
	return sq.File() + BoardSize*sq.Rank()
}

// String returns the algebraic name of sq, or "-" if sq is not on the board.
func (sq Square) String() string {
	if !SquareIsOK(sq) {
		return "-"
	}
	return string([]byte{byte('a' + sq.File()), byte('1' + sq.Rank())})
}

// ParseSquare converts an algebraic name such as "e4" to a square.
// It returns SquareNone and false for anything else.
func ParseSquare(s string) (Square, bool) {
	if len(s) != 2 {
		return SquareNone, false
	}
	file := int(s[0]) - 'a'
	rank := int(s[1]) - '1'
	sq := SquareMake(file, rank)
	return sq, sq != SquareNone
}

// Delta is the difference between two squares, to - from.
type Delta int

// Delta bounds. The most negative displacement, seven ranks down and seven
// files left, maps to table index 0.
const (
	DeltaNone   = Delta(0)
	DeltaOffset = 7*FileNb + 7
	DeltaNb     = 2*DeltaOffset + 1
)

// DeltaIsOK reports whether d is a displacement between two real squares.
// Values that only arise from the mailbox row wrap-around, such as +8, are
// rejected.
func DeltaIsOK(d Delta) bool {
	if d < -DeltaOffset || d > DeltaOffset {
		return false
	}
	// Split d into rank*16 + file with file in -8..7. The bias keeps the
	// dividend positive so integer division floors.
	rank := (int(d)+BoardSize+BoardSize*FileNb)/FileNb - BoardSize
	file := int(d) - rank*FileNb
	return abs(rank) < BoardSize && abs(file) < BoardSize
}

// DeltaIndex returns d biased into the zero-based table range.
func DeltaIndex(d Delta) int {
	return int(d) + DeltaOffset
}

// Inc is a single-step direction: one of the eight queen directions or one
// of the eight knight leaps.
type Inc int

// Increment bounds. The largest increment is a knight leap of two ranks and
// one file.
const (
	IncNone   = Inc(0)
	IncOffset = 2*FileNb + 1
	IncNb     = 2*IncOffset + 1
)

// IncIsOK reports whether inc lies in the increment table range.
func IncIsOK(inc Inc) bool {
	return inc != IncNone && inc >= -IncOffset && inc <= IncOffset
}

// IncIndex returns inc biased into the zero-based table range.
func IncIndex(inc Inc) int {
	return int(inc) + IncOffset
}

// Distance returns the Chebyshev (king-move) distance between two squares.
func Distance(a, b Square) int {
	df := abs(a.File() - b.File())
	dr := abs(a.Rank() - b.Rank())
	if df > dr {
		return df
	}
	return dr
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
