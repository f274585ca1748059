// Package attack builds the mailbox geometry tables and answers whether a
// square is attacked by a colour.
//
// Tables are built once by New and never change afterwards, so a single
// *Tables may be shared by any number of goroutines without locking.
package attack

import (
	"sync"

	"github.com/lgbarn/mailbox-attack-go/internal/chess"
)

// Tables is the immutable bundle of attack geometry.
type Tables struct {
	// Per delta: the sliding direction that reaches it, or IncNone.
	deltaIncLine [chess.DeltaNb]chess.Inc
	// Per delta: as deltaIncLine, plus the leap itself for knight deltas.
	deltaIncAll [chess.DeltaNb]chess.Inc
	// Per delta: every piece type that could attack across it on an empty
	// board.
	deltaMask [chess.DeltaNb]chess.PieceFlag
	// Per increment: the piece types that move along it.
	incMask [chess.IncNb]chess.PieceFlag

	pieceCode [chess.PieceNb]Class

	kingDeltas KingDeltaTable
}

var (
	sharedOnce   sync.Once
	sharedTables *Tables
)

// Shared returns the process-wide tables, building them on first use.
// The sync.Once publishes the finished tables to every caller.
func Shared() *Tables {
	sharedOnce.Do(func() {
		sharedTables = New()
	})
	return sharedTables
}

// New builds a fresh, independent set of tables. Building is deterministic:
// two calls return tables that compare equal.
func New() *Tables {
	t := &Tables{}
	t.build()
	return t
}

func (t *Tables) build() {
	t.clear()
	t.initPawns()
	t.initKnights()
	t.initSliders(chess.BishopInc, chess.BishopFlag)
	t.initSliders(chess.RookInc, chess.RookFlag)
	t.initKing()
	t.initPieceCodes()
	t.initKingDeltas()
}

func (t *Tables) clear() {
	for i := range t.deltaIncLine {
		t.deltaIncLine[i] = chess.IncNone
		t.deltaIncAll[i] = chess.IncNone
		t.deltaMask[i] = 0
	}
	for i := range t.incMask {
		t.incMask[i] = 0
	}
	for i := range t.pieceCode {
		t.pieceCode[i] = ClassNone
	}
	t.kingDeltas.reset()
}

// initPawns marks the deltas a pawn attacks across. A white pawn on s hits
// s+15 and s+17; a black pawn hits s-15 and s-17. Pawns never slide, so the
// ray tables are left alone.
func (t *Tables) initPawns() {
	t.deltaMask[chess.DeltaIndex(-17)] |= chess.BlackPawnFlag
	t.deltaMask[chess.DeltaIndex(-15)] |= chess.BlackPawnFlag
	t.deltaMask[chess.DeltaIndex(+15)] |= chess.WhitePawnFlag
	t.deltaMask[chess.DeltaIndex(+17)] |= chess.WhitePawnFlag
}

func (t *Tables) initKnights() {
	for _, inc := range chess.KnightInc {
		delta := chess.Delta(inc)
		if !chess.DeltaIsOK(delta) {
			continue
		}
		// A leap has no intermediate squares and is not a slider
		// increment, so incMask stays clear.
		t.deltaIncAll[chess.DeltaIndex(delta)] = inc
		t.deltaMask[chess.DeltaIndex(delta)] |= chess.KnightFlag
	}
}

// initSliders fills every cell along each ray. Occupancy decides where a
// ray really stops, so nothing is cut short here.
func (t *Tables) initSliders(incs []chess.Inc, flag chess.PieceFlag) {
	for _, inc := range incs {
		if inc == chess.IncNone {
			continue
		}
		t.incMask[chess.IncIndex(inc)] |= flag
		for dist := 1; dist < chess.BoardSize; dist++ {
			delta := chess.Delta(int(inc) * dist)
			if !chess.DeltaIsOK(delta) {
				continue
			}
			i := chess.DeltaIndex(delta)
			t.deltaIncLine[i] = inc
			t.deltaIncAll[i] = inc
			t.deltaMask[i] |= flag
		}
	}
}

func (t *Tables) initKing() {
	for _, inc := range chess.KingInc {
		delta := chess.Delta(inc)
		if chess.DeltaIsOK(delta) {
			t.deltaMask[chess.DeltaIndex(delta)] |= chess.KingFlag
		}
	}
}

func (t *Tables) initPieceCodes() {
	t.pieceCode[chess.WhiteKnight] = ClassKnight
	t.pieceCode[chess.WhiteBishop] = ClassBishop
	t.pieceCode[chess.WhiteRook] = ClassRook
	t.pieceCode[chess.WhiteQueen] = ClassQueen
	t.pieceCode[chess.BlackKnight] = ClassKnight
	t.pieceCode[chess.BlackBishop] = ClassBishop
	t.pieceCode[chess.BlackRook] = ClassRook
	t.pieceCode[chess.BlackQueen] = ClassQueen
}

// initKingDeltas records, for every (king, piece) square pair, the squares
// next to the king that each piece class reaches from the piece square.
// Sliders stop at the first such square in each direction; a nearer square
// would block the ray before any farther one mattered.
func (t *Tables) initKingDeltas() {
	sliders := []struct {
		class Class
		incs  []chess.Inc
	}{
		{ClassBishop, chess.BishopInc},
		{ClassRook, chess.RookInc},
		{ClassQueen, chess.QueenInc},
	}

	for king := chess.Square(0); king < chess.SquareNb; king++ {
		if !chess.SquareIsOK(king) {
			continue
		}
		for from := chess.Square(0); from < chess.SquareNb; from++ {
			if !chess.SquareIsOK(from) {
				continue
			}
			kingDelta := chess.Delta(king - from)

			for _, inc := range chess.KnightInc {
				to := from + chess.Square(inc)
				if chess.SquareIsOK(to) && chess.Distance(to, king) == 1 {
					t.kingDeltas.Add(ClassKnight, kingDelta, chess.Delta(to-from))
				}
			}

			for _, s := range sliders {
				for _, inc := range s.incs {
					t.addFirstAdjacent(s.class, king, from, inc, kingDelta)
				}
			}
		}
	}
}

// addFirstAdjacent walks from along inc and records the first square at
// distance one from king.
func (t *Tables) addFirstAdjacent(class Class, king, from chess.Square, inc chess.Inc, kingDelta chess.Delta) {
	for dist := 1; dist < chess.BoardSize; dist++ {
		delta := chess.Delta(int(inc) * dist)
		if !chess.DeltaIsOK(delta) {
			continue
		}
		to := from + chess.Square(delta)
		if chess.SquareIsOK(to) && chess.Distance(to, king) == 1 {
			t.kingDeltas.Add(class, kingDelta, delta)
			return
		}
	}
}

// Mask returns the pseudo-attack mask for delta, or 0 if delta is out of
// range.
func (t *Tables) Mask(delta chess.Delta) chess.PieceFlag {
	i := chess.DeltaIndex(delta)
	if i < 0 || i >= chess.DeltaNb {
		return 0
	}
	return t.deltaMask[i]
}

// PseudoAttack reports whether piece could attack across delta on an empty
// board.
func (t *Tables) PseudoAttack(piece chess.Piece, delta chess.Delta) bool {
	return piece.Flags()&t.Mask(delta) != 0
}

// IncLine returns the sliding direction that walks from a square to another
// square delta away, or IncNone if no slider connects them.
func (t *Tables) IncLine(delta chess.Delta) chess.Inc {
	i := chess.DeltaIndex(delta)
	if i < 0 || i >= chess.DeltaNb {
		return chess.IncNone
	}
	return t.deltaIncLine[i]
}

// IncAll is IncLine extended with knight leaps.
func (t *Tables) IncAll(delta chess.Delta) chess.Inc {
	i := chess.DeltaIndex(delta)
	if i < 0 || i >= chess.DeltaNb {
		return chess.IncNone
	}
	return t.deltaIncAll[i]
}

// IncMask returns the piece types that move along inc.
func (t *Tables) IncMask(inc chess.Inc) chess.PieceFlag {
	i := chess.IncIndex(inc)
	if i < 0 || i >= chess.IncNb {
		return 0
	}
	return t.incMask[i]
}

// PieceCode returns the king-relative class of piece, or ClassNone for pawns,
// kings, Empty and Off.
func (t *Tables) PieceCode(piece chess.Piece) Class {
	return t.pieceCode[piece]
}

// KingTargets returns the target deltas recorded for class at kingDelta
// (king square minus piece square). See KingDeltaTable for why the list may
// be incomplete.
func (t *Tables) KingTargets(class Class, kingDelta chess.Delta) []chess.Delta {
	return t.kingDeltas.Deltas(class, kingDelta)
}

// KingTargetCount returns len(KingTargets(class, kingDelta)) without
// allocating.
func (t *Tables) KingTargetCount(class Class, kingDelta chess.Delta) int {
	return t.kingDeltas.Size(class, kingDelta)
}

// KingDeltaOverflows returns how many king-relative targets the build
// dropped for lack of capacity.
func (t *Tables) KingDeltaOverflows() int {
	return t.kingDeltas.Overflows()
}
