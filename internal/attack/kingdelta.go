package attack

import "github.com/lgbarn/mailbox-attack-go/internal/chess"

// Class groups the pieces that the king-relative table is keyed on.
type Class int

const (
	ClassNone   Class = -1
	ClassKnight Class = 0
	ClassBishop Class = 1
	ClassRook   Class = 2
	ClassQueen  Class = 3
	ClassNb           = 4
)

// String returns the name of a piece class.
func (c Class) String() string {
	switch c {
	case ClassKnight:
		return "knight"
	case ClassBishop:
		return "bishop"
	case ClassRook:
		return "rook"
	case ClassQueen:
		return "queen"
	}
	return "none"
}

// KingDeltaCapacity is the number of target deltas kept per key.
const KingDeltaCapacity = 2

// AddOutcome reports what KingDeltaTable.Add did with an entry.
type AddOutcome int

const (
	// Added means the entry was stored.
	Added AddOutcome = iota
	// AlreadyPresent means the key already held the same target delta.
	AlreadyPresent
	// Overflow means the key was full and the entry was dropped.
	Overflow
	// OutOfRange means the class or a delta cannot be addressed.
	OutOfRange
)

// String returns the name of an outcome.
func (o AddOutcome) String() string {
	switch o {
	case Added:
		return "added"
	case AlreadyPresent:
		return "already-present"
	case Overflow:
		return "overflow"
	case OutOfRange:
		return "out-of-range"
	}
	return "unknown"
}

// KingDeltaTable maps (class, king delta) to at most KingDeltaCapacity
// target deltas. The king delta is king square minus piece square; a target
// delta is a square adjacent to the king, relative to the piece square, that
// a piece of the class reaches first along one of its directions.
//
// The table is best effort. Real geometry produces more than two distinct
// targets for some keys and the surplus is dropped, so callers must not treat
// Deltas as a complete list. Overflows counts the drops.
type KingDeltaTable struct {
	size      [ClassNb][chess.DeltaNb]int8
	delta     [ClassNb][chess.DeltaNb][KingDeltaCapacity]int8
	overflows int
}

// reset empties every key.
func (t *KingDeltaTable) reset() {
	*t = KingDeltaTable{}
}

// Add records target under (class, king).
func (t *KingDeltaTable) Add(class Class, king, target chess.Delta) AddOutcome {
	if class < 0 || class >= ClassNb || !deltaInRange(king) || !deltaInRange(target) {
		return OutOfRange
	}
	k := chess.DeltaIndex(king)
	size := int(t.size[class][k])
	for i := 0; i < size; i++ {
		if chess.Delta(t.delta[class][k][i]) == target {
			return AlreadyPresent
		}
	}
	if size >= KingDeltaCapacity {
		t.overflows++
		return Overflow
	}
	t.delta[class][k][size] = int8(target)
	t.size[class][k] = int8(size + 1)
	return Added
}

// Size returns the number of target deltas stored under (class, king).
func (t *KingDeltaTable) Size(class Class, king chess.Delta) int {
	if class < 0 || class >= ClassNb || !deltaInRange(king) {
		return 0
	}
	return int(t.size[class][chess.DeltaIndex(king)])
}

// Deltas returns a copy of the target deltas stored under (class, king) in
// insertion order.
func (t *KingDeltaTable) Deltas(class Class, king chess.Delta) []chess.Delta {
	n := t.Size(class, king)
	if n == 0 {
		return nil
	}
	k := chess.DeltaIndex(king)
	out := make([]chess.Delta, n)
	for i := range out {
		out[i] = chess.Delta(t.delta[class][k][i])
	}
	return out
}

// Overflows returns how many distinct targets were dropped because their key
// was already full.
func (t *KingDeltaTable) Overflows() int {
	return t.overflows
}

func deltaInRange(d chess.Delta) bool {
	i := chess.DeltaIndex(d)
	return i >= 0 && i < chess.DeltaNb
}
