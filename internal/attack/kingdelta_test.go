package attack

import (
	"testing"

	"github.com/lgbarn/mailbox-attack-go/internal/chess"
	"github.com/lgbarn/mailbox-attack-go/internal/testutil"
)

func TestKingDeltaTable_Add(t *testing.T) {
	var table KingDeltaTable

	steps := []struct {
		name   string
		class  Class
		king   chess.Delta
		target chess.Delta
		want   AddOutcome
	}{
		{"first entry", ClassRook, 1, 2, Added},
		{"duplicate", ClassRook, 1, 2, AlreadyPresent},
		{"second entry", ClassRook, 1, 16, Added},
		{"third entry dropped", ClassRook, 1, -16, Overflow},
		{"duplicate of full key", ClassRook, 1, 16, AlreadyPresent},
		{"other class same key", ClassQueen, 1, -16, Added},
		{"class too low", ClassNone, 1, 2, OutOfRange},
		{"class too high", ClassNb, 1, 2, OutOfRange},
		{"king delta too large", ClassKnight, chess.DeltaOffset + 1, 2, OutOfRange},
		{"target too small", ClassKnight, 1, -chess.DeltaOffset - 1, OutOfRange},
	}

	for _, s := range steps {
		if got := table.Add(s.class, s.king, s.target); got != s.want {
			t.Errorf("%s: Add(%v, %d, %d) = %v; want %v", s.name, s.class, s.king, s.target, got, s.want)
		}
	}

	testutil.AssertEqual(t, table.Deltas(ClassRook, 1), []chess.Delta{2, 16})
	testutil.AssertEqual(t, table.Size(ClassRook, 1), 2)
	testutil.AssertEqual(t, table.Deltas(ClassQueen, 1), []chess.Delta{-16})
	testutil.AssertEqual(t, table.Overflows(), 1)
}

func TestKingDeltaTable_RejectionsDoNotMutate(t *testing.T) {
	var table KingDeltaTable
	table.Add(ClassBishop, -17, -34)
	before := table

	table.Add(ClassBishop, -17, -34)
	table.Add(ClassNb, -17, 5)
	table.Add(ClassBishop, 500, 5)

	if table != before {
		t.Error("rejected Add calls changed the table")
	}
}

func TestKingDeltaTable_Deltas_Copy(t *testing.T) {
	var table KingDeltaTable
	table.Add(ClassKnight, 32, 33)
	got := table.Deltas(ClassKnight, 32)
	got[0] = 99
	testutil.AssertEqual(t, table.Deltas(ClassKnight, 32), []chess.Delta{33}, "Deltas must return a copy")
}

func TestKingDeltaTable_Empty(t *testing.T) {
	var table KingDeltaTable
	if got := table.Deltas(ClassQueen, 0); got != nil {
		t.Errorf("Deltas on empty table = %v; want nil", got)
	}
	if got := table.Size(ClassQueen, 1000); got != 0 {
		t.Errorf("Size(out of range) = %d; want 0", got)
	}
}

func TestAddOutcome_String(t *testing.T) {
	tests := []struct {
		o    AddOutcome
		want string
	}{
		{Added, "added"},
		{AlreadyPresent, "already-present"},
		{Overflow, "overflow"},
		{OutOfRange, "out-of-range"},
		{AddOutcome(42), "unknown"},
	}
	for _, tt := range tests {
		testutil.AssertEqual(t, tt.o.String(), tt.want)
	}
}

func TestClass_String(t *testing.T) {
	testutil.AssertEqual(t, ClassKnight.String(), "knight")
	testutil.AssertEqual(t, ClassQueen.String(), "queen")
	testutil.AssertEqual(t, ClassNone.String(), "none")
}
