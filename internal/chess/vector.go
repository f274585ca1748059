package chess

// Direction vectors, one step per entry.
var (
	KnightInc = []Inc{-33, -31, -18, -14, +14, +18, +31, +33}
	BishopInc = []Inc{-17, -15, +15, +17}
	RookInc   = []Inc{-16, -1, +1, +16}
	QueenInc  = []Inc{-17, -16, -15, -1, +1, +15, +16, +17}
	KingInc   = []Inc{-17, -16, -15, -1, +1, +15, +16, +17}
)
