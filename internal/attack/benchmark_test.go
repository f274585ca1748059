package attack

import (
	"math/rand"
	"testing"

	"github.com/lgbarn/mailbox-attack-go/internal/chess"
)

func BenchmarkNew(b *testing.B) {
	for i := 0; i < b.N; i++ {
		New()
	}
}

func BenchmarkIsAttacked(b *testing.B) {
	tables := New()
	rng := rand.New(rand.NewSource(1))
	boards := make([]*chess.Board, 64)
	for i := range boards {
		boards[i] = randomBoard(rng)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		board := boards[i%len(boards)]
		to := chess.SquareMake(i%8, (i/8)%8)
		tables.IsAttacked(board, to, chess.Colour(i&1))
	}
}

func BenchmarkIsAttacked_Oracle(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	boards := make([]*chess.Board, 64)
	for i := range boards {
		boards[i] = randomBoard(rng)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		board := boards[i%len(boards)]
		to := chess.SquareMake(i%8, (i/8)%8)
		oracleAttacked(board, to, chess.Colour(i&1))
	}
}
