// Package render draws attack maps as SVG diagrams.
package render

import (
	"fmt"
	"io"
	"math/bits"
	"os"
	"path/filepath"

	svg "github.com/ajstarks/svgo"

	"github.com/lgbarn/mailbox-attack-go/internal/chess"
	"github.com/lgbarn/mailbox-attack-go/internal/engine"
)

const (
	lightSquare = "#f0d9b5"
	darkSquare  = "#b58863"
	whiteAttack = "#3b7dd8"
	blackAttack = "#d8453b"
	markColour  = "#2e8b57"
)

// Options controls the diagram geometry.
type Options struct {
	SquareSize int
	// Mark outlines one square, typically the queried one. SquareNone
	// draws no outline.
	Mark chess.Square
}

// DefaultOptions returns 45-pixel squares and no marked square.
func DefaultOptions() Options {
	return Options{SquareSize: 45, Mark: chess.SquareNone}
}

// AttackMap writes an 8x8 diagram of board to w with rank 8 at the top.
// Every square attacked by White or Black (bit file+8*rank of attacks) gets
// a translucent overlay in that side's colour; pieces are drawn as FEN
// letters.
func AttackMap(w io.Writer, board *chess.Board, attacks [chess.ColourNb]uint64, opts Options) {
	size := opts.SquareSize
	if size <= 0 {
		size = DefaultOptions().SquareSize
	}
	canvas := svg.New(w)
	canvas.Start(size*chess.BoardSize, size*chess.BoardSize)

	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		for file := 0; file < chess.BoardSize; file++ {
			x := file * size
			y := (chess.BoardSize - 1 - rank) * size
			fill := darkSquare
			if (file+rank)%2 == 1 {
				fill = lightSquare
			}
			canvas.Rect(x, y, size, size, `class="square"`, "fill:"+fill)

			bit := uint64(1) << uint(file+chess.BoardSize*rank)
			if attacks[chess.White]&bit != 0 {
				canvas.Rect(x, y, size, size, `class="attack-white"`, "fill:"+whiteAttack+";fill-opacity:0.35")
			}
			if attacks[chess.Black]&bit != 0 {
				canvas.Rect(x, y, size, size, `class="attack-black"`, "fill:"+blackAttack+";fill-opacity:0.35")
			}

			sq := chess.SquareMake(file, rank)
			if sq == opts.Mark {
				canvas.Rect(x+2, y+2, size-4, size-4, `class="mark"`,
					"fill:none;stroke:"+markColour+";stroke-width:4")
			}
			if board == nil {
				continue
			}
			if p := board.At(sq); p.IsPiece() {
				textFill := "#000"
				if p.Colour() == chess.White {
					textFill = "#fff;stroke:#000;stroke-width:1"
				}
				canvas.Text(x+size/2, y+size*2/3, string(p.Letter()), `class="piece"`,
					fmt.Sprintf("text-anchor:middle;font-family:sans-serif;font-weight:bold;font-size:%dpx;fill:%s", size/2, textFill))
			}
		}
	}
	canvas.End()
}

// AttackCounts returns the number of squares attacked by each side.
func AttackCounts(attacks [chess.ColourNb]uint64) [chess.ColourNb]int {
	return [chess.ColourNb]int{
		chess.Black: bits.OnesCount64(attacks[chess.Black]),
		chess.White: bits.OnesCount64(attacks[chess.White]),
	}
}

// FileName is the diagram name used for the position at index.
func FileName(index int) string {
	return fmt.Sprintf("position-%04d.svg", index+1)
}

// WriteFile renders r into dir under FileName(index) and returns the path.
func WriteFile(dir string, index int, r engine.Report, opts Options) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create svg dir: %w", err)
	}
	path := filepath.Join(dir, FileName(index))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create svg: %w", err)
	}
	AttackMap(f, r.Board, r.Attacks, opts)
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("write svg %s: %w", path, err)
	}
	return path, nil
}
