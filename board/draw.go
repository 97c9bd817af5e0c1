package board

import (
	"fmt"
	"strings"

	"github.com/daystram/chesscore/position"
	"github.com/fatih/color"
)

var (
	colorLightCell = color.New(color.BgHiWhite, color.FgBlack)
	colorDarkCell  = color.New(color.BgGreen, color.FgBlack)
)

// Dump renders the board with FEN symbols, '.' for empty cells and blanks
// where a column has no cell.
func (b *Board) Dump() string {
	return b.render(func(pos position.Pos, sym string) string {
		if sym == "" {
			sym = "."
		}
		return fmt.Sprintf(" %s ", sym)
	}, func(id PieceID) string {
		pc := b.pieces[id]
		return pc.kind.SymbolFEN(pc.side)
	})
}

// Draw renders the board with unicode pieces on coloured cells. Colouring
// follows color.NoColor.
func (b *Board) Draw() string {
	return b.render(func(pos position.Pos, sym string) string {
		if sym == "" {
			sym = " "
		}
		c := colorDarkCell
		if (pos.X+pos.Y)%2 == 1 {
			c = colorLightCell
		}
		return c.Sprintf(" %s ", sym)
	}, func(id PieceID) string {
		pc := b.pieces[id]
		return pc.kind.SymbolUnicode(pc.side, false)
	})
}

func (b *Board) render(cell func(pos position.Pos, sym string) string, symbol func(id PieceID) string) string {
	height := 0
	for x := range b.cells {
		if len(b.cells[x]) > height {
			height = len(b.cells[x])
		}
	}

	builder := strings.Builder{}
	for y := height - 1; y >= 0; y-- {
		_, _ = builder.WriteString(fmt.Sprintf(" %2d |", y+1))
		for x := range b.cells {
			pos := position.New(x, y)
			if !b.IsLegalPosition(pos) {
				_, _ = builder.WriteString("   ")
				continue
			}
			sym := ""
			if id := b.cells[x][y]; id != NoPiece {
				sym = symbol(id)
			}
			_, _ = builder.WriteString(cell(pos, sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("     " + strings.Repeat("---", len(b.cells)) + "\n     ")
	for x := range b.cells {
		_, _ = builder.WriteString(fmt.Sprintf(" %s ", position.New(x, 0).NotationComponentX()))
	}
	return builder.String()
}
