package main

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/plus3/tetra/board"
	"github.com/plus3/tetra/game"
	"github.com/plus3/tetra/match"
	"github.com/plus3/tetra/piece"
)

const (
	cellSize = 26
	// Panel is hold column, board, next column.
	panelWidth  = (5 + board.Columns + 5) * cellSize
	panelHeight = (board.Rows - board.Hidden + 4) * cellSize
	// clearBanner is how long the last clear label stays up.
	clearBanner = 1500 * time.Millisecond
)

var (
	background = color.RGBA{18, 18, 24, 255}
	wellColor  = color.RGBA{30, 30, 40, 255}
	gridColor  = color.RGBA{45, 45, 58, 255}
	meterColor = color.RGBA{220, 60, 60, 255}
	readyColor = color.RGBA{255, 140, 40, 255}
)

var kindColors = [...]color.RGBA{
	piece.Empty:   {0, 0, 0, 0},
	piece.I:       {80, 200, 230, 255},
	piece.O:       {235, 210, 70, 255},
	piece.T:       {170, 90, 210, 255},
	piece.S:       {110, 200, 90, 255},
	piece.Z:       {220, 80, 80, 255},
	piece.J:       {70, 110, 220, 255},
	piece.L:       {235, 150, 60, 255},
	piece.Garbage: {120, 120, 120, 255},
}

func drawCell(screen *ebiten.Image, x, y float32, c color.Color) {
	vector.DrawFilledRect(screen, x+1, y+1, cellSize-2, cellSize-2, c, false)
}

func ghostColor(k piece.Kind) color.RGBA {
	c := kindColors[k]
	c.A = 70
	c.R, c.G, c.B = c.R/3, c.G/3, c.B/3
	return c
}

// drawPlayer draws one seat with its top left corner at (ox, oy).
func drawPlayer(screen *ebiten.Image, p *match.Player, ox, oy float32) {
	s := p.Session
	bx := ox + 5*cellSize
	by := oy + 2*cellSize
	visible := board.Rows - board.Hidden

	vector.DrawFilledRect(screen, bx, by, board.Columns*cellSize, float32(visible)*cellSize, wellColor, false)
	for c := 1; c < board.Columns; c++ {
		x := bx + float32(c)*cellSize
		vector.StrokeLine(screen, x, by, x, by+float32(visible)*cellSize, 1, gridColor, false)
	}

	// toScreen maps a board cell; rows above the field are dropped.
	toScreen := func(row, col int) (float32, float32, bool) {
		r := row - board.Hidden
		if r < 0 {
			return 0, 0, false
		}
		return bx + float32(col)*cellSize, by + float32(r)*cellSize, true
	}

	b := s.Board()
	for row := board.Hidden; row < board.Rows; row++ {
		for col := range board.Columns {
			if k := b.Cell(row, col); k != piece.Empty {
				x, y, _ := toScreen(row, col)
				drawCell(screen, x, y, kindColors[k])
			}
		}
	}

	if s.Started() && !s.Over() {
		ghost := s.Ghost()
		for _, c := range ghost.Cells() {
			if x, y, ok := toScreen(c.Row, c.Col); ok {
				drawCell(screen, x, y, ghostColor(ghost.Kind))
			}
		}
		active := s.Active()
		for _, c := range active.Cells() {
			if x, y, ok := toScreen(c.Row, c.Col); ok {
				drawCell(screen, x, y, kindColors[active.Kind])
			}
		}
	}

	drawGarbageMeter(screen, s, bx-8, by, float32(visible)*cellSize)

	ebitenutil.DebugPrintAt(screen, "HOLD", int(ox)+cellSize/2, int(by))
	if k := s.Held(); k.Playable() {
		c := kindColors[k]
		if !s.CanHold() {
			c = ghostColor(k)
		}
		drawPreview(screen, k, ox+cellSize/2, by+cellSize, c)
	}

	nx := bx + board.Columns*cellSize + cellSize/2
	ebitenutil.DebugPrintAt(screen, "NEXT", int(nx), int(by))
	for i, k := range s.Next(game.NextPreview) {
		drawPreview(screen, k, nx, by+cellSize+float32(i)*3*cellSize, kindColors[k])
	}

	drawStats(screen, p, int(ox)+4, int(by)+5*cellSize)

	ebitenutil.DebugPrintAt(screen, p.Name, int(bx), int(oy)+cellSize/2)
	switch {
	case !s.Started():
		secs := int((s.Countdown() + time.Second - 1) / time.Second)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d", secs), int(bx)+board.Columns*cellSize/2-4, int(by)+visible*cellSize/2)
	case s.Completed():
		ebitenutil.DebugPrintAt(screen, "COMPLETE", int(bx)+board.Columns*cellSize/2-24, int(by)+visible*cellSize/2)
	case s.Over():
		ebitenutil.DebugPrintAt(screen, "GAME OVER", int(bx)+board.Columns*cellSize/2-27, int(by)+visible*cellSize/2)
	}
}

// drawPreview draws a kind at small scale in a 4x2 box.
func drawPreview(screen *ebiten.Image, k piece.Kind, x, y float32, c color.Color) {
	const scale = 0.7
	size := float32(cellSize) * scale
	for _, o := range piece.Shape(k, 0) {
		px := x + float32(o.Col+1)*size
		py := y + float32(o.Row+1)*size
		vector.DrawFilledRect(screen, px+1, py+1, size-2, size-2, c, false)
	}
}

func drawGarbageMeter(screen *ebiten.Image, s *game.Session, x, y, height float32) {
	rows := float32(cellSize)
	bottom := y + height
	for _, u := range s.Inbound() {
		h := min(float32(u.Rows)*rows, bottom-y)
		c := meterColor
		if !u.Pending {
			c = readyColor
		}
		vector.DrawFilledRect(screen, x, bottom-h, 6, h, c, false)
		bottom -= h
		if bottom <= y {
			break
		}
	}
}

func drawStats(screen *ebiten.Image, p *match.Player, x, y int) {
	s := p.Session
	t := s.PlayTime()
	lines := []string{
		"SCORE",
		game.FormatScore(s.Score()),
		"",
		"TIME",
		game.FormatTime(t),
		"",
	}
	switch s.Mode() {
	case game.FortyLines:
		lines = append(lines, "LINES LEFT", fmt.Sprintf("%d", s.RemainingLines()))
	case game.Marathon:
		lines = append(lines, "LEVEL", fmt.Sprintf("%d", s.Level()), "LINES", fmt.Sprintf("%d", s.Lines()))
	default:
		lines = append(lines, "LINES", fmt.Sprintf("%d", s.Lines()))
	}
	lines = append(lines, "", "PPS "+game.FormatPPS(s.Pieces(), t))
	if s.Mode() == game.Versus {
		lines = append(lines, "APM "+game.FormatAPM(s.Attack(), t))
	}
	if s.Combo() > 0 {
		lines = append(lines, "", fmt.Sprintf("COMBO %d", s.Combo()))
	}
	if c, ok := s.LastClear(); ok && t-c.At < clearBanner {
		label := c.Type.Label()
		if c.BackToBack {
			label = "B2B " + label
		}
		lines = append(lines, "", label)
		if c.PerfectClear {
			lines = append(lines, "PERFECT CLEAR")
		}
	}
	for i, l := range lines {
		ebitenutil.DebugPrintAt(screen, l, x, y+i*16)
	}
}
