package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/plus3/tetra/board"
	"github.com/plus3/tetra/game"
	"github.com/plus3/tetra/match"
	"github.com/plus3/tetra/piece"
)

var kindColors = map[piece.Kind]lipgloss.Color{
	piece.I:       "51",
	piece.O:       "226",
	piece.T:       "93",
	piece.S:       "46",
	piece.Z:       "196",
	piece.J:       "21",
	piece.L:       "208",
	piece.Garbage: "245",
}

var (
	borderStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("15"))
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true)
	textStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	ghostStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	alertStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

const cellText = "  "

func block(k piece.Kind) string {
	return lipgloss.NewStyle().Background(kindColors[k]).Render(cellText)
}

func renderBoard(s *game.Session) string {
	b := s.Board()
	cells := make(map[piece.Offset]string)
	if s.Started() && !s.Over() {
		for _, c := range s.Ghost().Cells() {
			cells[c] = ghostStyle.Render("[]")
		}
		active := s.Active()
		for _, c := range active.Cells() {
			cells[c] = block(active.Kind)
		}
	}

	var sb strings.Builder
	for row := board.Hidden; row < board.Rows; row++ {
		for col := range board.Columns {
			if k := b.Cell(row, col); k != piece.Empty {
				sb.WriteString(block(k))
				continue
			}
			if c, ok := cells[piece.Offset{Row: row, Col: col}]; ok {
				sb.WriteString(c)
				continue
			}
			sb.WriteString(cellText)
		}
		if row < board.Rows-1 {
			sb.WriteByte('\n')
		}
	}
	return borderStyle.Render(sb.String())
}

func renderMini(k piece.Kind) string {
	var grid [2][4]bool
	for _, o := range piece.Shape(k, 0) {
		grid[o.Row+1][o.Col+1] = true
	}
	var sb strings.Builder
	for r, row := range grid {
		for _, filled := range row {
			if filled {
				sb.WriteString(block(k))
			} else {
				sb.WriteString(cellText)
			}
		}
		if r == 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func renderInfo(p *match.Player, wins int, versus bool) string {
	s := p.Session
	t := s.PlayTime()
	lines := []string{
		titleStyle.Render(p.Name),
		"",
		textStyle.Render("HOLD"),
	}
	if k := s.Held(); k.Playable() {
		lines = append(lines, renderMini(k))
	} else {
		lines = append(lines, "\n")
	}
	lines = append(lines, "", textStyle.Render("NEXT"))
	for _, k := range s.Next(3) {
		lines = append(lines, renderMini(k))
	}
	lines = append(lines,
		"",
		textStyle.Render("Score "+game.FormatScore(s.Score())),
		textStyle.Render(fmt.Sprintf("Lines %d", s.Lines())),
		textStyle.Render("Time  "+game.FormatTime(t)),
		textStyle.Render("PPS   "+game.FormatPPS(s.Pieces(), t)),
	)
	if versus {
		lines = append(lines,
			textStyle.Render("APM   "+game.FormatAPM(s.Attack(), t)),
			textStyle.Render(fmt.Sprintf("Wins  %d", wins)),
		)
		if n := s.IncomingGarbage(); n > 0 {
			lines = append(lines, alertStyle.Render(fmt.Sprintf("Incoming %d", n)))
		}
	}
	if c, ok := s.LastClear(); ok {
		label := c.Type.Label()
		if c.BackToBack {
			label = "B2B " + label
		}
		lines = append(lines, "", titleStyle.Render(label))
	}
	switch {
	case !s.Started():
		lines = append(lines, "", alertStyle.Render("READY"))
	case s.Completed():
		lines = append(lines, "", titleStyle.Render("WINNER"))
	case s.Over():
		lines = append(lines, "", alertStyle.Render("TOPPED OUT"))
	}
	return lipgloss.NewStyle().MarginLeft(1).Width(20).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func renderMatch(m Model) string {
	if m.match == nil {
		return ""
	}
	versus := m.mode == game.Versus
	panels := make([]string, 0, len(m.match.Players))
	for _, p := range m.match.Players {
		panel := lipgloss.JoinHorizontal(lipgloss.Top, renderBoard(p.Session), renderInfo(p, m.wins[p.Index], versus))
		panels = append(panels, lipgloss.NewStyle().MarginRight(2).Render(panel))
	}

	status := fmt.Sprintf("%s  %s  x%d", m.mode, m.difficulty, m.speed)
	if m.paused {
		status += "  PAUSED"
	}
	help := "space pause  +/- speed  r new match  q quit"
	if m.match.Finished() {
		help = "match over, r for another  " + help
	}
	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render(status),
		lipgloss.JoinHorizontal(lipgloss.Top, panels...),
		textStyle.Render(help),
	)
}

func center(width, height int, content string) string {
	if width == 0 || height == 0 {
		return content
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
