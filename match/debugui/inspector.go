package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/tetra/board"
	"github.com/plus3/tetra/game"
	"github.com/plus3/tetra/match"
)

// SessionInspector shows the internal state of every player's session and
// offers a few buttons to poke at it.
type SessionInspector struct {
	// ShowBoard adds a text dump of the visible board.
	ShowBoard bool
}

func (si *SessionInspector) Render(frame *match.Frame) {
	for _, p := range frame.Match.Players {
		imgui.SetNextWindowPosV(imgui.NewVec2(380+float32(p.Index)*330, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
		imgui.SetNextWindowSizeV(imgui.NewVec2(320, 520), imgui.CondOnce)
		if imgui.BeginV(fmt.Sprintf("Session: %s##%d", p.Name, p.Index), nil, 0) {
			si.renderSession(p)
		}
		imgui.End()
	}
}

func (si *SessionInspector) renderSession(p *match.Player) {
	s := p.Session

	switch {
	case s.Completed():
		imgui.TextColored(imgui.NewVec4(0.3, 0.9, 0.3, 1.0), "COMPLETED")
	case s.Over():
		imgui.TextColored(imgui.NewVec4(1.0, 0.3, 0.3, 1.0), "TOPPED OUT")
	case !s.Started():
		imgui.Text(fmt.Sprintf("Countdown: %s", game.FormatTime(s.Countdown())))
	}

	imgui.Text(fmt.Sprintf("Mode: %s  Level: %d", s.Mode(), s.Level()))
	imgui.Text(fmt.Sprintf("Score: %s", game.FormatScore(s.Score())))
	imgui.Text(fmt.Sprintf("Lines: %d  Pieces: %d", s.Lines(), s.Pieces()))
	imgui.Text(fmt.Sprintf("Combo: %d  B2B: %v", s.Combo(), s.BackToBack()))
	imgui.Text(fmt.Sprintf("Time: %s", game.FormatTime(s.PlayTime())))
	imgui.Text(fmt.Sprintf("PPS: %s  APM: %s", game.FormatPPS(s.Pieces(), s.PlayTime()), game.FormatAPM(s.Attack(), s.PlayTime())))

	imgui.Separator()
	active := s.Active()
	imgui.Text(fmt.Sprintf("Active: %s at (%d,%d) r%d", active.Kind, active.Row, active.Col, active.Rotation))
	imgui.Text(fmt.Sprintf("Gravity: %.2f rows/s", s.Gravity()))
	imgui.Text(fmt.Sprintf("Grounded: %v  Actions: %d/%d", s.Grounded(), s.Actions(), game.MaxActions))
	lock := float32(s.LockTimer()) / float32(game.LockDelay)
	imgui.ProgressBarV(min(lock, 1), imgui.NewVec2(-1, 0), "lock delay")
	imgui.Text(fmt.Sprintf("Spin: %s", s.Spin()))
	if c, ok := s.LastClear(); ok {
		imgui.Text(fmt.Sprintf("Last clear: %s +%d", c.Type.Label(), c.Points))
	}

	if snap := p.Snapshot(); snap != nil {
		var held []string
		for _, a := range game.Actions {
			if snap.Held(a) {
				held = append(held, a.String())
			}
		}
		imgui.Text("Held: " + strings.Join(held, " "))
	}

	if imgui.TreeNodeStr("Garbage") {
		imgui.Text(fmt.Sprintf("Attack sent: %d  Received: %d", s.Attack(), s.GarbageReceived()))
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("InboundTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Rows")
			imgui.TableSetupColumn("Hole")
			imgui.TableSetupColumn("State")
			imgui.TableHeadersRow()
			for _, u := range s.Inbound() {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", u.Rows))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", u.Column))
				imgui.TableNextColumn()
				if u.Pending {
					imgui.Text("pending")
				} else {
					imgui.Text("ready")
				}
			}
			imgui.EndTable()
		}
		if imgui.Button("Add garbage row") {
			s.AddGarbageRow(s.RandomColumn())
		}
		imgui.TreePop()
	}

	imgui.Checkbox("Show board", &si.ShowBoard)
	if si.ShowBoard {
		b := s.Board()
		imgui.Text(dumpBoard(&b))
	}

	if !s.Over() {
		if imgui.Button("End session") {
			s.End(false)
		}
	}
}

func dumpBoard(b *board.Board) string {
	var sb strings.Builder
	for row := board.Hidden; row < board.Rows; row++ {
		for col := range board.Columns {
			if b.Solid(row, col) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
