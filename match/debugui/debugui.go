// Package debugui draws Dear ImGui developer panels over a running match.
// Panels are registered with an ImguiSystem, which runs as the last system
// of a match scheduler and defers every panel's drawing to the end of the
// frame so it sees the frame's final state.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/tetra/match"
)

// Panel is one ImGui window.
type Panel interface {
	Render(frame *match.Frame)
}

// PanelFunc adapts a function to a Panel.
type PanelFunc func(frame *match.Frame)

func (f PanelFunc) Render(frame *match.Frame) { f(frame) }

// InputState tracks whether ImGui is consuming the mouse or keyboard. Hosts
// should not forward keys to the game while WantCaptureKeyboard is set.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem updates InputState and defers every panel's render function.
// It must be called between the ImGui backend's BeginFrame and EndFrame.
type ImguiSystem struct {
	Panels     []Panel
	InputState InputState
}

// Add registers a panel.
func (i *ImguiSystem) Add(p Panel) {
	i.Panels = append(i.Panels, p)
}

// Execute updates input state and queues all panels for rendering.
func (i *ImguiSystem) Execute(frame *match.Frame) {
	io := imgui.CurrentIO()
	i.InputState.WantCaptureMouse = io.WantCaptureMouse()
	i.InputState.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, p := range i.Panels {
		frame.Commands.Defer(func() { p.Render(frame) })
	}
}
