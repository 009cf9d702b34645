package game

//go:generate go tool stringer -type=Action

// Action is a discrete gameplay input.
type Action int

const (
	MoveLeft Action = iota
	MoveRight
	SoftDrop
	HardDrop
	RotateCW
	RotateCCW
	Rotate180
	Hold

	numActions
)

// Actions lists every action in declaration order.
var Actions = [numActions]Action{MoveLeft, MoveRight, SoftDrop, HardDrop, RotateCW, RotateCCW, Rotate180, Hold}

// Snapshot is the per-frame view of the input device a session reads from.
// Hosts adapt their keyboard state to it; bots and tests use Keys.
type Snapshot interface {
	JustPressed(Action) bool
	Held(Action) bool
	JustReleased(Action) bool
}

// Keys is a Snapshot backed by two bitsets: the actions held this frame and
// the ones held the frame before. Call Advance once per frame before
// pressing or releasing anything.
type Keys struct {
	held, prev uint16
}

func bit(a Action) uint16 { return 1 << uint(a) }

// Advance starts a new frame. Held actions stay held.
func (k *Keys) Advance() {
	k.prev = k.held
}

// Press marks a as held this frame.
func (k *Keys) Press(a Action) {
	k.held |= bit(a)
}

// Release marks a as no longer held.
func (k *Keys) Release(a Action) {
	k.held &^= bit(a)
}

// Set presses or releases a.
func (k *Keys) Set(a Action, down bool) {
	if down {
		k.Press(a)
	} else {
		k.Release(a)
	}
}

// ReleaseAll lets go of every action.
func (k *Keys) ReleaseAll() {
	k.held = 0
}

func (k Keys) JustPressed(a Action) bool {
	return k.held&bit(a) != 0 && k.prev&bit(a) == 0
}

func (k Keys) Held(a Action) bool {
	return k.held&bit(a) != 0
}

func (k Keys) JustReleased(a Action) bool {
	return k.held&bit(a) == 0 && k.prev&bit(a) != 0
}

// Tap returns a snapshot in which a was pressed this frame.
func Tap(a Action) Keys {
	return Keys{held: bit(a)}
}
