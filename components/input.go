package components

import (
	"image"

	cfg "github.com/automoto/timespinner-map/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputMouse
	InputGamepad
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions,
// plus this frame's mouse state.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool // Current frame's Pressed state
	Previous [cfg.ActionCount]bool // Previous frame's Pressed state

	Cursor       image.Point
	DragDelta    image.Point // Cursor movement while a drag button is held
	Dragging     bool
	Wheel        math.Vec2
	ZoomModifier bool // Wheel zooms instead of panning

	LastInputMethod InputMethod
}

var Input = donburi.NewComponentType[InputData]()
