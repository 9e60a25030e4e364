package systems

import (
	"image"

	"github.com/automoto/timespinner-map/components"
	cfg "github.com/automoto/timespinner-map/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input and updates the InputComponent.
// Must run BEFORE UpdateCamera in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var keyboardUsed, gamepadUsed bool
	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
				}
			}
		}
	}

	// Merge the left stick into the pan actions
	if left, right, up, down := getAnalogStickState(gamepadIDs); left || right || up || down {
		input.Current[cfg.ActionPanLeft] = input.Current[cfg.ActionPanLeft] || left
		input.Current[cfg.ActionPanRight] = input.Current[cfg.ActionPanRight] || right
		input.Current[cfg.ActionPanUp] = input.Current[cfg.ActionPanUp] || up
		input.Current[cfg.ActionPanDown] = input.Current[cfg.ActionPanDown] || down
		gamepadUsed = true
	}

	mouseUsed := updateMouse(ecs, input)

	switch {
	case gamepadUsed:
		input.LastInputMethod = components.InputGamepad
	case mouseUsed:
		input.LastInputMethod = components.InputMouse
	case keyboardUsed:
		input.LastInputMethod = components.InputKeyboard
	}
}

// updateMouse records cursor, drag and wheel state. The mouse is ignored
// while it is over the area panel.
func updateMouse(ecs *ecs.ECS, input *components.InputData) bool {
	x, y := ebiten.CursorPosition()
	cursor := image.Pt(x, y)
	prev := input.Cursor
	input.Cursor = cursor
	input.DragDelta = image.Point{}
	input.Wheel = math.Vec2{}

	if cursorOverPanel(ecs, cursor) {
		input.Dragging = false
		return false
	}

	held := false
	for _, btn := range cfg.Input.DragButtons {
		if ebiten.IsMouseButtonPressed(btn) {
			held = true
			break
		}
	}
	// The first held frame only anchors the drag.
	if held && input.Dragging {
		input.DragDelta = cursor.Sub(prev)
	}
	input.Dragging = held

	wx, wy := ebiten.Wheel()
	input.Wheel = math.NewVec2(wx, wy)

	input.ZoomModifier = false
	for _, key := range cfg.Input.ZoomModifiers {
		if ebiten.IsKeyPressed(key) {
			input.ZoomModifier = true
		}
	}

	return held || wx != 0 || wy != 0
}

func cursorOverPanel(ecs *ecs.ECS, cursor image.Point) bool {
	settings := GetOrCreateSettings(ecs)
	return settings.ShowPanel && cursor.X < cfg.UI.PanelWidth
}

// getAnalogStickState reads the left analog stick from all gamepads
func getAnalogStickState(gamepads []ebiten.GamepadID) (left, right, up, down bool) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

		left = left || horizontal < -deadzone
		right = right || horizontal > deadzone
		up = up || vertical < -deadzone
		down = down || vertical > deadzone
	}

	return
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
