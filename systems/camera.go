package systems

import (
	"image"

	"github.com/automoto/timespinner-map/components"
	cfg "github.com/automoto/timespinner-map/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdateCamera applies pan and zoom input, advances a running area jump and
// keeps the view object in the space in sync with what is on screen.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	input := getOrCreateInput(e)

	if applyCameraInput(camera, input) {
		camera.Tween = nil
	}
	stepTween(camera, float32(1/float64(ebiten.TPS())))

	if cameraEntry.HasComponent(components.Object) {
		syncView(camera, components.Object.Get(cameraEntry))
	}
}

// applyCameraInput reports whether any input moved the camera.
func applyCameraInput(camera *components.CameraData, input *components.InputData) bool {
	moved := false

	speed := cfg.Camera.KeyPanSpeed
	var dx, dy float64
	if GetAction(input, cfg.ActionPanLeft).Pressed {
		dx -= speed
	}
	if GetAction(input, cfg.ActionPanRight).Pressed {
		dx += speed
	}
	if GetAction(input, cfg.ActionPanUp).Pressed {
		dy -= speed
	}
	if GetAction(input, cfg.ActionPanDown).Pressed {
		dy += speed
	}

	// Dragging moves the map with the cursor
	dx -= float64(input.DragDelta.X)
	dy -= float64(input.DragDelta.Y)

	cursor := math.NewVec2(float64(input.Cursor.X), float64(input.Cursor.Y))
	if input.ZoomModifier {
		if input.Wheel.Y != 0 {
			ZoomAround(camera, camera.Zoom*zoomFactor(input.Wheel.Y), cursor)
			moved = true
		}
	} else {
		// Wheel up scrolls the map up
		dx += input.Wheel.X * cfg.Camera.WheelPan
		dy -= input.Wheel.Y * cfg.Camera.WheelPan
	}

	if dx != 0 || dy != 0 {
		PanScreen(camera, dx, dy)
		moved = true
	}

	centre := screenCentre()
	switch {
	case GetAction(input, cfg.ActionZoomIn).JustPressed:
		ZoomAround(camera, camera.Zoom*cfg.Camera.ZoomStep, centre)
		moved = true
	case GetAction(input, cfg.ActionZoomOut).JustPressed:
		ZoomAround(camera, camera.Zoom/cfg.Camera.ZoomStep, centre)
		moved = true
	case GetAction(input, cfg.ActionZoomReset).JustPressed:
		ZoomAround(camera, 1, centre)
		moved = true
	}

	return moved
}

func zoomFactor(wheel float64) float64 {
	if wheel > 0 {
		return cfg.Camera.ZoomStep
	}
	return 1 / cfg.Camera.ZoomStep
}

// stepTween advances a running jump by dt seconds.
func stepTween(camera *components.CameraData, dt float32) {
	if camera.Tween == nil {
		return
	}
	x, doneX := camera.Tween.X.Update(dt)
	y, doneY := camera.Tween.Y.Update(dt)
	camera.Position = math.NewVec2(float64(x), float64(y))
	if doneX && doneY {
		camera.Tween = nil
	}
}

// FocusCamera starts a jump that centres the camera on target.
func FocusCamera(e *ecs.ECS, target image.Rectangle) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	startTween(camera, rectCentre(target))
}

func startTween(camera *components.CameraData, to math.Vec2) {
	d := float32(cfg.Camera.TweenSeconds)
	if d <= 0 {
		camera.Position = to
		camera.Tween = nil
		return
	}
	camera.Tween = &components.CameraTween{
		X: gween.New(float32(camera.Position.X), float32(to.X), d, ease.OutCubic),
		Y: gween.New(float32(camera.Position.Y), float32(to.Y), d, ease.OutCubic),
	}
}

func rectCentre(r image.Rectangle) math.Vec2 {
	return math.NewVec2(float64(r.Min.X+r.Max.X)/2, float64(r.Min.Y+r.Max.Y)/2)
}

// syncView resizes the view object to the visible world rectangle.
func syncView(camera *components.CameraData, view *components.ObjectData) {
	if view.Object == nil {
		return
	}
	r := ViewRect(camera)
	view.X, view.Y = float64(r.Min.X), float64(r.Min.Y)
	view.W, view.H = float64(r.Dx()), float64(r.Dy())
	if view.Space != nil {
		view.Update()
	}
}
