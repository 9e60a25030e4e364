package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position math.Vec2 // World point at the centre of the screen
	Zoom     float64   // Screen pixels per world pixel
	Tween    *CameraTween
}

// CameraTween moves the camera between two world points.
type CameraTween struct {
	X, Y *gween.Tween
}

var Camera = donburi.NewComponentType[CameraData]()
