package factory

import (
	"github.com/automoto/timespinner-map/archetypes"
	"github.com/automoto/timespinner-map/components"
	"github.com/automoto/timespinner-map/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera spawns the camera with a view object that tracks the visible
// world rectangle in the space.
func CreateCamera(ecs *ecs.ECS, position math.Vec2, zoom float64) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{
		Position: position,
		Zoom:     zoom,
	})

	view := resolv.NewObject(position.X, position.Y, 1, 1, tags.ResolvView)
	view.Data = camera
	components.Object.SetValue(camera, components.ObjectData{Object: view})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(view)
	}

	return camera
}
