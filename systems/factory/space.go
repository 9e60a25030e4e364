package factory

import (
	"image"

	"github.com/automoto/timespinner-map/archetypes"
	"github.com/automoto/timespinner-map/components"
	cfg "github.com/automoto/timespinner-map/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace builds a broad-phase space covering world with one cell per
// minimap cell. The size is rounded up to whole cells so a room ending partway
// into a cell is still registered there.
func CreateSpace(ecs *ecs.ECS, world image.Rectangle) *donburi.Entry {
	cellW, cellH := cfg.Map.RoomPixels()
	width := roundUp(max(world.Max.X, cellW), cellW)
	height := roundUp(max(world.Max.Y, cellH), cellH)

	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellW, cellH)
	components.Space.Set(space, spaceData)
	return space
}

func roundUp(n, cell int) int {
	return (n + cell - 1) / cell * cell
}

// RebuildSpace replaces the space with one covering world and moves every
// room and the camera view into it.
func RebuildSpace(ecs *ecs.ECS, world image.Rectangle) *donburi.Entry {
	if old, ok := components.Space.First(ecs.World); ok {
		ecs.World.Remove(old.Entity())
	}
	space := CreateSpace(ecs, world)
	spaceData := components.Space.Get(space)

	components.Object.Each(ecs.World, func(e *donburi.Entry) {
		if obj := components.Object.Get(e); obj.Object != nil {
			spaceData.Add(obj.Object)
		}
	})
	return space
}
