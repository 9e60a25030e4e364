package factory

import (
	"image"
	"log"

	"github.com/automoto/timespinner-map/archetypes"
	"github.com/automoto/timespinner-map/assets"
	"github.com/automoto/timespinner-map/components"
	cfg "github.com/automoto/timespinner-map/config"
	"github.com/automoto/timespinner-map/shared/install"
	"github.com/automoto/timespinner-map/shared/leveldata"
	"github.com/automoto/timespinner-map/shared/minimap"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateMap(ecs *ecs.ECS, inst *install.Install, textures *assets.TextureCache) *donburi.Entry {
	m := archetypes.Map.Spawn(ecs)
	components.Map.Set(m, &components.MapData{
		Install:  inst,
		Textures: textures,
		AreaIDs:  inst.AreaIDs(),
		World:    WorldBounds(inst),
	})
	return m
}

// RoomOrigin is the world pixel position of a minimap cell.
func RoomOrigin(cell minimap.Room) image.Point {
	w, h := cfg.Map.RoomPixels()
	return image.Pt(cell.Position.X*w, cell.Position.Y*h)
}

// RoomBounds is the world rectangle a level room covers when placed at its
// minimap cell. The size comes from the level room, in tiles.
func RoomBounds(cell minimap.Room, room *leveldata.Room) image.Rectangle {
	origin := RoomOrigin(cell)
	size := image.Pt(room.Width*cfg.Map.TileSize, room.Height*cfg.Map.TileSize)
	return image.Rectangle{Min: origin, Max: origin.Add(size)}
}

// WorldBounds is the union of every room that has both a minimap cell and a
// level room.
func WorldBounds(inst *install.Install) image.Rectangle {
	var world image.Rectangle
	for _, area := range inst.Minimap.Areas {
		level := inst.Levels[area.ID]
		if level == nil {
			continue
		}
		for _, cell := range area.Rooms {
			if room, ok := level.Room(cell.ID); ok {
				world = world.Union(RoomBounds(cell, room))
			}
		}
	}
	return world
}

// FirstRoomBounds is where the camera goes when jumping to an area.
func FirstRoomBounds(inst *install.Install, areaID int) (image.Rectangle, bool) {
	area, ok := inst.Minimap.Area(areaID)
	level := inst.Levels[areaID]
	if !ok || level == nil {
		return image.Rectangle{}, false
	}
	for _, cell := range area.Rooms {
		if room, ok := level.Room(cell.ID); ok {
			return RoomBounds(cell, room), true
		}
	}
	return image.Rectangle{}, false
}

// CreateWorld spawns the space, the map and every room of a loaded
// installation. It returns the number of rooms created.
func CreateWorld(ecs *ecs.ECS, inst *install.Install, textures *assets.TextureCache) int {
	m := CreateMap(ecs, inst, textures)
	CreateSpace(ecs, components.Map.Get(m).World)

	n := 0
	for i := range inst.Minimap.Areas {
		area := &inst.Minimap.Areas[i]
		level := inst.Levels[area.ID]
		if level == nil {
			log.Printf("Warning: area %d has no level", area.ID)
			continue
		}
		n += CreateAreaRooms(ecs, area, level)
	}
	return n
}
