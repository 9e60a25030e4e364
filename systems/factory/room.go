package factory

import (
	"log"

	"github.com/automoto/timespinner-map/archetypes"
	"github.com/automoto/timespinner-map/components"
	"github.com/automoto/timespinner-map/shared/leveldata"
	"github.com/automoto/timespinner-map/shared/minimap"
	"github.com/automoto/timespinner-map/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateRoom(ecs *ecs.ECS, areaID int, cell minimap.Room, room *leveldata.Room) *donburi.Entry {
	entry := archetypes.Room.Spawn(ecs)

	bounds := RoomBounds(cell, room)
	obj := resolv.NewObject(
		float64(bounds.Min.X), float64(bounds.Min.Y),
		float64(bounds.Dx()), float64(bounds.Dy()),
		tags.ResolvRoom,
	)
	obj.Data = entry

	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	components.Room.SetValue(entry, components.RoomData{
		AreaID: areaID,
		Level:  room,
		Cell:   cell,
		Bounds: bounds,
	})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return entry
}

// CreateAreaRooms spawns a room entity for every minimap cell of an area that
// has a matching level room, returning how many were created.
func CreateAreaRooms(ecs *ecs.ECS, area *minimap.Area, level *leveldata.Level) int {
	n := 0
	for _, cell := range area.Rooms {
		room, ok := level.Room(cell.ID)
		if !ok {
			log.Printf("Warning: area %d: minimap room %d has no level room", area.ID, cell.ID)
			continue
		}
		CreateRoom(ecs, area.ID, cell, room)
		n++
	}
	return n
}

// RemoveAreaRooms destroys the room entities of an area.
func RemoveAreaRooms(ecs *ecs.ECS, areaID int) int {
	var doomed []*donburi.Entry
	tags.Room.Each(ecs.World, func(e *donburi.Entry) {
		if components.Room.Get(e).AreaID == areaID {
			doomed = append(doomed, e)
		}
	})

	spaceEntry, hasSpace := components.Space.First(ecs.World)
	for _, e := range doomed {
		if hasSpace {
			components.Space.Get(spaceEntry).Remove(components.Object.Get(e).Object)
		}
		ecs.World.Remove(e.Entity())
	}
	return len(doomed)
}
