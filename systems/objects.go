package systems

import (
	"image"
	"image/color"

	"github.com/automoto/timespinner-map/components"
	cfg "github.com/automoto/timespinner-map/config"
	"github.com/automoto/timespinner-map/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawObjects marks the object tiles of visible rooms with their category
// colour.
func DrawObjects(ecs *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreateSettings(ecs).ShowObjects {
		return
	}
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	for _, e := range VisibleRooms(ecs) {
		room := components.Room.Get(e)
		for _, obj := range room.Level.ObjectTiles {
			r := objectBounds(room.Bounds.Min, obj)
			tl := WorldToScreen(camera, vec(r.Min))
			size := float32(float64(cfg.Map.TileSize) * camera.Zoom)
			c := categoryColor(obj.Category)
			vector.StrokeRect(screen, float32(tl.X), float32(tl.Y), size, size, 1, c, false)
		}
	}
}

// ObjectAt returns the object tile of a room covering a world point.
func ObjectAt(room *components.RoomData, p image.Point) (*leveldata.ObjectTile, bool) {
	objects := room.Level.ObjectTiles
	// Later tiles draw on top, so search backwards.
	for i := len(objects) - 1; i >= 0; i-- {
		if p.In(objectBounds(room.Bounds.Min, objects[i])) {
			return &objects[i], true
		}
	}
	return nil, false
}

func objectBounds(origin image.Point, obj leveldata.ObjectTile) image.Rectangle {
	size := cfg.Map.TileSize
	tl := origin.Add(image.Pt(obj.X*size, obj.Y*size))
	return image.Rectangle{Min: tl, Max: tl.Add(image.Pt(size, size))}
}

func categoryColor(c leveldata.Category) color.RGBA {
	switch c.Tag() {
	case leveldata.CategoryEvent:
		return cfg.RGBA(cfg.Colors.Event)
	case leveldata.CategoryEnemy:
		return cfg.RGBA(cfg.Colors.Enemy)
	case leveldata.CategoryItem:
		return cfg.RGBA(cfg.Colors.Item)
	}
	return cfg.RGBA(cfg.Colors.Object)
}
