package systems

import (
	"image"
	"sort"

	"github.com/automoto/timespinner-map/components"
	cfg "github.com/automoto/timespinner-map/config"
	"github.com/automoto/timespinner-map/shared/leveldata"
	"github.com/automoto/timespinner-map/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// DrawRooms renders the tile layers of every room in view.
func DrawRooms(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.RGBA(cfg.Colors.Background))

	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	m, ok := getMap(ecs)
	if !ok {
		return
	}
	camGeoM := cameraGeoM(camera)
	outline := cfg.RGBA(cfg.Colors.RoomOutline)

	for _, e := range VisibleRooms(ecs) {
		room := components.Room.Get(e)

		if sheet, ok := m.Textures.Sheet(room.Level.Tileset); ok {
			for _, layer := range room.Level.Layers() {
				for _, tile := range layer {
					drawTile(screen, sheet.Sprite, tile, room.Bounds.Min, camGeoM)
				}
			}
		}

		tl := WorldToScreen(camera, vec(room.Bounds.Min))
		br := WorldToScreen(camera, vec(room.Bounds.Max))
		vector.StrokeRect(screen, float32(tl.X), float32(tl.Y), float32(br.X-tl.X), float32(br.Y-tl.Y), 1, outline, false)
	}
}

// drawTile draws one tile scaled to the grid, mirrored about its own centre
// when flipped. Tiles without a sprite are skipped.
func drawTile(screen *ebiten.Image, sprite func(int) *ebiten.Image, tile leveldata.Tile, origin image.Point, camGeoM ebiten.GeoM) {
	if !tile.HasSprite() {
		return
	}
	img := sprite(tile.ID)
	if img == nil {
		return
	}
	size := float64(cfg.Map.TileSize)
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if w == 0 || h == 0 {
		return
	}

	drawOp.GeoM.Reset()
	drawOp.GeoM.Scale(size/float64(w), size/float64(h))
	if tile.FlipX {
		drawOp.GeoM.Scale(-1, 1)
		drawOp.GeoM.Translate(size, 0)
	}
	if tile.FlipY {
		drawOp.GeoM.Scale(1, -1)
		drawOp.GeoM.Translate(0, size)
	}
	drawOp.GeoM.Translate(float64(origin.X)+float64(tile.X)*size, float64(origin.Y)+float64(tile.Y)*size)
	drawOp.GeoM.Concat(camGeoM)
	screen.DrawImage(img, drawOp)
}

// VisibleRooms returns the room entities whose bounds intersect the view,
// ordered by area and room id so overlapping rooms draw deterministically.
func VisibleRooms(ecs *ecs.ECS) []*donburi.Entry {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok || !cameraEntry.HasComponent(components.Object) {
		return nil
	}
	view := components.Object.Get(cameraEntry)
	if view.Object == nil || view.Space == nil {
		return nil
	}
	viewRect := ViewRect(components.Camera.Get(cameraEntry))

	var rooms []*donburi.Entry
	// The broad phase only narrows to rooms sharing a cell with the view.
	if check := view.Check(0, 0, tags.ResolvRoom); check != nil {
		for _, obj := range check.Objects {
			e, ok := obj.Data.(*donburi.Entry)
			if !ok || !e.Valid() || !e.HasComponent(tags.Room) {
				continue
			}
			if components.Room.Get(e).Bounds.Overlaps(viewRect) {
				rooms = append(rooms, e)
			}
		}
	}

	sort.Slice(rooms, func(i, j int) bool {
		a, b := components.Room.Get(rooms[i]), components.Room.Get(rooms[j])
		if a.AreaID != b.AreaID {
			return a.AreaID < b.AreaID
		}
		return a.Level.ID < b.Level.ID
	})
	return rooms
}

// RoomAt returns the room containing a world point.
func RoomAt(ecs *ecs.ECS, p image.Point) (*components.RoomData, bool) {
	for _, e := range VisibleRooms(ecs) {
		room := components.Room.Get(e)
		if p.In(room.Bounds) {
			return room, true
		}
	}
	return nil, false
}

// cameraGeoM maps world coordinates to the screen.
func cameraGeoM(camera *components.CameraData) ebiten.GeoM {
	var g ebiten.GeoM
	g.Translate(-camera.Position.X, -camera.Position.Y)
	g.Scale(camera.Zoom, camera.Zoom)
	c := screenCentre()
	g.Translate(c.X, c.Y)
	return g
}
