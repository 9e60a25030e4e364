package systems

import (
	"image/color"

	"github.com/automoto/timespinner-map/components"
	cfg "github.com/automoto/timespinner-map/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// Tile lines closer than this on screen are not drawn.
const minTileGridSpacing = 4.0

// DrawGrid draws the tile grid and, over it, the room grid.
func DrawGrid(ecs *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreateSettings(ecs).ShowGrid {
		return
	}
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	if float64(cfg.Map.TileSize)*camera.Zoom >= minTileGridSpacing {
		drawGridLines(screen, camera, cfg.Map.TileSize, cfg.Map.TileSize, cfg.RGBA(cfg.Colors.TileGrid))
	}
	roomW, roomH := cfg.Map.RoomPixels()
	drawGridLines(screen, camera, roomW, roomH, cfg.RGBA(cfg.Colors.RoomGrid))
}

func drawGridLines(screen *ebiten.Image, camera *components.CameraData, stepX, stepY int, c color.Color) {
	view := ViewRect(camera)
	w, h := float32(cfg.C.Width), float32(cfg.C.Height)

	for _, x := range gridLines(float64(view.Min.X), float64(view.Max.X), stepX) {
		sx := float32(WorldToScreen(camera, math.NewVec2(x, 0)).X)
		vector.StrokeLine(screen, sx, 0, sx, h, 1, c, false)
	}
	for _, y := range gridLines(float64(view.Min.Y), float64(view.Max.Y), stepY) {
		sy := float32(WorldToScreen(camera, math.NewVec2(0, y)).Y)
		vector.StrokeLine(screen, 0, sy, w, sy, 1, c, false)
	}
}
