package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/timespinner-map/components"
	cfg "github.com/automoto/timespinner-map/config"
	"github.com/automoto/timespinner-map/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	// Get camera for world-space rendering.
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	view := ViewRect(camera)

	objects := 0
	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)

		for _, obj := range space.Objects() {
			objects++
			// Cull objects outside viewport
			if obj.X+obj.W < float64(view.Min.X) || obj.X > float64(view.Max.X) ||
				obj.Y+obj.H < float64(view.Min.Y) || obj.Y > float64(view.Max.Y) {
				continue
			}

			// Determine color based on tags
			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvView) {
				c = color.RGBA{255, 0, 255, 255} // Magenta
			}

			tl := WorldToScreen(camera, math.NewVec2(obj.X, obj.Y))
			w, h := float32(obj.W*camera.Zoom), float32(obj.H*camera.Zoom)
			vector.StrokeRect(screen, float32(tl.X), float32(tl.Y), w, h, 1, c, false)
		}
	}

	msg := fmt.Sprintf("TPS %.0f  FPS %.0f\nrooms %d visible / %d objects\nview %v",
		ebiten.ActualTPS(), ebiten.ActualFPS(), len(VisibleRooms(ecs)), objects, view)
	x := cfg.UI.HUDMargin
	if settings.ShowPanel {
		x += cfg.UI.PanelWidth
	}
	ebitenutil.DebugPrintAt(screen, msg, x, cfg.UI.HUDMargin)
}
