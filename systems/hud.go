package systems

import (
	"fmt"
	"image"
	"strings"

	"github.com/automoto/timespinner-map/components"
	cfg "github.com/automoto/timespinner-map/config"
	"github.com/automoto/timespinner-map/fonts"
	"github.com/automoto/timespinner-map/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
	"golang.org/x/image/font"
)

const hudHints = "drag/wheel: pan  ctrl+wheel, +/-: zoom  PgUp/PgDn: area  G grid  O objects  Tab areas  F3 debug"

// DrawHUD renders the current area, camera state and whatever is under the
// cursor in the top-right corner, with key hints along the bottom.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	input := getOrCreateInput(ecs)

	lines := hudLines(ecs, camera, input.Cursor)
	face := fonts.HUD.Get()
	drawTextBlock(screen, face, lines, cfg.C.Width-cfg.UI.HUDMargin, cfg.UI.HUDMargin, true)

	small := fonts.HUDSmall.Get()
	lineHeight := small.Metrics().Height.Ceil()
	drawTextBlock(screen, small, []string{hudHints}, cfg.C.Width-cfg.UI.HUDMargin, cfg.C.Height-cfg.UI.HUDMargin-lineHeight, true)
}

func hudLines(ecs *ecs.ECS, camera *components.CameraData, cursor image.Point) []string {
	lines := make([]string, 0, 4)

	if areaID, ok := CurrentArea(ecs); ok {
		name := ""
		if m, ok := getMap(ecs); ok {
			if level := m.Install.Levels[areaID]; level != nil {
				name = level.Name
			}
		}
		lines = append(lines, areaLabel(areaID, name))
	}
	lines = append(lines, fmt.Sprintf("Camera %.0f, %.0f  Zoom %.2fx", camera.Position.X, camera.Position.Y, camera.Zoom))

	world := ScreenToWorld(camera, math.NewVec2(float64(cursor.X), float64(cursor.Y)))
	p := image.Pt(int(world.X), int(world.Y))
	if room, ok := RoomAt(ecs, p); ok {
		lines = append(lines, roomLabel(room))
		if obj, ok := ObjectAt(room, p); ok {
			lines = append(lines, objectLabel(obj))
		}
	}
	return lines
}

func areaLabel(areaID int, name string) string {
	if name == "" {
		return fmt.Sprintf("Area %d", areaID)
	}
	return fmt.Sprintf("Area %d: %s", areaID, name)
}

func roomLabel(room *components.RoomData) string {
	label := fmt.Sprintf("Room %d.%d", room.AreaID, room.Level.ID)
	if room.Level.Name != "" {
		label += " " + room.Level.Name
	}
	return label + fmt.Sprintf(" (%dx%d, %s)", room.Level.Width, room.Level.Height, room.Level.Tileset)
}

func objectLabel(obj *leveldata.ObjectTile) string {
	var b strings.Builder
	b.WriteString(obj.Category.String())
	if obj.Argument != nil {
		fmt.Fprintf(&b, " arg %d", *obj.Argument)
	}
	fmt.Fprintf(&b, " @ %d,%d", obj.X, obj.Y)
	return b.String()
}

// drawTextBlock draws lines on a translucent backing. When alignRight is set
// x is the right edge of the block.
func drawTextBlock(screen *ebiten.Image, face font.Face, lines []string, x, y int, alignRight bool) {
	if len(lines) == 0 {
		return
	}
	lineHeight := face.Metrics().Height.Ceil()
	ascent := face.Metrics().Ascent.Ceil()
	pad := 4

	width := 0
	for _, line := range lines {
		width = max(width, text.BoundString(face, line).Dx())
	}
	if alignRight {
		x -= width
	}

	vector.FillRect(screen,
		float32(x-pad), float32(y-pad),
		float32(width+2*pad), float32(len(lines)*lineHeight+2*pad),
		cfg.RGBA(cfg.Colors.HUDTextBg), false)

	for i, line := range lines {
		text.Draw(screen, line, face, x, y+ascent+i*lineHeight, cfg.RGBA(cfg.Colors.HUDText))
	}
}
