package scenes

import (
	"fmt"
	"image/color"
	"log"
	"sync"

	"github.com/automoto/timespinner-map/assets"
	cfg "github.com/automoto/timespinner-map/config"
	"github.com/automoto/timespinner-map/shared/install"
	"github.com/automoto/timespinner-map/systems"
	"github.com/automoto/timespinner-map/systems/factory"
	"github.com/automoto/timespinner-map/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// ViewerScene shows every area of an installation on one pannable map.
type ViewerScene struct {
	ecs      *ecs.ECS
	inst     *install.Install
	textures *assets.TextureCache
	watcher  *install.Watcher
	saved    *systems.SavedView
	picker   *ui.AreaPickerUI
	once     sync.Once
}

// NewViewerScene creates the viewer. watcher may be nil to disable hot
// reload; saved may be nil to start on the first area.
func NewViewerScene(inst *install.Install, watcher *install.Watcher, saved *systems.SavedView) *ViewerScene {
	return &ViewerScene{
		inst:     inst,
		textures: assets.NewTextureCache(inst, nil),
		watcher:  watcher,
		saved:    saved,
	}
}

func (vs *ViewerScene) Update() {
	vs.once.Do(vs.configure)
	vs.ecs.Update()

	if systems.GetOrCreateSettings(vs.ecs).ShowPanel {
		if areaID, ok := systems.CurrentArea(vs.ecs); ok {
			vs.picker.SetCurrent(fmt.Sprintf("current: area %d", areaID))
		}
		vs.picker.Update()
	}
}

func (vs *ViewerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if vs.ecs == nil {
		return
	}
	vs.ecs.Draw(screen)

	if systems.GetOrCreateSettings(vs.ecs).ShowPanel {
		vs.picker.Draw(screen)
	}
}

// Close saves the view and stops watching level files.
func (vs *ViewerScene) Close() {
	if vs.ecs != nil {
		systems.SaveCurrentView(vs.ecs)
	}
	if vs.watcher != nil {
		if err := vs.watcher.Close(); err != nil {
			log.Printf("Warning: closing level watcher: %v", err)
		}
	}
}

func (vs *ViewerScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Input first so every other system sees this tick's state
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdateCamera)
	ecs.AddSystem(systems.UpdateReload)

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawRooms)
	ecs.AddRenderer(cfg.Default, systems.DrawGrid)
	ecs.AddRenderer(cfg.Default, systems.DrawObjects)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)

	vs.ecs = ecs

	rooms := factory.CreateWorld(vs.ecs, vs.inst, vs.textures)
	loaded := vs.textures.Preload(vs.tilesets())
	log.Printf("Loaded %d areas, %d rooms, %d tilesets", len(vs.inst.Minimap.Areas), rooms, loaded)

	factory.CreateSettings(vs.ecs)
	if vs.watcher != nil {
		factory.CreateReload(vs.ecs, vs.watcher)
	}

	factory.CreateCamera(vs.ecs, vs.startPosition(), 1)
	systems.ApplySavedView(vs.ecs, vs.saved)

	vs.picker = ui.NewAreaPickerUI(vs.areaEntries(), cfg.UI.PanelWidth, func(areaID int) {
		systems.JumpToArea(vs.ecs, areaID)
	})
}

// startPosition centres the camera on the first area that has a room.
func (vs *ViewerScene) startPosition() math.Vec2 {
	for _, areaID := range vs.inst.AreaIDs() {
		if r, ok := factory.FirstRoomBounds(vs.inst, areaID); ok {
			return math.NewVec2(float64(r.Min.X+r.Max.X)/2, float64(r.Min.Y+r.Max.Y)/2)
		}
	}
	return math.Vec2{}
}

func (vs *ViewerScene) tilesets() []string {
	seen := make(map[string]bool)
	var names []string
	for _, areaID := range vs.inst.AreaIDs() {
		level := vs.inst.Levels[areaID]
		if level == nil {
			continue
		}
		for _, room := range level.Rooms {
			if !seen[room.Tileset] {
				seen[room.Tileset] = true
				names = append(names, room.Tileset)
			}
		}
	}
	return names
}

func (vs *ViewerScene) areaEntries() []ui.AreaEntry {
	ids := vs.inst.AreaIDs()
	entries := make([]ui.AreaEntry, 0, len(ids))
	for _, id := range ids {
		entry := ui.AreaEntry{ID: id}
		if level := vs.inst.Levels[id]; level != nil {
			entry.Name = level.Name
		}
		entries = append(entries, entry)
	}
	return entries
}
