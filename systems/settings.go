package systems

import (
	"log"

	"github.com/automoto/timespinner-map/components"
	cfg "github.com/automoto/timespinner-map/config"
	"github.com/automoto/timespinner-map/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings handles the view toggles and area cycling.
func UpdateSettings(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)
	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionToggleGrid).JustPressed {
		settings.ShowGrid = !settings.ShowGrid
	}
	if GetAction(input, cfg.ActionToggleObjects).JustPressed {
		settings.ShowObjects = !settings.ShowObjects
	}
	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		settings.Debug = !settings.Debug
	}
	if GetAction(input, cfg.ActionTogglePanel).JustPressed {
		settings.ShowPanel = !settings.ShowPanel
	}

	delta := 0
	if GetAction(input, cfg.ActionNextArea).JustPressed {
		delta++
	}
	if GetAction(input, cfg.ActionPrevArea).JustPressed {
		delta--
	}
	if delta == 0 {
		return
	}

	m, ok := getMap(e)
	if !ok || len(m.AreaIDs) == 0 {
		return
	}
	index := stepArea(len(m.AreaIDs), settings.AreaIndex, delta)
	JumpToArea(e, m.AreaIDs[index])
}

// JumpToArea moves the camera to the first room of an area and makes it the
// current area. Unknown areas are ignored with a warning.
func JumpToArea(e *ecs.ECS, areaID int) bool {
	m, ok := getMap(e)
	if !ok {
		return false
	}
	bounds, ok := factory.FirstRoomBounds(m.Install, areaID)
	if !ok {
		log.Printf("Warning: area %d has no rooms to show", areaID)
		return false
	}

	settings := GetOrCreateSettings(e)
	for i, id := range m.AreaIDs {
		if id == areaID {
			settings.AreaIndex = i
			break
		}
	}
	FocusCamera(e, bounds)
	return true
}

// CurrentArea is the area last jumped to, or false before any area exists.
func CurrentArea(e *ecs.ECS) (int, bool) {
	m, ok := getMap(e)
	if !ok || len(m.AreaIDs) == 0 {
		return 0, false
	}
	index := GetOrCreateSettings(e).AreaIndex
	if index < 0 || index >= len(m.AreaIDs) {
		return 0, false
	}
	return m.AreaIDs[index], true
}

// stepArea moves index by delta, wrapping around n areas.
func stepArea(n, index, delta int) int {
	if n <= 0 {
		return 0
	}
	return ((index+delta)%n + n) % n
}

// GetOrCreateSettings returns the singleton Settings component, creating if needed
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = factory.CreateSettings(e)
	}
	return components.Settings.Get(entry)
}

func getMap(e *ecs.ECS) (*components.MapData, bool) {
	entry, ok := components.Map.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Map.Get(entry), true
}
