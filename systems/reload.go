package systems

import (
	"log"
	"sort"
	"time"

	"github.com/automoto/timespinner-map/components"
	cfg "github.com/automoto/timespinner-map/config"
	"github.com/automoto/timespinner-map/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdateReload collects level file changes from the watcher and, once a file
// has been quiet for the reload delay, reloads its area and rebuilds its
// rooms. A level that fails to parse is logged and the previous one kept.
func UpdateReload(e *ecs.ECS) {
	entry, ok := components.Reload.First(e.World)
	if !ok {
		return
	}
	reload := components.Reload.Get(entry)
	m, ok := getMap(e)
	if !ok || reload.Watcher == nil {
		return
	}

	now := time.Now()
drain:
	for {
		select {
		case name, ok := <-reload.Watcher.Events:
			if !ok {
				break drain
			}
			if areaID, ok := m.Install.AreaForLevelFile(name); ok {
				reload.Pending[areaID] = now
			}
		case err, ok := <-reload.Watcher.Errors:
			if !ok {
				break drain
			}
			log.Printf("Warning: level watcher: %v", err)
		default:
			break drain
		}
	}

	delay := time.Duration(cfg.Load.ReloadDelayMS) * time.Millisecond
	for _, areaID := range dueAreas(reload.Pending, now, delay) {
		delete(reload.Pending, areaID)
		ReloadArea(e, areaID)
	}
}

// ReloadArea reparses one area's level and replaces its room entities.
func ReloadArea(e *ecs.ECS, areaID int) bool {
	m, ok := getMap(e)
	if !ok {
		return false
	}
	area, ok := m.Install.Minimap.Area(areaID)
	if !ok {
		return false
	}

	level, err := m.Install.ReloadLevel(areaID)
	if err != nil {
		log.Printf("Warning: keeping previous level: %v", err)
		return false
	}
	m.Install.Levels[areaID] = level

	removed := factory.RemoveAreaRooms(e, areaID)
	created := factory.CreateAreaRooms(e, area, level)

	world := factory.WorldBounds(m.Install)
	if !world.In(m.World) {
		factory.RebuildSpace(e, world)
	}
	m.World = world

	log.Printf("Reloaded area %d: %d rooms (was %d)", areaID, created, removed)
	return true
}

// dueAreas returns, in ascending order, the areas whose last change is at
// least delay old.
func dueAreas(pending map[int]time.Time, now time.Time, delay time.Duration) []int {
	var due []int
	for areaID, changed := range pending {
		if now.Sub(changed) >= delay {
			due = append(due, areaID)
		}
	}
	sort.Ints(due)
	return due
}
