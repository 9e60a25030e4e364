package factory

import (
	"time"

	"github.com/automoto/timespinner-map/archetypes"
	"github.com/automoto/timespinner-map/components"
	cfg "github.com/automoto/timespinner-map/config"
	"github.com/automoto/timespinner-map/shared/install"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSettings(ecs *ecs.ECS) *donburi.Entry {
	settings := archetypes.Settings.Spawn(ecs)
	components.Settings.SetValue(settings, components.SettingsData{
		Debug:       cfg.Debug.Enabled,
		ShowGrid:    cfg.Debug.ShowGrid,
		ShowObjects: cfg.Debug.ShowObjects,
		ShowPanel:   cfg.Debug.ShowPanel,
	})
	return settings
}

func CreateReload(ecs *ecs.ECS, watcher *install.Watcher) *donburi.Entry {
	reload := archetypes.Reload.Spawn(ecs)
	components.Reload.SetValue(reload, components.ReloadData{
		Watcher: watcher,
		Pending: make(map[int]time.Time),
	})
	return reload
}
