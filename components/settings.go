package components

import "github.com/yohamta/donburi"

// SettingsData holds the viewer toggles.
type SettingsData struct {
	Debug       bool
	ShowGrid    bool
	ShowObjects bool
	ShowPanel   bool
	AreaIndex   int // Index into MapData.AreaIDs of the last area jumped to
}

var Settings = donburi.NewComponentType[SettingsData]()
