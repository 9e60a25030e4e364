package components

import (
	"time"

	"github.com/automoto/timespinner-map/shared/install"
	"github.com/yohamta/donburi"
)

type ReloadData struct {
	Watcher *install.Watcher
	Pending map[int]time.Time // Area id to the time of its latest change
}

var Reload = donburi.NewComponentType[ReloadData]()
