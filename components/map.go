package components

import (
	"image"

	"github.com/automoto/timespinner-map/assets"
	"github.com/automoto/timespinner-map/shared/install"
	"github.com/yohamta/donburi"
)

type MapData struct {
	Install  *install.Install
	Textures *assets.TextureCache
	AreaIDs  []int           // Ascending
	World    image.Rectangle // Union of all room bounds
}

var Map = donburi.NewComponentType[MapData]()
