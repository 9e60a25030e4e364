package components

import (
	"image"

	"github.com/automoto/timespinner-map/shared/leveldata"
	"github.com/automoto/timespinner-map/shared/minimap"
	"github.com/yohamta/donburi"
)

// RoomData pairs a level room with its minimap placement.
type RoomData struct {
	AreaID int
	Level  *leveldata.Room
	Cell   minimap.Room
	Bounds image.Rectangle // World pixels
}

var Room = donburi.NewComponentType[RoomData]()
