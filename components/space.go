package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Space is the broad-phase index of room bounds, one cell per minimap cell.
var Space = donburi.NewComponentType[resolv.Space]()
