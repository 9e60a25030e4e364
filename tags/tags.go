package tags

import "github.com/yohamta/donburi"

var (
	Room = donburi.NewTag().SetName("Room")
	View = donburi.NewTag().SetName("View")
)

// Resolv tags for the broad phase
const (
	ResolvRoom = "room"
	ResolvView = "view"
)
