// Package leveldata provides level file parsing shared between the loader and
// the viewer. It has no dependencies on ebitengine, donburi, or resolv and
// holds pure data only.
package leveldata

// SpecialTileID is the first tile id with engine-defined behaviour instead of
// a sprite in the room's tileset.
const SpecialTileID = 512

// Level is one area's level file.
type Level struct {
	ID    int
	Name  string
	Rooms []Room
}

// Room looks up a room by id.
func (l *Level) Room(id int) (*Room, bool) {
	for i := range l.Rooms {
		if l.Rooms[i].ID == id {
			return &l.Rooms[i], true
		}
	}
	return nil, false
}

// Room holds the tile layers of a single room. Tile coordinates are local to
// the room grid of Width x Height tiles.
type Room struct {
	ID                  int
	Index               int
	Name                string
	Tileset             string
	Width               int
	Height              int
	BackgroundWipeColor string

	BottomTiles []Tile
	MiddleTiles []Tile
	TopTiles    []Tile
	ObjectTiles []ObjectTile
}

// Layers returns the visual layers in draw order.
func (r *Room) Layers() [3][]Tile {
	return [3][]Tile{r.BottomTiles, r.MiddleTiles, r.TopTiles}
}

// Tile is a placed sprite of the room's tileset.
type Tile struct {
	ID    int
	X     int
	Y     int
	FlipX bool
	FlipY bool
}

// HasSprite reports whether the tile id indexes the tileset. Ids at or above
// SpecialTileID have no visual representation.
func (t Tile) HasSprite() bool {
	return t.ID >= 0 && t.ID < SpecialTileID
}

// ObjectTile is a tile that also carries gameplay semantics.
type ObjectTile struct {
	Tile
	Category Category
	// Argument is the event/enemy specific parameter, nil when absent.
	Argument *int
}

// ToTile drops the gameplay fields.
func (o ObjectTile) ToTile() Tile {
	return o.Tile
}
