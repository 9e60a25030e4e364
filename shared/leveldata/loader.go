package leveldata

import (
	"fmt"
	"io"

	"github.com/automoto/timespinner-map/shared/datfile"
)

// levelSpec mirrors the level file schema. Required attributes are pointers
// so a missing attribute can be told apart from a zero value.
type levelSpec struct {
	ID    *datfile.Int `xml:"ID,attr"`
	Name  *string      `xml:"Name,attr"`
	Rooms *roomList    `xml:"Rooms"`
}

type roomList struct {
	Rooms []roomSpec `xml:"Room"`
}

type roomSpec struct {
	ID                  *datfile.Int `xml:"ID,attr"`
	Index               *datfile.Int `xml:"Index,attr"`
	Name                *string      `xml:"Name,attr"`
	Tileset             *string      `xml:"Tileset,attr"`
	Width               *datfile.Int `xml:"Width,attr"`
	Height              *datfile.Int `xml:"Height,attr"`
	BackgroundWipeColor *string      `xml:"BackgroundWipeColor,attr"`

	BottomTiles []tileSpec       `xml:"BottomTiles>Tile"`
	MiddleTiles []tileSpec       `xml:"MiddleTiles>Tile"`
	TopTiles    []tileSpec       `xml:"TopTiles>Tile"`
	ObjectTiles []objectTileSpec `xml:"ObjectTiles>Tile"`
}

type tileSpec struct {
	ID    *datfile.Int  `xml:"ID,attr"`
	X     *datfile.Int  `xml:"X,attr"`
	Y     *datfile.Int  `xml:"Y,attr"`
	FlipX *datfile.Bool `xml:"FlipX,attr"`
	FlipY *datfile.Bool `xml:"FlipY,attr"`
}

type objectTileSpec struct {
	tileSpec
	Category *CategoryTag `xml:"Category,attr"`
	ObjectID *datfile.Int `xml:"ObjectID,attr"`
	Argument *datfile.Int `xml:"Argument,attr"`
}

// Load parses the compressed level file at path. The whole level fails on the
// first invalid room, tile or object id.
func Load(path string) (*Level, error) {
	var spec levelSpec
	if err := datfile.Decode(path, &spec); err != nil {
		return nil, fmt.Errorf("load level: %w", err)
	}
	level, err := spec.level()
	if err != nil {
		return nil, fmt.Errorf("load level %s: %w", path, err)
	}
	return level, nil
}

// Decode parses an already decompressed level document.
func Decode(r io.Reader) (*Level, error) {
	var spec levelSpec
	if err := datfile.DecodeXML(r, &spec); err != nil {
		return nil, fmt.Errorf("decode level: %w", err)
	}
	return spec.level()
}

func (s *levelSpec) level() (*Level, error) {
	e := datfile.NewElement("Level", -1)
	level := &Level{
		ID:   int(datfile.Field(e, "ID", s.ID)),
		Name: datfile.Field(e, "Name", s.Name),
	}
	e.Child("Rooms", s.Rooms != nil)
	if err := e.Err(); err != nil {
		return nil, err
	}

	level.Rooms = make([]Room, 0, len(s.Rooms.Rooms))
	for i := range s.Rooms.Rooms {
		room, err := s.Rooms.Rooms[i].room(i)
		if err != nil {
			return nil, err
		}
		level.Rooms = append(level.Rooms, room)
	}
	return level, nil
}

func (s *roomSpec) room(index int) (Room, error) {
	e := datfile.NewElement("Room", index)
	room := Room{
		ID:                  int(datfile.Field(e, "ID", s.ID)),
		Index:               int(datfile.Field(e, "Index", s.Index)),
		Name:                datfile.Field(e, "Name", s.Name),
		Tileset:             datfile.Field(e, "Tileset", s.Tileset),
		Width:               int(datfile.Field(e, "Width", s.Width)),
		Height:              int(datfile.Field(e, "Height", s.Height)),
		BackgroundWipeColor: datfile.Field(e, "BackgroundWipeColor", s.BackgroundWipeColor),
	}
	e.Positive("Width", room.Width)
	e.Positive("Height", room.Height)
	if err := e.Err(); err != nil {
		return Room{}, err
	}

	var err error
	if room.BottomTiles, err = convertTiles("BottomTiles", s.BottomTiles); err != nil {
		return Room{}, fmt.Errorf("room %d: %w", room.ID, err)
	}
	if room.MiddleTiles, err = convertTiles("MiddleTiles", s.MiddleTiles); err != nil {
		return Room{}, fmt.Errorf("room %d: %w", room.ID, err)
	}
	if room.TopTiles, err = convertTiles("TopTiles", s.TopTiles); err != nil {
		return Room{}, fmt.Errorf("room %d: %w", room.ID, err)
	}

	room.ObjectTiles = make([]ObjectTile, 0, len(s.ObjectTiles))
	for i := range s.ObjectTiles {
		obj, err := s.ObjectTiles[i].objectTile(i)
		if err != nil {
			return Room{}, fmt.Errorf("room %d: %w", room.ID, err)
		}
		room.ObjectTiles = append(room.ObjectTiles, obj)
	}
	return room, nil
}

func convertTiles(list string, specs []tileSpec) ([]Tile, error) {
	tiles := make([]Tile, 0, len(specs))
	for i := range specs {
		e := datfile.NewElement(list+"/Tile", i)
		tile := specs[i].tile(e)
		if err := e.Err(); err != nil {
			return nil, err
		}
		tiles = append(tiles, tile)
	}
	return tiles, nil
}

func (s *tileSpec) tile(e *datfile.Element) Tile {
	return Tile{
		ID:    int(datfile.Field(e, "ID", s.ID)),
		X:     int(datfile.Field(e, "X", s.X)),
		Y:     int(datfile.Field(e, "Y", s.Y)),
		FlipX: bool(datfile.Optional(s.FlipX, false)),
		FlipY: bool(datfile.Optional(s.FlipY, false)),
	}
}

// objectTile converts the raw tile first and resolves its category second, so
// schema problems are reported before enumeration problems.
func (s *objectTileSpec) objectTile(index int) (ObjectTile, error) {
	e := datfile.NewElement("ObjectTiles/Tile", index)
	obj := ObjectTile{Tile: s.tile(e)}
	tag := datfile.Field(e, "Category", s.Category)
	objectID := int(datfile.Field(e, "ObjectID", s.ObjectID))
	if err := e.Err(); err != nil {
		return ObjectTile{}, err
	}

	category, err := ResolveCategory(tag, objectID)
	if err != nil {
		return ObjectTile{}, fmt.Errorf("ObjectTiles/Tile[%d]: %w", index, err)
	}
	obj.Category = category
	if s.Argument != nil {
		arg := int(*s.Argument)
		obj.Argument = &arg
	}
	return obj, nil
}
