// Package minimap parses Minimap.dat: the map areas and where each of their
// rooms sits on the world grid.
package minimap

import (
	"fmt"
	"image"
	"io"

	"github.com/automoto/timespinner-map/shared/datfile"
)

// Minimap is the parsed Minimap.dat.
type Minimap struct {
	Areas []Area
}

// Area groups the rooms of one level. Its ID is shared with the level file.
type Area struct {
	ID    int
	Rooms []Room
}

// Room places a level room on the world grid. It is matched to the level
// room with the same ID.
type Room struct {
	ID       int
	Width    int
	Height   int
	Position image.Point
}

// Area looks up an area by id.
func (m *Minimap) Area(id int) (*Area, bool) {
	for i := range m.Areas {
		if m.Areas[i].ID == id {
			return &m.Areas[i], true
		}
	}
	return nil, false
}

// Room looks up a room by id.
func (a *Area) Room(id int) (*Room, bool) {
	for i := range a.Rooms {
		if a.Rooms[i].ID == id {
			return &a.Rooms[i], true
		}
	}
	return nil, false
}

type minimapSpec struct {
	Areas *struct {
		Areas []areaSpec `xml:"Area"`
	} `xml:"Areas"`
}

type areaSpec struct {
	ID    *datfile.Int `xml:"ID,attr"`
	Rooms *struct {
		Rooms []roomSpec `xml:"Room"`
	} `xml:"Rooms"`
}

type roomSpec struct {
	ID       *datfile.Int   `xml:"ID,attr"`
	Width    *datfile.Int   `xml:"Width,attr"`
	Height   *datfile.Int   `xml:"Height,attr"`
	Position *datfile.Point `xml:"Position,attr"`
}

// Load parses the compressed minimap file at path.
func Load(path string) (*Minimap, error) {
	var spec minimapSpec
	if err := datfile.Decode(path, &spec); err != nil {
		return nil, fmt.Errorf("load minimap: %w", err)
	}
	m, err := spec.minimap()
	if err != nil {
		return nil, fmt.Errorf("load minimap %s: %w", path, err)
	}
	return m, nil
}

// Decode parses an already decompressed minimap document.
func Decode(r io.Reader) (*Minimap, error) {
	var spec minimapSpec
	if err := datfile.DecodeXML(r, &spec); err != nil {
		return nil, fmt.Errorf("decode minimap: %w", err)
	}
	return spec.minimap()
}

func (s *minimapSpec) minimap() (*Minimap, error) {
	e := datfile.NewElement("Minimap", -1)
	e.Child("Areas", s.Areas != nil)
	if err := e.Err(); err != nil {
		return nil, err
	}

	m := &Minimap{Areas: make([]Area, 0, len(s.Areas.Areas))}
	for i := range s.Areas.Areas {
		area, err := s.Areas.Areas[i].area(i)
		if err != nil {
			return nil, err
		}
		m.Areas = append(m.Areas, area)
	}
	return m, nil
}

func (s *areaSpec) area(index int) (Area, error) {
	e := datfile.NewElement("Area", index)
	area := Area{ID: int(datfile.Field(e, "ID", s.ID))}
	e.Child("Rooms", s.Rooms != nil)
	if err := e.Err(); err != nil {
		return Area{}, err
	}

	area.Rooms = make([]Room, 0, len(s.Rooms.Rooms))
	for i, rs := range s.Rooms.Rooms {
		re := datfile.NewElement("Room", i)
		room := Room{
			ID:       int(datfile.Field(re, "ID", rs.ID)),
			Width:    int(datfile.Field(re, "Width", rs.Width)),
			Height:   int(datfile.Field(re, "Height", rs.Height)),
			Position: image.Point(datfile.Field(re, "Position", rs.Position)),
		}
		if err := re.Err(); err != nil {
			return Area{}, fmt.Errorf("area %d: %w", area.ID, err)
		}
		area.Rooms = append(area.Rooms, room)
	}
	return area, nil
}
