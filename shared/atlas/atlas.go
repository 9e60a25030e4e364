// Package atlas parses TextureDatabase.dat and slices each atlas into the
// per-sprite rectangles that tile ids index.
package atlas

import (
	"fmt"
	"image"
	"io"

	"github.com/automoto/timespinner-map/shared/datfile"
)

// TextureDatabase is the parsed TextureDatabase.dat.
type TextureDatabase struct {
	Atlases []Atlas
}

// Atlas describes one packed sprite sheet.
type Atlas struct {
	// FileName is the name level rooms use as their Tileset.
	FileName string
	// ContentPath is the image path relative to the Content directory,
	// without extension.
	ContentPath string
	Width       int
	Height      int
	FrameCount  int
	Frames      []Frame
}

// Frame is a run descriptor: Count equally sized sprites laid out RowWidth per
// row starting at StartCoordinates.
type Frame struct {
	DoesNewRowUseStartX bool
	Count               int
	RowWidth            int
	StartIndex          int
	// FrameSize holds the sprite width in X and height in Y.
	FrameSize        image.Point
	StartCoordinates image.Point
}

// Atlas looks up an atlas by file name.
func (db *TextureDatabase) Atlas(fileName string) (*Atlas, bool) {
	for i := range db.Atlases {
		if db.Atlases[i].FileName == fileName {
			return &db.Atlases[i], true
		}
	}
	return nil, false
}

type databaseSpec struct {
	Atlases []atlasSpec `xml:"Atlas"`
}

type atlasSpec struct {
	FileName    *string      `xml:"FileName,attr"`
	ContentPath *string      `xml:"ContentPath,attr"`
	Width       *datfile.Int `xml:"Width,attr"`
	Height      *datfile.Int `xml:"Height,attr"`
	FrameCount  *datfile.Int `xml:"FrameCount,attr"`
	Frames      []frameSpec  `xml:"AtlasFrame"`
}

type frameSpec struct {
	DoesNewRowUseStartX *datfile.Bool  `xml:"DoesNewRowUseStartX,attr"`
	Count               *datfile.Int   `xml:"Count,attr"`
	RowWidth            *datfile.Int   `xml:"RowWidth,attr"`
	StartIndex          *datfile.Int   `xml:"StartIndex,attr"`
	FrameSize           *datfile.Point `xml:"FrameSize,attr"`
	StartCoordinates    *datfile.Point `xml:"StartCoordinates,attr"`
}

// Load parses the compressed texture database at path.
func Load(path string) (*TextureDatabase, error) {
	var spec databaseSpec
	if err := datfile.Decode(path, &spec); err != nil {
		return nil, fmt.Errorf("load texture database: %w", err)
	}
	db, err := spec.database()
	if err != nil {
		return nil, fmt.Errorf("load texture database %s: %w", path, err)
	}
	return db, nil
}

// Decode parses an already decompressed texture database document.
func Decode(r io.Reader) (*TextureDatabase, error) {
	var spec databaseSpec
	if err := datfile.DecodeXML(r, &spec); err != nil {
		return nil, fmt.Errorf("decode texture database: %w", err)
	}
	return spec.database()
}

func (s *databaseSpec) database() (*TextureDatabase, error) {
	db := &TextureDatabase{Atlases: make([]Atlas, 0, len(s.Atlases))}
	for i := range s.Atlases {
		a, err := s.Atlases[i].atlas(i)
		if err != nil {
			return nil, err
		}
		db.Atlases = append(db.Atlases, a)
	}
	return db, nil
}

func (s *atlasSpec) atlas(index int) (Atlas, error) {
	e := datfile.NewElement("Atlas", index)
	a := Atlas{
		FileName:    datfile.Field(e, "FileName", s.FileName),
		ContentPath: datfile.Field(e, "ContentPath", s.ContentPath),
		Width:       int(datfile.Field(e, "Width", s.Width)),
		Height:      int(datfile.Field(e, "Height", s.Height)),
		FrameCount:  int(datfile.Field(e, "FrameCount", s.FrameCount)),
	}
	e.Child("AtlasFrame", len(s.Frames) > 0)
	if err := e.Err(); err != nil {
		return Atlas{}, err
	}

	a.Frames = make([]Frame, 0, len(s.Frames))
	for i, fs := range s.Frames {
		fe := datfile.NewElement("AtlasFrame", i)
		f := Frame{
			DoesNewRowUseStartX: bool(datfile.Field(fe, "DoesNewRowUseStartX", fs.DoesNewRowUseStartX)),
			Count:               int(datfile.Field(fe, "Count", fs.Count)),
			RowWidth:            int(datfile.Field(fe, "RowWidth", fs.RowWidth)),
			StartIndex:          int(datfile.Field(fe, "StartIndex", fs.StartIndex)),
			FrameSize:           image.Point(datfile.Field(fe, "FrameSize", fs.FrameSize)),
			StartCoordinates:    image.Point(datfile.Field(fe, "StartCoordinates", fs.StartCoordinates)),
		}
		if err := fe.Err(); err != nil {
			return Atlas{}, fmt.Errorf("atlas %q: %w", a.FileName, err)
		}
		a.Frames = append(a.Frames, f)
	}
	return a, nil
}
