package minimap

import (
	"bytes"
	"compress/zlib"
	"errors"
	"image"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/automoto/timespinner-map/shared/datfile"
)

const sampleMinimap = `<Minimap>
  <Areas>
    <Area ID="1">
      <Rooms>
        <Room ID="0" Width="2" Height="1" Position="{X:10 Y:4}" />
        <Room ID="3" Width="1" Height="3" Position="{X:12 Y:4}" />
      </Rooms>
    </Area>
    <Area ID="17">
      <Rooms />
    </Area>
  </Areas>
</Minimap>`

func writeMinimap(t *testing.T, doc string) string {
	t.Helper()
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write([]byte(doc)); err != nil {
		t.Fatalf("zlib write: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("zlib close: %v", err)
	}
	path := filepath.Join(t.TempDir(), "Minimap.dat")
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatalf("write minimap: %v", err)
	}
	return path
}

func TestLoadMinimap(t *testing.T) {
	m, err := Load(writeMinimap(t, sampleMinimap))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(m.Areas) != 2 {
		t.Fatalf("expected 2 areas, got %d", len(m.Areas))
	}

	area, ok := m.Area(1)
	if !ok {
		t.Fatalf("expected area 1")
	}
	want := []Room{
		{ID: 0, Width: 2, Height: 1, Position: image.Pt(10, 4)},
		{ID: 3, Width: 1, Height: 3, Position: image.Pt(12, 4)},
	}
	if len(area.Rooms) != len(want) {
		t.Fatalf("expected %d rooms, got %d", len(want), len(area.Rooms))
	}
	for i := range want {
		if area.Rooms[i] != want[i] {
			t.Fatalf("room %d: expected %+v, got %+v", i, want[i], area.Rooms[i])
		}
	}

	room, ok := area.Room(3)
	if !ok || room.Position != image.Pt(12, 4) {
		t.Fatalf("expected room 3 lookup, got %v %v", room, ok)
	}
	if _, ok := area.Room(99); ok {
		t.Fatalf("unexpected room 99")
	}

	nexus, ok := m.Area(17)
	if !ok || len(nexus.Rooms) != 0 {
		t.Fatalf("expected empty area 17, got %v %v", nexus, ok)
	}
	if _, ok := m.Area(42); ok {
		t.Fatalf("unexpected area 42")
	}
}

func TestLoadMinimapSchemaErrors(t *testing.T) {
	cases := []struct {
		name string
		old  string
		new  string
		attr string
	}{
		{"bad_position", `Position="{X:10 Y:4}"`, `Position="10,4"`, "Position"},
		{"missing_position", ` Position="{X:12 Y:4}"`, ``, "Position"},
		{"missing_height", ` Height="1"`, ``, "Height"},
		{"empty_height", ` Height="1"`, ` Height=""`, "Height"},
		{"bad_area_id", `<Area ID="17">`, `<Area ID="x17">`, "ID"},
		{"missing_area_id", `<Area ID="17">`, `<Area>`, "ID"},
		{"missing_rooms", `<Rooms />`, ``, ""},
		{"missing_areas", "<Areas>", "<Other>", ""},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			doc := strings.Replace(sampleMinimap, c.old, c.new, 1)
			if c.name == "missing_areas" {
				doc = strings.Replace(doc, "</Areas>", "</Other>", 1)
			}
			if doc == sampleMinimap {
				t.Fatalf("fixture replacement did not apply")
			}
			m, err := Load(writeMinimap(t, doc))
			if m != nil {
				t.Fatalf("expected no partial minimap")
			}
			if !errors.Is(err, datfile.ErrSchema) {
				t.Fatalf("expected schema error, got %v", err)
			}
			var se *datfile.SchemaError
			if !errors.As(err, &se) || se.Attr != c.attr {
				t.Fatalf("expected error on @%q, got %v", c.attr, err)
			}
			if c.attr == "" && !errors.Is(err, datfile.ErrMissingElement) {
				t.Fatalf("expected missing element error, got %v", err)
			}
		})
	}
}

func TestLoadMinimapErrorsKeepTheirKind(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "Minimap.dat")); !errors.Is(err, datfile.ErrOpen) {
		t.Fatalf("expected open error, got %v", err)
	}

	path := filepath.Join(t.TempDir(), "Minimap.dat")
	if err := os.WriteFile(path, []byte(sampleMinimap), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); !errors.Is(err, datfile.ErrDecompress) {
		t.Fatalf("expected decompression error, got %v", err)
	}
}

func TestDecodeMinimapFromReader(t *testing.T) {
	m, err := Decode(strings.NewReader(sampleMinimap))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(m.Areas) != 2 || m.Areas[1].ID != 17 {
		t.Fatalf("unexpected areas %+v", m.Areas)
	}
}
