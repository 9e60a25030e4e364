package leveldata

import (
	"bytes"
	"compress/zlib"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/automoto/timespinner-map/shared/datfile"
)

const sampleLevel = `<Level ID="3" Name="Lake Serene">
  <Rooms>
    <Room ID="0" Index="0" Name="Shore" Tileset="LakeTiles" Width="25" Height="20" BackgroundWipeColor="#FF102030">
      <BottomTiles>
        <Tile ID="4" X="0" Y="1" />
        <Tile ID="5" X="1" Y="1" FlipX="True" />
      </BottomTiles>
      <MiddleTiles>
        <Tile ID="600" X="2" Y="2" FlipY="True" FlipX="False" />
      </MiddleTiles>
      <ObjectTiles>
        <Tile ID="12" X="3" Y="4" FlipX="True" Category="Enemy" ObjectID="40" Argument="2" />
        <Tile ID="13" X="5" Y="6" Category="None" ObjectID="250" />
        <Tile ID="14" X="7" Y="8" Category="Event" ObjectID="0" />
        <Tile ID="15" X="9" Y="9" Category="Item" ObjectID="7" Argument="-1" />
      </ObjectTiles>
    </Room>
    <Room ID="7" Index="1" Name="Depths" Tileset="LakeTiles" Width="50" Height="20" BackgroundWipeColor="#FF000000" />
  </Rooms>
</Level>`

func writeLevel(t *testing.T, doc string) string {
	t.Helper()
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write([]byte(doc)); err != nil {
		t.Fatalf("zlib write: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("zlib close: %v", err)
	}
	path := filepath.Join(t.TempDir(), "Level_03.dat")
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatalf("write level: %v", err)
	}
	return path
}

func TestLoadLevel(t *testing.T) {
	level, err := Load(writeLevel(t, sampleLevel))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if level.ID != 3 || level.Name != "Lake Serene" {
		t.Fatalf("unexpected level header %d %q", level.ID, level.Name)
	}
	if len(level.Rooms) != 2 {
		t.Fatalf("expected 2 rooms, got %d", len(level.Rooms))
	}

	shore := level.Rooms[0]
	if shore.Tileset != "LakeTiles" || shore.Width != 25 || shore.Height != 20 || shore.BackgroundWipeColor != "#FF102030" {
		t.Fatalf("unexpected room %+v", shore)
	}
	wantBottom := []Tile{{ID: 4, X: 0, Y: 1}, {ID: 5, X: 1, Y: 1, FlipX: true}}
	if len(shore.BottomTiles) != len(wantBottom) {
		t.Fatalf("expected %d bottom tiles, got %d", len(wantBottom), len(shore.BottomTiles))
	}
	for i, want := range wantBottom {
		if shore.BottomTiles[i] != want {
			t.Fatalf("bottom tile %d: expected %+v, got %+v", i, want, shore.BottomTiles[i])
		}
	}
	if got := shore.MiddleTiles[0]; got != (Tile{ID: 600, X: 2, Y: 2, FlipY: true}) || got.HasSprite() {
		t.Fatalf("unexpected special tile %+v", got)
	}
	if len(shore.TopTiles) != 0 {
		t.Fatalf("expected absent TopTiles to be empty, got %d", len(shore.TopTiles))
	}

	if len(shore.ObjectTiles) != 4 {
		t.Fatalf("expected 4 object tiles, got %d", len(shore.ObjectTiles))
	}
	eel := shore.ObjectTiles[0]
	if k, ok := eel.Category.Enemy(); !ok || k != EnemyLakeEel {
		t.Fatalf("expected LakeEel enemy, got %v", eel.Category)
	}
	if eel.Argument == nil || *eel.Argument != 2 {
		t.Fatalf("expected argument 2, got %v", eel.Argument)
	}
	if eel.ToTile() != (Tile{ID: 12, X: 3, Y: 4, FlipX: true}) {
		t.Fatalf("unexpected projected tile %+v", eel.ToTile())
	}
	if !shore.ObjectTiles[1].Category.IsNone() || shore.ObjectTiles[1].Argument != nil {
		t.Fatalf("expected None category without argument, got %+v", shore.ObjectTiles[1])
	}
	if k, ok := shore.ObjectTiles[2].Category.Event(); !ok || k != EventCheckpoint {
		t.Fatalf("expected Checkpoint event, got %v", shore.ObjectTiles[2].Category)
	}
	if k, ok := shore.ObjectTiles[3].Category.Item(); !ok || k != ItemGemChest {
		t.Fatalf("expected GemChest item, got %v", shore.ObjectTiles[3].Category)
	}

	depths, ok := level.Room(7)
	if !ok || depths.Name != "Depths" {
		t.Fatalf("expected room 7 lookup, got %v %v", depths, ok)
	}
	if len(depths.BottomTiles)+len(depths.MiddleTiles)+len(depths.TopTiles)+len(depths.ObjectTiles) != 0 {
		t.Fatalf("expected a room without tile lists to be empty")
	}
}

func TestLoadLevelSchemaErrors(t *testing.T) {
	cases := []struct {
		name string
		old  string
		new  string
		attr string
	}{
		{"tile_missing_y", `<Tile ID="4" X="0" Y="1" />`, `<Tile ID="4" X="0" />`, "Y"},
		{"tile_missing_id", `<Tile ID="5" X="1" Y="1" FlipX="True" />`, `<Tile X="1" Y="1" />`, "ID"},
		{"room_missing_tileset", `Tileset="LakeTiles" Width="50"`, `Width="50"`, "Tileset"},
		{"room_zero_width", `Width="25"`, `Width="0"`, "Width"},
		{"level_missing_name", ` Name="Lake Serene"`, ``, "Name"},
		{"object_missing_category", `Category="Event" `, ``, "Category"},
		{"object_missing_object_id", `ObjectID="7" `, ``, "ObjectID"},
		{"object_empty_object_id", `ObjectID="7"`, `ObjectID=""`, "ObjectID"},
		{"tile_empty_y", `<Tile ID="4" X="0" Y="1" />`, `<Tile ID="4" X="0" Y="" />`, "Y"},
		{"room_bad_width", `Width="25"`, `Width="wide"`, "Width"},
		{"bad_flip", `FlipX="True" />`, `FlipX="true" />`, "FlipX"},
		{"unknown_category", `Category="Item"`, `Category="Boss"`, "Category"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			doc := strings.Replace(sampleLevel, c.old, c.new, 1)
			if doc == sampleLevel {
				t.Fatalf("fixture replacement did not apply")
			}
			level, err := Load(writeLevel(t, doc))
			if level != nil {
				t.Fatalf("expected no partial level")
			}
			if !errors.Is(err, datfile.ErrSchema) {
				t.Fatalf("expected schema error, got %v", err)
			}
			var se *datfile.SchemaError
			if !errors.As(err, &se) || se.Attr != c.attr {
				t.Fatalf("expected error on @%s, got %v", c.attr, err)
			}
		})
	}
}

func TestLoadLevelMissingRooms(t *testing.T) {
	_, err := Load(writeLevel(t, `<Level ID="1" Name="Empty" />`))
	if !errors.Is(err, datfile.ErrMissingElement) {
		t.Fatalf("expected missing element error, got %v", err)
	}
}

func TestLoadLevelUnknownObject(t *testing.T) {
	doc := strings.Replace(sampleLevel, `Category="Enemy" ObjectID="40"`, `Category="Enemy" ObjectID="200"`, 1)
	level, err := Load(writeLevel(t, doc))
	if level != nil {
		t.Fatalf("expected no partial level")
	}
	if !errors.Is(err, ErrUnknownObject) {
		t.Fatalf("expected unknown object error, got %v", err)
	}
	if errors.Is(err, datfile.ErrSchema) {
		t.Fatalf("enumeration error misreported as schema error: %v", err)
	}
	var ue *UnknownObjectError
	if !errors.As(err, &ue) || ue.Tag != CategoryEnemy || ue.ObjectID != 200 {
		t.Fatalf("expected Enemy/200, got %#v", ue)
	}
	if msg := err.Error(); !strings.Contains(msg, "Enemy") || !strings.Contains(msg, "200") {
		t.Fatalf("expected message to name category and id, got %q", msg)
	}
}

func TestLoadLevelUncompressed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Level_01.dat")
	if err := os.WriteFile(path, []byte(sampleLevel), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, err := Load(path)
	if !errors.Is(err, datfile.ErrDecompress) {
		t.Fatalf("expected decompression error, got %v", err)
	}
	if errors.Is(err, datfile.ErrSchema) {
		t.Fatalf("expected decompression error, not schema error: %v", err)
	}
}

func TestLoadLevelMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "Level_99.dat"))
	if !errors.Is(err, datfile.ErrOpen) {
		t.Fatalf("expected open error, got %v", err)
	}
}

func TestDecodeLevelFromReader(t *testing.T) {
	level, err := Decode(strings.NewReader(sampleLevel))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(level.Rooms) != 2 {
		t.Fatalf("expected 2 rooms, got %d", len(level.Rooms))
	}
}
