package assets

import (
	"errors"
	"image"
	"path/filepath"
	"testing"

	"github.com/automoto/timespinner-map/shared/atlas"
	"github.com/automoto/timespinner-map/shared/install"
	"github.com/hajimehoshi/ebiten/v2"
)

func testInstall() *install.Install {
	return &install.Install{
		Root: "ts",
		Textures: &atlas.TextureDatabase{Atlases: []atlas.Atlas{{
			FileName:    "LakeTiles",
			ContentPath: `Tilesets\Lake`,
			Frames: []atlas.Frame{
				{Count: 4, RowWidth: 2, FrameSize: image.Pt(16, 16)},
			},
		}}},
	}
}

func TestSheetUnknownTileset(t *testing.T) {
	calls := 0
	c := NewTextureCache(testInstall(), func(string) (*ebiten.Image, error) {
		calls++
		return nil, nil
	})

	for i := 0; i < 3; i++ {
		if _, ok := c.Sheet("Castle"); ok {
			t.Fatalf("expected miss for unknown tileset")
		}
	}
	if calls != 0 {
		t.Fatalf("expected no image loads, got %d", calls)
	}
}

func TestSheetImageFailureIsRemembered(t *testing.T) {
	var paths []string
	c := NewTextureCache(testInstall(), func(path string) (*ebiten.Image, error) {
		paths = append(paths, path)
		return nil, errors.New("missing")
	})

	for i := 0; i < 3; i++ {
		if _, ok := c.Sheet("LakeTiles"); ok {
			t.Fatalf("expected miss when the image fails to load")
		}
	}
	want := filepath.Join("ts", "Content", "Tilesets", "Lake.png")
	if len(paths) != 1 || paths[0] != want {
		t.Fatalf("expected a single load of %s, got %v", want, paths)
	}
	if n := c.Preload([]string{"LakeTiles", "Castle"}); n != 0 {
		t.Fatalf("expected nothing preloaded, got %d", n)
	}
}

func TestSheetFramesWithoutImage(t *testing.T) {
	c := NewTextureCache(testInstall(), func(string) (*ebiten.Image, error) {
		return nil, nil
	})

	s, ok := c.Sheet("LakeTiles")
	if !ok {
		t.Fatalf("expected sheet")
	}
	if len(s.Frames) != 4 || s.Frames[3] != image.Rect(16, 16, 32, 32) {
		t.Fatalf("unexpected frames %v", s.Frames)
	}
	if s.Sprite(2) != nil || s.Sprite(512) != nil {
		t.Fatalf("expected no sprites without an image")
	}
	if again, _ := c.Sheet("LakeTiles"); again != s {
		t.Fatalf("expected the cached sheet")
	}
}
