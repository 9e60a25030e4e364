// Package assets loads the atlas images of a game installation and slices
// them into per-sprite images.
package assets

import (
	"image"
	"log"

	"github.com/automoto/timespinner-map/shared/atlas"
	"github.com/automoto/timespinner-map/shared/install"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Sheet is a loaded atlas image with its expanded frames.
type Sheet struct {
	Atlas  *atlas.Atlas
	Image  *ebiten.Image
	Frames []image.Rectangle

	// sprites caches sub-images so each sprite is sliced once.
	sprites map[int]*ebiten.Image
}

// Sprite returns the sub-image for a tile id, or nil when the id has no frame.
func (s *Sheet) Sprite(id int) *ebiten.Image {
	if img, ok := s.sprites[id]; ok {
		return img
	}
	r, ok := atlas.FrameAt(s.Frames, id)
	if !ok || s.Image == nil {
		return nil
	}
	img := s.Image.SubImage(r).(*ebiten.Image)
	s.sprites[id] = img
	return img
}

// ImageLoader reads an image file into an ebiten image.
type ImageLoader func(path string) (*ebiten.Image, error)

// LoadImageFile is the default ImageLoader.
func LoadImageFile(path string) (*ebiten.Image, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	return img, err
}

// TextureCache lazily loads one Sheet per tileset name. Tilesets that fail to
// load are remembered and reported once.
type TextureCache struct {
	inst   *install.Install
	load   ImageLoader
	sheets map[string]*Sheet
	failed map[string]struct{}
}

func NewTextureCache(inst *install.Install, load ImageLoader) *TextureCache {
	if load == nil {
		load = LoadImageFile
	}
	return &TextureCache{
		inst:   inst,
		load:   load,
		sheets: make(map[string]*Sheet),
		failed: make(map[string]struct{}),
	}
}

// Sheet returns the sheet for a room's tileset. The second result is false
// when the tileset is unknown or its image could not be loaded.
func (c *TextureCache) Sheet(tileset string) (*Sheet, bool) {
	if s, ok := c.sheets[tileset]; ok {
		return s, true
	}
	if _, ok := c.failed[tileset]; ok {
		return nil, false
	}

	a, ok := c.inst.Textures.Atlas(tileset)
	if !ok {
		log.Printf("Warning: no atlas named %q in the texture database", tileset)
		c.failed[tileset] = struct{}{}
		return nil, false
	}

	path := c.inst.AtlasImagePath(a)
	img, err := c.load(path)
	if err != nil {
		log.Printf("Warning: could not load atlas image %s: %v", path, err)
		c.failed[tileset] = struct{}{}
		return nil, false
	}

	s := &Sheet{
		Atlas:   a,
		Image:   img,
		Frames:  atlas.ExpandFrames(*a),
		sprites: make(map[int]*ebiten.Image),
	}
	c.sheets[tileset] = s
	return s, true
}

// Preload loads every atlas named by tilesets, returning how many loaded.
func (c *TextureCache) Preload(tilesets []string) int {
	n := 0
	for _, name := range tilesets {
		if _, ok := c.Sheet(name); ok {
			n++
		}
	}
	return n
}
