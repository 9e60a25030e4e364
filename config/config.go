package config

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"

	"github.com/yohamta/donburi/ecs"
	"gopkg.in/yaml.v3"
)

// Default is the only render layer the viewer uses.
const Default ecs.LayerID = 0

// Config holds the window configuration.
type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// MapConfig describes the world grid the game lays rooms out on.
type MapConfig struct {
	TileSize   int `yaml:"tileSize"`
	RoomWidth  int `yaml:"roomWidth"`  // in tiles
	RoomHeight int `yaml:"roomHeight"` // in tiles
}

// RoomPixels is the size in pixels of one minimap grid cell.
func (m MapConfig) RoomPixels() (int, int) {
	return m.TileSize * m.RoomWidth, m.TileSize * m.RoomHeight
}

// CameraConfig contains pan and zoom tuning.
type CameraConfig struct {
	KeyPanSpeed  float64 `yaml:"keyPanSpeed"`  // screen pixels per tick
	WheelPan     float64 `yaml:"wheelPan"`     // screen pixels per wheel unit
	ZoomMin      float64 `yaml:"zoomMin"`
	ZoomMax      float64 `yaml:"zoomMax"`
	ZoomStep     float64 `yaml:"zoomStep"`     // multiplier per zoom action
	TweenSeconds float64 `yaml:"tweenSeconds"` // duration of a jump to an area
}

// ColorConfig holds the RGBA colours of everything the viewer draws that is
// not a sprite.
type ColorConfig struct {
	Background  [4]uint8 `yaml:"background"`
	TileGrid    [4]uint8 `yaml:"tileGrid"`
	RoomGrid    [4]uint8 `yaml:"roomGrid"`
	RoomOutline [4]uint8 `yaml:"roomOutline"`
	Event       [4]uint8 `yaml:"event"`
	Enemy       [4]uint8 `yaml:"enemy"`
	Item        [4]uint8 `yaml:"item"`
	Object      [4]uint8 `yaml:"object"` // objects with no category
	HUDText     [4]uint8 `yaml:"hudText"`
	HUDTextBg   [4]uint8 `yaml:"hudTextBg"`
}

// UIConfig contains HUD and panel layout.
type UIConfig struct {
	HUDFontSize   float64 `yaml:"hudFontSize"`
	SmallFontSize float64 `yaml:"smallFontSize"`
	HUDMargin     int     `yaml:"hudMargin"`
	PanelWidth    int     `yaml:"panelWidth"`
}

// LoadConfig tunes how the installation is read.
type LoadConfig struct {
	Concurrency   int `yaml:"concurrency"`   // parallel level loads, 0 for GOMAXPROCS
	ReloadDelayMS int `yaml:"reloadDelayMs"` // quiet period before a changed level is reloaded
}

type DebugConfig struct {
	Enabled     bool `yaml:"enabled"`
	ShowGrid    bool `yaml:"showGrid"`
	ShowObjects bool `yaml:"showObjects"`
	ShowPanel   bool `yaml:"showPanel"`
}

var C *Config
var Map MapConfig
var Camera CameraConfig
var Colors ColorConfig
var UI UIConfig
var Load LoadConfig
var Debug DebugConfig

func init() {
	C = &Config{
		Width:  800,
		Height: 640,
		Title:  "Timespinner Map",
	}

	Map = MapConfig{
		TileSize:   16,
		RoomWidth:  25,
		RoomHeight: 20,
	}

	Camera = CameraConfig{
		KeyPanSpeed:  8,
		WheelPan:     100,
		ZoomMin:      0.125,
		ZoomMax:      4,
		ZoomStep:     1.25,
		TweenSeconds: 0.6,
	}

	Colors = ColorConfig{
		Background:  [4]uint8{0, 0, 0, 255},
		TileGrid:    [4]uint8{32, 32, 32, 255},
		RoomGrid:    [4]uint8{0, 64, 0, 255},
		RoomOutline: [4]uint8{60, 90, 160, 255},
		Event:       [4]uint8{80, 200, 255, 200},
		Enemy:       [4]uint8{255, 70, 70, 200},
		Item:        [4]uint8{255, 215, 0, 200},
		Object:      [4]uint8{160, 160, 160, 160},
		HUDText:     [4]uint8{255, 255, 255, 255},
		HUDTextBg:   [4]uint8{0, 0, 0, 170},
	}

	UI = UIConfig{
		HUDFontSize:   14,
		SmallFontSize: 11,
		HUDMargin:     8,
		PanelWidth:    220,
	}

	Load = LoadConfig{
		Concurrency:   0,
		ReloadDelayMS: 250,
	}

	Debug = DebugConfig{
		Enabled:     false,
		ShowGrid:    true,
		ShowObjects: false,
		ShowPanel:   false,
	}
}

// RGBA converts a configured colour.
func RGBA(c [4]uint8) color.RGBA {
	return color.RGBA{c[0], c[1], c[2], c[3]}
}

// fileConfig is the layout of the override file. Sections and keys that are
// absent keep their current values.
type fileConfig struct {
	Window Config       `yaml:"window"`
	Map    MapConfig    `yaml:"map"`
	Camera CameraConfig `yaml:"camera"`
	Colors ColorConfig  `yaml:"colors"`
	UI     UIConfig     `yaml:"ui"`
	Load   LoadConfig   `yaml:"load"`
	Debug  DebugConfig  `yaml:"debug"`
}

// LoadFile applies the YAML overrides in path to the global configuration.
// Nothing is changed if the file cannot be read or decoded.
func LoadFile(path string) error {
	r, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("error reading config %s: %w", path, err)
	}
	defer r.Close()

	fc := fileConfig{
		Window: *C,
		Map:    Map,
		Camera: Camera,
		Colors: Colors,
		UI:     UI,
		Load:   Load,
		Debug:  Debug,
	}

	d := yaml.NewDecoder(r)
	d.KnownFields(true)
	if err := d.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("error reading config %s: %w", path, err)
	}
	if err := validate(&fc); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}

	C = &fc.Window
	Map, Camera, Colors, UI, Load, Debug = fc.Map, fc.Camera, fc.Colors, fc.UI, fc.Load, fc.Debug
	return nil
}

func validate(fc *fileConfig) error {
	window, m, camera := fc.Window, fc.Map, fc.Camera
	switch {
	case window.Width <= 0 || window.Height <= 0:
		return fmt.Errorf("window size %dx%d must be positive", window.Width, window.Height)
	case m.TileSize <= 0 || m.RoomWidth <= 0 || m.RoomHeight <= 0:
		return fmt.Errorf("map grid %d/%dx%d must be positive", m.TileSize, m.RoomWidth, m.RoomHeight)
	case camera.ZoomMin <= 0 || camera.ZoomMax < camera.ZoomMin:
		return fmt.Errorf("zoom range [%g, %g] is invalid", camera.ZoomMin, camera.ZoomMax)
	case camera.ZoomStep <= 1:
		return fmt.Errorf("zoom step %g must be greater than 1", camera.ZoomStep)
	}
	return nil
}
