package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"time"

	"github.com/automoto/timespinner-map/config"
	"github.com/automoto/timespinner-map/fonts"
	"github.com/automoto/timespinner-map/scenes"
	"github.com/automoto/timespinner-map/shared/install"
	"github.com/automoto/timespinner-map/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

// closer is implemented by scenes that save state when the window closes.
type closer interface {
	Close()
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() {
		if c, ok := g.scene.(closer); ok {
			c.Close()
		}
		return ebiten.Termination
	}
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <installation dir>\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	configPath := flag.String("config", "", "YAML file overriding the default configuration")
	watch := flag.Bool("watch", false, "Reload level files when they change")
	debug := flag.Bool("debug", false, "Start with the debug overlay enabled")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}
	root := flag.Arg(0)

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			log.Fatalf("[viewer] %v", err)
		}
	}
	if *debug {
		config.Debug.Enabled = true
	}

	if err := fonts.LoadDefaults(config.UI.HUDFontSize, config.UI.SmallFontSize); err != nil {
		log.Fatalf("[viewer] %v", err)
	}

	start := time.Now()
	inst, err := install.Load(context.Background(), root, install.Options{
		Concurrency: config.Load.Concurrency,
	})
	if err != nil {
		log.Fatalf("[viewer] loading %s: %v", root, err)
	}
	log.Printf("[viewer] read %d levels from %s in %s", len(inst.Levels), root, time.Since(start).Round(time.Millisecond))

	var watcher *install.Watcher
	if *watch {
		watcher, err = inst.Watch()
		if err != nil {
			log.Printf("[viewer] Warning: hot reload disabled: %v", err)
		} else {
			log.Printf("[viewer] watching %s", install.LevelsDir(root))
		}
	}

	// Initialize persistence and load the last view
	if err := systems.InitPersistence(); err != nil {
		log.Printf("[viewer] Warning: Could not initialize persistence: %v", err)
	}
	saved, _ := systems.LoadView()

	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	g := &Game{}
	g.ChangeScene(scenes.NewViewerScene(inst, watcher, saved))

	if err := ebiten.RunGame(g); err != nil {
		log.Fatalf("[viewer] %v", err)
	}
}
