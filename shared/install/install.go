// Package install locates and loads the data files of a game installation.
// It takes an installation root and knows the Content directory layout; the
// area to level file naming policy can be replaced by callers.
package install

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/automoto/timespinner-map/shared/atlas"
	"github.com/automoto/timespinner-map/shared/leveldata"
	"github.com/automoto/timespinner-map/shared/minimap"
	"golang.org/x/sync/errgroup"
)

const (
	contentDir      = "Content"
	levelsDir       = "Levels"
	minimapFile     = "Minimap.dat"
	textureDatabase = "TextureDatabase.dat"
)

// LevelFileName is the default area to level file policy. Areas 17 and 18
// have named files; every other area uses Level_NN.dat.
func LevelFileName(areaID int) string {
	switch areaID {
	case 17:
		return "Nexus.dat"
	case 18:
		return "Debug.dat"
	}
	return fmt.Sprintf("Level_%02d.dat", areaID)
}

// Options tune Load. The zero value uses LevelFileName and GOMAXPROCS
// concurrent level loads.
type Options struct {
	LevelFile   func(areaID int) string
	Concurrency int
}

// Install is a loaded game installation.
type Install struct {
	Root     string
	Minimap  *minimap.Minimap
	Textures *atlas.TextureDatabase
	Levels   map[int]*leveldata.Level

	levelFile func(areaID int) string
}

// Paths of the data files below root.
func MinimapPath(root string) string {
	return filepath.Join(root, contentDir, levelsDir, minimapFile)
}

func TextureDatabasePath(root string) string {
	return filepath.Join(root, contentDir, textureDatabase)
}

func LevelsDir(root string) string {
	return filepath.Join(root, contentDir, levelsDir)
}

// Load reads the minimap, the texture database and the level of every minimap
// area. Levels are loaded concurrently; the first failure cancels the rest.
func Load(ctx context.Context, root string, opts Options) (*Install, error) {
	if opts.LevelFile == nil {
		opts.LevelFile = LevelFileName
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = runtime.GOMAXPROCS(0)
	}

	mm, err := minimap.Load(MinimapPath(root))
	if err != nil {
		return nil, err
	}
	textures, err := atlas.Load(TextureDatabasePath(root))
	if err != nil {
		return nil, err
	}

	inst := &Install{
		Root:      root,
		Minimap:   mm,
		Textures:  textures,
		Levels:    make(map[int]*leveldata.Level, len(mm.Areas)),
		levelFile: opts.LevelFile,
	}

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Concurrency)
	for _, area := range mm.Areas {
		areaID := area.ID
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			level, err := inst.ReloadLevel(areaID)
			if err != nil {
				return err
			}
			mu.Lock()
			inst.Levels[areaID] = level
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return inst, nil
}

// LevelPath is the level file of an area.
func (inst *Install) LevelPath(areaID int) string {
	return filepath.Join(LevelsDir(inst.Root), inst.levelFile(areaID))
}

// ReloadLevel parses an area's level file again. The installation is not
// modified; callers swap the result in themselves.
func (inst *Install) ReloadLevel(areaID int) (*leveldata.Level, error) {
	level, err := leveldata.Load(inst.LevelPath(areaID))
	if err != nil {
		return nil, fmt.Errorf("area %d: %w", areaID, err)
	}
	return level, nil
}

// AreaForLevelFile maps a level file name back to its minimap area.
func (inst *Install) AreaForLevelFile(name string) (int, bool) {
	base := filepath.Base(name)
	for _, area := range inst.Minimap.Areas {
		if inst.levelFile(area.ID) == base {
			return area.ID, true
		}
	}
	return 0, false
}

// AtlasImagePath is the PNG backing an atlas. Content paths may use either
// slash style.
func (inst *Install) AtlasImagePath(a *atlas.Atlas) string {
	rel := filepath.FromSlash(strings.ReplaceAll(a.ContentPath, `\`, "/"))
	return filepath.Join(inst.Root, contentDir, rel+".png")
}

// AreaIDs returns the minimap area ids in ascending order.
func (inst *Install) AreaIDs() []int {
	ids := make([]int, 0, len(inst.Minimap.Areas))
	for _, area := range inst.Minimap.Areas {
		ids = append(ids, area.ID)
	}
	sort.Ints(ids)
	return ids
}
