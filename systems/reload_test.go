package systems

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/automoto/timespinner-map/components"
	cfg "github.com/automoto/timespinner-map/config"
	"github.com/automoto/timespinner-map/shared/install"
	"github.com/automoto/timespinner-map/systems/factory"
	"github.com/automoto/timespinner-map/tags"
	"github.com/yohamta/donburi"
)

func areaRoomBounds(w donburi.World, areaID int) []string {
	var out []string
	tags.Room.Each(w, func(e *donburi.Entry) {
		room := components.Room.Get(e)
		if room.AreaID == areaID {
			out = append(out, room.Bounds.String())
		}
	})
	return out
}

func TestReloadAreaRebuildsRooms(t *testing.T) {
	e, inst := newViewer(t)
	old := inst.Levels[2]

	// Twice as wide: the world grows to the right.
	writeCompressed(t, inst.LevelPath(2), levelDoc(2, 50))
	if !ReloadArea(e, 2) {
		t.Fatalf("expected reload to succeed")
	}
	if inst.Levels[2] == old {
		t.Fatalf("expected the level to be replaced")
	}
	if got := areaRoomBounds(e.World, 2); !reflect.DeepEqual(got, []string{"(2000,960)-(2800,1280)"}) {
		t.Fatalf("unexpected rooms %v", got)
	}
	if got := len(areaRoomBounds(e.World, 1)); got != 2 {
		t.Fatalf("expected area 1 untouched, got %d rooms", got)
	}

	m, _ := getMap(e)
	if m.World.Max.X != 2800 {
		t.Fatalf("expected world to grow, got %v", m.World)
	}
	spaceEntry, _ := components.Space.First(e.World)
	space := components.Space.Get(spaceEntry)
	if space.Width() != 7 {
		t.Fatalf("expected the space rebuilt 7 cells wide, got %d", space.Width())
	}

	moveCamera(e, 2600, 1100, 1)
	if got := roomIDs(VisibleRooms(e)); len(got) != 1 || got[0] != "2.0" {
		t.Fatalf("expected the widened room visible, got %v", got)
	}
}

func TestReloadAreaKeepsLevelOnError(t *testing.T) {
	e, inst := newViewer(t)
	old := inst.Levels[1]

	if err := os.WriteFile(inst.LevelPath(1), []byte("not zlib"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if ReloadArea(e, 1) {
		t.Fatalf("expected reload to fail")
	}
	if inst.Levels[1] != old {
		t.Fatalf("expected previous level kept")
	}
	if got := len(areaRoomBounds(e.World, 1)); got != 2 {
		t.Fatalf("expected rooms kept, got %d", got)
	}
	if ReloadArea(e, 42) {
		t.Fatalf("expected unknown area to be ignored")
	}
}

func TestDueAreas(t *testing.T) {
	now := time.Unix(1000, 0)
	pending := map[int]time.Time{
		5: now.Add(-time.Second),
		1: now.Add(-300 * time.Millisecond),
		3: now.Add(-100 * time.Millisecond),
	}
	if got := dueAreas(pending, now, 250*time.Millisecond); !reflect.DeepEqual(got, []int{1, 5}) {
		t.Fatalf("expected [1 5], got %v", got)
	}
	if got := dueAreas(pending, now, 0); !reflect.DeepEqual(got, []int{1, 3, 5}) {
		t.Fatalf("expected all areas, got %v", got)
	}
	if got := dueAreas(nil, now, 0); got != nil {
		t.Fatalf("expected nothing due, got %v", got)
	}
}

func TestUpdateReloadFromWatcher(t *testing.T) {
	e, inst := newViewer(t)
	delay := cfg.Load.ReloadDelayMS
	cfg.Load.ReloadDelayMS = 0
	t.Cleanup(func() { cfg.Load.ReloadDelayMS = delay })

	watcher, err := install.NewWatcher(install.LevelsDir(inst.Root))
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	t.Cleanup(func() { _ = watcher.Close() })
	factory.CreateReload(e, watcher)

	old := inst.Levels[1]
	writeCompressed(t, filepath.Join(install.LevelsDir(inst.Root), install.LevelFileName(1)), levelDoc(1, 25, 25, 25))

	deadline := time.Now().Add(5 * time.Second)
	for inst.Levels[1] == old {
		if time.Now().After(deadline) {
			t.Fatalf("level was not reloaded")
		}
		time.Sleep(20 * time.Millisecond)
		UpdateReload(e)
	}
	if n := len(inst.Levels[1].Rooms); n != 3 {
		t.Fatalf("expected 3 rooms in the reloaded level, got %d", n)
	}
}
