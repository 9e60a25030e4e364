package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/timespinner-map/components"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

const viewItem = "view"

// SavedView is the viewer state stored on disk between runs.
type SavedView struct {
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Zoom        float64 `json:"zoom"`
	AreaID      int     `json:"areaId"`
	ShowGrid    bool    `json:"showGrid"`
	ShowObjects bool    `json:"showObjects"`
	ShowPanel   bool    `json:"showPanel"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for view storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "timespinner-map",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadView loads the last view from disk. It returns nil when nothing was
// saved or persistence is unavailable.
func LoadView() (*SavedView, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(viewItem)
	if err != nil {
		log.Printf("Warning: Could not load view: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}
	return decodeView(data)
}

func decodeView(data []byte) (*SavedView, error) {
	var view SavedView
	if err := json.Unmarshal(data, &view); err != nil {
		log.Printf("Warning: Could not parse saved view: %v", err)
		return nil, err
	}
	return &view, nil
}

// SaveView saves the view to disk
func SaveView(v *SavedView) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("Warning: Could not serialize view: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(viewItem, data); err != nil {
		log.Printf("Warning: Could not save view: %v", err)
		return err
	}
	return nil
}

// SaveCurrentView saves the camera and toggles of a running viewer.
func SaveCurrentView(e *ecs.ECS) {
	if v, ok := CaptureView(e); ok {
		_ = SaveView(v)
	}
}

// CaptureView snapshots the camera and toggles.
func CaptureView(e *ecs.ECS) (*SavedView, bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return nil, false
	}
	camera := components.Camera.Get(cameraEntry)
	settings := GetOrCreateSettings(e)

	v := &SavedView{
		X:           camera.Position.X,
		Y:           camera.Position.Y,
		Zoom:        camera.Zoom,
		ShowGrid:    settings.ShowGrid,
		ShowObjects: settings.ShowObjects,
		ShowPanel:   settings.ShowPanel,
	}
	if areaID, ok := CurrentArea(e); ok {
		v.AreaID = areaID
	}
	return v, true
}

// ApplySavedView restores a saved view. An area that no longer exists leaves
// the current area unchanged.
func ApplySavedView(e *ecs.ECS, saved *SavedView) {
	if saved == nil {
		return
	}

	if cameraEntry, ok := components.Camera.First(e.World); ok {
		camera := components.Camera.Get(cameraEntry)
		camera.Position = math.NewVec2(saved.X, saved.Y)
		if saved.Zoom > 0 {
			camera.Zoom = ClampZoom(saved.Zoom)
		}
		camera.Tween = nil
	}

	settings := GetOrCreateSettings(e)
	settings.ShowGrid = saved.ShowGrid
	settings.ShowObjects = saved.ShowObjects
	settings.ShowPanel = saved.ShowPanel

	if m, ok := getMap(e); ok {
		for i, id := range m.AreaIDs {
			if id == saved.AreaID {
				settings.AreaIndex = i
				break
			}
		}
	}
}
