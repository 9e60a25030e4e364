package systems

import (
	"image"
	gomath "math"

	"github.com/automoto/timespinner-map/components"
	cfg "github.com/automoto/timespinner-map/config"
	"github.com/yohamta/donburi/features/math"
)

// Screen space is the fixed layout size; world space is game pixels with the
// camera position at the centre of the screen.

func screenCentre() math.Vec2 {
	return math.NewVec2(float64(cfg.C.Width)/2, float64(cfg.C.Height)/2)
}

// WorldToScreen converts a world point to screen coordinates.
func WorldToScreen(camera *components.CameraData, p math.Vec2) math.Vec2 {
	c := screenCentre()
	return math.NewVec2(
		(p.X-camera.Position.X)*camera.Zoom+c.X,
		(p.Y-camera.Position.Y)*camera.Zoom+c.Y,
	)
}

// ScreenToWorld converts a screen point to world coordinates.
func ScreenToWorld(camera *components.CameraData, s math.Vec2) math.Vec2 {
	c := screenCentre()
	return math.NewVec2(
		(s.X-c.X)/camera.Zoom+camera.Position.X,
		(s.Y-c.Y)/camera.Zoom+camera.Position.Y,
	)
}

// ViewRect is the world rectangle visible on screen, rounded outwards.
func ViewRect(camera *components.CameraData) image.Rectangle {
	tl := ScreenToWorld(camera, math.Vec2{})
	br := ScreenToWorld(camera, math.NewVec2(float64(cfg.C.Width), float64(cfg.C.Height)))
	return image.Rect(
		int(gomath.Floor(tl.X)), int(gomath.Floor(tl.Y)),
		int(gomath.Ceil(br.X)), int(gomath.Ceil(br.Y)),
	)
}

// ClampZoom limits a zoom level to the configured range.
func ClampZoom(z float64) float64 {
	return gomath.Max(cfg.Camera.ZoomMin, gomath.Min(cfg.Camera.ZoomMax, z))
}

// ZoomAround changes the zoom while keeping the world point under anchor
// (a screen point) fixed.
func ZoomAround(camera *components.CameraData, zoom float64, anchor math.Vec2) {
	zoom = ClampZoom(zoom)
	fixed := ScreenToWorld(camera, anchor)
	c := screenCentre()
	camera.Zoom = zoom
	camera.Position = math.NewVec2(
		fixed.X-(anchor.X-c.X)/zoom,
		fixed.Y-(anchor.Y-c.Y)/zoom,
	)
}

// PanScreen moves the camera by a distance given in screen pixels.
func PanScreen(camera *components.CameraData, dx, dy float64) {
	camera.Position.X += dx / camera.Zoom
	camera.Position.Y += dy / camera.Zoom
}

// gridLines returns the world coordinates of the multiples of step within
// [lo, hi].
func gridLines(lo, hi float64, step int) []float64 {
	if step <= 0 || hi < lo {
		return nil
	}
	s := float64(step)
	first := gomath.Ceil(lo/s) * s
	var lines []float64
	for v := first; v <= hi; v += s {
		lines = append(lines, v)
	}
	return lines
}

func vec(p image.Point) math.Vec2 {
	return math.NewVec2(float64(p.X), float64(p.Y))
}
