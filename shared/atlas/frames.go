package atlas

import "image"

// ExpandFrames slices an atlas into one rectangle per sprite. Run descriptors
// are expanded in document order, so the result is indexed by tile id.
func ExpandFrames(a Atlas) []image.Rectangle {
	total := 0
	for _, f := range a.Frames {
		if f.Count > 0 {
			total += f.Count
		}
	}

	rects := make([]image.Rectangle, 0, total)
	for _, f := range a.Frames {
		rects = expandRun(rects, f)
	}
	return rects
}

// expandRun appends the Count rectangles of one run. The cursor moves right
// by one frame width per sprite and wraps to a new row after RowWidth sprites.
func expandRun(rects []image.Rectangle, f Frame) []image.Rectangle {
	w, h := f.FrameSize.X, f.FrameSize.Y
	x, y := f.StartCoordinates.X, f.StartCoordinates.Y
	col := 0
	for i := 0; i < f.Count; i++ {
		rects = append(rects, image.Rect(x, y, x+w, y+h))
		x += w
		col++
		if col == f.RowWidth {
			col = 0
			x = rowStartX(f)
			y += h
		}
	}
	return rects
}

// rowStartX is where a wrapped row begins. Runs that do not reuse their start
// x are assumed to restart at the left edge of the atlas; this matches the
// tile atlases but has not been confirmed for the other sheets.
func rowStartX(f Frame) int {
	if f.DoesNewRowUseStartX {
		return f.StartCoordinates.X
	}
	return 0
}

// FrameAt returns the rectangle for a sprite id, or false when the id is out
// of range (including ids with no visual representation).
func FrameAt(frames []image.Rectangle, id int) (image.Rectangle, bool) {
	if id < 0 || id >= len(frames) {
		return image.Rectangle{}, false
	}
	return frames[id], true
}
