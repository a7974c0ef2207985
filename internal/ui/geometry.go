package ui

import (
	"image"

	"sparse-life/pkg/core"
)

// windowFrame returns the four edge strips outlining a window of the given
// cell size at scale, each thickness pixels wide.
func windowFrame(window core.Size, scale, thickness int) []image.Rectangle {
	if window.W <= 0 || window.H <= 0 {
		return nil
	}
	if scale <= 0 {
		scale = 1
	}
	if thickness <= 0 {
		thickness = 1
	}
	w, h := window.W*scale, window.H*scale
	return []image.Rectangle{
		image.Rect(0, 0, w, thickness),
		image.Rect(0, h-thickness, w, h),
		image.Rect(0, 0, thickness, h),
		image.Rect(w-thickness, 0, w, h),
	}
}

// anchorRects returns one scaled cell rectangle per anchor inside bounds.
func anchorRects(anchors []core.Point, bounds core.Size, scale int) []image.Rectangle {
	if scale <= 0 {
		scale = 1
	}
	out := make([]image.Rectangle, 0, len(anchors))
	for _, p := range anchors {
		if p.X < 0 || p.Y < 0 || p.X >= bounds.W || p.Y >= bounds.H {
			continue
		}
		out = append(out, image.Rect(p.X*scale, p.Y*scale, (p.X+1)*scale, (p.Y+1)*scale))
	}
	return out
}
