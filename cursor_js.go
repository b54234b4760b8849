package main

type cursor string

const (
	cursorDefault   cursor = "default"
	cursorCrosshair cursor = "crosshair"
)

func (s *domSurface) SetCursor(c cursor) {
	s.canvas.Get("style").Set("cursor", string(c))
}
