package main

import (
	"syscall/js"

	"github.com/seqsense/targetrange/run"
)

const (
	flashDurationMs = 200
	flashHitColor   = "#FFD700"
	flashMissColor  = "#FF4444"
)

// domSurface shows the run state on the page.
type domSurface struct {
	doc    js.Value
	canvas js.Value

	menu, begin, hud, finished js.Value
	score, timer, finalScore   js.Value

	flashTimeout js.Value
	resetFlash   js.Func
}

func newDOMSurface(doc, canvas js.Value) *domSurface {
	byID := func(id string) js.Value {
		return doc.Call("getElementById", id)
	}
	s := &domSurface{
		doc:        doc,
		canvas:     canvas,
		menu:       byID("mainMenu"),
		begin:      byID("clickToBegin"),
		hud:        byID("hud"),
		finished:   byID("finished"),
		score:      byID("score"),
		timer:      byID("timer"),
		finalScore: byID("finalScore"),
	}
	s.resetFlash = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		s.score.Get("style").Set("color", "")
		s.flashTimeout = js.Undefined()
		return nil
	})
	return s
}

func (s *domSurface) RequestPointerLock() error {
	if s.canvas.Get("requestPointerLock").IsUndefined() {
		return errPointerLockUnsupported
	}
	s.canvas.Call("requestPointerLock")
	return nil
}

func (s *domSurface) ExitPointerLock() {
	if s.doc.Get("exitPointerLock").IsUndefined() {
		return
	}
	s.doc.Call("exitPointerLock")
}

// PointerLocked reports whether the canvas holds the pointer lock.
func (s *domSurface) PointerLocked() bool {
	return s.doc.Get("pointerLockElement").Equal(s.canvas)
}

func (s *domSurface) ShowPhase(p run.Phase) {
	show := func(v js.Value, visible bool) {
		if visible {
			v.Get("classList").Call("remove", "hidden")
		} else {
			v.Get("classList").Call("add", "hidden")
		}
	}
	show(s.menu, p == run.Menu)
	show(s.begin, p == run.AwaitingStart)
	show(s.hud, p == run.Playing)
	show(s.finished, p == run.Finished)

	body := s.doc.Get("body").Get("classList")
	if p == run.Playing {
		body.Call("add", "playing")
		s.SetCursor(cursorCrosshair)
	} else {
		body.Call("remove", "playing")
		s.SetCursor(cursorDefault)
	}
}

func (s *domSurface) ShowScore(score int, f run.Flash) {
	s.score.Set("innerText", formatScore(score))
	var color string
	switch f {
	case run.FlashHit:
		color = flashHitColor
	case run.FlashMiss:
		color = flashMissColor
	default:
		return
	}
	s.score.Get("style").Set("color", color)
	if !s.flashTimeout.IsUndefined() {
		js.Global().Call("clearTimeout", s.flashTimeout)
	}
	s.flashTimeout = js.Global().Call("setTimeout", s.resetFlash, flashDurationMs)
}

func (s *domSurface) ShowTimer(ticks int) {
	s.timer.Set("innerText", formatTimer(ticks))
}

func (s *domSurface) ShowFinalScore(score int) {
	s.finalScore.Set("innerText", formatScore(score))
}
