// Package run drives a shooting run from the menu to the final score.
package run

import (
	"io"
	"log"
	"math"
	"math/rand"

	"github.com/seqsense/pcgol/mat"
	"github.com/seqsense/pcgol/pc"

	"github.com/seqsense/targetrange/config"
	"github.com/seqsense/targetrange/hit"
	"github.com/seqsense/targetrange/look"
	"github.com/seqsense/targetrange/target"
)

type Phase int

const (
	Menu Phase = iota
	AwaitingStart
	Playing
	Finished
)

func (p Phase) String() string {
	switch p {
	case Menu:
		return "menu"
	case AwaitingStart:
		return "awaiting start"
	case Playing:
		return "playing"
	case Finished:
		return "finished"
	}
	return "unknown"
}

type Flash int

const (
	FlashNone Flash = iota
	FlashHit
	FlashMiss
)

// Surface is the user interface the game reports to.
type Surface interface {
	RequestPointerLock() error
	ExitPointerLock()
	ShowPhase(p Phase)
	ShowScore(score int, f Flash)
	ShowTimer(ticks int)
	ShowFinalScore(score int)
}

type nopSurface struct{}

func (nopSurface) RequestPointerLock() error { return nil }
func (nopSurface) ExitPointerLock() {}
func (nopSurface) ShowPhase(Phase) {}
func (nopSurface) ShowScore(int, Flash) {}
func (nopSurface) ShowTimer(int) {}
func (nopSurface) ShowFinalScore(int) {}

// Game is the state of one player session. It is not safe for concurrent
// use; events must be dispatched from a single goroutine.
type Game struct {
	cfg     *config.Config
	surface Surface
	logger  *log.Logger

	look    *look.Controller
	targets *target.Registry
	camera  mat.Vec3

	phase   Phase
	score   int
	elapsed int
	final   int
}

// New creates a game in the menu phase. surface and logger may be nil.
func New(cfg *config.Config, surface Surface, rnd *rand.Rand, logger *log.Logger) *Game {
	if surface == nil {
		surface = nopSurface{}
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Game{
		cfg:     cfg,
		surface: surface,
		logger:  logger,
		look:    look.New(cfg.Camera.Sensitivity, cfg.MaxPitch()),
		targets: target.NewRegistry(rnd, cfg.Spawn),
		camera:  mat.NewVec3(0, 0, -cfg.Room.Depth/2+cfg.Camera.Inset),
	}
}

// Dispatch applies one event. Events which are not valid in the current
// phase are ignored.
func (g *Game) Dispatch(e Event) {
	switch e := e.(type) {
	case StartRequested:
		g.start()
	case BeginConfirmed:
		g.begin()
	case Click:
		g.click()
	case PointerDelta:
		if g.phase == Playing {
			g.look.PointerDelta(e.DX, e.DY)
		}
	case SensitivityChanged:
		g.look.SetSensitivity(e.Value)
	case OrientationSet:
		g.look.SetOrientation(e.Yaw, e.Pitch)
	case PlayAgain:
		g.playAgain()
	case TimerTick:
		g.timerTick()
	case AnimationTick:
		if g.phase == Playing {
			g.targets.Tick()
		}
	case Abort:
		if g.phase == Playing {
			g.finish()
		}
	}
}

func (g *Game) setPhase(p Phase) {
	g.logger.Printf("phase: %s -> %s", g.phase, p)
	g.phase = p
	g.surface.ShowPhase(p)
}

func (g *Game) start() {
	if g.phase != Menu {
		return
	}
	g.targets.Spawn(g.cfg.Spawn.Stationary, g.cfg.Spawn.Moving, g.cfg.Room)
	// Face the targets at the far end of the room.
	g.look.SetOrientation(math.Pi, 0)
	g.score = 0
	g.elapsed = 0
	g.final = 0
	g.surface.ShowScore(g.score, FlashNone)
	g.surface.ShowTimer(g.elapsed)
	g.setPhase(AwaitingStart)
}

func (g *Game) begin() {
	if g.phase != AwaitingStart {
		return
	}
	g.score = 0
	g.elapsed = 0
	g.surface.ShowScore(g.score, FlashNone)
	g.surface.ShowTimer(g.elapsed)
	if err := g.surface.RequestPointerLock(); err != nil {
		g.logger.Printf("pointer lock denied: %v", err)
	}
	g.setPhase(Playing)
}

// Aim resolves a shot at the current orientation without applying it.
func (g *Game) Aim() (hit.Hit, bool) {
	return hit.Resolve(
		hit.RayFromCamera(g.look.Orientation(), g.camera),
		g.targets.Targets(),
	)
}

func (g *Game) click() {
	if g.phase != Playing {
		return
	}
	h, ok := g.Aim()
	if !ok {
		g.score -= g.cfg.Scoring.MissPenalty
		if g.score < 0 {
			g.score = 0
		}
		g.surface.ShowScore(g.score, FlashMiss)
		return
	}
	g.targets.Remove(h.ID)
	g.score += g.cfg.Scoring.HitReward
	g.surface.ShowScore(g.score, FlashHit)
	if g.targets.Count() == 0 {
		g.finish()
	}
}

func (g *Game) timerTick() {
	if g.phase != Playing {
		return
	}
	if g.elapsed < g.cfg.Scoring.MaxTicks {
		g.elapsed++
	}
	g.surface.ShowTimer(g.elapsed)
}

func (g *Game) finish() {
	g.final = g.score - g.elapsed
	if g.final < 0 {
		g.final = 0
	}
	g.surface.ExitPointerLock()
	g.surface.ShowFinalScore(g.final)
	g.setPhase(Finished)
	g.logger.Printf("final score: %d (score %d, time %d)", g.final, g.score, g.elapsed)
}

func (g *Game) playAgain() {
	if g.phase != Finished {
		return
	}
	g.targets.Clear()
	g.setPhase(Menu)
}

func (g *Game) Phase() Phase {
	return g.phase
}

func (g *Game) Score() int {
	return g.score
}

func (g *Game) ElapsedTicks() int {
	return g.elapsed
}

// FinalScore is the score with the time penalty applied. It is only
// meaningful in the Finished phase.
func (g *Game) FinalScore() int {
	return g.final
}

func (g *Game) TargetsRemaining() int {
	return g.targets.Count()
}

func (g *Game) Targets() []target.Target {
	return g.targets.Targets()
}

// Positions returns target centres in the order of Targets.
func (g *Game) Positions() pc.Vec3Slice {
	return g.targets.Positions()
}

func (g *Game) Look() *look.Controller {
	return g.look
}

func (g *Game) Camera() mat.Vec3 {
	return g.camera
}

func (g *Game) Config() *config.Config {
	return g.cfg
}

// Ticking reports whether the timer must be running.
func (g *Game) Ticking() bool {
	return g.phase == Playing
}

// Animating reports whether animation frames must keep being requested.
func (g *Game) Animating() bool {
	return g.phase == Playing
}
