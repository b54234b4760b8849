package run

import (
	"bytes"
	"errors"
	"log"
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/seqsense/pcgol/mat"

	"github.com/seqsense/targetrange/config"
	"github.com/seqsense/targetrange/target"
)

type surfaceRecorder struct {
	lockErr   error
	locked    bool
	phases    []Phase
	flashes   []Flash
	score     int
	ticks     int
	final     int
	finalSeen bool
}

func (s *surfaceRecorder) RequestPointerLock() error {
	if s.lockErr != nil {
		return s.lockErr
	}
	s.locked = true
	return nil
}

func (s *surfaceRecorder) ExitPointerLock() { s.locked = false }
func (s *surfaceRecorder) ShowPhase(p Phase) { s.phases = append(s.phases, p) }
func (s *surfaceRecorder) ShowTimer(t int) { s.ticks = t }

func (s *surfaceRecorder) ShowScore(score int, f Flash) {
	s.score = score
	s.flashes = append(s.flashes, f)
}

func (s *surfaceRecorder) ShowFinalScore(score int) {
	s.final = score
	s.finalSeen = true
}

func newTestGame(t *testing.T) (*Game, *surfaceRecorder) {
	t.Helper()
	s := &surfaceRecorder{}
	return New(config.Default(), s, rand.New(rand.NewSource(1)), nil), s
}

func playing(t *testing.T) (*Game, *surfaceRecorder) {
	t.Helper()
	g, s := newTestGame(t)
	g.Dispatch(StartRequested{})
	g.Dispatch(BeginConfirmed{})
	if g.Phase() != Playing {
		t.Fatalf("Expected playing, got %s", g.Phase())
	}
	return g, s
}

// aimAt turns the camera to the centre of p.
func aimAt(g *Game, p mat.Vec3) {
	d := p.Sub(g.Camera())
	n := float64(d.Norm())
	g.look.SetOrientation(
		math.Atan2(-float64(d[0]), -float64(d[2])),
		math.Asin(float64(d[1])/n),
	)
}

func aimAway(g *Game) {
	g.look.SetOrientation(0, 0)
}

func TestGame_Start(t *testing.T) {
	g, s := newTestGame(t)
	if g.Phase() != Menu {
		t.Fatalf("Expected menu, got %s", g.Phase())
	}
	g.Dispatch(StartRequested{})

	if g.Phase() != AwaitingStart {
		t.Errorf("Expected awaiting start, got %s", g.Phase())
	}
	if n := g.TargetsRemaining(); n != 15 {
		t.Errorf("Expected 15 targets, got %d", n)
	}
	if o := g.Look().Orientation(); math.Abs(math.Abs(o.Yaw)-math.Pi) > 1e-9 || o.Pitch != 0 {
		t.Errorf("Camera must face the targets, got %+v", o)
	}
	if f := g.Look().Forward(); f[2] < 0.99 {
		t.Errorf("Camera must look towards +Z, got %v", f)
	}
	if g.Score() != 0 {
		t.Errorf("Expected score 0, got %d", g.Score())
	}
	if s.locked {
		t.Error("Pointer must not be locked before begin")
	}

	// Clicks before begin are ignored.
	g.Dispatch(Click{})
	if g.Score() != 0 || g.TargetsRemaining() != 15 {
		t.Error("Click while awaiting start must be a no-op")
	}
}

func TestGame_Begin(t *testing.T) {
	g, s := playing(t)
	if !s.locked {
		t.Error("Pointer must be locked")
	}
	if !g.Ticking() || !g.Animating() {
		t.Error("Timer and animation must run while playing")
	}
	if last := s.phases[len(s.phases)-1]; last != Playing {
		t.Errorf("Surface must show playing, got %s", last)
	}
}

func TestGame_PointerLockDenied(t *testing.T) {
	var buf bytes.Buffer
	s := &surfaceRecorder{lockErr: errors.New("denied")}
	g := New(config.Default(), s, rand.New(rand.NewSource(1)), log.New(&buf, "", 0))
	g.Dispatch(StartRequested{})
	g.Dispatch(BeginConfirmed{})

	if g.Phase() != Playing {
		t.Fatalf("Run must continue without pointer lock, got %s", g.Phase())
	}
	if !strings.Contains(buf.String(), "pointer lock denied") {
		t.Errorf("Denial must be logged, got %q", buf.String())
	}
	before := g.Look().Orientation()
	g.Dispatch(PointerDelta{DX: 100, DY: 0})
	if g.Look().Orientation() == before {
		t.Error("Camera control must work without pointer lock")
	}
}

func TestGame_ScoreSequence(t *testing.T) {
	g, s := playing(t)
	for i := 0; i < 40; i++ {
		g.Dispatch(TimerTick{})
	}
	if g.ElapsedTicks() != 40 {
		t.Fatalf("Expected 40 ticks, got %d", g.ElapsedTicks())
	}

	aimAt(g, g.Targets()[0].Position)
	if _, ok := g.Aim(); !ok {
		t.Fatal("Aim at a target must resolve a hit")
	}
	if n := g.TargetsRemaining(); n != 15 {
		t.Fatalf("Resolving must not remove targets, got %d", n)
	}
	g.Dispatch(Click{X: 12, Y: 34})
	if g.Score() != 100 {
		t.Errorf("Expected 100 after hit, got %d", g.Score())
	}
	if n := g.TargetsRemaining(); n != 14 {
		t.Errorf("Expected 14 targets, got %d", n)
	}

	aimAway(g)
	g.Dispatch(Click{})
	if g.Score() != 50 {
		t.Errorf("Expected 50 after miss, got %d", g.Score())
	}
	g.Dispatch(Click{})
	if g.Score() != 0 {
		t.Errorf("Expected 0 after second miss, got %d", g.Score())
	}
	g.Dispatch(Click{})
	if g.Score() != 0 {
		t.Errorf("Score must not go below 0, got %d", g.Score())
	}

	expected := []Flash{FlashHit, FlashMiss, FlashMiss, FlashMiss}
	got := s.flashes[len(s.flashes)-len(expected):]
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Flash %d: expected %d, got %d", i, expected[i], got[i])
		}
	}
	if g.Phase() != Playing {
		t.Errorf("Misses must not end the run, got %s", g.Phase())
	}
}

func TestGame_ClearAll(t *testing.T) {
	g, s := playing(t)
	for i := 0; i < 40; i++ {
		g.Dispatch(TimerTick{})
	}

	for n := 15; n > 0; n-- {
		if g.Phase() != Playing {
			t.Fatalf("Run ended with %d targets left", n)
		}
		aimAt(g, g.Targets()[0].Position)
		g.Dispatch(Click{})
		if r := g.TargetsRemaining(); r != n-1 {
			t.Fatalf("Expected %d targets, got %d", n-1, r)
		}
	}

	if g.Phase() != Finished {
		t.Fatalf("Expected finished, got %s", g.Phase())
	}
	if g.Score() != 1500 {
		t.Errorf("Expected score 1500, got %d", g.Score())
	}
	if g.FinalScore() != 1460 {
		t.Errorf("Expected final score 1460, got %d", g.FinalScore())
	}
	if !s.finalSeen || s.final != 1460 {
		t.Errorf("Final score must be shown, got %d", s.final)
	}
	if s.locked {
		t.Error("Pointer lock must be released")
	}
	if g.Ticking() || g.Animating() {
		t.Error("Timer and animation must stop after the run")
	}

	g.Dispatch(TimerTick{})
	if g.ElapsedTicks() != 40 {
		t.Errorf("Timer must not advance after finish, got %d", g.ElapsedTicks())
	}
	g.Dispatch(Click{})
	if g.Score() != 1500 {
		t.Errorf("Click after finish must be ignored, got %d", g.Score())
	}
}

func TestGame_FinalScoreFloor(t *testing.T) {
	g, _ := playing(t)
	for i := 0; i < 500; i++ {
		g.Dispatch(TimerTick{})
	}
	aimAt(g, g.Targets()[0].Position)
	g.Dispatch(Click{})
	g.Dispatch(Abort{})

	if g.Phase() != Finished {
		t.Fatalf("Abort must finish the run, got %s", g.Phase())
	}
	if g.FinalScore() != 0 {
		t.Errorf("Final score must be clamped to 0, got %d", g.FinalScore())
	}
}

func TestGame_TimerCap(t *testing.T) {
	cfg := config.Default()
	cfg.Scoring.MaxTicks = 5
	g := New(cfg, nil, rand.New(rand.NewSource(1)), nil)
	g.Dispatch(StartRequested{})
	g.Dispatch(BeginConfirmed{})
	for i := 0; i < 10; i++ {
		g.Dispatch(TimerTick{})
	}
	if g.ElapsedTicks() != 5 {
		t.Errorf("Expected timer capped at 5, got %d", g.ElapsedTicks())
	}
}

func TestGame_UnboundedHitReward(t *testing.T) {
	cfg := config.Default()
	cfg.Spawn.Stationary = 200
	cfg.Spawn.Moving = 0
	g := New(cfg, nil, rand.New(rand.NewSource(3)), nil)
	g.Dispatch(StartRequested{})
	g.Dispatch(BeginConfirmed{})
	for i := 0; i < 150; i++ {
		aimAt(g, g.Targets()[0].Position)
		g.Dispatch(Click{})
	}
	if g.Score() != 15000 {
		t.Errorf("Expected score 15000, got %d", g.Score())
	}
}

func TestGame_Animation(t *testing.T) {
	g, _ := newTestGame(t)
	g.Dispatch(StartRequested{})
	g.targets.Clear()
	id := g.targets.Add(target.Target{
		Kind:      target.Moving,
		Position:  mat.Vec3{0, 0, 8},
		Radius:    0.5,
		Speed:     0.01,
		Direction: 1,
		Bound:     4.5,
	})

	g.Dispatch(AnimationTick{})
	if tg, _ := g.targets.Get(id); tg.Position[0] != 0 {
		t.Errorf("Targets must not move before begin, got %f", tg.Position[0])
	}

	g.Dispatch(BeginConfirmed{})
	g.Dispatch(AnimationTick{})
	if tg, _ := g.targets.Get(id); tg.Position[0] <= 0 {
		t.Errorf("Targets must move while playing, got %f", tg.Position[0])
	}
}

func TestGame_InvalidTransitions(t *testing.T) {
	g, s := newTestGame(t)

	// Events in the menu.
	g.Dispatch(Click{})
	g.Dispatch(BeginConfirmed{})
	g.Dispatch(PlayAgain{})
	g.Dispatch(TimerTick{})
	g.Dispatch(AnimationTick{})
	g.Dispatch(Abort{})
	g.Dispatch(PointerDelta{DX: 100, DY: 100})
	if g.Phase() != Menu || g.Score() != 0 || g.ElapsedTicks() != 0 || g.TargetsRemaining() != 0 {
		t.Error("Events in the menu must be no-ops")
	}
	if o := g.Look().Orientation(); o.Yaw != 0 || o.Pitch != 0 {
		t.Errorf("Pointer movement in the menu must be ignored, got %+v", o)
	}
	if len(s.phases) != 0 {
		t.Errorf("No phase change expected, got %v", s.phases)
	}

	g.Dispatch(StartRequested{})
	g.Dispatch(BeginConfirmed{})
	aimAt(g, g.Targets()[0].Position)
	g.Dispatch(Click{})

	// Starting again while playing must not respawn or reset.
	g.Dispatch(StartRequested{})
	g.Dispatch(BeginConfirmed{})
	if g.Phase() != Playing || g.TargetsRemaining() != 14 || g.Score() != 100 {
		t.Errorf("Start while playing must be a no-op (phase %s, targets %d, score %d)",
			g.Phase(), g.TargetsRemaining(), g.Score())
	}
	g.Dispatch(PlayAgain{})
	if g.Phase() != Playing {
		t.Error("Play again while playing must be a no-op")
	}
}

func TestGame_PlayAgain(t *testing.T) {
	g, _ := playing(t)
	g.Dispatch(Abort{})
	g.Dispatch(StartRequested{})
	if g.Phase() != Finished {
		t.Fatalf("Start from finished must be a no-op, got %s", g.Phase())
	}
	g.Dispatch(PlayAgain{})
	if g.Phase() != Menu {
		t.Fatalf("Expected menu, got %s", g.Phase())
	}
	if g.TargetsRemaining() != 0 {
		t.Errorf("Targets must be cleared, got %d", g.TargetsRemaining())
	}

	g.Dispatch(StartRequested{})
	g.Dispatch(BeginConfirmed{})
	if g.Phase() != Playing || g.TargetsRemaining() != 15 || g.Score() != 0 || g.ElapsedTicks() != 0 {
		t.Error("Second run must start fresh")
	}
}

func TestGame_Sensitivity(t *testing.T) {
	g, _ := newTestGame(t)
	g.Dispatch(SensitivityChanged{Value: 0.002})
	if v := g.Look().Sensitivity(); v != 0.002 {
		t.Errorf("Expected 0.002, got %f", v)
	}
	g.Dispatch(StartRequested{})
	g.Dispatch(BeginConfirmed{})
	g.Dispatch(PointerDelta{DX: 0, DY: -100})
	if p := g.Look().Orientation().Pitch; math.Abs(p-0.2) > 1e-9 {
		t.Errorf("Expected pitch 0.2, got %f", p)
	}
}

func TestGame_OrientationSet(t *testing.T) {
	g, s := playing(t)
	aimAway(g)

	tg := g.Targets()[0]
	d := tg.Position.Sub(g.Camera())
	yaw := math.Atan2(-float64(d[0]), -float64(d[2]))
	pitch := math.Asin(float64(d[1]) / float64(d.Norm()))
	g.Dispatch(OrientationSet{Yaw: yaw, Pitch: pitch})

	o := g.Look().Orientation()
	if math.Abs(o.Yaw-yaw) > 1e-9 || math.Abs(o.Pitch-pitch) > 1e-9 {
		t.Fatalf("Expected {%f %f}, got %+v", yaw, pitch, o)
	}
	g.Dispatch(Click{})
	if s.score != 100 {
		t.Errorf("Shot after setting orientation must hit, score: %d", s.score)
	}

	g.Dispatch(OrientationSet{Yaw: 0, Pitch: 3})
	if p := g.Look().Orientation().Pitch; p != g.Look().MaxPitch() {
		t.Errorf("Pitch must be clamped, got %f", p)
	}
}
