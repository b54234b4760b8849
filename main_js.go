package main

import (
	"io"
	"log"
	"math/rand"
	"os"
	"strconv"
	"syscall/js"
	"time"

	webgl "github.com/seqsense/webgl-go"

	"github.com/seqsense/targetrange/run"
)

const configPath = "config.yaml"

type consoleRequest struct {
	line string
	res  chan consoleResult
}

type consoleResult struct {
	out string
	err error
}

func main() {
	doc := js.Global().Get("document")
	canvas := doc.Call("getElementById", "rangeCanvas")
	byID := func(id string) js.Value {
		return doc.Call("getElementById", id)
	}

	logger := log.New(
		io.MultiWriter(logWriter{div: byID("log")}, os.Stdout),
		"", log.Ltime|log.Lmicroseconds,
	)

	cfg := loadConfig(configPath, logger)
	surface := newDOMSurface(doc, canvas)
	g := run.New(cfg, surface, rand.New(rand.NewSource(time.Now().UnixNano())), logger)

	gl, err := webgl.New(canvas)
	if err != nil {
		logger.Print(err)
		return
	}
	showDebugInfo(gl, logger)
	rd, err := newRenderer(gl, cfg)
	if err != nil {
		logger.Print(err)
		return
	}

	on := func(target js.Value, name string, fn func(e js.Value)) {
		target.Call("addEventListener", name,
			js.FuncOf(func(this js.Value, args []js.Value) interface{} {
				fn(args[0])
				return nil
			}),
		)
	}

	chStart := make(chan struct{})
	on(byID("startButton"), "click", func(e js.Value) {
		e.Call("stopPropagation")
		chStart <- struct{}{}
	})
	chBegin := make(chan struct{})
	on(byID("clickToBegin"), "click", func(e js.Value) {
		e.Call("stopPropagation")
		chBegin <- struct{}{}
	})
	chPlayAgain := make(chan struct{})
	on(byID("playAgainButton"), "click", func(e js.Value) {
		e.Call("stopPropagation")
		chPlayAgain <- struct{}{}
	})
	chClick := make(chan run.Click)
	on(canvas, "click", func(e js.Value) {
		e.Call("preventDefault")
		if e.Get("button").Int() != 0 {
			return
		}
		chClick <- run.Click{
			X: e.Get("offsetX").Int(),
			Y: e.Get("offsetY").Int(),
		}
	})
	chMove := make(chan run.PointerDelta)
	on(doc, "mousemove", func(e js.Value) {
		chMove <- run.PointerDelta{
			DX: e.Get("movementX").Float(),
			DY: e.Get("movementY").Float(),
		}
	})
	chKey := make(chan string)
	on(doc, "keydown", func(e js.Value) {
		chKey <- e.Get("code").String()
	})
	chLockChange := make(chan struct{})
	on(doc, "pointerlockchange", func(e js.Value) {
		chLockChange <- struct{}{}
	})
	on(doc, "pointerlockerror", func(e js.Value) {
		logger.Print("pointer lock error")
	})

	slider := byID("sensitivitySlider")
	slider.Set("value", strconv.FormatFloat(cfg.Camera.Sensitivity, 'f', -1, 64))
	chSensitivity := make(chan float64)
	on(slider, "input", func(e js.Value) {
		v, err := strconv.ParseFloat(slider.Get("value").String(), 64)
		if err != nil {
			return
		}
		chSensitivity <- v
	})
	toggle := byID("textureToggle")
	toggle.Set("checked", cfg.Textures)
	chTextures := make(chan bool)
	on(toggle, "change", func(e js.Value) {
		chTextures <- toggle.Get("checked").Bool()
	})

	chResize := make(chan struct{})
	on(js.Global(), "resize", func(e js.Value) {
		chResize <- struct{}{}
	})
	chContextLost := make(chan struct{})
	on(canvas, "webglcontextlost", func(e js.Value) {
		e.Call("preventDefault")
		chContextLost <- struct{}{}
	})
	chContextRestored := make(chan struct{})
	on(canvas, "webglcontextrestored", func(e js.Value) {
		chContextRestored <- struct{}{}
	})

	chConsole := make(chan consoleRequest)
	js.Global().Set("targetrangeConsole",
		js.FuncOf(func(this js.Value, args []js.Value) interface{} {
			if len(args) != 1 {
				return errorToJS(errArgumentNumber)
			}
			req := consoleRequest{line: args[0].String(), res: make(chan consoleResult, 1)}
			chConsole <- req
			return consoleResultToJS(<-req.res)
		}),
	)
	cons := &console{game: g}

	chFrame := make(chan struct{})
	frame := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		go func() { chFrame <- struct{}{} }()
		return nil
	})
	var framePending bool

	timer := run.NewPeriodic(cfg.Scoring.TimerPeriod)
	defer timer.Stop()

	cg := &clickGuard{}
	var locked, contextLost bool

	for {
		if !contextLost {
			rd.Resize()
			rd.Render(g)
		}
		if g.Animating() && !framePending {
			framePending = true
			js.Global().Call("requestAnimationFrame", frame)
		}

		select {
		case <-chStart:
			g.Dispatch(run.StartRequested{})
		case <-chBegin:
			if g.Phase() == run.AwaitingStart {
				cg.Arm()
			}
			g.Dispatch(run.BeginConfirmed{})
		case e := <-chClick:
			if cg.Click() {
				g.Dispatch(e)
			}
		case e := <-chMove:
			g.Dispatch(e)
		case <-chPlayAgain:
			g.Dispatch(run.PlayAgain{})
		case v := <-chSensitivity:
			g.Dispatch(run.SensitivityChanged{Value: v})
		case v := <-chTextures:
			rd.SetTextured(v)
		case code := <-chKey:
			if code == "Escape" {
				g.Dispatch(run.Abort{})
			}
		case <-chLockChange:
			// The browser releases the lock on Escape without a keydown.
			wasLocked := locked
			locked = surface.PointerLocked()
			if wasLocked && !locked {
				g.Dispatch(run.Abort{})
			}
		case <-timer.Sync(g.Ticking()):
			g.Dispatch(run.TimerTick{})
		case <-chFrame:
			framePending = false
			g.Dispatch(run.AnimationTick{})
		case <-chResize:
		case req := <-chConsole:
			out, err := cons.Run(req.line)
			req.res <- consoleResult{out: out, err: err}
		case <-chContextLost:
			logger.Print(errContextLostEvent)
			contextLost = true
		case <-chContextRestored:
			nrd, err := newRenderer(gl, cfg)
			if err != nil {
				logger.Print(err)
				break
			}
			nrd.SetTextured(rd.textured)
			rd = nrd
			contextLost = false
			logger.Print("context restored")
		}
	}
}
