package main

import (
	"github.com/seqsense/pcgol/mat"
	webgl "github.com/seqsense/webgl-go"

	"github.com/seqsense/targetrange/config"
	"github.com/seqsense/targetrange/run"
)

const (
	aVertexPosition = 0
	aVertexAttr     = 1

	checkerScale = 8
)

type renderer struct {
	gl *webgl.WebGL

	programRoom, programTarget webgl.Program

	roomProjection, roomModelView, roomColor webgl.Location
	targetProjection, targetModelView        webgl.Location
	targetPointScale, targetTextured         webgl.Location
	targetCheckerScale                       webgl.Location

	roomBuf, gridBuf, targetPosBuf, targetAttrBuf webgl.Buffer
	nRoom, nGrid, nTargets                        int

	width, height    int
	projectionMatrix mat.Mat4
	fov              float64
	radius           float32
	textured         bool
}

func newRenderer(gl *webgl.WebGL, cfg *config.Config) (*renderer, error) {
	programRoom, err := buildProgram(gl, "room", vsRoomSource, fsRoomSource)
	if err != nil {
		return nil, err
	}
	programTarget, err := buildProgram(gl, "target", vsTargetSource, fsTargetSource)
	if err != nil {
		return nil, err
	}

	r := &renderer{
		gl:            gl,
		programRoom:   programRoom,
		programTarget: programTarget,

		roomProjection: gl.GetUniformLocation(programRoom, "uProjectionMatrix"),
		roomModelView:  gl.GetUniformLocation(programRoom, "uModelViewMatrix"),
		roomColor:      gl.GetUniformLocation(programRoom, "uColor"),

		targetProjection:   gl.GetUniformLocation(programTarget, "uProjectionMatrix"),
		targetModelView:    gl.GetUniformLocation(programTarget, "uModelViewMatrix"),
		targetPointScale:   gl.GetUniformLocation(programTarget, "uPointScale"),
		targetTextured:     gl.GetUniformLocation(programTarget, "uTextured"),
		targetCheckerScale: gl.GetUniformLocation(programTarget, "uCheckerScale"),

		roomBuf:       gl.CreateBuffer(),
		gridBuf:       gl.CreateBuffer(),
		targetPosBuf:  gl.CreateBuffer(),
		targetAttrBuf: gl.CreateBuffer(),

		fov:      cfg.Camera.Fov,
		radius:   cfg.Spawn.TargetSize / 2,
		textured: cfg.Textures,
	}

	room := roomEdges(cfg.Room)
	r.nRoom = room.Len()
	gl.BindBuffer(gl.ARRAY_BUFFER, r.roomBuf)
	gl.BufferData(gl.ARRAY_BUFFER, webgl.Float32ArrayBuffer(vec3Buffer(room)), gl.STATIC_DRAW)

	grid := floorGrid(cfg.Room)
	r.nGrid = grid.Len()
	if r.nGrid > 0 {
		gl.BindBuffer(gl.ARRAY_BUFFER, r.gridBuf)
		gl.BufferData(gl.ARRAY_BUFFER, webgl.Float32ArrayBuffer(vec3Buffer(grid)), gl.STATIC_DRAW)
	}

	gl.ClearColor(0.0, 0.0, 0.0, 1.0)
	gl.ClearDepth(1.0)
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.EnableVertexAttribArray(aVertexPosition)

	return r, nil
}

// Resize follows the canvas client size and reports whether it changed.
func (r *renderer) Resize() bool {
	width := r.gl.Canvas.ClientWidth()
	height := r.gl.Canvas.ClientHeight()
	if width == r.width && height == r.height {
		return false
	}
	r.width, r.height = width, height
	r.gl.Canvas.SetWidth(width)
	r.gl.Canvas.SetHeight(height)
	r.projectionMatrix = projection(r.fov, width, height)

	r.gl.UseProgram(r.programRoom)
	r.gl.UniformMatrix4fv(r.roomProjection, false, r.projectionMatrix)
	r.gl.UseProgram(r.programTarget)
	r.gl.UniformMatrix4fv(r.targetProjection, false, r.projectionMatrix)
	r.gl.Uniform1f(r.targetPointScale, pointScale(r.projectionMatrix, height, r.radius))
	r.gl.Viewport(0, 0, width, height)
	return true
}

func (r *renderer) SetTextured(textured bool) {
	r.textured = textured
}

// Render draws the room and the live targets of g.
func (r *renderer) Render(g *run.Game) {
	gl := r.gl
	modelViewMatrix := g.Look().ViewMatrix(g.Camera())

	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.UseProgram(r.programRoom)
	gl.UniformMatrix4fv(r.roomModelView, false, modelViewMatrix)
	gl.Uniform3fv(r.roomColor, roomLineColor)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.roomBuf)
	gl.VertexAttribPointer(aVertexPosition, 3, gl.FLOAT, false, 3*4, 0)
	gl.DrawArrays(gl.LINES, 0, r.nRoom)
	if r.nGrid > 0 {
		gl.Uniform3fv(r.roomColor, floorLineColor)
		gl.BindBuffer(gl.ARRAY_BUFFER, r.gridBuf)
		gl.VertexAttribPointer(aVertexPosition, 3, gl.FLOAT, false, 3*4, 0)
		gl.DrawArrays(gl.LINES, 0, r.nGrid)
	}

	ts := g.Targets()
	r.nTargets = len(ts)
	if r.nTargets == 0 {
		return
	}
	gl.UseProgram(r.programTarget)
	gl.EnableVertexAttribArray(aVertexAttr)
	gl.UniformMatrix4fv(r.targetModelView, false, modelViewMatrix)
	if r.textured {
		gl.Uniform1i(r.targetTextured, 1)
	} else {
		gl.Uniform1i(r.targetTextured, 0)
	}
	gl.Uniform1f(r.targetCheckerScale, checkerScale)

	gl.BindBuffer(gl.ARRAY_BUFFER, r.targetPosBuf)
	gl.BufferData(gl.ARRAY_BUFFER, webgl.Float32ArrayBuffer(vec3Buffer(g.Positions())), gl.STATIC_DRAW)
	gl.VertexAttribPointer(aVertexPosition, 3, gl.FLOAT, false, 3*4, 0)

	gl.BindBuffer(gl.ARRAY_BUFFER, r.targetAttrBuf)
	gl.BufferData(gl.ARRAY_BUFFER, webgl.Float32ArrayBuffer(targetAttrs(ts)), gl.STATIC_DRAW)
	gl.VertexAttribPointer(aVertexAttr, 2, gl.FLOAT, false, 2*4, 0)

	gl.DrawArrays(gl.POINTS, 0, r.nTargets)
}
