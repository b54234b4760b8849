package main

import (
	"fmt"
	"math"

	"github.com/seqsense/pcgol/mat"
	"github.com/seqsense/pcgol/pc"

	"github.com/seqsense/targetrange/config"
	"github.com/seqsense/targetrange/target"
)

var (
	roomLineColor  = mat.Vec3{0.53, 0.53, 0.53}
	floorLineColor = mat.Vec3{0.27, 0.27, 0.27}
	floorGridAt    = float32(1)
)

func vec3Buffer(ra pc.Vec3RandomAccessor) []float32 {
	buf := make([]float32, 0, ra.Len()*3)
	for i := 0; i < ra.Len(); i++ {
		p := ra.Vec3At(i)
		buf = append(buf, p[0], p[1], p[2])
	}
	return buf
}

// roomEdges returns the 12 edges of the room box as line pairs.
func roomEdges(r config.Room) pc.Vec3Slice {
	x, y, z := r.Width/2, r.Height/2, r.Depth/2
	c := [8]mat.Vec3{
		{-x, -y, -z}, {x, -y, -z}, {x, y, -z}, {-x, y, -z},
		{-x, -y, z}, {x, -y, z}, {x, y, z}, {-x, y, z},
	}
	edges := [12][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		{4, 5}, {5, 6}, {6, 7}, {7, 4},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	}
	out := make(pc.Vec3Slice, 0, 24)
	for _, e := range edges {
		out = append(out, c[e[0]], c[e[1]])
	}
	return out
}

// floorGrid returns lines across the floor every floorGridAt units.
func floorGrid(r config.Room) pc.Vec3Slice {
	x, y, z := r.Width/2, -r.Height/2, r.Depth/2
	var out pc.Vec3Slice
	for zi := -z + floorGridAt; zi < z; zi += floorGridAt {
		out = append(out, mat.Vec3{-x, y, zi}, mat.Vec3{x, y, zi})
	}
	for xi := -x + floorGridAt; xi < x; xi += floorGridAt {
		out = append(out, mat.Vec3{xi, y, -z}, mat.Vec3{xi, y, z})
	}
	return out
}

const (
	kindStationary float32 = 0
	kindMoving     float32 = 1
)

// targetAttrs returns kind and rotation per target, matching the
// vertex order of the positions.
func targetAttrs(ts []target.Target) []float32 {
	buf := make([]float32, 0, len(ts)*2)
	for _, t := range ts {
		k := kindStationary
		if t.Kind == target.Moving {
			k = kindMoving
		}
		buf = append(buf, k, t.Rotation)
	}
	return buf
}

const (
	zNear = 0.1
	zFar  = 100.0
)

// projection returns the perspective matrix for a vertical field of view in
// degrees. mat.Perspective takes the horizontal one.
func projection(fovDeg float64, width, height int) mat.Mat4 {
	if width <= 0 || height <= 0 {
		width, height = 1, 1
	}
	aspect := float64(width) / float64(height)
	half := math.Tan(fovDeg * math.Pi / 360)
	hfov := 2 * math.Atan(aspect*half)
	return mat.Perspective(float32(hfov), float32(aspect), zNear, zFar)
}

// pointScale converts a sphere radius into the numerator of the point size
// in pixels; the shader divides it by the view depth.
func pointScale(projection mat.Mat4, height int, radius float32) float32 {
	return projection[5] * float32(height) * radius
}

func formatTimer(ticks int) string {
	return fmt.Sprintf("%04d", ticks)
}

func formatScore(score int) string {
	return fmt.Sprintf("Score: %d", score)
}
