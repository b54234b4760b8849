// Package hit finds which target a shot from the camera strikes.
package hit

import (
	"math"

	"github.com/seqsense/pcgol/mat"

	"github.com/seqsense/targetrange/look"
	"github.com/seqsense/targetrange/target"
)

// Ray is a half line. Dir must be normalized.
type Ray struct {
	Origin, Dir mat.Vec3
}

// RayFromCamera aims through the centre of the screen.
func RayFromCamera(o look.Orientation, pos mat.Vec3) Ray {
	return Ray{Origin: pos, Dir: o.Forward()}
}

type Hit struct {
	ID       target.ID
	Distance float32
}

// Resolve returns the nearest target struck by the ray.
// Ties are broken by the lower id. Resolve does not modify anything.
func Resolve(ray Ray, targets []target.Target) (Hit, bool) {
	var best Hit
	found := false
	for _, t := range targets {
		d, ok := Sphere(ray, t.Position, t.Radius)
		if !ok {
			continue
		}
		if !found || d < best.Distance || (d == best.Distance && t.ID < best.ID) {
			best = Hit{ID: t.ID, Distance: d}
			found = true
		}
	}
	return best, found
}

// Sphere returns the distance along the ray to the first intersection with
// the sphere in front of the origin. An origin inside the sphere reports the
// exit point.
func Sphere(ray Ray, center mat.Vec3, radius float32) (float32, bool) {
	if radius <= 0 {
		return 0, false
	}
	rel := ray.Origin.Sub(center)
	b := rel.Dot(ray.Dir)
	c := rel.NormSq() - radius*radius
	if c > 0 && b > 0 {
		// Outside and pointing away.
		return 0, false
	}
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	sq := float32(math.Sqrt(float64(disc)))
	if t := -b - sq; t >= 0 {
		return t, true
	}
	if t := -b + sq; t >= 0 {
		return t, true
	}
	return 0, false
}
