// Package look integrates pointer motion into a first-person camera
// orientation.
package look

import (
	"math"
	"sync"

	"github.com/seqsense/pcgol/mat"
)

// DefaultMaxPitch keeps the camera from flipping over the vertical axis.
const DefaultMaxPitch = 0.95 * math.Pi / 2

type Orientation struct {
	Yaw, Pitch float64
}

// Controller owns the camera orientation.
// It is safe to read from the renderer while events are integrated.
type Controller struct {
	mu          sync.RWMutex
	yaw, pitch  float64
	sensitivity float64
	maxPitch    float64
}

func New(sensitivity, maxPitch float64) *Controller {
	return &Controller{
		sensitivity: sensitivity,
		maxPitch:    maxPitch,
	}
}

// PointerDelta applies raw pointer movement.
// Movement which would make the orientation non-finite is dropped.
func (c *Controller) PointerDelta(dx, dy float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.set(c.yaw-dx*c.sensitivity, c.pitch-dy*c.sensitivity)
}

func (c *Controller) SetOrientation(yaw, pitch float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.set(yaw, pitch)
}

func (c *Controller) set(yaw, pitch float64) {
	if finite(yaw) {
		c.yaw = math.Remainder(yaw, 2*math.Pi)
	}
	if finite(pitch) {
		c.pitch = c.clampPitch(pitch)
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// SetSensitivity replaces the delta multiplier. The value is not validated.
func (c *Controller) SetSensitivity(s float64) {
	c.mu.Lock()
	c.sensitivity = s
	c.mu.Unlock()
}

func (c *Controller) Sensitivity() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sensitivity
}

func (c *Controller) Orientation() Orientation {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Orientation{Yaw: c.yaw, Pitch: c.pitch}
}

func (c *Controller) MaxPitch() float64 {
	return c.maxPitch
}

func (c *Controller) clampPitch(p float64) float64 {
	if p < -c.maxPitch {
		return -c.maxPitch
	} else if p > c.maxPitch {
		return c.maxPitch
	}
	return p
}

// Forward returns the unit vector the camera looks along.
// Zero orientation looks down -Z with +Y up.
func (c *Controller) Forward() mat.Vec3 {
	return c.Orientation().Forward()
}

// ViewMatrix returns the world to camera transform for a camera at pos.
func (c *Controller) ViewMatrix(pos mat.Vec3) mat.Mat4 {
	return c.Orientation().ViewMatrix(pos)
}

func (o Orientation) Forward() mat.Vec3 {
	sy, cy := math.Sincos(o.Yaw)
	sp, cp := math.Sincos(o.Pitch)
	return mat.NewVec3(
		float32(-sy*cp),
		float32(sp),
		float32(-cy*cp),
	)
}

func (o Orientation) basis() (right, up, back mat.Vec3) {
	sy, cy := math.Sincos(o.Yaw)
	sp, cp := math.Sincos(o.Pitch)
	right = mat.NewVec3(float32(cy), 0, float32(-sy))
	up = mat.NewVec3(float32(sy*sp), float32(cp), float32(cy*sp))
	back = mat.NewVec3(float32(sy*cp), float32(-sp), float32(cy*cp))
	return
}

func (o Orientation) ViewMatrix(pos mat.Vec3) mat.Mat4 {
	r, u, b := o.basis()
	return (mat.Mat4{
		r[0], r[1], r[2], 0,
		u[0], u[1], u[2], 0,
		b[0], b[1], b[2], 0,
		pos[0], pos[1], pos[2], 1,
	}).InvAffine()
}
