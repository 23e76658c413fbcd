// Package pose stands in for the marker tracker: it produces the projection
// and view matrices a tracker would report for a camera looking at the
// anchored model.
package pose

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

type Movement int

const (
	YawLeft Movement = iota
	YawRight
	PitchUp
	PitchDown
)

const (
	maxPitch    = 89.0
	minDistance = 0.1
)

// Orbit is a camera circling the marker. Angles are in degrees.
type Orbit struct {
	target   mgl32.Vec3
	worldUp  mgl32.Vec3
	yaw      float32
	pitch    float32
	distance float32

	fov, near, far float32

	// degrees per second
	turnSpeed  float32
	orbitSpeed float32
	paused     bool
}

// Options configures a new Orbit.
type Options struct {
	Target   mgl32.Vec3
	Distance float32
	// Field of view in degrees.
	Fov       float32
	Near, Far float32
	// Automatic orbit speed in radians per second.
	Speed float32
}

func NewOrbit(opts Options) *Orbit {
	o := &Orbit{
		target:     opts.Target,
		worldUp:    mgl32.Vec3{0, 1, 0},
		yaw:        -90,
		pitch:      -30,
		distance:   max(opts.Distance, minDistance),
		fov:        opts.Fov,
		near:       opts.Near,
		far:        opts.Far,
		turnSpeed:  90,
		orbitSpeed: mgl32.RadToDeg(opts.Speed),
	}
	return o
}

// FitDistance returns a camera distance at which a box with the given
// corners fills roughly the field of view.
func FitDistance(lo, hi mgl32.Vec3, fov float32) float32 {
	radius := hi.Sub(lo).Len() / 2
	if radius == 0 {
		return 1
	}
	half := float64(mgl32.DegToRad(fov)) / 2
	return radius/float32(math.Sin(half)) + radius*0.1
}

// Center returns the midpoint of a bounding box.
func Center(lo, hi mgl32.Vec3) mgl32.Vec3 {
	return lo.Add(hi).Mul(0.5)
}

// Update advances the automatic orbit by dt seconds.
func (o *Orbit) Update(dt float32) {
	if o.paused {
		return
	}
	o.yaw = float32(math.Mod(float64(o.yaw+o.orbitSpeed*dt), 360))
}

func (o *Orbit) TogglePause() {
	o.paused = !o.paused
}

func (o *Orbit) Paused() bool {
	return o.paused
}

func (o *Orbit) Move(direction Movement, dt float32) {
	step := o.turnSpeed * dt
	switch direction {
	case YawLeft:
		o.yaw -= step
	case YawRight:
		o.yaw += step
	case PitchUp:
		o.setPitch(o.pitch + step)
	case PitchDown:
		o.setPitch(o.pitch - step)
	}
}

func (o *Orbit) setPitch(pitch float32) {
	o.pitch = mgl32.Clamp(pitch, -maxPitch, maxPitch)
}

// Zoom moves the camera toward the marker for positive offsets.
func (o *Orbit) Zoom(offset float32) {
	o.distance = max(o.distance*(1-0.1*offset), minDistance)
}

func (o *Orbit) Distance() float32 {
	return o.distance
}

// Position is the camera location in marker space.
func (o *Orbit) Position() mgl32.Vec3 {
	yaw := float64(mgl32.DegToRad(o.yaw))
	pitch := float64(mgl32.DegToRad(o.pitch))
	offset := mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}
	return o.target.Sub(offset.Mul(o.distance))
}

// View returns the view matrix, the pose a tracker would report for the
// marker.
func (o *Orbit) View() mgl32.Mat4 {
	return mgl32.LookAtV(o.Position(), o.target, o.worldUp)
}

// Projection returns the perspective projection for a surface of the given
// size.
func (o *Orbit) Projection(width, height float32) mgl32.Mat4 {
	aspect := float32(1)
	if height > 0 {
		aspect = width / height
	}
	return mgl32.Perspective(mgl32.DegToRad(o.fov), aspect, o.near, o.far)
}
