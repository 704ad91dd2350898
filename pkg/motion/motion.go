// Package motion animates rotation angles with spring-damped velocity decay
// and feeds them to a transform stack.
package motion

import (
	"github.com/charmbracelet/harmonica"
	"github.com/taigrr/libmatrix/pkg/stack"
)

// Spring parameters: moderate speed, critically damped (no overshoot).
const (
	angularFrequency = 4.0
	dampingRatio     = 1.0
)

// Axis tracks an angle in degrees and its per-frame velocity.
type Axis struct {
	Position float64
	Velocity float64

	spring harmonica.Spring
	accel  float64 // spring velocity used to animate Velocity toward 0
}

// NewAxis creates an axis at rest that updates fps times per second.
func NewAxis(fps int) Axis {
	return Axis{spring: harmonica.NewSpring(harmonica.FPS(fps), angularFrequency, dampingRatio)}
}

// Update advances one frame: the position moves by the velocity and the
// velocity eases toward zero.
func (a *Axis) Update() {
	a.Position += a.Velocity
	a.Velocity, a.accel = a.spring.Update(a.Velocity, a.accel, 0)
}

// State holds the three rotation axes of one object.
type State struct {
	Pitch, Yaw, Roll Axis
	fps              int
}

// NewState creates a state at rest.
func NewState(fps int) *State {
	return &State{
		Pitch: NewAxis(fps),
		Yaw:   NewAxis(fps),
		Roll:  NewAxis(fps),
		fps:   fps,
	}
}

// Update advances every axis by one frame.
func (s *State) Update() {
	s.Pitch.Update()
	s.Yaw.Update()
	s.Roll.Update()
}

// ApplyImpulse adds per-frame velocity in degrees to each axis.
func (s *State) ApplyImpulse(pitch, yaw, roll float64) {
	s.Pitch.Velocity += pitch
	s.Yaw.Velocity += yaw
	s.Roll.Velocity += roll
}

// Reset returns every axis to rest at zero.
func (s *State) Reset() {
	s.Pitch = NewAxis(s.fps)
	s.Yaw = NewAxis(s.fps)
	s.Roll = NewAxis(s.fps)
}

// Resting reports whether every velocity is below eps.
func (s *State) Resting(eps float64) bool {
	return abs(s.Pitch.Velocity) < eps && abs(s.Yaw.Velocity) < eps && abs(s.Roll.Velocity) < eps
}

// Apply composes the rotation onto the top of st: pitch about X, then yaw
// about Y, then roll about Z.
func (s *State) Apply(st *stack.Stack4) {
	st.Rotate(float32(s.Pitch.Position), 1, 0, 0)
	st.Rotate(float32(s.Yaw.Position), 0, 1, 0)
	st.Rotate(float32(s.Roll.Position), 0, 0, 1)
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
