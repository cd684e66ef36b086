package main

import (
	"github.com/charmbracelet/harmonica"
	"github.com/taigrr/typedgeo/pkg/linalg"
	"github.com/taigrr/typedgeo/pkg/scalar"
)

// SpinAxis tracks the angle and angular velocity of one rotation axis.
// The velocity decays toward zero through a critically damped spring.
type SpinAxis struct {
	Angle    float64
	Velocity float64
	spring   harmonica.Spring
	accel    float64
}

// NewSpinAxis creates an axis at rest, stepped fps times per second.
func NewSpinAxis(fps int) SpinAxis {
	return SpinAxis{spring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0)}
}

// Update advances one frame.
func (a *SpinAxis) Update() {
	a.Angle += a.Velocity
	a.Velocity, a.accel = a.spring.Update(a.Velocity, a.accel, 0)
}

// Spin holds the model orientation.
type Spin struct {
	Pitch, Yaw, Roll SpinAxis
	fps              int
}

// NewSpin creates a spin at rest.
func NewSpin(fps int) *Spin {
	s := &Spin{fps: fps}
	s.Reset()
	return s
}

// Update advances every axis one frame.
func (s *Spin) Update() {
	s.Pitch.Update()
	s.Yaw.Update()
	s.Roll.Update()
}

// Impulse adds angular velocity in radians per frame.
func (s *Spin) Impulse(pitch, yaw, roll float64) {
	s.Pitch.Velocity += pitch
	s.Yaw.Velocity += yaw
	s.Roll.Velocity += roll
}

// Reset stops the spin and restores the initial orientation.
func (s *Spin) Reset() {
	s.Pitch = NewSpinAxis(s.fps)
	s.Yaw = NewSpinAxis(s.fps)
	s.Roll = NewSpinAxis(s.fps)
}

// Matrix returns the model rotation.
func (s *Spin) Matrix() linalg.Mat4[float64] {
	return linalg.RotationX(scalar.Radians(s.Pitch.Angle)).
		Mul(linalg.RotationY(scalar.Radians(s.Yaw.Angle))).
		Mul(linalg.RotationZ(scalar.Radians(s.Roll.Angle)))
}
