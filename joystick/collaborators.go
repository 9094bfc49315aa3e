package joystick

import "github.com/meghashyamc/virtualstick/geometry"

// InputSource reports the pointer or touch state for the current frame.
// Positions are screen pixels with y pointing up.
type InputSource interface {
	HasPrimaryContact() bool
	PrimaryContactPosition() geometry.Vector
	HasSecondaryContactBegun() bool
}

// Metrics supplies the display values the radius is derived from.
type Metrics interface {
	DPI() float64
	UIScale() float64
}

// Marker is a visual element the joystick shows while a contact is held.
// Positions are in anchored space.
type Marker interface {
	SetVisible(visible bool)
	MoveTo(position geometry.Vector)
}

// Sizer is implemented by markers that follow the joystick radius.
type Sizer interface {
	SetDiameter(diameter float64)
}

// Frame is the state of the joystick after a tick.
// Origin and Pointer are zero while Active is false.
type Frame struct {
	Active           bool
	Origin           geometry.Vector
	Pointer          geometry.Vector
	Raw              geometry.Vector
	Smoothed         geometry.Vector
	Output           geometry.Vector
	SecondaryContact bool
}

// Observer is called at the end of every tick.
type Observer func(Frame)
