package joystick

import "errors"

var (
	ErrNilSource     = errors.New("joystick: input source is nil")
	ErrNilMarker     = errors.New("joystick: marker is nil")
	ErrInvalidConfig = errors.New("joystick: invalid configuration")
)
