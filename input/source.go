package input

import (
	"runtime"

	"github.com/meghashyamc/virtualstick/config"
	"github.com/meghashyamc/virtualstick/geometry"
	"github.com/meghashyamc/virtualstick/joystick"
)

// Source is a joystick.InputSource that is refreshed once per frame.
type Source interface {
	joystick.InputSource

	// Update snapshots the device state for this frame.
	Update()
	// SetScreenHeight sets the layout height used to flip y to point up.
	SetScreenHeight(height int)
}

// New picks the source for mode. Auto selects touch on mobile platforms.
func New(mode config.InputMode) Source {
	if mode == config.InputModeAuto {
		mode = config.InputModeMouse
		if runtime.GOOS == "android" || runtime.GOOS == "ios" {
			mode = config.InputModeTouch
		}
	}

	if mode == config.InputModeTouch {
		return NewTouchSource()
	}
	return NewMouseSource()
}

// screenSpace holds what both sources share: the y flip.
type screenSpace struct {
	height int
}

func (s *screenSpace) SetScreenHeight(height int) {
	s.height = height
}

func (s *screenSpace) toScreen(x, y int) geometry.Vector {
	return geometry.Vector{X: float64(x), Y: float64(s.height - y)}
}

// ToLayout converts a y-up screen position back to ebiten's y-down layout space.
func ToLayout(screenPos geometry.Vector, height int) geometry.Vector {
	return geometry.Vector{X: screenPos.X, Y: float64(height) - screenPos.Y}
}
