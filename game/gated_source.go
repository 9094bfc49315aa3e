package game

import "github.com/meghashyamc/virtualstick/input"

// gatedSource reports no contact while the joystick is hidden.
type gatedSource struct {
	input.Source
	enabled bool
}

func (s *gatedSource) HasPrimaryContact() bool {
	return s.enabled && s.Source.HasPrimaryContact()
}

func (s *gatedSource) HasSecondaryContactBegun() bool {
	return s.enabled && s.Source.HasSecondaryContactBegun()
}
