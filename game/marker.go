package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/meghashyamc/virtualstick/geometry"
	"github.com/meghashyamc/virtualstick/input"
)

// Marker is an on-screen circle the joystick moves and toggles.
type Marker struct {
	position geometry.Vector // anchored space
	diameter float64         // anchored space
	visible  bool
	filled   bool
	color    color.Color
}

func NewOriginMarker() *Marker {
	return &Marker{color: color.RGBA{255, 255, 255, 160}}
}

func NewPointerMarker(diameter float64) *Marker {
	return &Marker{diameter: diameter, filled: true, color: color.RGBA{255, 255, 255, 220}}
}

func (m *Marker) SetVisible(visible bool) {
	m.visible = visible
}

func (m *Marker) MoveTo(position geometry.Vector) {
	m.position = position
}

func (m *Marker) SetDiameter(diameter float64) {
	m.diameter = diameter
}

func (m *Marker) Draw(screen *ebiten.Image, uiScale float64, screenHeight int) {
	if !m.visible {
		return
	}

	center := input.ToLayout(m.position.Scale(uiScale), screenHeight)
	radius := float32(m.diameter * uiScale / 2)
	if m.filled {
		vector.DrawFilledCircle(screen, float32(center.X), float32(center.Y), radius, m.color, true)
		return
	}
	vector.StrokeCircle(screen, float32(center.X), float32(center.Y), radius, 3, m.color, true)
}
