package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/meghashyamc/virtualstick/geometry"
)

// MouseSource treats the held left button as the primary contact and a
// right click during the drag as a second contact.
type MouseSource struct {
	screenSpace

	pressed   bool
	position  geometry.Vector
	secondary bool
}

func NewMouseSource() *MouseSource {
	return &MouseSource{}
}

func (m *MouseSource) Update() {
	m.pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	mouseX, mouseY := ebiten.CursorPosition()
	m.position = m.toScreen(mouseX, mouseY)
	m.secondary = m.pressed && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
}

func (m *MouseSource) HasPrimaryContact() bool {
	return m.pressed
}

func (m *MouseSource) PrimaryContactPosition() geometry.Vector {
	return m.position
}

func (m *MouseSource) HasSecondaryContactBegun() bool {
	return m.secondary
}
