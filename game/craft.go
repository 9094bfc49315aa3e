package game

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/meghashyamc/virtualstick/assets"
	"github.com/meghashyamc/virtualstick/geometry"
)

const (
	craftMaxSpeed = 320.0   // pixels per second at full pitch
	craftTurnRate = math.Pi // radians per second at full yaw
)

// Craft is flown with the joystick output: X is pitch (forward/back), Y is
// yaw where negative turns right.
type Craft struct {
	position geometry.Vector // layout space, y down
	heading  float64         // radians, 0 = +x, clockwise on screen
	sprite   *ebiten.Image
	bounds   geometry.Vector
}

func NewCraft(width, height int) *Craft {
	return &Craft{
		position: geometry.Vector{X: float64(width) / 2, Y: float64(height) / 2},
		heading:  -math.Pi / 2,
		sprite:   assets.CraftSprite,
		bounds:   geometry.Vector{X: float64(width), Y: float64(height)},
	}
}

func (c *Craft) Update(output geometry.Vector, dt time.Duration) {
	seconds := dt.Seconds()
	pitch, yaw := output.X, output.Y

	c.heading -= yaw * craftTurnRate * seconds
	direction := geometry.Vector{X: math.Cos(c.heading), Y: math.Sin(c.heading)}
	c.position = c.position.Add(direction.Scale(pitch * craftMaxSpeed * seconds))

	c.position.X = wrap(c.position.X, c.bounds.X)
	c.position.Y = wrap(c.position.Y, c.bounds.Y)
}

func (c *Craft) Draw(screen *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}

	bounds := c.sprite.Bounds()
	op.GeoM.Translate(-float64(bounds.Dx())/2, -float64(bounds.Dy())/2)
	op.GeoM.Rotate(c.heading)
	op.GeoM.Translate(c.position.X, c.position.Y)

	screen.DrawImage(c.sprite, op)
}

func wrap(value, limit float64) float64 {
	if limit <= 0 {
		return value
	}
	value = math.Mod(value, limit)
	if value < 0 {
		value += limit
	}
	return value
}
