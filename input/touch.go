package input

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/meghashyamc/virtualstick/geometry"
)

// TouchSource follows the first finger down until it is lifted.
type TouchSource struct {
	screenSpace

	touchIDs    []ebiten.TouchID
	justPressed []ebiten.TouchID

	primary    ebiten.TouchID
	hasPrimary bool
	position   geometry.Vector
	secondary  bool
}

func NewTouchSource() *TouchSource {
	return &TouchSource{
		touchIDs:    make([]ebiten.TouchID, 0, 10),
		justPressed: make([]ebiten.TouchID, 0, 10),
	}
}

func (t *TouchSource) Update() {
	t.touchIDs = ebiten.AppendTouchIDs(t.touchIDs[:0])
	t.justPressed = inpututil.AppendJustPressedTouchIDs(t.justPressed[:0])
	t.secondary = false

	if len(t.touchIDs) == 0 {
		t.hasPrimary = false
		return
	}

	if !t.hasPrimary || !slices.Contains(t.touchIDs, t.primary) {
		slices.Sort(t.touchIDs)
		t.primary = t.touchIDs[0]
		t.hasPrimary = true
	}

	x, y := ebiten.TouchPosition(t.primary)
	t.position = t.toScreen(x, y)

	if len(t.touchIDs) > 1 {
		for _, id := range t.justPressed {
			if id != t.primary {
				t.secondary = true
				break
			}
		}
	}
}

func (t *TouchSource) HasPrimaryContact() bool {
	return t.hasPrimary
}

func (t *TouchSource) PrimaryContactPosition() geometry.Vector {
	return t.position
}

func (t *TouchSource) HasSecondaryContactBegun() bool {
	return t.secondary
}
