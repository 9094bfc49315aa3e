package assets

import (
	"bytes"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

const craftSize = 32

var (
	CraftSprite *ebiten.Image
	HUDFont     *text.GoTextFace
)

func init() {
	CraftSprite = drawCraft(craftSize)

	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	HUDFont = &text.GoTextFace{
		Source: fontSource,
		Size:   18,
	}
}

// drawCraft draws a round hull with a nose pointing along +x.
func drawCraft(size int) *ebiten.Image {
	img := ebiten.NewImage(size, size)
	half := float32(size) / 2

	vector.DrawFilledCircle(img, half, half, half*0.6, color.RGBA{80, 180, 255, 255}, true)
	vector.StrokeLine(img, half, half, float32(size), half, 4, color.RGBA{255, 220, 80, 255}, true)

	return img
}
