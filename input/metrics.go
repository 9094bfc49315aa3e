package input

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// DisplayMetrics reports the configured DPI and UI scale. A UI scale of 0
// means the scale factor of the monitor the window is on.
type DisplayMetrics struct {
	dpi     float64
	uiScale float64
}

func NewDisplayMetrics(dpi, uiScale float64) *DisplayMetrics {
	return &DisplayMetrics{dpi: dpi, uiScale: uiScale}
}

// Set replaces the configured values, e.g. after a config reload.
func (d *DisplayMetrics) Set(dpi, uiScale float64) {
	d.dpi = dpi
	d.uiScale = uiScale
}

func (d *DisplayMetrics) DPI() float64 {
	return d.dpi
}

func (d *DisplayMetrics) UIScale() float64 {
	if d.uiScale > 0 {
		return d.uiScale
	}
	if monitor := ebiten.Monitor(); monitor != nil {
		return monitor.DeviceScaleFactor()
	}
	return 1
}
