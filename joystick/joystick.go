package joystick

import (
	"fmt"
	"math"
	"time"

	"github.com/meghashyamc/virtualstick/geometry"
	"github.com/meghashyamc/virtualstick/logger"
)

const (
	inchesInCm = 0.393701

	MinRadiusCm    = 0.25
	MaxRadiusCm    = 4.0
	MinSmoothSpeed = 10.0
	MaxSmoothSpeed = 40.0

	// BaselineDPI is used when the host reports no DPI.
	BaselineDPI = 160.0
	// MinUIScale keeps the anchored-space conversion finite.
	MinUIScale = 0.01
)

// Joystick turns a single held contact into a smoothed direction vector.
// It is driven by one Tick per frame and is not safe for concurrent use.
type Joystick struct {
	source  InputSource
	origin  Marker
	pointer Marker

	metrics  Metrics
	observer Observer
	logger   logger.Logger

	radiusCm    float64
	smoothSpeed float64
	dpi         float64
	uiScale     float64
	radius      float64

	// values passed to the last Configure, before sanitizing
	requestedDPI   float64
	requestedScale float64
	configured     bool

	originPoint       geometry.Vector
	originInitialized bool
	pointerPoint      geometry.Vector
	raw               geometry.Vector
	smoothed          geometry.Vector
	output            geometry.Vector
	active            bool
}

func New(source InputSource, origin, pointer Marker, opts ...Option) (*Joystick, error) {
	if source == nil {
		return nil, ErrNilSource
	}
	if origin == nil || pointer == nil {
		return nil, ErrNilMarker
	}

	j := &Joystick{
		source:  source,
		origin:  origin,
		pointer: pointer,
		logger:  logger.Discard(),
	}
	for _, opt := range opts {
		opt(j)
	}

	j.setMarkersVisible(false)
	return j, nil
}

// Configure derives the radius in anchored units from a physical radius in
// centimetres, the display DPI and the UI scale factor.
func (j *Joystick) Configure(radiusCm, smoothSpeed, dpi, uiScale float64) error {
	for _, v := range []float64{radiusCm, smoothSpeed, dpi, uiScale} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: radius_cm=%v smooth_speed=%v dpi=%v ui_scale=%v", ErrInvalidConfig, radiusCm, smoothSpeed, dpi, uiScale)
		}
	}

	j.requestedDPI = dpi
	j.requestedScale = uiScale

	if clamped := geometry.Clamp(radiusCm, MinRadiusCm, MaxRadiusCm); clamped != radiusCm {
		j.logger.Warn("joystick radius out of range, clamping", "requested", radiusCm, "radius_cm", clamped)
		radiusCm = clamped
	}
	if clamped := geometry.Clamp(smoothSpeed, MinSmoothSpeed, MaxSmoothSpeed); clamped != smoothSpeed {
		j.logger.Warn("joystick smooth speed out of range, clamping", "requested", smoothSpeed, "smooth_speed", clamped)
		smoothSpeed = clamped
	}
	if dpi <= 0 {
		j.logger.Warn("display dpi not available, using baseline", "requested", dpi, "dpi", BaselineDPI)
		dpi = BaselineDPI
	}
	if uiScale < MinUIScale {
		j.logger.Warn("ui scale too small, clamping", "requested", uiScale, "ui_scale", MinUIScale)
		uiScale = MinUIScale
	}

	if j.originInitialized && j.uiScale > 0 && j.uiScale != uiScale {
		// A held contact keeps its screen position in the new anchored space.
		ratio := j.uiScale / uiScale
		j.originPoint = j.originPoint.Scale(ratio)
		j.pointerPoint = j.pointerPoint.Scale(ratio)
		j.origin.MoveTo(j.originPoint)
		j.pointer.MoveTo(j.pointerPoint)
	}

	j.radiusCm = radiusCm
	j.smoothSpeed = smoothSpeed
	j.dpi = dpi
	j.uiScale = uiScale
	j.radius = radiusCm * dpi * inchesInCm / uiScale
	j.configured = true

	if sizer, ok := j.origin.(Sizer); ok {
		sizer.SetDiameter(j.radius * 2)
	}

	j.logger.Info("joystick configured",
		"radius_cm", j.radiusCm,
		"smooth_speed", j.smoothSpeed,
		"dpi", j.dpi,
		"ui_scale", j.uiScale,
		"radius", j.radius,
	)
	return nil
}

// Tick samples the input source once and returns the smoothed output
// (smoothed.Y, -smoothed.X).
func (j *Joystick) Tick(dt time.Duration) geometry.Vector {
	j.syncMetrics()

	frame := Frame{}
	if j.source.HasPrimaryContact() && j.radius > 0 {
		if !j.active {
			j.logger.Debug("joystick engaged")
		}
		j.active = true
		j.setMarkersVisible(true)
		j.track(j.source.PrimaryContactPosition())

		if j.source.HasSecondaryContactBegun() {
			j.logger.Info("second contact registered", "origin", j.originPoint, "pointer", j.pointerPoint)
			frame.SecondaryContact = true
		}
	} else {
		if j.active {
			j.logger.Debug("joystick released", "smoothed", j.smoothed)
		}
		j.Disable()
	}

	if dt < 0 {
		dt = 0
	}
	j.smoothed = j.smoothed.MoveTowards(j.raw, j.smoothSpeed*dt.Seconds())
	j.output = geometry.Vector{X: j.smoothed.Y, Y: -j.smoothed.X}

	if j.observer != nil {
		frame.Active = j.active
		if j.active {
			frame.Origin = j.originPoint
			frame.Pointer = j.pointerPoint
		}
		frame.Raw = j.raw
		frame.Smoothed = j.smoothed
		frame.Output = j.output
		j.observer(frame)
	}

	return j.output
}

// Disable drops the current gesture immediately. The smoothed vector keeps
// its value and decays on later ticks.
func (j *Joystick) Disable() {
	j.active = false
	j.originInitialized = false
	j.raw = geometry.Vector{}
	j.setMarkersVisible(false)
}

func (j *Joystick) track(screenPos geometry.Vector) {
	anchored := screenPos.Divide(j.uiScale)

	if !j.originInitialized {
		j.originPoint = anchored
		j.originInitialized = true
		j.origin.MoveTo(j.originPoint)
	}

	offset := anchored.Sub(j.originPoint).ClampMagnitude(j.radius)
	j.pointerPoint = j.originPoint.Add(offset)
	j.pointer.MoveTo(j.pointerPoint)

	j.raw = j.pointerPoint.Sub(j.originPoint).Divide(j.radius)
}

func (j *Joystick) syncMetrics() {
	if j.metrics == nil || !j.configured {
		return
	}
	dpi, uiScale := j.metrics.DPI(), j.metrics.UIScale()
	if dpi == j.requestedDPI && uiScale == j.requestedScale {
		return
	}
	j.logger.Debug("display metrics changed", "dpi", dpi, "ui_scale", uiScale)
	if err := j.Configure(j.radiusCm, j.smoothSpeed, dpi, uiScale); err != nil {
		j.logger.Error("failed to apply display metrics", "err", err)
	}
}

func (j *Joystick) setMarkersVisible(visible bool) {
	j.origin.SetVisible(visible)
	j.pointer.SetVisible(visible)
}

// Output returns the value returned by the last Tick.
func (j *Joystick) Output() geometry.Vector {
	return j.output
}

func (j *Joystick) Raw() geometry.Vector {
	return j.raw
}

func (j *Joystick) Smoothed() geometry.Vector {
	return j.smoothed
}

// Origin returns the anchored origin and whether it is placed for the current gesture.
func (j *Joystick) Origin() (geometry.Vector, bool) {
	return j.originPoint, j.originInitialized
}

func (j *Joystick) Pointer() geometry.Vector {
	return j.pointerPoint
}

func (j *Joystick) Active() bool {
	return j.active
}

// Radius is the joystick radius in anchored units.
func (j *Joystick) Radius() float64 {
	return j.radius
}

func (j *Joystick) UIScale() float64 {
	return j.uiScale
}
