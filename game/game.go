package game

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/meghashyamc/virtualstick/assets"
	"github.com/meghashyamc/virtualstick/config"
	"github.com/meghashyamc/virtualstick/input"
	"github.com/meghashyamc/virtualstick/joystick"
	"github.com/meghashyamc/virtualstick/logger"
)

const (
	pointerMarkerDiameter = 48.0
	probeSize             = 120.0
	secondTapFlashTime    = time.Second
)

type Game struct {
	settings config.Settings
	logger   logger.Logger
	source   *gatedSource
	metrics  *input.DisplayMetrics
	joystick *joystick.Joystick

	originMarker  *Marker
	pointerMarker *Marker
	craft         *Craft

	lastFrame      joystick.Frame
	secondTapFlash *Timer
	hidden         bool

	// config reloads arrive from the watcher goroutine
	reloads chan config.Settings

	screenWidth  int
	screenHeight int
}

func NewGame(cfg *config.Config, log logger.Logger) (*Game, error) {
	settings := cfg.Settings()
	g := &Game{
		settings:       settings,
		logger:         log,
		source:         &gatedSource{Source: input.New(settings.InputMode), enabled: true},
		metrics:        input.NewDisplayMetrics(settings.DPI, settings.UIScale),
		originMarker:   NewOriginMarker(),
		pointerMarker:  NewPointerMarker(pointerMarkerDiameter),
		secondTapFlash: NewTimer(secondTapFlashTime),
		reloads:        make(chan config.Settings, 1),
		screenWidth:    settings.WindowWidth,
		screenHeight:   settings.WindowHeight,
	}
	g.source.SetScreenHeight(g.screenHeight)
	g.craft = NewCraft(g.screenWidth, g.screenHeight)

	js, err := joystick.New(g.source, g.originMarker, g.pointerMarker,
		joystick.WithLogger(log),
		joystick.WithMetrics(g.metrics),
		joystick.WithObserver(g.observe),
	)
	if err != nil {
		log.Error("failed to create joystick", "err", err)
		return nil, fmt.Errorf("failed to create joystick: %w", err)
	}
	g.joystick = js

	if err := g.configureJoystick(); err != nil {
		log.Error("failed to configure joystick", "err", err)
		return nil, err
	}

	cfg.Watch(g.queueReload)

	g.logger.Info("game initialized", "input_mode", settings.InputMode, "radius", g.joystick.Radius())
	return g, nil
}

func (g *Game) Run() error {
	g.logger.Info("starting game")
	g.setupWindow()

	// Running the game calls Update() on every 'tick'
	return ebiten.RunGame(g)
}

func (g *Game) setupWindow() {
	ebiten.SetWindowSize(g.screenWidth, g.screenHeight)
	ebiten.SetWindowTitle(g.settings.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
}

func (g *Game) configureJoystick() error {
	g.metrics.Set(g.settings.DPI, g.settings.UIScale)
	return g.joystick.Configure(
		g.settings.RadiusCm,
		g.settings.SmoothSpeed,
		g.metrics.DPI(),
		g.metrics.UIScale(),
	)
}

func (g *Game) Update() error {
	dt := frameDelta()

	g.applyReloads()

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.setHidden(!g.hidden)
	}

	g.source.Update()
	output := g.joystick.Tick(dt)
	g.craft.Update(output, dt)
	g.secondTapFlash.Update(dt)

	return nil
}

// queueReload runs on the config watcher goroutine. Only the newest settings are kept.
func (g *Game) queueReload(settings config.Settings) {
	for {
		select {
		case g.reloads <- settings:
			return
		default:
		}
		select {
		case <-g.reloads:
		default:
		}
	}
}

func (g *Game) applyReloads() {
	select {
	case settings := <-g.reloads:
		g.settings = settings
		if err := g.configureJoystick(); err != nil {
			g.logger.Warn("ignoring config reload", "err", err)
			return
		}
		g.logger.Info("joystick reconfigured from config", "radius", g.joystick.Radius())
	default:
	}
}

func (g *Game) setHidden(hidden bool) {
	g.hidden = hidden
	g.source.enabled = !hidden
	if hidden {
		g.joystick.Disable()
	}
	g.logger.Debug("joystick visibility toggled", "hidden", hidden)
}

func (g *Game) observe(frame joystick.Frame) {
	g.lastFrame = frame
	if frame.SecondaryContact {
		g.secondTapFlash.Reset()
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{16, 20, 32, 255})

	g.craft.Draw(screen)

	if !g.hidden {
		uiScale := g.joystick.UIScale()
		g.originMarker.Draw(screen, uiScale, g.screenHeight)
		g.pointerMarker.Draw(screen, uiScale, g.screenHeight)
	}

	g.drawProbe(screen)
	g.drawHUD(screen)
}

// drawProbe plots the output vector inside a square in the top-right corner.
func (g *Game) drawProbe(screen *ebiten.Image) {
	left := float32(g.screenWidth) - probeSize - 20
	top := float32(20)
	vector.StrokeRect(screen, left, top, probeSize, probeSize, 1, color.RGBA{120, 120, 120, 255}, false)

	half := float32(probeSize / 2)
	out := g.lastFrame.Output
	// pitch up, yaw right
	x := left + half - float32(out.Y)*half
	y := top + half - float32(out.X)*half
	vector.DrawFilledCircle(screen, x, y, 5, color.RGBA{255, 80, 80, 255}, true)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	lines := []string{
		fmt.Sprintf("Output: (%.2f, %.2f)", g.lastFrame.Output.X, g.lastFrame.Output.Y),
		fmt.Sprintf("Raw: (%.2f, %.2f)  Smoothed: (%.2f, %.2f)", g.lastFrame.Raw.X, g.lastFrame.Raw.Y, g.lastFrame.Smoothed.X, g.lastFrame.Smoothed.Y),
		fmt.Sprintf("Radius: %.1f  UI scale: %.2f", g.joystick.Radius(), g.joystick.UIScale()),
	}
	if g.hidden {
		lines = append(lines, "Joystick hidden (Tab to show)")
	} else {
		lines = append(lines, "Drag to steer, Tab to hide")
	}
	if !g.secondTapFlash.IsReady() {
		lines = append(lines, "Second tap!")
	}

	for i, line := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(20, 20+float64(i)*26)
		op.ColorScale.ScaleWithColor(color.White)
		text.Draw(screen, line, assets.HUDFont, op)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.screenWidth, g.screenHeight
}
