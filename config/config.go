package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

const keyEnv = "ENV"
const envLocal = "local"

const (
	defaultWindowWidth  = 1200
	defaultWindowHeight = 800
	defaultWindowTitle  = "Virtual Stick"
	defaultRadiusCm     = 2.0
	defaultSmoothSpeed  = 25.0
	defaultDPI          = 160.0
	defaultLogLevel     = "debug"
)

type InputMode string

const (
	InputModeAuto  InputMode = "auto"
	InputModeMouse InputMode = "mouse"
	InputModeTouch InputMode = "touch"
)

// ParseInputMode accepts mouse, touch or auto (case-insensitive). Empty means auto.
func ParseInputMode(s string) (InputMode, error) {
	switch mode := InputMode(strings.ToLower(strings.TrimSpace(s))); mode {
	case "":
		return InputModeAuto, nil
	case InputModeAuto, InputModeMouse, InputModeTouch:
		return mode, nil
	default:
		return "", fmt.Errorf("unknown input mode %q", s)
	}
}

type Config struct {
	config *viper.Viper
}

func Load(env string) (*Config, error) {

	if len(env) == 0 {
		if env = os.Getenv(keyEnv); len(env) == 0 {
			env = envLocal
		}
	}

	configPath, err := getConfigPath(env)
	if err != nil {
		configPath = ""
	}

	return LoadFile(configPath)
}

// LoadFile reads the yaml file at configPath, if any, and then the environment.
func LoadFile(configPath string) (*Config, error) {
	viperConfig := viper.New()
	if len(configPath) > 0 {
		viperConfig.SetConfigFile(configPath)
		if err := viperConfig.ReadInConfig(); err != nil {
			slog.Warn(fmt.Sprintf("error reading config file, %s", err))
		}
	}
	viperConfig.AutomaticEnv()

	cfg := &Config{
		config: viperConfig,
	}

	if _, err := ParseInputMode(cfg.getString("INPUT_MODE", "input.mode")); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Settings is a point-in-time copy of the config values.
type Settings struct {
	WindowWidth  int
	WindowHeight int
	WindowTitle  string

	RadiusCm    float64
	SmoothSpeed float64

	DPI     float64
	UIScale float64

	InputMode InputMode
	LogLevel  string
}

func (c *Config) Settings() Settings {
	return Settings{
		WindowWidth:  c.GetWindowWidth(),
		WindowHeight: c.GetWindowHeight(),
		WindowTitle:  c.GetWindowTitle(),
		RadiusCm:     c.GetJoystickRadiusCm(),
		SmoothSpeed:  c.GetJoystickSmoothSpeed(),
		DPI:          c.GetDisplayDPI(),
		UIScale:      c.GetDisplayUIScale(),
		InputMode:    c.GetInputMode(),
		LogLevel:     c.GetLogLevel(),
	}
}

// Watch calls onChange with fresh Settings every time the config file is written.
// onChange runs on the watcher goroutine. viper is not safe for concurrent use,
// so after Watch the Config must only be read through these Settings.
// It is a no-op when no config file was found.
func (c *Config) Watch(onChange func(Settings)) {
	if len(c.config.ConfigFileUsed()) == 0 {
		slog.Warn("no config file in use, config changes will not be watched")
		return
	}
	c.config.OnConfigChange(func(e fsnotify.Event) {
		slog.Info("config file changed", "file", e.Name, "op", e.Op.String())
		onChange(c.Settings())
	})
	c.config.WatchConfig()
}

func (c *Config) GetWindowWidth() int {
	windowWidth := c.config.GetInt("WINDOW_WIDTH")
	if windowWidth == 0 {
		windowWidth = c.config.GetInt("window.width")
	}
	if windowWidth == 0 {
		windowWidth = defaultWindowWidth
	}

	return windowWidth
}

func (c *Config) GetWindowHeight() int {
	windowHeight := c.config.GetInt("WINDOW_HEIGHT")
	if windowHeight == 0 {
		windowHeight = c.config.GetInt("window.height")
	}
	if windowHeight == 0 {
		windowHeight = defaultWindowHeight
	}

	return windowHeight
}

func (c *Config) GetWindowTitle() string {
	windowTitle := c.getString("WINDOW_TITLE", "window.title")
	if len(windowTitle) == 0 {
		windowTitle = defaultWindowTitle
	}

	return windowTitle
}

// GetJoystickRadiusCm is the physical joystick radius in centimetres.
func (c *Config) GetJoystickRadiusCm() float64 {
	return c.getFloat("JOYSTICK_RADIUS_CM", "joystick.radius_cm", defaultRadiusCm)
}

func (c *Config) GetJoystickSmoothSpeed() float64 {
	return c.getFloat("JOYSTICK_SMOOTH_SPEED", "joystick.smooth_speed", defaultSmoothSpeed)
}

func (c *Config) GetDisplayDPI() float64 {
	return c.getFloat("DISPLAY_DPI", "display.dpi", defaultDPI)
}

// GetDisplayUIScale returns 0 when the device scale factor should be used.
func (c *Config) GetDisplayUIScale() float64 {
	return c.getFloat("DISPLAY_UI_SCALE", "display.ui_scale", 0)
}

func (c *Config) GetInputMode() InputMode {
	mode, err := ParseInputMode(c.getString("INPUT_MODE", "input.mode"))
	if err != nil {
		slog.Warn("invalid input mode, using auto", "err", err.Error())
		return InputModeAuto
	}

	return mode
}

func (c *Config) GetLogLevel() string {
	logLevel := c.getString("LOG_LEVEL", "log.level")
	if len(logLevel) == 0 {
		logLevel = defaultLogLevel
	}

	return logLevel
}

func (c *Config) getString(envKey, fileKey string) string {
	value := c.config.GetString(envKey)
	if len(value) == 0 {
		value = c.config.GetString(fileKey)
	}

	return value
}

func (c *Config) getFloat(envKey, fileKey string, fallback float64) float64 {
	value := c.config.GetFloat64(envKey)
	if value == 0 {
		value = c.config.GetFloat64(fileKey)
	}
	if value == 0 {
		value = fallback
	}

	return value
}

func getProjectRoot() (string, error) {
	currentDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}

	for {
		configDir := filepath.Join(currentDir, "config")
		if info, err := os.Stat(configDir); err == nil && info.IsDir() {
			return currentDir, nil
		}

		parent := filepath.Dir(currentDir)

		if parent == currentDir {
			break
		}

		currentDir = parent
	}

	return "", fmt.Errorf("could not find project root (directory containing 'config' folder)")
}

func getConfigPath(env string) (string, error) {
	configFile := fmt.Sprintf("config.%s.yaml", env)

	projectRoot, err := getProjectRoot()
	if err != nil {
		slog.Warn("failed to find project root with config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("failed to find project root: %w", err)
	}
	configPath := filepath.Join(projectRoot, "config", configFile)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		slog.Warn("failed to find config file within config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("config file does not exist: %s", configPath)
	}

	return configPath, nil
}
