package joystick

import "github.com/meghashyamc/virtualstick/logger"

type Option func(*Joystick)

func WithLogger(l logger.Logger) Option {
	return func(j *Joystick) {
		if l != nil {
			j.logger = l
		}
	}
}

// WithMetrics makes Tick recompute the radius whenever the reported DPI or UI scale changes.
func WithMetrics(m Metrics) Option {
	return func(j *Joystick) {
		j.metrics = m
	}
}

func WithObserver(o Observer) Option {
	return func(j *Joystick) {
		j.observer = o
	}
}
