package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

type Timer struct {
	currentTime time.Duration
	targetTime  time.Duration
}

func NewTimer(target time.Duration) *Timer {
	return &Timer{
		currentTime: target,
		targetTime:  target,
	}
}

func (t *Timer) Update(dt time.Duration) {
	if t.currentTime < t.targetTime {
		t.currentTime += dt
	}
}

func (t *Timer) IsReady() bool {
	return t.currentTime >= t.targetTime
}

func (t *Timer) Reset() {
	t.currentTime = 0
}

// frameDelta is the time covered by one Update call.
func frameDelta() time.Duration {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return time.Second / time.Duration(tps)
}
