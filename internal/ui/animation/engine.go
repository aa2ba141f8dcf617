package animation

import (
	"context"
	"sync"
	"time"

	"fyne.io/fyne/v2"
)

// Config contains flash timing values.
type Config struct {
	FlashCount    int
	FlashInterval time.Duration
}

// Engine alternates the tray icon between an alert and a resting image.
type Engine struct {
	mu         sync.Mutex
	config     Config
	updateIcon func(fyne.Resource)
	cancel     context.CancelFunc
	run        uint64
}

// New creates a new animation engine.
func New(config Config, updateIcon func(fyne.Resource)) *Engine {
	defaults := DefaultConfig()
	if config.FlashCount <= 0 {
		config.FlashCount = defaults.FlashCount
	}
	if config.FlashInterval <= 0 {
		config.FlashInterval = defaults.FlashInterval
	}
	return &Engine{
		config:     config,
		updateIcon: updateIcon,
	}
}

// StartFlash runs a flash sequence, replacing any sequence in progress.
// done runs only when the sequence completes without being cancelled, after
// the engine has become inactive.
func (engine *Engine) StartFlash(ctx context.Context, flash FlashSpec, done func()) {
	engine.start(ctx, func(runCtx context.Context) bool {
		for i := 0; i < engine.config.FlashCount; i++ {
			engine.updateIcon(flash.Alert)
			if !sleepWithContext(runCtx, engine.config.FlashInterval) {
				return false
			}
			engine.updateIcon(flash.Resting)
			if !sleepWithContext(runCtx, engine.config.FlashInterval) {
				return false
			}
		}
		return true
	}, done)
}

// Active reports whether a flash sequence is running.
func (engine *Engine) Active() bool {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.cancel != nil
}

// Stop terminates any active animation.
func (engine *Engine) Stop() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.cancel != nil {
		engine.cancel()
		engine.cancel = nil
	}
}

func (engine *Engine) start(parent context.Context, run func(context.Context) bool, done func()) {
	engine.mu.Lock()
	if engine.cancel != nil {
		engine.cancel()
	}
	runCtx, cancel := context.WithCancel(parent)
	engine.cancel = cancel
	engine.run++
	id := engine.run
	engine.mu.Unlock()

	go func() {
		completed := run(runCtx)
		engine.finish(id)
		if completed && done != nil {
			done()
		}
	}()
}

func (engine *Engine) finish(id uint64) {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.run == id && engine.cancel != nil {
		engine.cancel()
		engine.cancel = nil
	}
}

func sleepWithContext(ctx context.Context, duration time.Duration) bool {
	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
