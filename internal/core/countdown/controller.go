package countdown

import (
	"log/slog"
	"sync"
	"time"

	"pomotray/internal/core/model"
)

// Config contains runtime options for the Controller.
type Config struct {
	TickInterval time.Duration
	NewTicker    TickerFactory
	Logger       *slog.Logger
}

// Controller owns the countdown state. Every command and every tick goes
// through mu, so there is exactly one writer at a time.
//
// Pause, Reset and Stop bump the generation. A scheduler tick that takes the
// lock after one of them returns carries a stale generation and is dropped.
type Controller struct {
	mu         sync.Mutex
	config     model.TimerConfig
	options    Config
	logger     *slog.Logger
	state      model.TimerState
	events     []chan Event
	stopCh     chan struct{}
	generation uint64
	closed     bool
}

// New creates an idle Controller at the start of the work phase.
func New(config model.TimerConfig, options Config) *Controller {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.NewTicker == nil {
		options.NewTicker = NewSystemTicker
	}
	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if err := config.Validate(); err != nil {
		logger.Warn("using default timer config", "error", err)
		config = model.DefaultTimerConfig()
	}

	return &Controller{
		config:  config,
		options: options,
		logger:  logger.With("component", "countdown"),
		state:   model.NewTimerState(config),
	}
}

// Subscribe registers a new observer channel. Sends never block; a full
// channel misses the event.
func (controller *Controller) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	controller.mu.Lock()
	defer controller.mu.Unlock()
	if controller.closed {
		close(ch)
		return ch
	}
	controller.events = append(controller.events, ch)
	return ch
}

// Snapshot returns the current state.
func (controller *Controller) Snapshot() model.TimerState {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.state
}

// Display returns the derived display for the current state.
func (controller *Controller) Display() model.Display {
	return model.Derive(controller.Snapshot())
}

// TimerConfig returns the active durations.
func (controller *Controller) TimerConfig() model.TimerConfig {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.config
}

// Start begins counting down and arms the tick source.
func (controller *Controller) Start() {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	if controller.closed {
		return
	}
	next, transition := controller.state.Start()
	if !transition.Changed {
		return
	}
	controller.state = next
	controller.armLocked()
	controller.publishLocked(transition)
}

// Pause stops counting down. No tick is applied after Pause returns.
func (controller *Controller) Pause() {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	next, transition := controller.state.Pause()
	if !transition.Changed {
		return
	}
	controller.state = next
	controller.disarmLocked()
	controller.publishLocked(transition)
}

// Reset stops the countdown and refills the current phase.
func (controller *Controller) Reset() {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	next, transition := controller.state.Reset(controller.config)
	controller.state = next
	controller.disarmLocked()
	controller.publishLocked(transition)
}

// ApplySettings parses minute values and applies them. Invalid input is
// rejected with model.ErrInvalidSettings and leaves the state untouched.
func (controller *Controller) ApplySettings(workMinutes, breakMinutes string) error {
	config, err := model.ParseTimerConfig(workMinutes, breakMinutes)
	if err != nil {
		return err
	}
	return controller.Configure(config)
}

// Configure replaces the durations and refills the current phase. A running
// countdown keeps running from the new duration.
func (controller *Controller) Configure(config model.TimerConfig) error {
	if err := config.Validate(); err != nil {
		return err
	}
	controller.mu.Lock()
	defer controller.mu.Unlock()
	controller.config = config
	next, transition := controller.state.Apply(config)
	controller.state = next
	controller.logger.Info("settings applied", "work", config.Work, "break", config.Break, "running", next.Running)
	controller.publishLocked(transition)
	return nil
}

// Tick applies a single decrement. The scheduler calls it once per
// interval; tests drive it directly.
func (controller *Controller) Tick() {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	controller.tickLocked()
}

// Stop terminates the tick source for good and closes observers.
func (controller *Controller) Stop() {
	controller.mu.Lock()
	if controller.closed {
		controller.mu.Unlock()
		return
	}
	controller.closed = true
	controller.state.Running = false
	controller.disarmLocked()
	events := controller.events
	controller.events = nil
	controller.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

func (controller *Controller) armLocked() {
	controller.disarmLocked()
	stopCh := make(chan struct{})
	controller.stopCh = stopCh
	ticker := controller.options.NewTicker(controller.options.TickInterval)
	go controller.run(ticker, stopCh, controller.generation)
}

func (controller *Controller) disarmLocked() {
	controller.generation++
	if controller.stopCh != nil {
		close(controller.stopCh)
		controller.stopCh = nil
	}
}

func (controller *Controller) run(ticker Ticker, stopCh <-chan struct{}, generation uint64) {
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C():
			controller.scheduledTick(generation)
		}
	}
}

func (controller *Controller) scheduledTick(generation uint64) {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	if generation != controller.generation {
		return
	}
	controller.tickLocked()
}

func (controller *Controller) tickLocked() {
	next, transition := controller.state.Tick(controller.config)
	if !transition.Changed {
		return
	}
	controller.state = next
	if transition.Completed {
		controller.disarmLocked()
		controller.logger.Debug("phase complete", "finished", transition.Finished, "next", next.Phase)
	}
	controller.publishLocked(transition)
}

func (controller *Controller) publishLocked(transition model.Transition) {
	now := time.Now()
	display := model.Derive(controller.state)
	controller.emitLocked(Event{
		Type:    EventStateChange,
		State:   controller.state,
		Display: display,
		At:      now,
	})
	if transition.Completed {
		controller.emitLocked(Event{
			Type:     EventPhaseComplete,
			State:    controller.state,
			Display:  display,
			Finished: transition.Finished,
			Message:  model.FinishedMessage(transition.Finished),
			At:       now,
		})
	}
}

func (controller *Controller) emitLocked(event Event) {
	for _, ch := range controller.events {
		select {
		case ch <- event:
		default:
		}
	}
}
