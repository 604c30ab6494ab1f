package pagectl

import (
	"context"
	"sync"
)

// Controller owns the page behavior: greeting, menu, contact form,
// confirmation rendering and scroll effects.
// Construct it once at startup; all state lives here.
type Controller struct {
	config    *Config
	view      View
	storage   Storage
	prompter  Prompter
	scheduler Scheduler
	log       func(...any) // Never nil - uses no-op by default

	mu         sync.Mutex
	submitting bool // duplicate-submit guard, see guard.go
}

// noopLogger is the default logger that does nothing
func noopLogger(...any) {}

// New creates a Controller. A nil cfg uses DefaultConfig, a nil view or
// storage falls back to the in-memory implementations and a nil prompter
// disables the name prompt.
func New(cfg *Config, view View, storage Storage, prompter Prompter) *Controller {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if view == nil {
		view = NewMemoryView()
	}
	if storage == nil {
		storage = NewMemoryStorage()
	}

	return &Controller{
		config:    cfg,
		view:      view,
		storage:   storage,
		prompter:  prompter,
		scheduler: RealScheduler{},
		log:       noopLogger, // Logger disabled by default
	}
}

// Start runs the page-load sequence: greet the visitor, then report readiness.
// Event wiring is separate (see Bind in the wasm build).
func (c *Controller) Start(ctx context.Context) error {
	if err := c.Greet(ctx); err != nil {
		return err
	}
	if c.config.LoadedMessage != "" {
		c.log(c.config.LoadedMessage)
	}
	return nil
}

// SetLogger configures a custom logging function
// Pass nil to restore no-op logger
func (c *Controller) SetLogger(logger func(...any)) {
	if logger == nil {
		c.log = noopLogger
		return
	}
	c.log = logger
}

// DisableLogger disables logging
func (c *Controller) DisableLogger() {
	c.log = noopLogger
}

// SetScheduler replaces the timer source. nil is ignored.
func (c *Controller) SetScheduler(s Scheduler) {
	if s != nil {
		c.scheduler = s
	}
}

// Config returns the current configuration (read-only)
func (c *Controller) Config() *Config {
	return c.config
}

// View returns the view the controller drives
func (c *Controller) View() View {
	return c.view
}
