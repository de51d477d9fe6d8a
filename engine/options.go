package engine

import (
	"time"

	"github.com/npillmayer/tcss/style"
)

// Option configures an engine.
type Option func(*config)

type config struct {
	interval  time.Duration
	scheduler Scheduler
	defaults  bool
	onError   func(error)
	registry  *style.Registry
}

func defaultConfig() config {
	return config{
		interval: DefaultInterval,
		defaults: true,
		onError: func(err error) {
			tracer().Errorf("%v", err)
		},
	}
}

// WithInterval sets the delay of scheduled repaints.
func WithInterval(d time.Duration) Option {
	return func(c *config) {
		if d >= 0 {
			c.interval = d
		}
	}
}

// WithScheduler sets the scheduler for repaints. Without this option, or
// for a TimerScheduler without Post, repaints are posted to the event loop
// of the root (see dom.Root.Post).
func WithScheduler(s Scheduler) Option {
	return func(c *config) {
		if s != nil {
			c.scheduler = s
		}
	}
}

// WithDefaults switches resolving of registry defaults for properties not
// set by any rule on or off. Default is on.
func WithDefaults(on bool) Option {
	return func(c *config) {
		c.defaults = on
	}
}

// WithErrorHandler sets a handler for errors occuring outside of calls
// by clients, i.e. during scheduled repaints. The default handler traces
// errors.
func WithErrorHandler(h func(error)) Option {
	return func(c *config) {
		if h != nil {
			c.onError = h
		}
	}
}

// WithRegistry sets the property registry, which binds properties to the
// host's accessors. Without a registry, properties are resolved but never
// applied.
func WithRegistry(reg *style.Registry) Option {
	return func(c *config) {
		c.registry = reg
	}
}
