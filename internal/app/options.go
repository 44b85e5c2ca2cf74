package app

import (
	"github.com/phanxgames/dualdial"
	"github.com/phanxgames/dualdial/internal/feedback"
	"github.com/phanxgames/dualdial/internal/metrics"
	"github.com/phanxgames/dualdial/pkg/logger"
)

// Option configures an App.
type Option func(*App)

// WithInput replaces the mouse and touch input, for scripted runs and tests.
func WithInput(in *dualdial.Input) Option {
	return func(a *App) {
		a.input = in
	}
}

// WithDialogs sets the place-name and delete-confirmation dialogs.
func WithDialogs(d feedback.Dialogs) Option {
	return func(a *App) {
		a.dialogs = d
	}
}

// WithNotifier mirrors toasts as desktop notifications.
func WithNotifier(n feedback.Notifier) Option {
	return func(a *App) {
		a.notifier = n
	}
}

// WithTicker plays a tick on every selection change.
func WithTicker(t Ticker) Option {
	return func(a *App) {
		a.ticker = t
	}
}

// WithMetrics attaches m as the dial's selection sink and records saves
// and deletes.
func WithMetrics(m *metrics.Manager) Option {
	return func(a *App) {
		a.metrics = m
	}
}

// WithLogger sets the application logger.
func WithLogger(l logger.Logger) Option {
	return func(a *App) {
		a.log = l
	}
}
