package app

import (
	"context"

	"github.com/phanxgames/dualdial/pkg/logger"
)

const (
	toastLifetime = 3.0 // seconds
	maxToasts     = 3
)

type toast struct {
	title       string
	description string
	failure     bool
	remaining   float64
}

// Toasts returns the titles of the toasts on screen, oldest first.
func (a *App) Toasts() []string {
	out := make([]string, len(a.toasts))
	for i, t := range a.toasts {
		out[i] = t.title
	}
	return out
}

func (a *App) succeed(title, description string) {
	a.push(toast{title: title, description: description})
	if a.notifier != nil {
		n := a.notifier
		go func() {
			if err := n.Success(title, description); err != nil {
				a.logNotifyError(err)
			}
		}()
	}
}

func (a *App) fail(title string) {
	a.push(toast{title: title, failure: true})
	if a.notifier != nil {
		n := a.notifier
		go func() {
			if err := n.Failure(title); err != nil {
				a.logNotifyError(err)
			}
		}()
	}
}

func (a *App) push(t toast) {
	t.remaining = toastLifetime
	a.toasts = append(a.toasts, t)
	if len(a.toasts) > maxToasts {
		a.toasts = a.toasts[len(a.toasts)-maxToasts:]
	}
}

func (a *App) updateToasts(dt float64) {
	kept := a.toasts[:0]
	for _, t := range a.toasts {
		t.remaining -= dt
		if t.remaining > 0 {
			kept = append(kept, t)
		}
	}
	a.toasts = kept
}

func (a *App) logNotifyError(err error) {
	if a.log == nil {
		return
	}
	a.log.Warn(context.Background(), "desktop notification failed", logger.Error(err))
}
