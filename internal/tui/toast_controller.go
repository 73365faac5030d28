package tui

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/redline/internal/core/styles"
)

const (
	defaultToastTTL   = 5 * time.Second
	defaultMaxToasts  = 3
	toastTickInterval = 100 * time.Millisecond
	toastWidth        = 50
)

// NoticeLevel is the severity of a user-visible notice.
type NoticeLevel int

const (
	NoticeInfo NoticeLevel = iota
	NoticeWarn
	NoticeError
)

type toast struct {
	level     NoticeLevel
	message   string
	remaining time.Duration
}

// ToastController manages the lifecycle of active toast notices. It
// handles push, eviction, TTL countdown, and dismissal. Workflow
// conditions (missing credential, upload failure, analysis failure)
// surface through it.
type ToastController struct {
	toasts  []toast
	ticking bool
}

func NewToastController() *ToastController {
	return &ToastController{}
}

// Push adds a notice to the toast stack. If the stack exceeds
// defaultMaxToasts, the oldest toast is evicted.
func (c *ToastController) Push(level NoticeLevel, message string) {
	c.toasts = append(c.toasts, toast{
		level:     level,
		message:   message,
		remaining: defaultToastTTL,
	})
	if len(c.toasts) > defaultMaxToasts {
		c.toasts = c.toasts[len(c.toasts)-defaultMaxToasts:]
	}
}

// Tick decrements the remaining TTL on all toasts by d and removes
// any that have expired.
func (c *ToastController) Tick(d time.Duration) {
	alive := c.toasts[:0]
	for _, t := range c.toasts {
		t.remaining -= d
		if t.remaining > 0 {
			alive = append(alive, t)
		}
	}
	c.toasts = alive
}

// Dismiss removes the newest toast.
func (c *ToastController) Dismiss() {
	if len(c.toasts) > 0 {
		c.toasts = c.toasts[:len(c.toasts)-1]
	}
}

// HasToasts returns true if there are any active toasts.
func (c *ToastController) HasToasts() bool {
	return len(c.toasts) > 0
}

// Ticking returns whether the tick timer is currently running.
func (c *ToastController) Ticking() bool {
	return c.ticking
}

// SetTicking sets the tick timer state.
func (c *ToastController) SetTicking(v bool) {
	c.ticking = v
}

// View renders the active toast stack, newest at the bottom.
func (c *ToastController) View() string {
	if len(c.toasts) == 0 {
		return ""
	}
	rendered := make([]string, 0, len(c.toasts))
	for _, t := range c.toasts {
		style := styles.ToastInfoStyle
		switch t.level {
		case NoticeWarn:
			style = styles.ToastWarnStyle
		case NoticeError:
			style = styles.ToastErrorStyle
		}
		rendered = append(rendered, style.MaxWidth(toastWidth).Render(t.message))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rendered...)
}
