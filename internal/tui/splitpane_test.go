package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitPaneClamping(t *testing.T) {
	tests := []struct {
		name     string
		pointerX int
		viewport int
		want     int
	}{
		{name: "pointer far left clamps to half viewport", pointerX: -500, viewport: 1000, want: 500},
		{name: "pointer at right edge clamps to floor", pointerX: 999, viewport: 1000, want: 350},
		{name: "pointer inside the band", pointerX: 600, viewport: 1000, want: 400},
		{name: "half viewport floors on odd widths", pointerX: -100, viewport: 1001, want: 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSplitPane(0, 0)
			s.BeginResize()
			s.Move(tt.pointerX, tt.viewport)
			assert.Equal(t, tt.want, s.Width())
		})
	}
}

func TestSplitPaneIgnoresMovesWhileIdle(t *testing.T) {
	s := NewSplitPane(0, 0)
	assert.Equal(t, DefaultSidebarWidth, s.Width())

	s.Move(600, 1000)
	assert.Equal(t, DefaultSidebarWidth, s.Width(), "idle controller must drop pointer samples")

	s.BeginResize()
	assert.True(t, s.Resizing())
	s.Move(600, 1000)
	assert.Equal(t, 400, s.Width())

	s.EndResize()
	assert.False(t, s.Resizing())
	s.Move(900, 1000)
	assert.Equal(t, 400, s.Width())
}

func TestSplitPaneResetRestoresInitialWidth(t *testing.T) {
	s := NewSplitPane(30, 48)
	s.BeginResize()
	s.Move(100, 200)
	assert.NotEqual(t, 48, s.Width())

	s.Reset()
	assert.Equal(t, 48, s.Width())
	assert.False(t, s.Resizing(), "reset closes any drag episode")
}

func TestSplitPaneTeardownClosesEpisode(t *testing.T) {
	s := NewSplitPane(0, 0)
	s.BeginResize()
	s.Teardown()
	assert.False(t, s.Resizing())

	// Idempotent.
	s.Teardown()
	assert.False(t, s.Resizing())
}

func TestSplitPaneReclampOnViewportChange(t *testing.T) {
	s := NewSplitPane(30, 48)
	s.BeginResize()
	s.Move(100, 200) // width 100, the half-viewport cap
	s.EndResize()
	assert.Equal(t, 100, s.Width())

	// Viewport shrinks; the width is pulled back under the new cap.
	s.Reclamp(120)
	assert.Equal(t, 60, s.Width())

	// Viewport grows; current width already satisfies the bounds.
	s.Reclamp(400)
	assert.Equal(t, 60, s.Width())
}
