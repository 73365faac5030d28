package tui

// Original workbench geometry, kept as the controller defaults. The
// result view wires terminal-cell values from config instead.
const (
	DefaultSidebarMinWidth = 350
	DefaultSidebarWidth    = 500
)

// SplitPane computes the result sidebar width from pointer drags. Two
// states: Idle and Resizing. Pointer samples are routed to Move only
// while Resizing, which is the scoped-acquisition guarantee: there is
// no pointer subscription outside a BeginResize/EndResize episode, and
// Teardown forces the episode closed on any exit path.
type SplitPane struct {
	min      int
	initial  int
	width    int
	resizing bool
}

// NewSplitPane creates an idle controller. Non-positive bounds fall
// back to the package defaults.
func NewSplitPane(minWidth, initialWidth int) SplitPane {
	if minWidth <= 0 {
		minWidth = DefaultSidebarMinWidth
	}
	if initialWidth <= 0 {
		initialWidth = DefaultSidebarWidth
	}
	return SplitPane{min: minWidth, initial: initialWidth, width: initialWidth}
}

// Width returns the current sidebar width.
func (s *SplitPane) Width() int { return s.width }

// Resizing reports whether a drag episode is active.
func (s *SplitPane) Resizing() bool { return s.resizing }

// Reset restores the initial width. Called whenever the result pane is
// freshly entered; width never persists across sessions.
func (s *SplitPane) Reset() {
	s.width = s.initial
	s.resizing = false
}

// BeginResize starts a drag episode.
func (s *SplitPane) BeginResize() { s.resizing = true }

// EndResize closes the drag episode.
func (s *SplitPane) EndResize() { s.resizing = false }

// Teardown force-closes any in-progress episode. Safe to call
// repeatedly and outside an episode.
func (s *SplitPane) Teardown() { s.resizing = false }

// Move recomputes the width from a pointer sample. Only meaningful
// while Resizing; samples outside an episode are dropped. The sidebar
// hangs off the right edge, so the raw width is the distance from the
// pointer to that edge, clamped to [min, viewportWidth/2].
func (s *SplitPane) Move(pointerX, viewportWidth int) {
	if !s.resizing {
		return
	}
	s.width = s.clamp(viewportWidth-pointerX, viewportWidth)
}

// Reclamp re-applies the bounds after a viewport change.
func (s *SplitPane) Reclamp(viewportWidth int) {
	s.width = s.clamp(s.width, viewportWidth)
}

func (s *SplitPane) clamp(raw, viewportWidth int) int {
	w := raw
	if limit := viewportWidth / 2; w > limit {
		w = limit
	}
	if w < s.min {
		w = s.min
	}
	return w
}
