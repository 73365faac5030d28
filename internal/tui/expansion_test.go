package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/redline/internal/core/review"
)

func TestExpansionExclusivity(t *testing.T) {
	var c ExpansionController
	a := review.Finding{ID: 1, Score: 0.9}
	b := review.Finding{ID: 2, Score: 0.6}

	c.Toggle(a, true)
	assert.Equal(t, 1, c.ExpandedID())

	// Expanding B implicitly collapses A.
	c.Toggle(b, true)
	assert.Equal(t, 2, c.ExpandedID())
	assert.False(t, c.Expanded(1))
	assert.True(t, c.Expanded(2))
}

func TestExpansionToggleCollapses(t *testing.T) {
	var c ExpansionController
	f := review.Finding{ID: 3, Score: 0.9}

	cmds := c.Toggle(f, true)
	require.NotEmpty(t, cmds)
	assert.Equal(t, 3, c.ExpandedID())

	cmds = c.Toggle(f, true)
	assert.Empty(t, cmds, "collapse emits no commands")
	assert.Equal(t, 0, c.ExpandedID())
}

func TestExpansionSafeFindingsNeverExpand(t *testing.T) {
	var c ExpansionController
	high := review.Finding{ID: 1, Score: 0.9}
	safe := review.Finding{ID: 2, Score: 0.2}

	c.Toggle(high, true)
	cmds := c.Toggle(safe, true)

	assert.Empty(t, cmds)
	assert.Equal(t, 1, c.ExpandedID(), "a Safe finding never changes the expanded id")
}

func TestExpansionCommands(t *testing.T) {
	var c ExpansionController
	f := review.Finding{ID: 7, Score: 0.85}

	cmds := c.Toggle(f, true)
	require.Len(t, cmds, 2)

	scroll, ok := cmds[0].(ScrollToAnchor)
	require.True(t, ok)
	assert.Equal(t, "line-7", scroll.Anchor)

	pulse, ok := cmds[1].(PulseHighlight)
	require.True(t, ok)
	assert.Equal(t, "line-7", pulse.Anchor)
	assert.Equal(t, PulseDuration, pulse.Duration)
}

func TestExpansionUnanchoredDropsCommands(t *testing.T) {
	var c ExpansionController
	f := review.Finding{ID: 9, Score: 0.9}

	// The finding never matched a line: it still expands, but the
	// scroll/pulse commands are dropped silently.
	cmds := c.Toggle(f, false)
	assert.Empty(t, cmds)
	assert.Equal(t, 9, c.ExpandedID())
}
