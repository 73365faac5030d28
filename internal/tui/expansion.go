package tui

import (
	"fmt"
	"time"

	"github.com/colonyops/redline/internal/core/review"
)

// PulseDuration is how long an anchor line stays highlighted after a
// finding expands.
const PulseDuration = 1500 * time.Millisecond

// Command is a presentation side effect requested by the expansion
// controller. The controller never touches the rendering surface; the
// result view interprets commands, which keeps toggle logic testable
// on its own.
type Command interface{ isCommand() }

// ScrollToAnchor asks the presentation layer to bring an anchor line
// into view.
type ScrollToAnchor struct {
	Anchor string
}

// PulseHighlight asks the presentation layer to emphasize an anchor
// line for a duration.
type PulseHighlight struct {
	Anchor   string
	Duration time.Duration
}

func (ScrollToAnchor) isCommand() {}
func (PulseHighlight) isCommand() {}

// Anchor returns the anchor id for a finding's correlated line.
func Anchor(findingID int) string {
	return fmt.Sprintf("line-%d", findingID)
}

// ExpansionController tracks which finding is expanded in the sidebar.
// At most one finding is expanded at a time, and Safe-tier findings are
// never expandable.
type ExpansionController struct {
	expandedID int // 0 = none
}

// ExpandedID returns the expanded finding id, 0 when collapsed.
func (c *ExpansionController) ExpandedID() int { return c.expandedID }

// Expanded reports whether the given finding is the expanded one.
func (c *ExpansionController) Expanded(findingID int) bool {
	return c.expandedID != 0 && c.expandedID == findingID
}

// Collapse clears the expansion.
func (c *ExpansionController) Collapse() { c.expandedID = 0 }

// Toggle expands or collapses a finding. anchored reports whether a
// document line exists for the finding's anchor; when it does not, the
// scroll and pulse commands are silently dropped rather than errored.
// Commands are only emitted on a successful toggle-to-expanded, never
// on collapse.
func (c *ExpansionController) Toggle(f review.Finding, anchored bool) []Command {
	if review.Tier(f.Score) == review.TierSafe {
		return nil
	}
	if c.expandedID == f.ID {
		c.expandedID = 0
		return nil
	}
	c.expandedID = f.ID
	if !anchored {
		return nil
	}
	a := Anchor(f.ID)
	return []Command{
		ScrollToAnchor{Anchor: a},
		PulseHighlight{Anchor: a, Duration: PulseDuration},
	}
}
