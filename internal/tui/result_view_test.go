package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/redline/internal/core/review"
)

func resultFixture() ([]review.AnnotatedLine, []review.Finding) {
	findings := []review.Finding{
		{ID: 1, Title: "계약의 해지 (unilateral termination)", Score: 0.91, Reason: "r", Description: "d", Fix: "f"},
		{ID: 2, Title: "위약금 (penalty clause)", Score: 0.55, Reason: "r", Description: "d", Fix: "f"},
		{ID: 3, Title: "통지 (notice period)", Score: 0.2, Reason: "r", Description: "d", Fix: "f"},
	}
	lines := []string{
		"제1조 (목적)",
		"",
		"제3조 (계약의 해지) 어느 일방은 즉시 해지할 수 있다",
		"제7조 (위약금) 위약금은 계약금의 3배로 한다",
	}
	return review.Correlate(lines, findings), findings
}

func newResultFixtureView() ResultView {
	v := NewResultView(36, 50)
	v.width, v.height = 160, 48
	annotated, findings := resultFixture()
	v.Enter(annotated, findings)
	return v
}

func TestResultViewEnterResetsState(t *testing.T) {
	v := newResultFixtureView()

	v.filter = review.FilterToxicOnly
	v.expansion.Toggle(v.findings[0], true)
	v.split.BeginResize()
	v.split.Move(900, 1600)

	annotated, findings := resultFixture()
	v.Enter(annotated, findings)

	assert.Equal(t, review.FilterAll, v.filter)
	assert.Equal(t, 0, v.expansion.ExpandedID())
	assert.False(t, v.split.Resizing())
	assert.Equal(t, 50, v.split.Width())
}

func TestResultViewFilterNarrowsSidebar(t *testing.T) {
	v := newResultFixtureView()

	require.Len(t, v.visible(), 3)

	v.filter = v.filter.Toggle()
	assert.Len(t, v.visible(), 2)
	for _, f := range v.visible() {
		assert.True(t, review.IsToxic(f))
	}
}

func TestResultViewToggleScrollsAndPulses(t *testing.T) {
	v := newResultFixtureView()

	cmd := v.toggleSelected()

	assert.True(t, v.expansion.Expanded(1))
	assert.Equal(t, Anchor(1), v.pulseAnchor)
	require.NotNil(t, cmd)

	v.Update(pulseExpireMsg{anchor: Anchor(1)})
}

func TestResultViewPulseExpiry(t *testing.T) {
	v := newResultFixtureView()
	v.toggleSelected()
	require.NotEmpty(t, v.pulseAnchor)

	v, _ = v.Update(pulseExpireMsg{anchor: v.pulseAnchor})
	assert.Empty(t, v.pulseAnchor)
}

func TestResultViewSafeFindingNeverExpands(t *testing.T) {
	v := newResultFixtureView()
	v.selected = 2 // notice period, score 0.2

	cmd := v.toggleSelected()

	assert.Nil(t, cmd)
	assert.Equal(t, 0, v.expansion.ExpandedID())
}

func TestResultViewSelectionClampsUnderFilter(t *testing.T) {
	v := newResultFixtureView()
	v.selected = 2

	v.filter = v.filter.Toggle()
	v.refreshSidebar()

	assert.Less(t, v.selected, len(v.visible()))
}
