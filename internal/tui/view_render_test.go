package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/redline/pkg/tuitest"
)

func TestResultViewRendersDocumentAndSidebar(t *testing.T) {
	v := NewResultView(36, 50)
	annotated, findings := resultFixture()
	v.width, v.height = 160, 48
	v.Enter(annotated, findings)

	out := tuitest.StripANSI(v.View())

	assert.Contains(t, out, "Analysis results")
	assert.Contains(t, out, "3 findings")
	assert.Contains(t, out, "2 toxic")
	assert.Contains(t, out, "제3조 (계약의 해지)")
	assert.Contains(t, out, "계약의 해지 (unilateral termination)")
}

func TestResultViewExpandedDetailRenders(t *testing.T) {
	v := NewResultView(36, 50)
	annotated, findings := resultFixture()
	v.width, v.height = 160, 48
	v.Enter(annotated, findings)

	require.NotNil(t, v.toggleSelected())
	out := tuitest.StripANSI(v.View())

	assert.Contains(t, out, "score 0.91")
}

func TestEditorViewTypingUpdatesValue(t *testing.T) {
	v := NewEditorView()
	v.SetSize(120, 40)
	v.SetContent("clause text")

	for _, msg := range tuitest.KeyPressString("!") {
		v, _ = v.Update(msg)
	}

	assert.Contains(t, v.Value(), "!")
	out := tuitest.StripANSI(v.View())
	assert.Contains(t, out, "ctrl+r")
}
