package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/redline/internal/core/styles"
)

// EditorView is the review step: the extracted text in an editable
// textarea. Every keystroke flows back into the workflow document via
// the model, so correlation always runs against what the user sees.
type EditorView struct {
	textarea textarea.Model
	keys     editorKeyMap
	width    int
	height   int
}

// NewEditorView creates the editor with an empty buffer.
func NewEditorView() EditorView {
	ta := textarea.New()
	ta.Placeholder = "Extracted text appears here"
	ta.CharLimit = 0
	ta.ShowLineNumbers = true

	return EditorView{
		textarea: ta,
		keys:     newEditorKeyMap(),
	}
}

// SetContent loads the extracted text and focuses the editor.
func (v *EditorView) SetContent(text string) {
	v.textarea.SetValue(text)
	v.textarea.Focus()
}

// Value returns the current buffer contents.
func (v *EditorView) Value() string {
	return v.textarea.Value()
}

// SetSize updates the view dimensions.
func (v *EditorView) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.textarea.SetWidth(width)
	// Reserve rows for the title and footer.
	if h := height - 4; h > 0 {
		v.textarea.SetHeight(h)
	}
}

// Update routes messages to the textarea.
func (v EditorView) Update(msg tea.Msg) (EditorView, tea.Cmd) {
	var cmd tea.Cmd
	v.textarea, cmd = v.textarea.Update(msg)
	return v, cmd
}

// View renders the review step.
func (v EditorView) View() string {
	title := styles.TitleStyle.Render("Review extracted text")
	stat := styles.StatusStyle.Render(fmt.Sprintf("%d chars", len(v.textarea.Value())))
	footer := styles.HelpStyle.Render("ctrl+r run analysis • ctrl+c quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Bottom, title, "  ", stat),
		v.textarea.View(),
		footer,
	)
}
