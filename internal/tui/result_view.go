package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/redline/internal/core/review"
	"github.com/colonyops/redline/internal/core/styles"
)

// pulseExpireMsg clears a pulse highlight after its duration elapses.
type pulseExpireMsg struct {
	anchor string
}

// ResultView is the inspection step: the annotated document on the
// left, the findings sidebar on the right, separated by a draggable
// divider. It owns expansion, layout, and filter state, all of which
// reset when the step is freshly entered.
type ResultView struct {
	docVP     viewport.Model
	sideVP    viewport.Model
	split     SplitPane
	expansion ExpansionController
	filter    review.FilterMode
	keys      keyMap
	help      help.Model

	annotated   []review.AnnotatedLine
	findings    []review.Finding
	anchors     map[string]int // anchor id -> document line index
	selected    int
	pulseAnchor string
	itemLines   []int // sidebar display line of each visible finding

	md     *glamour.TermRenderer
	width  int
	height int
}

// NewResultView creates the view with sidebar bounds in terminal cells.
func NewResultView(sidebarMin, sidebarInitial int) ResultView {
	return ResultView{
		split: NewSplitPane(sidebarMin, sidebarInitial),
		keys:  newKeyMap(),
		help:  help.New(),
	}
}

// Enter loads a fresh analysis result. Expansion, filter, and layout
// state never survive from a previous visit.
func (v *ResultView) Enter(annotated []review.AnnotatedLine, findings []review.Finding) {
	v.annotated = annotated
	v.findings = findings
	v.split.Reset()
	v.expansion.Collapse()
	v.filter = review.FilterAll
	v.selected = 0
	v.pulseAnchor = ""

	v.anchors = make(map[string]int)
	for id, line := range review.AnchorIndex(annotated) {
		v.anchors[Anchor(id)] = line
	}

	v.layout()
}

// Teardown releases any in-progress resize drag. Called on every exit
// path out of the result step.
func (v *ResultView) Teardown() {
	v.split.Teardown()
}

// SetSize updates dimensions and re-clamps the sidebar.
func (v *ResultView) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.split.Reclamp(width)
	v.layout()
}

func (v *ResultView) contentHeight() int {
	h := v.height - 3 // title, footer, spacing
	if h < 1 {
		h = 1
	}
	return h
}

func (v *ResultView) docWidth() int {
	w := v.width - v.split.Width() - 1 // one divider column
	if w < 1 {
		w = 1
	}
	return w
}

// layout rebuilds both panes for the current geometry.
func (v *ResultView) layout() {
	if v.width == 0 {
		return
	}

	v.docVP.Width = v.docWidth()
	v.docVP.Height = v.contentHeight()
	v.sideVP.Width = v.split.Width()
	v.sideVP.Height = v.contentHeight()

	if wrap := v.split.Width() - 4; wrap > 10 {
		r, err := glamour.NewTermRenderer(
			glamour.WithStyles(styles.GlamourStyle()),
			glamour.WithWordWrap(wrap),
		)
		if err == nil {
			v.md = r
		}
	}

	v.refreshDoc()
	v.refreshSidebar()
}

// visible returns the findings under the current filter.
func (v *ResultView) visible() []review.Finding {
	return review.Filter(v.findings, v.filter)
}

func (v *ResultView) refreshDoc() {
	var b strings.Builder
	pulseLine, pulsing := -1, false
	if v.pulseAnchor != "" {
		if line, ok := v.anchors[v.pulseAnchor]; ok {
			pulseLine, pulsing = line, true
		}
	}

	for i, line := range v.annotated {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(styles.LineNumStyle.Render(fmt.Sprintf("%4d │ ", line.Index+1)))

		if line.Blank() {
			continue // spacer
		}

		text := line.Text
		switch {
		case pulsing && line.Index == pulseLine:
			text = styles.PulseLineStyle.Render(text)
		case line.Matched() && line.Tier == review.TierHigh:
			text = styles.MatchedHighLineStyle.Render(styles.IconHigh + " " + text)
		case line.Matched() && line.Tier == review.TierCaution:
			text = styles.MatchedCautionLineStyle.Render(styles.IconCaution + " " + text)
		}
		b.WriteString(text)
	}

	v.docVP.SetContent(b.String())
}

func (v *ResultView) refreshSidebar() {
	visible := v.visible()
	if v.selected >= len(visible) {
		v.selected = len(visible) - 1
	}
	if v.selected < 0 {
		v.selected = 0
	}

	var lines []string
	lines = append(lines, styles.SummaryStyle.Render(
		fmt.Sprintf("%s %d findings · %d toxic", styles.IconFlag, len(v.findings), review.ToxicCount(v.findings))))
	lines = append(lines, styles.FilterStyle.Render(
		fmt.Sprintf("%s filter: %s", styles.IconFilter, v.filter)))
	lines = append(lines, "")

	v.itemLines = v.itemLines[:0]
	for i, f := range visible {
		v.itemLines = append(v.itemLines, len(lines))

		tier := review.Tier(f.Score)
		icon := styles.TierStyle(tier.String()).Render(styles.TierIcon(tier.String()))

		title := f.Title
		style := styles.FindingStyle
		cursor := "  "
		if i == v.selected {
			style = styles.FindingSelectedStyle
			cursor = "> "
		}
		lines = append(lines, cursor+icon+" "+style.Render(title))

		if v.expansion.Expanded(f.ID) {
			lines = append(lines, v.detailLines(f)...)
		}
	}

	if len(visible) == 0 {
		lines = append(lines, styles.HelpStyle.Render("no findings under this filter"))
	}

	v.sideVP.SetContent(strings.Join(lines, "\n"))
	v.ensureSelectedVisible()
}

// detailLines renders the expanded body of a finding.
func (v *ResultView) detailLines(f review.Finding) []string {
	tier := review.Tier(f.Score)
	head := styles.FindingExpandedStyle.Render(
		styles.TierStyle(tier.String()).Render(tier.String()) +
			styles.StatusStyle.Render(fmt.Sprintf(" · score %.2f", f.Score)))

	md := fmt.Sprintf("**Why flagged**\n\n%s\n\n**What it means**\n\n%s\n\n**Suggested fix**\n\n%s",
		f.Reason, f.Description, f.Fix)

	body := md
	if v.md != nil {
		if rendered, err := v.md.Render(md); err == nil {
			body = rendered
		}
	}

	out := []string{head}
	for _, l := range strings.Split(strings.Trim(body, "\n"), "\n") {
		out = append(out, "  "+l)
	}
	out = append(out, "")
	return out
}

func (v *ResultView) ensureSelectedVisible() {
	if v.selected >= len(v.itemLines) {
		return
	}
	line := v.itemLines[v.selected]
	if line < v.sideVP.YOffset {
		v.sideVP.SetYOffset(line)
	}
	if bottom := v.sideVP.YOffset + v.sideVP.Height - 1; line > bottom {
		v.sideVP.SetYOffset(line - v.sideVP.Height + 1)
	}
}

// Update handles keys, pointer drags, and pulse expiry.
func (v ResultView) Update(msg tea.Msg) (ResultView, tea.Cmd) {
	switch msg := msg.(type) {
	case pulseExpireMsg:
		if v.pulseAnchor == msg.anchor {
			v.pulseAnchor = ""
			v.refreshDoc()
		}
		return v, nil

	case tea.MouseMsg:
		return v.updateMouse(msg)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, v.keys.Up):
			if v.selected > 0 {
				v.selected--
				v.refreshSidebar()
			}
			return v, nil
		case key.Matches(msg, v.keys.Down):
			if v.selected < len(v.visible())-1 {
				v.selected++
				v.refreshSidebar()
			}
			return v, nil
		case key.Matches(msg, v.keys.Toggle):
			cmd := v.toggleSelected()
			return v, cmd
		case key.Matches(msg, v.keys.Filter):
			v.filter = v.filter.Toggle()
			v.selected = 0
			v.refreshSidebar()
			return v, nil
		case key.Matches(msg, v.keys.Top):
			v.docVP.GotoTop()
			return v, nil
		case key.Matches(msg, v.keys.Bottom):
			v.docVP.GotoBottom()
			return v, nil
		}
	}

	// Remaining messages (page keys, wheel) scroll the document pane.
	var cmd tea.Cmd
	v.docVP, cmd = v.docVP.Update(msg)
	return v, cmd
}

// updateMouse drives the split-pane drag episode. The controller only
// sees motion samples between press and release on the divider; that
// scoping is what guarantees listener release on every exit path.
func (v ResultView) updateMouse(msg tea.MouseMsg) (ResultView, tea.Cmd) {
	divider := v.docWidth()

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft && abs(msg.X-divider) <= 1 {
			v.split.BeginResize()
		}
	case tea.MouseActionMotion:
		if v.split.Resizing() {
			v.split.Move(msg.X, v.width)
			v.layout()
		}
	case tea.MouseActionRelease:
		v.split.EndResize()
	}

	if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
		var cmd tea.Cmd
		v.docVP, cmd = v.docVP.Update(msg)
		return v, cmd
	}
	return v, nil
}

// toggleSelected expands or collapses the selected finding and
// interprets the controller's presentation commands.
func (v *ResultView) toggleSelected() tea.Cmd {
	visible := v.visible()
	if len(visible) == 0 || v.selected >= len(visible) {
		return nil
	}
	f := visible[v.selected]
	_, anchored := v.anchors[Anchor(f.ID)]

	var teaCmd tea.Cmd
	for _, cmd := range v.expansion.Toggle(f, anchored) {
		switch cmd := cmd.(type) {
		case ScrollToAnchor:
			v.scrollToAnchor(cmd.Anchor)
		case PulseHighlight:
			anchor := cmd.Anchor
			v.pulseAnchor = anchor
			teaCmd = tea.Tick(cmd.Duration, func(time.Time) tea.Msg {
				return pulseExpireMsg{anchor: anchor}
			})
		}
	}

	v.refreshDoc()
	v.refreshSidebar()
	return teaCmd
}

func (v *ResultView) scrollToAnchor(anchor string) {
	line, ok := v.anchors[anchor]
	if !ok {
		return
	}
	target := line - v.docVP.Height/3
	if target < 0 {
		target = 0
	}
	v.docVP.SetYOffset(target)
}

// View renders the split-pane result step.
func (v ResultView) View() string {
	title := styles.TitleStyle.Render("Analysis results")

	divider := strings.TrimRight(
		strings.Repeat(styles.DividerStyle.Render("│")+"\n", v.contentHeight()), "\n")

	panes := lipgloss.JoinHorizontal(lipgloss.Top,
		v.docVP.View(),
		divider,
		v.sideVP.View(),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		panes,
		v.help.View(v.keys),
	)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
