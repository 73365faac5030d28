package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/colonyops/redline/internal/core/config"
	"github.com/colonyops/redline/internal/core/logging"
	"github.com/colonyops/redline/internal/core/review"
	"github.com/colonyops/redline/internal/core/styles"
)

// AnalysisService is the remote surface the workbench talks to.
// analysis.Client satisfies it; tests substitute a fake.
type AnalysisService interface {
	UploadDocument(ctx context.Context, filename string, content []byte, credential string) (string, error)
	AnalyzeDocument(ctx context.Context, text, credential string) ([]review.Finding, error)
}

type (
	uploadDoneMsg struct {
		text string
		err  error
	}
	analysisDoneMsg struct {
		findings []review.Finding
		err      error
	}
	toastTickMsg time.Time
)

// Model is the root bubbletea model. It owns the workflow reducer and
// routes messages to the view for the current step; all service calls
// run inside tea commands so the reducer itself stays single-threaded.
type Model struct {
	cfg *config.Config
	svc AnalysisService
	wf  *review.Workflow
	log zerolog.Logger

	upload UploadView
	editor EditorView
	result ResultView
	toasts *ToastController

	spin       spinner.Model
	editorKeys editorKeyMap
	keys       keyMap

	width  int
	height int
}

// New builds the root model. workdir seeds document discovery for the
// upload picker.
func New(cfg *config.Config, svc AnalysisService, wf *review.Workflow, workdir string) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(styles.ColorPrimary)

	return Model{
		cfg:        cfg,
		svc:        svc,
		wf:         wf,
		log:        logging.Component("tui"),
		upload:     NewUploadView(workdir, cfg.Picker.Patterns, cfg.APIKey),
		editor:     NewEditorView(),
		result:     NewResultView(cfg.TUI.SidebarMinWidth, cfg.TUI.SidebarWidth),
		toasts:     NewToastController(),
		spin:       sp,
		editorKeys: newEditorKeyMap(),
		keys:       newKeyMap(),
	}
}

func (m Model) Init() tea.Cmd {
	return m.upload.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.upload.SetSize(msg.Width, msg.Height)
		m.editor.SetSize(msg.Width, msg.Height)
		m.result.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.result.Teardown()
			return m, tea.Quit
		}
		if key.Matches(msg, m.keys.Dismiss) && m.toasts.HasToasts() {
			m.toasts.Dismiss()
			return m, nil
		}

	case toastTickMsg:
		m.toasts.Tick(toastTickInterval)
		if !m.toasts.HasToasts() {
			m.toasts.SetTicking(false)
			return m, nil
		}
		return m, tickToasts()

	case spinner.TickMsg:
		if !m.wf.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case uploadRequestedMsg:
		return m.startUpload(msg)

	case uploadDoneMsg:
		return m.finishUpload(msg)

	case analysisDoneMsg:
		return m.finishAnalysis(msg)
	}

	switch m.wf.State() {
	case review.StateUpload:
		var cmd tea.Cmd
		m.upload, cmd = m.upload.Update(msg)
		return m, cmd

	case review.StateReview:
		return m.updateReview(msg)

	case review.StateResult:
		if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, m.keys.Quit) {
			m.result.Teardown()
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.result, cmd = m.result.Update(msg)
		return m, cmd
	}
	return m, nil
}

// startUpload validates the picked document and kicks off extraction.
func (m Model) startUpload(msg uploadRequestedMsg) (tea.Model, tea.Cmd) {
	if !strings.EqualFold(filepath.Ext(msg.path), ".pdf") {
		resetCmd := m.upload.Reset()
		return m, tea.Batch(resetCmd, m.notify(NoticeWarn, "only .pdf documents are supported"))
	}
	if msg.credential != "" {
		m.wf.SetCredential(msg.credential)
	}
	if err := m.wf.BeginUpload(); err != nil {
		resetCmd := m.upload.Reset()
		return m, tea.Batch(resetCmd, m.notify(noticeFor(err), err.Error()))
	}
	m.log.Info().Str("path", msg.path).Msg("upload requested")
	return m, tea.Batch(m.spin.Tick, m.uploadCmd(msg.path))
}

func (m Model) uploadCmd(path string) tea.Cmd {
	svc, credential := m.svc, m.wf.Credential()
	return func() tea.Msg {
		content, err := os.ReadFile(path)
		if err != nil {
			return uploadDoneMsg{err: fmt.Errorf("read document: %w", err)}
		}
		text, err := svc.UploadDocument(context.Background(), filepath.Base(path), content, credential)
		return uploadDoneMsg{text: text, err: err}
	}
}

func (m Model) finishUpload(msg uploadDoneMsg) (tea.Model, tea.Cmd) {
	if err := m.wf.CompleteUpload(msg.text, msg.err); err != nil {
		resetCmd := m.upload.Reset()
		return m, tea.Batch(resetCmd, m.notify(NoticeError, err.Error()))
	}
	m.editor.SetContent(msg.text)
	m.editor.SetSize(m.width, m.height)
	return m, nil
}

func (m Model) updateReview(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, m.editorKeys.Analyze) {
		m.wf.EditText(m.editor.Value())
		if err := m.wf.BeginAnalysis(); err != nil {
			return m, m.notify(noticeFor(err), err.Error())
		}
		return m, tea.Batch(m.spin.Tick, m.analyzeCmd())
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	m.wf.EditText(m.editor.Value())
	return m, cmd
}

func (m Model) analyzeCmd() tea.Cmd {
	svc := m.svc
	text, credential := m.wf.Document().RawText, m.wf.Credential()
	return func() tea.Msg {
		findings, err := svc.AnalyzeDocument(context.Background(), text, credential)
		return analysisDoneMsg{findings: findings, err: err}
	}
}

func (m Model) finishAnalysis(msg analysisDoneMsg) (tea.Model, tea.Cmd) {
	if err := m.wf.CompleteAnalysis(msg.findings, msg.err); err != nil {
		return m, m.notify(NoticeError, err.Error())
	}
	m.result.Enter(m.wf.Annotated(), m.wf.Findings())
	m.result.SetSize(m.width, m.height)
	return m, nil
}

// notify pushes a toast and starts the expiry tick loop if it is not
// already running.
func (m *Model) notify(level NoticeLevel, text string) tea.Cmd {
	m.toasts.Push(level, text)
	if m.toasts.Ticking() {
		return nil
	}
	m.toasts.SetTicking(true)
	return tickToasts()
}

func tickToasts() tea.Cmd {
	return tea.Tick(toastTickInterval, func(t time.Time) tea.Msg {
		return toastTickMsg(t)
	})
}

// noticeFor maps workflow errors onto toast severity. Preconditions
// are warnings; call failures are errors.
func noticeFor(err error) NoticeLevel {
	switch {
	case errors.Is(err, review.ErrMissingCredential),
		errors.Is(err, review.ErrBusy),
		errors.Is(err, review.ErrWrongState):
		return NoticeWarn
	default:
		return NoticeError
	}
}

func (m Model) View() string {
	var view string
	switch m.wf.State() {
	case review.StateUpload:
		view = m.upload.View()
	case review.StateReview:
		view = m.editor.View()
	case review.StateResult:
		view = m.result.View()
	}

	if m.wf.Loading() {
		view = lipgloss.JoinVertical(lipgloss.Left,
			view,
			m.spin.View()+styles.StatusStyle.Render(" working..."),
		)
	}
	if m.toasts.HasToasts() {
		view = lipgloss.JoinVertical(lipgloss.Left, view, m.toasts.View())
	}
	return view
}
