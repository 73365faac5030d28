package tui

import (
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/redline/internal/core/styles"
)

// maxCandidates caps the number of discovered documents offered in the
// picker.
const maxCandidates = 30

// DiscoverContracts globs for candidate documents under workdir using
// the configured doublestar patterns. Returns paths relative to
// workdir, sorted, de-duplicated.
func DiscoverContracts(workdir string, patterns []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, pattern := range patterns {
		matches, err := doublestar.Glob(os.DirFS(workdir), pattern)
		if err != nil {
			continue
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				out = append(out, m)
			}
		}
	}
	sort.Strings(out)
	if len(out) > maxCandidates {
		out = out[:maxCandidates]
	}
	return out
}

// uploadRequestedMsg is emitted when the upload form completes.
type uploadRequestedMsg struct {
	path       string
	credential string
}

// UploadView is the ingest step: a document picker plus credential
// entry. The form is rebuilt after each failed upload so the user can
// adjust and retry.
type UploadView struct {
	form       *huh.Form
	credential string // preset key from flag/env/config, may be empty
	candidates []string
	hasPreset  bool
	width      int
	height     int
}

// NewUploadView discovers candidate documents and builds the form.
// credential is the preset key from config; when empty the form asks
// for one.
func NewUploadView(workdir string, patterns []string, credential string) UploadView {
	v := UploadView{
		candidates: DiscoverContracts(workdir, patterns),
		credential: credential,
		hasPreset:  credential != "",
	}
	v.buildForm()
	return v
}

// buildForm constructs the huh form. Field values are read back with
// GetString on completion rather than bound with Value: the view is
// copied on every Update, so a pointer binding would write into a
// stale copy.
func (v *UploadView) buildForm() {
	var fields []huh.Field

	if len(v.candidates) > 0 {
		fields = append(fields, huh.NewSelect[string]().
			Key("path").
			Title("Contract document").
			Description("Discovered in the working directory").
			Options(huh.NewOptions(v.candidates...)...))
	} else {
		fields = append(fields, huh.NewInput().
			Key("path").
			Title("Contract document").
			Placeholder("path/to/contract.pdf"))
	}

	if !v.hasPreset {
		fields = append(fields, huh.NewInput().
			Key("credential").
			Title("API key").
			Description("Credential for the analysis service").
			EchoMode(huh.EchoModePassword))
	}

	v.form = huh.NewForm(huh.NewGroup(fields...))
}

// Reset rebuilds the form after a rejected or failed upload so the
// step is usable again. The returned command must run: huh focuses
// fields only during Init, and a form that never ran Init drops every
// keystroke.
func (v *UploadView) Reset() tea.Cmd {
	v.buildForm()
	return v.form.Init()
}

// SetSize updates the view dimensions.
func (v *UploadView) SetSize(width, height int) {
	v.width = width
	v.height = height
}

// Init starts the embedded form.
func (v UploadView) Init() tea.Cmd {
	return v.form.Init()
}

// Update routes messages to the form. When the form completes it emits
// uploadRequestedMsg and the model takes over.
func (v UploadView) Update(msg tea.Msg) (UploadView, tea.Cmd) {
	form, cmd := v.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		v.form = f
	}

	if v.form.State == huh.StateCompleted {
		path := v.form.GetString("path")
		credential := v.credential
		if !v.hasPreset {
			credential = v.form.GetString("credential")
		}
		return v, tea.Batch(cmd, func() tea.Msg {
			return uploadRequestedMsg{path: path, credential: credential}
		})
	}
	return v, cmd
}

// View renders the upload step.
func (v UploadView) View() string {
	title := styles.TitleStyle.Render(styles.IconDocument + "  redline — contract review")

	credNote := styles.FormHelpStyle.Render("credential: entered below")
	if v.hasPreset {
		credNote = styles.FormHelpStyle.Render(styles.IconKey + " credential: configured")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		v.form.View(),
		"",
		credNote,
	)
}
