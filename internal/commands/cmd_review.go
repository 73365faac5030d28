package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/redline/internal/analysis"
	"github.com/colonyops/redline/internal/core/review"
	"github.com/colonyops/redline/internal/tui"
)

type ReviewCmd struct {
	flags *Flags
}

// NewReviewCmd creates the interactive review command.
func NewReviewCmd(flags *Flags) *ReviewCmd {
	return &ReviewCmd{flags: flags}
}

// Run executes the review workbench. Exported for use as default command.
func (cmd *ReviewCmd) Run(ctx context.Context, c *cli.Command) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("review requires an interactive terminal")
	}

	cfg := cmd.flags.Config
	if cmd.flags.APIKey != "" {
		cfg.APIKey = cmd.flags.APIKey
	}

	workdir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolve working directory: %w", err)
	}

	client := analysis.New(cfg.Service.BaseURL)
	wf := review.NewWorkflow(cfg.APIKey)

	log.Info().
		Str("base_url", cfg.Service.BaseURL).
		Bool("credential_preset", cfg.APIKey != "").
		Msg("starting review workbench")

	m := tui.New(cfg, client, wf, workdir)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
