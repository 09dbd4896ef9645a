package cli

import (
	"fmt"
	"io"
	"os"

	"crawler-dashboard/pkg/bulk"
	"crawler-dashboard/pkg/cli/client"
	"crawler-dashboard/pkg/cli/dashboard"
	"crawler-dashboard/pkg/cli/logger"
	"crawler-dashboard/pkg/cli/tui"
	"crawler-dashboard/pkg/config"

	tea "github.com/charmbracelet/bubbletea"
)

type App struct {
	cfg *config.Config
	api dashboard.API
	out io.Writer
}

func NewApp(cfg *config.Config) *App {
	return &App{
		cfg: cfg,
		out: os.Stdout,
	}
}

// getAPI returns the HTTP client, creating it if necessary
func (a *App) getAPI() (dashboard.API, error) {
	if a.api != nil {
		return a.api, nil
	}

	if a.cfg.CLI.BaseURL == "" {
		return nil, fmt.Errorf("API base URL not configured (set cli.base_url)")
	}

	a.api = client.NewClient(a.cfg.CLI.BaseURL, a.cfg.CLIRequestTimeout())
	return a.api, nil
}

// getOps returns the action layer shared by the CLI commands and the TUI
func (a *App) getOps() (*dashboard.Ops, error) {
	api, err := a.getAPI()
	if err != nil {
		return nil, err
	}
	strategy, err := bulk.ParseStrategy(a.cfg.CLI.BulkStrategy)
	if err != nil {
		return nil, err
	}
	return dashboard.NewOps(api, strategy), nil
}

// Run starts the interactive dashboard
func (a *App) Run() error {
	ops, err := a.getOps()
	if err != nil {
		return err
	}

	logger.Log("starting TUI against %s", a.cfg.CLI.BaseURL)
	p := tea.NewProgram(tui.NewRootModel(ops), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
