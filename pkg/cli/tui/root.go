package tui

import (
	"strings"

	"crawler-dashboard/pkg/cli/dashboard"

	tea "github.com/charmbracelet/bubbletea"
)

// rootModel is the Bubble Tea model that acts as an app shell for multiple flows.
// It presents a simple menu and then hands control to a specific flow model.
type rootModel struct {
	// Shared dependencies
	ops *dashboard.Ops

	// Current active flow (when nil, we are in the main menu)
	current tea.Model
	// Last window size, replayed to flows as they start
	size tea.WindowSizeMsg

	showHelp bool
}

// NewRootModel constructs the root app-shell model that can launch multiple flows.
func NewRootModel(ops *dashboard.Ops) tea.Model {
	return &rootModel{ops: ops}
}

func (m *rootModel) Init() tea.Cmd {
	// Open straight into the dashboard; the menu is one 'm' away.
	return m.start(NewDashboardModel(m.ops))
}

// start makes flow the active model and replays the known window size to it
func (m *rootModel) start(flow tea.Model) tea.Cmd {
	m.current = flow
	cmd := flow.Init()
	if m.size.Width > 0 {
		m.current, _ = m.current.Update(m.size)
	}
	return cmd
}

func (m *rootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case MenuNavigationMsg:
		m.current = nil
		return m, nil
	case tea.WindowSizeMsg:
		m.size = msg
	}

	// If we have an active flow, delegate all messages to it.
	if m.current != nil {
		var cmd tea.Cmd
		m.current, cmd = m.current.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		if handleQuitKeys(msg.String()) {
			return m, tea.Quit
		}
		switch msg.String() {
		case "?":
			m.showHelp = true
			return m, nil
		case "1":
			return m, m.start(NewDashboardModel(m.ops))
		case "2":
			return m, m.start(NewAddURLForm(m.ops))
		}
	}

	return m, nil
}

func (m *rootModel) View() string {
	// When a flow is active, defer to its view.
	if m.current != nil {
		return m.current.View()
	}

	var b strings.Builder

	b.WriteString(renderTitle("Crawler Dashboard"))
	b.WriteString(renderDivider(60))
	b.WriteString("\n\n")

	if m.showHelp {
		b.WriteString(RootMenuHelpContent())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("Press any key to close help.") + "\n")
		return b.String()
	}

	b.WriteString(boldStyle.Render("Select an action:") + "\n\n")
	b.WriteString("  " + selectedMarkerStyle.Render("1)") + " URL dashboard (list, filter, refresh, stop, delete)\n")
	b.WriteString("  " + selectedMarkerStyle.Render("2)") + " Add URL\n")
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("Press the number of an option, '?' for help, or 'q' / Esc to quit.") + "\n")

	return b.String()
}
