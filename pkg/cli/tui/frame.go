package tui

import (
	"strings"

	"crawler-dashboard/pkg/cli/logger"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// MenuNavigationMsg asks the root model to return to the main menu
type MenuNavigationMsg struct{}

// inputCapturer is implemented by models that are currently reading text. While it
// reports true the frame forwards every key instead of interpreting q, m and ?.
type inputCapturer interface {
	CapturingInput() bool
}

// Frame wraps a model with a header, a footer and the common commands
type Frame struct {
	model  tea.Model
	width  int
	height int
	config FrameConfig

	showHelp    bool
	helpContent string
}

// FrameConfig configures the frame behavior
type FrameConfig struct {
	Title       string
	ShowHeader  bool
	ShowFooter  bool
	EnableHelp  bool          // Enable '?' for help
	EnableMenu  bool          // Enable 'm' to return to menu
	HelpContent func() string // Function to generate help text
}

// NewFrame creates a new frame around a model
func NewFrame(model tea.Model, config FrameConfig) *Frame {
	return &Frame{
		model:  model,
		config: config,
		width:  80, // Default
		height: 24, // Default
	}
}

func (f *Frame) Init() tea.Cmd {
	return f.model.Init()
}

func (f *Frame) capturing() bool {
	c, ok := f.model.(inputCapturer)
	return ok && c.CapturingInput()
}

func (f *Frame) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		f.width = msg.Width
		f.height = msg.Height

	case tea.KeyMsg:
		key := msg.String()
		if key == "ctrl+c" {
			return f, tea.Quit
		}

		// If help is showing, only handle help-related keys
		if f.showHelp {
			switch key {
			case "?", "esc", "q":
				f.showHelp = false
			}
			return f, nil
		}

		if !f.capturing() {
			switch key {
			case "?":
				if f.config.EnableHelp {
					f.showHelp = true
					if f.config.HelpContent != nil {
						f.helpContent = f.config.HelpContent()
					}
					return f, nil
				}
			case "m":
				if f.config.EnableMenu {
					logger.Log("frame: menu key pressed")
					return f, func() tea.Msg { return MenuNavigationMsg{} }
				}
			case "q", "esc":
				logger.Log("frame: quit key pressed")
				return f, tea.Quit
			}
		}
	}

	var cmd tea.Cmd
	f.model, cmd = f.model.Update(msg)
	return f, cmd
}

func (f *Frame) View() string {
	if f.showHelp {
		return f.renderHelpOverlay()
	}

	var parts []string
	if f.config.ShowHeader {
		parts = append(parts, f.renderHeader())
	}
	parts = append(parts, f.model.View())
	if f.config.ShowFooter {
		parts = append(parts, f.renderFooter())
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (f *Frame) renderHeader() string {
	var b strings.Builder

	if f.config.Title != "" {
		b.WriteString(renderTitle(f.config.Title))
	}
	b.WriteString(renderDivider(min(f.width, 100)))
	return b.String()
}

func (f *Frame) renderFooter() string {
	shortcuts := []string{}

	if f.config.EnableHelp {
		shortcuts = append(shortcuts, "? help")
	}
	if f.config.EnableMenu {
		shortcuts = append(shortcuts, "m menu")
	}
	shortcuts = append(shortcuts, "q quit")

	return "\n" + helpStyle.Render(strings.Join(shortcuts, " • "))
}

func (f *Frame) renderHelpOverlay() string {
	helpText := f.helpContent
	if helpText == "" {
		helpText = "No help available"
	}

	overlayStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorPrimary).
		Padding(1, 2)

	title := titleStyle.Render("Keyboard Shortcuts")
	closeHint := helpStyle.Render("Press '?' or Esc to close")

	return overlayStyle.Render(
		lipgloss.JoinVertical(lipgloss.Left, title, "", helpText, "", closeHint),
	)
}
