package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"crawler-dashboard/pkg/cli/dashboard"
	"crawler-dashboard/pkg/cli/tui/manageurls"
	"crawler-dashboard/pkg/models"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// addURLForm is the Bubble Tea model for submitting one URL from the main menu.
type addURLForm struct {
	ops *dashboard.Ops

	input   textinput.Model
	step    int
	err     error
	created *models.URLItem
}

const (
	stepURLInput = iota
	stepSubmitting
	stepDone
)

// NewAddURLForm creates a new add URL form model.
func NewAddURLForm(ops *dashboard.Ops) tea.Model {
	form := &addURLForm{
		ops:   ops,
		input: newURLInput(),
		step:  stepURLInput,
	}

	return NewFrame(form, FrameConfig{
		Title:      "Add URL",
		ShowHeader: true,
		EnableMenu: true,
	})
}

func (m *addURLForm) Init() tea.Cmd {
	return textinput.Blink
}

// CapturingInput reports whether keys belong to the form rather than the frame
func (m *addURLForm) CapturingInput() bool {
	return m.step == stepURLInput
}

func (m *addURLForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case manageurls.ResultMsg:
		m.step = stepDone
		m.created = msg.Result.Created
		// A failed refetch after a successful add is not a failure of the add
		if m.created == nil {
			m.err = msg.Result.Err
		}
		return m, nil

	case tea.KeyMsg:
		switch m.step {
		case stepURLInput:
			switch msg.String() {
			case "esc":
				return m, func() tea.Msg { return MenuNavigationMsg{} }
			case "enter":
				raw := m.input.Value()
				if strings.TrimSpace(raw) == "" {
					return m, nil
				}
				m.step = stepSubmitting
				ops := m.ops
				return m, func() tea.Msg {
					return manageurls.ResultMsg{Result: ops.Add(context.Background(), raw)}
				}
			}
		case stepDone:
			// Any key returns to the input, keeping the menu one 'm' away
			if m.err != nil {
				m.err = nil
				m.step = stepURLInput
				return m, textinput.Blink
			}
			m.input.SetValue("")
			m.created = nil
			m.step = stepURLInput
			return m, textinput.Blink
		}
	}

	if m.step == stepURLInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *addURLForm) View() string {
	switch m.step {
	case stepSubmitting:
		return renderLoadingState("Submitting URL...")
	case stepDone:
		if m.err != nil {
			return renderErrorView(errors.New(userFacingMessage(m.err)))
		}
		return renderSuccessView(fmt.Sprintf("Queued %s for crawling (id %d)", m.created.URL, m.created.ID))
	}

	return "\n" + m.input.View() + "\n\n" + AddURLFormHelpContent()
}
