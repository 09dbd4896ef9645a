package tui

import (
	"errors"
	"fmt"
	"strings"

	"crawler-dashboard/pkg/cli/client"
	"crawler-dashboard/pkg/cli/dashboard"

	"github.com/charmbracelet/bubbles/textinput"
)

// renderErrorView renders a standard error view with exit message
func renderErrorView(err error) string {
	return "\n" + renderError(fmt.Sprintf("Error: %v", err)) + "\n\n" +
		helpStyle.Render("Press any key to go back...") + "\n"
}

// renderLoadingState renders a standard loading message
func renderLoadingState(message string) string {
	return "\n" + infoStyle.Render(message) + "\n"
}

// renderSuccessView renders a standard success view with exit message
func renderSuccessView(message string) string {
	return "\n" + renderSuccess(message) + "\n\n" +
		helpStyle.Render("Press any key to go back...") + "\n"
}

// renderNotice renders the blocking error notice; any key dismisses it
func renderNotice(err error) string {
	body := renderError(userFacingMessage(err)) + "\n\n" +
		helpStyle.Render("Press any key to dismiss")
	return noticeStyle.Render(body)
}

// truncate shortens s to max runes, marking the cut with an ellipsis
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 1 {
		return string(r[:max])
	}
	return string(r[:max-1]) + "…"
}

// pad truncates or right-pads s to exactly width runes
func pad(s string, width int) string {
	s = truncate(s, width)
	if n := len([]rune(s)); n < width {
		s += strings.Repeat(" ", width-n)
	}
	return s
}

// newURLInput is the text input used wherever a URL is typed
func newURLInput() textinput.Model {
	in := textinput.New()
	in.Placeholder = "https://example.com"
	in.CharLimit = 2048
	in.Width = 60
	in.Prompt = "URL: "
	in.Focus()
	return in
}

// handleListNavigation handles common navigation keys for list views (up/down/j/k)
// Returns the new selected index and whether navigation occurred
func handleListNavigation(key string, selected int, total int) (newSelected int, handled bool) {
	switch key {
	case "up", "k":
		if selected > 0 {
			return selected - 1, true
		}
		return selected, true
	case "down", "j":
		if selected < total-1 {
			return selected + 1, true
		}
		return selected, true
	}
	return selected, false
}

// handleQuitKeys checks if a key should quit the current view
func handleQuitKeys(key string) bool {
	switch key {
	case "ctrl+c", "q", "esc":
		return true
	}
	return false
}

// userFacingMessage converts structured action and client errors into friendly text,
// while leaving other error types unchanged.
func userFacingMessage(err error) string {
	if err == nil {
		return ""
	}

	var actionErr *dashboard.ActionError
	if errors.As(err, &actionErr) {
		return actionErr.UserMessage()
	}

	var clientErr *client.Error
	if errors.As(err, &clientErr) {
		return clientErr.UserMessage()
	}

	return err.Error()
}
