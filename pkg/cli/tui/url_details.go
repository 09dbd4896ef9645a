package tui

import (
	"crawler-dashboard/pkg/cli/format"
	"crawler-dashboard/pkg/models"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// detailView shows every field of one URL with its broken links in a scrollable viewport
type detailView struct {
	detail   *models.URLDetail
	viewport viewport.Model
}

// detailChrome is the number of lines around the viewport (title, divider, hint)
const detailChrome = 6

func newDetailView(detail *models.URLDetail, width, height int) *detailView {
	vp := viewport.New(width, max(height-detailChrome, 3))
	vp.SetContent(format.Detail(detail))
	return &detailView{detail: detail, viewport: vp}
}

func (d *detailView) resize(width, height int) {
	d.viewport.Width = width
	d.viewport.Height = max(height-detailChrome, 3)
}

// update scrolls the viewport. It reports true when the view should close.
func (d *detailView) update(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "esc", "b", "q", "enter", "backspace":
		return true, nil
	}
	var cmd tea.Cmd
	d.viewport, cmd = d.viewport.Update(msg)
	return false, cmd
}

func (d *detailView) view() string {
	return boldStyle.Render(truncate(d.detail.URL, d.viewport.Width)) + "\n" +
		renderDivider(min(d.viewport.Width, 100)) + "\n" +
		d.viewport.View() + "\n" +
		helpStyle.Render("↑/↓ scroll • Esc / b back")
}
