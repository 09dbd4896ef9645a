package tui

import (
	"context"
	"fmt"
	"strings"

	"crawler-dashboard/pkg/cli/dashboard"
	"crawler-dashboard/pkg/cli/format"
	"crawler-dashboard/pkg/cli/logger"
	"crawler-dashboard/pkg/cli/tui/manageurls"
	"crawler-dashboard/pkg/urllist"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// column is one table column: its sort key, header and width
type column struct {
	key    urllist.SortKey
	header string
	width  int
}

// columns are in the order of the 1..8 sort keys
var columns = []column{
	{urllist.SortByURL, "URL", 34},
	{urllist.SortByStatus, "Status", 8},
	{urllist.SortByTitle, "Title", 24},
	{urllist.SortByHTMLVersion, "HTML", 10},
	{urllist.SortByInternalLinks, "Int", 5},
	{urllist.SortByExternalLinks, "Ext", 5},
	{urllist.SortByBrokenLinks, "Broken", 6},
	{urllist.SortByHasLoginForm, "Login", 5},
}

// dashboardModel is the Bubble Tea model of the URL list. It is the only owner of the
// dashboard state; network calls run in commands and report back through messages.
type dashboardModel struct {
	ops   *dashboard.Ops
	state *dashboard.Dashboard

	step   int
	cursor int

	search   textinput.Model
	addInput textinput.Model
	adding   bool
	confirm  []int64
	detail   *detailView

	// notice is the last informational line, e.g. a bulk summary
	notice string

	width  int
	height int
}

// NewDashboardModel creates the URL dashboard flow.
func NewDashboardModel(ops *dashboard.Ops) tea.Model {
	search := textinput.New()
	search.Placeholder = "url or title"
	search.Prompt = "/"
	search.CharLimit = 256
	search.Width = 40

	model := &dashboardModel{
		ops:    ops,
		state:  dashboard.New(),
		step:   manageurls.StepList,
		search: search,
		width:  manageurls.DefaultWidth,
		height: manageurls.DefaultHeight,
	}

	return NewFrame(model, FrameConfig{
		Title:       "URL Dashboard",
		ShowHeader:  true,
		ShowFooter:  true,
		EnableHelp:  true,
		EnableMenu:  true,
		HelpContent: DashboardHelpContent,
	})
}

func (m *dashboardModel) Init() tea.Cmd {
	m.state.BeginFetch()
	return m.fetchCmd()
}

// CapturingInput reports whether keys belong to the model rather than the frame
func (m *dashboardModel) CapturingInput() bool {
	return m.step != manageurls.StepList || m.state.Err() != nil
}

func (m *dashboardModel) fetchCmd() tea.Cmd {
	ops := m.ops
	return func() tea.Msg {
		return manageurls.ResultMsg{Result: ops.Fetch(context.Background())}
	}
}

// actionCmd runs an Ops call off the event loop
func actionCmd(run func(context.Context) dashboard.Result) tea.Cmd {
	return func() tea.Msg {
		return manageurls.ResultMsg{Result: run(context.Background())}
	}
}

func (m *dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		if m.width == 0 {
			m.width = manageurls.DefaultWidth
		}
		m.height = msg.Height
		if m.detail != nil {
			m.detail.resize(m.width, m.height)
		}
		return m, nil

	case manageurls.ResultMsg:
		m.applyResult(msg.Result)
		return m, nil

	case manageurls.DetailLoadedMsg:
		if m.step != manageurls.StepLoadingDetail {
			return m, nil
		}
		if msg.Err != nil {
			m.state.Complete(dashboard.Result{Action: dashboard.ActionShow, Err: msg.Err})
			m.step = manageurls.StepList
			return m, nil
		}
		m.detail = newDetailView(msg.Detail, m.width, m.height)
		m.step = manageurls.StepDetail
		return m, nil

	case tea.KeyMsg:
		// Any key dismisses the error notice
		if m.state.Err() != nil {
			m.state.DismissError()
			return m, nil
		}

		switch m.step {
		case manageurls.StepList:
			return m.handleListKeys(msg)
		case manageurls.StepSearch:
			return m.handleSearchKeys(msg)
		case manageurls.StepAdd:
			return m.handleAddKeys(msg)
		case manageurls.StepDeleteConfirm:
			return m.handleDeleteConfirmKeys(msg)
		case manageurls.StepLoadingDetail:
			if msg.String() == "esc" {
				m.step = manageurls.StepList
			}
			return m, nil
		case manageurls.StepDetail:
			done, cmd := m.detail.update(msg)
			if done {
				m.detail = nil
				m.step = manageurls.StepList
			}
			return m, cmd
		}
	}

	// Let the text inputs blink
	switch m.step {
	case manageurls.StepSearch:
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	case manageurls.StepAdd:
		var cmd tea.Cmd
		m.addInput, cmd = m.addInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *dashboardModel) applyResult(r dashboard.Result) {
	logger.Log("dashboard: %s finished, ids=%v, err=%v", r.Action, r.IDs, r.Err)
	m.state.Complete(r)
	if r.Action == dashboard.ActionAdd {
		m.adding = false
		if r.Created != nil {
			m.notice = fmt.Sprintf("Added %s (id %d)", r.Created.URL, r.Created.ID)
		}
	}
	if r.Outcome != nil {
		verb := "Refreshed"
		if r.Action == dashboard.ActionDelete {
			verb = "Deleted"
		}
		m.notice = format.Outcome(verb, r.Outcome)
	}
	m.clampCursor(len(m.state.Page().Rows))
}

func (m *dashboardModel) clampCursor(rows int) {
	if m.cursor >= rows {
		m.cursor = rows - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// current returns the id of the highlighted row
func (m *dashboardModel) current() (int64, bool) {
	rows := m.state.Page().Rows
	if m.cursor < 0 || m.cursor >= len(rows) {
		return 0, false
	}
	return rows[m.cursor].Item.ID, true
}

func (m *dashboardModel) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	rows := len(m.state.Page().Rows)

	if newCursor, handled := handleListNavigation(key, m.cursor, rows); handled {
		m.cursor = newCursor
		return m, nil
	}

	switch key {
	case "1", "2", "3", "4", "5", "6", "7", "8":
		m.state.View.ToggleSort(columns[key[0]-'1'].key)
		m.cursor = 0

	case "/":
		m.search.SetValue(m.state.View.Criteria.SearchTerm)
		m.search.CursorEnd()
		m.step = manageurls.StepSearch
		return m, m.search.Focus()

	case "f":
		m.state.View.CycleStatusFilter()
	case "l":
		m.state.View.CycleLoginFilter()

	case " ":
		if id, ok := m.current(); ok {
			m.state.ToggleSelect(id)
		}
	case "c":
		m.state.Selection.Clear()

	case "r":
		if id, ok := m.current(); ok && m.state.Begin(id) {
			return m, actionCmd(func(ctx context.Context) dashboard.Result { return m.ops.Refresh(ctx, id) })
		}
	case "s":
		if id, ok := m.current(); ok && m.state.Begin(id) {
			return m, actionCmd(func(ctx context.Context) dashboard.Result { return m.ops.Stop(ctx, id) })
		}

	case "R":
		ids := m.state.Selection.IDs()
		if len(ids) > 0 && m.state.Begin(ids...) {
			m.notice = ""
			return m, actionCmd(func(ctx context.Context) dashboard.Result { return m.ops.BulkRefresh(ctx, ids) })
		}
	case "D":
		if ids := m.state.Selection.IDs(); len(ids) > 0 {
			m.confirm = ids
			m.step = manageurls.StepDeleteConfirm
		}

	case "a":
		if !m.adding {
			m.addInput = newURLInput()
			m.step = manageurls.StepAdd
			return m, textinput.Blink
		}

	case "enter":
		if id, ok := m.current(); ok {
			m.step = manageurls.StepLoadingDetail
			ops := m.ops
			return m, func() tea.Msg {
				detail, err := ops.Detail(context.Background(), id)
				return manageurls.DetailLoadedMsg{Detail: detail, Err: err}
			}
		}

	case "g":
		if !m.state.Fetching() {
			m.state.BeginFetch()
			return m, m.fetchCmd()
		}

	case "n", "right":
		m.state.View.NextPage()
		m.cursor = 0
	case "p", "left":
		m.state.View.PrevPage()
		m.cursor = 0
	}

	m.clampCursor(len(m.state.Page().Rows))
	return m, nil
}

func (m *dashboardModel) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.search.Blur()
		m.step = manageurls.StepList
		return m, nil
	case "esc":
		m.search.Blur()
		m.search.SetValue("")
		m.state.View.SetSearchTerm("")
		m.step = manageurls.StepList
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.state.View.SetSearchTerm(m.search.Value())
	m.clampCursor(len(m.state.Page().Rows))
	return m, cmd
}

func (m *dashboardModel) handleAddKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.step = manageurls.StepList
		return m, nil
	case "enter":
		raw := m.addInput.Value()
		if strings.TrimSpace(raw) == "" {
			return m, nil
		}
		m.adding = true
		m.notice = ""
		m.step = manageurls.StepList
		return m, actionCmd(func(ctx context.Context) dashboard.Result { return m.ops.Add(ctx, raw) })
	}

	var cmd tea.Cmd
	m.addInput, cmd = m.addInput.Update(msg)
	return m, cmd
}

func (m *dashboardModel) handleDeleteConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ids := m.confirm
	m.confirm = nil
	m.step = manageurls.StepList

	switch msg.String() {
	case "y", "Y":
		if m.state.Begin(ids...) {
			m.notice = ""
			return m, actionCmd(func(ctx context.Context) dashboard.Result { return m.ops.BulkDelete(ctx, ids) })
		}
	}
	return m, nil
}

func (m *dashboardModel) View() string {
	if m.state.Err() != nil {
		return "\n" + renderNotice(m.state.Err()) + "\n"
	}

	switch m.step {
	case manageurls.StepLoadingDetail:
		return renderLoadingState("Loading details...")
	case manageurls.StepDetail:
		return m.detail.view()
	}

	if !m.state.Loaded() {
		return renderLoadingState("Loading URLs...")
	}

	var b strings.Builder
	b.WriteString(m.renderFilterBar())
	b.WriteString("\n\n")
	b.WriteString(m.renderTable())
	b.WriteString("\n")

	switch m.step {
	case manageurls.StepSearch:
		b.WriteString(m.search.View() + "\n")
		b.WriteString(helpStyle.Render("Enter to keep • Esc to clear") + "\n")
	case manageurls.StepAdd:
		b.WriteString(m.addInput.View() + "\n")
		b.WriteString(AddURLFormHelpContent())
	case manageurls.StepDeleteConfirm:
		b.WriteString(renderWarning(fmt.Sprintf("Delete %d selected URL(s)? (y/N)", len(m.confirm))) + "\n")
	default:
		switch {
		case m.adding:
			b.WriteString(infoStyle.Render("Adding URL...") + "\n")
		case m.state.Fetching():
			b.WriteString(infoStyle.Render("Refreshing list...") + "\n")
		case m.notice != "":
			b.WriteString(successStyle.Render(m.notice) + "\n")
		}
	}

	return b.String()
}

func (m *dashboardModel) renderFilterBar() string {
	c := m.state.View.Criteria

	search := c.SearchTerm
	if search == "" {
		search = mutedStyle.Render("(none)")
	}
	status := c.StatusFilter
	if status == "" {
		status = "all"
	}
	login := string(c.LoginFilter)
	if login == "" {
		login = string(urllist.LoginAny)
	}

	return fieldLabelStyle.Render("Search:") + search + "   " +
		fieldLabelStyle.Render("Status:") + status + "   " +
		fieldLabelStyle.Render("Login:") + login + "   " +
		fieldLabelStyle.Render("Selected:") + fmt.Sprintf("%d", m.state.Selection.Len())
}

func (m *dashboardModel) renderTable() string {
	page := m.state.Page()

	var b strings.Builder

	// Header: "[1] URL ▲"
	b.WriteString("      ")
	for i, col := range columns {
		label := fmt.Sprintf("%d %s%s", i+1, col.header, m.state.View.SortIndicator(col.key))
		b.WriteString(headerStyle.Render(pad(label, col.width)) + " ")
	}
	b.WriteString("\n")

	if page.Empty() {
		b.WriteString("      " + mutedStyle.Render("No results found.") + "\n")
	}

	for i, row := range page.Rows {
		item := row.Item

		cursor := " "
		if i == m.cursor {
			cursor = selectedMarkerStyle.Render("→")
		}
		check := "[ ]"
		if row.Selected {
			check = selectedStyle.Render("[x]")
		}
		spin := " "
		if row.Loading {
			spin = infoStyle.Render("…")
		}

		urlText := pad(item.URL, columns[0].width)
		if i == m.cursor {
			urlText = selectedStyle.Render(urlText)
		} else {
			urlText = urlStyle.Render(urlText)
		}

		cells := []string{
			urlText,
			renderStatus(item.Status, columns[1].width),
			pad(format.OptString(item.Title), columns[2].width),
			pad(format.OptString(item.HTMLVersion), columns[3].width),
			pad(format.OptInt(item.InternalLinks), columns[4].width),
			pad(format.OptInt(item.ExternalLinks), columns[5].width),
			pad(format.OptInt(item.BrokenLinks), columns[6].width),
			pad(format.OptBool(item.HasLoginForm), columns[7].width),
		}
		b.WriteString(fmt.Sprintf("%s%s%s ", cursor, check, spin))
		b.WriteString(strings.Join(cells, " "))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if page.TotalPages > 0 {
		b.WriteString(mutedStyle.Render(format.PageSummary(page)) + "\n")
	}
	return b.String()
}
