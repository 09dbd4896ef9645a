package urllist

import "crawler-dashboard/pkg/models"

// RowMarker answers the per-row state the view does not own itself
type RowMarker interface {
	IsSelected(id int64) bool
	IsLoading(id int64) bool
}

// Row is one rendered item with its selection and loading bits
type Row struct {
	Item     models.URLItem
	Selected bool
	Loading  bool
}

// Page is the result of running the pipeline for the current view state
type Page struct {
	Rows       []Row
	Number     int
	TotalPages int
	Matched    int
	Total      int
}

// Empty reports whether no item matched, in which case a "no results" row is shown
func (p Page) Empty() bool {
	return len(p.Rows) == 0
}

// View holds the list state the user controls: filters, sort and current page.
type View struct {
	Criteria    Criteria
	SortConfig  *SortConfig
	CurrentPage int
	PageSize    int

	// totalPages is remembered from the last Apply so navigation can clamp
	totalPages int
}

func NewView() *View {
	return &View{
		Criteria:    Criteria{LoginFilter: LoginAny},
		CurrentPage: 1,
		PageSize:    DefaultPageSize,
	}
}

// ToggleSort activates a column: the active column flips direction, any other column
// becomes active ascending. The page always goes back to 1.
func (v *View) ToggleSort(key SortKey) {
	if v.SortConfig != nil && v.SortConfig.Key == key {
		dir := Asc
		if v.SortConfig.Direction == Asc {
			dir = Desc
		}
		v.SortConfig = &SortConfig{Key: key, Direction: dir}
	} else {
		v.SortConfig = &SortConfig{Key: key, Direction: Asc}
	}
	v.CurrentPage = 1
}

// SortIndicator returns the arrow shown next to a column header
func (v *View) SortIndicator(key SortKey) string {
	if v.SortConfig == nil || v.SortConfig.Key != key {
		return ""
	}
	if v.SortConfig.Direction == Asc {
		return "▲"
	}
	return "▼"
}

func (v *View) SetSearchTerm(term string) {
	v.Criteria.SearchTerm = term
}

func (v *View) SetStatusFilter(status string) {
	v.Criteria.StatusFilter = status
}

func (v *View) SetLoginFilter(f LoginFilter) {
	v.Criteria.LoginFilter = f
}

// CycleStatusFilter moves to the next status filter, wrapping back to "all"
func (v *View) CycleStatusFilter() {
	options := append([]string{""}, statusNames()...)
	v.Criteria.StatusFilter = next(options, v.Criteria.StatusFilter)
}

// CycleLoginFilter moves any -> yes -> no -> any
func (v *View) CycleLoginFilter() {
	options := []string{string(LoginAny), string(LoginYes), string(LoginNo)}
	current := string(v.Criteria.LoginFilter)
	if current == "" {
		current = string(LoginAny)
	}
	v.Criteria.LoginFilter = LoginFilter(next(options, current))
}

func (v *View) NextPage() {
	v.CurrentPage = ClampPage(v.CurrentPage+1, v.totalPages)
}

func (v *View) PrevPage() {
	v.CurrentPage = ClampPage(v.CurrentPage-1, v.totalPages)
}

func (v *View) GoToPage(page int) {
	v.CurrentPage = ClampPage(page, v.totalPages)
}

// Apply runs Filter, Sort and Paginate over items. The current page is clamped
// first, so a filter that shrinks the result never leaves the view on a missing page.
func (v *View) Apply(items []models.URLItem, marks RowMarker) Page {
	filtered := Filter(items, v.Criteria)
	sorted := Sort(filtered, v.SortConfig)

	v.totalPages = TotalPages(len(sorted), v.PageSize)
	v.CurrentPage = ClampPage(v.CurrentPage, v.totalPages)

	visible := Paginate(sorted, v.CurrentPage, v.PageSize)
	rows := make([]Row, 0, len(visible))
	for _, item := range visible {
		row := Row{Item: item}
		if marks != nil {
			row.Selected = marks.IsSelected(item.ID)
			row.Loading = marks.IsLoading(item.ID)
		}
		rows = append(rows, row)
	}

	return Page{
		Rows:       rows,
		Number:     v.CurrentPage,
		TotalPages: v.totalPages,
		Matched:    len(sorted),
		Total:      len(items),
	}
}

func statusNames() []string {
	names := make([]string, 0, len(models.Statuses))
	for _, s := range models.Statuses {
		names = append(names, string(s))
	}
	return names
}

func next(options []string, current string) string {
	for i, opt := range options {
		if opt == current {
			return options[(i+1)%len(options)]
		}
	}
	return options[0]
}
