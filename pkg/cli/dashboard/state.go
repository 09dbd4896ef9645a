package dashboard

import (
	"crawler-dashboard/pkg/models"
	"crawler-dashboard/pkg/urllist"
)

// Dashboard is the list state: the collection, the view over it, the selection and
// per-row loading flags.
type Dashboard struct {
	View      *urllist.View
	Selection *urllist.Selection

	items    []models.URLItem
	loading  map[int64]bool
	fetching bool
	loaded   bool
	err      error
}

func New() *Dashboard {
	return &Dashboard{
		View:      urllist.NewView(),
		Selection: urllist.NewSelection(),
		loading:   make(map[int64]bool),
	}
}

// Items returns the current collection
func (d *Dashboard) Items() []models.URLItem {
	return d.items
}

// Loaded reports whether a collection has been received at least once
func (d *Dashboard) Loaded() bool {
	return d.loaded
}

// SetItems replaces the collection and drops selected ids that no longer exist
func (d *Dashboard) SetItems(items []models.URLItem) int {
	d.items = items
	d.loaded = true
	return d.Selection.Prune(items)
}

func (d *Dashboard) IsLoading(id int64) bool {
	return d.loading[id]
}

func (d *Dashboard) IsSelected(id int64) bool {
	return d.Selection.IsSelected(id)
}

// Fetching reports whether a plain fetch is in flight
func (d *Dashboard) Fetching() bool {
	return d.fetching
}

// BeginFetch marks a plain fetch as in flight
func (d *Dashboard) BeginFetch() {
	d.fetching = true
}

// Begin marks ids loading. It returns false without changing anything when one of them
// already is, so a row can never have two actions in flight.
func (d *Dashboard) Begin(ids ...int64) bool {
	for _, id := range ids {
		if d.loading[id] {
			return false
		}
	}
	for _, id := range ids {
		d.loading[id] = true
	}
	return true
}

// ToggleSelect flips the selection of id unless the row is loading
func (d *Dashboard) ToggleSelect(id int64) bool {
	if d.loading[id] {
		return false
	}
	d.Selection.Toggle(id)
	return true
}

// Complete applies a Result. Loading flags are always cleared; the collection is replaced
// when the result carries one; the selection is cleared after a bulk action in which every
// request succeeded, even if the refetch that followed failed.
func (d *Dashboard) Complete(r Result) {
	for _, id := range r.IDs {
		delete(d.loading, id)
	}
	if r.Action == ActionFetch {
		d.fetching = false
	}
	if r.Items != nil {
		d.SetItems(r.Items)
	}
	if r.Outcome != nil && len(r.Outcome.Failed) == 0 && len(r.Outcome.Skipped) == 0 {
		d.Selection.Clear()
	}
	if r.Err != nil {
		d.err = r.Err
	}
}

// Err returns the error to show, if any
func (d *Dashboard) Err() error {
	return d.err
}

// DismissError clears the shown error
func (d *Dashboard) DismissError() {
	d.err = nil
}

// Page runs the list pipeline over the current collection
func (d *Dashboard) Page() urllist.Page {
	return d.View.Apply(d.items, d)
}
