package cli

import (
	"context"
	"fmt"
	"strings"

	"crawler-dashboard/pkg/cli/dashboard"
	"crawler-dashboard/pkg/cli/format"
	"crawler-dashboard/pkg/models"
	"crawler-dashboard/pkg/urllist"
)

// ListOptions mirrors the controls of the dashboard list
type ListOptions struct {
	Search string
	Status string
	Login  string
	Sort   string
	Desc   bool
	Page   int
}

// view builds the list view the options describe
func (o ListOptions) view() (*urllist.View, error) {
	v := urllist.NewView()
	v.SetSearchTerm(o.Search)

	if o.Status != "" {
		if !validStatus(o.Status) {
			return nil, fmt.Errorf("unknown status %q (want one of %s)", o.Status, strings.Join(statusList(), ", "))
		}
		v.SetStatusFilter(o.Status)
	}

	switch urllist.LoginFilter(o.Login) {
	case "", urllist.LoginAny:
	case urllist.LoginYes, urllist.LoginNo:
		v.SetLoginFilter(urllist.LoginFilter(o.Login))
	default:
		return nil, fmt.Errorf("unknown login filter %q (want any, yes or no)", o.Login)
	}

	if o.Sort != "" {
		key, ok := urllist.ParseSortKey(o.Sort)
		if !ok {
			return nil, fmt.Errorf("unknown sort column %q", o.Sort)
		}
		dir := urllist.Asc
		if o.Desc {
			dir = urllist.Desc
		}
		v.SortConfig = &urllist.SortConfig{Key: key, Direction: dir}
	}

	if o.Page > 0 {
		v.CurrentPage = o.Page
	}
	return v, nil
}

func validStatus(s string) bool {
	for _, st := range models.Statuses {
		if string(st) == s {
			return true
		}
	}
	return false
}

func statusList() []string {
	names := make([]string, 0, len(models.Statuses))
	for _, st := range models.Statuses {
		names = append(names, string(st))
	}
	return names
}

// ListURLs prints one page of the filtered, sorted list
func (a *App) ListURLs(ctx context.Context, opts ListOptions) error {
	view, err := opts.view()
	if err != nil {
		return err
	}
	ops, err := a.getOps()
	if err != nil {
		return err
	}

	res := ops.Fetch(ctx)
	if res.Err != nil {
		return res.Err
	}

	fmt.Fprint(a.out, format.Table(view.Apply(res.Items, nil)))
	return nil
}

// AddURL submits a URL for crawling
func (a *App) AddURL(ctx context.Context, rawURL string) error {
	ops, err := a.getOps()
	if err != nil {
		return err
	}

	res := ops.Add(ctx, rawURL)
	if res.Created != nil {
		fmt.Fprint(a.out, format.Created(res.Created))
	}
	return res.Err
}

// ShowURL prints the detail view of one URL
func (a *App) ShowURL(ctx context.Context, id int64) error {
	ops, err := a.getOps()
	if err != nil {
		return err
	}

	detail, err := ops.Detail(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprint(a.out, format.Detail(detail))
	return nil
}

// StopURL halts the crawl of one URL
func (a *App) StopURL(ctx context.Context, id int64) error {
	ops, err := a.getOps()
	if err != nil {
		return err
	}

	res := ops.Stop(ctx, id)
	if res.Err != nil {
		return res.Err
	}
	fmt.Fprintf(a.out, "✓ Stopped URL %d\n", id)
	return nil
}

// RefreshURLs re-queues the given ids, one request at a time
func (a *App) RefreshURLs(ctx context.Context, ids []int64) error {
	ops, err := a.getOps()
	if err != nil {
		return err
	}
	return a.reportBulk("Refreshed", ops.BulkRefresh(ctx, ids))
}

// DeleteURLs removes the given ids, one request at a time
func (a *App) DeleteURLs(ctx context.Context, ids []int64) error {
	ops, err := a.getOps()
	if err != nil {
		return err
	}
	return a.reportBulk("Deleted", ops.BulkDelete(ctx, ids))
}

func (a *App) reportBulk(verb string, res dashboard.Result) error {
	if summary := format.Outcome(verb, res.Outcome); summary != "" {
		fmt.Fprintln(a.out, summary)
	}
	return res.Err
}
