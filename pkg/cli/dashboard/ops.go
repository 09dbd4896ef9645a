package dashboard

import (
	"context"
	"errors"

	"crawler-dashboard/pkg/bulk"
	"crawler-dashboard/pkg/cli/logger"
	"crawler-dashboard/pkg/models"
	"crawler-dashboard/pkg/utils"
)

// Result is what an action reports back to the state owner
type Result struct {
	Action Action
	// IDs were marked loading when the action started
	IDs []int64
	// Items replaces the collection when non-nil
	Items []models.URLItem
	// Created is set by a successful add
	Created *models.URLItem
	// Outcome is set for bulk actions
	Outcome *bulk.Outcome
	Err     error
}

// Ops performs actions against the API. It holds no dashboard state and is safe to
// call from any goroutine.
type Ops struct {
	api       API
	scheduler *bulk.Scheduler
}

func NewOps(api API, strategy bulk.Strategy) *Ops {
	return &Ops{
		api:       api,
		scheduler: bulk.NewScheduler(strategy),
	}
}

// Fetch loads the full collection
func (o *Ops) Fetch(ctx context.Context) Result {
	items, err := o.api.ListURLs(ctx)
	if err != nil {
		logger.LogError(err, "list urls")
		return Result{Action: ActionFetch, Err: &ActionError{Action: ActionFetch, Err: err}}
	}
	logger.Log("fetched %d urls", len(items))
	return Result{Action: ActionFetch, Items: items}
}

// Detail loads one URL with its broken links
func (o *Ops) Detail(ctx context.Context, id int64) (*models.URLDetail, error) {
	detail, err := o.api.GetURL(ctx, id)
	if err != nil {
		logger.LogError(err, "get url %d", id)
		return nil, &ActionError{Action: ActionShow, ID: id, Err: err}
	}
	return detail, nil
}

// Add validates and submits a URL
func (o *Ops) Add(ctx context.Context, raw string) Result {
	rawURL, err := utils.ValidateURL(raw)
	if err != nil {
		return Result{Action: ActionAdd, Err: &ActionError{Action: ActionAdd, Err: err}}
	}

	created, err := o.api.CreateURL(ctx, rawURL)
	if err != nil {
		logger.LogError(err, "create url %s", rawURL)
		err = &ActionError{Action: ActionAdd, Err: err}
	} else {
		logger.Log("created url %d: %s", created.ID, created.URL)
	}
	return o.resync(ctx, Result{Action: ActionAdd, Created: created, Err: err})
}

// Refresh re-queues one URL
func (o *Ops) Refresh(ctx context.Context, id int64) Result {
	return o.single(ctx, ActionRefresh, id, o.api.RefreshURL)
}

// Stop halts the crawl of one URL
func (o *Ops) Stop(ctx context.Context, id int64) Result {
	return o.single(ctx, ActionStop, id, o.api.StopURL)
}

// BulkDelete deletes ids one at a time in the given order
func (o *Ops) BulkDelete(ctx context.Context, ids []int64) Result {
	return o.bulk(ctx, ActionDelete, ids, o.api.DeleteURL)
}

// BulkRefresh re-queues ids one at a time in the given order
func (o *Ops) BulkRefresh(ctx context.Context, ids []int64) Result {
	return o.bulk(ctx, ActionRefresh, ids, o.api.RefreshURL)
}

func (o *Ops) single(ctx context.Context, action Action, id int64, call func(context.Context, int64) error) Result {
	res := Result{Action: action, IDs: []int64{id}}
	if err := call(ctx, id); err != nil {
		logger.LogError(err, "%s url %d", action, id)
		res.Err = &ActionError{Action: action, ID: id, Err: err}
	} else {
		logger.Log("%s url %d", action, id)
	}
	return o.resync(ctx, res)
}

func (o *Ops) bulk(ctx context.Context, action Action, ids []int64, call func(context.Context, int64) error) Result {
	tasks := make([]bulk.Task, 0, len(ids))
	for _, id := range ids {
		tasks = append(tasks, bulk.Task{ID: id, Run: func(ctx context.Context) error {
			return call(ctx, id)
		}})
	}

	outcome, err := o.scheduler.Run(ctx, tasks)
	res := Result{Action: action, IDs: ids, Outcome: &outcome}
	if err != nil {
		if id, ok := bulk.FailedID(err); ok {
			res.Err = &ActionError{Action: action, ID: id, Err: errors.Unwrap(err)}
		} else {
			res.Err = &ActionError{Action: action, Err: err}
		}
		state := "failed"
		if outcome.Partial() {
			state = "partially applied"
		}
		logger.LogError(err, "bulk %s %s: completed %v, failed %d, skipped %v",
			action, state, outcome.Completed, len(outcome.Failed), outcome.Skipped)
	} else {
		logger.Log("bulk %s: completed %v", action, outcome.Completed)
	}
	return o.resync(ctx, res)
}

// resync refetches the collection after a mutation. A refetch failure only becomes the
// result's error when the mutation itself succeeded.
func (o *Ops) resync(ctx context.Context, res Result) Result {
	items, err := o.api.ListURLs(ctx)
	if err != nil {
		logger.LogError(err, "resync after %s", res.Action)
		if res.Err == nil {
			res.Err = &ActionError{Action: ActionFetch, Err: err}
		}
		return res
	}
	res.Items = items
	return res
}
