package manageurls

import (
	"crawler-dashboard/pkg/cli/dashboard"
	"crawler-dashboard/pkg/models"
)

// ResultMsg is emitted when a fetch or a mutating action has finished
type ResultMsg struct {
	Result dashboard.Result
}

// DetailLoadedMsg is emitted when the detail of one URL has been fetched
type DetailLoadedMsg struct {
	Detail *models.URLDetail
	Err    error
}
