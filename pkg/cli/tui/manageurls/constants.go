package manageurls

// Step constants for the dashboard state machine
const (
	StepList = iota
	StepSearch
	StepAdd
	StepDeleteConfirm
	StepLoadingDetail
	StepDetail
)

// DefaultWidth is the default terminal width fallback
const DefaultWidth = 100

// DefaultHeight is the default terminal height fallback
const DefaultHeight = 30
