// Package format renders URL items as plain text for the CLI and the TUI.
package format

import (
	"strconv"
	"time"

	"crawler-dashboard/pkg/models"
)

// Missing is shown for fields the crawler has not filled in yet
const Missing = "—"

// Title returns the title of an item, or a default value if missing
func Title(item models.URLItem) string {
	if item.Title != nil && *item.Title != "" {
		return *item.Title
	}
	return "(no title)"
}

// TruncateURL truncates a URL to the specified max length
func TruncateURL(url string, maxLen int) string {
	if len(url) <= maxLen {
		return url
	}
	return url[:maxLen-3] + "..."
}

// OptString shows a string field, or Missing when it is nil or empty
func OptString(s *string) string {
	if s == nil || *s == "" {
		return Missing
	}
	return *s
}

// OptInt shows a count, or Missing when it is nil
func OptInt(n *int) string {
	if n == nil {
		return Missing
	}
	return strconv.Itoa(*n)
}

// OptBool shows yes/no, or Missing when it is nil
func OptBool(b *bool) string {
	if b == nil {
		return Missing
	}
	if *b {
		return "yes"
	}
	return "no"
}

// Date formats a time as a readable date string
func Date(t *time.Time) string {
	if t == nil {
		return Missing
	}
	return t.Format("2006-01-02 15:04")
}
