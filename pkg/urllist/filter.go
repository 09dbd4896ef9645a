// Package urllist turns the full URL collection into the rows the dashboard shows:
// Filter, then Sort, then Paginate. Every stage is a pure function of its input and
// never modifies the items it is given. Selection is tracked separately by id.
package urllist

import (
	"strings"

	"crawler-dashboard/pkg/models"
)

// LoginFilter restricts items by whether a login form was detected
type LoginFilter string

const (
	LoginAny LoginFilter = "any"
	LoginYes LoginFilter = "yes"
	LoginNo  LoginFilter = "no"
)

// Criteria is the combined filter applied before sorting.
// The zero value matches everything.
type Criteria struct {
	SearchTerm   string
	StatusFilter string
	LoginFilter  LoginFilter
}

// Filter returns the items matching all criteria, in their original order.
func Filter(items []models.URLItem, c Criteria) []models.URLItem {
	search := strings.ToLower(c.SearchTerm)

	out := make([]models.URLItem, 0, len(items))
	for _, item := range items {
		if matches(item, c, search) {
			out = append(out, item)
		}
	}
	return out
}

func matches(item models.URLItem, c Criteria, lowerSearch string) bool {
	if lowerSearch != "" {
		hit := strings.Contains(strings.ToLower(item.URL), lowerSearch) ||
			(item.Title != nil && strings.Contains(strings.ToLower(*item.Title), lowerSearch))
		if !hit {
			return false
		}
	}

	if c.StatusFilter != "" && string(item.Status) != c.StatusFilter {
		return false
	}

	hasLogin := item.HasLoginForm != nil && *item.HasLoginForm
	switch c.LoginFilter {
	case LoginYes:
		return hasLogin
	case LoginNo:
		return !hasLogin
	}
	return true
}
