package urllist

import (
	"fmt"

	"crawler-dashboard/pkg/models"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }
func boolPtr(b bool) *bool    { return &b }

func ids(items []models.URLItem) []int64 {
	out := make([]int64, 0, len(items))
	for _, item := range items {
		out = append(out, item.ID)
	}
	return out
}

func sameIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// fixture returns a mixed collection: crawled and uncrawled items, titles,
// login forms, duplicate values for tie checks.
func fixture() []models.URLItem {
	return []models.URLItem{
		{ID: 1, URL: "https://a.com", Status: models.StatusDone, Title: strPtr("Alpha"), BrokenLinks: intPtr(2), HasLoginForm: boolPtr(true)},
		{ID: 2, URL: "https://b.com", Status: models.StatusError},
		{ID: 3, URL: "https://c.org", Status: models.StatusDone, Title: strPtr("beta login"), BrokenLinks: intPtr(0), HasLoginForm: boolPtr(false)},
		{ID: 4, URL: "https://shop.example", Status: models.StatusQueued},
		{ID: 5, URL: "https://d.net", Status: models.StatusDone, Title: strPtr("Gamma"), BrokenLinks: intPtr(2), HasLoginForm: boolPtr(true)},
		{ID: 6, URL: "https://e.io", Status: models.StatusRunning, Title: strPtr("alpha two"), BrokenLinks: intPtr(7)},
	}
}

func numbered(n int) []models.URLItem {
	items := make([]models.URLItem, 0, n)
	for i := 1; i <= n; i++ {
		items = append(items, models.URLItem{ID: int64(i), URL: fmt.Sprintf("https://site%d.com", i), Status: models.StatusQueued})
	}
	return items
}
