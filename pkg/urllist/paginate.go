package urllist

import "crawler-dashboard/pkg/models"

// DefaultPageSize is the number of rows per dashboard page
const DefaultPageSize = 5

func normalizePageSize(pageSize int) int {
	if pageSize <= 0 {
		return DefaultPageSize
	}
	return pageSize
}

// TotalPages returns how many pages count items fill. An empty list has no pages.
func TotalPages(count, pageSize int) int {
	if count <= 0 {
		return 0
	}
	pageSize = normalizePageSize(pageSize)
	return (count + pageSize - 1) / pageSize
}

// ClampPage keeps page within [1, totalPages]; with no pages it returns 1.
func ClampPage(page, totalPages int) int {
	if totalPages < 1 {
		return 1
	}
	return max(1, min(page, totalPages))
}

// Paginate returns the items of the 1-based page. Pages outside the list are empty.
func Paginate(items []models.URLItem, page, pageSize int) []models.URLItem {
	pageSize = normalizePageSize(pageSize)
	if page < 1 {
		return []models.URLItem{}
	}

	start := (page - 1) * pageSize
	if start >= len(items) {
		return []models.URLItem{}
	}
	end := min(start+pageSize, len(items))
	return items[start:end:end]
}
