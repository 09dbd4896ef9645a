package urllist

import (
	"sort"

	"crawler-dashboard/pkg/models"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey names an item field by its JSON name
type SortKey string

const (
	SortByID            SortKey = "id"
	SortByURL           SortKey = "url"
	SortByStatus        SortKey = "status"
	SortByTitle         SortKey = "title"
	SortByHTMLVersion   SortKey = "html_version"
	SortByInternalLinks SortKey = "internal_links"
	SortByExternalLinks SortKey = "external_links"
	SortByBrokenLinks   SortKey = "broken_links"
	SortByHasLoginForm  SortKey = "has_login_form"
)

// SortKeys lists the keys offered as sortable columns, in column order
var SortKeys = []SortKey{
	SortByURL,
	SortByStatus,
	SortByTitle,
	SortByHTMLVersion,
	SortByInternalLinks,
	SortByExternalLinks,
	SortByBrokenLinks,
	SortByHasLoginForm,
}

// ParseSortKey returns the key with the given name
func ParseSortKey(name string) (SortKey, bool) {
	if SortKey(name) == SortByID {
		return SortByID, true
	}
	for _, k := range SortKeys {
		if string(k) == name {
			return k, true
		}
	}
	return "", false
}

// Direction is the sort order
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// SortConfig selects one field and a direction. A nil *SortConfig keeps the input order.
type SortConfig struct {
	Key       SortKey
	Direction Direction
}

// collationTag is the locale strings are compared in
var collationTag = language.English

// Sort returns the items ordered by cfg. Ties keep their relative order.
// Items missing the field come first in ascending order and last in descending order.
func Sort(items []models.URLItem, cfg *SortConfig) []models.URLItem {
	if cfg == nil {
		return items
	}

	out := make([]models.URLItem, len(items))
	copy(out, items)

	// collators are not safe for concurrent use, so each call gets its own
	col := collate.New(collationTag)
	desc := cfg.Direction == Desc

	sort.SliceStable(out, func(i, j int) bool {
		a := fieldOf(out[i], cfg.Key)
		b := fieldOf(out[j], cfg.Key)
		return less(a, b, desc, col)
	})
	return out
}

type fieldKind int

const (
	kindNone fieldKind = iota
	kindString
	kindNumber
	kindBool
)

// field is one item field lifted out of the struct for comparison
type field struct {
	kind    fieldKind
	present bool
	str     string
	num     int64
	b       bool
}

func strField(s string) field     { return field{kind: kindString, present: true, str: s} }
func numField(n int64) field      { return field{kind: kindNumber, present: true, num: n} }
func absent(kind fieldKind) field { return field{kind: kind} }

func optString(s *string) field {
	if s == nil {
		return absent(kindString)
	}
	return strField(*s)
}

func optInt(n *int) field {
	if n == nil {
		return absent(kindNumber)
	}
	return numField(int64(*n))
}

func optBool(b *bool) field {
	if b == nil {
		return absent(kindBool)
	}
	return field{kind: kindBool, present: true, b: *b}
}

func fieldOf(item models.URLItem, key SortKey) field {
	switch key {
	case SortByID:
		return numField(item.ID)
	case SortByURL:
		return strField(item.URL)
	case SortByStatus:
		return strField(string(item.Status))
	case SortByTitle:
		return optString(item.Title)
	case SortByHTMLVersion:
		return optString(item.HTMLVersion)
	case SortByInternalLinks:
		return optInt(item.InternalLinks)
	case SortByExternalLinks:
		return optInt(item.ExternalLinks)
	case SortByBrokenLinks:
		return optInt(item.BrokenLinks)
	case SortByHasLoginForm:
		return optBool(item.HasLoginForm)
	}
	return absent(kindNone)
}

// less reports whether a sorts strictly before b.
// The missing-value rule is applied on its own so that flipping the direction
// does not also flip where missing values land.
func less(a, b field, desc bool, col *collate.Collator) bool {
	switch {
	case !a.present && !b.present:
		return false
	case !a.present:
		return !desc
	case !b.present:
		return desc
	}

	c := compare(a, b, col)
	if desc {
		return c > 0
	}
	return c < 0
}

func compare(a, b field, col *collate.Collator) int {
	switch a.kind {
	case kindString:
		return col.CompareString(a.str, b.str)
	case kindNumber:
		switch {
		case a.num < b.num:
			return -1
		case a.num > b.num:
			return 1
		}
		return 0
	case kindBool:
		switch {
		case a.b == b.b:
			return 0
		case !a.b:
			return -1
		}
		return 1
	}
	return 0
}
