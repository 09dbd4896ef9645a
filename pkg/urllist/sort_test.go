package urllist

import (
	"testing"

	"crawler-dashboard/pkg/models"
)

func TestSortNilConfigKeepsOrder(t *testing.T) {
	input := fixture()
	got := Sort(input, nil)
	if !sameIDs(ids(got), ids(input)) {
		t.Errorf("got %v, want input order", ids(got))
	}
}

func TestSortStrings(t *testing.T) {
	items := []models.URLItem{
		{ID: 1, URL: "https://b.com"},
		{ID: 2, URL: "https://A.com"},
		{ID: 3, URL: "https://c.com"},
	}

	asc := Sort(items, &SortConfig{Key: SortByURL, Direction: Asc})
	if !sameIDs(ids(asc), []int64{2, 1, 3}) {
		t.Errorf("asc: got %v, want [2 1 3]", ids(asc))
	}
	desc := Sort(items, &SortConfig{Key: SortByURL, Direction: Desc})
	if !sameIDs(ids(desc), []int64{3, 1, 2}) {
		t.Errorf("desc: got %v, want [3 1 2]", ids(desc))
	}
}

func TestSortMissingValues(t *testing.T) {
	// broken_links: 1=2, 2=nil, 3=0, 4=nil, 5=2, 6=7
	asc := Sort(fixture(), &SortConfig{Key: SortByBrokenLinks, Direction: Asc})
	if !sameIDs(ids(asc), []int64{2, 4, 3, 1, 5, 6}) {
		t.Errorf("asc: got %v, want [2 4 3 1 5 6]", ids(asc))
	}

	desc := Sort(fixture(), &SortConfig{Key: SortByBrokenLinks, Direction: Desc})
	if !sameIDs(ids(desc), []int64{6, 1, 5, 3, 2, 4}) {
		t.Errorf("desc: got %v, want [6 1 5 3 2 4]", ids(desc))
	}
}

func TestSortBooleans(t *testing.T) {
	// has_login_form: 1=true, 2=nil, 3=false, 4=nil, 5=true, 6=nil
	asc := Sort(fixture(), &SortConfig{Key: SortByHasLoginForm, Direction: Asc})
	if !sameIDs(ids(asc), []int64{2, 4, 6, 3, 1, 5}) {
		t.Errorf("asc: got %v, want [2 4 6 3 1 5]", ids(asc))
	}

	desc := Sort(fixture(), &SortConfig{Key: SortByHasLoginForm, Direction: Desc})
	if !sameIDs(ids(desc), []int64{1, 5, 3, 2, 4, 6}) {
		t.Errorf("desc: got %v, want [1 5 3 2 4 6]", ids(desc))
	}
}

func TestSortIsIdempotent(t *testing.T) {
	for _, key := range append(SortKeys, SortByID) {
		for _, dir := range []Direction{Asc, Desc} {
			cfg := &SortConfig{Key: key, Direction: dir}
			once := Sort(fixture(), cfg)
			twice := Sort(once, cfg)
			if !sameIDs(ids(once), ids(twice)) {
				t.Errorf("%s %s: sort(sort(xs)) = %v, sort(xs) = %v", key, dir, ids(twice), ids(once))
			}
		}
	}
}

func TestSortReverseDirection(t *testing.T) {
	items := []models.URLItem{
		{ID: 1, URL: "u1", InternalLinks: intPtr(3)},
		{ID: 2, URL: "u2", InternalLinks: intPtr(1)},
		{ID: 3, URL: "u3", InternalLinks: intPtr(3)},
		{ID: 4, URL: "u4", InternalLinks: intPtr(2)},
	}

	asc := Sort(items, &SortConfig{Key: SortByInternalLinks, Direction: Asc})
	desc := Sort(items, &SortConfig{Key: SortByInternalLinks, Direction: Desc})

	if !sameIDs(ids(asc), []int64{2, 4, 1, 3}) {
		t.Errorf("asc: got %v, want [2 4 1 3]", ids(asc))
	}
	// distinct keys reverse, the tie between 1 and 3 keeps its order
	if !sameIDs(ids(desc), []int64{1, 3, 4, 2}) {
		t.Errorf("desc: got %v, want [1 3 4 2]", ids(desc))
	}
}

func TestSortMissingFirstAscLastDesc(t *testing.T) {
	keys := []SortKey{SortByTitle, SortByHTMLVersion, SortByInternalLinks, SortByExternalLinks, SortByBrokenLinks, SortByHasLoginForm}
	items := []models.URLItem{
		{ID: 1, URL: "u1", Title: strPtr("t"), HTMLVersion: strPtr("HTML5"), InternalLinks: intPtr(1), ExternalLinks: intPtr(1), BrokenLinks: intPtr(1), HasLoginForm: boolPtr(false)},
		{ID: 2, URL: "u2"},
	}

	for _, key := range keys {
		asc := Sort(items, &SortConfig{Key: key, Direction: Asc})
		if asc[0].ID != 2 {
			t.Errorf("%s asc: missing value should be first, got %v", key, ids(asc))
		}
		desc := Sort(items, &SortConfig{Key: key, Direction: Desc})
		if desc[len(desc)-1].ID != 2 {
			t.Errorf("%s desc: missing value should be last, got %v", key, ids(desc))
		}
	}
}

func TestSortDoesNotModifyInput(t *testing.T) {
	input := fixture()
	Sort(input, &SortConfig{Key: SortByURL, Direction: Desc})
	if !sameIDs(ids(input), []int64{1, 2, 3, 4, 5, 6}) {
		t.Errorf("input was modified: %v", ids(input))
	}
}

func TestSortUnknownKeyKeepsOrder(t *testing.T) {
	got := Sort(fixture(), &SortConfig{Key: "nope", Direction: Desc})
	if !sameIDs(ids(got), []int64{1, 2, 3, 4, 5, 6}) {
		t.Errorf("got %v, want input order", ids(got))
	}
}

func TestParseSortKey(t *testing.T) {
	if k, ok := ParseSortKey("broken_links"); !ok || k != SortByBrokenLinks {
		t.Errorf("got %q %v, want broken_links", k, ok)
	}
	if _, ok := ParseSortKey("created"); ok {
		t.Error("unknown key should not parse")
	}
}
