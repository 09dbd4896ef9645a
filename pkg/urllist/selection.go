package urllist

import "crawler-dashboard/pkg/models"

// Selection tracks the ids chosen for bulk operations.
// It remembers the order ids were selected in, which is the order bulk requests run in.
type Selection struct {
	order []int64
	set   map[int64]struct{}
}

func NewSelection() *Selection {
	return &Selection{set: make(map[int64]struct{})}
}

// Toggle flips membership of id
func (s *Selection) Toggle(id int64) {
	if _, ok := s.set[id]; ok {
		s.remove(id)
		return
	}
	s.set[id] = struct{}{}
	s.order = append(s.order, id)
}

func (s *Selection) IsSelected(id int64) bool {
	_, ok := s.set[id]
	return ok
}

func (s *Selection) Clear() {
	s.order = nil
	s.set = make(map[int64]struct{})
}

func (s *Selection) Len() int {
	return len(s.order)
}

// IDs returns a copy of the selected ids in selection order
func (s *Selection) IDs() []int64 {
	out := make([]int64, len(s.order))
	copy(out, s.order)
	return out
}

// Prune drops ids that are not in items and returns how many were dropped
func (s *Selection) Prune(items []models.URLItem) int {
	known := make(map[int64]struct{}, len(items))
	for _, item := range items {
		known[item.ID] = struct{}{}
	}

	dropped := 0
	for _, id := range s.IDs() {
		if _, ok := known[id]; !ok {
			s.remove(id)
			dropped++
		}
	}
	return dropped
}

func (s *Selection) remove(id int64) {
	delete(s.set, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			return
		}
	}
}
