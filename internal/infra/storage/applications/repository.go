package applications

import (
	"context"
	"sync"

	"github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/domain"
)

// Repository is the in-memory dashboard application list. Order matters:
// the delete-reselect behavior depends on positions, so entries are kept
// in a slice rather than a map.
type Repository struct {
	mu    sync.RWMutex
	items []domain.ApplicationItem
}

// NewRepository creates a store seeded with the given items
func NewRepository(seed []domain.ApplicationItem) *Repository {
	return &Repository{items: append([]domain.ApplicationItem(nil), seed...)}
}

// List returns a copy of all items in stored order
func (r *Repository) List(_ context.Context) []domain.ApplicationItem {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.ApplicationItem(nil), r.items...)
}

// Add appends a new item
func (r *Repository) Add(_ context.Context, item domain.ApplicationItem) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, item)
}

// Select marks one item selected and deselects every other one.
// Single-select is an invariant of the dashboard.
func (r *Repository) Select(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	found := false
	for i := range r.items {
		if r.items[i].ID == id {
			found = true
		}
	}
	if !found {
		return ErrApplicationNotFound
	}
	for i := range r.items {
		r.items[i].Selected = r.items[i].ID == id
	}
	return nil
}

// Remove deletes an item. When the removed item was selected, selection
// moves to the neighbour at min(previous index, last index), matching the
// portal's delete behavior.
func (r *Repository) Remove(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i := range r.items {
		if r.items[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrApplicationNotFound
	}

	wasSelected := r.items[idx].Selected
	r.items = append(r.items[:idx], r.items[idx+1:]...)

	if wasSelected && len(r.items) > 0 {
		next := idx
		if next > len(r.items)-1 {
			next = len(r.items) - 1
		}
		for i := range r.items {
			r.items[i].Selected = i == next
		}
	}
	return nil
}
