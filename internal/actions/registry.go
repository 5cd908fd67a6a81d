package actions

import (
	"fmt"
	"sync"
)

// Registry stages extracted items between extraction and ticket creation.
// Last write wins on duplicate ids.
type Registry struct {
	mu    sync.Mutex
	items map[int]ActionItem
}

func NewRegistry() *Registry {
	return &Registry{
		items: make(map[int]ActionItem),
	}
}

func (r *Registry) Put(items []ActionItem) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, item := range items {
		r.items[item.ID] = item
	}
}

func (r *Registry) Get(id int) (ActionItem, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	return item, ok
}

// Placeholder synthesizes a minimal item for an id missing from the registry,
// so a stale id does not fail the whole ticket batch.
func Placeholder(id int) ActionItem {
	return ActionItem{
		ID:       id,
		Title:    fmt.Sprintf("Action Item %d", id),
		Selected: true,
		Overdue:  false,
	}
}
