package repository

import (
	"context"
	"sort"
	"sync"

	"home-assessment/domain"
)

// PropertyRepositoryMemory is an in-memory implementation of PropertyRepository.
type PropertyRepositoryMemory struct {
	mu   sync.RWMutex
	data map[string]domain.SavedProperty
}

// NewPropertyRepositoryMemory creates a new in-memory property repository.
func NewPropertyRepositoryMemory() *PropertyRepositoryMemory {
	return &PropertyRepositoryMemory{
		data: make(map[string]domain.SavedProperty),
	}
}

// Save stores or replaces the property.
func (r *PropertyRepositoryMemory) Save(_ context.Context, p domain.SavedProperty) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[p.ID] = p
	return nil
}

func (r *PropertyRepositoryMemory) Get(_ context.Context, id string) (domain.SavedProperty, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.data[id]
	if !ok {
		return domain.SavedProperty{}, ErrNotFound
	}
	return p, nil
}

// List returns all properties, newest first.
func (r *PropertyRepositoryMemory) List(_ context.Context) ([]domain.SavedProperty, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.SavedProperty, 0, len(r.data))
	for _, p := range r.data {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SavedAt.Equal(out[j].SavedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].SavedAt.After(out[j].SavedAt)
	})
	return out, nil
}

func (r *PropertyRepositoryMemory) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[id]; !ok {
		return ErrNotFound
	}
	delete(r.data, id)
	return nil
}

func (r *PropertyRepositoryMemory) Close() error { return nil }
