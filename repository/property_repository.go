package repository

import (
	"context"
	"errors"

	"home-assessment/domain"
)

// ErrNotFound is returned when no saved property has the requested ID.
var ErrNotFound = errors.New("saved property not found")

// PropertyRepository persists saved property analyses.
type PropertyRepository interface {
	Save(ctx context.Context, p domain.SavedProperty) error
	Get(ctx context.Context, id string) (domain.SavedProperty, error)
	List(ctx context.Context) ([]domain.SavedProperty, error)
	Delete(ctx context.Context, id string) error
	Close() error
}
