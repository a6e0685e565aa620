package domain

import (
	"context"
	"time"
)

// Category groups algorithms by topic, e.g. "Array" or "Dynamic Programming".
type Category struct {
	ID          int64
	Name        string
	Description string
	CreatedAt   time.Time
}

// CategoryRepository defines persistence operations for categories.
type CategoryRepository interface {
	Create(ctx context.Context, category *Category) error
	GetByName(ctx context.Context, name string) (*Category, error)
	List(ctx context.Context) ([]Category, error)
}
