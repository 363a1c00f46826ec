package repository

import (
	"context"
	"errors"

	"go-rest-brewery/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrDuplicateUpc is returned when a write would give two beers the same UPC.
	ErrDuplicateUpc = errors.New("duplicate beer upc")
	// ErrRecordNotFound is returned by writes whose target row is gone.
	ErrRecordNotFound = errors.New("record not found")
)

// BeerRepository persists beers. Find* methods return (nil, nil) when no record matches.
type BeerRepository interface {
	Create(ctx context.Context, beer *entity.Beer) error
	FindAll(ctx context.Context, filter *entity.BeerFilter, limit, offset int) ([]entity.Beer, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Beer, error)
	FindByUpc(ctx context.Context, upc string) (*entity.Beer, error)
	Update(ctx context.Context, beer *entity.Beer) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	Count(ctx context.Context) (int64, error)
}
