package domain

import "context"

// CrudService is the capability set every entity service offers.
type CrudService[T any] interface {
	ListAll(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id *int) (*T, error)
	Save(ctx context.Context, entity *T) error
	Update(ctx context.Context, entity *T, id *int) error
	Delete(ctx context.Context, id *int) error
}

// CrudRepository is the data access counterpart of CrudService. GetByID
// returns an error wrapping ErrNotFound when nothing matches. Save writes
// the assigned identifier back onto the entity.
type CrudRepository[T any] interface {
	ListAll(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id *int) (*T, error)
	Save(ctx context.Context, entity *T) error
	Update(ctx context.Context, entity *T, id *int) error
	Delete(ctx context.Context, id *int) error
}
