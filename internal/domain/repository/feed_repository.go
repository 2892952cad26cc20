package repository

import (
	"context"

	"github.com/jhoicas/tweakwise-api/internal/domain/entity"
)

// FeedRepository define el puerto de persistencia para Feed (DIP).
type FeedRepository interface {
	Create(ctx context.Context, feed *entity.Feed) error
	GetByID(ctx context.Context, id string) (*entity.Feed, error)
	// FindByDomain devuelve el feed asignado al dominio; si hubiera varios, el primero creado.
	FindByDomain(ctx context.Context, domainID string) (*entity.Feed, error)
	Update(ctx context.Context, feed *entity.Feed) error
	// ReplaceDomains sustituye el conjunto de dominios del feed.
	ReplaceDomains(ctx context.Context, feedID string, domainIDs []string) error
	List(ctx context.Context, limit, offset int) ([]*entity.Feed, error)
	Delete(ctx context.Context, id string) error
}
