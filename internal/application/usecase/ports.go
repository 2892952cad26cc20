package usecase

import (
	"context"

	"github.com/jhoicas/tweakwise-api/internal/domain/repository"
)

// FeedTxRunner ejecuta fn dentro de una transacción con un FeedRepository atado a ella.
// Crear/actualizar un feed y reemplazar sus dominios es atómico.
type FeedTxRunner interface {
	RunFeeds(ctx context.Context, fn func(feeds repository.FeedRepository) error) error
}
