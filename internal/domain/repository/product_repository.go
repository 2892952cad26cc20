package repository

import (
	"context"

	"github.com/jhoicas/tweakwise-api/internal/domain/entity"
)

// ProductRepository define el puerto de lectura de productos (DIP).
// Ambos métodos devuelven (nil, nil) cuando no hay resultado.
type ProductRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// FindFirstByParentID devuelve la primera variante creada del padre.
	FindFirstByParentID(ctx context.Context, parentID string) (*entity.Product, error)
}
