package repository

import (
	"context"

	"github.com/jhoicas/tweakwise-api/internal/domain/entity"
)

// NavigationLoader carga el árbol de navegación bajo rootCategoryID (la raíz no se incluye),
// limitado a depth niveles.
type NavigationLoader interface {
	Load(ctx context.Context, rootCategoryID string, depth int) ([]*entity.CategoryTreeNode, error)
}
