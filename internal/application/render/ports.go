package render

import "context"

// CategoryIndexer produce el índice clave -> categoryID de la navegación de un dominio.
// Permite decorar la construcción con una caché (ver infrastructure/cache).
type CategoryIndexer interface {
	Index(ctx context.Context, rootCategoryID, domainID string) (map[string]string, error)
}
