package render

import (
	"context"
	"fmt"

	"github.com/jhoicas/tweakwise-api/internal/domain/repository"
	"github.com/jhoicas/tweakwise-api/internal/domain/storefront"
)

var _ CategoryIndexer = (*TreeIndexer)(nil)

// TreeIndexer carga el árbol de navegación y lo aplana con storefront.BuildCategoryIndex.
type TreeIndexer struct {
	nav   repository.NavigationLoader
	depth int
}

// NewTreeIndexer construye el indexador; depth se acota a storefront.MaxCategoryDepth.
func NewTreeIndexer(nav repository.NavigationLoader, depth int) *TreeIndexer {
	if depth <= 0 || depth > storefront.MaxCategoryDepth {
		depth = storefront.MaxCategoryDepth
	}
	return &TreeIndexer{nav: nav, depth: depth}
}

// Index implementa CategoryIndexer.
func (i *TreeIndexer) Index(ctx context.Context, rootCategoryID, domainID string) (map[string]string, error) {
	tree, err := i.nav.Load(ctx, rootCategoryID, i.depth)
	if err != nil {
		return nil, fmt.Errorf("load navigation: %w", err)
	}
	return storefront.BuildCategoryIndex(tree, domainID), nil
}
