package storefront

import (
	"context"
	"fmt"

	"github.com/jhoicas/tweakwise-api/internal/domain/entity"
)

// ProductLookup lecturas de producto que necesita el resolver. (nil, nil) = sin resultado.
type ProductLookup interface {
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	FindFirstByParentID(ctx context.Context, parentID string) (*entity.Product, error)
}

// VariantResolver elige el producto que representa a una familia de variantes en listados y cross-sell.
// Un resultado vacío de cualquier lectura cae al fallback definido; solo los errores de lectura se propagan.
type VariantResolver struct {
	products ProductLookup
	behavior VariantListingBehavior
}

// NewVariantResolver fija el comportamiento consultando el gate una sola vez.
func NewVariantResolver(products ProductLookup, gate VersionGate) *VariantResolver {
	return &VariantResolver{products: products, behavior: gate.VariantListingBehavior()}
}

// Behavior comportamiento seleccionado.
func (r *VariantResolver) Behavior() VariantListingBehavior {
	return r.behavior
}

// Resolve devuelve el producto a mostrar en lugar de product.
func (r *VariantResolver) Resolve(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	if product == nil || r.behavior == BehaviorPassthrough || !product.HasParent() {
		return product, nil
	}

	parent, err := r.products.GetByID(ctx, product.ParentID)
	if err != nil {
		return nil, fmt.Errorf("get parent product: %w", err)
	}
	if parent == nil {
		return product, nil
	}

	switch r.behavior {
	case BehaviorListingConfig:
		return r.resolveListingConfig(ctx, product, parent)
	case BehaviorLegacyGroupConfig:
		return resolveLegacyGroupConfig(product, parent), nil
	default:
		return product, nil
	}
}

func (r *VariantResolver) resolveListingConfig(ctx context.Context, product, parent *entity.Product) (*entity.Product, error) {
	var groups entity.ConfiguratorGroupConfig
	if cfg := parent.VariantListingConfig; cfg != nil {
		if cfg.DisplayParent {
			return parent, nil
		}
		if cfg.MainVariantID != "" {
			main, err := r.products.GetByID(ctx, cfg.MainVariantID)
			if err != nil {
				return nil, fmt.Errorf("get main variant: %w", err)
			}
			if main == nil {
				// variante principal configurada pero inexistente: sin sustitución
				return product, nil
			}
			return main, nil
		}
		groups = cfg.ConfiguratorGroupConfig
	}

	if groups.ExpressesForListings() {
		return product, nil
	}

	first, err := r.products.FindFirstByParentID(ctx, parent.ID)
	if err != nil {
		return nil, fmt.Errorf("find first variant: %w", err)
	}
	if first == nil {
		return parent, nil
	}
	return first, nil
}

func resolveLegacyGroupConfig(product, parent *entity.Product) *entity.Product {
	if parent.ConfiguratorGroupConfig.ExpressesForListings() {
		return product
	}
	return parent
}
