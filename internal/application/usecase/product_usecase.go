package usecase

import (
	"context"

	"github.com/jhoicas/tweakwise-api/internal/application/dto"
	"github.com/jhoicas/tweakwise-api/internal/domain/entity"
	"github.com/jhoicas/tweakwise-api/internal/domain/repository"
	"github.com/jhoicas/tweakwise-api/internal/domain/storefront"
)

// ProductUseCase consulta de productos y de su variante canónica (solo lectura).
type ProductUseCase struct {
	repo     repository.ProductRepository
	resolver *storefront.VariantResolver
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, resolver *storefront.VariantResolver) *ProductUseCase {
	return &ProductUseCase{repo: repo, resolver: resolver}
}

// GetByID obtiene un producto por ID; (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Canonical muestra qué producto anunciaría el storefront en lugar de id; (nil, nil) si no existe.
func (uc *ProductUseCase) Canonical(ctx context.Context, id string) (*dto.CanonicalVariantResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	canonical, err := uc.resolver.Resolve(ctx, product)
	if err != nil {
		return nil, err
	}
	return &dto.CanonicalVariantResponse{
		Behavior:    uc.resolver.Behavior().String(),
		Product:     *toProductResponse(product),
		Canonical:   *toProductResponse(canonical),
		Substituted: canonical.ID != product.ID,
	}, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:            p.ID,
		ParentID:      p.ParentID,
		ProductNumber: p.ProductNumber,
		Name:          p.Name,
		Price:         p.Price,
		Active:        p.Active,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
