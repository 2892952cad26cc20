package render

import (
	"context"
	"fmt"

	"golang.org/x/text/language"

	"github.com/jhoicas/tweakwise-api/internal/application/dto"
	"github.com/jhoicas/tweakwise-api/internal/domain"
	"github.com/jhoicas/tweakwise-api/internal/domain/repository"
)

// RenderConfigUseCase arma el RenderEvent de una petición de storefront y ejecuta el subscriber.
type RenderConfigUseCase struct {
	channels   repository.SalesChannelRepository
	products   repository.ProductRepository
	subscriber *Subscriber
}

// NewRenderConfigUseCase construye el caso de uso.
func NewRenderConfigUseCase(channels repository.SalesChannelRepository, products repository.ProductRepository, subscriber *Subscriber) *RenderConfigUseCase {
	return &RenderConfigUseCase{channels: channels, products: products, subscriber: subscriber}
}

// Render devuelve la página con sus extensiones. Dominio o producto inexistentes -> domain.ErrNotFound;
// locale inválido -> domain.ErrInvalidInput.
func (uc *RenderConfigUseCase) Render(ctx context.Context, in dto.RenderConfigRequest) (*dto.RenderConfigResponse, error) {
	scDomain, err := uc.channels.GetDomain(ctx, in.DomainID)
	if err != nil {
		return nil, err
	}
	if scDomain == nil {
		return nil, fmt.Errorf("dominio %s: %w", in.DomainID, domain.ErrNotFound)
	}

	locale := in.Locale
	if locale == "" {
		locale = scDomain.Locale
	}
	if locale != "" {
		if _, err := language.Parse(locale); err != nil {
			return nil, fmt.Errorf("locale %q: %w", locale, domain.ErrInvalidInput)
		}
	}

	page := &Page{Type: PageGeneric}
	if in.PageType == string(PageProduct) {
		product, err := uc.products.GetByID(ctx, in.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, fmt.Errorf("producto %s: %w", in.ProductID, domain.ErrNotFound)
		}
		page = &Page{Type: PageProduct, Product: product}
	}

	ev := &RenderEvent{
		DomainID:     in.DomainID,
		Locale:       locale,
		SalesChannel: scDomain.SalesChannel,
		Page:         page,
	}
	if err := uc.subscriber.OnRender(ctx, ev); err != nil {
		return nil, err
	}

	extensions := page.Extensions
	if extensions == nil {
		extensions = map[string]any{}
	}
	return &dto.RenderConfigResponse{PageType: string(page.Type), Extensions: extensions}, nil
}
