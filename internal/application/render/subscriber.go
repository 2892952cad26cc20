package render

import (
	"context"
	"fmt"

	"github.com/jhoicas/tweakwise-api/internal/domain/entity"
	"github.com/jhoicas/tweakwise-api/internal/domain/repository"
	"github.com/jhoicas/tweakwise-api/internal/domain/storefront"
	"github.com/jhoicas/tweakwise-api/pkg/logger"
)

// PageType tipo de página que se está renderizando.
type PageType string

const (
	PageGeneric PageType = "generic"
	PageProduct PageType = "product"
)

// Page página saliente; las extensiones las serializa el template.
type Page struct {
	Type       PageType
	Product    *entity.Product // solo en PageProduct
	Extensions map[string]any
}

// AddExtension adjunta una extensión con nombre.
func (p *Page) AddExtension(name string, value any) {
	if p.Extensions == nil {
		p.Extensions = make(map[string]any)
	}
	p.Extensions[name] = value
}

// RenderEvent render de una página del storefront para un dominio.
type RenderEvent struct {
	DomainID     string
	Locale       string
	SalesChannel *entity.SalesChannel
	Page         *Page // nil = respuesta sin página (no se adjunta nada)
}

// Subscriber adjunta la configuración Tweakwise a cada render cuyo dominio tiene un feed.
type Subscriber struct {
	feeds    repository.FeedRepository
	indexer  CategoryIndexer
	resolver *storefront.VariantResolver
	log      *logger.Logger
}

// NewSubscriber construye el subscriber del render.
func NewSubscriber(feeds repository.FeedRepository, indexer CategoryIndexer, resolver *storefront.VariantResolver, log *logger.Logger) *Subscriber {
	return &Subscriber{feeds: feeds, indexer: indexer, resolver: resolver, log: log}
}

// OnRender calcula el payload y lo adjunta a ev.Page como extensión "twConfiguration".
// Un dominio sin feed no es un error: el render sigue sin configuración.
func (s *Subscriber) OnRender(ctx context.Context, ev *RenderEvent) error {
	feed, err := s.feeds.FindByDomain(ctx, ev.DomainID)
	if err != nil {
		return fmt.Errorf("find feed by domain: %w", err)
	}
	if feed == nil {
		s.log.Debug().Str("domain_id", ev.DomainID).Msg("dominio sin feed Tweakwise")
		return nil
	}

	var rootCategoryID string
	if ev.SalesChannel != nil {
		rootCategoryID = ev.SalesChannel.NavigationCategoryID
	}

	categoryData, err := s.indexer.Index(ctx, rootCategoryID, ev.DomainID)
	if err != nil {
		return fmt.Errorf("category index: %w", err)
	}

	var crossSell *storefront.CrossSell
	if ev.Page != nil && ev.Page.Type == PageProduct && ev.Page.Product != nil {
		crossSell = s.crossSell(ctx, ev)
	}

	payload := storefront.AssembleConfig(feed, ev.DomainID, rootCategoryID, categoryData, crossSell)
	if ev.Page != nil {
		ev.Page.AddExtension(storefront.ExtensionName, payload)
	}
	return nil
}

// crossSell resuelve el producto canónico; un fallo de lectura solo omite el cross-sell.
func (s *Subscriber) crossSell(ctx context.Context, ev *RenderEvent) *storefront.CrossSell {
	canonical, err := s.resolver.Resolve(ctx, ev.Page.Product)
	if err != nil {
		s.log.Error().Err(err).
			Str("domain_id", ev.DomainID).
			Str("product_id", ev.Page.Product.ID).
			Msg("resolver variante canónica")
		return nil
	}
	if canonical == nil {
		return nil
	}
	return &storefront.CrossSell{ProductNumber: canonical.ProductNumber, Locale: ev.Locale}
}
