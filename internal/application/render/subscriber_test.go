package render_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tweakwise-api/internal/application/render"
	"github.com/jhoicas/tweakwise-api/internal/domain/entity"
	"github.com/jhoicas/tweakwise-api/internal/domain/storefront"
	"github.com/jhoicas/tweakwise-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixture: canal "sc1" con raíz "root", dominio "dom1" con feed, dominio "dom2" sin feed
// ──────────────────────────────────────────────────────────────────────────────

const (
	testDomain   = "dom1"
	testRoot     = "root"
	testInstance = "abc123"
)

type fixture struct {
	feeds      *fakeFeeds
	nav        *fakeNav
	products   *fakeProducts
	subscriber *render.Subscriber
	channel    *entity.SalesChannel
}

func newFixture(t *testing.T, behavior storefront.VariantListingBehavior) *fixture {
	t.Helper()
	created := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	parent := &entity.Product{ID: "parent1", ProductNumber: "SW-P", CreatedAt: created,
		VariantListingConfig: &entity.VariantListingConfig{MainVariantID: "variantX"}}
	child := &entity.Product{ID: "child1", ParentID: "parent1", ProductNumber: "SW-C1", CreatedAt: created.Add(time.Hour)}
	variantX := &entity.Product{ID: "variantX", ParentID: "parent1", ProductNumber: "SW-X", CreatedAt: created.Add(2 * time.Hour)}

	f := &fixture{
		feeds: &fakeFeeds{byDomain: map[string]*entity.Feed{
			testDomain: {ID: "feed1", Token: testInstance, Integration: entity.IntegrationJavaScript, WayOfSearch: entity.WayOfSearchInstant},
		}},
		nav: &fakeNav{trees: map[string][]*entity.CategoryTreeNode{
			testRoot: {
				{ID: "A", Children: []*entity.CategoryTreeNode{{ID: "A1"}, {ID: "A2"}}},
				{ID: "B"},
			},
		}},
		products: &fakeProducts{byID: map[string]*entity.Product{
			parent.ID: parent, child.ID: child, variantX.ID: variantX,
		}},
		channel: &entity.SalesChannel{ID: "sc1", NavigationCategoryID: testRoot},
	}
	resolver := storefront.NewVariantResolver(f.products, storefront.FixedBehavior(behavior))
	f.subscriber = render.NewSubscriber(f.feeds, render.NewTreeIndexer(f.nav, 99), resolver, logger.Nop())
	return f
}

func payloadOf(t *testing.T, page *render.Page) storefront.ConfigPayload {
	t.Helper()
	require.Contains(t, page.Extensions, storefront.ExtensionName)
	payload, ok := page.Extensions[storefront.ExtensionName].(storefront.ConfigPayload)
	require.True(t, ok, "la extensión debe ser un ConfigPayload")
	return payload
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestOnRender_PaginaGenerica(t *testing.T) {
	f := newFixture(t, storefront.BehaviorListingConfig)
	page := &render.Page{Type: render.PageGeneric}

	err := f.subscriber.OnRender(context.Background(), &render.RenderEvent{
		DomainID: testDomain, Locale: "en-GB", SalesChannel: f.channel, Page: page,
	})
	require.NoError(t, err)

	payload := payloadOf(t, page)
	assert.Equal(t, testDomain, payload.DomainID)
	assert.Equal(t, testRoot, payload.RootCategoryID)
	assert.Equal(t, testInstance, payload.InstanceKey)
	assert.Len(t, payload.CategoryData, 4)
	assert.Equal(t, "A1", payload.CategoryData[storefront.CategoryKey("A1", testDomain)])
	assert.Empty(t, payload.CrossSellProductID, "solo las páginas de producto llevan cross-sell")
	assert.Equal(t, 99, f.nav.lastDepth)
}

func TestOnRender_DominioSinFeedNoAdjunta(t *testing.T) {
	f := newFixture(t, storefront.BehaviorListingConfig)
	page := &render.Page{Type: render.PageGeneric}

	err := f.subscriber.OnRender(context.Background(), &render.RenderEvent{
		DomainID: "dom2", SalesChannel: f.channel, Page: page,
	})
	require.NoError(t, err)
	assert.Empty(t, page.Extensions)
	assert.Zero(t, f.nav.calls, "sin feed no se carga la navegación")
}

func TestOnRender_PaginaProductoUsaVarianteCanonica(t *testing.T) {
	f := newFixture(t, storefront.BehaviorListingConfig)
	page := &render.Page{Type: render.PageProduct, Product: f.products.byID["child1"]}

	err := f.subscriber.OnRender(context.Background(), &render.RenderEvent{
		DomainID: testDomain, Locale: "en-GB", SalesChannel: f.channel, Page: page,
	})
	require.NoError(t, err)

	// crc32("dom1") = 57062685; mainVariantId -> variantX
	assert.Equal(t, "SW-X (en-GB - 57062685)", payloadOf(t, page).CrossSellProductID)
}

func TestOnRender_PassthroughUsaProductoOriginal(t *testing.T) {
	f := newFixture(t, storefront.BehaviorPassthrough)
	page := &render.Page{Type: render.PageProduct, Product: f.products.byID["child1"]}

	require.NoError(t, f.subscriber.OnRender(context.Background(), &render.RenderEvent{
		DomainID: testDomain, Locale: "nl-NL", SalesChannel: f.channel, Page: page,
	}))
	assert.Equal(t, "SW-C1 (nl-NL - 57062685)", payloadOf(t, page).CrossSellProductID)
}

func TestOnRender_ErrorDelResolverOmiteCrossSell(t *testing.T) {
	f := newFixture(t, storefront.BehaviorListingConfig)
	page := &render.Page{Type: render.PageProduct, Product: f.products.byID["child1"]}
	f.products.err = errors.New("timeout")

	require.NoError(t, f.subscriber.OnRender(context.Background(), &render.RenderEvent{
		DomainID: testDomain, Locale: "en-GB", SalesChannel: f.channel, Page: page,
	}))
	assert.Empty(t, payloadOf(t, page).CrossSellProductID)
}

func TestOnRender_SinPaginaNoFalla(t *testing.T) {
	f := newFixture(t, storefront.BehaviorListingConfig)
	err := f.subscriber.OnRender(context.Background(), &render.RenderEvent{DomainID: testDomain, SalesChannel: f.channel})
	assert.NoError(t, err)
}

func TestOnRender_ErroresDeInfraestructura(t *testing.T) {
	f := newFixture(t, storefront.BehaviorListingConfig)
	f.feeds.err = errors.New("db caída")
	err := f.subscriber.OnRender(context.Background(), &render.RenderEvent{DomainID: testDomain, Page: &render.Page{}})
	assert.ErrorIs(t, err, f.feeds.err)

	f = newFixture(t, storefront.BehaviorListingConfig)
	f.nav.err = errors.New("navegación")
	err = f.subscriber.OnRender(context.Background(), &render.RenderEvent{DomainID: testDomain, SalesChannel: f.channel, Page: &render.Page{}})
	assert.ErrorIs(t, err, f.nav.err)
}

func TestNewTreeIndexer_AcotaProfundidad(t *testing.T) {
	nav := &fakeNav{}
	_, err := render.NewTreeIndexer(nav, 500).Index(context.Background(), testRoot, testDomain)
	require.NoError(t, err)
	assert.Equal(t, storefront.MaxCategoryDepth, nav.lastDepth)

	_, err = render.NewTreeIndexer(nav, 3).Index(context.Background(), testRoot, testDomain)
	require.NoError(t, err)
	assert.Equal(t, 3, nav.lastDepth)
}
