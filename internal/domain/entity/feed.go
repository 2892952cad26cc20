package entity

import "time"

// DefaultFeedName nombre por defecto de un feed creado sin nombre.
const DefaultFeedName = "Main feed"

// Modos de integración Tweakwise.
const (
	IntegrationJavaScript   = "javascript"
	IntegrationPluginStudio = "pluginstudio"
)

// Formas de búsqueda Tweakwise.
const (
	WayOfSearchInstant     = "instant-search"
	WayOfSearchSuggestions = "suggestions"
)

// Feed configuración Tweakwise aplicada a uno o más dominios de canal de venta.
// Un dominio pertenece como mucho a un feed (índice único en feed_sales_channel_domains).
type Feed struct {
	ID          string
	Name        string
	Token       string // instance key de Tweakwise
	Integration string
	WayOfSearch string
	DomainIDs   []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
