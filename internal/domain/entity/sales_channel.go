package entity

import "time"

// SalesChannel canal de venta; NavigationCategoryID es la raíz del árbol de navegación.
type SalesChannel struct {
	ID                   string
	Name                 string
	NavigationCategoryID string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// SalesChannelDomain dominio (URL + locale) de un canal de venta.
type SalesChannelDomain struct {
	ID             string
	SalesChannelID string
	URL            string
	Locale         string // ej. en-GB, nl-NL
	SalesChannel   *SalesChannel
}
