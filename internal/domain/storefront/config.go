package storefront

import (
	"fmt"
	"hash/crc32"

	"github.com/jhoicas/tweakwise-api/internal/domain/entity"
)

// ExtensionName nombre de la extensión de página que consume el script de Tweakwise.
const ExtensionName = "twConfiguration"

// ConfigPayload configuración que el template serializa para el script del cliente.
// Los nombres JSON son los que espera el script de frontend.
type ConfigPayload struct {
	DomainID           string            `json:"domainId"`
	RootCategoryID     string            `json:"rootCategoryId"`
	InstanceKey        string            `json:"instanceKey"`
	Integration        string            `json:"integration"`
	WayOfSearch        string            `json:"wayOfSearch"`
	CategoryData       map[string]string `json:"categoryData"`
	CrossSellProductID string            `json:"crossSellProductId,omitempty"`
}

// CrossSell datos del producto canónico en una página de producto.
type CrossSell struct {
	ProductNumber string
	Locale        string
}

// AssembleConfig construye el payload; crossSell solo se pasa en páginas de producto.
func AssembleConfig(feed *entity.Feed, domainID, rootCategoryID string, categoryData map[string]string, crossSell *CrossSell) ConfigPayload {
	if categoryData == nil {
		categoryData = map[string]string{}
	}
	payload := ConfigPayload{
		DomainID:       domainID,
		RootCategoryID: rootCategoryID,
		InstanceKey:    feed.Token,
		Integration:    feed.Integration,
		WayOfSearch:    feed.WayOfSearch,
		CategoryData:   categoryData,
	}
	if crossSell != nil {
		payload.CrossSellProductID = CrossSellProductID(crossSell.ProductNumber, crossSell.Locale, domainID)
	}
	return payload
}

// CrossSellProductID formato "<número> (<locale> - <crc32 hex del dominio>)".
func CrossSellProductID(productNumber, locale, domainID string) string {
	return fmt.Sprintf("%s (%s - %x)", productNumber, locale, crc32.ChecksumIEEE([]byte(domainID)))
}
