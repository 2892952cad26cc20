package entity

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Product producto del catálogo. Las variantes tienen ParentID; el padre define cómo se listan.
type Product struct {
	ID            string
	ParentID      string // vacío si no es variante
	ProductNumber string
	Name          string
	Price         decimal.Decimal
	Active        bool
	// VariantListingConfig forma actual de la configuración de listado (en el padre).
	VariantListingConfig *VariantListingConfig
	// ConfiguratorGroupConfig forma histórica, guardada directamente en el padre.
	ConfiguratorGroupConfig ConfiguratorGroupConfig
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// HasParent indica si el producto es una variante.
func (p *Product) HasParent() bool {
	return p != nil && p.ParentID != ""
}

// VariantListingConfig decide qué producto representa a la familia en listados.
type VariantListingConfig struct {
	DisplayParent           bool                    `json:"displayParent"`
	MainVariantID           string                  `json:"mainVariantId,omitempty"`
	ConfiguratorGroupConfig ConfiguratorGroupConfig `json:"configuratorGroupConfig,omitempty"`
}

// ConfiguratorGroupSetting regla por grupo de propiedades del configurador.
type ConfiguratorGroupSetting struct {
	ID                    string `json:"id"`
	Representation        string `json:"representation,omitempty"`
	ExpressionForListings bool   `json:"expressionForListings"`
}

// ConfiguratorGroupConfig lista ordenada de reglas del configurador.
type ConfiguratorGroupConfig []ConfiguratorGroupSetting

// UnmarshalJSON tolera entradas que no son objetos y valores no booleanos:
// solo un `true` literal activa expressionForListings.
func (c *ConfiguratorGroupConfig) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		// null u otro tipo: sin reglas
		*c = nil
		return nil
	}
	out := make(ConfiguratorGroupConfig, 0, len(raw))
	for _, item := range raw {
		var fields map[string]any
		if err := json.Unmarshal(item, &fields); err != nil || fields == nil {
			out = append(out, ConfiguratorGroupSetting{})
			continue
		}
		var s ConfiguratorGroupSetting
		s.ID, _ = fields["id"].(string)
		s.Representation, _ = fields["representation"].(string)
		s.ExpressionForListings, _ = fields["expressionForListings"].(bool)
		out = append(out, s)
	}
	*c = out
	return nil
}

// ExpressesForListings indica si alguna regla pide mostrar las variantes expandidas en listados.
func (c ConfiguratorGroupConfig) ExpressesForListings() bool {
	for _, s := range c {
		if s.ExpressionForListings {
			return true
		}
	}
	return false
}
