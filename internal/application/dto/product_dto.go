package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductResponse salida de un producto del catálogo.
type ProductResponse struct {
	ID            string          `json:"id"`
	ParentID      string          `json:"parentId,omitempty"`
	ProductNumber string          `json:"productNumber"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	Active        bool            `json:"active"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// CanonicalVariantResponse producto consultado y el que se anunciaría en listados/cross-sell.
type CanonicalVariantResponse struct {
	Behavior  string          `json:"behavior"`
	Product   ProductResponse `json:"product"`
	Canonical ProductResponse `json:"canonical"`
	// Substituted true si el canónico es distinto del consultado.
	Substituted bool `json:"substituted"`
}
