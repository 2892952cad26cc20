package dto

// RenderConfigRequest parámetros del render de una página del storefront.
type RenderConfigRequest struct {
	DomainID  string `query:"domainId" validate:"required,uuid"`
	PageType  string `query:"pageType" validate:"omitempty,oneof=generic product"`
	ProductID string `query:"productId" validate:"required_if=PageType product,omitempty,uuid"`
	Locale    string `query:"locale"`
}

// RenderConfigResponse página renderizada con sus extensiones (twConfiguration si aplica).
type RenderConfigResponse struct {
	PageType   string         `json:"pageType"`
	Extensions map[string]any `json:"extensions"`
}
