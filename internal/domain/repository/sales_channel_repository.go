package repository

import (
	"context"

	"github.com/jhoicas/tweakwise-api/internal/domain/entity"
)

// SalesChannelRepository lectura de canales de venta y sus dominios.
type SalesChannelRepository interface {
	// GetDomain devuelve el dominio con su SalesChannel cargado, o nil si no existe.
	GetDomain(ctx context.Context, domainID string) (*entity.SalesChannelDomain, error)
}
