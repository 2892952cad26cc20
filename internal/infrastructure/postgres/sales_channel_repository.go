package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/tweakwise-api/internal/domain/entity"
	"github.com/jhoicas/tweakwise-api/internal/domain/repository"
)

var _ repository.SalesChannelRepository = (*SalesChannelRepo)(nil)

// SalesChannelRepo lectura de canales de venta y dominios.
type SalesChannelRepo struct {
	q Querier
}

// NewSalesChannelRepository construye el adaptador.
func NewSalesChannelRepository(q Querier) *SalesChannelRepo {
	return &SalesChannelRepo{q: q}
}

// GetDomain obtiene el dominio con su canal de venta.
func (r *SalesChannelRepo) GetDomain(ctx context.Context, domainID string) (*entity.SalesChannelDomain, error) {
	query := `
		SELECT d.id, d.sales_channel_id, d.url, d.locale,
		       s.name, s.navigation_category_id, s.created_at, s.updated_at
		FROM sales_channel_domains d
		JOIN sales_channels s ON s.id = d.sales_channel_id
		WHERE d.id = $1`
	var (
		d  entity.SalesChannelDomain
		sc entity.SalesChannel
	)
	err := r.q.QueryRow(ctx, query, domainID).Scan(
		&d.ID, &d.SalesChannelID, &d.URL, &d.Locale,
		&sc.Name, &sc.NavigationCategoryID, &sc.CreatedAt, &sc.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sales channel domain: %w", err)
	}
	sc.ID = d.SalesChannelID
	d.SalesChannel = &sc
	return &d, nil
}
