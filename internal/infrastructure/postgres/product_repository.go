package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/tweakwise-api/internal/domain/entity"
	"github.com/jhoicas/tweakwise-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, parent_id::text, product_number, name, price, active,
	variant_listing_config, configurator_group_config, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de lectura de productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// FindFirstByParentID primera variante creada del padre (desempate por id).
func (r *ProductRepo) FindFirstByParentID(ctx context.Context, parentID string) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE parent_id = $1 ORDER BY created_at ASC, id ASC LIMIT 1`, parentID))
	if err != nil {
		return nil, fmt.Errorf("find first variant: %w", err)
	}
	return p, nil
}

// scanProduct devuelve (nil, nil) con pgx.ErrNoRows.
func scanProduct(row pgx.Row) (*entity.Product, error) {
	var (
		p            entity.Product
		parentID     *string
		listingRaw   []byte
		groupConfRaw []byte
	)
	err := row.Scan(&p.ID, &parentID, &p.ProductNumber, &p.Name, &p.Price, &p.Active,
		&listingRaw, &groupConfRaw, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	p.ParentID = derefString(parentID)

	if len(listingRaw) > 0 && string(listingRaw) != "null" {
		var cfg entity.VariantListingConfig
		if err := json.Unmarshal(listingRaw, &cfg); err != nil {
			return nil, fmt.Errorf("decode variant_listing_config: %w", err)
		}
		p.VariantListingConfig = &cfg
	}
	if len(groupConfRaw) > 0 {
		if err := json.Unmarshal(groupConfRaw, &p.ConfiguratorGroupConfig); err != nil {
			return nil, fmt.Errorf("decode configurator_group_config: %w", err)
		}
	}
	return &p, nil
}
