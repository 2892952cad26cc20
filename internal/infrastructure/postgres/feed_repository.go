package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/tweakwise-api/internal/domain"
	"github.com/jhoicas/tweakwise-api/internal/domain/entity"
	"github.com/jhoicas/tweakwise-api/internal/domain/repository"
)

var _ repository.FeedRepository = (*FeedRepo)(nil)

const feedSelect = `
	SELECT f.id, f.name, f.token, f.integration, f.way_of_search, f.created_at, f.updated_at,
	       COALESCE(
	           (SELECT array_agg(fd.sales_channel_domain_id::text ORDER BY fd.sales_channel_domain_id)
	            FROM feed_sales_channel_domains fd WHERE fd.feed_id = f.id),
	           '{}'::text[]) AS domain_ids
	FROM tweakwise_feeds f`

// FeedRepo implementación del puerto FeedRepository sobre PostgreSQL (usable con pool o tx).
type FeedRepo struct {
	q Querier
}

// NewFeedRepository construye el adaptador de persistencia para feeds.
func NewFeedRepository(q Querier) *FeedRepo {
	return &FeedRepo{q: q}
}

// Create persiste un feed (sin dominios; ver ReplaceDomains).
func (r *FeedRepo) Create(ctx context.Context, feed *entity.Feed) error {
	query := `
		INSERT INTO tweakwise_feeds (id, name, token, integration, way_of_search, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		feed.ID, feed.Name, feed.Token, feed.Integration, feed.WayOfSearch, feed.CreatedAt, feed.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert feed: %w", err)
	}
	return nil
}

// GetByID obtiene un feed con sus dominios.
func (r *FeedRepo) GetByID(ctx context.Context, id string) (*entity.Feed, error) {
	f, err := scanFeed(r.q.QueryRow(ctx, feedSelect+` WHERE f.id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("get feed: %w", err)
	}
	return f, nil
}

// FindByDomain feed asignado al dominio. El índice único garantiza uno; el ORDER BY fija
// cuál gana si los datos se hubieran cargado sin él.
func (r *FeedRepo) FindByDomain(ctx context.Context, domainID string) (*entity.Feed, error) {
	query := feedSelect + `
		JOIN feed_sales_channel_domains fsd ON fsd.feed_id = f.id
		WHERE fsd.sales_channel_domain_id = $1
		ORDER BY f.created_at ASC, f.id ASC
		LIMIT 1`
	f, err := scanFeed(r.q.QueryRow(ctx, query, domainID))
	if err != nil {
		return nil, fmt.Errorf("find feed by domain: %w", err)
	}
	return f, nil
}

// Update actualiza los datos del feed (no sus dominios).
func (r *FeedRepo) Update(ctx context.Context, feed *entity.Feed) error {
	query := `
		UPDATE tweakwise_feeds SET name = $2, token = $3, integration = $4, way_of_search = $5, updated_at = $6
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		feed.ID, feed.Name, feed.Token, feed.Integration, feed.WayOfSearch, feed.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update feed: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ReplaceDomains borra y vuelve a insertar la asignación de dominios.
// Un dominio ya asignado a otro feed viola uq_feed_domain -> domain.ErrDomainTaken.
func (r *FeedRepo) ReplaceDomains(ctx context.Context, feedID string, domainIDs []string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM feed_sales_channel_domains WHERE feed_id = $1`, feedID); err != nil {
		return fmt.Errorf("clear feed domains: %w", err)
	}
	for _, domainID := range domainIDs {
		_, err := r.q.Exec(ctx,
			`INSERT INTO feed_sales_channel_domains (feed_id, sales_channel_domain_id) VALUES ($1, $2)`,
			feedID, domainID,
		)
		if err != nil {
			if isUniqueViolation(err) && constraintName(err) == "uq_feed_domain" {
				return fmt.Errorf("dominio %s: %w", domainID, domain.ErrDomainTaken)
			}
			return fmt.Errorf("insert feed domain: %w", err)
		}
	}
	return nil
}

// List lista feeds con paginación.
func (r *FeedRepo) List(ctx context.Context, limit, offset int) ([]*entity.Feed, error) {
	rows, err := r.q.Query(ctx, feedSelect+` ORDER BY f.created_at DESC, f.id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list feeds: %w", err)
	}
	defer rows.Close()
	var list []*entity.Feed
	for rows.Next() {
		f, err := scanFeed(rows)
		if err != nil {
			return nil, fmt.Errorf("scan feed: %w", err)
		}
		list = append(list, f)
	}
	return list, rows.Err()
}

// Delete elimina un feed; la asignación de dominios cae por cascada. Inexistente -> domain.ErrNotFound.
func (r *FeedRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM tweakwise_feeds WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete feed: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanFeed(row pgx.Row) (*entity.Feed, error) {
	var f entity.Feed
	err := row.Scan(&f.ID, &f.Name, &f.Token, &f.Integration, &f.WayOfSearch, &f.CreatedAt, &f.UpdatedAt, &f.DomainIDs)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &f, nil
}
