package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/tweakwise-api/internal/application/dto"
	"github.com/jhoicas/tweakwise-api/internal/domain"
	"github.com/jhoicas/tweakwise-api/internal/domain/entity"
	"github.com/jhoicas/tweakwise-api/internal/domain/repository"
)

// FeedUseCase casos de uso de administración de feeds Tweakwise.
type FeedUseCase struct {
	repo     repository.FeedRepository
	channels repository.SalesChannelRepository
	tx       FeedTxRunner
}

// NewFeedUseCase construye el caso de uso.
func NewFeedUseCase(repo repository.FeedRepository, channels repository.SalesChannelRepository, tx FeedTxRunner) *FeedUseCase {
	return &FeedUseCase{repo: repo, channels: channels, tx: tx}
}

// Create crea un feed y le asigna dominios. Un dominio ya asignado a otro feed -> domain.ErrDomainTaken.
func (uc *FeedUseCase) Create(ctx context.Context, in dto.CreateFeedRequest) (*dto.FeedResponse, error) {
	domainIDs := uniqueIDs(in.DomainIDs)
	if err := uc.checkDomains(ctx, "", domainIDs); err != nil {
		return nil, err
	}
	name := in.Name
	if name == "" {
		name = entity.DefaultFeedName
	}
	now := time.Now()
	feed := &entity.Feed{
		ID:          uuid.New().String(),
		Name:        name,
		Token:       in.Token,
		Integration: in.Integration,
		WayOfSearch: in.WayOfSearch,
		DomainIDs:   domainIDs,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	err := uc.tx.RunFeeds(ctx, func(feeds repository.FeedRepository) error {
		if err := feeds.Create(ctx, feed); err != nil {
			return err
		}
		return feeds.ReplaceDomains(ctx, feed.ID, domainIDs)
	})
	if err != nil {
		return nil, err
	}
	return toFeedResponse(feed), nil
}

// GetByID obtiene un feed por ID; (nil, nil) si no existe.
func (uc *FeedUseCase) GetByID(ctx context.Context, id string) (*dto.FeedResponse, error) {
	feed, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if feed == nil {
		return nil, nil
	}
	return toFeedResponse(feed), nil
}

// Update actualiza los campos presentes; DomainIDs != nil reemplaza la asignación completa.
func (uc *FeedUseCase) Update(ctx context.Context, id string, in dto.UpdateFeedRequest) (*dto.FeedResponse, error) {
	feed, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if feed == nil {
		return nil, nil
	}
	if in.Name != nil {
		feed.Name = *in.Name
	}
	if in.Token != nil {
		feed.Token = *in.Token
	}
	if in.Integration != nil {
		feed.Integration = *in.Integration
	}
	if in.WayOfSearch != nil {
		feed.WayOfSearch = *in.WayOfSearch
	}
	replaceDomains := in.DomainIDs != nil
	if replaceDomains {
		feed.DomainIDs = uniqueIDs(in.DomainIDs)
		if err := uc.checkDomains(ctx, feed.ID, feed.DomainIDs); err != nil {
			return nil, err
		}
	}
	feed.UpdatedAt = time.Now()

	err = uc.tx.RunFeeds(ctx, func(feeds repository.FeedRepository) error {
		if err := feeds.Update(ctx, feed); err != nil {
			return err
		}
		if !replaceDomains {
			return nil
		}
		return feeds.ReplaceDomains(ctx, feed.ID, feed.DomainIDs)
	})
	if err != nil {
		return nil, err
	}
	return toFeedResponse(feed), nil
}

// List lista feeds con paginación.
func (uc *FeedUseCase) List(ctx context.Context, limit, offset int) (*dto.FeedListResponse, error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.FeedResponse, 0, len(list))
	for _, f := range list {
		items = append(items, *toFeedResponse(f))
	}
	return &dto.FeedListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un feed; sus dominios quedan libres.
func (uc *FeedUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// checkDomains exige que cada dominio exista y no pertenezca a otro feed distinto de feedID.
func (uc *FeedUseCase) checkDomains(ctx context.Context, feedID string, domainIDs []string) error {
	for _, id := range domainIDs {
		d, err := uc.channels.GetDomain(ctx, id)
		if err != nil {
			return err
		}
		if d == nil {
			return fmt.Errorf("dominio %s: %w", id, domain.ErrInvalidInput)
		}
		owner, err := uc.repo.FindByDomain(ctx, id)
		if err != nil {
			return err
		}
		if owner != nil && owner.ID != feedID {
			return fmt.Errorf("dominio %s: %w", id, domain.ErrDomainTaken)
		}
	}
	return nil
}

func uniqueIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func toFeedResponse(f *entity.Feed) *dto.FeedResponse {
	if f == nil {
		return nil
	}
	domainIDs := f.DomainIDs
	if domainIDs == nil {
		domainIDs = []string{}
	}
	return &dto.FeedResponse{
		ID:          f.ID,
		Name:        f.Name,
		Token:       f.Token,
		Integration: f.Integration,
		WayOfSearch: f.WayOfSearch,
		DomainIDs:   domainIDs,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}
