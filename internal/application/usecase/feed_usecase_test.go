package usecase_test

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tweakwise-api/internal/application/dto"
	"github.com/jhoicas/tweakwise-api/internal/application/usecase"
	"github.com/jhoicas/tweakwise-api/internal/domain"
	"github.com/jhoicas/tweakwise-api/internal/domain/entity"
	"github.com/jhoicas/tweakwise-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorio en memoria + tx runner que ejecuta directo
// ──────────────────────────────────────────────────────────────────────────────

type memFeeds struct {
	feeds map[string]*entity.Feed
}

func newMemFeeds() *memFeeds { return &memFeeds{feeds: map[string]*entity.Feed{}} }

func (m *memFeeds) Create(_ context.Context, f *entity.Feed) error {
	cp := *f
	cp.DomainIDs = nil
	m.feeds[f.ID] = &cp
	return nil
}

func (m *memFeeds) GetByID(_ context.Context, id string) (*entity.Feed, error) {
	f, ok := m.feeds[id]
	if !ok {
		return nil, nil
	}
	cp := *f
	return &cp, nil
}

func (m *memFeeds) FindByDomain(_ context.Context, domainID string) (*entity.Feed, error) {
	for _, f := range m.feeds {
		for _, d := range f.DomainIDs {
			if d == domainID {
				cp := *f
				return &cp, nil
			}
		}
	}
	return nil, nil
}

func (m *memFeeds) Update(_ context.Context, f *entity.Feed) error {
	prev := m.feeds[f.ID]
	cp := *f
	cp.DomainIDs = prev.DomainIDs
	m.feeds[f.ID] = &cp
	return nil
}

func (m *memFeeds) ReplaceDomains(_ context.Context, feedID string, domainIDs []string) error {
	m.feeds[feedID].DomainIDs = append([]string(nil), domainIDs...)
	return nil
}

func (m *memFeeds) List(context.Context, int, int) ([]*entity.Feed, error) {
	out := make([]*entity.Feed, 0, len(m.feeds))
	for _, f := range m.feeds {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *memFeeds) Delete(_ context.Context, id string) error {
	delete(m.feeds, id)
	return nil
}

type directTx struct{ repo *memFeeds }

func (d directTx) RunFeeds(_ context.Context, fn func(repository.FeedRepository) error) error {
	return fn(d.repo)
}

type memChannels map[string]*entity.SalesChannelDomain

func (m memChannels) GetDomain(_ context.Context, id string) (*entity.SalesChannelDomain, error) {
	return m[id], nil
}

const (
	domNL = "0d8f3c1e-5a7b-4c2d-9e0f-1a2b3c4d5e6f"
	domEN = "1e9a4d2f-6b8c-4d3e-8f1a-2b3c4d5e6f70"
)

func newFeedUC() (*usecase.FeedUseCase, *memFeeds) {
	repo := newMemFeeds()
	channels := memChannels{
		domNL: {ID: domNL, Locale: "nl-NL"},
		domEN: {ID: domEN, Locale: "en-GB"},
	}
	return usecase.NewFeedUseCase(repo, channels, directTx{repo: repo}), repo
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestFeedCreate_NombrePorDefectoYDominios(t *testing.T) {
	uc, repo := newFeedUC()
	out, err := uc.Create(context.Background(), dto.CreateFeedRequest{
		Token: "abc", Integration: entity.IntegrationJavaScript, WayOfSearch: entity.WayOfSearchInstant,
		DomainIDs: []string{domNL, domNL},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultFeedName, out.Name)
	assert.Equal(t, []string{domNL}, out.DomainIDs, "los duplicados se eliminan")

	owner, err := repo.FindByDomain(context.Background(), domNL)
	require.NoError(t, err)
	require.NotNil(t, owner)
	assert.Equal(t, out.ID, owner.ID)
}

func TestFeedCreate_DominioOcupado(t *testing.T) {
	uc, _ := newFeedUC()
	ctx := context.Background()
	_, err := uc.Create(ctx, dto.CreateFeedRequest{Token: "a", Integration: "javascript", WayOfSearch: "suggestions", DomainIDs: []string{domNL}})
	require.NoError(t, err)

	_, err = uc.Create(ctx, dto.CreateFeedRequest{Token: "b", Integration: "javascript", WayOfSearch: "suggestions", DomainIDs: []string{domNL}})
	assert.ErrorIs(t, err, domain.ErrDomainTaken)
}

func TestFeedCreate_DominioInexistente(t *testing.T) {
	uc, _ := newFeedUC()
	_, err := uc.Create(context.Background(), dto.CreateFeedRequest{
		Token: "a", Integration: "javascript", WayOfSearch: "suggestions",
		DomainIDs: []string{"2f0b5e3a-7c9d-4e4f-9a2b-3c4d5e6f7081"},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestFeedUpdate_ReemplazaDominiosYConservaLosPropios(t *testing.T) {
	uc, _ := newFeedUC()
	ctx := context.Background()
	created, err := uc.Create(ctx, dto.CreateFeedRequest{Token: "a", Integration: "javascript", WayOfSearch: "suggestions", DomainIDs: []string{domNL}})
	require.NoError(t, err)

	token := "nuevo-token"
	out, err := uc.Update(ctx, created.ID, dto.UpdateFeedRequest{Token: &token, DomainIDs: []string{domNL, domEN}})
	require.NoError(t, err)
	assert.Equal(t, "nuevo-token", out.Token)
	assert.ElementsMatch(t, []string{domNL, domEN}, out.DomainIDs)

	got, err := uc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{domNL, domEN}, got.DomainIDs)
}

func TestFeedUpdate_SinDominiosNoToca(t *testing.T) {
	uc, _ := newFeedUC()
	ctx := context.Background()
	created, err := uc.Create(ctx, dto.CreateFeedRequest{Token: "a", Integration: "javascript", WayOfSearch: "suggestions", DomainIDs: []string{domEN}})
	require.NoError(t, err)

	name := "Feed EN"
	out, err := uc.Update(ctx, created.ID, dto.UpdateFeedRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Feed EN", out.Name)
	assert.Equal(t, []string{domEN}, out.DomainIDs)
}

func TestFeedUpdate_Inexistente(t *testing.T) {
	uc, _ := newFeedUC()
	out, err := uc.Update(context.Background(), "nada", dto.UpdateFeedRequest{})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestFeedListYDelete(t *testing.T) {
	uc, _ := newFeedUC()
	ctx := context.Background()
	a, err := uc.Create(ctx, dto.CreateFeedRequest{Name: "A", Token: "a", Integration: "javascript", WayOfSearch: "suggestions"})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.CreateFeedRequest{Name: "B", Token: "b", Integration: "pluginstudio", WayOfSearch: "instant-search"})
	require.NoError(t, err)

	list, err := uc.List(ctx, 20, 0)
	require.NoError(t, err)
	assert.Len(t, list.Items, 2)
	assert.Equal(t, []string{}, list.Items[0].DomainIDs, "domainIds nunca es null")

	require.NoError(t, uc.Delete(ctx, a.ID))
	list, err = uc.List(ctx, 20, 0)
	require.NoError(t, err)
	assert.Len(t, list.Items, 1)
}
