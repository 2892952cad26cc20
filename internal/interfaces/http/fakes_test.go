package http_test

import (
	"context"
	"sort"

	"github.com/jhoicas/tweakwise-api/internal/domain"
	"github.com/jhoicas/tweakwise-api/internal/domain/entity"
	"github.com/jhoicas/tweakwise-api/internal/domain/repository"
)

// memFeeds repositorio de feeds en memoria.
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
	if _, ok := m.feeds[id]; !ok {
		return domain.ErrNotFound
	}
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

type memProducts map[string]*entity.Product

func (m memProducts) GetByID(_ context.Context, id string) (*entity.Product, error) {
	return m[id], nil
}

func (m memProducts) FindFirstByParentID(_ context.Context, parentID string) (*entity.Product, error) {
	var first *entity.Product
	for _, p := range m {
		if p.ParentID == parentID && (first == nil || p.CreatedAt.Before(first.CreatedAt)) {
			first = p
		}
	}
	return first, nil
}

type memNav map[string][]*entity.CategoryTreeNode

func (m memNav) Load(_ context.Context, rootCategoryID string, _ int) ([]*entity.CategoryTreeNode, error) {
	return m[rootCategoryID], nil
}

type memUsers map[string]*entity.User

func (m memUsers) Create(_ context.Context, u *entity.User) error {
	m[u.Email] = u
	return nil
}

func (m memUsers) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	return m[email], nil
}
