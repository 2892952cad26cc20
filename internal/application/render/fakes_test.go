package render_test

import (
	"context"

	"github.com/jhoicas/tweakwise-api/internal/domain/entity"
)

type fakeFeeds struct {
	byDomain map[string]*entity.Feed
	err      error
}

func (f *fakeFeeds) Create(context.Context, *entity.Feed) error { return nil }
func (f *fakeFeeds) GetByID(context.Context, string) (*entity.Feed, error) {
	return nil, nil
}
func (f *fakeFeeds) FindByDomain(_ context.Context, domainID string) (*entity.Feed, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byDomain[domainID], nil
}
func (f *fakeFeeds) Update(context.Context, *entity.Feed) error             { return nil }
func (f *fakeFeeds) ReplaceDomains(context.Context, string, []string) error { return nil }
func (f *fakeFeeds) List(context.Context, int, int) ([]*entity.Feed, error) { return nil, nil }
func (f *fakeFeeds) Delete(context.Context, string) error                   { return nil }

type fakeNav struct {
	trees     map[string][]*entity.CategoryTreeNode
	lastDepth int
	calls     int
	err       error
}

func (n *fakeNav) Load(_ context.Context, rootCategoryID string, depth int) ([]*entity.CategoryTreeNode, error) {
	n.calls++
	n.lastDepth = depth
	if n.err != nil {
		return nil, n.err
	}
	return n.trees[rootCategoryID], nil
}

type fakeChannels struct {
	domains map[string]*entity.SalesChannelDomain
}

func (c *fakeChannels) GetDomain(_ context.Context, domainID string) (*entity.SalesChannelDomain, error) {
	return c.domains[domainID], nil
}

type fakeProducts struct {
	byID map[string]*entity.Product
	err  error
}

func (p *fakeProducts) GetByID(_ context.Context, id string) (*entity.Product, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.byID[id], nil
}

func (p *fakeProducts) FindFirstByParentID(_ context.Context, parentID string) (*entity.Product, error) {
	if p.err != nil {
		return nil, p.err
	}
	var first *entity.Product
	for _, c := range p.byID {
		if c.ParentID == parentID && (first == nil || c.CreatedAt.Before(first.CreatedAt)) {
			first = c
		}
	}
	return first, nil
}
