package entry

import "context"

// PageCache keeps assembled pages for lookups by title and by id.
// Errors of a cache never fail a lookup, the repository falls back to the store.
type PageCache interface {
	GetByTitle(ctx context.Context, title string) (*Page, bool, error)
	GetByID(ctx context.Context, id int64) (*Page, bool, error)
	Set(ctx context.Context, page *Page) error
	Delete(ctx context.Context, id int64, title string) error
}

var _ PageCache = NopCache{}

// NopCache caches nothing.
type NopCache struct{}

func (NopCache) GetByTitle(context.Context, string) (*Page, bool, error) { return nil, false, nil }

func (NopCache) GetByID(context.Context, int64) (*Page, bool, error) { return nil, false, nil }

func (NopCache) Set(context.Context, *Page) error { return nil }

func (NopCache) Delete(context.Context, int64, string) error { return nil }
