// Package pipeline sequences the full ingestion run: cache lookup,
// concurrent fetch, normalization, dedup, classification, sorting and the
// cache write-back.
package pipeline

import (
	"context"
	"sort"
	"strings"

	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"

	"github.com/dloza02/dlo-creative-lab/internal/cache"
	"github.com/dloza02/dlo-creative-lab/internal/classify"
	"github.com/dloza02/dlo-creative-lab/internal/favorites"
	"github.com/dloza02/dlo-creative-lab/internal/fetch"
	"github.com/dloza02/dlo-creative-lab/internal/normalize"
)

// Pipeline owns one ingestion run at a time. Collaborators are injected
// so tests can run against httptest servers and in-memory stores.
type Pipeline struct {
	cache   *cache.Store
	client  *fetch.Client
	sources []string
}

func New(cacheStore *cache.Store, client *fetch.Client, sources []string) *Pipeline {
	return &Pipeline{cache: cacheStore, client: client, sources: sources}
}

// Load returns the current article collection. A valid cache entry
// short-circuits the network entirely; otherwise every source is fetched
// concurrently and the results processed. Individual source failures are
// tolerated; only a cancelled context is a pipeline-level failure.
func (p *Pipeline) Load(ctx context.Context) ([]cache.Article, error) {
	if articles, ok := p.cache.Get(); ok && len(articles) > 0 {
		log.WithField("count", len(articles)).Debug("cache hit")
		return articles, nil
	}

	result := fetch.FetchAll(ctx, p.client, p.sources)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw := result.Items
	if len(raw) == 0 {
		log.Warn("every source failed, serving built-in samples")
		raw = sampleItems
	}

	articles := process(raw)

	// Storage failures degrade to an uncached run; never fatal.
	if err := p.cache.Put(articles); err != nil {
		log.WithError(err).Warn("caching skipped")
	}
	return articles, nil
}

// process runs normalize -> dedupe -> classify -> sort over raw items.
func process(raw []fetch.RawItem) []cache.Article {
	articles := lo.Map(raw, func(item fetch.RawItem, _ int) cache.Article {
		return normalize.Article(item)
	})

	// First occurrence of a link wins.
	articles = lo.UniqBy(articles, func(a cache.Article) string { return a.Link })

	kept := articles[:0]
	for _, a := range articles {
		category, ok := classify.Classify(a.Title, a.Description)
		if !ok {
			continue
		}
		a.Category = category
		kept = append(kept, a)
	}
	articles = kept

	// Newest first; unparseable dates carry a zero sort key and sink to
	// the bottom, ties keep their pre-sort order.
	sort.SliceStable(articles, func(i, j int) bool {
		return articles[i].Published.After(articles[j].Published)
	})
	return articles
}

// ApplyFavorites overlays the transient IsFavorite flag from the store.
func ApplyFavorites(articles []cache.Article, favs *favorites.Store) []cache.Article {
	ids := favs.IDs()
	for i := range articles {
		articles[i].IsFavorite = ids[articles[i].ID]
	}
	return articles
}

// Search filters the in-memory collection by a case-insensitive match
// against title, description and source. An empty query matches all.
func Search(articles []cache.Article, query string) []cache.Article {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return articles
	}
	return lo.Filter(articles, func(a cache.Article, _ int) bool {
		return strings.Contains(strings.ToLower(a.Title), query) ||
			strings.Contains(strings.ToLower(a.Description), query) ||
			strings.Contains(strings.ToLower(a.Source), query)
	})
}

// Filter selects articles for a category tab. "all" passes everything,
// "favorites" selects the saved set, anything else matches the assigned
// category.
func Filter(articles []cache.Article, categoryID string, favs *favorites.Store) []cache.Article {
	switch categoryID {
	case "", classify.All:
		return articles
	case classify.Favorites:
		ids := favs.IDs()
		return lo.Filter(articles, func(a cache.Article, _ int) bool {
			return ids[a.ID]
		})
	default:
		return lo.Filter(articles, func(a cache.Article, _ int) bool {
			return a.Category == categoryID
		})
	}
}
