// Package services implements the business logic behind each tool: it
// translates tool-level requests into sejmapi calls, shapes the results into
// tool output types, and manages the document/result-set stores.
package services

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/sejmkit/gateway/internal/models"
	"github.com/sejmkit/gateway/internal/sejmapi"
)

// Metadata serves the fixed system metadata categories (keywords,
// publishers, statuses, types, institutions).
type Metadata struct {
	client *sejmapi.Client
}

func NewMetadata(client *sejmapi.Client) *Metadata {
	return &Metadata{client: client}
}

var metadataEndpoints = map[models.MetadataCategory]string{
	models.CategoryKeywords:     "keywords",
	models.CategoryPublishers:   "acts",
	models.CategoryStatuses:     "statuses",
	models.CategoryTypes:        "types",
	models.CategoryInstitutions: "institutions",
}

var allMetadataCategories = []models.MetadataCategory{
	models.CategoryKeywords,
	models.CategoryPublishers,
	models.CategoryStatuses,
	models.CategoryTypes,
	models.CategoryInstitutions,
}

// Get fetches one category, or all of them when category is CategoryAll. A
// failure fetching one category under "all" degrades to an empty list for
// that category rather than failing the whole call.
func (m *Metadata) Get(ctx context.Context, category models.MetadataCategory) (map[string]any, error) {
	if category == models.CategoryAll {
		results := make(map[string]any, len(allMetadataCategories))
		for _, cat := range allMetadataCategories {
			v, err := m.fetch(ctx, cat)
			if err != nil {
				log.Warn().Str("category", string(cat)).Err(err).Msg("failed to fetch metadata category")
				v = []any{}
			}
			results[string(cat)] = v
		}
		return results, nil
	}

	v, err := m.fetch(ctx, category)
	if err != nil {
		return nil, err
	}
	return map[string]any{string(category): v}, nil
}

func (m *Metadata) fetch(ctx context.Context, category models.MetadataCategory) (any, error) {
	endpoint := metadataEndpoints[category]
	return m.client.GetMetadata(ctx, endpoint)
}
