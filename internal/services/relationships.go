package services

import (
	"context"

	"github.com/sejmkit/gateway/internal/models"
	"github.com/sejmkit/gateway/internal/sejmapi"
)

// Relationships implements analyze_act_relationships.
type Relationships struct {
	client *sejmapi.Client
}

func NewRelationships(client *sejmapi.Client) *Relationships {
	return &Relationships{client: client}
}

// Get fetches an act's reference map and, when relationshipType is set,
// narrows it to the single matching category (compared verbatim, in
// Polish, against the upstream keys).
func (r *Relationships) Get(ctx context.Context, eli models.ELI, relationshipType string) (map[string]any, int, error) {
	refs, err := r.client.GetActReferences(ctx, eli.Publisher, eli.Year, eli.Pos)
	if err != nil {
		return nil, 0, err
	}

	if relationshipType != "" {
		filtered := map[string]any{}
		for k, v := range refs {
			if k == relationshipType {
				filtered[k] = v
			}
		}
		return filtered, countEntries(filtered), nil
	}

	return refs, countEntries(refs), nil
}

func countEntries(refs map[string]any) int {
	total := 0
	for _, v := range refs {
		if list, ok := v.([]any); ok {
			total += len(list)
		} else {
			total++
		}
	}
	return total
}
