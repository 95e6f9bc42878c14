package tools

import (
	"context"

	"github.com/sejmkit/gateway/internal/hints"
	"github.com/sejmkit/gateway/internal/models"
)

// AnalyzeActRelationships serves tool #7: analyze_act_relationships.
func (t *Tools) AnalyzeActRelationships(ctx context.Context, params map[string]any) string {
	eli, err := parseELI(asString(params["eli"]))
	if err != nil {
		return respondErr[models.RelationshipsOutput]("analyze_act_relationships", err)
	}
	relationshipType := asString(params["relationship_type"])

	refs, total, err := t.Relationships.Get(ctx, eli, relationshipType)
	if err != nil {
		return respondErr[models.RelationshipsOutput]("analyze_act_relationships", err)
	}

	relTypes := make([]string, 0, len(refs))
	for k := range refs {
		relTypes = append(relTypes, k)
	}

	out := models.RelationshipsOutput{
		Eli:              eli.String(),
		RelationshipType: relationshipType,
		Relationships:    refs,
		TotalCount:       total,
	}
	return respond(out, hints.Relationships(eli.String(), relTypes), nil)
}
