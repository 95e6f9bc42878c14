package tools

import (
	"context"

	"github.com/sejmkit/gateway/internal/models"
)

// ListResultSets serves tool #11: list_result_sets.
func (t *Tools) ListResultSets(ctx context.Context, params map[string]any) string {
	sets := t.Results.List()
	infos := make([]models.ResultSetInfo, 0, len(sets))
	for _, s := range sets {
		infos = append(infos, models.ResultSetInfo{
			ResultSetID:  s.ResultSetID,
			QuerySummary: s.QuerySummary,
			ResultCount:  s.ResultCount,
			TotalCount:   s.TotalCount,
			CreatedAt:    s.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	out := models.ResultSetListOutput{Sets: infos, Count: len(infos)}
	return respond(out, nil, nil)
}
