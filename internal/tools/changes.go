package tools

import (
	"context"

	"github.com/sejmkit/gateway/internal/hints"
	"github.com/sejmkit/gateway/internal/models"
)

// TrackLegalChanges serves tool #8: track_legal_changes.
func (t *Tools) TrackLegalChanges(ctx context.Context, params map[string]any) string {
	req := models.TrackChangesRequest{
		Publisher: parsePublisher(params["publisher"], models.PublisherDU),
		DateFrom:  asString(params["date_from"]),
		DateTo:    asString(params["date_to"]),
		Keywords:  asStringSlice(params["keywords"]),
	}

	results, totalCount, querySummary, err := t.Changes.Do(ctx, req)
	if err != nil {
		return respondErr[models.ChangesOutput]("track_legal_changes", err)
	}

	truncated := len(results) > defaultListCap
	if truncated {
		results = results[:defaultListCap]
	}

	var resultSetID string
	if len(results) > 0 {
		resultSetID = t.Results.Store(results, querySummary, totalCount)
	}

	var firstEli string
	if len(results) > 0 {
		firstEli = results[0].Eli
	}

	out := models.ChangesOutput{
		DateRange:   req.DateFrom + " - " + req.DateTo,
		Publisher:   string(req.Publisher),
		Keywords:    req.Keywords,
		Changes:     results,
		TotalCount:  totalCount,
		ResultSetID: resultSetID,
	}
	h := hints.Search(totalCount, len(results) > 0, firstEli, resultSetID, truncated, defaultListCap)
	return respond(out, h, nil)
}
