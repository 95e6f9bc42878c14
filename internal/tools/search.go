package tools

import (
	"context"

	"github.com/sejmkit/gateway/internal/hints"
	"github.com/sejmkit/gateway/internal/models"
)

func parseDetailLevel(v any) models.DetailLevel {
	switch models.DetailLevel(asString(v)) {
	case models.DetailMinimal:
		return models.DetailMinimal
	case models.DetailFull:
		return models.DetailFull
	default:
		return models.DetailStandard
	}
}

func parsePublisher(v any, def models.Publisher) models.Publisher {
	s := asString(v)
	if s == "" {
		return def
	}
	return models.Publisher(s)
}

// SearchLegalActs serves tool #2: search_legal_acts.
func (t *Tools) SearchLegalActs(ctx context.Context, params map[string]any) string {
	req := models.SearchRequest{
		Publisher:   parsePublisher(params["publisher"], models.PublisherDU),
		Year:        asOptInt(params["year"]),
		Keywords:    asStringSlice(params["keywords"]),
		DateFrom:    asString(params["date_from"]),
		DateTo:      asString(params["date_to"]),
		Title:       asString(params["title"]),
		ActType:     asString(params["act_type"]),
		PubDateFrom: asString(params["pub_date_from"]),
		PubDateTo:   asString(params["pub_date_to"]),
		InForce:     asOptBool(params["in_force"]),
		Limit:       asOptInt(params["limit"]),
		Offset:      asOptInt(params["offset"]),
		DetailLevel: parseDetailLevel(params["detail_level"]),
	}

	results, totalCount, querySummary, err := t.Search.Do(ctx, req)
	if err != nil {
		return respondErr[models.SearchOutput]("search_legal_acts", err)
	}

	return t.shapeListResult(results, totalCount, querySummary)
}

// BrowseActs serves tool #3: browse_acts.
func (t *Tools) BrowseActs(ctx context.Context, params map[string]any) string {
	req := models.BrowseRequest{
		Publisher:   parsePublisher(params["publisher"], models.PublisherDU),
		Year:        asInt(params["year"], 0),
		Limit:       asOptInt(params["limit"]),
		DetailLevel: parseDetailLevel(params["detail_level"]),
	}

	results, totalCount, err := t.Search.Browse(ctx, req)
	if err != nil {
		return respondErr[models.SearchOutput]("browse_acts", err)
	}

	querySummary := "browse publisher=" + string(req.Publisher)
	return t.shapeListResult(results, totalCount, querySummary)
}

// shapeListResult applies the default truncation cap, stores a result set
// when non-empty, and attaches hints — shared by search and browse since
// both produce the same SearchOutput shape.
func (t *Tools) shapeListResult(results []models.ActSummaryOutput, totalCount int, querySummary string) string {
	truncated := len(results) > defaultListCap
	if truncated {
		results = results[:defaultListCap]
	}

	var resultSetID string
	if len(results) > 0 {
		domainResults := make([]models.ActSummaryOutput, len(results))
		copy(domainResults, results)
		resultSetID = t.Results.Store(domainResults, querySummary, totalCount)
	}

	var firstEli string
	if len(results) > 0 {
		firstEli = results[0].Eli
	}

	out := models.SearchOutput{
		Results:       results,
		TotalCount:    totalCount,
		QuerySummary:  querySummary,
		ReturnedCount: len(results),
		ResultSetID:   resultSetID,
	}

	h := hints.Search(totalCount, len(results) > 0, firstEli, resultSetID, truncated, defaultListCap)
	return respond(out, h, nil)
}
