package tools

import (
	"context"

	"github.com/sejmkit/gateway/internal/apierrors"
	"github.com/sejmkit/gateway/internal/hints"
	"github.com/sejmkit/gateway/internal/models"
	"github.com/sejmkit/gateway/internal/resultstore"
)

// FilterResults serves tool #10: filter_results.
func (t *Tools) FilterResults(ctx context.Context, params map[string]any) string {
	resultSetID := asString(params["result_set_id"])
	if resultSetID == "" {
		return respondErr[models.FilterOutput]("filter_results", &apierrors.ValidationError{Message: "result_set_id jest wymagany"})
	}

	field := asString(params["field"])
	if field == "" {
		field = "title"
	}

	yearEquals := asOptInt(params["year_equals"])
	opts := resultstore.FilterOptions{
		Pattern:      asString(params["pattern"]),
		Field:        field,
		TypeEquals:   asString(params["type_equals"]),
		StatusEquals: asString(params["status_equals"]),
		DateField:    asString(params["date_field"]),
		DateFrom:     asString(params["date_from"]),
		DateTo:       asString(params["date_to"]),
		SortBy:       asString(params["sort_by"]),
		SortDesc:     asBool(params["sort_desc"], false),
		Limit:        asInt(params["limit"], 0),
	}
	if yearEquals != nil {
		opts.YearEquals = *yearEquals
		opts.HasYear = true
	}

	filtered, originalCount, err := t.Results.Filter(resultSetID, opts)
	if err != nil {
		return respondErr[models.FilterOutput]("filter_results", err)
	}

	var newResultSetID string
	if len(filtered) > 0 {
		newResultSetID = t.Results.Store(filtered, "filter("+resultSetID+")", originalCount)
	}

	out := models.FilterOutput{
		SourceResultSetID: resultSetID,
		ResultSetID:       newResultSetID,
		Results:           filtered,
		OriginalCount:     originalCount,
		FilteredCount:     len(filtered),
		FiltersApplied: map[string]any{
			"pattern":      opts.Pattern,
			"field":        opts.Field,
			"type_equals":  opts.TypeEquals,
			"status_equals": opts.StatusEquals,
			"date_field":   opts.DateField,
			"sort_by":      opts.SortBy,
			"sort_desc":    opts.SortDesc,
		},
	}

	var firstEli string
	if len(filtered) > 0 {
		firstEli = filtered[0].Eli
	}
	h := hints.Search(originalCount, len(filtered) > 0, firstEli, newResultSetID, false, 0)
	return respond(out, h, nil)
}
