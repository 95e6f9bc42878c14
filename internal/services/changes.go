package services

import (
	"context"
	"fmt"

	"github.com/sejmkit/gateway/internal/models"
)

// Changes implements track_legal_changes. The upstream "/changes/acts"
// endpoint is documented but blocked by a WAF in some deployments, so this
// substitutes the search endpoint with a date window, matching the original
// service's workaround. The tool surface (track_legal_changes) is unchanged.
type Changes struct {
	search *Search
}

func NewChanges(search *Search) *Changes {
	return &Changes{search: search}
}

// Do runs the date-window search and returns (results, total_count,
// query_summary).
func (c *Changes) Do(ctx context.Context, req models.TrackChangesRequest) ([]models.ActSummaryOutput, int, string, error) {
	publisher := req.Publisher
	if publisher == "" {
		publisher = models.PublisherDU
	}

	searchReq := models.SearchRequest{
		Publisher:   publisher,
		Keywords:    req.Keywords,
		PubDateFrom: req.DateFrom,
		PubDateTo:   req.DateTo,
		DetailLevel: models.DetailStandard,
	}

	results, totalCount, _, err := c.search.Do(ctx, searchReq)
	if err != nil {
		return nil, 0, "", err
	}

	summary := fmt.Sprintf("changes for publisher=%s from=%s to=%s", publisher, req.DateFrom, req.DateTo)
	return results, totalCount, summary, nil
}
