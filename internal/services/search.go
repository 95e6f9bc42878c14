package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/sejmkit/gateway/internal/models"
	"github.com/sejmkit/gateway/internal/sejmapi"
)

// Search implements search_legal_acts and browse_acts.
type Search struct {
	client *sejmapi.Client
}

func NewSearch(client *sejmapi.Client) *Search {
	return &Search{client: client}
}

// Do runs a search query and returns (results, total_count, query_summary).
func (s *Search) Do(ctx context.Context, req models.SearchRequest) ([]models.ActSummaryOutput, int, string, error) {
	publisher := req.Publisher
	if publisher == "" {
		publisher = models.PublisherDU
	}

	params := map[string]string{"publisher": string(publisher)}
	summary := []string{fmt.Sprintf("publisher=%s", publisher)}

	if req.Year != nil {
		params["year"] = strconv.Itoa(*req.Year)
		summary = append(summary, fmt.Sprintf("year=%d", *req.Year))
	}
	if len(req.Keywords) > 0 {
		joined := strings.Join(req.Keywords, ",")
		params["keyword"] = joined
		summary = append(summary, "keywords="+joined)
	}
	if req.DateFrom != "" {
		params["dateEffectFrom"] = req.DateFrom
		summary = append(summary, "effective_from="+req.DateFrom)
	}
	if req.DateTo != "" {
		params["dateEffectTo"] = req.DateTo
		summary = append(summary, "effective_to="+req.DateTo)
	}
	if req.Title != "" {
		params["title"] = req.Title
		summary = append(summary, "title="+req.Title)
	}
	if req.ActType != "" {
		params["type"] = req.ActType
		summary = append(summary, "type="+req.ActType)
	}
	if req.PubDateFrom != "" {
		params["dateFrom"] = req.PubDateFrom
	}
	if req.PubDateTo != "" {
		params["dateTo"] = req.PubDateTo
	}
	if req.InForce != nil {
		params["inForce"] = strconv.FormatBool(*req.InForce)
		summary = append(summary, fmt.Sprintf("in_force=%v", *req.InForce))
	}
	if req.Limit != nil {
		params["limit"] = strconv.Itoa(*req.Limit)
	}
	if req.Offset != nil {
		params["offset"] = strconv.Itoa(*req.Offset)
	}

	data, err := s.client.SearchActs(ctx, params)
	if err != nil {
		return nil, 0, "", err
	}

	totalCount := data.Count
	if totalCount == 0 && len(data.Items) > 0 {
		totalCount = len(data.Items)
	}

	detailLevel := req.DetailLevel
	if detailLevel == "" {
		detailLevel = models.DetailStandard
	}
	results := make([]models.ActSummaryOutput, 0, len(data.Items))
	for _, item := range data.Items {
		results = append(results, formatAct(item, detailLevel))
	}

	return results, totalCount, strings.Join(summary, " | "), nil
}

// Browse lists every act of one publisher/year. Returns (results, total_count).
func (s *Search) Browse(ctx context.Context, req models.BrowseRequest) ([]models.ActSummaryOutput, int, error) {
	publisher := req.Publisher
	if publisher == "" {
		publisher = models.PublisherDU
	}

	data, err := s.client.BrowseActs(ctx, string(publisher), req.Year)
	if err != nil {
		return nil, 0, err
	}

	totalCount := data.TotalCount
	if totalCount == 0 && len(data.Items) > 0 {
		totalCount = len(data.Items)
	}

	detailLevel := req.DetailLevel
	if detailLevel == "" {
		detailLevel = models.DetailStandard
	}
	results := make([]models.ActSummaryOutput, 0, len(data.Items))
	for _, item := range data.Items {
		results = append(results, formatAct(item, detailLevel))
	}

	return results, totalCount, nil
}

func formatAct(item models.UpstreamActSummary, detailLevel models.DetailLevel) models.ActSummaryOutput {
	out := models.ActSummaryOutput{
		Eli:       item.ELI,
		Publisher: item.Publisher,
		Year:      item.Year,
		Pos:       item.Pos,
		Title:     item.Title,
		Status:    item.Status,
	}
	if detailLevel == models.DetailStandard || detailLevel == models.DetailFull {
		out.Type = item.Type
		out.PromulgationDate = item.Promulgation
		out.EffectiveDate = item.DateEffect
		out.InForce = item.InForce
	}
	return out
}
