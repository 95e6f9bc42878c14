package sejmapi

import (
	"context"
	"fmt"
	"time"

	"github.com/sejmkit/gateway/internal/models"
)

// Cache TTLs for the typed helpers. Services may override per-call via the
// generic GetJSON when a different lifetime is required.
const (
	MetadataCacheTTL = 1 * time.Hour
	SearchCacheTTL   = 5 * time.Minute
	ActCacheTTL      = 15 * time.Minute
)

func actPath(publisher string, year, pos int, suffix string) string {
	p := fmt.Sprintf("acts/%s/%d/%d", publisher, year, pos)
	if suffix != "" {
		p += "/" + suffix
	}
	return p
}

// GetAct fetches a single act's detail record.
func (c *Client) GetAct(ctx context.Context, publisher string, year, pos int) (models.UpstreamActDetail, error) {
	var out models.UpstreamActDetail
	err := c.GetJSON(ctx, actPath(publisher, year, pos, ""), nil, ActCacheTTL, &out)
	return out, err
}

// SearchActs queries the search endpoint with the given upstream query
// parameters.
func (c *Client) SearchActs(ctx context.Context, params map[string]string) (models.UpstreamSearchResponse, error) {
	var out models.UpstreamSearchResponse
	err := c.GetJSON(ctx, "acts/search", params, SearchCacheTTL, &out)
	return out, err
}

// BrowseActs fetches the act list for one publisher/year.
func (c *Client) BrowseActs(ctx context.Context, publisher string, year int) (models.UpstreamBrowseResponse, error) {
	var out models.UpstreamBrowseResponse
	err := c.GetJSON(ctx, fmt.Sprintf("acts/%s/%d", publisher, year), nil, SearchCacheTTL, &out)
	return out, err
}

// GetActStructure fetches the act's table-of-contents tree. May return
// ActNotFoundError when upstream has no structure for this act.
func (c *Client) GetActStructure(ctx context.Context, publisher string, year, pos int) ([]models.UpstreamStructureNode, error) {
	var out []models.UpstreamStructureNode
	err := c.GetJSON(ctx, actPath(publisher, year, pos, "struct"), nil, ActCacheTTL, &out)
	return out, err
}

// GetActReferences fetches the act's relationship map, keyed by category
// name (in Polish, verbatim from upstream).
func (c *Client) GetActReferences(ctx context.Context, publisher string, year, pos int) (map[string]any, error) {
	var out map[string]any
	err := c.GetJSON(ctx, actPath(publisher, year, pos, "references"), nil, ActCacheTTL, &out)
	return out, err
}

// GetActHTML fetches the act's HTML text. Never cached.
func (c *Client) GetActHTML(ctx context.Context, publisher string, year, pos int) (string, error) {
	return c.GetText(ctx, actPath(publisher, year, pos, "text.html"))
}

// GetActPDF fetches the act's PDF bytes. Never cached.
func (c *Client) GetActPDF(ctx context.Context, publisher string, year, pos int) ([]byte, error) {
	return c.GetBytes(ctx, actPath(publisher, year, pos, "text.pdf"))
}

// GetMetadata fetches a flat metadata endpoint (keywords, publishers,
// statuses, types, institutions), returning the raw decoded JSON value.
func (c *Client) GetMetadata(ctx context.Context, endpoint string) (any, error) {
	var out any
	err := c.GetJSON(ctx, endpoint, nil, MetadataCacheTTL, &out)
	return out, err
}
