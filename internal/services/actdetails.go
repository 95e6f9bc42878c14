package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/sejmkit/gateway/internal/content"
	"github.com/sejmkit/gateway/internal/docstore"
	"github.com/sejmkit/gateway/internal/models"
	"github.com/sejmkit/gateway/internal/sejmapi"
)

// ActDetails fetches a single act's record, best-effort structure, and
// optionally loads its full content into the Document Store.
type ActDetails struct {
	client *sejmapi.Client
	docs   *docstore.Store
}

func NewActDetails(client *sejmapi.Client, docs *docstore.Store) *ActDetails {
	return &ActDetails{client: client, docs: docs}
}

// Get fetches an act's record, attaches its structure (TOC) when available,
// and loads content when loadContent is requested and not already loaded.
// A total failure to load content degrades to is_loaded=false rather than
// failing the call, since content loading is advisory.
func (a *ActDetails) Get(ctx context.Context, eli models.ELI, loadContent bool) (models.ActDetail, error) {
	upstream, err := a.client.GetAct(ctx, eli.Publisher, eli.Year, eli.Pos)
	if err != nil {
		return models.ActDetail{}, err
	}

	detail := models.ActDetail{
		ActSummary:       models.NewActSummary(upstream.UpstreamActSummary),
		AnnouncementDate: upstream.AnnouncementDate,
		EntryIntoForce:   upstream.EntryIntoForce,
		ValidFrom:        upstream.ValidFrom,
		RepealDate:       upstream.RepealDate,
		ChangeDate:       upstream.ChangeDate,
		Keywords:         upstream.Keywords,
		References:       upstream.References,
		Volume:           upstream.Volume,
		HasHTML:          upstream.TextHTML != "",
		HasPDF:           upstream.TextPDF != "",
	}

	if toc, tocErr := a.client.GetActStructure(ctx, eli.Publisher, eli.Year, eli.Pos); tocErr == nil {
		detail.TOC = toUpstreamTOC(toc)
	} else {
		log.Debug().Str("eli", eli.String()).Err(tocErr).Msg("act structure unavailable")
	}

	alreadyLoaded := a.docs.IsLoaded(eli.String())
	if loadContent && !alreadyLoaded {
		a.loadContent(ctx, eli)
	}
	detail.IsLoaded = a.docs.IsLoaded(eli.String())

	return detail, nil
}

// loadContent fetches HTML (preferred) or PDF (fallback), converts it to
// Markdown, indexes its sections, and installs it into the Document Store.
// Any upstream failure here is swallowed; the caller observes is_loaded via
// a.docs.IsLoaded afterward.
func (a *ActDetails) loadContent(ctx context.Context, eli models.ELI) {
	html, err := a.client.GetActHTML(ctx, eli.Publisher, eli.Year, eli.Pos)
	if err == nil && html != "" {
		markdown, convErr := content.HTMLToMarkdown(html)
		if convErr == nil && markdown != "" {
			a.docs.Load(eli.String(), markdown, content.IndexSections(markdown))
			return
		}
		log.Warn().Str("eli", eli.String()).Err(convErr).Msg("html conversion failed, trying pdf")
	} else if err != nil {
		log.Warn().Str("eli", eli.String()).Err(err).Msg("html fetch failed, trying pdf")
	}

	pdfURL := strings.TrimRight(sejmapi.BaseURL, "/") + "/" + actPathFor(eli, "text.pdf")

	pdfBytes, err := a.client.GetActPDF(ctx, eli.Publisher, eli.Year, eli.Pos)
	if err != nil {
		log.Warn().Str("eli", eli.String()).Err(err).Msg("pdf fetch failed, content not loaded")
		return
	}
	text := content.PDFToText(pdfBytes)
	if text == "" {
		log.Warn().Str("eli", eli.String()).Msg("pdf extraction yielded no text, substituting fallback text")
		markdown := fmt.Sprintf("*Content extraction failed. PDF available at: %s*", pdfURL)
		a.docs.Load(eli.String(), markdown, content.IndexSections(markdown))
		return
	}
	a.docs.Load(eli.String(), text, content.IndexSections(text))
}

// actPathFor renders the act's relative upstream path for suffix (e.g.
// "text.pdf"), matching the format sejmapi's internal actPath builds.
func actPathFor(eli models.ELI, suffix string) string {
	return fmt.Sprintf("acts/%s/%d/%d/%s", eli.Publisher, eli.Year, eli.Pos, suffix)
}

func toUpstreamTOC(nodes []models.UpstreamStructureNode) []map[string]any {
	out := make([]map[string]any, 0, len(nodes))
	for _, n := range nodes {
		entry := map[string]any{"id": n.ID}
		if n.Title != "" {
			entry["title"] = n.Title
		}
		if n.Type != "" {
			entry["type"] = n.Type
		}
		if len(n.Children) > 0 {
			entry["children"] = toUpstreamTOC(n.Children)
		}
		out = append(out, entry)
	}
	return out
}
