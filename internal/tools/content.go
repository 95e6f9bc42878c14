package tools

import (
	"context"

	"github.com/sejmkit/gateway/internal/apierrors"
	"github.com/sejmkit/gateway/internal/content"
	"github.com/sejmkit/gateway/internal/hints"
	"github.com/sejmkit/gateway/internal/models"
)

func tocToMaps(sections []content.Section) []map[string]any {
	out := make([]map[string]any, 0, len(sections))
	for _, s := range sections {
		out = append(out, map[string]any{
			"id":        s.ID,
			"title":     s.Title,
			"level":     s.Level,
			"start_pos": s.StartPos,
			"end_pos":   s.EndPos,
		})
	}
	return out
}

// ReadActContent serves tool #5: read_act_content. Returns the document's
// TOC when section is absent, otherwise the matched section's content.
func (t *Tools) ReadActContent(ctx context.Context, params map[string]any) string {
	eli, err := parseELI(asString(params["eli"]))
	if err != nil {
		return respondErr[models.ContentOutput]("read_act_content", err)
	}
	section := asString(params["section"])

	if section == "" {
		sections, err := t.Docs.TOC(eli.String())
		if err != nil {
			return respondErr[models.ContentOutput]("read_act_content", err)
		}
		toc := tocToMaps(sections)
		out := models.ContentOutput{Eli: eli.String(), TOC: toc}
		return respond(out, hints.Content(eli.String(), len(toc) > 0), nil)
	}

	text, ok, err := t.Docs.GetSection(eli.String(), section)
	if err != nil {
		return respondErr[models.ContentOutput]("read_act_content", err)
	}
	if !ok {
		return respondErr[models.ContentOutput]("read_act_content", &apierrors.SectionNotFoundError{
			Eli:     eli.String(),
			Section: section,
		})
	}
	out := models.ContentOutput{
		Eli:          eli.String(),
		Content:      text,
		SectionTitle: section,
		TOC:          []map[string]any{},
	}
	return respond(out, hints.Content(eli.String(), false), nil)
}

// SearchInAct serves tool #6: search_in_act.
func (t *Tools) SearchInAct(ctx context.Context, params map[string]any) string {
	eli, err := parseELI(asString(params["eli"]))
	if err != nil {
		return respondErr[models.SearchInActOutput]("search_in_act", err)
	}
	query := asString(params["query"])
	contextChars := asInt(params["context_chars"], 500)

	hitsList, err := t.Docs.Search(eli.String(), query, contextChars)
	if err != nil {
		return respondErr[models.SearchInActOutput]("search_in_act", err)
	}

	matches := make([]map[string]any, 0, len(hitsList))
	for _, h := range hitsList {
		matches = append(matches, map[string]any{
			"section_id":    h.SectionID,
			"section_title": h.SectionTitle,
			"context":       h.Context,
			"match_start":   h.MatchStart,
			"match_end":     h.MatchEnd,
		})
	}

	out := models.SearchInActOutput{
		Eli:          eli.String(),
		Query:        query,
		Matches:      matches,
		TotalMatches: len(matches),
	}
	return respond(out, nil, nil)
}
