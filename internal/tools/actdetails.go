package tools

import (
	"context"

	"github.com/sejmkit/gateway/internal/hints"
	"github.com/sejmkit/gateway/internal/models"
)

// GetActDetails serves tool #4: get_act_details.
func (t *Tools) GetActDetails(ctx context.Context, params map[string]any) string {
	eli, err := parseELI(asString(params["eli"]))
	if err != nil {
		return respondErr[models.ActDetailOutput]("get_act_details", err)
	}
	loadContent := asBool(params["load_content"], false)

	wasLoaded := t.Docs.IsLoaded(eli.String())

	detail, err := t.ActDetails.Get(ctx, eli, loadContent)
	if err != nil {
		return respondErr[models.ActDetailOutput]("get_act_details", err)
	}

	justLoaded := loadContent && !wasLoaded && detail.IsLoaded

	out := models.ActDetailOutput{
		Eli:              detail.Eli,
		Publisher:        detail.Publisher,
		Year:             detail.Year,
		Pos:              detail.Pos,
		Title:            detail.Title,
		Status:           detail.Status,
		Type:             detail.Type,
		AnnouncementDate: detail.AnnouncementDate,
		PromulgationDate: detail.PromulgationDate,
		EntryIntoForce:   detail.EntryIntoForce,
		ValidFrom:        detail.ValidFrom,
		RepealDate:       detail.RepealDate,
		ChangeDate:       detail.ChangeDate,
		Keywords:         detail.Keywords,
		References:       detail.References,
		Volume:           detail.Volume,
		HasPDF:           detail.HasPDF,
		HasHTML:          detail.HasHTML,
		TOC:              detail.TOC,
		IsLoaded:         detail.IsLoaded,
	}
	if out.Keywords == nil {
		out.Keywords = []string{}
	}
	if out.TOC == nil {
		out.TOC = []map[string]any{}
	}

	h := hints.ActDetails(eli.String(), detail.IsLoaded, detail.HasHTML, justLoaded)
	return respond(out, h, nil)
}
