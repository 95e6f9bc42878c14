package tools

import (
	"context"

	"github.com/sejmkit/gateway/internal/models"
)

// ListLoadedDocuments serves tool #12: list_loaded_documents.
func (t *Tools) ListLoadedDocuments(ctx context.Context, params map[string]any) string {
	docs := t.Docs.List()
	infos := make([]models.LoadedDocumentInfo, 0, len(docs))
	for _, d := range docs {
		infos = append(infos, models.LoadedDocumentInfo{
			Eli:          d.Eli,
			SizeBytes:    d.SizeBytes,
			SectionCount: d.SectionCount,
			LoadedAt:     d.LoadedAt.Format("2006-01-02T15:04:05Z07:00"),
			LastAccessed: d.LastAccessed.Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	out := models.LoadedDocumentListOutput{Documents: infos, Count: len(infos)}
	return respond(out, nil, nil)
}
