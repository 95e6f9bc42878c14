package tools

import (
	"context"

	"github.com/sejmkit/gateway/internal/hints"
	"github.com/sejmkit/gateway/internal/models"
)

// GetSystemMetadata serves tool #1: get_system_metadata.
func (t *Tools) GetSystemMetadata(ctx context.Context, params map[string]any) string {
	category := models.MetadataCategory(asString(params["category"]))
	if category == "" {
		category = models.CategoryAll
	}

	data, err := t.Metadata.Get(ctx, category)
	if err != nil {
		return respondErr[models.MetadataOutput]("get_system_metadata", err)
	}

	count := 0
	for _, v := range data {
		if list, ok := v.([]any); ok {
			count += len(list)
		} else {
			count++
		}
	}

	out := models.MetadataOutput{
		Category: string(category),
		Metadata: data,
		Count:    count,
	}
	return respond(out, hints.Metadata(string(category)), nil)
}
