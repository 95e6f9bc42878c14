package tools

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/sejmkit/gateway/internal/docstore"
	"github.com/sejmkit/gateway/internal/models"
	"github.com/sejmkit/gateway/internal/resultstore"
	"github.com/sejmkit/gateway/internal/services"
	"github.com/sejmkit/gateway/internal/toolerrors"
)

// defaultListCap is the default response size cap for list-producing tools
// (search_legal_acts, browse_acts), per the tool layer's truncation rule.
const defaultListCap = 20

// Tools wires every service and store needed to serve the 13-tool catalog.
// It is the single dependency a transport layer needs to dispatch a
// tool-call by name.
type Tools struct {
	Metadata      *services.Metadata
	Search        *services.Search
	ActDetails    *services.ActDetails
	Changes       *services.Changes
	Relationships *services.Relationships
	Compare       *services.Compare
	DateCalc      *services.DateCalc
	Docs          *docstore.Store
	Results       *resultstore.Store
}

// Call dispatches one tool invocation by name, parsing params loosely and
// returning the JSON-serialized EnrichedResponse text. Unknown tool names
// produce an internal-category error response rather than a panic, since a
// transport layer is expected to validate the name against the fixed
// catalog but this is the last line of defense.
func (t *Tools) Call(ctx context.Context, name string, params map[string]any) string {
	if params == nil {
		params = map[string]any{}
	}

	switch name {
	case "get_system_metadata":
		return t.GetSystemMetadata(ctx, params)
	case "search_legal_acts":
		return t.SearchLegalActs(ctx, params)
	case "browse_acts":
		return t.BrowseActs(ctx, params)
	case "get_act_details":
		return t.GetActDetails(ctx, params)
	case "read_act_content":
		return t.ReadActContent(ctx, params)
	case "search_in_act":
		return t.SearchInAct(ctx, params)
	case "analyze_act_relationships":
		return t.AnalyzeActRelationships(ctx, params)
	case "track_legal_changes":
		return t.TrackLegalChanges(ctx, params)
	case "calculate_legal_date":
		return t.CalculateLegalDate(ctx, params)
	case "filter_results":
		return t.FilterResults(ctx, params)
	case "list_result_sets":
		return t.ListResultSets(ctx, params)
	case "list_loaded_documents":
		return t.ListLoadedDocuments(ctx, params)
	case "compare_acts":
		return t.CompareActs(ctx, params)
	default:
		log.Error().Str("tool", name).Msg("unknown tool name")
		return respondErr[map[string]any]("dispatch", &unknownToolError{name: name})
	}
}

type unknownToolError struct{ name string }

func (e *unknownToolError) Error() string { return "nieznane narzędzie: " + e.name }

// respond marshals data with hints/metadata into the enriched envelope. A
// nil hints/metadata is normalized to an empty (not null) JSON value.
func respond[T any](data T, hints []models.Hint, metadata map[string]any) string {
	if hints == nil {
		hints = []models.Hint{}
	}
	if metadata == nil {
		metadata = map[string]any{}
	}
	resp := models.EnrichedResponse[T]{Data: data, Hints: hints, Metadata: metadata}
	b, err := json.Marshal(resp)
	if err != nil {
		return `{"data":{},"hints":[],"error":"internal serialization error","metadata":{"error_category":"internal"}}`
	}
	return string(b)
}

// respondErr classifies err, logs it, and shapes a zero-valued T into the
// enriched error envelope.
func respondErr[T any](toolName string, err error) string {
	category, _ := toolerrors.Handle(toolName, func() error { return err })
	var zero T
	resp := models.EnrichedResponse[T]{
		Data:     zero,
		Hints:    []models.Hint{},
		Error:    err.Error(),
		Metadata: map[string]any{"error_category": string(category)},
	}
	b, mErr := json.Marshal(resp)
	if mErr != nil {
		return `{"data":{},"hints":[],"error":"internal serialization error","metadata":{"error_category":"internal"}}`
	}
	return string(b)
}
