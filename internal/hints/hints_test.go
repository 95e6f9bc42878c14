package hints

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sejmkit/gateway/internal/models"
)

func TestSearchHintsOnEmptyResults(t *testing.T) {
	h := Search(0, false, "", "", false, 0)
	var sawAndWarning bool
	for _, hint := range h {
		if hint.Tool == "get_system_metadata" {
			assert.Equal(t, "keywords", hint.Parameters["category"])
		}
		if hint.Message != "" && hint.Tool == "search_legal_acts" {
			sawAndWarning = true
		}
	}
	assert.True(t, sawAndWarning)
}

func TestSearchHintsWithResultsAndResultSet(t *testing.T) {
	h := Search(5, true, "DU/2024/1", "rs_1", false, 0)
	var sawDetails, sawFilter bool
	for _, hint := range h {
		if hint.Tool == "get_act_details" {
			sawDetails = true
			assert.Equal(t, "DU/2024/1", hint.Parameters["eli"])
		}
		if hint.Tool == "filter_results" {
			sawFilter = true
			assert.Equal(t, "rs_1", hint.Parameters["result_set_id"])
		}
	}
	assert.True(t, sawDetails)
	assert.True(t, sawFilter)
}

func TestSearchHintsTruncationMessage(t *testing.T) {
	h := Search(100, true, "", "", true, 20)
	found := false
	for _, hint := range h {
		if hint.Tool == "search_legal_acts" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestActDetailsHintsNotLoaded(t *testing.T) {
	h := ActDetails("DU/2024/1", false, true, false)
	require := assert.New(t)
	require.Equal("get_act_details", h[0].Tool)
	require.Equal(true, h[0].Parameters["load_content"])
}

func TestActDetailsHintsLoaded(t *testing.T) {
	h := ActDetails("DU/2024/1", true, true, true)
	var tools []string
	for _, hint := range h {
		tools = append(tools, hint.Tool)
	}
	assert.Contains(t, tools, "read_act_content")
	assert.Contains(t, tools, "search_in_act")
	assert.Contains(t, tools, "analyze_act_relationships")
}

func TestRelationshipsHintsIncludesChangesWhenAmending(t *testing.T) {
	h := Relationships("DU/2024/1", []string{string(models.RelationAmendingActs)})
	var sawChanges bool
	for _, hint := range h {
		if hint.Tool == "track_legal_changes" {
			sawChanges = true
		}
	}
	assert.True(t, sawChanges)
}

func TestRelationshipsHintsOmitsChangesOtherwise(t *testing.T) {
	h := Relationships("DU/2024/1", []string{string(models.RelationLegalBasis)})
	for _, hint := range h {
		assert.NotEqual(t, "track_legal_changes", hint.Tool)
	}
}

func TestCompareHintsReferenceBothActs(t *testing.T) {
	h := Compare("DU/2024/1", "DU/2024/2")
	assert.Len(t, h, 4)
}
