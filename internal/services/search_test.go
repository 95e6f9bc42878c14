package services

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"context"

	"github.com/sejmkit/gateway/internal/models"
)

func TestSearchDoBuildsUpstreamParams(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"count":2,"items":[
			{"ELI":"DU/2024/1","publisher":"DU","year":2024,"pos":1,"title":"Ustawa A","status":"obowiązujący","type":"Ustawa","inForce":"TAK"},
			{"ELI":"DU/2024/2","publisher":"DU","year":2024,"pos":2,"title":"Ustawa B","status":"uchylony"}
		]}`))
	}))
	defer srv.Close()
	defer withLocalBaseURL(t, srv)()

	search := NewSearch(newTestClient(srv))
	year := 2024
	results, total, summary, err := search.Do(context.Background(), models.SearchRequest{
		Year:     &year,
		Keywords: []string{"zdrowie", "prawo"},
		Title:    "Ustawa",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, results, 2)
	assert.Equal(t, "Ustawa", results[0].Type)
	assert.Contains(t, summary, "keywords=zdrowie,prawo")
	assert.Contains(t, gotQuery, "keyword=zdrowie%2Cprawo")
	assert.Contains(t, gotQuery, "year=2024")
	assert.Contains(t, gotQuery, "publisher=DU")
}

func TestSearchDoMinimalDetailLevelOmitsExtraFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"count":1,"items":[{"ELI":"DU/2024/1","publisher":"DU","year":2024,"pos":1,"title":"Ustawa A","status":"obowiązujący","type":"Ustawa"}]}`))
	}))
	defer srv.Close()
	defer withLocalBaseURL(t, srv)()

	search := NewSearch(newTestClient(srv))
	results, _, _, err := search.Do(context.Background(), models.SearchRequest{DetailLevel: models.DetailMinimal})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Empty(t, results[0].Type)
	assert.Equal(t, "obowiązujący", results[0].Status)
}

func TestSearchDoEmptyResultsYieldZeroTotal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"count":0,"items":[]}`))
	}))
	defer srv.Close()
	defer withLocalBaseURL(t, srv)()

	search := NewSearch(newTestClient(srv))
	results, total, _, err := search.Do(context.Background(), models.SearchRequest{Keywords: []string{"xxx"}})
	require.NoError(t, err)
	assert.Equal(t, 0, total)
	assert.Empty(t, results)
}

func TestBrowseListsPublisherYear(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/acts/DU/2024", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"totalCount":50,"items":[{"ELI":"DU/2024/1","publisher":"DU","year":2024,"pos":1,"title":"A","status":"obowiązujący"}]}`))
	}))
	defer srv.Close()
	defer withLocalBaseURL(t, srv)()

	search := NewSearch(newTestClient(srv))
	results, total, err := search.Browse(context.Background(), models.BrowseRequest{Publisher: "DU", Year: 2024})
	require.NoError(t, err)
	assert.Equal(t, 50, total)
	assert.Len(t, results, 1)
}
