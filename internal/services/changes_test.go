package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sejmkit/gateway/internal/models"
)

func TestChangesDoUsesPublicationDateWindow(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"count":1,"items":[{"ELI":"DU/2024/1","publisher":"DU","year":2024,"pos":1,"title":"Zmiana","status":"obowiązujący"}]}`))
	}))
	defer srv.Close()
	defer withLocalBaseURL(t, srv)()

	search := NewSearch(newTestClient(srv))
	changes := NewChanges(search)

	results, total, summary, err := changes.Do(context.Background(), models.TrackChangesRequest{
		DateFrom: "2024-01-01",
		DateTo:   "2024-12-31",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Len(t, results, 1)
	assert.Contains(t, summary, "2024-01-01")
	assert.Contains(t, gotQuery, "dateFrom=2024-01-01")
	assert.Contains(t, gotQuery, "dateTo=2024-12-31")
}
