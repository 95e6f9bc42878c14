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

func TestMetadataGetSingleCategory(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/keywords", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`["prawo","ustawa"]`))
	}))
	defer srv.Close()
	defer withLocalBaseURL(t, srv)()

	meta := NewMetadata(newTestClient(srv))
	out, err := meta.Get(context.Background(), models.CategoryKeywords)
	require.NoError(t, err)
	assert.Equal(t, []any{"prawo", "ustawa"}, out["keywords"])
}

// TestMetadataGetAllIsolatesFailures reproduces S1: one failing subcategory
// degrades to an empty list rather than failing the whole "all" fan-out.
func TestMetadataGetAllIsolatesFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/keywords":
			w.Write([]byte(`["prawo","ustawa"]`))
		case "/acts":
			w.WriteHeader(http.StatusInternalServerError)
		case "/types":
			w.Write([]byte(`["Ustawa"]`))
		case "/institutions":
			w.Write([]byte(`["Sejm"]`))
		case "/statuses":
			w.Write([]byte(`["obowiązujący"]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()
	defer withLocalBaseURL(t, srv)()

	meta := NewMetadata(newTestClient(srv))
	out, err := meta.Get(context.Background(), models.CategoryAll)
	require.NoError(t, err)
	assert.Equal(t, []any{}, out[string(models.CategoryPublishers)])
	assert.Equal(t, []any{"prawo", "ustawa"}, out[string(models.CategoryKeywords)])
	assert.Equal(t, []any{"Ustawa"}, out[string(models.CategoryTypes)])
	assert.Equal(t, []any{"Sejm"}, out[string(models.CategoryInstitutions)])
}
