package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sejmkit/gateway/internal/breaker"
	"github.com/sejmkit/gateway/internal/cache"
	"github.com/sejmkit/gateway/internal/models"
	"github.com/sejmkit/gateway/internal/sejmapi"
)

func withLocalBaseURL(t *testing.T, srv *httptest.Server) func() {
	t.Helper()
	orig := sejmapi.BaseURL
	sejmapi.BaseURL = srv.URL
	return func() { sejmapi.BaseURL = orig }
}

func newTestClient(srv *httptest.Server) *sejmapi.Client {
	return sejmapi.New(cache.New(100), breaker.New(10, time.Hour, 3), 5*time.Second, 5)
}

func TestRelationshipsGetAll(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"Akty uchylające":["DU/2020/1"],"Akty zmieniające":["DU/2021/5","DU/2021/6"]}`))
	}))
	defer srv.Close()
	defer withLocalBaseURL(t, srv)()

	rel := NewRelationships(newTestClient(srv))
	refs, count, err := rel.Get(context.Background(), models.ELI{Publisher: "DU", Year: 2022, Pos: 1}, "")
	require.NoError(t, err)
	assert.Len(t, refs, 2)
	assert.Equal(t, 3, count)
}

func TestRelationshipsGetFiltered(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"Akty uchylające":["DU/2020/1"],"Akty zmieniające":["DU/2021/5","DU/2021/6"]}`))
	}))
	defer srv.Close()
	defer withLocalBaseURL(t, srv)()

	rel := NewRelationships(newTestClient(srv))
	refs, count, err := rel.Get(context.Background(), models.ELI{Publisher: "DU", Year: 2022, Pos: 1}, "Akty zmieniające")
	require.NoError(t, err)
	assert.Len(t, refs, 1)
	assert.Equal(t, 2, count)
}

func TestRelationshipsGetFilteredIsCaseSensitive(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"Akty uchylające":["DU/2020/1"],"Akty zmieniające":["DU/2021/5","DU/2021/6"]}`))
	}))
	defer srv.Close()
	defer withLocalBaseURL(t, srv)()

	rel := NewRelationships(newTestClient(srv))
	refs, count, err := rel.Get(context.Background(), models.ELI{Publisher: "DU", Year: 2022, Pos: 1}, "akty zmieniające")
	require.NoError(t, err)
	assert.Len(t, refs, 0)
	assert.Equal(t, 0, count)
}

func TestRelationshipsUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()
	defer withLocalBaseURL(t, srv)()

	rel := NewRelationships(newTestClient(srv))
	_, _, err := rel.Get(context.Background(), models.ELI{Publisher: "DU", Year: 2022, Pos: 1}, "")
	require.Error(t, err)
}
