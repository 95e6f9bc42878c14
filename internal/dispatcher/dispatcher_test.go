package dispatcher

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sejmkit/gateway/internal/config"
	"github.com/sejmkit/gateway/internal/models"
)

func TestDispatcherWiresAndServesACall(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"count":0,"items":[]}`))
	}))
	defer srv.Close()

	cfg, err := config.Load()
	require.NoError(t, err)
	cfg.SejmAPI.BaseURL = srv.URL

	disp := New(cfg)
	require.NoError(t, disp.Start(context.Background()))

	out := disp.Call(context.Background(), "search_legal_acts", map[string]any{"publisher": "DU"})
	var resp models.EnrichedResponse[models.SearchOutput]
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Empty(t, resp.Error)
	assert.Equal(t, 0, resp.Data.TotalCount)

	assert.NoError(t, disp.Stop(context.Background()))
}

func TestDispatcherUnknownToolIsGracefullyHandled(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	disp := New(cfg)
	out := disp.Call(context.Background(), "not_a_real_tool", nil)

	var resp models.EnrichedResponse[map[string]any]
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.NotEmpty(t, resp.Error)
}
