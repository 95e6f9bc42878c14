// Package dispatcher owns the process-lifetime wiring of the cache, circuit
// breaker, HTTP client, stores, services, and tool catalog — a single
// dispatcher-scoped context constructed at process start and torn down at
// stop, borrowed by each tool-call handler. No package-level singletons.
package dispatcher

import (
	"context"
	"time"

	"github.com/sejmkit/gateway/internal/breaker"
	"github.com/sejmkit/gateway/internal/cache"
	"github.com/sejmkit/gateway/internal/config"
	"github.com/sejmkit/gateway/internal/docstore"
	"github.com/sejmkit/gateway/internal/resultstore"
	"github.com/sejmkit/gateway/internal/sejmapi"
	"github.com/sejmkit/gateway/internal/services"
	"github.com/sejmkit/gateway/internal/tools"
)

// Dispatcher holds every wired instance the tool catalog needs to serve a
// call, plus the lifecycle hooks to start and stop it.
type Dispatcher struct {
	cfg     *config.Config
	cache   *cache.Cache
	breaker *breaker.Breaker
	client  *sejmapi.Client
	docs    *docstore.Store
	results *resultstore.Store

	Tools *tools.Tools
}

// New wires every component from cfg, leaves first: Cache and Breaker have
// no dependencies; the HTTP Client depends on both; the stores are
// independent of the client; Services depend on the client and stores;
// Tools depend on the services and stores.
func New(cfg *config.Config) *Dispatcher {
	c := cache.New(cfg.SejmAPI.CacheMaxEntries)
	b := breaker.New(cfg.Breaker.FailureThreshold, cfg.Breaker.RecoveryTimeout, cfg.Breaker.HalfOpenMaxCalls)

	sejmapi.BaseURL = cfg.SejmAPI.BaseURL
	client := sejmapi.New(c, b,
		time.Duration(cfg.SejmAPI.TimeoutSeconds)*time.Second,
		cfg.SejmAPI.MaxConcurrent,
	)

	docs := docstore.New(cfg.DocStore.MaxDocuments, cfg.DocStore.MaxSizeBytes, cfg.DocStore.TTL)
	results := resultstore.New(cfg.ResultStore.MaxEntries, cfg.ResultStore.TTL)

	metadata := services.NewMetadata(client)
	search := services.NewSearch(client)
	actDetails := services.NewActDetails(client, docs)
	changes := services.NewChanges(search)
	relationships := services.NewRelationships(client)
	compare := services.NewCompare(actDetails)
	dateCalc := services.NewDateCalc()

	t := &tools.Tools{
		Metadata:      metadata,
		Search:        search,
		ActDetails:    actDetails,
		Changes:       changes,
		Relationships: relationships,
		Compare:       compare,
		DateCalc:      dateCalc,
		Docs:          docs,
		Results:       results,
	}

	return &Dispatcher{
		cfg:     cfg,
		cache:   c,
		breaker: b,
		client:  client,
		docs:    docs,
		results: results,
		Tools:   t,
	}
}

// Start performs any startup-time side effects. Currently a no-op: every
// component is ready to serve as soon as New returns. Kept as an explicit
// lifecycle hook so a future warmup step (e.g. priming the metadata cache)
// has a home without changing the dispatcher's public shape.
func (d *Dispatcher) Start(ctx context.Context) error {
	return nil
}

// Stop releases dispatcher-owned resources. Currently a no-op: the stores
// and cache hold no file handles or goroutines that outlive a call.
func (d *Dispatcher) Stop(ctx context.Context) error {
	return nil
}

// Call dispatches one tool invocation by name.
func (d *Dispatcher) Call(ctx context.Context, name string, params map[string]any) string {
	return d.Tools.Call(ctx, name, params)
}

