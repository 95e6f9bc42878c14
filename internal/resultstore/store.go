// Package resultstore holds stored search/browse result sets with grep-like
// filtering, date-range narrowing, sorting, and limiting, matching the
// semantics of the filter_results tool.
package resultstore

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/sejmkit/gateway/internal/apierrors"
	"github.com/sejmkit/gateway/internal/models"
)

const (
	DefaultMaxSets = 20
	DefaultTTL     = 1 * time.Hour
)

// StoredResultSet is one search/browse result set kept for later filtering.
type StoredResultSet struct {
	ResultSetID  string
	Results      []models.ActSummaryOutput
	QuerySummary string
	TotalCount   int
	CreatedAt    time.Time
	LastAccessed time.Time
}

// SetInfo is the summary row returned by List.
type SetInfo struct {
	ResultSetID  string
	QuerySummary string
	ResultCount  int
	TotalCount   int
	CreatedAt    time.Time
}

// FilterOptions narrows a stored result set. Zero-value fields are no-ops.
type FilterOptions struct {
	Pattern      string
	Field        string
	TypeEquals   string
	StatusEquals string
	YearEquals   int
	HasYear      bool
	DateField    string
	DateFrom     string
	DateTo       string
	SortBy       string
	SortDesc     bool
	Limit        int
}

var searchableFields = map[string]bool{
	"title": true, "eli": true, "status": true, "type": true, "publisher": true,
}
var dateFields = map[string]bool{"promulgation_date": true, "effective_date": true}
var sortableFields = map[string]bool{
	"title": true, "eli": true, "year": true, "pos": true, "status": true,
	"type": true, "promulgation_date": true, "effective_date": true,
}

// Store is a bounded, mutex-guarded map of rs_N -> *StoredResultSet.
type Store struct {
	mu      sync.Mutex
	sets    map[string]*StoredResultSet
	maxSets int
	ttl     time.Duration
	counter int
}

// New builds a Store. Non-positive parameters fall back to package defaults.
func New(maxSets int, ttl time.Duration) *Store {
	if maxSets <= 0 {
		maxSets = DefaultMaxSets
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		sets:    make(map[string]*StoredResultSet),
		maxSets: maxSets,
		ttl:     ttl,
	}
}

// Store saves a result set and returns its generated id ("rs_N").
func (s *Store) Store(results []models.ActSummaryOutput, querySummary string, totalCount int) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.evictExpiredLocked()
	if len(s.sets) >= s.maxSets {
		s.evictLRULocked()
	}

	s.counter++
	id := fmt.Sprintf("rs_%d", s.counter)
	now := time.Now()
	s.sets[id] = &StoredResultSet{
		ResultSetID:  id,
		Results:      results,
		QuerySummary: querySummary,
		TotalCount:   totalCount,
		CreatedAt:    now,
		LastAccessed: now,
	}
	log.Info().Str("result_set_id", id).Int("results", len(results)).
		Str("query", querySummary).Msg("stored result set")
	return id
}

// Get returns a stored result set by id, refreshing its access time, or
// ResultSetNotFoundError if missing or TTL-expired.
func (s *Store) Get(id string) (*StoredResultSet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rs, ok := s.sets[id]
	if !ok {
		return nil, &apierrors.ResultSetNotFoundError{ResultSetID: id}
	}
	if time.Since(rs.LastAccessed) > s.ttl {
		delete(s.sets, id)
		return nil, &apierrors.ResultSetNotFoundError{ResultSetID: id}
	}
	rs.LastAccessed = time.Now()
	return rs, nil
}

// List returns a summary row per currently-stored (non-expired) result set.
func (s *Store) List() []SetInfo {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.evictExpiredLocked()
	infos := make([]SetInfo, 0, len(s.sets))
	for _, rs := range s.sets {
		infos = append(infos, SetInfo{
			ResultSetID:  rs.ResultSetID,
			QuerySummary: rs.QuerySummary,
			ResultCount:  len(rs.Results),
			TotalCount:   rs.TotalCount,
			CreatedAt:    rs.CreatedAt,
		})
	}
	return infos
}

// Filter applies opts to the stored result set id and returns
// (filtered results, original count before filtering).
func (s *Store) Filter(id string, opts FilterOptions) ([]models.ActSummaryOutput, int, error) {
	rs, err := s.Get(id)
	if err != nil {
		return nil, 0, err
	}

	filtered := append([]models.ActSummaryOutput(nil), rs.Results...)
	originalCount := len(filtered)

	if opts.TypeEquals != "" {
		filtered = filterSlice(filtered, func(r models.ActSummaryOutput) bool {
			return r.Type != "" && r.Type == opts.TypeEquals
		})
	}
	if opts.StatusEquals != "" {
		filtered = filterSlice(filtered, func(r models.ActSummaryOutput) bool {
			return r.Status == opts.StatusEquals
		})
	}
	if opts.HasYear {
		filtered = filterSlice(filtered, func(r models.ActSummaryOutput) bool {
			return r.Year == opts.YearEquals
		})
	}

	if opts.Pattern != "" {
		field := opts.Field
		if !searchableFields[field] {
			field = "title"
		}
		compiled, err := regexp.Compile("(?i)" + opts.Pattern)
		if err != nil {
			return nil, 0, &apierrors.ValidationError{Message: fmt.Sprintf("nieprawidłowy wzorzec regex: %v", err)}
		}
		filtered = filterSlice(filtered, func(r models.ActSummaryOutput) bool {
			return compiled.MatchString(fieldValue(r, field))
		})
	}

	if opts.DateField != "" && (opts.DateFrom != "" || opts.DateTo != "") {
		filtered = filterByDate(filtered, opts.DateField, opts.DateFrom, opts.DateTo)
	}

	if opts.SortBy != "" {
		filtered = sortResults(filtered, opts.SortBy, opts.SortDesc)
	}

	if opts.Limit > 0 && opts.Limit < len(filtered) {
		filtered = filtered[:opts.Limit]
	}

	return filtered, originalCount, nil
}

func filterSlice(in []models.ActSummaryOutput, keep func(models.ActSummaryOutput) bool) []models.ActSummaryOutput {
	out := make([]models.ActSummaryOutput, 0, len(in))
	for _, r := range in {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

func fieldValue(r models.ActSummaryOutput, field string) string {
	switch field {
	case "eli":
		return r.Eli
	case "status":
		return r.Status
	case "type":
		return r.Type
	case "publisher":
		return r.Publisher
	default:
		return r.Title
	}
}

func filterByDate(in []models.ActSummaryOutput, dateField, from, to string) []models.ActSummaryOutput {
	if !dateFields[dateField] {
		return in
	}
	out := make([]models.ActSummaryOutput, 0, len(in))
	for _, r := range in {
		v := dateFieldValue(r, dateField)
		if v == "" {
			continue
		}
		if from != "" && v < from {
			continue
		}
		if to != "" && v > to {
			continue
		}
		out = append(out, r)
	}
	return out
}

func dateFieldValue(r models.ActSummaryOutput, field string) string {
	if field == "effective_date" {
		return r.EffectiveDate
	}
	return r.PromulgationDate
}

func sortResults(in []models.ActSummaryOutput, sortBy string, desc bool) []models.ActSummaryOutput {
	if !sortableFields[sortBy] {
		return in
	}
	out := append([]models.ActSummaryOutput(nil), in...)
	sort.SliceStable(out, func(i, j int) bool {
		if desc {
			return sortKeyLess(out[j], out[i], sortBy)
		}
		return sortKeyLess(out[i], out[j], sortBy)
	})
	return out
}

func sortKeyLess(a, b models.ActSummaryOutput, field string) bool {
	switch field {
	case "year":
		return a.Year < b.Year
	case "pos":
		return a.Pos < b.Pos
	case "eli":
		return strings.ToLower(a.Eli) < strings.ToLower(b.Eli)
	case "status":
		return strings.ToLower(a.Status) < strings.ToLower(b.Status)
	case "type":
		return strings.ToLower(a.Type) < strings.ToLower(b.Type)
	case "promulgation_date":
		return a.PromulgationDate < b.PromulgationDate
	case "effective_date":
		return a.EffectiveDate < b.EffectiveDate
	default:
		return strings.ToLower(a.Title) < strings.ToLower(b.Title)
	}
}

func (s *Store) evictExpiredLocked() {
	now := time.Now()
	for k, v := range s.sets {
		if now.Sub(v.LastAccessed) > s.ttl {
			delete(s.sets, k)
		}
	}
}

func (s *Store) evictLRULocked() {
	if len(s.sets) == 0 {
		return
	}
	var lruKey string
	var lruTime time.Time
	first := true
	for k, v := range s.sets {
		if first || v.LastAccessed.Before(lruTime) {
			lruKey, lruTime = k, v.LastAccessed
			first = false
		}
	}
	log.Info().Str("result_set_id", lruKey).Msg("evicting LRU result set")
	delete(s.sets, lruKey)
}
