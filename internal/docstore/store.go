// Package docstore holds loaded act content in memory, bounded by count,
// per-document size, and access-based TTL, with section and substring
// lookup over the loaded Markdown.
package docstore

import (
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/sejmkit/gateway/internal/apierrors"
	"github.com/sejmkit/gateway/internal/content"
)

const (
	DefaultMaxDocuments = 10
	DefaultMaxSizeBytes = 5 * 1024 * 1024
	DefaultTTL          = 2 * time.Hour
)

// LoadedDocument is one act's converted Markdown plus its section index.
type LoadedDocument struct {
	Eli          string
	Markdown     string
	Sections     []content.Section
	LoadedAt     time.Time
	LastAccessed time.Time
	SizeBytes    int
}

// SearchHit is one substring match against a loaded document.
type SearchHit struct {
	SectionID    string
	SectionTitle string
	Context      string
	MatchStart   int
	MatchEnd     int
}

// DocumentInfo is the summary row returned by List.
type DocumentInfo struct {
	Eli          string
	SizeBytes    int
	SectionCount int
	LoadedAt     time.Time
	LastAccessed time.Time
}

// Store is a bounded, mutex-guarded map of eli -> *LoadedDocument.
type Store struct {
	mu           sync.Mutex
	docs         map[string]*LoadedDocument
	maxDocuments int
	maxSizeBytes int
	ttl          time.Duration
}

// New builds a Store. Non-positive parameters fall back to package defaults.
func New(maxDocuments, maxSizeBytes int, ttl time.Duration) *Store {
	if maxDocuments <= 0 {
		maxDocuments = DefaultMaxDocuments
	}
	if maxSizeBytes <= 0 {
		maxSizeBytes = DefaultMaxSizeBytes
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		docs:         make(map[string]*LoadedDocument),
		maxDocuments: maxDocuments,
		maxSizeBytes: maxSizeBytes,
		ttl:          ttl,
	}
}

// Load stores markdown and its section index under eli, truncating to the
// size cap and dropping out-of-bounds sections, and evicting expired or LRU
// entries as needed to respect the document count cap.
func (s *Store) Load(eli, markdown string, sections []content.Section) {
	s.mu.Lock()
	defer s.mu.Unlock()

	size := len(markdown)
	if size > s.maxSizeBytes {
		log.Warn().Str("eli", eli).Int("size", size).Int("max", s.maxSizeBytes).
			Msg("document exceeds max size, truncating")
		markdown = markdown[:s.maxSizeBytes]
		kept := sections[:0:0]
		for _, sec := range sections {
			if sec.StartPos < len(markdown) {
				kept = append(kept, sec)
			}
		}
		sections = kept
	}

	s.evictExpiredLocked()

	if _, exists := s.docs[eli]; !exists && len(s.docs) >= s.maxDocuments {
		s.evictLRULocked()
	}

	now := time.Now()
	s.docs[eli] = &LoadedDocument{
		Eli:          eli,
		Markdown:     markdown,
		Sections:     sections,
		LoadedAt:     now,
		LastAccessed: now,
		SizeBytes:    len(markdown),
	}
	log.Info().Str("eli", eli).Int("size", len(markdown)).Int("sections", len(sections)).
		Msg("loaded document")
}

var artPattern = regexp.MustCompile(`(?i)^art\.?\s*(\d+[a-z]?)`)

// GetSection returns the content of the section matching sectionID, trying
// an exact id match, a title-prefix match, and finally an "Art. N" pattern
// match, in that order. Returns ("", false) when no section matches.
func (s *Store) GetSection(eli, sectionID string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.getDocLocked(eli)
	if err != nil {
		return "", false, err
	}
	doc.LastAccessed = time.Now()

	wantLower := strings.ToLower(sectionID)
	wantSlug := strings.ReplaceAll(wantLower, " ", "_")
	for _, sec := range doc.Sections {
		if strings.ToLower(sec.ID) == wantSlug || strings.HasPrefix(strings.ToLower(sec.Title), wantLower) {
			return sec.Content, true, nil
		}
	}

	if m := artPattern.FindStringSubmatch(sectionID); m != nil {
		artNum := regexp.QuoteMeta(m[1])
		artRe := regexp.MustCompile(`(?i)^art\.?\s*` + artNum)
		for _, sec := range doc.Sections {
			if artRe.MatchString(sec.Title) {
				return sec.Content, true, nil
			}
		}
	}

	return "", false, nil
}

// Search finds every case-insensitive occurrence of query in the loaded
// document, returning contextChars of surrounding text per hit.
func (s *Store) Search(eli, query string, contextChars int) ([]SearchHit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.getDocLocked(eli)
	if err != nil {
		return nil, err
	}
	doc.LastAccessed = time.Now()

	if query == "" {
		return nil, nil
	}
	pattern, err := regexp.Compile("(?i)" + regexp.QuoteMeta(query))
	if err != nil {
		return nil, &apierrors.ValidationError{Message: "nieprawidłowe zapytanie wyszukiwania: " + query}
	}

	var hits []SearchHit
	for _, loc := range pattern.FindAllStringIndex(doc.Markdown, -1) {
		start := loc[0] - contextChars
		if start < 0 {
			start = 0
		}
		end := loc[1] + contextChars
		if end > len(doc.Markdown) {
			end = len(doc.Markdown)
		}

		sectionID, sectionTitle := "unknown", "Unknown section"
		for _, sec := range doc.Sections {
			endPos := sec.EndPos
			if endPos == 0 {
				endPos = len(doc.Markdown)
			}
			if sec.StartPos <= loc[0] && loc[0] < endPos {
				sectionID, sectionTitle = sec.ID, sec.Title
				break
			}
		}

		hits = append(hits, SearchHit{
			SectionID:    sectionID,
			SectionTitle: sectionTitle,
			Context:      doc.Markdown[start:end],
			MatchStart:   loc[0],
			MatchEnd:     loc[1],
		})
	}
	return hits, nil
}

// TOC returns a loaded document's section index.
func (s *Store) TOC(eli string) ([]content.Section, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.getDocLocked(eli)
	if err != nil {
		return nil, err
	}
	doc.LastAccessed = time.Now()
	return doc.Sections, nil
}

// IsLoaded reports whether eli is present and not TTL-expired, evicting it
// if it has expired.
func (s *Store) IsLoaded(eli string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.docs[eli]
	if !ok {
		return false
	}
	if time.Since(doc.LastAccessed) > s.ttl {
		delete(s.docs, eli)
		return false
	}
	return true
}

// List returns a summary row per currently-loaded (non-expired) document.
func (s *Store) List() []DocumentInfo {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.evictExpiredLocked()

	infos := make([]DocumentInfo, 0, len(s.docs))
	for _, doc := range s.docs {
		infos = append(infos, DocumentInfo{
			Eli:          doc.Eli,
			SizeBytes:    doc.SizeBytes,
			SectionCount: len(doc.Sections),
			LoadedAt:     doc.LoadedAt,
			LastAccessed: doc.LastAccessed,
		})
	}
	return infos
}

// Evict manually removes a document regardless of its TTL state.
func (s *Store) Evict(eli string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, eli)
}

func (s *Store) getDocLocked(eli string) (*LoadedDocument, error) {
	doc, ok := s.docs[eli]
	if !ok {
		return nil, &apierrors.DocumentNotLoadedError{Eli: eli}
	}
	if time.Since(doc.LastAccessed) > s.ttl {
		delete(s.docs, eli)
		return nil, &apierrors.DocumentNotLoadedError{Eli: eli}
	}
	return doc, nil
}

func (s *Store) evictExpiredLocked() {
	now := time.Now()
	for k, v := range s.docs {
		if now.Sub(v.LastAccessed) > s.ttl {
			delete(s.docs, k)
		}
	}
}

func (s *Store) evictLRULocked() {
	if len(s.docs) == 0 {
		return
	}
	var lruKey string
	var lruTime time.Time
	first := true
	for k, v := range s.docs {
		if first || v.LastAccessed.Before(lruTime) {
			lruKey, lruTime = k, v.LastAccessed
			first = false
		}
	}
	log.Info().Str("eli", lruKey).Msg("evicting LRU document")
	delete(s.docs, lruKey)
}
