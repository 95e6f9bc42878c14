package docstore

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sejmkit/gateway/internal/apierrors"
	"github.com/sejmkit/gateway/internal/content"
)

func sampleSections(markdown string) []content.Section {
	return content.IndexSections(markdown)
}

func TestLoadAndIsLoaded(t *testing.T) {
	s := New(10, DefaultMaxSizeBytes, time.Hour)
	md := "# Rozdział I\n\nTreść.\n\n## Art. 1.\n\nZdanie pierwsze.\n"
	s.Load("DU/2024/1", md, sampleSections(md))

	assert.True(t, s.IsLoaded("DU/2024/1"))
	assert.False(t, s.IsLoaded("DU/2024/999"))
}

func TestGetSectionNotLoadedReturnsTypedError(t *testing.T) {
	s := New(10, DefaultMaxSizeBytes, time.Hour)
	_, _, err := s.GetSection("DU/2024/1", "Art. 1")
	require.Error(t, err)
	var notLoaded *apierrors.DocumentNotLoadedError
	assert.True(t, errors.As(err, &notLoaded))
}

func TestGetSectionByArtNumber(t *testing.T) {
	s := New(10, DefaultMaxSizeBytes, time.Hour)
	md := "## Art. 1.\n\nPierwszy przepis.\n\n## Art. 2.\n\nDrugi przepis.\n"
	s.Load("DU/2024/1", md, sampleSections(md))

	content, ok, err := s.GetSection("DU/2024/1", "art 2")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Contains(t, content, "Drugi przepis.")
}

func TestGetSectionUnknownReturnsNotFoundFalse(t *testing.T) {
	s := New(10, DefaultMaxSizeBytes, time.Hour)
	md := "## Art. 1.\n\nPierwszy przepis.\n"
	s.Load("DU/2024/1", md, sampleSections(md))

	_, ok, err := s.GetSection("DU/2024/1", "Art. 99")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSearchFindsCaseInsensitiveMatches(t *testing.T) {
	s := New(10, DefaultMaxSizeBytes, time.Hour)
	md := "## Art. 1.\n\nObowiązek zapłaty podatku.\n\n## Art. 2.\n\nInny przepis.\n"
	s.Load("DU/2024/1", md, sampleSections(md))

	hits, err := s.Search("DU/2024/1", "PODATKU", 20)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "Art. 1.", hits[0].SectionTitle[:7])
}

func TestLoadTruncatesOversizedDocument(t *testing.T) {
	s := New(10, 100, time.Hour)
	md := "## Art. 1.\n\n" + string(make([]byte, 500))
	s.Load("DU/2024/1", md, sampleSections(md))

	toc, err := s.TOC("DU/2024/1")
	require.NoError(t, err)
	for _, sec := range toc {
		assert.Less(t, sec.StartPos, 100)
	}
}

func TestLoadEvictsLRUAtCapacity(t *testing.T) {
	s := New(2, DefaultMaxSizeBytes, time.Hour)
	s.Load("DU/2024/1", "a", nil)
	time.Sleep(2 * time.Millisecond)
	s.Load("DU/2024/2", "b", nil)
	time.Sleep(2 * time.Millisecond)
	s.Load("DU/2024/3", "c", nil)

	assert.False(t, s.IsLoaded("DU/2024/1"))
	assert.True(t, s.IsLoaded("DU/2024/2"))
	assert.True(t, s.IsLoaded("DU/2024/3"))
}

func TestEvictExpiresOnTTL(t *testing.T) {
	s := New(10, DefaultMaxSizeBytes, 5*time.Millisecond)
	s.Load("DU/2024/1", "a", nil)
	assert.True(t, s.IsLoaded("DU/2024/1"))
	time.Sleep(15 * time.Millisecond)
	assert.False(t, s.IsLoaded("DU/2024/1"))
}

func TestManualEvict(t *testing.T) {
	s := New(10, DefaultMaxSizeBytes, time.Hour)
	s.Load("DU/2024/1", "a", nil)
	s.Evict("DU/2024/1")
	assert.False(t, s.IsLoaded("DU/2024/1"))
}

func TestListReturnsSummaries(t *testing.T) {
	s := New(10, DefaultMaxSizeBytes, time.Hour)
	s.Load("DU/2024/1", "## Art. 1.\n\nx\n", sampleSections("## Art. 1.\n\nx\n"))
	infos := s.List()
	require.Len(t, infos, 1)
	assert.Equal(t, "DU/2024/1", infos[0].Eli)
	assert.Equal(t, 1, infos[0].SectionCount)
}
