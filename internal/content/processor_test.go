package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTMLToMarkdownStripsScriptsAndCollapsesBlankLines(t *testing.T) {
	html := `<html><body>
<script>alert(1)</script>
<h1>Tytuł</h1>


<p>Pierwszy akapit.</p>



<p>Drugi akapit.</p>
</body></html>`

	out, err := HTMLToMarkdown(html)
	require.NoError(t, err)
	assert.NotContains(t, out, "alert(1)")
	assert.NotContains(t, out, "\n\n\n")
	assert.Contains(t, out, "Tytuł")
}

func TestPDFToTextReturnsEmptyOnGarbage(t *testing.T) {
	out := PDFToText([]byte("not a pdf"))
	assert.Equal(t, "", out)
}

func TestIndexSectionsATXHeadings(t *testing.T) {
	markdown := "# Rozdział I\n\nWstęp.\n\n## Art. 1.\n\nTreść artykułu pierwszego.\n\n## Art. 2.\n\nTreść artykułu drugiego.\n"

	sections := IndexSections(markdown)
	require.Len(t, sections, 3)

	assert.Equal(t, 1, sections[0].Level)
	assert.Contains(t, sections[0].Title, "Rozdział I")

	assert.Equal(t, 2, sections[1].Level)
	assert.Contains(t, sections[1].Title, "Art. 1.")
	assert.Contains(t, sections[1].Content, "Treść artykułu pierwszego.")

	assert.Equal(t, sections[1].EndPos, sections[2].StartPos)
}

func TestIndexSectionsPolishLegalMarkers(t *testing.T) {
	markdown := "DZIAŁ I\nPrzepisy ogólne\n\nRozdział 1\nZakres\n\nArt. 1. Ustawa określa zasady.\n\nArt. 2. Przepisy stosuje się odpowiednio.\n"

	sections := IndexSections(markdown)
	require.Len(t, sections, 4)
	assert.Equal(t, 1, sections[0].Level)
	assert.Equal(t, 1, sections[1].Level)
	assert.Equal(t, 2, sections[2].Level)
	assert.Equal(t, 2, sections[3].Level)
}

func TestSectionIDTruncatedAndSlugified(t *testing.T) {
	id := sectionID("Art. 123a. Bardzo długi tytuł przepisu który z pewnością przekracza pięćdziesiąt bajtów długości")
	assert.LessOrEqual(t, len(id), 50)
	assert.NotContains(t, id, " ")
}

func TestIndexSectionsEmptyWhenNoHeadings(t *testing.T) {
	assert.Nil(t, IndexSections("zwykły tekst bez nagłówków"))
}
