// Package content turns raw upstream HTML/PDF payloads into normalized
// Markdown and a flat section index, without performing any I/O itself.
package content

import (
	"bytes"
	"regexp"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/JohannesKaufmann/html-to-markdown/plugin"
	"github.com/ledongthuc/pdf"
)

// Section is one entry in a document's flat heading index.
type Section struct {
	ID       string
	Title    string
	Level    int // ATX heading: number of '#' (1-6); Rozdział/DZIAŁ: 1; Art.: 2
	StartPos int
	EndPos   int
	Content  string
}

var blankLines = regexp.MustCompile(`\n{3,}`)

// HTMLToMarkdown converts act HTML to Markdown, stripping images/scripts/
// styles and collapsing runs of blank lines.
func HTMLToMarkdown(html string) (string, error) {
	conv := md.NewConverter("", true, &md.Options{
		HeadingStyle: "atx",
	})
	conv.Use(plugin.Strikethrough(""))
	conv.Remove("img", "script", "style")

	out, err := conv.ConvertString(html)
	if err != nil {
		return "", err
	}
	out = blankLines.ReplaceAllString(out, "\n\n")
	return strings.TrimSpace(out), nil
}

// PDFToText extracts page text from a PDF payload. Extraction failures
// produce an empty string rather than an error, matching upstream behavior
// where PDF content is best-effort.
func PDFToText(pdfBytes []byte) string {
	reader, err := pdf.NewReader(bytes.NewReader(pdfBytes), int64(len(pdfBytes)))
	if err != nil {
		return ""
	}

	var parts []string
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil || text == "" {
			continue
		}
		parts = append(parts, text)
	}

	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, "\n\n")
}

// headingPattern matches, in priority order on each line: an ATX heading, an
// "Art. N" article marker, a "Rozdział" chapter marker, or a "DZIAŁ"
// division marker.
var headingPattern = regexp.MustCompile(
	`(?m)^(#{1,6})\s+(.+)$|^(Art\.\s*\d+[a-z]?\.?)(.*)$|^(Rozdział\s+\S+)(.*)$|^(DZIAŁ\s+\S+)(.*)$`,
)

var sectionIDStrip = regexp.MustCompile(`[^\w\s.-]`)

// IndexSections scans Markdown and builds a flat section index from its
// headings and Polish legal-act structural markers.
func IndexSections(markdown string) []Section {
	matches := headingPattern.FindAllStringSubmatchIndex(markdown, -1)
	if len(matches) == 0 {
		return nil
	}

	sections := make([]Section, 0, len(matches))
	for i, m := range matches {
		var level int
		var title string

		switch {
		case m[2] >= 0: // ATX heading: group 1 = hashes, group 2 = text
			level = m[3] - m[2]
			title = strings.TrimSpace(markdown[m[4]:m[5]])
		case m[6] >= 0: // Art. pattern: group 3 + group 4
			level = 2
			title = strings.TrimSpace(sliceOrEmpty(markdown, m[6], m[7]) + sliceOrEmpty(markdown, m[8], m[9]))
		case m[10] >= 0: // Rozdział pattern: group 5 + group 6
			level = 1
			title = strings.TrimSpace(sliceOrEmpty(markdown, m[10], m[11]) + sliceOrEmpty(markdown, m[12], m[13]))
		case m[14] >= 0: // DZIAŁ pattern: group 7 + group 8
			level = 1
			title = strings.TrimSpace(sliceOrEmpty(markdown, m[14], m[15]) + sliceOrEmpty(markdown, m[16], m[17]))
		default:
			continue
		}

		start := m[0]
		end := len(markdown)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}

		sections = append(sections, Section{
			ID:       sectionID(title),
			Title:    title,
			Level:    level,
			StartPos: start,
			EndPos:   end,
			Content:  strings.TrimSpace(markdown[start:end]),
		})
	}

	return sections
}

func sliceOrEmpty(s string, start, end int) string {
	if start < 0 || end < 0 {
		return ""
	}
	return s[start:end]
}

// sectionID derives a stable identifier from a heading title: strip
// characters other than word characters, spaces, '.' and '-', replace
// spaces with underscores, cap at 50 bytes.
func sectionID(title string) string {
	id := sectionIDStrip.ReplaceAllString(title, "")
	id = strings.TrimSpace(id)
	id = strings.ReplaceAll(id, " ", "_")
	if len(id) > 50 {
		id = id[:50]
	}
	return id
}
