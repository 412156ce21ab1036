// Package extract flattens structured content documents into searchable
// plain text and addressable flat section records.
package extract

import (
	"regexp"
	"strings"

	"github.com/aneesh6214/folio/internal/models"
)

// maxDepth bounds section traversal. Authored content stays well under the
// rendering depth of 6; anything deeper is ignored rather than recursed into.
const maxDepth = 32

var nonSlugRuns = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases the title, collapses every run of characters outside
// [a-z0-9] to a single hyphen, and strips leading/trailing hyphens.
func Slugify(title string) string {
	s := nonSlugRuns.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(s, "-")
}

// blockText returns the plain-text-extractable parts of a block: its text,
// then its list items joined by spaces. Structural blocks (images, skill
// grids, contact info) carry neither and contribute nothing.
func blockText(b models.ContentBlock) string {
	var parts []string
	if b.Text != "" {
		parts = append(parts, b.Text)
	}
	if len(b.Items) > 0 {
		parts = append(parts, strings.Join(b.Items, " "))
	}
	return strings.Join(parts, " ")
}

// sectionText concatenates the extractable text of a section's own blocks,
// not including subsections.
func sectionText(s models.Section) string {
	var sb strings.Builder
	for _, b := range s.Content {
		t := blockText(b)
		if t == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(t)
	}
	return sb.String()
}

// DocumentText flattens a whole document into one space-joined string:
// title, subtitle, description, disambiguation, infobox labels and values,
// then every section title followed by its own text, depth-first with
// parents before children. Missing optional fields contribute nothing.
func DocumentText(doc *models.ContentDocument) string {
	var parts []string
	add := func(s string) {
		if s != "" {
			parts = append(parts, s)
		}
	}

	add(doc.Title)
	add(doc.Subtitle)
	add(doc.Description)
	add(doc.Disambiguation)
	if doc.Infobox != nil {
		for _, f := range doc.Infobox.Fields {
			add(f.Label)
			add(f.Value)
		}
	}

	var walk func(sections []models.Section, depth int)
	walk = func(sections []models.Section, depth int) {
		if depth > maxDepth {
			return
		}
		for _, s := range sections {
			add(s.Title)
			add(sectionText(s))
			walk(s.Subsections, depth+1)
		}
	}
	walk(doc.Sections, 0)

	return strings.Join(parts, " ")
}

// SectionRecord is one flattened section: its slug id, composed full title,
// own extractable text, and the owning document's URL.
type SectionRecord struct {
	ID      string
	Title   string
	Content string
	URL     string
}

// Sections flattens the document's section tree depth-first into flat
// records. Nested titles compose as "parent > child"; the id is the slug of
// the section's own title, not the composed one. A section with an empty
// title still yields a record (empty id) and passes the parent title through
// unchanged to its subsections.
func Sections(doc *models.ContentDocument) []SectionRecord {
	var records []SectionRecord

	var walk func(sections []models.Section, parentTitle string, depth int)
	walk = func(sections []models.Section, parentTitle string, depth int) {
		if depth > maxDepth {
			return
		}
		for _, s := range sections {
			fullTitle := s.Title
			if parentTitle != "" && s.Title != "" {
				fullTitle = parentTitle + " > " + s.Title
			} else if s.Title == "" {
				fullTitle = parentTitle
			}
			records = append(records, SectionRecord{
				ID:      Slugify(s.Title),
				Title:   fullTitle,
				Content: strings.TrimSpace(sectionText(s)),
				URL:     doc.URL,
			})
			walk(s.Subsections, fullTitle, depth+1)
		}
	}
	walk(doc.Sections, "", 0)

	return records
}
