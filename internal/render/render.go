// Package render turns content documents into server-rendered HTML pages.
// Authored text carries markdown-style inline links; those go through
// goldmark, everything structural is emitted directly.
package render

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/aneesh6214/folio/internal/models"
	"github.com/yuin/goldmark"
)

// maxSectionDepth caps heading nesting; deeper sections render at this level.
const maxSectionDepth = 6

// Renderer renders content documents to HTML.
type Renderer struct {
	md goldmark.Markdown
}

// New creates a renderer with a default goldmark instance.
func New() *Renderer {
	return &Renderer{md: goldmark.New()}
}

// Document renders doc as a full HTML page.
func (r *Renderer) Document(doc *models.ContentDocument) (string, error) {
	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n<html>\n<head><title>")
	sb.WriteString(html.EscapeString(doc.Title))
	sb.WriteString("</title></head>\n<body>\n")

	sb.WriteString("<h1>" + html.EscapeString(doc.Title) + "</h1>\n")
	if doc.Subtitle != "" {
		sb.WriteString("<p class=\"subtitle\">" + html.EscapeString(doc.Subtitle) + "</p>\n")
	}
	if doc.Disambiguation != "" {
		md, err := r.markdown(doc.Disambiguation)
		if err != nil {
			return "", err
		}
		sb.WriteString("<div class=\"disambiguation\">" + md + "</div>\n")
	}
	if doc.Infobox != nil {
		r.infobox(&sb, doc.Infobox)
	}

	for _, sec := range doc.Sections {
		if err := r.section(&sb, sec, 2); err != nil {
			return "", err
		}
	}

	sb.WriteString("</body>\n</html>\n")
	return sb.String(), nil
}

func (r *Renderer) infobox(sb *strings.Builder, box *models.Infobox) {
	sb.WriteString("<table class=\"infobox\">\n")
	if box.Image != "" {
		sb.WriteString("<tr><td colspan=\"2\"><img src=\"" + html.EscapeString(box.Image) + "\" alt=\"\"></td></tr>\n")
	}
	for _, f := range box.Fields {
		sb.WriteString("<tr><th>" + html.EscapeString(f.Label) + "</th><td>" +
			strings.ReplaceAll(html.EscapeString(f.Value), "\n", "<br>") + "</td></tr>\n")
	}
	sb.WriteString("</table>\n")
}

func (r *Renderer) section(sb *strings.Builder, sec models.Section, level int) error {
	if level > maxSectionDepth {
		level = maxSectionDepth
	}
	if sec.Title != "" {
		fmt.Fprintf(sb, "<h%d>%s</h%d>\n", level, html.EscapeString(sec.Title), level)
	}
	if sec.Date != "" {
		sb.WriteString("<p class=\"date\">" + html.EscapeString(sec.Date) + "</p>\n")
	}
	for _, block := range sec.Content {
		if err := r.block(sb, block); err != nil {
			return err
		}
	}
	if sec.Image != nil {
		sb.WriteString("<figure><img src=\"" + html.EscapeString(sec.Image.Src) +
			"\" alt=\"" + html.EscapeString(sec.Image.Alt) + "\">")
		if sec.Image.Caption != "" {
			sb.WriteString("<figcaption>" + html.EscapeString(sec.Image.Caption) + "</figcaption>")
		}
		sb.WriteString("</figure>\n")
	}
	for _, sub := range sec.Subsections {
		if err := r.section(sb, sub, level+1); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) block(sb *strings.Builder, block models.ContentBlock) error {
	switch block.Type {
	case models.BlockParagraph, models.BlockHeading:
		md, err := r.markdown(block.Text)
		if err != nil {
			return err
		}
		sb.WriteString(md)
	case models.BlockQuote:
		md, err := r.markdown(block.Text)
		if err != nil {
			return err
		}
		sb.WriteString("<blockquote>" + md + "</blockquote>\n")
	case models.BlockList:
		sb.WriteString("<ul>\n")
		for _, item := range block.Items {
			sb.WriteString("<li>" + html.EscapeString(item) + "</li>\n")
		}
		sb.WriteString("</ul>\n")
	case models.BlockLink:
		sb.WriteString("<p><a href=\"" + html.EscapeString(block.URL) + "\">" +
			html.EscapeString(block.LinkText) + "</a></p>\n")
	case models.BlockSkillsGrid:
		for _, cat := range block.Categories {
			sb.WriteString("<h4>" + html.EscapeString(cat.Name) + "</h4>\n<ul>\n")
			for _, skill := range cat.Skills {
				sb.WriteString("<li>" + html.EscapeString(skill) + "</li>\n")
			}
			sb.WriteString("</ul>\n")
		}
	case models.BlockContactInfo:
		sb.WriteString("<dl>\n")
		if block.Email != "" {
			sb.WriteString("<dt>Email</dt><dd><a href=\"mailto:" + html.EscapeString(block.Email) + "\">" +
				html.EscapeString(block.Email) + "</a></dd>\n")
		}
		if block.Phone != "" {
			sb.WriteString("<dt>Phone</dt><dd>" + html.EscapeString(block.Phone) + "</dd>\n")
		}
		for _, link := range block.Social {
			sb.WriteString("<dt>" + html.EscapeString(link.Platform) + "</dt><dd><a href=\"" +
				html.EscapeString(link.URL) + "\">" + html.EscapeString(link.Username) + "</a></dd>\n")
		}
		sb.WriteString("</dl>\n")
	}
	return nil
}

// markdown converts markdown-ish text to HTML. Newlines inside a paragraph
// become separate markdown paragraphs, matching how the authored text uses
// them.
func (r *Renderer) markdown(text string) (string, error) {
	var buf bytes.Buffer
	src := strings.ReplaceAll(text, "\n", "\n\n")
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("markdown render failed: %w", err)
	}
	return buf.String(), nil
}
