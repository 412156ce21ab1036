// Package models defines core data structures for content documents, blog posts, and search results.
package models

// BlockType discriminates the content block variants a section body may hold.
type BlockType string

const (
	BlockParagraph   BlockType = "paragraph"
	BlockList        BlockType = "list"
	BlockHeading     BlockType = "heading"
	BlockQuote       BlockType = "quote"
	BlockSkillsGrid  BlockType = "skillsGrid"
	BlockContactInfo BlockType = "contactInfo"
	BlockLink        BlockType = "link"
)

// ContentBlock is a tagged union of the block variants. Only the fields
// matching Type are populated; the rest stay zero.
type ContentBlock struct {
	Type       BlockType       `json:"type" yaml:"type"`
	Text       string          `json:"text,omitempty" yaml:"text,omitempty"`
	Items      []string        `json:"items,omitempty" yaml:"items,omitempty"`
	Level      int             `json:"level,omitempty" yaml:"level,omitempty"`
	Categories []SkillCategory `json:"categories,omitempty" yaml:"categories,omitempty"`
	Email      string          `json:"email,omitempty" yaml:"email,omitempty"`
	Phone      string          `json:"phone,omitempty" yaml:"phone,omitempty"`
	Social     []SocialLink    `json:"socialLinks,omitempty" yaml:"social_links,omitempty"`
	URL        string          `json:"url,omitempty" yaml:"url,omitempty"`
	LinkText   string          `json:"linkText,omitempty" yaml:"link_text,omitempty"`
	LinkType   string          `json:"linkType,omitempty" yaml:"link_type,omitempty"`
}

// SkillCategory groups related skills under a name for skills-grid blocks.
type SkillCategory struct {
	Name   string   `json:"name" yaml:"name"`
	Skills []string `json:"skills" yaml:"skills"`
}

// SocialLink is one external profile reference in a contact-info block.
type SocialLink struct {
	Platform string `json:"platform" yaml:"platform"`
	URL      string `json:"url" yaml:"url"`
	Username string `json:"username" yaml:"username"`
}

// SectionImage is a decorative image attached to a section. It contributes
// no searchable text.
type SectionImage struct {
	Src      string `json:"src" yaml:"src"`
	Alt      string `json:"alt" yaml:"alt"`
	Caption  string `json:"caption,omitempty" yaml:"caption,omitempty"`
	Position string `json:"position,omitempty" yaml:"position,omitempty"`
	Link     string `json:"link,omitempty" yaml:"link,omitempty"`
}

// Section is one titled unit of a document. Subsections nest recursively;
// authored content is conventionally shallow (rendering caps at depth 6).
type Section struct {
	Title       string         `json:"title" yaml:"title"`
	Date        string         `json:"date,omitempty" yaml:"date,omitempty"`
	Content     []ContentBlock `json:"content" yaml:"content"`
	Subsections []Section      `json:"subsections,omitempty" yaml:"subsections,omitempty"`
	Image       *SectionImage  `json:"image,omitempty" yaml:"image,omitempty"`
}

// InfoboxField is one label/value row of a document infobox.
type InfoboxField struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// Infobox is the sidebar fact table of a document.
type Infobox struct {
	Image        string         `json:"image,omitempty" yaml:"image,omitempty"`
	ImageCaption string         `json:"imageCaption,omitempty" yaml:"image_caption,omitempty"`
	Fields       []InfoboxField `json:"fields" yaml:"fields"`
}

// ContentDocument is one authored page: title, metadata, and an ordered
// section tree. Immutable after load.
type ContentDocument struct {
	Title          string    `json:"title" yaml:"title"`
	Subtitle       string    `json:"subtitle,omitempty" yaml:"subtitle,omitempty"`
	Description    string    `json:"description" yaml:"description"`
	URL            string    `json:"url" yaml:"url"`
	Disambiguation string    `json:"disambiguation,omitempty" yaml:"disambiguation,omitempty"`
	Infobox        *Infobox  `json:"infobox,omitempty" yaml:"infobox,omitempty"`
	Sections       []Section `json:"sections" yaml:"sections"`
}

// BlogPost is one authored blog entry. SearchText, when present, is the
// hand-maintained plain-text rendition used for indexing.
type BlogPost struct {
	Slug       string    `json:"slug" yaml:"slug"`
	Title      string    `json:"title" yaml:"title"`
	Date       string    `json:"date" yaml:"date"`
	Topics     []string  `json:"topics" yaml:"topics"`
	Sections   []Section `json:"sections,omitempty" yaml:"sections,omitempty"`
	SearchText string    `json:"searchableContent,omitempty" yaml:"search_text,omitempty"`
}
