package search

import "regexp"

// Highlight wraps every case-insensitive occurrence of each term in text
// with <mark> markers, preserving the original casing. Terms are applied in
// order over the already-marked-up string, so a later term can match inside
// a previous term's markup; overlapping wraps are a known, accepted quirk.
func Highlight(text string, terms []string) string {
	for _, term := range terms {
		re, err := regexp.Compile(`(?i)` + regexp.QuoteMeta(term))
		if err != nil {
			continue
		}
		text = re.ReplaceAllString(text, "<mark>$0</mark>")
	}
	return text
}
