package review

import "strings"

// Document is the text under review. RawText is editable during the
// Review step; Lines is recomputed from RawText whenever it changes and
// is the input to correlation.
type Document struct {
	RawText string
	Lines   []string
}

// NewDocument creates a document from extracted text.
func NewDocument(text string) Document {
	var d Document
	d.SetText(text)
	return d
}

// SetText replaces the raw text and recomputes the line split.
func (d *Document) SetText(text string) {
	d.RawText = text
	d.Lines = strings.Split(text, "\n")
}

// Empty reports whether the document holds any text.
func (d Document) Empty() bool {
	return strings.TrimSpace(d.RawText) == ""
}
