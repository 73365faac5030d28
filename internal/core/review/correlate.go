package review

import "strings"

// AnnotatedLine pairs a document line with the finding that claimed it,
// if any. Derived state: recomputed from (Document.Lines, findings) and
// never stored.
type AnnotatedLine struct {
	Index     int
	Text      string
	FindingID int // 0 when no finding matched the line
	Tier      RiskTier
}

// Matched reports whether a finding claimed this line.
func (l AnnotatedLine) Matched() bool {
	return l.FindingID != 0
}

// Blank reports whether the line is whitespace-only. Blank lines render
// as spacers and never match a finding.
func (l AnnotatedLine) Blank() bool {
	return strings.TrimSpace(l.Text) == ""
}

// ClauseLabel derives the correlation key from a finding title: the
// substring preceding the first " (" token. Titles like
// "제3조 (계약의 해지)" reduce to "제3조".
func ClauseLabel(title string) string {
	if i := strings.Index(title, " ("); i >= 0 {
		return title[:i]
	}
	return title
}

// Correlate joins document lines back onto analysis findings by literal
// substring match of each finding's clause label. Document text and
// findings come from independent extraction and analysis passes, so the
// label substring is the only join key.
//
// A line is claimed by the first finding (in input order) whose label
// occurs in the line; later findings never steal a claimed line.
// Blank lines never match. Unmatched lines carry TierSafe.
func Correlate(lines []string, findings []Finding) []AnnotatedLine {
	annotated := make([]AnnotatedLine, len(lines))
	for i, text := range lines {
		line := AnnotatedLine{Index: i, Text: text}
		if !line.Blank() {
			for _, f := range findings {
				label := ClauseLabel(f.Title)
				if label == "" {
					continue
				}
				if strings.Contains(text, label) {
					line.FindingID = f.ID
					line.Tier = Tier(f.Score)
					break
				}
			}
		}
		annotated[i] = line
	}
	return annotated
}

// AnchorIndex maps each matched finding id to the index of the first
// line that claimed it. Findings with no matching line are absent; the
// caller treats that as a silent correlation mismatch, not an error.
func AnchorIndex(annotated []AnnotatedLine) map[int]int {
	anchors := make(map[int]int)
	for _, l := range annotated {
		if !l.Matched() {
			continue
		}
		if _, seen := anchors[l.FindingID]; !seen {
			anchors[l.FindingID] = l.Index
		}
	}
	return anchors
}
