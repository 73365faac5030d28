// Package review holds the contract-review domain: findings returned by
// the analysis service, risk tiering, clause correlation, and the
// workflow state machine that drives a review session.
package review

// RiskTier classifies a finding's severity score.
type RiskTier int

const (
	TierSafe RiskTier = iota
	TierCaution
	TierHigh
)

// String returns the display name of the tier.
func (t RiskTier) String() string {
	switch t {
	case TierSafe:
		return "Safe"
	case TierCaution:
		return "Caution"
	case TierHigh:
		return "High"
	default:
		return "Unknown"
	}
}

// Finding is a single flagged clause returned by analysis. Scores are
// normalized to [0,1]. The finding set is replaced wholesale on each
// analysis response, never merged.
type Finding struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Score       float64 `json:"score"`
	Reason      string  `json:"reason"`
	Description string  `json:"description"`
	Fix         string  `json:"fix"`
}

// Tier maps a severity score to its risk tier.
// score > 0.8 is High, 0.4 < score <= 0.8 is Caution, the rest is Safe.
// Equal scores always yield equal tiers.
func Tier(score float64) RiskTier {
	switch {
	case score > 0.8:
		return TierHigh
	case score > 0.4:
		return TierCaution
	default:
		return TierSafe
	}
}

// IsToxic reports whether a finding's tier is anything but Safe.
func IsToxic(f Finding) bool {
	return Tier(f.Score) != TierSafe
}

// ToxicCount counts findings whose tier is not Safe.
func ToxicCount(findings []Finding) int {
	n := 0
	for _, f := range findings {
		if IsToxic(f) {
			n++
		}
	}
	return n
}

// FilterMode is a pure view filter over the finding list. It never
// mutates finding data.
type FilterMode int

const (
	FilterAll FilterMode = iota
	FilterToxicOnly
)

// Toggle flips between the two filter modes.
func (m FilterMode) Toggle() FilterMode {
	if m == FilterAll {
		return FilterToxicOnly
	}
	return FilterAll
}

// String returns the display name of the filter mode.
func (m FilterMode) String() string {
	if m == FilterToxicOnly {
		return "Toxic only"
	}
	return "All"
}

// Filter returns the findings visible under the given mode.
func Filter(findings []Finding, m FilterMode) []Finding {
	if m == FilterAll {
		return findings
	}
	out := make([]Finding, 0, len(findings))
	for _, f := range findings {
		if IsToxic(f) {
			out = append(out, f)
		}
	}
	return out
}
