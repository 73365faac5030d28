package styles

// Tip: To find icons use https://github.com/loichyan/nerdfix

var (
	IconDocument = ""     //
	IconKey      = ""     //
	IconShield   = "\U000F0498" // 󰒘
	IconFlag     = ""     //
	IconSafe     = ""     //
	IconCaution  = ""     //
	IconHigh     = ""     //
	IconFilter   = ""     //
	IconSpinner  = ""     //
)

// TierIcon returns the marker for a risk tier name.
func TierIcon(tier string) string {
	switch tier {
	case "High":
		return IconHigh
	case "Caution":
		return IconCaution
	default:
		return IconSafe
	}
}
