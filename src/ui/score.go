package ui

// ScoreTier buckets a feedback score for display.
type ScoreTier int

const (
	TierNone ScoreTier = iota
	TierLow
	TierMedium
	TierHigh
)

func (t ScoreTier) String() string {
	switch t {
	case TierLow:
		return "low"
	case TierMedium:
		return "medium"
	case TierHigh:
		return "high"
	default:
		return "none"
	}
}

// TierForScore maps 0 (no submission) to none, 1 to low, 2 to medium and
// every other score, negative ones included, to high.
func TierForScore(score int) ScoreTier {
	switch score {
	case 0:
		return TierNone
	case 1:
		return TierLow
	case 2:
		return TierMedium
	default:
		return TierHigh
	}
}
