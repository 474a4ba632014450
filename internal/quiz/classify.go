package quiz

// Category is the classification bucket for a final score.
type Category int

const (
	NormalCognition Category = iota
	MildImpairment
	ModerateImpairment
	SevereImpairment
)

// Score thresholds, inclusive lower bounds.
const (
	MildThreshold     = 55
	ModerateThreshold = 80
	SevereThreshold   = 105
)

// MinScore and MaxScore bound the total of a completed session.
const (
	MinScore = QuestionCount * 1
	MaxScore = QuestionCount * 4
)

// Classify maps a score to its category, checking thresholds high to low.
func Classify(score int) Category {
	switch {
	case score >= SevereThreshold:
		return SevereImpairment
	case score >= ModerateThreshold:
		return ModerateImpairment
	case score >= MildThreshold:
		return MildImpairment
	default:
		return NormalCognition
	}
}

// String returns the category identifier.
func (c Category) String() string {
	switch c {
	case NormalCognition:
		return "NormalCognition"
	case MildImpairment:
		return "MildImpairment"
	case ModerateImpairment:
		return "ModerateImpairment"
	case SevereImpairment:
		return "SevereImpairment"
	default:
		return "Unknown"
	}
}

// Label returns the sentence shown to the participant for this category.
func (c Category) Label() string {
	switch c {
	case SevereImpairment:
		return "This indicates you may have severe cognitive impairment."
	case ModerateImpairment:
		return "This indicates you may have moderate cognitive impairment."
	case MildImpairment:
		return "This indicates you may have mild cognitive impairment."
	default:
		return "This indicates you have normal cognition."
	}
}

// InRange reports whether score is reachable by a completed session.
func InRange(score int) bool {
	return score >= MinScore && score <= MaxScore
}
