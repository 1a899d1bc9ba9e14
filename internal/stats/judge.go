package stats

type Judgment string

const (
	Ideal  Judgment = "ideal"
	Good   Judgment = "good"
	Horrid Judgment = "horrid"
)

type Judgments struct {
	Min, Max, Avg, Std Judgment
}

// Horrid reports whether any of the judgments is horrid.
func (j Judgments) Horrid() bool {
	return j.Min == Horrid || j.Max == Horrid || j.Avg == Horrid || j.Std == Horrid
}

// JudgeDistance judges a distance normalized by N. Recurring at exactly
// the universe size is ideal; more than two passes or less than a tenth of
// one is horrid.
func JudgeDistance(v float64) Judgment {
	switch {
	case v > .9 && v < 1.1:
		return Ideal
	case v > 2 || v < .1:
		return Horrid
	default:
		return Good
	}
}

// JudgeSpread judges the standard deviation relative to the average. A
// near-zero spread means the same sequence over and over.
func JudgeSpread(v float64) Judgment {
	switch {
	case v <= .05:
		return Horrid
	case v > .4:
		return Ideal
	default:
		return Good
	}
}
