package evaluation

// tierThreshold is one rung of an ordinal classification ladder. Ladders
// are declared highest tier first and evaluated top-down; the first
// threshold met wins, and the floor tier needs no threshold.
type tierThreshold struct {
	tier     string
	minScore float64
}

// TIA-942 classifies on availability percentage.
var tia942Ladder = []tierThreshold{
	{"T4", 99.995},
	{"T3", 99.982},
	{"T2", 99.741},
}

const tia942Floor = "T1"

// Uptime classifies on the composite six-domain score.
var uptimeLadder = []tierThreshold{
	{"TIER_IV", 95},
	{"TIER_III", 85},
	{"TIER_II", 75},
}

const uptimeFloor = "TIER_I"

func classify(score float64, ladder []tierThreshold, floor string) string {
	for _, t := range ladder {
		if score >= t.minScore {
			return t.tier
		}
	}
	return floor
}

// ClassifyTIA942 maps an availability percentage to a TIA-942 tier.
func ClassifyTIA942(availability float64) string {
	return classify(availability, tia942Ladder, tia942Floor)
}

// ClassifyUptime maps a composite score to an Uptime Institute tier.
// The two ladders read different metrics on different scales and are never
// interchangeable.
func ClassifyUptime(score float64) string {
	return classify(score, uptimeLadder, uptimeFloor)
}
