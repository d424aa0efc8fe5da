package evaluation

import (
	"math"
	"strings"

	"github.com/dcexperts/dcaudit/internal/domain/entity"
)

// CategoryScore is the aggregate of one questionnaire section.
type CategoryScore struct {
	Category string  `json:"category"`
	Answered int     `json:"answered"`
	Positive int     `json:"positive"`
	Score    float64 `json:"score"` // 0-5
	Weight   float64 `json:"weight"`
}

// AggregateResult is the full scoring outcome of a yes/no questionnaire.
type AggregateResult struct {
	Categories     []CategoryScore `json:"categories"`
	AutomaticScore int             `json:"automaticScore"` // 0-5
	ManualScore    *int            `json:"manualScore,omitempty"`
	FinalScore     float64         `json:"finalScore"` // 0-100
}

// Aggregate reduces a yes/no response map into per-category scores and the
// weighted automatic score. The computation is a pure function of the full
// response snapshot, so recomputing after every single answer converges to
// the same value regardless of answer order.
//
// Weight table categories with no answered question are excluded from both
// the numerator and the denominator; a category present in the weight table
// but absent from the questionnaire simply never accumulates answers and
// degrades gracefully. When manualScore is non-nil it overrides the
// automatic score; the final score converts the 0-5 scale to a percentage.
func Aggregate(questionnaire *entity.QuestionnaireData, responses entity.ResponseMap, weights map[string]float64, manualScore *int) AggregateResult {
	result := AggregateResult{ManualScore: manualScore}

	var totalScore, totalWeight float64
	for _, section := range questionnaire.Checkpoints {
		weight, ok := weights[section.Title]
		if !ok {
			continue
		}

		answered, positive := 0, 0
		for key, value := range responses {
			if !strings.HasPrefix(key, section.Title+"-") {
				continue
			}
			answered++
			if value {
				positive++
			}
		}

		cat := CategoryScore{Category: section.Title, Answered: answered, Positive: positive, Weight: weight}
		if answered > 0 {
			cat.Score = float64(positive) / float64(answered) * 5
			totalScore += cat.Score * weight
			totalWeight += weight
		}
		result.Categories = append(result.Categories, cat)
	}

	if totalWeight > 0 {
		result.AutomaticScore = int(math.Round(totalScore / totalWeight))
	}

	final := result.AutomaticScore
	if manualScore != nil {
		final = *manualScore
	}
	result.FinalScore = float64(final) * 20

	return result
}
