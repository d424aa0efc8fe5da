package evaluation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcexperts/dcaudit/internal/domain/entity"
)

func TestCategoryAverages(t *testing.T) {
	responses := entity.ScoredResponseMap{
		"Refroidissement_q1": {Answer: "Non", Score: 1},
		"Refroidissement_q2": {Answer: "Partiel", Score: 3},
		"Sécurité_q1":        {Answer: "Oui", Score: 5},
	}

	averages := CategoryAverages(responses)

	assert.InDelta(t, 2.0, averages["Refroidissement"], 1e-9)
	assert.InDelta(t, 5.0, averages["Sécurité"], 1e-9)
}

func TestGenerateRecommendations(t *testing.T) {
	tests := []struct {
		name      string
		responses entity.ScoredResponseMap
		category  string
		wantItems int
	}{
		{
			name: "critical cooling below 3",
			responses: entity.ScoredResponseMap{
				"Refroidissement_q1": {Score: 1},
				"Refroidissement_q2": {Score: 2},
			},
			category:  "Refroidissement",
			wantItems: 4,
		},
		{
			name: "moderate security between 3 and 4",
			responses: entity.ScoredResponseMap{
				"Sécurité_q1": {Score: 3},
				"Sécurité_q2": {Score: 4},
			},
			category:  "Sécurité",
			wantItems: 3,
		},
		{
			name: "critical power",
			responses: entity.ScoredResponseMap{
				"Alimentation_q1": {Score: 0},
			},
			category:  "Alimentation",
			wantItems: 4,
		},
		{
			name: "moderate infrastructure",
			responses: entity.ScoredResponseMap{
				"Infrastructure_q1": {Score: 3.5},
			},
			category:  "Infrastructure",
			wantItems: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs := GenerateRecommendations(tt.responses)
			require.Contains(t, recs, tt.category)
			assert.Len(t, recs[tt.category], tt.wantItems)
		})
	}
}

func TestGenerateRecommendationsHighScoreFiresNoRule(t *testing.T) {
	responses := entity.ScoredResponseMap{
		"Refroidissement_q1": {Score: 4},
		"Refroidissement_q2": {Score: 5},
		"Sécurité_q1":        {Score: 4.5},
	}

	recs := GenerateRecommendations(responses)
	assert.Empty(t, recs, "categories averaging >= 4 emit nothing")
}

func TestGenerateRecommendationsEmptyInput(t *testing.T) {
	recs := GenerateRecommendations(entity.ScoredResponseMap{})
	assert.Empty(t, recs)
}

func TestGenerateRecommendationsUnknownCategory(t *testing.T) {
	// Categories with no rules in the catalogue simply emit nothing.
	responses := entity.ScoredResponseMap{
		"Réseau_q1": {Score: 1},
	}

	recs := GenerateRecommendations(responses)
	assert.Empty(t, recs)
}

func TestQuestionnaireRuleBoundaries(t *testing.T) {
	// The 0-5 ladder is distinct from the 0-100 attribute ladder: exactly
	// 3 selects the moderate rule, exactly 4 selects none.
	atThree := GenerateRecommendations(entity.ScoredResponseMap{"Refroidissement_q1": {Score: 3}})
	require.Contains(t, atThree, "Refroidissement")
	assert.Len(t, atThree["Refroidissement"], 3)

	atFour := GenerateRecommendations(entity.ScoredResponseMap{"Refroidissement_q1": {Score: 4}})
	assert.NotContains(t, atFour, "Refroidissement")
}
