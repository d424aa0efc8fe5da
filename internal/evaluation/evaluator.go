package evaluation

import "github.com/dcexperts/dcaudit/internal/domain/entity"

// StandardsEvaluator is the single public entry point of the engine: it
// evaluates a site against TIA-942 and Uptime Institute in one pass. The
// two evaluations share nothing but the input; each result is built from
// its own intermediate state.
type StandardsEvaluator struct{}

// NewStandardsEvaluator creates an evaluator. The evaluator is stateless
// and safe for concurrent use.
func NewStandardsEvaluator() *StandardsEvaluator {
	return &StandardsEvaluator{}
}

// EvaluateDatacenter produces both standard evaluations for the given
// infrastructure snapshot. Pure function of its input: identical input
// yields identical output.
func (e *StandardsEvaluator) EvaluateDatacenter(infra entity.Infrastructure) entity.DualResult {
	return entity.DualResult{
		TIA942: e.evaluateTIA942(infra),
		Uptime: e.evaluateUptime(infra),
	}
}

func (e *StandardsEvaluator) evaluateTIA942(infra entity.Infrastructure) entity.EvaluationResult {
	availability := TIA942Availability(infra)
	pue, pueWarning := PUE(infra.Power)
	tier := ClassifyTIA942(availability)

	recommendations := []entity.Recommendation{
		tia942PowerTable.Recommend(PowerScore(infra.Power)),
		tia942CoolingTable.Recommend(CoolingScore(infra.Cooling)),
		tia942SecurityTable.Recommend(PhysicalScore(infra.Physical)),
	}

	return entity.EvaluationResult{
		Standard:        entity.StandardTIA942,
		Score:           availability,
		Tier:            tier,
		Recommendations: recommendations,
		Metrics: entity.Metrics{
			Availability: availability,
			PUE:          pue,
			PUEWarning:   pueWarning,
			Risks:        tia942Risks(infra.Components, tier),
		},
	}
}

func (e *StandardsEvaluator) evaluateUptime(infra entity.Infrastructure) entity.EvaluationResult {
	power := PowerScore(infra.Power)
	cooling := CoolingScore(infra.Cooling)
	physical := PhysicalScore(infra.Physical)
	management := ManagementScore(infra.Management)
	operations := OperationsScore(infra.Operations)
	building := BuildingScore(infra.Building)

	// Composite is the unweighted mean of the six domains; a different
	// aggregation from TIA-942's single availability metric.
	score := (power + cooling + physical + management + operations + building) / 6
	tier := ClassifyUptime(score)

	pue, pueWarning := PUE(infra.Power)

	recommendations := []entity.Recommendation{
		uptimeTopologyTable.Recommend(infra.Topology),
		uptimeOperationsTable.Recommend(operations),
		uptimeSustainabilityTable.Recommend(infra.Sustainability),
	}

	return entity.EvaluationResult{
		Standard:        entity.StandardUptime,
		Score:           score,
		Tier:            tier,
		Recommendations: recommendations,
		Metrics: entity.Metrics{
			Availability: PowerAvailability(infra.Power),
			PUE:          pue,
			PUEWarning:   pueWarning,
			Risks:        uptimeRisks(power, cooling, physical),
		},
	}
}
