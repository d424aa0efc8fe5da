// Package evaluation implements the scoring and recommendation engine for
// datacenter compliance audits. Everything in this package is pure
// computation: inputs are passed in, results are returned, no I/O happens
// and no state survives a call.
//
// Missing attributes score zero. An unaudited domain is treated as
// non-compliant rather than unknown; callers never see an error for
// partially-populated input.
package evaluation

import (
	"math"

	"github.com/dcexperts/dcaudit/internal/domain/entity"
)

// Availability baseline and ceiling per the TIA-942 tier table.
const (
	baseAvailability = 99.671
	maxAvailability  = 99.995
)

// PowerScore rates the electrical infrastructure on [0,100].
func PowerScore(p entity.PowerAttributes) float64 {
	return (p.Redundancy*0.4 + p.Maintenance*0.3 + p.Monitoring*0.3) * 100
}

// CoolingScore rates the cooling infrastructure on [0,100].
func CoolingScore(c entity.CoolingAttributes) float64 {
	return (c.Efficiency*0.4 + c.Redundancy*0.3 + c.Maintenance*0.3) * 100
}

// PhysicalScore rates physical security on [0,100].
func PhysicalScore(p entity.PhysicalAttributes) float64 {
	return (p.Security*0.4 + p.Monitoring*0.3 + p.Maintenance*0.3) * 100
}

// ManagementScore rates the management organization on [0,100].
func ManagementScore(m entity.ManagementAttributes) float64 {
	return (m.Policies*0.4 + m.Procedures*0.3 + m.Training*0.3) * 100
}

// OperationsScore rates site operations on [0,100].
func OperationsScore(o entity.OperationsAttributes) float64 {
	return (o.Staffing*0.3 + o.Procedures*0.4 + o.Maintenance*0.3) * 100
}

// BuildingScore rates the building itself on [0,100].
func BuildingScore(b entity.BuildingAttributes) float64 {
	return (b.Location*0.3 + b.Structure*0.4 + b.Protection*0.3) * 100
}

// PUE computes Power Usage Effectiveness from raw consumption figures.
// The IT consumption denominator is floored at 1 kW so that absent or zero
// input yields a finite, obviously-degenerate figure instead of a crash.
// The warning flag is set when the result is below 1.0, which no real
// facility can achieve.
func PUE(p entity.PowerAttributes) (pue float64, warning bool) {
	it := p.ITConsumption
	if it < 1 {
		it = 1
	}
	pue = p.TotalConsumption / it
	return pue, pue < 1
}

// PowerAvailability estimates availability from the power attributes,
// starting at the Tier I baseline and capped at the Tier IV ceiling.
func PowerAvailability(p entity.PowerAttributes) float64 {
	return math.Min(baseAvailability+p.Redundancy*0.1+p.Maintenance*0.05, maxAvailability)
}

// TIA942Availability measures site availability for TIA-942 classification
// as the mean redundancy of the power, cooling and network paths, as a
// percentage.
func TIA942Availability(infra entity.Infrastructure) float64 {
	return (infra.Power.Redundancy + infra.Cooling.Redundancy + infra.Network.Redundancy) / 3 * 100
}
