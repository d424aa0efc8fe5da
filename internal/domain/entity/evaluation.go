package entity

// Standard identifies which classification ladder a result belongs to.
type Standard string

const (
	StandardTIA942 Standard = "TIA-942"
	StandardUptime Standard = "UPTIME"
)

// Priority is the urgency of a recommendation, P1 being the most urgent.
type Priority string

const (
	PriorityP1 Priority = "P1"
	PriorityP2 Priority = "P2"
	PriorityP3 Priority = "P3"
)

// PowerAttributes describes the electrical infrastructure of the site.
// Normalized fields are in [0,1]; consumption figures are raw kW.
type PowerAttributes struct {
	Redundancy       float64 `json:"redundancy"`
	Maintenance      float64 `json:"maintenance"`
	Monitoring       float64 `json:"monitoring"`
	TotalConsumption float64 `json:"totalConsumption"`
	ITConsumption    float64 `json:"itConsumption"`
}

// CoolingAttributes describes the cooling infrastructure.
type CoolingAttributes struct {
	Efficiency  float64 `json:"efficiency"`
	Redundancy  float64 `json:"redundancy"`
	Maintenance float64 `json:"maintenance"`
}

// PhysicalAttributes describes physical security of the site.
type PhysicalAttributes struct {
	Security    float64 `json:"security"`
	Monitoring  float64 `json:"monitoring"`
	Maintenance float64 `json:"maintenance"`
}

// ManagementAttributes describes the management organization.
type ManagementAttributes struct {
	Policies   float64 `json:"policies"`
	Procedures float64 `json:"procedures"`
	Training   float64 `json:"training"`
}

// OperationsAttributes describes site operations.
type OperationsAttributes struct {
	Staffing    float64 `json:"staffing"`
	Procedures  float64 `json:"procedures"`
	Maintenance float64 `json:"maintenance"`
}

// BuildingAttributes describes the building itself.
type BuildingAttributes struct {
	Location   float64 `json:"location"`
	Structure  float64 `json:"structure"`
	Protection float64 `json:"protection"`
}

// NetworkAttributes describes the network infrastructure. Only redundancy
// participates in the TIA-942 availability measure.
type NetworkAttributes struct {
	Redundancy float64 `json:"redundancy"`
}

// ComponentCondition records the observed condition of one infrastructure
// component for risk analysis. Age and incidents are clamped to [0,5] during
// scoring; maintenance is on the 0-5 scale.
type ComponentCondition struct {
	Age         float64 `json:"age"`
	Maintenance float64 `json:"maintenance"`
	Incidents   float64 `json:"incidents"`
}

// Infrastructure is the attribute-based evaluator input. All fields are
// optional; a missing domain scores zero (unaudited means non-compliant).
// Topology and Sustainability have no attribute breakdown and carry an
// assessed score in [0,100] directly.
type Infrastructure struct {
	Power          PowerAttributes               `json:"power"`
	Cooling        CoolingAttributes             `json:"cooling"`
	Physical       PhysicalAttributes            `json:"physical"`
	Management     ManagementAttributes          `json:"management"`
	Operations     OperationsAttributes          `json:"operations"`
	Building       BuildingAttributes            `json:"building"`
	Network        NetworkAttributes             `json:"network"`
	Topology       float64                       `json:"topologyScore"`
	Sustainability float64                       `json:"sustainabilityScore"`
	Components     map[string]ComponentCondition `json:"components"`
}

// Recommendation is one prioritized remediation bundle for a category.
type Recommendation struct {
	Category      string   `json:"category"`
	Priority      Priority `json:"priority"`
	Items         []string `json:"items"`
	Impact        string   `json:"impact"`
	EstimatedCost string   `json:"estimatedCost"`
	Timeline      string   `json:"timeline"`
}

// Risk is one component-level risk finding.
type Risk struct {
	Component  string  `json:"component"`
	Level      float64 `json:"level"`
	Mitigation string  `json:"mitigation"`
}

// Metrics carries the measured performance indicators of an evaluation.
// PUEWarning is set when the raw consumption figures produced a PUE below
// 1.0, which is physically impossible and indicates bad input.
type Metrics struct {
	Availability float64 `json:"availability"`
	PUE          float64 `json:"pue"`
	PUEWarning   bool    `json:"pueWarning,omitempty"`
	Risks        []Risk  `json:"risks"`
}

// EvaluationResult is the outcome of evaluating a site against one standard.
// Results are created fresh per evaluation and are never persisted as-is.
type EvaluationResult struct {
	Standard        Standard         `json:"standard"`
	Score           float64          `json:"score"`
	Tier            string           `json:"tier"`
	Recommendations []Recommendation `json:"recommendations"`
	Metrics         Metrics          `json:"metrics"`
}

// DualResult pairs the two independent standard evaluations. The scales are
// intentionally non-comparable and must never be merged.
type DualResult struct {
	TIA942 EvaluationResult `json:"tia942"`
	Uptime EvaluationResult `json:"uptime"`
}

// BOMItem is one derived equipment line item. TotalPrice is always
// Quantity times UnitPrice.
type BOMItem struct {
	Category   string  `json:"category"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	Specs      string  `json:"specs"`
	UnitPrice  float64 `json:"unitPrice"`
	TotalPrice float64 `json:"totalPrice"`
	Supplier   string  `json:"supplier,omitempty"`
	LeadTime   string  `json:"leadTime,omitempty"`
}
