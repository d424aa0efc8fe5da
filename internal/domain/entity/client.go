package entity

import "time"

// ClientInfo identifies the audited client on reports.
type ClientInfo struct {
	Company        string `json:"company"`
	Representative string `json:"representative"`
	Location       string `json:"location"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	ProjectName    string `json:"projectName"`
}

// RoomEquipment is one equipment entry surveyed in a room.
type RoomEquipment struct {
	Name         string `json:"name"`
	Quantity     int    `json:"quantity"`
	Manufacturer string `json:"manufacturer"`
}

// Room is one surveyed datacenter room.
type Room struct {
	Name          string          `json:"name"`
	Type          string          `json:"type"`
	Area          float64         `json:"area"`
	PowerCapacity float64         `json:"powerCapacity"`
	Equipment     []RoomEquipment `json:"equipment"`
}

// AuditRecord is the persisted summary of one completed evaluation run.
// Full EvaluationResult objects are not stored; only the headline figures
// and the generated report location survive the request.
type AuditRecord struct {
	ID         int64     `json:"id"`
	ClientName string    `json:"client_name"`
	Location   string    `json:"location"`
	TIA942Tier string    `json:"tia942_tier"`
	TIA942     float64   `json:"tia942_score"`
	UptimeTier string    `json:"uptime_tier"`
	Uptime     float64   `json:"uptime_score"`
	ReportPath string    `json:"report_path,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
