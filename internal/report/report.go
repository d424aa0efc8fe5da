// Package report turns evaluation results into client-facing deliverables:
// an xlsx workbook, an HTML summary and titled document outlines.
package report

import (
	"time"

	"github.com/dcexperts/dcaudit/internal/domain/entity"
)

// AuditReport aggregates everything a generated deliverable draws from.
// Generators treat it as read-only.
type AuditReport struct {
	Client        entity.ClientInfo
	Rooms         []entity.Room
	Result        entity.DualResult
	BOM           []entity.BOMItem
	Questionnaire *entity.QuestionnaireData
	Responses     entity.ResponseMap
	GeneratedAt   time.Time
}
