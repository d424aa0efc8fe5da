package http

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dcexperts/dcaudit/internal/domain/entity"
	"github.com/dcexperts/dcaudit/internal/email"
	"github.com/dcexperts/dcaudit/internal/evaluation"
	"github.com/dcexperts/dcaudit/internal/questionnaire"
	"github.com/dcexperts/dcaudit/internal/report"
	"github.com/dcexperts/dcaudit/internal/repository"
	"github.com/dcexperts/dcaudit/pkg/database"
	"github.com/dcexperts/dcaudit/pkg/utils"
)

// Handlers contains all HTTP request handlers
type Handlers struct {
	db        *database.DB
	catalog   *questionnaire.Catalog
	evaluator *evaluation.StandardsEvaluator
	excel     *report.ExcelGenerator
	audits    *repository.AuditRepository
	sender    *email.Sender
	logger    Logger
}

// NewHandlers creates a new Handlers instance
func NewHandlers(
	db *database.DB,
	catalog *questionnaire.Catalog,
	evaluator *evaluation.StandardsEvaluator,
	excel *report.ExcelGenerator,
	audits *repository.AuditRepository,
	sender *email.Sender,
	logger Logger,
) *Handlers {
	return &Handlers{
		db:        db,
		catalog:   catalog,
		evaluator: evaluator,
		excel:     excel,
		audits:    audits,
		sender:    sender,
		logger:    logger,
	}
}

// Response represents a standard JSON response
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

// ScoreRequest is the body of POST /questionnaires/:id/score.
type ScoreRequest struct {
	Responses   entity.ResponseMap `json:"responses" binding:"required"`
	ManualScore *int               `json:"manualScore"`
}

// EvaluationRequest is the body of POST /evaluations.
type EvaluationRequest struct {
	Client         entity.ClientInfo     `json:"client"`
	Infrastructure entity.Infrastructure `json:"infrastructure"`
}

// EvaluationResponse pairs the dual result with its stored audit id.
type EvaluationResponse struct {
	AuditID int64             `json:"auditId"`
	Result  entity.DualResult `json:"result"`
}

// RecommendationsRequest is the body of POST /recommendations.
type RecommendationsRequest struct {
	Responses entity.ScoredResponseMap `json:"responses" binding:"required"`
}

// BOMRequest is the body of POST /bom.
type BOMRequest struct {
	Recommendations map[string][]string `json:"recommendations" binding:"required"`
}

// BOMResponse carries the derived line items and the grand total.
type BOMResponse struct {
	Items []entity.BOMItem `json:"items"`
	Total float64          `json:"total"`
}

// ReportRequest is the body of POST /reports.
type ReportRequest struct {
	DocumentType    string                `json:"documentType" binding:"required"`
	Client          entity.ClientInfo     `json:"client"`
	Rooms           []entity.Room         `json:"rooms"`
	Infrastructure  entity.Infrastructure `json:"infrastructure"`
	QuestionnaireID string                `json:"questionnaireId"`
	Responses       entity.ResponseMap    `json:"responses"`
	SendEmail       bool                  `json:"sendEmail"`
}

// ReportResponse describes the generated deliverables.
type ReportResponse struct {
	AuditID    int64                   `json:"auditId"`
	ReportPath string                  `json:"reportPath"`
	HTMLPath   string                  `json:"htmlPath"`
	Outline    report.DocumentTemplate `json:"outline"`
	EmailSent  bool                    `json:"emailSent"`
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(c *gin.Context) {
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   "1.0.0",
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    response,
	})
}

// ListQuestionnaires handles GET /api/v1/questionnaires
func (h *Handlers) ListQuestionnaires(c *gin.Context) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    h.catalog.List(),
	})
}

// GetQuestionnaire handles GET /api/v1/questionnaires/:id
func (h *Handlers) GetQuestionnaire(c *gin.Context) {
	q, err := h.catalog.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, Response{
			Success: false,
			Error:   "questionnaire not found",
		})
		return
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    q,
	})
}

// RoomEquipment handles GET /api/v1/rooms/:type/equipment
func (h *Handlers) RoomEquipment(c *gin.Context) {
	options, err := questionnaire.EquipmentOptions(c.Param("type"))
	if err != nil {
		c.JSON(http.StatusNotFound, Response{
			Success: false,
			Error:   "unknown room type",
		})
		return
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    options,
	})
}

// ScoreQuestionnaire handles POST /api/v1/questionnaires/:id/score
func (h *Handlers) ScoreQuestionnaire(c *gin.Context) {
	id := c.Param("id")

	q, err := h.catalog.Get(id)
	if err != nil {
		c.JSON(http.StatusNotFound, Response{
			Success: false,
			Error:   "questionnaire not found",
		})
		return
	}
	weights, err := h.catalog.Weights(id)
	if err != nil {
		c.JSON(http.StatusNotFound, Response{
			Success: false,
			Error:   "questionnaire not found",
		})
		return
	}

	var req ScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid score request", "questionnaire_id", id, "error", err)
		c.JSON(http.StatusBadRequest, Response{
			Success: false,
			Error:   "invalid request body",
		})
		return
	}

	result := evaluation.Aggregate(q, req.Responses, weights, req.ManualScore)

	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    result,
	})
}

// Evaluate handles POST /api/v1/evaluations
func (h *Handlers) Evaluate(c *gin.Context) {
	var req EvaluationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid evaluation request", "error", err)
		c.JSON(http.StatusBadRequest, Response{
			Success: false,
			Error:   "invalid request body",
		})
		return
	}

	result := h.evaluator.EvaluateDatacenter(req.Infrastructure)

	record := &entity.AuditRecord{
		ClientName: utils.SanitizeString(req.Client.Company),
		Location:   utils.SanitizeString(req.Client.Location),
		TIA942Tier: result.TIA942.Tier,
		TIA942:     result.TIA942.Score,
		UptimeTier: result.Uptime.Tier,
		Uptime:     result.Uptime.Score,
	}
	if err := h.audits.Create(nil, record); err != nil {
		h.logger.Error("Failed to persist audit record", "error", err)
		c.JSON(http.StatusInternalServerError, Response{
			Success: false,
			Error:   "failed to store evaluation",
		})
		return
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
		Data: EvaluationResponse{
			AuditID: record.ID,
			Result:  result,
		},
	})
}

// Recommendations handles POST /api/v1/recommendations
func (h *Handlers) Recommendations(c *gin.Context) {
	var req RecommendationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid recommendations request", "error", err)
		c.JSON(http.StatusBadRequest, Response{
			Success: false,
			Error:   "invalid request body",
		})
		return
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    evaluation.GenerateRecommendations(req.Responses),
	})
}

// GenerateBOM handles POST /api/v1/bom
func (h *Handlers) GenerateBOM(c *gin.Context) {
	var req BOMRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid BOM request", "error", err)
		c.JSON(http.StatusBadRequest, Response{
			Success: false,
			Error:   "invalid request body",
		})
		return
	}

	items := evaluation.GenerateBOM(req.Recommendations)

	c.JSON(http.StatusOK, Response{
		Success: true,
		Data: BOMResponse{
			Items: items,
			Total: evaluation.BOMTotal(items),
		},
	})
}

// GenerateReport handles POST /api/v1/reports
func (h *Handlers) GenerateReport(c *gin.Context) {
	var req ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid report request", "error", err)
		c.JSON(http.StatusBadRequest, Response{
			Success: false,
			Error:   "invalid request body",
		})
		return
	}

	outline, err := report.DocumentOutline(req.DocumentType)
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{
			Success: false,
			Error:   "unknown document type",
		})
		return
	}

	for _, room := range req.Rooms {
		if !questionnaire.ValidRoomType(room.Type) {
			c.JSON(http.StatusBadRequest, Response{
				Success: false,
				Error:   "unknown room type: " + room.Type,
			})
			return
		}
	}

	var q *entity.QuestionnaireData
	if req.QuestionnaireID != "" {
		q, err = h.catalog.Get(req.QuestionnaireID)
		if err != nil {
			c.JSON(http.StatusNotFound, Response{
				Success: false,
				Error:   "questionnaire not found",
			})
			return
		}
	}

	// Client details flow into the workbook, the filename and the audit
	// history, so strip control characters up front.
	req.Client.Company = utils.SanitizeString(req.Client.Company)
	req.Client.Location = utils.SanitizeString(req.Client.Location)

	result := h.evaluator.EvaluateDatacenter(req.Infrastructure)

	combined := make([]entity.Recommendation, 0,
		len(result.TIA942.Recommendations)+len(result.Uptime.Recommendations))
	combined = append(combined, result.TIA942.Recommendations...)
	combined = append(combined, result.Uptime.Recommendations...)

	auditReport := &report.AuditReport{
		Client:        req.Client,
		Rooms:         req.Rooms,
		Result:        result,
		BOM:           evaluation.BOMFromRecommendations(combined),
		Questionnaire: q,
		Responses:     req.Responses,
		GeneratedAt:   time.Now(),
	}

	path, err := h.excel.Generate(auditReport)
	if err != nil {
		h.logger.Error("Report generation failed", "error", err)
		c.JSON(http.StatusInternalServerError, Response{
			Success: false,
			Error:   "report generation failed",
		})
		return
	}

	htmlPath, err := report.SaveHTML(path, auditReport)
	if err != nil {
		h.logger.Error("Report generation failed", "error", err)
		c.JSON(http.StatusInternalServerError, Response{
			Success: false,
			Error:   "report generation failed",
		})
		return
	}

	record := &entity.AuditRecord{
		ClientName: req.Client.Company,
		Location:   req.Client.Location,
		TIA942Tier: result.TIA942.Tier,
		TIA942:     result.TIA942.Score,
		UptimeTier: result.Uptime.Tier,
		Uptime:     result.Uptime.Score,
		CreatedAt:  auditReport.GeneratedAt,
	}

	// The record and its report location commit together so the history
	// never lists an audit whose report path is missing.
	err = h.db.WithTransaction(func(tx *sql.Tx) error {
		if err := h.audits.Create(tx, record); err != nil {
			return err
		}
		return h.audits.UpdateReportPath(tx, record.ID, path)
	})
	if err != nil {
		h.logger.Error("Failed to persist audit record", "error", err)
		c.JSON(http.StatusInternalServerError, Response{
			Success: false,
			Error:   "failed to store evaluation",
		})
		return
	}
	record.ReportPath = path

	// Email delivery is best effort: the report is already on disk and
	// recorded, so a delivery failure does not fail the request.
	emailSent := false
	if req.SendEmail && h.sender != nil {
		if err := h.sender.SendReport(req.Client, *record, path); err != nil {
			h.logger.Error("Report email delivery failed", "error", err)
		} else {
			emailSent = true
		}
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
		Data: ReportResponse{
			AuditID:    record.ID,
			ReportPath: path,
			HTMLPath:   htmlPath,
			Outline:    outline,
			EmailSent:  emailSent,
		},
	})
}

// ListAudits handles GET /api/v1/audits
func (h *Handlers) ListAudits(c *gin.Context) {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, Response{
				Success: false,
				Error:   "invalid limit",
			})
			return
		}
		limit = parsed
	}

	records, err := h.audits.List(limit)
	if err != nil {
		h.logger.Error("Failed to list audits", "error", err)
		c.JSON(http.StatusInternalServerError, Response{
			Success: false,
			Error:   "failed to retrieve audits",
		})
		return
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    records,
	})
}

// GetAudit handles GET /api/v1/audits/:id
func (h *Handlers) GetAudit(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{
			Success: false,
			Error:   "invalid audit ID",
		})
		return
	}

	record, err := h.audits.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrAuditNotFound) {
			c.JSON(http.StatusNotFound, Response{
				Success: false,
				Error:   "audit not found",
			})
			return
		}
		h.logger.Error("Failed to get audit", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, Response{
			Success: false,
			Error:   "failed to retrieve audit",
		})
		return
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    record,
	})
}
