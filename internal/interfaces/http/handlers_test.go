package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dcexperts/dcaudit/internal/evaluation"
	"github.com/dcexperts/dcaudit/internal/questionnaire"
	"github.com/dcexperts/dcaudit/internal/report"
	"github.com/dcexperts/dcaudit/internal/repository"
	"github.com/dcexperts/dcaudit/pkg/database"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	logger := zap.NewNop()

	db, err := database.New(database.Config{
		Path:         filepath.Join(t.TempDir(), "test.db"),
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	}, logger)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	migrator := database.NewMigrator(db, logger)
	require.NoError(t, migrator.RunMigrations("../../../migrations"))

	return NewServer(
		DefaultServerConfig(),
		db,
		questionnaire.NewCatalog(),
		evaluation.NewStandardsEvaluator(),
		report.NewExcelGenerator(t.TempDir(), logger),
		repository.NewAuditRepository(db.DB, logger),
		nil,
		NewZapLogger(logger),
	)
}

func doJSON(t *testing.T, server *Server, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	server.Router().ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) Response {
	t.Helper()

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHealthCheck(t *testing.T) {
	server := newTestServer(t)

	w := doJSON(t, server, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decodeResponse(t, w).Success)
}

func TestListQuestionnaires(t *testing.T) {
	server := newTestServer(t)

	w := doJSON(t, server, http.MethodGet, "/api/v1/questionnaires", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeResponse(t, w)
	data, ok := resp.Data.([]interface{})
	require.True(t, ok)
	assert.Len(t, data, 2)
}

func TestGetQuestionnaireNotFound(t *testing.T) {
	server := newTestServer(t)

	w := doJSON(t, server, http.MethodGet, "/api/v1/questionnaires/unknown", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, decodeResponse(t, w).Success)
}

func TestScoreQuestionnaire(t *testing.T) {
	server := newTestServer(t)

	responses := map[string]bool{}
	catalog := questionnaire.NewCatalog()
	q, err := catalog.Get("environmental-maintenance")
	require.NoError(t, err)
	for _, section := range q.Checkpoints {
		for i := range section.Items {
			responses[fmt.Sprintf("%s-%d", section.Title, i)] = true
		}
	}

	w := doJSON(t, server, http.MethodPost, "/api/v1/questionnaires/environmental-maintenance/score",
		map[string]interface{}{"responses": responses})
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeResponse(t, w)
	result, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.EqualValues(t, 5, result["automaticScore"])
	assert.EqualValues(t, 100, result["finalScore"])
}

func TestScoreQuestionnaireManualOverride(t *testing.T) {
	server := newTestServer(t)

	w := doJSON(t, server, http.MethodPost, "/api/v1/questionnaires/environmental-maintenance/score",
		map[string]interface{}{
			"responses":   map[string]bool{"Systèmes de Refroidissement-0": true},
			"manualScore": 2,
		})
	require.Equal(t, http.StatusOK, w.Code)

	result := decodeResponse(t, w).Data.(map[string]interface{})
	assert.EqualValues(t, 40, result["finalScore"])
}

func TestScoreQuestionnaireUnknownID(t *testing.T) {
	server := newTestServer(t)

	w := doJSON(t, server, http.MethodPost, "/api/v1/questionnaires/unknown/score",
		map[string]interface{}{"responses": map[string]bool{}})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestScoreQuestionnaireBadBody(t *testing.T) {
	server := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost,
		"/api/v1/questionnaires/environmental-maintenance/score",
		bytes.NewReader([]byte("not json")))
	w := httptest.NewRecorder()
	server.Router().ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEvaluatePersistsAudit(t *testing.T) {
	server := newTestServer(t)

	body := map[string]interface{}{
		"client": map[string]interface{}{"company": "ACME", "location": "Dakar"},
		"infrastructure": map[string]interface{}{
			"power": map[string]interface{}{"redundancy": 1, "maintenance": 1, "monitoring": 1},
		},
	}

	w := doJSON(t, server, http.MethodPost, "/api/v1/evaluations", body)
	require.Equal(t, http.StatusOK, w.Code)

	data := decodeResponse(t, w).Data.(map[string]interface{})
	auditID := int64(data["auditId"].(float64))
	assert.Positive(t, auditID)

	// The stored record is retrievable through the audit history API.
	w = doJSON(t, server, http.MethodGet, fmt.Sprintf("/api/v1/audits/%d", auditID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	record := decodeResponse(t, w).Data.(map[string]interface{})
	assert.Equal(t, "ACME", record["client_name"])
}

func TestRecommendationsEndpoint(t *testing.T) {
	server := newTestServer(t)

	body := map[string]interface{}{
		"responses": map[string]interface{}{
			"Refroidissement_q1": map[string]interface{}{"answer": "Non", "score": 1},
		},
	}

	w := doJSON(t, server, http.MethodPost, "/api/v1/recommendations", body)
	require.Equal(t, http.StatusOK, w.Code)

	data := decodeResponse(t, w).Data.(map[string]interface{})
	assert.Contains(t, data, "Refroidissement")
}

func TestBOMEndpoint(t *testing.T) {
	server := newTestServer(t)

	body := map[string]interface{}{
		"recommendations": map[string][]string{
			"Alimentation": {"Installer un système UPS redondant"},
		},
	}

	w := doJSON(t, server, http.MethodPost, "/api/v1/bom", body)
	require.Equal(t, http.StatusOK, w.Code)

	data := decodeResponse(t, w).Data.(map[string]interface{})
	items := data["items"].([]interface{})
	require.Len(t, items, 1)
	assert.EqualValues(t, 24000, data["total"])
}

func TestGenerateReportEndpoint(t *testing.T) {
	server := newTestServer(t)

	body := map[string]interface{}{
		"documentType": "rapportAudit",
		"client":       map[string]interface{}{"company": "ACME", "location": "Dakar"},
		"rooms": []map[string]interface{}{
			{"name": "DC-01", "type": "Salle Serveur", "area": 100, "powerCapacity": 200},
		},
		"infrastructure": map[string]interface{}{
			"power": map[string]interface{}{"redundancy": 0.5, "maintenance": 0.5, "monitoring": 0.5},
		},
	}

	w := doJSON(t, server, http.MethodPost, "/api/v1/reports", body)
	require.Equal(t, http.StatusOK, w.Code)

	data := decodeResponse(t, w).Data.(map[string]interface{})
	assert.NotEmpty(t, data["reportPath"])
	assert.NotEmpty(t, data["htmlPath"])
	assert.False(t, data["emailSent"].(bool), "no sender configured")

	outline := data["outline"].(map[string]interface{})
	assert.Equal(t, "rapportAudit", outline["type"])
}

func TestGenerateReportRecordsReportPath(t *testing.T) {
	server := newTestServer(t)

	body := map[string]interface{}{
		"documentType":   "rapportAudit",
		"client":         map[string]interface{}{"company": "ACME", "location": "Dakar"},
		"infrastructure": map[string]interface{}{},
	}

	w := doJSON(t, server, http.MethodPost, "/api/v1/reports", body)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeResponse(t, w).Data.(map[string]interface{})
	auditID := int64(data["auditId"].(float64))

	// The stored record carries the workbook location, committed in the
	// same transaction as the record itself.
	w = doJSON(t, server, http.MethodGet, fmt.Sprintf("/api/v1/audits/%d", auditID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	record := decodeResponse(t, w).Data.(map[string]interface{})
	assert.Equal(t, data["reportPath"], record["report_path"])
	assert.NotEmpty(t, record["report_path"])
}

func TestEvaluateStripsControlCharacters(t *testing.T) {
	server := newTestServer(t)

	body := map[string]interface{}{
		"client":         map[string]interface{}{"company": "ACME\n\tTélécom", "location": "Dakar\x7f"},
		"infrastructure": map[string]interface{}{},
	}

	w := doJSON(t, server, http.MethodPost, "/api/v1/evaluations", body)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeResponse(t, w).Data.(map[string]interface{})
	auditID := int64(data["auditId"].(float64))

	w = doJSON(t, server, http.MethodGet, fmt.Sprintf("/api/v1/audits/%d", auditID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	record := decodeResponse(t, w).Data.(map[string]interface{})
	assert.Equal(t, "ACMETélécom", record["client_name"])
	assert.Equal(t, "Dakar", record["location"])
}

func TestRoomEquipmentLookup(t *testing.T) {
	server := newTestServer(t)

	w := doJSON(t, server, http.MethodGet, "/api/v1/rooms/Salle%20Serveur/equipment", nil)
	require.Equal(t, http.StatusOK, w.Code)

	options := decodeResponse(t, w).Data.([]interface{})
	assert.Contains(t, options, "Serveurs (rack, lame, tour)")
}

func TestRoomEquipmentUnknownType(t *testing.T) {
	server := newTestServer(t)

	w := doJSON(t, server, http.MethodGet, "/api/v1/rooms/Salle%20Caf%C3%A9/equipment", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, decodeResponse(t, w).Success)
}

func TestCORSPreflight(t *testing.T) {
	server := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/evaluations", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	server.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")
}

func TestCORSHeadersOnRegularRequest(t *testing.T) {
	server := newTestServer(t)

	w := doJSON(t, server, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestGenerateReportUnknownDocumentType(t *testing.T) {
	server := newTestServer(t)

	w := doJSON(t, server, http.MethodPost, "/api/v1/reports",
		map[string]interface{}{"documentType": "inconnu"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerateReportUnknownRoomType(t *testing.T) {
	server := newTestServer(t)

	body := map[string]interface{}{
		"documentType": "rapportAudit",
		"rooms": []map[string]interface{}{
			{"name": "X", "type": "Salle Café"},
		},
	}

	w := doJSON(t, server, http.MethodPost, "/api/v1/reports", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListAudits(t *testing.T) {
	server := newTestServer(t)

	for i := 0; i < 2; i++ {
		w := doJSON(t, server, http.MethodPost, "/api/v1/evaluations", map[string]interface{}{
			"client":         map[string]interface{}{"company": "ACME"},
			"infrastructure": map[string]interface{}{},
		})
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := doJSON(t, server, http.MethodGet, "/api/v1/audits", nil)
	require.Equal(t, http.StatusOK, w.Code)
	records := decodeResponse(t, w).Data.([]interface{})
	assert.Len(t, records, 2)

	w = doJSON(t, server, http.MethodGet, "/api/v1/audits?limit=0", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetAuditNotFound(t *testing.T) {
	server := newTestServer(t)

	w := doJSON(t, server, http.MethodGet, "/api/v1/audits/9999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
