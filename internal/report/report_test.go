package report

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/dcexperts/dcaudit/internal/domain/entity"
	"github.com/dcexperts/dcaudit/internal/evaluation"
)

func sampleReport() *AuditReport {
	evaluator := evaluation.NewStandardsEvaluator()
	infra := entity.Infrastructure{
		Power:   entity.PowerAttributes{Redundancy: 0.7, Maintenance: 0.6, Monitoring: 0.5, TotalConsumption: 1200, ITConsumption: 800},
		Cooling: entity.CoolingAttributes{Efficiency: 0.5, Redundancy: 0.4, Maintenance: 0.6},
		Components: map[string]entity.ComponentCondition{
			"power": {Age: 3, Maintenance: 4, Incidents: 1},
		},
	}

	return &AuditReport{
		Client: entity.ClientInfo{
			Company:     "ACME Télécom",
			Location:    "Dakar",
			ProjectName: "Audit DC principal",
		},
		Rooms: []entity.Room{
			{
				Name: "DC-01", Type: "Salle Serveur", Area: 120, PowerCapacity: 250,
				Equipment: []entity.RoomEquipment{
					{Name: "Serveurs (rack, lame, tour)", Quantity: 40, Manufacturer: "Dell"},
					{Name: "Onduleurs (UPS)", Quantity: 2, Manufacturer: "Vertiv"},
				},
			},
		},
		Result: evaluator.EvaluateDatacenter(infra),
		BOM: []entity.BOMItem{
			{Category: "Alimentation", Name: "UPS", Quantity: 1, Specs: "60kVA", UnitPrice: 24000, TotalPrice: 24000},
			{Category: "Refroidissement", Name: "Climatiseur de précision", Quantity: 1, Specs: "30kW", UnitPrice: 18500, TotalPrice: 18500},
		},
		Responses:   entity.ResponseMap{},
		GeneratedAt: time.Date(2026, 8, 15, 10, 30, 0, 0, time.UTC),
	}
}

func TestExcelGeneratorProducesWorkbook(t *testing.T) {
	dir := t.TempDir()
	generator := NewExcelGenerator(dir, zap.NewNop())

	path, err := generator.Generate(sampleReport())
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))
	assert.True(t, strings.HasSuffix(path, ".xlsx"))

	file, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer file.Close()

	sheets := file.GetSheetList()
	assert.ElementsMatch(t, []string{
		sheetSummary, sheetTIA942, sheetUptime, sheetBOM, sheetResponses, sheetRooms,
	}, sheets, "default sheet must be removed")

	title, err := file.GetCellValue(sheetSummary, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Rapport d'Audit Datacenter", title)

	company, err := file.GetCellValue(sheetSummary, "B3")
	require.NoError(t, err)
	assert.Equal(t, "ACME Télécom", company)
}

func TestExcelGeneratorAtomicSave(t *testing.T) {
	dir := t.TempDir()
	generator := NewExcelGenerator(dir, zap.NewNop())

	path, err := generator.Generate(sampleReport())
	require.NoError(t, err)

	leftovers, err := filepath.Glob(filepath.Join(dir, "*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, leftovers, "temporary file must be renamed away")
	assert.FileExists(t, path)
}

func TestExcelGeneratorBOMTotalRow(t *testing.T) {
	dir := t.TempDir()
	generator := NewExcelGenerator(dir, zap.NewNop())
	report := sampleReport()

	path, err := generator.Generate(report)
	require.NoError(t, err)

	file, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer file.Close()

	rows, err := file.GetRows(sheetBOM)
	require.NoError(t, err)
	require.Len(t, rows, 4, "header, two items, total row")

	totalRow := rows[3]
	assert.Equal(t, "Total", totalRow[1])
	assert.Equal(t, "42500", totalRow[5])
}

func TestSanitizeFileName(t *testing.T) {
	assert.Equal(t, "ACME_Tlcom", sanitizeFileName("ACME Télécom"))
	assert.Equal(t, "client-2026_v1", sanitizeFileName("client-2026_v1"))
	assert.Equal(t, "", sanitizeFileName("../../"))
}

func TestRenderHTML(t *testing.T) {
	var buf bytes.Buffer
	err := RenderHTML(&buf, sampleReport())
	require.NoError(t, err)

	html := buf.String()
	assert.Contains(t, html, "ACME Télécom")
	assert.Contains(t, html, "Rapport d&#39;Audit Datacenter")
	assert.Contains(t, html, "Recommandations TIA-942")
	assert.Contains(t, html, "Liste de Matériel")
}

func TestRenderHTMLPriorityClasses(t *testing.T) {
	report := sampleReport()
	// Zero infrastructure yields all-critical recommendations.
	report.Result = evaluation.NewStandardsEvaluator().EvaluateDatacenter(entity.Infrastructure{})

	var buf bytes.Buffer
	require.NoError(t, RenderHTML(&buf, report))
	assert.Contains(t, buf.String(), `class="p1"`)
}

func TestSaveHTML(t *testing.T) {
	dir := t.TempDir()
	workbookPath := filepath.Join(dir, "audit_ACME.xlsx")

	htmlPath, err := SaveHTML(workbookPath, sampleReport())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "audit_ACME.html"), htmlPath)
	assert.FileExists(t, htmlPath)

	leftovers, err := filepath.Glob(filepath.Join(dir, "*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestPriorityClassBands(t *testing.T) {
	assert.Equal(t, "p1", scoreClass(30))
	assert.Equal(t, "p2", scoreClass(65))
	assert.Equal(t, "p3", scoreClass(95))
}

func TestDocumentOutline(t *testing.T) {
	for _, docType := range DocumentTypes() {
		tmpl, err := DocumentOutline(docType)
		require.NoError(t, err, docType)
		assert.Equal(t, docType, tmpl.Type)
		assert.NotEmpty(t, tmpl.Title)
		assert.NotEmpty(t, tmpl.Sections)
	}
}

func TestDocumentOutlineUnknownType(t *testing.T) {
	_, err := DocumentOutline("rapportInexistant")
	assert.ErrorIs(t, err, ErrUnknownTemplate)
}
