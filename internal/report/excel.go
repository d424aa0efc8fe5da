package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/dcexperts/dcaudit/internal/domain/entity"
	"github.com/dcexperts/dcaudit/internal/evaluation"
)

// Worksheet names of the generated workbook.
const (
	sheetSummary         = "Synthèse"
	sheetTIA942          = "Recommandations TIA-942"
	sheetUptime          = "Recommandations Uptime"
	sheetBOM             = "BOM"
	sheetResponses       = "Réponses"
	sheetRooms           = "Salles"
	defaultExcelizeSheet = "Sheet1"
)

// ExcelGenerator writes the full audit workbook to disk.
type ExcelGenerator struct {
	outputDir string
	logger    *zap.Logger
}

// NewExcelGenerator creates a generator writing into outputDir. The
// directory is created on first use, not here.
func NewExcelGenerator(outputDir string, logger *zap.Logger) *ExcelGenerator {
	return &ExcelGenerator{outputDir: outputDir, logger: logger}
}

// Generate builds the workbook and saves it atomically: the file is
// written under a temporary name and renamed into place, so a crash
// mid-write never leaves a half-built report at the final path.
func (g *ExcelGenerator) Generate(report *AuditReport) (string, error) {
	if err := os.MkdirAll(g.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	file := excelize.NewFile()
	defer file.Close()

	if err := g.fillSummarySheet(file, report); err != nil {
		return "", fmt.Errorf("failed to build summary sheet: %w", err)
	}
	if err := g.fillRecommendationSheet(file, sheetTIA942, report.Result.TIA942); err != nil {
		return "", fmt.Errorf("failed to build TIA-942 sheet: %w", err)
	}
	if err := g.fillRecommendationSheet(file, sheetUptime, report.Result.Uptime); err != nil {
		return "", fmt.Errorf("failed to build Uptime sheet: %w", err)
	}
	if err := g.fillBOMSheet(file, report.BOM); err != nil {
		return "", fmt.Errorf("failed to build BOM sheet: %w", err)
	}
	if err := g.fillResponsesSheet(file, report); err != nil {
		return "", fmt.Errorf("failed to build responses sheet: %w", err)
	}
	if err := g.fillRoomsSheet(file, report.Rooms); err != nil {
		return "", fmt.Errorf("failed to build rooms sheet: %w", err)
	}

	// The workbook starts with excelize's default sheet; drop it once the
	// real sheets exist.
	if err := file.DeleteSheet(defaultExcelizeSheet); err != nil {
		return "", fmt.Errorf("failed to remove default sheet: %w", err)
	}
	index, err := file.GetSheetIndex(sheetSummary)
	if err != nil {
		return "", fmt.Errorf("failed to locate summary sheet: %w", err)
	}
	file.SetActiveSheet(index)

	finalPath := filepath.Join(g.outputDir, g.fileName(report))
	tempPath := finalPath + ".tmp"

	if err := file.SaveAs(tempPath); err != nil {
		return "", fmt.Errorf("failed to save workbook: %w", err)
	}
	if err := os.Rename(tempPath, finalPath); err != nil {
		os.Remove(tempPath)
		return "", fmt.Errorf("failed to finalize workbook: %w", err)
	}

	g.logger.Info("audit workbook generated",
		zap.String("path", finalPath),
		zap.Int("bom_items", len(report.BOM)),
		zap.Int("rooms", len(report.Rooms)))

	return finalPath, nil
}

func (g *ExcelGenerator) fileName(report *AuditReport) string {
	company := sanitizeFileName(report.Client.Company)
	if company == "" {
		company = "client"
	}
	return fmt.Sprintf("audit_%s_%s.xlsx", company, report.GeneratedAt.Format("20060102_150405"))
}

// sanitizeFileName keeps letters, digits, dash and underscore; everything
// else becomes an underscore so client names cannot escape the output dir.
func sanitizeFileName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('_')
		}
	}
	return b.String()
}

func (g *ExcelGenerator) fillSummarySheet(file *excelize.File, report *AuditReport) error {
	if _, err := file.NewSheet(sheetSummary); err != nil {
		return err
	}

	rows := [][]interface{}{
		{"Rapport d'Audit Datacenter"},
		{},
		{"Client", report.Client.Company},
		{"Projet", report.Client.ProjectName},
		{"Localisation", report.Client.Location},
		{"Représentant", report.Client.Representative},
		{"Date", report.GeneratedAt.Format("2006-01-02")},
		{},
		{"Standard", "Tier", "Score", "Disponibilité (%)", "PUE"},
		{string(report.Result.TIA942.Standard), report.Result.TIA942.Tier,
			report.Result.TIA942.Score, report.Result.TIA942.Metrics.Availability,
			report.Result.TIA942.Metrics.PUE},
		{string(report.Result.Uptime.Standard), report.Result.Uptime.Tier,
			report.Result.Uptime.Score, report.Result.Uptime.Metrics.Availability,
			report.Result.Uptime.Metrics.PUE},
	}
	if report.Result.TIA942.Metrics.PUEWarning {
		rows = append(rows, []interface{}{},
			[]interface{}{"Avertissement", "PUE inférieur à 1.0 : vérifier les relevés de consommation"})
	}

	return writeRows(file, sheetSummary, 1, rows)
}

func (g *ExcelGenerator) fillRecommendationSheet(file *excelize.File, sheet string, result entity.EvaluationResult) error {
	if _, err := file.NewSheet(sheet); err != nil {
		return err
	}

	rows := [][]interface{}{
		{"Catégorie", "Priorité", "Action", "Impact", "Coût estimé", "Délai"},
	}
	for _, rec := range result.Recommendations {
		for i, item := range rec.Items {
			// Category metadata appears on the first action line only;
			// the following lines of the bundle leave it blank.
			if i == 0 {
				rows = append(rows, []interface{}{
					rec.Category, string(rec.Priority), item,
					rec.Impact, rec.EstimatedCost, rec.Timeline,
				})
			} else {
				rows = append(rows, []interface{}{"", "", item, "", "", ""})
			}
		}
	}

	rows = append(rows, []interface{}{}, []interface{}{"Composant", "Niveau de risque", "Mitigation"})
	for _, risk := range result.Metrics.Risks {
		rows = append(rows, []interface{}{risk.Component, risk.Level, risk.Mitigation})
	}

	return writeRows(file, sheet, 1, rows)
}

func (g *ExcelGenerator) fillBOMSheet(file *excelize.File, items []entity.BOMItem) error {
	if _, err := file.NewSheet(sheetBOM); err != nil {
		return err
	}

	rows := [][]interface{}{
		{"Catégorie", "Équipement", "Quantité", "Spécifications", "Prix unitaire", "Prix total", "Fournisseur", "Délai"},
	}
	for _, item := range items {
		rows = append(rows, []interface{}{
			item.Category, item.Name, item.Quantity, item.Specs,
			item.UnitPrice, item.TotalPrice, item.Supplier, item.LeadTime,
		})
	}
	rows = append(rows, []interface{}{"", "Total", "", "", "", evaluation.BOMTotal(items)})

	return writeRows(file, sheetBOM, 1, rows)
}

func (g *ExcelGenerator) fillResponsesSheet(file *excelize.File, report *AuditReport) error {
	if _, err := file.NewSheet(sheetResponses); err != nil {
		return err
	}

	rows := [][]interface{}{
		{"Section", "Question", "Réponse"},
	}
	if report.Questionnaire != nil {
		for _, section := range report.Questionnaire.Checkpoints {
			for i, item := range section.Items {
				key := fmt.Sprintf("%s-%d", section.Title, i)
				answer := "Non renseigné"
				if v, ok := report.Responses[key]; ok {
					if v {
						answer = "Oui"
					} else {
						answer = "Non"
					}
				}
				rows = append(rows, []interface{}{section.Title, item.Question, answer})
			}
		}
	}

	return writeRows(file, sheetResponses, 1, rows)
}

func (g *ExcelGenerator) fillRoomsSheet(file *excelize.File, rooms []entity.Room) error {
	if _, err := file.NewSheet(sheetRooms); err != nil {
		return err
	}

	rows := [][]interface{}{
		{"Salle", "Type", "Surface (m²)", "Capacité électrique (kW)", "Équipement", "Quantité", "Fabricant"},
	}
	for _, room := range rooms {
		if len(room.Equipment) == 0 {
			rows = append(rows, []interface{}{room.Name, room.Type, room.Area, room.PowerCapacity})
			continue
		}
		for i, eq := range room.Equipment {
			if i == 0 {
				rows = append(rows, []interface{}{
					room.Name, room.Type, room.Area, room.PowerCapacity,
					eq.Name, eq.Quantity, eq.Manufacturer,
				})
			} else {
				rows = append(rows, []interface{}{"", "", "", "", eq.Name, eq.Quantity, eq.Manufacturer})
			}
		}
	}

	return writeRows(file, sheetRooms, 1, rows)
}

// writeRows writes each row with SetSheetRow starting at the given row
// number. Empty rows advance the cursor without touching cells.
func writeRows(file *excelize.File, sheet string, start int, rows [][]interface{}) error {
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, start+i)
		if err != nil {
			return err
		}
		if err := file.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d of %s: %w", start+i, sheet, err)
		}
	}
	return nil
}
