package report

import (
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dcexperts/dcaudit/internal/domain/entity"
	"github.com/dcexperts/dcaudit/internal/evaluation"
)

// priorityClass maps a recommendation priority to its CSS class. The
// classes carry the urgency color: p1 red, p2 orange, p3 green.
func priorityClass(p entity.Priority) string {
	switch p {
	case entity.PriorityP1:
		return "p1"
	case entity.PriorityP2:
		return "p2"
	default:
		return "p3"
	}
}

// scoreClass colors a score cell with the same 50/80 bands the rule
// engine uses for priorities.
func scoreClass(score float64) string {
	return priorityClass(evaluation.PriorityFor(score))
}

var htmlReport = template.Must(template.New("report").Funcs(template.FuncMap{
	"priorityClass": priorityClass,
	"scoreClass":    scoreClass,
	"printf":        fmt.Sprintf,
}).Parse(`<!DOCTYPE html>
<html lang="fr">
<head>
<meta charset="utf-8">
<title>Rapport d'Audit — {{.Client.Company}}</title>
<style>
body { font-family: Arial, sans-serif; margin: 2em; color: #222; }
h1 { border-bottom: 2px solid #2c3e50; padding-bottom: 0.3em; }
table { border-collapse: collapse; width: 100%; margin-bottom: 2em; }
th, td { border: 1px solid #ccc; padding: 0.5em 0.8em; text-align: left; }
th { background: #2c3e50; color: #fff; }
.p1 { background: #fdecea; color: #c0392b; font-weight: bold; }
.p2 { background: #fef5e7; color: #e67e22; font-weight: bold; }
.p3 { background: #eafaf1; color: #27ae60; font-weight: bold; }
.warning { background: #fdecea; padding: 0.8em; border-left: 4px solid #c0392b; }
</style>
</head>
<body>
<h1>Rapport d'Audit Datacenter</h1>
<p><strong>{{.Client.Company}}</strong> — {{.Client.Location}}<br>
Projet : {{.Client.ProjectName}}<br>
Date : {{.GeneratedAt.Format "2006-01-02"}}</p>

<h2>Synthèse</h2>
<table>
<tr><th>Standard</th><th>Tier</th><th>Score</th><th>Disponibilité (%)</th><th>PUE</th></tr>
<tr>
  <td>{{.Result.TIA942.Standard}}</td>
  <td>{{.Result.TIA942.Tier}}</td>
  <td class="{{scoreClass .Result.TIA942.Score}}">{{printf "%.2f" .Result.TIA942.Score}}</td>
  <td>{{printf "%.3f" .Result.TIA942.Metrics.Availability}}</td>
  <td>{{printf "%.2f" .Result.TIA942.Metrics.PUE}}</td>
</tr>
<tr>
  <td>{{.Result.Uptime.Standard}}</td>
  <td>{{.Result.Uptime.Tier}}</td>
  <td class="{{scoreClass .Result.Uptime.Score}}">{{printf "%.2f" .Result.Uptime.Score}}</td>
  <td>{{printf "%.3f" .Result.Uptime.Metrics.Availability}}</td>
  <td>{{printf "%.2f" .Result.Uptime.Metrics.PUE}}</td>
</tr>
</table>
{{if .Result.TIA942.Metrics.PUEWarning}}
<p class="warning">PUE inférieur à 1.0 : vérifier les relevés de consommation.</p>
{{end}}

<h2>Recommandations TIA-942</h2>
{{template "recommendations" .Result.TIA942.Recommendations}}

<h2>Recommandations Uptime Institute</h2>
{{template "recommendations" .Result.Uptime.Recommendations}}

{{if .BOM}}
<h2>Liste de Matériel</h2>
<table>
<tr><th>Catégorie</th><th>Équipement</th><th>Quantité</th><th>Spécifications</th><th>Prix total</th></tr>
{{range .BOM}}
<tr><td>{{.Category}}</td><td>{{.Name}}</td><td>{{.Quantity}}</td><td>{{.Specs}}</td><td>{{printf "%.2f" .TotalPrice}}</td></tr>
{{end}}
</table>
{{end}}
</body>
</html>

{{define "recommendations"}}
<table>
<tr><th>Catégorie</th><th>Priorité</th><th>Actions</th><th>Impact</th><th>Coût</th><th>Délai</th></tr>
{{range .}}
<tr>
  <td>{{.Category}}</td>
  <td class="{{priorityClass .Priority}}">{{.Priority}}</td>
  <td><ul>{{range .Items}}<li>{{.}}</li>{{end}}</ul></td>
  <td>{{.Impact}}</td>
  <td>{{.EstimatedCost}}</td>
  <td>{{.Timeline}}</td>
</tr>
{{end}}
</table>
{{end}}`))

// RenderHTML writes the HTML rendition of the report to w.
func RenderHTML(w io.Writer, report *AuditReport) error {
	if err := htmlReport.Execute(w, report); err != nil {
		return fmt.Errorf("failed to render HTML report: %w", err)
	}
	return nil
}

// SaveHTML renders the HTML rendition next to the workbook, swapping the
// extension. Same atomic discipline as the workbook: temp file, then
// rename.
func SaveHTML(workbookPath string, report *AuditReport) (string, error) {
	htmlPath := strings.TrimSuffix(workbookPath, filepath.Ext(workbookPath)) + ".html"
	tempPath := htmlPath + ".tmp"

	f, err := os.Create(tempPath)
	if err != nil {
		return "", fmt.Errorf("failed to create HTML report: %w", err)
	}
	if err := RenderHTML(f, report); err != nil {
		f.Close()
		os.Remove(tempPath)
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(tempPath)
		return "", fmt.Errorf("failed to write HTML report: %w", err)
	}
	if err := os.Rename(tempPath, htmlPath); err != nil {
		os.Remove(tempPath)
		return "", fmt.Errorf("failed to finalize HTML report: %w", err)
	}
	return htmlPath, nil
}
