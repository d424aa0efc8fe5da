package report

import (
	"errors"
	"fmt"
)

// ErrUnknownTemplate is returned for a document type outside the
// registry. Callers must not fall back to a partial outline.
var ErrUnknownTemplate = errors.New("unknown document template")

// DocumentTemplate is the titled section outline of one client
// deliverable. Outlines are fixed content shipped with the product.
type DocumentTemplate struct {
	Type     string   `json:"type"`
	Title    string   `json:"title"`
	Sections []string `json:"sections"`
}

var documentTemplates = map[string]DocumentTemplate{
	"offreTechnique": {
		Type:  "offreTechnique",
		Title: "Offre Technique et Financière",
		Sections: []string{
			"Présentation de la société",
			"Compréhension du besoin",
			"Méthodologie d'audit proposée",
			"Équipe projet et références",
			"Planning prévisionnel",
			"Offre financière",
		},
	},
	"cahierCharges": {
		Type:  "cahierCharges",
		Title: "Cahier des Charges",
		Sections: []string{
			"Contexte et objectifs du projet",
			"Périmètre de l'audit",
			"Exigences techniques TIA-942",
			"Exigences Uptime Institute",
			"Livrables attendus",
			"Contraintes et prérequis",
		},
	},
	"rapportSurvey": {
		Type:  "rapportSurvey",
		Title: "Rapport de Survey",
		Sections: []string{
			"Synthèse du relevé sur site",
			"Inventaire des salles et équipements",
			"Relevés électriques",
			"Relevés de refroidissement",
			"Constats et observations",
		},
	},
	"rapportAudit": {
		Type:  "rapportAudit",
		Title: "Rapport d'Audit",
		Sections: []string{
			"Synthèse managériale",
			"Évaluation TIA-942",
			"Évaluation Uptime Institute",
			"Analyse des risques",
			"Recommandations priorisées",
			"Liste de matériel et budget",
			"Plan d'action",
		},
	},
	"autresServices": {
		Type:  "autresServices",
		Title: "Autres Services",
		Sections: []string{
			"Accompagnement à la certification",
			"Formation des équipes d'exploitation",
			"Suivi post-audit",
		},
	},
}

// DocumentOutline returns the outline registered for the given document
// type.
func DocumentOutline(docType string) (DocumentTemplate, error) {
	tmpl, ok := documentTemplates[docType]
	if !ok {
		return DocumentTemplate{}, fmt.Errorf("%w: %s", ErrUnknownTemplate, docType)
	}
	return tmpl, nil
}

// DocumentTypes lists the registered document types in stable order.
func DocumentTypes() []string {
	return []string{"offreTechnique", "cahierCharges", "rapportSurvey", "rapportAudit", "autresServices"}
}
