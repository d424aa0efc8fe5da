package evaluation

import (
	"sort"
	"strings"

	"github.com/dcexperts/dcaudit/internal/domain/entity"
)

// The graded questionnaire flow scores categories on the 0-5 scale and uses
// its own rule ladder, independent from the attribute-based 0-100 path.
// Categories averaging 4 or better fire no rule and get no recommendation.

type questionnaireRule struct {
	category string
	matches  func(score float64) bool
	items    []string
}

// Rules are evaluated in declaration order; the first match per category
// wins.
var questionnaireRules = []questionnaireRule{
	{
		category: "Refroidissement",
		matches:  func(s float64) bool { return s < 3 },
		items: []string{
			"Installer une unité de climatisation redondante",
			"Optimiser la disposition des racks pour une meilleure circulation d'air",
			"Mettre en place un système de surveillance de la température",
			"Implémenter le confinement d'allée chaude/froide",
		},
	},
	{
		category: "Refroidissement",
		matches:  func(s float64) bool { return s >= 3 && s < 4 },
		items: []string{
			"Optimiser les paramètres de climatisation",
			"Ajouter des sondes de température supplémentaires",
			"Planifier une maintenance préventive régulière",
		},
	},
	{
		category: "Sécurité",
		matches:  func(s float64) bool { return s < 3 },
		items: []string{
			"Installer un système de contrôle d'accès biométrique",
			"Mettre en place un système de vidéosurveillance 24/7",
			"Implémenter une procédure stricte de gestion des accès",
			"Ajouter des détecteurs de mouvement",
		},
	},
	{
		category: "Sécurité",
		matches:  func(s float64) bool { return s >= 3 && s < 4 },
		items: []string{
			"Renforcer les procédures de sécurité existantes",
			"Mettre à jour le système de contrôle d'accès",
			"Organiser des formations régulières sur la sécurité",
		},
	},
	{
		category: "Alimentation",
		matches:  func(s float64) bool { return s < 3 },
		items: []string{
			"Installer un système UPS redondant",
			"Mettre en place un groupe électrogène",
			"Implémenter un système de monitoring électrique",
			"Ajouter des PDUs intelligents",
		},
	},
	{
		category: "Alimentation",
		matches:  func(s float64) bool { return s >= 3 && s < 4 },
		items: []string{
			"Optimiser la distribution électrique",
			"Planifier des tests réguliers des systèmes de secours",
			"Mettre à jour le système de monitoring",
		},
	},
	{
		category: "Infrastructure",
		matches:  func(s float64) bool { return s < 3 },
		items: []string{
			"Renforcer la structure du plancher technique",
			"Améliorer l'étanchéité de la salle",
			"Installer des systèmes anti-incendie avancés",
			"Mettre en place un système de détection des fuites",
		},
	},
	{
		category: "Infrastructure",
		matches:  func(s float64) bool { return s >= 3 && s < 4 },
		items: []string{
			"Optimiser l'agencement de la salle",
			"Planifier une maintenance régulière des infrastructures",
			"Mettre à jour les systèmes de détection",
		},
	},
}

// CategoryAverages computes the mean score per category from graded
// responses. The category is the question id prefix before the first
// underscore; a key without an underscore is its own category.
func CategoryAverages(responses entity.ScoredResponseMap) map[string]float64 {
	totals := make(map[string]float64)
	counts := make(map[string]int)
	for questionID, response := range responses {
		category, _, _ := strings.Cut(questionID, "_")
		totals[category] += response.Score
		counts[category]++
	}

	averages := make(map[string]float64, len(totals))
	for category, total := range totals {
		averages[category] = total / float64(counts[category])
	}
	return averages
}

// GenerateRecommendations selects the first matching rule per category for
// the graded questionnaire flow. Categories with average score >= 4 are
// absent from the result.
func GenerateRecommendations(responses entity.ScoredResponseMap) map[string][]string {
	averages := CategoryAverages(responses)

	recommendations := make(map[string][]string)
	for category, average := range averages {
		for _, rule := range questionnaireRules {
			if rule.category == category && rule.matches(average) {
				recommendations[category] = rule.items
				break
			}
		}
	}
	return recommendations
}

// SortedCategories returns the recommendation categories in stable order
// for deterministic rendering.
func SortedCategories(recommendations map[string][]string) []string {
	categories := make([]string, 0, len(recommendations))
	for category := range recommendations {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories
}
