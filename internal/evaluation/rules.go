package evaluation

import "github.com/dcexperts/dcaudit/internal/domain/entity"

// Priority thresholds shared by the rule engine and the UI color bands.
const (
	criticalBelow = 50
	improveBelow  = 80
)

// PriorityFor maps a domain score in [0,100] to a remediation priority.
// The partition is exhaustive and non-overlapping.
func PriorityFor(score float64) entity.Priority {
	switch {
	case score < criticalBelow:
		return entity.PriorityP1
	case score < improveBelow:
		return entity.PriorityP2
	default:
		return entity.PriorityP3
	}
}

// actionBundle is one rung of a category's remediation ladder: the actions
// to recommend while the score stays below maxScore.
type actionBundle struct {
	maxScore float64
	items    []string
}

// bundleTable declares the full remediation ladder for one category,
// together with its fixed impact, cost and timeline annotations. Bundles
// are evaluated in declaration order and the first match wins; the
// maintain list is the default outcome when no bundle matches.
type bundleTable struct {
	category      string
	impact        string
	estimatedCost string
	timeline      string
	bundles       []actionBundle
	maintain      []string
}

// selectBundle picks the action list for a score. Always reaches a result.
func (t *bundleTable) selectBundle(score float64) []string {
	for _, b := range t.bundles {
		if score < b.maxScore {
			return b.items
		}
	}
	return t.maintain
}

// Recommend evaluates one category table against its domain score and
// produces the corresponding prioritized recommendation.
func (t *bundleTable) Recommend(score float64) entity.Recommendation {
	return entity.Recommendation{
		Category:      t.category,
		Priority:      PriorityFor(score),
		Items:         t.selectBundle(score),
		Impact:        t.impact,
		EstimatedCost: t.estimatedCost,
		Timeline:      t.timeline,
	}
}

// TIA-942 remediation catalogue.

var tia942PowerTable = bundleTable{
	category:      "Infrastructure Électrique",
	impact:        "Impact direct sur la disponibilité du datacenter",
	estimatedCost: "Élevé",
	timeline:      "6-12 mois",
	bundles: []actionBundle{
		{criticalBelow, []string{
			"Mettre en place une redondance N+1 pour l'alimentation électrique",
			"Installer des UPS pour chaque circuit critique",
			"Améliorer la distribution électrique",
			"Mettre en place un programme de maintenance préventive",
		}},
		{improveBelow, []string{
			"Optimiser la configuration des UPS",
			"Améliorer le monitoring de la consommation électrique",
			"Renforcer les procédures de maintenance",
		}},
	},
	maintain: []string{
		"Maintenir les bonnes pratiques actuelles",
		"Planifier les futures améliorations de capacité",
	},
}

var tia942CoolingTable = bundleTable{
	category:      "Système de Refroidissement",
	impact:        "Impact sur la performance et la durée de vie des équipements",
	estimatedCost: "Moyen à élevé",
	timeline:      "3-6 mois",
	bundles: []actionBundle{
		{criticalBelow, []string{
			"Installer des systèmes de refroidissement redondants",
			"Optimiser la disposition des allées froides/chaudes",
			"Mettre en place un monitoring de la température",
			"Améliorer l'efficacité énergétique du refroidissement",
		}},
		{improveBelow, []string{
			"Optimiser les paramètres de refroidissement",
			"Améliorer la circulation d'air",
			"Renforcer la maintenance préventive",
		}},
	},
	maintain: []string{
		"Maintenir les paramètres optimaux actuels",
		"Surveiller les tendances de température",
	},
}

var tia942SecurityTable = bundleTable{
	category:      "Sécurité Physique",
	impact:        "Protection des actifs et conformité réglementaire",
	estimatedCost: "Moyen",
	timeline:      "2-4 mois",
	bundles: []actionBundle{
		{criticalBelow, []string{
			"Mettre en place un contrôle d'accès multi-facteurs",
			"Installer des caméras de surveillance",
			"Établir des procédures de sécurité strictes",
			"Former le personnel aux procédures de sécurité",
		}},
		{improveBelow, []string{
			"Améliorer la couverture vidéo",
			"Optimiser les procédures d'accès",
			"Renforcer la documentation de sécurité",
		}},
	},
	maintain: []string{
		"Maintenir les protocoles de sécurité actuels",
		"Effectuer des audits réguliers",
	},
}

// Uptime Institute remediation catalogue.

var uptimeTopologyTable = bundleTable{
	category:      "Topologie du Site",
	impact:        "Fondamental pour la classification Uptime",
	estimatedCost: "Très élevé",
	timeline:      "12-24 mois",
	bundles: []actionBundle{
		{criticalBelow, []string{
			"Revoir l'architecture globale du site",
			"Mettre en place des chemins de distribution redondants",
			"Améliorer la séparation des systèmes critiques",
			"Créer des zones de maintenance dédiées",
		}},
		{improveBelow, []string{
			"Optimiser les chemins de distribution",
			"Améliorer la documentation de l'infrastructure",
			"Renforcer la ségrégation des systèmes",
		}},
	},
	maintain: []string{
		"Maintenir la topologie actuelle",
		"Planifier les futures extensions",
	},
}

var uptimeOperationsTable = bundleTable{
	category:      "Maintenance et Opérations",
	impact:        "Essentiel pour maintenir la certification",
	estimatedCost: "Moyen",
	timeline:      "3-6 mois",
	bundles: []actionBundle{
		{criticalBelow, []string{
			"Établir des procédures opérationnelles détaillées",
			"Mettre en place une équipe 24/7",
			"Créer un programme de formation complet",
			"Implémenter un système de gestion de maintenance",
		}},
		{improveBelow, []string{
			"Optimiser les procédures existantes",
			"Améliorer la documentation opérationnelle",
			"Renforcer le programme de formation",
		}},
	},
	maintain: []string{
		"Maintenir les procédures actuelles",
		"Effectuer des exercices réguliers",
	},
}

var uptimeSustainabilityTable = bundleTable{
	category:      "Durabilité Opérationnelle",
	impact:        "Impact sur l'efficacité long terme",
	estimatedCost: "Variable",
	timeline:      "Continu",
	bundles: []actionBundle{
		{criticalBelow, []string{
			"Mettre en place un programme de gestion énergétique",
			"Optimiser le PUE",
			"Implémenter des pratiques écologiques",
			"Établir des objectifs de durabilité",
		}},
		{improveBelow, []string{
			"Améliorer l'efficacité énergétique",
			"Optimiser la gestion des ressources",
			"Renforcer les pratiques durables",
		}},
	},
	maintain: []string{
		"Maintenir les pratiques durables actuelles",
		"Surveiller les nouvelles technologies vertes",
	},
}
