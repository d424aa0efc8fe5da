package evaluation

import (
	"math"
	"sort"

	"github.com/dcexperts/dcaudit/internal/domain/entity"
)

const defaultMitigation = "Surveillance continue recommandée"

// mitigations maps component -> tier -> mitigation wording for TIA-942 risk
// findings. Unknown components fall back to continuous monitoring.
var mitigations = map[string]map[string]string{
	"power": {
		"T1": "Maintenance préventive régulière",
		"T2": "Redondance N+1 et maintenance améliorée",
		"T3": "Redondance 2N et maintenance concurrente",
		"T4": "Redondance 2N+1 et maintenance continue",
	},
	"cooling": {
		"T1": "Monitoring basique de la température",
		"T2": "Redondance partielle et monitoring avancé",
		"T3": "Redondance N+1 et contrôle automatique",
		"T4": "Redondance 2N et optimisation continue",
	},
	"network": {
		"T1": "Configuration réseau de base",
		"T2": "Redondance des liens principaux",
		"T3": "Architecture réseau distribuée",
		"T4": "Architecture réseau full mesh",
	},
}

// ComponentRiskScore rates one component's condition on [0,100]. Newer,
// well-maintained, incident-free components score high. Age and incident
// counts are clamped to the 0-5 scale before weighting.
func ComponentRiskScore(c entity.ComponentCondition) float64 {
	return ((5-math.Min(c.Age, 5))*0.3 + c.Maintenance*0.4 + (5-math.Min(c.Incidents, 5))*0.3) * 20
}

// tia942Risks evaluates every declared component and attaches the
// tier-appropriate mitigation. Components are emitted in name order so
// identical input always yields identical output.
func tia942Risks(components map[string]entity.ComponentCondition, tier string) []entity.Risk {
	names := make([]string, 0, len(components))
	for name := range components {
		names = append(names, name)
	}
	sort.Strings(names)

	risks := make([]entity.Risk, 0, len(names))
	for _, name := range names {
		mitigation := defaultMitigation
		if byTier, ok := mitigations[name]; ok {
			if m, ok := byTier[tier]; ok {
				mitigation = m
			}
		}
		risks = append(risks, entity.Risk{
			Component:  name,
			Level:      ComponentRiskScore(components[name]),
			Mitigation: mitigation,
		})
	}
	return risks
}

// The Uptime risk path uses its own 70/85 ladder over the computed domain
// scores, separate from the 50/80 recommendation thresholds.

type uptimeRiskActions struct {
	critical []string
	improve  []string
	maintain string
}

var uptimeRiskCatalogue = []struct {
	component string
	actions   uptimeRiskActions
}{
	{"power", uptimeRiskActions{
		critical: []string{
			"Améliorer la redondance de l'alimentation électrique",
			"Mettre en place un programme de maintenance préventive",
			"Installer des systèmes de monitoring avancés",
		},
		improve: []string{
			"Optimiser les procédures de maintenance",
			"Améliorer le système de monitoring",
		},
		maintain: "Maintenir les bonnes pratiques actuelles",
	}},
	{"cooling", uptimeRiskActions{
		critical: []string{
			"Améliorer l'efficacité du système de refroidissement",
			"Mettre en place une redondance N+1",
			"Optimiser la circulation d'air",
		},
		improve: []string{
			"Optimiser les paramètres de refroidissement",
			"Améliorer la maintenance préventive",
		},
		maintain: "Maintenir les paramètres actuels",
	}},
	{"physical", uptimeRiskActions{
		critical: []string{
			"Renforcer la sécurité physique",
			"Améliorer le système de surveillance",
			"Mettre à jour les procédures d'accès",
		},
		improve: []string{
			"Optimiser les contrôles d'accès",
			"Améliorer la documentation",
		},
		maintain: "Maintenir les procédures actuelles",
	}},
}

func (a uptimeRiskActions) first(score float64) string {
	switch {
	case score < 70:
		return a.critical[0]
	case score < 85:
		return a.improve[0]
	default:
		return a.maintain
	}
}

// uptimeRisks emits one risk finding per site-infrastructure domain, the
// level being the domain score and the mitigation the most urgent action
// from the 70/85 ladder.
func uptimeRisks(power, cooling, physical float64) []entity.Risk {
	scores := map[string]float64{"power": power, "cooling": cooling, "physical": physical}
	risks := make([]entity.Risk, 0, len(uptimeRiskCatalogue))
	for _, entry := range uptimeRiskCatalogue {
		score := scores[entry.component]
		risks = append(risks, entity.Risk{
			Component:  entry.component,
			Level:      score,
			Mitigation: entry.actions.first(score),
		})
	}
	return risks
}
