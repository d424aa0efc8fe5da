package questionnaire

import (
	"fmt"

	"github.com/dcexperts/dcaudit/internal/domain/entity"
)

var environmentalMaintenance = &entity.QuestionnaireData{
	ID:          "environmental-maintenance",
	Title:       "Maintenance environnementale du Datacenter",
	Reference:   "Section TIA-942 5.3.6",
	Description: "Évaluation complète des aspects de maintenance environnementale d'un datacenter, incluant les systèmes de contrôle climatique, la qualité de l'air et les procédures de maintenance.",
	Help:        "Pour une évaluation précise, consultez les logs de maintenance, les relevés environnementaux et la documentation technique. Vérifiez la conformité avec les normes et les meilleures pratiques du secteur.",
	Checkpoints: []entity.CheckpointSection{
		{
			Title: "Systèmes de Refroidissement",
			Items: []entity.QuestionItem{
				{Question: "Les systèmes de refroidissement sont-ils redondants (N+1 minimum) ?"},
				{Question: "Existe-t-il une maintenance préventive planifiée pour les équipements de refroidissement ?"},
				{Question: "Les points chauds sont-ils surveillés et traités régulièrement ?"},
				{Question: "Le système de refroidissement est-il supervisé 24/7 ?"},
				{Question: "Les allées chaudes et froides sont-elles clairement définies et respectées ?"},
			},
		},
		{
			Title: "Contrôle Environnemental",
			Items: []entity.QuestionItem{
				{Question: "La température est-elle maintenue entre 18°C et 27°C dans les zones critiques ?"},
				{Question: "L'humidité relative est-elle maintenue entre 45% et 55% ?"},
				{Question: "Existe-t-il des capteurs environnementaux redondants ?"},
				{Question: "Les alertes environnementales sont-elles configurées et testées ?"},
				{Question: "La distribution d'air est-elle optimisée pour éviter les zones mortes ?"},
			},
		},
		{
			Title: "Maintenance Préventive",
			Items: []entity.QuestionItem{
				{Question: "Existe-t-il un calendrier de maintenance préventive documenté ?"},
				{Question: "Les filtres à air sont-ils remplacés selon un planning établi ?"},
				{Question: "Les chemins de câbles sont-ils inspectés et nettoyés régulièrement ?"},
				{Question: "Les systèmes de détection/extinction incendie sont-ils testés périodiquement ?"},
				{Question: "Les équipements de secours sont-ils testés mensuellement ?"},
			},
		},
		{
			Title: "Procédures et Documentation",
			Items: []entity.QuestionItem{
				{Question: "Les procédures de maintenance sont-elles documentées et à jour ?"},
				{Question: "Existe-t-il un registre des interventions de maintenance ?"},
				{Question: "Les incidents environnementaux sont-ils analysés et documentés ?"},
				{Question: "Les KPIs environnementaux sont-ils suivis et reportés ?"},
				{Question: "Les recommandations des fabricants sont-elles strictement suivies ?"},
			},
		},
	},
}

var maintenanceQuestionnaire = &entity.QuestionnaireData{
	ID:          "maintenance-questionnaire",
	Title:       "Questionnaire de Maintenance Environnementale",
	Reference:   "TIA-942 Section 5.3.6",
	Description: "Évaluation complète des systèmes de maintenance environnementale du datacenter",
	Help:        "Ce questionnaire évalue la conformité aux standards de maintenance environnementale selon TIA-942",
	Checkpoints: []entity.CheckpointSection{
		{
			Title: "Systèmes de Refroidissement",
			Items: []entity.QuestionItem{
				{Question: "Les systèmes de refroidissement sont-ils régulièrement inspectés et entretenus ?"},
				{Question: "Existe-t-il un programme de maintenance préventive pour les unités CRAC/CRAH ?"},
				{Question: "Les filtres sont-ils remplacés selon un calendrier établi ?"},
				{Question: "Les condenseurs sont-ils nettoyés régulièrement ?"},
				{Question: "Y a-t-il un système de surveillance de la température en temps réel ?"},
			},
		},
		{
			Title: "Contrôle Environnemental",
			Items: []entity.QuestionItem{
				{Question: "La température est-elle maintenue dans les plages recommandées ?"},
				{Question: "L'humidité relative est-elle contrôlée et surveillée ?"},
				{Question: "Existe-t-il des capteurs environnementaux redondants ?"},
				{Question: "Les points chauds sont-ils identifiés et gérés ?"},
				{Question: "La circulation d'air est-elle optimisée (allées chaudes/froides) ?"},
			},
		},
		{
			Title: "Maintenance Préventive",
			Items: []entity.QuestionItem{
				{Question: "Existe-t-il un calendrier de maintenance documenté ?"},
				{Question: "Les équipements critiques sont-ils inspectés mensuellement ?"},
				{Question: "Les procédures d'urgence sont-elles testées régulièrement ?"},
				{Question: "Le personnel est-il formé aux procédures de maintenance ?"},
				{Question: "Les pièces de rechange sont-elles disponibles sur site ?"},
			},
		},
		{
			Title: "Procédures et Documentation",
			Items: []entity.QuestionItem{
				{Question: "Les procédures de maintenance sont-elles documentées ?"},
				{Question: "Les interventions sont-elles enregistrées dans un journal ?"},
				{Question: "Existe-t-il des procédures d'escalade en cas de problème ?"},
				{Question: "Les rapports d'incidents sont-ils analysés régulièrement ?"},
				{Question: "Les modifications des systèmes sont-elles documentées ?"},
			},
		},
	},
}

// Room types and the equipment that can be surveyed in each. The closed
// key set replaces a free-form lookup so an unknown room type fails at
// validation instead of producing an undefined entry.
var roomEquipmentOptions = map[string][]string{
	"Salle Serveur": {
		"Serveurs (rack, lame, tour)",
		"Onduleurs (UPS)",
	},
	"Salle Énergie": {
		"Onduleurs (UPS)",
		"Batteries de secours",
	},
	"Salle Supervision": {
		"Moniteurs de surveillance haute résolution",
		"Postes de travail avec logiciels DCIM",
	},
}

// ValidRoomType reports whether the room type is part of the survey model.
func ValidRoomType(roomType string) bool {
	_, ok := roomEquipmentOptions[roomType]
	return ok
}

// EquipmentOptions lists the equipment choices for a room type.
func EquipmentOptions(roomType string) ([]string, error) {
	options, ok := roomEquipmentOptions[roomType]
	if !ok {
		return nil, fmt.Errorf("%w: room type %q", ErrNotFound, roomType)
	}
	return options, nil
}
