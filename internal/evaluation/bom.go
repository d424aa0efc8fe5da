package evaluation

import (
	"strings"

	"github.com/dcexperts/dcaudit/internal/domain/entity"
)

// equipmentKeyword maps a recommendation text fragment to the equipment it
// implies. Matching is case-insensitive substring; every occurrence across
// every recommendation emits its own line item. Line items are deliberately
// not merged: the same UPS recommended under two categories appears twice,
// matching how the audit worksheets are reviewed line by line.
type equipmentKeyword struct {
	keyword   string
	name      string
	quantity  int
	specs     string
	unitPrice float64
	supplier  string
	leadTime  string
}

var equipmentKeywords = []equipmentKeyword{
	{"climatisation", "Climatiseur de précision", 1, "30kW", 18500, "Vertiv", "8 semaines"},
	{"contrôle d'accès", "Contrôleur d'accès", 2, "Biométrique", 1200, "HID Global", "4 semaines"},
	{"ups", "UPS", 1, "60kVA", 24000, "APC by Schneider Electric", "10 semaines"},
	{"pdu", "PDU Intelligent", 4, "32A", 850, "Raritan", "3 semaines"},
	{"groupe électrogène", "Groupe électrogène", 1, "500kVA diesel", 62000, "Caterpillar", "16 semaines"},
	{"vidéosurveillance", "Caméra IP de surveillance", 8, "4K PoE", 450, "Axis", "2 semaines"},
	{"température", "Sonde de température/humidité", 6, "SNMP", 180, "APC by Schneider Electric", "2 semaines"},
}

// GenerateBOM derives equipment line items from recommendation action
// strings. Unmatched strings produce nothing. The TotalPrice invariant
// (quantity times unit price) holds for every emitted item.
func GenerateBOM(recommendations map[string][]string) []entity.BOMItem {
	var items []entity.BOMItem
	for _, category := range SortedCategories(recommendations) {
		for _, action := range recommendations[category] {
			lower := strings.ToLower(action)
			for _, eq := range equipmentKeywords {
				if strings.Contains(lower, eq.keyword) {
					items = append(items, entity.BOMItem{
						Category:   category,
						Name:       eq.name,
						Quantity:   eq.quantity,
						Specs:      eq.specs,
						UnitPrice:  eq.unitPrice,
						TotalPrice: float64(eq.quantity) * eq.unitPrice,
						Supplier:   eq.supplier,
						LeadTime:   eq.leadTime,
					})
				}
			}
		}
	}
	return items
}

// BOMFromRecommendations flattens prioritized recommendations into the
// keyword scan, so the detailed evaluation flow can derive a BOM without
// going through the questionnaire path.
func BOMFromRecommendations(recommendations []entity.Recommendation) []entity.BOMItem {
	byCategory := make(map[string][]string, len(recommendations))
	for _, rec := range recommendations {
		byCategory[rec.Category] = append(byCategory[rec.Category], rec.Items...)
	}
	return GenerateBOM(byCategory)
}

// BOMTotal sums the total price of every line item.
func BOMTotal(items []entity.BOMItem) float64 {
	total := 0.0
	for _, item := range items {
		total += item.TotalPrice
	}
	return total
}
