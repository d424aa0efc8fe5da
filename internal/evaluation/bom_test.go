package evaluation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateBOMKeywordMatching(t *testing.T) {
	recommendations := map[string][]string{
		"Refroidissement": {"Installer une unité de climatisation redondante"},
		"Sécurité":        {"Installer un système de contrôle d'accès biométrique"},
		"Alimentation": {
			"Installer un système UPS redondant",
			"Ajouter des PDUs intelligents",
		},
	}

	items := GenerateBOM(recommendations)

	names := make(map[string]bool)
	for _, item := range items {
		names[item.Name] = true
	}
	assert.True(t, names["Climatiseur de précision"])
	assert.True(t, names["Contrôleur d'accès"])
	assert.True(t, names["UPS"])
	assert.True(t, names["PDU Intelligent"])
}

func TestGenerateBOMTotalPriceInvariant(t *testing.T) {
	recommendations := map[string][]string{
		"Alimentation": {
			"Installer un système UPS redondant",
			"Mettre en place un groupe électrogène",
			"Ajouter des PDUs intelligents",
		},
		"Refroidissement": {
			"Installer une unité de climatisation redondante",
			"Mettre en place un système de surveillance de la température",
		},
	}

	items := GenerateBOM(recommendations)
	require.NotEmpty(t, items)

	for _, item := range items {
		assert.Positive(t, item.Quantity)
		assert.InDelta(t, float64(item.Quantity)*item.UnitPrice, item.TotalPrice, 1e-9,
			"totalPrice must equal quantity*unitPrice for %s", item.Name)
	}
}

func TestGenerateBOMDuplicatesAreNotMerged(t *testing.T) {
	// The same keyword under two categories yields two line items; the
	// worksheets are reviewed line by line and quantities are never
	// merged.
	recommendations := map[string][]string{
		"Alimentation": {"Installer un système UPS redondant"},
		"Sécurité":     {"Prévoir un UPS dédié pour le système de contrôle d'accès"},
	}

	items := GenerateBOM(recommendations)

	upsCount := 0
	for _, item := range items {
		if item.Name == "UPS" {
			upsCount++
		}
	}
	assert.Equal(t, 2, upsCount)
}

func TestGenerateBOMUnmatchedActionsAreDropped(t *testing.T) {
	recommendations := map[string][]string{
		"Infrastructure": {"Renforcer la structure du plancher technique"},
	}

	items := GenerateBOM(recommendations)
	assert.Empty(t, items)
}

func TestGenerateBOMCaseInsensitive(t *testing.T) {
	recommendations := map[string][]string{
		"Alimentation": {"installer un système ups redondant"},
	}

	items := GenerateBOM(recommendations)
	require.Len(t, items, 1)
	assert.Equal(t, "UPS", items[0].Name)
}

func TestBOMTotal(t *testing.T) {
	recommendations := map[string][]string{
		"Alimentation": {"Ajouter des PDUs intelligents"},
	}

	items := GenerateBOM(recommendations)
	require.Len(t, items, 1)
	assert.InDelta(t, items[0].TotalPrice, BOMTotal(items), 1e-9)
}

func TestBOMDeterministicOrder(t *testing.T) {
	recommendations := map[string][]string{
		"Sécurité":        {"Installer un système de contrôle d'accès biométrique"},
		"Alimentation":    {"Installer un système UPS redondant"},
		"Refroidissement": {"Installer une unité de climatisation redondante"},
	}

	first := GenerateBOM(recommendations)
	second := GenerateBOM(recommendations)
	assert.Equal(t, first, second, "map iteration order must not leak into output")
}
