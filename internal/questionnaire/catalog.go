// Package questionnaire holds the immutable questionnaire templates and
// their scoring weight tables. Templates live in code: they are reference
// content shipped with the product, not user data.
package questionnaire

import (
	"errors"
	"fmt"

	"github.com/dcexperts/dcaudit/internal/domain/entity"
)

// ErrNotFound is returned when a questionnaire id is unknown. Callers must
// reject the operation rather than score an empty questionnaire.
var ErrNotFound = errors.New("questionnaire not found")

// Catalog resolves questionnaire templates and their weight tables by id.
type Catalog struct {
	templates map[string]*entity.QuestionnaireData
	weights   map[string]map[string]float64
}

// NewCatalog builds the catalog with all shipped questionnaires.
func NewCatalog() *Catalog {
	c := &Catalog{
		templates: make(map[string]*entity.QuestionnaireData),
		weights:   make(map[string]map[string]float64),
	}
	c.register(environmentalMaintenance, sectionWeights)
	c.register(maintenanceQuestionnaire, sectionWeights)
	return c
}

func (c *Catalog) register(q *entity.QuestionnaireData, weights map[string]float64) {
	c.templates[q.ID] = q
	c.weights[q.ID] = weights
}

// Get returns the questionnaire template for the given id.
func (c *Catalog) Get(id string) (*entity.QuestionnaireData, error) {
	q, ok := c.templates[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return q, nil
}

// Weights returns the category weight table for the given questionnaire.
func (c *Catalog) Weights(id string) (map[string]float64, error) {
	w, ok := c.weights[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return w, nil
}

// List returns every registered questionnaire, in id order handled by the
// caller.
func (c *Catalog) List() []*entity.QuestionnaireData {
	out := make([]*entity.QuestionnaireData, 0, len(c.templates))
	for _, q := range c.templates {
		out = append(out, q)
	}
	return out
}

// sectionWeights weights the checkpoint sections shared by the maintenance
// questionnaires. Weights sum to 1.0; a section absent from a questionnaire
// is simply never answered and drops out of the weighted average.
var sectionWeights = map[string]float64{
	"Systèmes de Refroidissement": 0.35,
	"Contrôle Environnemental":    0.25,
	"Maintenance Préventive":      0.20,
	"Procédures et Documentation": 0.20,
}
