package entity

// QuestionItem is a single yes/no checklist question.
type QuestionItem struct {
	Question string `json:"question"`
}

// CheckpointSection groups questions under a named audit checkpoint.
// Section order is display order only; scoring looks sections up by title.
type CheckpointSection struct {
	Title string         `json:"title"`
	Items []QuestionItem `json:"items"`
}

// QuestionnaireData is an immutable questionnaire template. Templates are
// defined once in the catalog and never mutated at runtime.
type QuestionnaireData struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Reference   string              `json:"reference"`
	Description string              `json:"description"`
	Checkpoints []CheckpointSection `json:"checkpoints"`
	Help        string              `json:"help"`
}

// Section returns the checkpoint section with the given title, or nil.
func (q *QuestionnaireData) Section(title string) *CheckpointSection {
	for i := range q.Checkpoints {
		if q.Checkpoints[i].Title == title {
			return &q.Checkpoints[i]
		}
	}
	return nil
}

// QuestionCount returns the total number of questions across all sections.
func (q *QuestionnaireData) QuestionCount() int {
	n := 0
	for _, s := range q.Checkpoints {
		n += len(s.Items)
	}
	return n
}

// ResponseMap holds yes/no answers keyed "<section title>-<question index>".
// Only answered questions have entries; an absent key means unanswered, which
// is excluded from scoring denominators rather than treated as "no".
type ResponseMap map[string]bool

// ScoredResponse is one answer of a graded questionnaire, keyed
// "<category>_<question id>". Score is on the 0-5 scale.
type ScoredResponse struct {
	Answer string  `json:"answer"`
	Score  float64 `json:"score"`
}

// ScoredResponseMap holds graded answers for the detailed audit flow.
// This is a distinct input model from ResponseMap and is never reconciled
// with it; the two questionnaire products score on different scales.
type ScoredResponseMap map[string]ScoredResponse
