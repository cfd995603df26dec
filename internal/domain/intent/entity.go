// internal/domain/intent/entity.go
package intent

// Intent represents the structured interpretation of a free-text shopping
// request. Either Category or at least one keyword is always set for an
// intent produced by the classifier.
type Intent struct {
	Category    string      `json:"category,omitempty"`
	Keywords    []string    `json:"keywords,omitempty"`
	Constraints Constraints `json:"constraints"`
}

// Constraints captures the numeric and textual qualifiers extracted from an
// utterance. Zero values mean "not stated".
type Constraints struct {
	MaxBudget int64    `json:"max_budget,omitempty"` // Budget ceiling in cents
	Quantity  int      `json:"quantity,omitempty"`
	Modifiers []string `json:"modifiers,omitempty"`
}

// HasSearchTerms reports whether the intent carries enough signal for a
// product search.
func (i *Intent) HasSearchTerms() bool {
	return i != nil && (i.Category != "" || len(i.Keywords) > 0)
}

// MatchesBudget reports whether a price in cents fits the stated budget.
// An unstated budget matches everything.
func (c Constraints) MatchesBudget(price int64) bool {
	return c.MaxBudget <= 0 || price <= c.MaxBudget
}
