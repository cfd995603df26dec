// internal/domain/intent/service.go
package intent

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/your-org/shopping-assistant/internal/pkg/errs"
)

// Service turns free-text utterances into structured intents. It is
// stateless and deterministic; a generative classification provider can be
// layered in front of it without changing the contract.
type Service struct {
	log *logrus.Logger
}

// NewService creates a new intent classification service
func NewService(log *logrus.Logger) *Service {
	return &Service{log: log}
}

// categoryTerms maps recognizable words to canonical catalog categories.
var categoryTerms = map[string]string{
	"milk":       "dairy",
	"cheese":     "dairy",
	"yogurt":     "dairy",
	"butter":     "dairy",
	"dairy":      "dairy",
	"bread":      "bakery",
	"bagel":      "bakery",
	"bakery":     "bakery",
	"apple":      "produce",
	"apples":     "produce",
	"banana":     "produce",
	"bananas":    "produce",
	"vegetable":  "produce",
	"vegetables": "produce",
	"fruit":      "produce",
	"fruits":     "produce",
	"produce":    "produce",
	"chicken":    "meat",
	"beef":       "meat",
	"pork":       "meat",
	"meat":       "meat",
	"fish":       "seafood",
	"shrimp":     "seafood",
	"salmon":     "seafood",
	"seafood":    "seafood",
	"pasta":      "pantry",
	"sauce":      "pantry",
	"rice":       "pantry",
	"cereal":     "pantry",
	"flour":      "pantry",
	"pantry":     "pantry",
	"pizza":      "frozen",
	"frozen":     "frozen",
	"soda":       "beverages",
	"juice":      "beverages",
	"coffee":     "beverages",
	"tea":        "beverages",
	"water":      "beverages",
	"beverages":  "beverages",
	"chips":      "snacks",
	"cookies":    "snacks",
	"snacks":     "snacks",
	"detergent":  "household",
	"paper":      "household",
	"towels":     "household",
	"household":  "household",
	"shampoo":    "personal-care",
	"soap":       "personal-care",
	"toothpaste": "personal-care",
}

// knownModifiers are free-form qualifiers worth carrying downstream.
var knownModifiers = map[string]bool{
	"organic":    true,
	"fresh":      true,
	"cheap":      true,
	"cheapest":   true,
	"bulk":       true,
	"large":      true,
	"small":      true,
	"glutenfree": true,
	"sugarfree":  true,
	"whole":      true,
	"lowfat":     true,
}

// stopWords are tokens that carry no search signal.
var stopWords = map[string]bool{
	"i": true, "a": true, "an": true, "the": true, "me": true, "my": true,
	"to": true, "of": true, "and": true, "or": true, "for": true, "in": true,
	"on": true, "at": true, "some": true, "any": true, "want": true,
	"need": true, "buy": true, "get": true, "find": true, "show": true,
	"please": true, "would": true, "like": true, "looking": true,
	"with": true, "can": true, "you": true, "is": true, "are": true,
	"under": true, "below": true, "less": true, "than": true, "about": true,
	"budget": true, "dollars": true, "bucks": true,
}

var (
	budgetPattern   = regexp.MustCompile(`(?i)(?:under|below|less than|within|max|up to)\s*\$?\s*(\d+(?:\.\d{1,2})?)|\$\s*(\d+(?:\.\d{1,2})?)\s*(?:budget|max|or less)?`)
	quantityPattern = regexp.MustCompile(`(?i)\b(\d+)\s*(?:x|packs?|bottles?|cans?|boxes?|bags?|items?|pieces?|gallons?|dozen|lbs?|pounds?)\b`)
	tokenPattern    = regexp.MustCompile(`[a-z]+`)
)

// Classify parses an utterance into an Intent. The utterance must be
// non-empty after trimming; constraint extraction is best-effort and never
// fails on its own.
func (s *Service) Classify(utterance string) (*Intent, error) {
	trimmed := strings.TrimSpace(utterance)
	if trimmed == "" {
		return nil, errs.NewValidation("utterance", "must not be empty")
	}

	result := &Intent{}
	lowered := strings.ToLower(trimmed)

	// Budget ceiling, e.g. "under $20" or "$15 budget"
	if m := budgetPattern.FindStringSubmatch(lowered); m != nil {
		raw := m[1]
		if raw == "" {
			raw = m[2]
		}
		if amount, err := strconv.ParseFloat(raw, 64); err == nil && amount > 0 {
			result.Constraints.MaxBudget = int64(amount*100 + 0.5)
		}
	}

	// Desired quantity, e.g. "2 gallons of milk". A unit word is required so
	// budget amounts are not mistaken for quantities.
	if m := quantityPattern.FindStringSubmatch(lowered); m != nil {
		if qty, err := strconv.Atoi(m[1]); err == nil && qty > 0 {
			result.Constraints.Quantity = qty
		}
	}

	// Tokenize and classify each term once, preserving order.
	seen := map[string]bool{}
	for _, token := range tokenPattern.FindAllString(lowered, -1) {
		if seen[token] || stopWords[token] {
			continue
		}
		seen[token] = true

		if category, ok := categoryTerms[token]; ok && result.Category == "" {
			result.Category = category
		}
		if knownModifiers[token] {
			result.Constraints.Modifiers = append(result.Constraints.Modifiers, token)
			continue
		}
		result.Keywords = append(result.Keywords, token)
	}

	if !result.HasSearchTerms() {
		// Nothing usable survived filtering; keep the raw tokens so the
		// search engine still has terms to work with.
		for _, token := range tokenPattern.FindAllString(lowered, -1) {
			result.Keywords = append(result.Keywords, token)
		}
	}
	if !result.HasSearchTerms() {
		return nil, errs.NewValidation("utterance", "contains no recognizable search terms")
	}

	s.log.WithFields(logrus.Fields{
		"category": result.Category,
		"keywords": len(result.Keywords),
		"budget":   result.Constraints.MaxBudget,
	}).Debug("Classified utterance")

	return result, nil
}
