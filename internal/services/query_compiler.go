package services

import "strings"

// QuizAnswers is a completed (or partially completed) quiz answer set.
// Zero-value fields simply contribute no clause when compiled.
type QuizAnswers struct {
	Recipient    string
	Relationship string
	AgeBand      string
	Interests    []string
	Budget       string
	Personality  string
}

var budgetClauses = map[string]string{
	"under25": "under £25",
	"25to50":  "£25-50",
	"50to100": "£50-100",
	"over100": "over £100",
}

var personalityClauses = map[string]string{
	"romantic":    "romantic and sentimental gifts",
	"practical":   "practical and useful gifts",
	"adventurous": "experience-based or adventurous gifts",
	"funny":       "fun and playful gifts",
	"luxury":      "luxurious and indulgent gifts",
}

var ageBandClauses = map[string]string{
	"under25": "they're in their early 20s",
	"25to34":  "they're in their late 20s or early 30s",
	"35to44":  "they're in their late 30s or early 40s",
	"45plus":  "they're over 45",
}

// CompileQuery turns quiz answers into the natural-language prompt sent to
// the suggestion provider. Deterministic and side-effect free; the output is
// the literal text of a paid API call, so clause wording is fixed.
func CompileQuery(a QuizAnswers) string {
	parts := []string{"Valentine's gift for my " + a.Recipient}

	switch a.Relationship {
	case "new":
		parts = append(parts, "we're in a new relationship")
	case "longterm":
		parts = append(parts, "we've been together for years")
	}

	if clause, ok := ageBandClauses[a.AgeBand]; ok {
		parts = append(parts, clause)
	}

	if len(a.Interests) > 0 {
		parts = append(parts, "they love "+strings.Join(a.Interests, ", "))
	}

	if a.Budget != "" && a.Budget != "any" {
		if clause, ok := budgetClauses[a.Budget]; ok {
			parts = append(parts, "budget "+clause)
		}
	}

	if clause, ok := personalityClauses[a.Personality]; ok {
		parts = append(parts, "prefer "+clause)
	}

	return strings.Join(parts, ". ")
}
