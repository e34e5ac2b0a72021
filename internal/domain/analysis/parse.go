package analysis

import (
	"encoding/json"
	"strings"
)

// rawResult mirrors the JSON schema the system prompt demands. Pointer
// fields distinguish "absent" from zero values.
type rawResult struct {
	Score           *float64  `json:"score"`
	RiskLevel       *string   `json:"risk_level"`
	Summary         *string   `json:"summary"`
	MissingKeywords *[]string `json:"missing_keywords"`
	Recommendations *[]string `json:"recommendations"`
}

// CleanJSON strips markdown code fences some models wrap around JSON
// output even when asked not to.
func CleanJSON(input string) string {
	clean := strings.TrimSpace(input)
	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	} else if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
	}
	clean = strings.TrimLeft(clean, "\r\n")
	clean = strings.TrimSuffix(clean, "```")
	return strings.TrimSpace(clean)
}

// ParseResult validates the model's content string against the schema and
// returns a Result with the score already normalized. riskLevels is the
// closed label set the active persona allows. This is the hard validation
// boundary: nothing unvalidated flows past it.
func ParseResult(content string, riskLevels []string) (Result, error) {
	var raw rawResult
	if err := json.Unmarshal([]byte(CleanJSON(content)), &raw); err != nil {
		return Result{}, &ValidationError{Field: "(content)", Reason: "not a JSON object: " + err.Error()}
	}

	switch {
	case raw.Score == nil:
		return Result{}, &ValidationError{Field: "score", Reason: "missing"}
	case raw.RiskLevel == nil:
		return Result{}, &ValidationError{Field: "risk_level", Reason: "missing"}
	case raw.Summary == nil:
		return Result{}, &ValidationError{Field: "summary", Reason: "missing"}
	case raw.MissingKeywords == nil:
		return Result{}, &ValidationError{Field: "missing_keywords", Reason: "missing"}
	case raw.Recommendations == nil:
		return Result{}, &ValidationError{Field: "recommendations", Reason: "missing"}
	}

	if strings.TrimSpace(*raw.Summary) == "" {
		return Result{}, &ValidationError{Field: "summary", Reason: "empty"}
	}

	level := strings.ToLower(strings.TrimSpace(*raw.RiskLevel))
	if len(riskLevels) > 0 && !contains(riskLevels, level) {
		return Result{}, &ValidationError{
			Field:  "risk_level",
			Reason: "unknown label " + *raw.RiskLevel + " (allowed: " + strings.Join(riskLevels, ", ") + ")",
		}
	}

	return Result{
		Score:           NormalizeScore(*raw.Score),
		RiskLevel:       level,
		Summary:         *raw.Summary,
		MissingKeywords: *raw.MissingKeywords,
		Recommendations: *raw.Recommendations,
	}, nil
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
