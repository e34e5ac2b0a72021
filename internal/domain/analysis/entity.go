package analysis

import "math"

// Result is the validated output of one AI scoring call. Every field is
// required; a response missing any of them never becomes a Result.
type Result struct {
	Score           int      `json:"score"`
	RiskLevel       string   `json:"risk_level"`
	Summary         string   `json:"summary"`
	MissingKeywords []string `json:"missing_keywords"`
	Recommendations []string `json:"recommendations"`
}

// NormalizeScore rescales a raw score onto the canonical 0-100 integer
// scale. Models answer either in fractional form (0.72) or already as a
// percentage (72); anything below 1 is treated as a fraction.
//
// Exactly 1 is ambiguous (1/100 vs 100/100) and deliberately passes
// through unchanged. The result is not clamped either: out-of-range
// values the service returns are kept as-is and the renderer's numeric
// band thresholds still apply to them.
func NormalizeScore(raw float64) int {
	if raw < 1 {
		return int(math.Round(raw * 100))
	}
	return int(math.Round(raw))
}
