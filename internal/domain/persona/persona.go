package persona

import "fmt"

// Config bundles everything that differentiates one report variant from
// another: the scoring prompt, the risk-label vocabulary the model is
// allowed to use, and the report/email branding. The pipeline itself is
// persona-agnostic.
type Config struct {
	Name string

	// SystemPrompt is the full instruction block sent as the system
	// message: role definition, rubric, output-language rule and the
	// strict JSON schema.
	SystemPrompt string

	// UserPreamble is prepended to the extracted resume text in the user
	// message.
	UserPreamble string

	// RiskLevels is the closed set of labels the model may return in
	// risk_level, lowercase.
	RiskLevels []string

	// SubjectTemplate is the email subject; %d receives the normalized score.
	SubjectTemplate string

	Branding Branding
}

// Branding holds the presentational knobs of the rendered report.
type Branding struct {
	Title        string
	Tagline      string
	PrimaryColor string

	SummaryHeading string
	ScoreCaption   string
	IssuesHeading  string
	AdviceHeading  string

	CTAHeading string
	CTABody    string
	CTALabel   string
	CTAURL     string

	FooterLabel string

	// Delivery banners. DeliveredBanner receives the recipient address.
	DeliveredBanner string
	FallbackBanner  string
}

// Subject renders the email subject for a given score.
func (c Config) Subject(score int) string {
	return fmt.Sprintf(c.SubjectTemplate, score)
}
