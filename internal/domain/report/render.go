package report

import (
	"fmt"
	"html"
	"html/template"
	"strings"

	"github.com/readyforswiss/cvscan/internal/domain/analysis"
	"github.com/readyforswiss/cvscan/internal/domain/delivery"
	"github.com/readyforswiss/cvscan/internal/domain/persona"
)

// Color bands by score. Comparisons are numeric on purpose: scores the
// service returns outside 0-100 are not clamped upstream and still land
// in a band here.
const (
	colorPositive   = "#10b981"
	colorCautionary = "#f59e0b"
	colorNegative   = "#ef4444"
)

func bandColor(score int) string {
	switch {
	case score >= 70:
		return colorPositive
	case score >= 40:
		return colorCautionary
	default:
		return colorNegative
	}
}

var reportTmpl = template.Must(template.New("report").Parse(`
<div style="font-family: 'Inter', Helvetica, sans-serif; max-width: 700px; margin: 0 auto; background: white; border: 1px solid #e2e8f0; border-radius: 12px; overflow: hidden; box-shadow: 0 10px 15px -3px rgba(0, 0, 0, 0.05);">

  <div style="background: {{.Primary}}; color: white; padding: 40px; text-align: center;">
    <h2 style="margin:0; font-weight: 800; letter-spacing: -0.5px; font-size: 24px;">{{.Title}}</h2>
    <p style="margin:5px 0 0 0; opacity:0.9; font-size:14px;">{{.Tagline}}</p>
  </div>

  <div style="padding: 40px;">
    <div style="text-align: center; margin-bottom: 40px; padding-bottom: 30px; border-bottom: 1px solid #f1f5f9;">
      <div style="font-size: 72px; font-weight: 900; color: {{.ScoreColor}}; line-height: 1; letter-spacing: -2px;">
        {{.Score}}<span style="font-size: 30px; color: #cbd5e1; font-weight: 600;">/100</span>
      </div>
      <div style="text-transform: uppercase; font-size: 12px; color: #64748b; margin-top: 15px; font-weight: 700; letter-spacing: 1px;">{{.ScoreCaption}}</div>
    </div>

    <div style="background: #f8fafc; padding: 25px; border-left: 4px solid {{.Primary}}; margin-bottom: 40px; border-radius: 0 8px 8px 0;">
      <strong style="color:#0f172a; display:block; margin-bottom:8px; font-size:14px; text-transform:uppercase;">{{.SummaryHeading}}</strong>
      <span style="line-height: 1.6; color: #334155;">{{.Summary}}</span>
    </div>

    <div style="display: grid; grid-template-columns: 1fr 1fr; gap: 40px;">
      <div>
        <h3 style="color: #ef4444; border-bottom: 2px solid #fee2e2; padding-bottom: 10px; font-size: 16px; margin-top:0;">{{.IssuesHeading}}</h3>
        <ul style="padding-left: 20px; color: #475569; font-size: 14px; line-height: 1.6;">
          {{range .Issues}}<li style="margin-bottom: 6px;">{{.}}</li>{{end}}
        </ul>
      </div>
      <div>
        <h3 style="color: #10b981; border-bottom: 2px solid #dcfce7; padding-bottom: 10px; font-size: 16px; margin-top:0;">{{.AdviceHeading}}</h3>
        <ul style="padding-left: 20px; color: #475569; font-size: 14px; line-height: 1.6;">
          {{range .Advice}}<li style="margin-bottom: 6px;">{{.}}</li>{{end}}
        </ul>
      </div>
    </div>

    <div style="margin-top: 50px; text-align: center; background: #fff0f3; padding: 30px; border-radius: 8px; border: 1px solid #ffc9d6;">
      <h3 style="color: {{.Primary}}; margin-top: 0; font-size: 20px;">{{.CTAHeading}}</h3>
      <p style="margin-bottom: 25px; color: #555; font-size: 14px; line-height: 1.5;">{{.CTABody}}</p>
      <a href="{{.CTAURL}}"
         style="background: {{.Primary}}; color: white; text-decoration: none; padding: 15px 30px; border-radius: 6px; font-weight: bold; display: inline-block;">{{.CTALabel}}</a>
    </div>

    <div style="margin-top: 40px; text-align: center; font-size: 12px; color: #94a3b8; border-top: 1px solid #f1f5f9; padding-top: 20px;">{{.FooterLabel}}</div>
  </div>
</div>
`))

type reportData struct {
	Primary        string
	Title          string
	Tagline        string
	Score          int
	ScoreColor     string
	ScoreCaption   string
	SummaryHeading string
	Summary        string
	IssuesHeading  string
	Issues         []string
	AdviceHeading  string
	Advice         []string
	CTAHeading     string
	CTABody        string
	CTAURL         string
	CTALabel       string
	FooterLabel    string
}

// Render produces the report HTML for one analysis. It is a pure
// transformation: same result and branding in, same markup out.
func Render(res analysis.Result, b persona.Branding) (string, error) {
	var sb strings.Builder
	err := reportTmpl.Execute(&sb, reportData{
		Primary:        b.PrimaryColor,
		Title:          b.Title,
		Tagline:        b.Tagline,
		Score:          res.Score,
		ScoreColor:     bandColor(res.Score),
		ScoreCaption:   b.ScoreCaption,
		SummaryHeading: b.SummaryHeading,
		Summary:        res.Summary,
		IssuesHeading:  b.IssuesHeading,
		Issues:         res.MissingKeywords,
		AdviceHeading:  b.AdviceHeading,
		Advice:         res.Recommendations,
		CTAHeading:     b.CTAHeading,
		CTABody:        b.CTABody,
		CTAURL:         b.CTAURL,
		CTALabel:       b.CTALabel,
		FooterLabel:    b.FooterLabel,
	})
	if err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}
	return sb.String(), nil
}

// Banner renders the delivery-status strip shown above the report.
func Banner(o delivery.Outcome, b persona.Branding) string {
	if o.Status == delivery.StatusDelivered {
		return fmt.Sprintf(
			`<div style="background:#dcfce7; color:#14532d; padding:12px; border-radius:6px; text-align:center; margin-bottom:30px; border:1px solid #bbf7d0; font-weight:600;">%s</div>`,
			fmt.Sprintf(b.DeliveredBanner, html.EscapeString(o.Recipient)),
		)
	}
	return fmt.Sprintf(
		`<div style="background:#fff7ed; color:#9a3412; padding:12px; border-radius:6px; text-align:center; margin-bottom:30px; border:1px solid #ffedd5; font-size:13px;">%s</div>`,
		b.FallbackBanner,
	)
}
