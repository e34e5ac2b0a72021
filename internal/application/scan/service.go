package scan

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/readyforswiss/cvscan/internal/application"
	"github.com/readyforswiss/cvscan/internal/domain/analysis"
	"github.com/readyforswiss/cvscan/internal/domain/delivery"
	"github.com/readyforswiss/cvscan/internal/domain/document"
	"github.com/readyforswiss/cvscan/internal/domain/persona"
	"github.com/readyforswiss/cvscan/internal/domain/report"
)

// Service implements the scan use-case: extraction → analysis →
// rendering → delivery, strictly sequential per request. It holds no
// mutable state and is safe for concurrent use.
type Service struct {
	Extractor document.Extractor
	Analyzer  analysis.Analyzer
	Sender    delivery.Sender
	Clock     application.Clock

	// DefaultPersona names the preset used when the request does not pick
	// one. OperatorBCC receives a blind copy of every delivered report.
	DefaultPersona string
	OperatorBCC    string

	// Per-call timeouts for the two suspension points. The upstream APIs
	// have none of their own, so these bound worst-case request latency.
	AITimeout   time.Duration
	MailTimeout time.Duration
}

// ScanCommand carries one uploaded resume through the pipeline.
type ScanCommand struct {
	FileName    string
	ContentType string
	Content     []byte
	Recipient   string
	Persona     string
}

// ScanResult is what the HTTP layer renders: the report plus the
// delivery outcome. The report is always present on success regardless
// of whether the email went out.
type ScanResult struct {
	ID         string           `json:"id"`
	Persona    string           `json:"persona"`
	Analysis   analysis.Result  `json:"analysis"`
	ReportHTML string           `json:"-"`
	Outcome    delivery.Outcome `json:"outcome"`
	DurationMS int64            `json:"duration_ms"`
}

// Persona resolves the preset for a request, falling back to the
// configured default for empty or unknown names.
func (s *Service) Persona(name string) persona.Config {
	if name != "" {
		if p, ok := persona.Preset(name); ok {
			return p
		}
	}
	if p, ok := persona.Preset(s.DefaultPersona); ok {
		return p
	}
	p, _ := persona.Preset(persona.Romandie)
	return p
}

// Scan runs the full pipeline for one request.
func (s *Service) Scan(ctx context.Context, cmd ScanCommand) (ScanResult, error) {
	start := s.Clock.Now()
	id := uuid.New().String()
	p := s.Persona(cmd.Persona)

	text, err := s.Extractor.Extract(document.SourceDocument{
		FileName:    cmd.FileName,
		ContentType: cmd.ContentType,
		Content:     cmd.Content,
	})
	if err != nil {
		return ScanResult{ID: id}, fmt.Errorf("extract %s: %w", cmd.FileName, err)
	}

	aiCtx, cancel := context.WithTimeout(ctx, s.aiTimeout())
	defer cancel()
	res, err := s.Analyzer.Analyze(aiCtx, text, p)
	if err != nil {
		return ScanResult{ID: id}, fmt.Errorf("analyze: %w", err)
	}

	html, err := report.Render(res, p.Branding)
	if err != nil {
		return ScanResult{ID: id}, err
	}

	outcome := s.deliver(ctx, p, res.Score, cmd.Recipient, html)

	return ScanResult{
		ID:         id,
		Persona:    p.Name,
		Analysis:   res,
		ReportHTML: html,
		Outcome:    outcome,
		DurationMS: s.Clock.Now().Sub(start).Milliseconds(),
	}, nil
}

// deliver attempts the email send. A provider failure is recovered here:
// it downgrades the outcome to fallback and never fails the request.
func (s *Service) deliver(ctx context.Context, p persona.Config, score int, recipient, html string) delivery.Outcome {
	mailCtx, cancel := context.WithTimeout(ctx, s.mailTimeout())
	defer cancel()

	err := s.Sender.Send(mailCtx, delivery.Message{
		To:      recipient,
		BCC:     s.OperatorBCC,
		Subject: p.Subject(score),
		HTML:    html,
	})
	if err != nil {
		log.Printf("delivery failed, falling back to inline report: recipient=%s err=%v", recipient, err)
		return delivery.Outcome{
			Status:    delivery.StatusFallback,
			Recipient: recipient,
			Message:   err.Error(),
		}
	}
	return delivery.Outcome{
		Status:    delivery.StatusDelivered,
		Recipient: recipient,
		Message:   "report emailed to " + recipient,
	}
}

func (s *Service) aiTimeout() time.Duration {
	if s.AITimeout > 0 {
		return s.AITimeout
	}
	return 60 * time.Second
}

func (s *Service) mailTimeout() time.Duration {
	if s.MailTimeout > 0 {
		return s.MailTimeout
	}
	return 15 * time.Second
}
