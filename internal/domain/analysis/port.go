package analysis

import (
	"context"

	"github.com/readyforswiss/cvscan/internal/domain/persona"
)

// Analyzer port (interface for the AI scoring call)
type Analyzer interface {
	Analyze(ctx context.Context, text string, p persona.Config) (Result, error)
}
