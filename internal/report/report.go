package report

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jmcrae/studytrack/internal/llm"
	"github.com/jmcrae/studytrack/internal/llm/prompts"
	"github.com/jmcrae/studytrack/internal/model"
)

// Builder turns attempt records into a mistake report. A configured generator
// is tried first; any failure or empty reply falls back to the deterministic
// template.
type Builder struct {
	gen llm.Generator
	log *slog.Logger
}

// NewBuilder creates a Builder. gen may be nil, in which case every report
// uses the fallback template.
func NewBuilder(gen llm.Generator, log *slog.Logger) *Builder {
	if log == nil {
		log = slog.Default()
	}
	return &Builder{gen: gen, log: log}
}

// Generate produces the report for the given attempts. It never fails: when
// the generator is missing, errors, or returns empty text, the deterministic
// fallback is returned instead.
func (b *Builder) Generate(ctx context.Context, attempts []model.AttemptRecord) string {
	formatted := FormatAttempts(attempts)
	if b.gen != nil {
		text, err := b.gen.Generate(ctx, prompts.ReportSystem, formatted)
		switch {
		case err == nil && text != "":
			return text
		case errors.Is(err, llm.ErrUnavailable):
			b.log.Warn("generation unavailable, using fallback report", "error", err)
		case err != nil:
			b.log.Warn("generation failed, using fallback report", "error", err)
		default:
			b.log.Warn("generation returned empty text, using fallback report")
		}
	}
	return BuildFallback(attempts)
}
