package llm

import (
	"context"
	"time"

	"github.com/lshigami/Launchpad/internal/monitoring"
	"github.com/rs/zerolog/log"
)

// LoggingProvider logs every call and feeds the LLM metrics.
type LoggingProvider struct {
	inner Provider
}

func WithLogging(p Provider) Provider {
	return &LoggingProvider{inner: p}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.Generate(ctx, req)
	latency := time.Since(start)

	model := l.inner.ModelID()
	if req.Model != "" {
		model = req.Model
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	monitoring.ObserveLLMRequest(purpose, model, status, latency)

	if err != nil {
		log.Warn().Err(err).
			Str("purpose", purpose).
			Str("model", model).
			Dur("latency", latency).
			Msg("llm_request_failed")
		return nil, err
	}

	log.Info().
		Str("purpose", purpose).
		Str("model", resp.Model).
		Dur("latency", latency).
		Int("input_tokens", resp.Usage.InputTokens).
		Int("output_tokens", resp.Usage.OutputTokens).
		Str("stop_reason", resp.StopReason).
		Msg("llm_request")
	return resp, nil
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
