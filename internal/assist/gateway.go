// Package assist wraps the external text-generation service used for article
// summaries and pre-match analysis. Its operations never fail: when the
// service is missing or misbehaves they return a fixed fallback text.
package assist

import (
	"context" // Deadlines for the external call
	"fmt"     // Prompt formatting
	"strings" // Blank response detection
	"time"    // Call timeout

	"github.com/pkg/errors"      // Error wrapping
	"github.com/sirupsen/logrus" // Structured logging
)

// Fallback texts returned whenever the external call cannot produce a result
const (
	SummaryFallback  = "Summary unavailable."
	AnalysisFallback = "Analysis currently unavailable. Please check back later."
)

// DefaultTimeout bounds a single generation call when none is configured
const DefaultTimeout = 20 * time.Second

// Request is what gets sent to the text-generation backend
type Request struct {
	Prompt      string   `json:"prompt"`          // Full instruction text
	Temperature float32  `json:"temperature"`     // Sampling temperature
	TopP        *float32 `json:"top_p,omitempty"` // Nucleus sampling, unset when nil
}

// Generator is a text-generation backend
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// GeneratorFunc adapts a function to the Generator interface
type GeneratorFunc func(ctx context.Context, req Request) (string, error)

// Generate calls f
func (f GeneratorFunc) Generate(ctx context.Context, req Request) (string, error) {
	return f(ctx, req)
}

// Gateway turns content into generated text, degrading to fallback strings
type Gateway struct {
	gen     Generator     // nil when no API key is configured
	timeout time.Duration // Upper bound for one call
}

// NewGateway builds a gateway. A nil generator makes every call return its fallback.
func NewGateway(gen Generator, timeout time.Duration) *Gateway {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Gateway{gen: gen, timeout: timeout}
}

// Available reports whether a backend is configured
func (g *Gateway) Available() bool {
	return g.gen != nil
}

// Summarize asks for a three bullet point summary of an article body
func (g *Gateway) Summarize(ctx context.Context, content string) string {
	req := Request{
		Prompt:      fmt.Sprintf("Summarize the following sports news content into 3 bullet points: \n\n%s", content),
		Temperature: 0.5,
	}
	return g.generate(ctx, "summary", req, SummaryFallback)
}

// Analyze asks for a short pre-match analysis with players to watch and a prediction
func (g *Gateway) Analyze(ctx context.Context, teamA, teamB, sport string) string {
	topP := float32(0.8)
	req := Request{
		Prompt: fmt.Sprintf("Provide a professional, brief pre-match analysis for a %s game between %s and %s. "+
			"Mention key players to watch and a likely outcome prediction. Keep it under 100 words.", sport, teamA, teamB),
		Temperature: 0.7,
		TopP:        &topP,
	}
	return g.generate(ctx, "analysis", req, AnalysisFallback)
}

// generate runs one bounded call and converts every failure into the fallback text
func (g *Gateway) generate(ctx context.Context, op string, req Request, fallback string) (text string) {
	if g.gen == nil {
		return fallback // No backend configured
	}
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			logrus.WithFields(logrus.Fields{"op": op, "panic": r}).Error("AI request panicked")
			text = fallback
		}
	}()

	out, err := g.gen.Generate(ctx, req)
	if err == nil && strings.TrimSpace(out) == "" {
		err = errors.New("empty response")
	}
	if err == nil && ctx.Err() != nil {
		err = ctx.Err() // Backend ignored the deadline
	}
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"op":    op,          // summary or analysis
			"error": err.Error(), // Error message
		}).Error("AI request failed")
		return fallback
	}
	return out
}
