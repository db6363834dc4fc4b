// Package ai bridges the computed assessment to a chat model so users can
// interrogate their dataset in plain language. The dashboard never depends on
// an answer coming back: every failure degrades to a warning while the core
// analysis stays up.
package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"watermetal/domain/risk"
	"watermetal/internal"
	"watermetal/ports"
)

// FailureReason says why the assistant could not answer.
type FailureReason string

const (
	ReasonNetwork   FailureReason = "network"
	ReasonAuth      FailureReason = "auth"
	ReasonQuota     FailureReason = "quota"
	ReasonMalformed FailureReason = "malformed_response"
)

// UnavailableWarning is shown on the dashboard whenever an answer could not
// be produced.
const UnavailableWarning = "AI not available (no API credits). Core analysis is working."

// AskOutcome carries one question/answer exchange, or the classified failure
// that replaced the answer.
type AskOutcome struct {
	Question string
	Answer   string
	Failed   bool
	Reason   FailureReason
	Warning  string
}

// Assistant answers questions about a computed assessment bundle.
type Assistant struct {
	client    ports.LLMClient
	model     string
	maxTokens int
	logger    *internal.Logger
}

// NewAssistant wires a chat client. A nil client is allowed and produces a
// degraded assistant that always returns the unavailable warning.
func NewAssistant(client ports.LLMClient, model string, maxTokens int, logger *internal.Logger) *Assistant {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &Assistant{
		client:    client,
		model:     model,
		maxTokens: maxTokens,
		logger:    logger,
	}
}

// Available reports whether a chat client is configured at all.
func (a *Assistant) Available() bool {
	return a.client != nil
}

// Ask builds the data context for the bundle, sends the question, and returns
// either the answer or a classified failure. It never returns an error.
func (a *Assistant) Ask(ctx context.Context, bundle *risk.Bundle, question string) AskOutcome {
	outcome := AskOutcome{Question: question}

	if a.client == nil {
		a.logger.Debug("Assistant asked without a configured client")
		outcome.Failed = true
		outcome.Reason = ReasonAuth
		outcome.Warning = UnavailableWarning
		return outcome
	}

	prompt := BuildPrompt(bundle, question)
	answer, err := a.client.ChatCompletion(ctx, a.model, prompt, a.maxTokens)
	if err != nil {
		reason := classifyFailure(err)
		a.logger.Warn("Assistant request failed (%s): %v", reason, err)
		outcome.Failed = true
		outcome.Reason = reason
		outcome.Warning = UnavailableWarning
		return outcome
	}

	outcome.Answer = answer
	return outcome
}

// BuildPrompt frames the user question with the computed data context.
func BuildPrompt(bundle *risk.Bundle, question string) string {
	return fmt.Sprintf(
		"You are an environmental scientist.\nUse the data below to answer the user's question.\n\n%s\n\nQuestion: %s",
		BuildContext(bundle), question,
	)
}

// BuildContext renders the bundle as the labeled plain-text blocks the model
// is prompted with: station PERI values, per-metal risk shares, hotspots.
func BuildContext(bundle *risk.Bundle) string {
	var b strings.Builder

	b.WriteString("PERI values:\n")
	b.WriteString("S.No  PERI\n")
	for _, r := range bundle.Risks {
		fmt.Fprintf(&b, "%-5d %.2f\n", r.StationNo, r.PERI)
	}

	b.WriteString("\nMetal risk:\n")
	b.WriteString("Metal  Total Risk  Percent\n")
	for _, c := range bundle.Contributions {
		fmt.Fprintf(&b, "%-6s %-11.2f %.2f\n", c.Metal, c.TotalRisk, c.Percent)
	}

	b.WriteString("\nHotspots:\n")
	b.WriteString("S.No  PERI\n")
	for _, h := range bundle.Hotspots {
		fmt.Fprintf(&b, "%-5d %.2f\n", h.StationNo, h.PERI)
	}

	return b.String()
}

func classifyFailure(err error) FailureReason {
	var apiErr *ports.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Status {
		case http.StatusUnauthorized, http.StatusForbidden:
			return ReasonAuth
		case http.StatusPaymentRequired, http.StatusTooManyRequests:
			return ReasonQuota
		default:
			return ReasonNetwork
		}
	}
	if errors.Is(err, ports.ErrMalformedResponse) {
		return ReasonMalformed
	}
	return ReasonNetwork
}
