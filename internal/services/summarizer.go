package services

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

const (
	EmptyInputWarning = "Please paste some legal text to summarize!"
	BusyWarning       = "A summary is already being generated. Please wait for it to finish."
	SuccessNotice     = "Summary generated successfully!"
)

type OutcomeKind int

const (
	// OutcomeCompleted means the provider was called; Result holds the answer.
	OutcomeCompleted OutcomeKind = iota
	OutcomeEmptyInput
	OutcomeBusy
)

type Outcome struct {
	Kind   OutcomeKind
	Result Result
}

// ErrorMessage is the text shown to the user for a failed call.
func ErrorMessage(f Failure) string {
	return "An error occurred: " + f.Message
}

// Summarizer runs one trigger: validate, build the prompt, call the provider.
type Summarizer struct {
	client Completer
	guard  InFlightGuard
	log    *zap.Logger
}

func NewSummarizer(client Completer, guard InFlightGuard, log *zap.Logger) *Summarizer {
	return &Summarizer{
		client: client,
		guard:  guard,
		log:    log,
	}
}

func (s *Summarizer) Run(ctx context.Context, session, text string) Outcome {
	if strings.TrimSpace(text) == "" {
		return Outcome{Kind: OutcomeEmptyInput}
	}

	payload := BuildPrompt(text)

	token, acquired, err := s.guard.Acquire(ctx, session)
	if err != nil {
		s.log.Warn("in-flight guard unavailable", zap.Error(err))
		return Outcome{Kind: OutcomeCompleted, Result: FailureFrom(err)}
	}
	if !acquired {
		return Outcome{Kind: OutcomeBusy}
	}
	defer func() {
		// The request context may already be gone; the lock must still be freed.
		if err := s.guard.Release(context.WithoutCancel(ctx), session, token); err != nil {
			s.log.Warn("failed to release in-flight guard", zap.Error(err))
		}
	}()

	// Failures are logged by the caller, which knows the request ID.
	result := s.client.Summarize(ctx, payload)
	if r, ok := result.(Success); ok {
		s.log.Info("summary generated",
			zap.Int("input_bytes", len(text)),
			zap.Int("summary_bytes", len(r.Summary)))
	}

	return Outcome{Kind: OutcomeCompleted, Result: result}
}
