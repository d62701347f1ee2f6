package services

import (
	"context"
	"errors"
)

// MaxOutputTokens caps the length of every generated summary.
const MaxOutputTokens = 300

var errNoChoices = errors.New("no choices in response")

// Result is the outcome of one completion call: Success or Failure.
type Result interface {
	isResult()
}

// Success carries the provider's text exactly as returned.
type Success struct {
	Summary string
}

// Failure carries a human-readable description of what went wrong.
type Failure struct {
	Message string
}

func (Success) isResult() {}
func (Failure) isResult() {}

// FailureFrom converts any error raised while contacting the provider.
func FailureFrom(err error) Failure {
	return Failure{Message: err.Error()}
}

// Completer sends a payload as the sole user message and reports the outcome.
// Implementations never retry.
type Completer interface {
	Summarize(ctx context.Context, payload string) Result
}
