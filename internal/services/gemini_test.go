package services

import (
	"errors"
	"testing"

	"github.com/google/generative-ai-go/genai"
)

func TestFirstCandidateText(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []genai.Part{genai.Text("Plain "), genai.Text("summary.")}}},
			{Content: &genai.Content{Parts: []genai.Part{genai.Text("ignored")}}},
		},
	}

	got, err := firstCandidateText(resp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Plain summary." {
		t.Fatalf("expected first candidate text, got %q", got)
	}
}

func TestFirstCandidateText_Empty(t *testing.T) {
	tests := []struct {
		name string
		resp *genai.GenerateContentResponse
	}{
		{"nil response", nil},
		{"no candidates", &genai.GenerateContentResponse{}},
		{"nil content", &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := firstCandidateText(tc.resp)
			if !errors.Is(err, errNoChoices) {
				t.Fatalf("expected errNoChoices, got %v", err)
			}
		})
	}
}
