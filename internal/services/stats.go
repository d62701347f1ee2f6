package services

import (
	"strings"
	"unicode/utf8"

	"legal-summarizer/internal/models"
)

// CountText counts code points and whitespace-delimited words.
func CountText(text string) models.TextStats {
	return models.TextStats{
		Characters: utf8.RuneCountInString(text),
		Words:      len(strings.Fields(text)),
	}
}
