package models

// TextStats is the informational counter shown under the text area.
type TextStats struct {
	Characters int `json:"characters"`
	Words      int `json:"words"`
}

// SummarizeRequest is the payload accepted by the JSON summarize and stats endpoints.
type SummarizeRequest struct {
	Text string `json:"text"`
}

type SummaryResponse struct {
	Summary  string `json:"summary"`
	Filename string `json:"filename"`
}

type ExtractResponse struct {
	Filename string    `json:"filename"`
	Text     string    `json:"text"`
	Stats    TextStats `json:"stats"`
}
