package model

import "time"

// Report represents the complete analysis of one meeting-notes document
type Report struct {
	Source     string    `json:"source"`          // Path of the analyzed document
	AnalyzedAt time.Time `json:"analyzed_at"`     // When the analysis ran
	Method     string    `json:"method"`          // "pattern" or the NLP provider name
	Model      string    `json:"model,omitempty"` // NLP model name, when an NLP provider was used
	TokensUsed int       `json:"tokens_used,omitempty"`

	Result AnalysisResult `json:"result"`

	Actions   int `json:"actions"`   // Count of action items
	Decisions int `json:"decisions"` // Count of decisions
	Questions int `json:"questions"` // Count of open questions
}

// NewReport builds a report around an analysis result, filling in counts
func NewReport(source, method, model string, result AnalysisResult) *Report {
	counts := result.Counts()
	return &Report{
		Source:     source,
		AnalyzedAt: time.Now().UTC(),
		Method:     method,
		Model:      model,
		Result:     result,
		Actions:    counts[CategoryActionItem],
		Decisions:  counts[CategoryDecision],
		Questions:  counts[CategoryOpenQuestion],
	}
}
