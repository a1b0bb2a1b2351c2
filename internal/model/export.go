package model

import "time"

// AttemptExport is the top-level JSON structure for attempt history export.
type AttemptExport struct {
	ExportedAt time.Time      `json:"exported_at"`
	Questions  int            `json:"questions"`
	Topics     []TopicSummary `json:"topics"`
	Attempts   []AttemptView  `json:"attempts"`
}

// TopicSummary aggregates attempt outcomes for one topic.
type TopicSummary struct {
	Topic     string `json:"topic"`
	Questions int    `json:"questions"`
	Attempts  int    `json:"attempts"`
	Silly     int    `json:"silly"`
	Concept   int    `json:"concept"`
}
