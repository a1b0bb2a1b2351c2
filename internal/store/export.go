package store

import (
	"fmt"
	"time"

	"github.com/jmcrae/studytrack/internal/model"
)

// ExportAttempts builds the full attempt history with per-topic aggregates.
func (s *Store) ExportAttempts() (*model.AttemptExport, error) {
	questionCount, err := s.QuestionCount()
	if err != nil {
		return nil, fmt.Errorf("count questions: %w", err)
	}

	topics, err := s.ListDistinctTopics()
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}

	questionsPerTopic := make(map[string]int)
	rows, err := s.db.Query(`SELECT topic, COUNT(*) FROM questions GROUP BY topic`)
	if err != nil {
		return nil, fmt.Errorf("count questions per topic: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var topic string
		var n int
		if err := rows.Scan(&topic, &n); err != nil {
			return nil, err
		}
		questionsPerTopic[topic] = n
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	views, err := s.ListAttemptViews()
	if err != nil {
		return nil, fmt.Errorf("list attempts: %w", err)
	}

	// Accumulate attempt and mistake counts per topic.
	type tally struct{ attempts, silly, concept int }
	tallies := make(map[string]*tally)
	for _, t := range topics {
		tallies[t] = &tally{}
	}
	for _, v := range views {
		tl := tallies[v.Question.Topic]
		if tl == nil {
			tl = &tally{}
			tallies[v.Question.Topic] = tl
		}
		tl.attempts++
		if v.ErrorType != nil {
			switch *v.ErrorType {
			case model.ErrorSilly:
				tl.silly++
			case model.ErrorConcept:
				tl.concept++
			}
		}
	}

	summaries := make([]model.TopicSummary, 0, len(topics))
	for _, t := range topics {
		tl := tallies[t]
		summaries = append(summaries, model.TopicSummary{
			Topic:     t,
			Questions: questionsPerTopic[t],
			Attempts:  tl.attempts,
			Silly:     tl.silly,
			Concept:   tl.concept,
		})
	}

	return &model.AttemptExport{
		ExportedAt: time.Now().UTC(),
		Questions:  questionCount,
		Topics:     summaries,
		Attempts:   views,
	}, nil
}
