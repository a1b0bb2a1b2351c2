package store

import (
	"strings"
	"testing"

	"github.com/jmcrae/studytrack/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(":memory:")
	if err != nil {
		t.Fatalf("newTestStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func insertTestQuestion(t *testing.T, s *Store, topic string) int64 {
	t.Helper()
	id, err := s.InsertQuestion(model.Question{
		Topic:       topic,
		QuestionImg: topic + "_question.png",
		AnswerImg:   topic + "_answer.png",
	})
	if err != nil {
		t.Fatalf("insertTestQuestion: %v", err)
	}
	return id
}

func strPtr(s string) *string { return &s }

func errType(e model.ErrorType) *model.ErrorType { return &e }

func TestQuestionCRUD(t *testing.T) {
	s := newTestStore(t)

	// Empty DB should return zero count.
	count, err := s.QuestionCount()
	if err != nil {
		t.Fatalf("QuestionCount: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected 0 questions, got %d", count)
	}

	// Insert and retrieve.
	id := insertTestQuestion(t, s, "Algebra")
	q, err := s.GetQuestion(id)
	if err != nil {
		t.Fatalf("GetQuestion: %v", err)
	}
	if q == nil {
		t.Fatal("expected question, got nil")
	}
	if q.Topic != "Algebra" {
		t.Errorf("expected topic 'Algebra', got %q", q.Topic)
	}
	if q.QuestionImg != "Algebra_question.png" {
		t.Errorf("unexpected question image %q", q.QuestionImg)
	}

	// Not found.
	q, err = s.GetQuestion(9999)
	if err != nil {
		t.Fatalf("GetQuestion missing: %v", err)
	}
	if q != nil {
		t.Errorf("expected nil for missing question, got %+v", q)
	}

	count, err = s.QuestionCount()
	if err != nil {
		t.Fatalf("QuestionCount: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected count 1, got %d", count)
	}
}

func TestListQuestionsByTopic(t *testing.T) {
	s := newTestStore(t)
	insertTestQuestion(t, s, "Algebra")
	insertTestQuestion(t, s, "Algebra")
	insertTestQuestion(t, s, "Geometry")

	tests := []struct {
		name      string
		topic     string
		wantCount int
	}{
		{"two matches", "Algebra", 2},
		{"one match", "Geometry", 1},
		{"no match", "Calculus", 0},
		{"case sensitive", "algebra", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qs, err := s.ListQuestionsByTopic(tt.topic)
			if err != nil {
				t.Fatalf("ListQuestionsByTopic: %v", err)
			}
			if len(qs) != tt.wantCount {
				t.Errorf("expected %d questions, got %d", tt.wantCount, len(qs))
			}
			for _, q := range qs {
				if q.Topic != tt.topic {
					t.Errorf("expected topic %q, got %q", tt.topic, q.Topic)
				}
			}
		})
	}
}

func TestListDistinctTopics(t *testing.T) {
	s := newTestStore(t)

	// Empty DB.
	topics, err := s.ListDistinctTopics()
	if err != nil {
		t.Fatalf("ListDistinctTopics: %v", err)
	}
	if len(topics) != 0 {
		t.Errorf("expected 0 topics, got %d", len(topics))
	}

	// Repeated topic should still appear once.
	insertTestQuestion(t, s, "Trigonometry")
	insertTestQuestion(t, s, "Trigonometry")
	insertTestQuestion(t, s, "Algebra")
	insertTestQuestion(t, s, "Fractions")
	topics, err = s.ListDistinctTopics()
	if err != nil {
		t.Fatalf("ListDistinctTopics: %v", err)
	}
	if len(topics) != 3 {
		t.Fatalf("expected 3 distinct topics, got %d: %v", len(topics), topics)
	}
	// Should be ordered alphabetically.
	if topics[0] != "Algebra" || topics[1] != "Fractions" || topics[2] != "Trigonometry" {
		t.Errorf("expected [Algebra Fractions Trigonometry], got %v", topics)
	}
}

func TestAttemptLifecycle(t *testing.T) {
	s := newTestStore(t)
	qID := insertTestQuestion(t, s, "Algebra")

	// No attempts yet.
	views, err := s.ListAttemptViews()
	if err != nil {
		t.Fatalf("ListAttemptViews: %v", err)
	}
	if len(views) != 0 {
		t.Fatalf("expected 0 attempts, got %d", len(views))
	}

	// Insert with error type and explanation.
	id, err := s.InsertAttempt(model.Attempt{
		QuestionID:  qID,
		ErrorType:   errType(model.ErrorSilly),
		Explanation: strPtr("sign error"),
	})
	if err != nil {
		t.Fatalf("InsertAttempt: %v", err)
	}
	if id == 0 {
		t.Fatal("expected non-zero attempt ID")
	}

	// Insert with all optional fields absent.
	if _, err := s.InsertAttempt(model.Attempt{QuestionID: qID}); err != nil {
		t.Fatalf("InsertAttempt bare: %v", err)
	}

	views, err = s.ListAttemptViews()
	if err != nil {
		t.Fatalf("ListAttemptViews: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("expected 2 attempts, got %d", len(views))
	}

	first := views[0]
	if first.ID != id {
		t.Errorf("expected first attempt id %d, got %d", id, first.ID)
	}
	if first.ErrorType == nil || *first.ErrorType != model.ErrorSilly {
		t.Errorf("expected silly error type, got %v", first.ErrorType)
	}
	if first.Explanation == nil || *first.Explanation != "sign error" {
		t.Errorf("expected explanation 'sign error', got %v", first.Explanation)
	}
	if first.Question.Topic != "Algebra" {
		t.Errorf("expected joined topic 'Algebra', got %q", first.Question.Topic)
	}
	if first.Question.QuestionID != qID {
		t.Errorf("expected joined question id %d, got %d", qID, first.Question.QuestionID)
	}
	if !strings.HasSuffix(first.Timestamp, "Z") {
		t.Errorf("expected Z-suffixed timestamp, got %q", first.Timestamp)
	}
	if !strings.Contains(first.Timestamp, "T") {
		t.Errorf("expected ISO-8601 timestamp, got %q", first.Timestamp)
	}

	second := views[1]
	if second.ErrorType != nil {
		t.Errorf("expected nil error type, got %v", *second.ErrorType)
	}
	if second.Explanation != nil {
		t.Errorf("expected nil explanation, got %v", *second.Explanation)
	}

	count, err := s.AttemptCount()
	if err != nil {
		t.Fatalf("AttemptCount: %v", err)
	}
	if count != 2 {
		t.Errorf("expected attempt count 2, got %d", count)
	}
}

func TestSeedSampleQuestions(t *testing.T) {
	s := newTestStore(t)

	n, err := s.SeedSampleQuestions()
	if err != nil {
		t.Fatalf("SeedSampleQuestions: %v", err)
	}
	if n != 5 {
		t.Fatalf("expected 5 seeded questions, got %d", n)
	}

	topics, err := s.ListDistinctTopics()
	if err != nil {
		t.Fatalf("ListDistinctTopics: %v", err)
	}
	if len(topics) != 5 {
		t.Errorf("expected 5 topics after seeding, got %d: %v", len(topics), topics)
	}

	// Second call is a no-op.
	n, err = s.SeedSampleQuestions()
	if err != nil {
		t.Fatalf("SeedSampleQuestions second call: %v", err)
	}
	if n != 0 {
		t.Errorf("expected 0 on reseed, got %d", n)
	}
	count, _ := s.QuestionCount()
	if count != 5 {
		t.Errorf("expected 5 questions after reseed, got %d", count)
	}

	// Existing content also suppresses seeding.
	s2 := newTestStore(t)
	insertTestQuestion(t, s2, "Algebra")
	n, err = s2.SeedSampleQuestions()
	if err != nil {
		t.Fatalf("SeedSampleQuestions non-empty: %v", err)
	}
	if n != 0 {
		t.Errorf("expected 0 for non-empty table, got %d", n)
	}
}

func TestImportedFileHash(t *testing.T) {
	s := newTestStore(t)

	// Missing file returns empty string.
	hash, err := s.GetImportedFileHash("/some/path.json")
	if err != nil {
		t.Fatalf("GetImportedFileHash: %v", err)
	}
	if hash != "" {
		t.Errorf("expected empty hash, got %q", hash)
	}

	// Set hash.
	if err := s.SetImportedFileHash("/some/path.json", "abc123"); err != nil {
		t.Fatalf("SetImportedFileHash: %v", err)
	}
	hash, err = s.GetImportedFileHash("/some/path.json")
	if err != nil {
		t.Fatalf("GetImportedFileHash: %v", err)
	}
	if hash != "abc123" {
		t.Errorf("expected 'abc123', got %q", hash)
	}

	// Update existing.
	if err := s.SetImportedFileHash("/some/path.json", "def456"); err != nil {
		t.Fatalf("SetImportedFileHash update: %v", err)
	}
	hash, _ = s.GetImportedFileHash("/some/path.json")
	if hash != "def456" {
		t.Errorf("expected 'def456', got %q", hash)
	}
}

func TestExportAttempts(t *testing.T) {
	s := newTestStore(t)
	algebra := insertTestQuestion(t, s, "Algebra")
	insertTestQuestion(t, s, "Algebra")
	geometry := insertTestQuestion(t, s, "Geometry")

	for _, a := range []model.Attempt{
		{QuestionID: algebra, ErrorType: errType(model.ErrorSilly)},
		{QuestionID: algebra, ErrorType: errType(model.ErrorConcept), Explanation: strPtr("mixed up formula")},
		{QuestionID: algebra, ErrorType: errType(model.ErrorNone)},
		{QuestionID: geometry},
	} {
		if _, err := s.InsertAttempt(a); err != nil {
			t.Fatalf("InsertAttempt: %v", err)
		}
	}

	export, err := s.ExportAttempts()
	if err != nil {
		t.Fatalf("ExportAttempts: %v", err)
	}

	if export.Questions != 3 {
		t.Errorf("expected 3 questions, got %d", export.Questions)
	}
	if len(export.Attempts) != 4 {
		t.Errorf("expected 4 attempts, got %d", len(export.Attempts))
	}
	if export.ExportedAt.IsZero() {
		t.Error("expected exported_at to be set")
	}

	if len(export.Topics) != 2 {
		t.Fatalf("expected 2 topic summaries, got %d", len(export.Topics))
	}
	alg := export.Topics[0]
	if alg.Topic != "Algebra" {
		t.Fatalf("expected Algebra first, got %q", alg.Topic)
	}
	if alg.Questions != 2 || alg.Attempts != 3 || alg.Silly != 1 || alg.Concept != 1 {
		t.Errorf("unexpected Algebra summary: %+v", alg)
	}
	geo := export.Topics[1]
	if geo.Questions != 1 || geo.Attempts != 1 || geo.Silly != 0 || geo.Concept != 0 {
		t.Errorf("unexpected Geometry summary: %+v", geo)
	}
}
