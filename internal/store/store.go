package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/jmcrae/studytrack/internal/model"

	_ "modernc.org/sqlite"
)

type Store struct {
	db *sql.DB
}

func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS questions (
		question_id INTEGER PRIMARY KEY AUTOINCREMENT,
		topic TEXT NOT NULL,
		question_img TEXT NOT NULL,
		answer_img TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS attempts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		question_id INTEGER NOT NULL,
		error_type TEXT,
		explanation TEXT,
		timestamp DATETIME NOT NULL,
		FOREIGN KEY (question_id) REFERENCES questions(question_id)
	);

	CREATE TABLE IF NOT EXISTS app_metadata (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// InsertQuestion stores a question.
func (s *Store) InsertQuestion(q model.Question) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO questions (topic, question_img, answer_img) VALUES (?, ?, ?)`,
		q.Topic, q.QuestionImg, q.AnswerImg,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// GetQuestion returns a question by ID, or nil if it does not exist.
func (s *Store) GetQuestion(id int64) (*model.Question, error) {
	var q model.Question
	err := s.db.QueryRow(
		`SELECT question_id, topic, question_img, answer_img FROM questions WHERE question_id = ?`, id,
	).Scan(&q.ID, &q.Topic, &q.QuestionImg, &q.AnswerImg)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// ListQuestionsByTopic returns all questions for a topic.
func (s *Store) ListQuestionsByTopic(topic string) ([]model.Question, error) {
	rows, err := s.db.Query(
		`SELECT question_id, topic, question_img, answer_img FROM questions WHERE topic = ? ORDER BY question_id`, topic,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var questions []model.Question
	for rows.Next() {
		var q model.Question
		if err := rows.Scan(&q.ID, &q.Topic, &q.QuestionImg, &q.AnswerImg); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

// ListDistinctTopics returns all distinct topics in alphabetical order.
func (s *Store) ListDistinctTopics() ([]string, error) {
	rows, err := s.db.Query(`SELECT DISTINCT topic FROM questions ORDER BY topic`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	topics := []string{}
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		topics = append(topics, t)
	}
	return topics, rows.Err()
}

// QuestionCount returns the number of questions in the database.
func (s *Store) QuestionCount() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM questions`).Scan(&count)
	return count, err
}

// InsertAttempt stores an attempt. The timestamp is set to the current UTC
// time unless already populated.
func (s *Store) InsertAttempt(a model.Attempt) (int64, error) {
	ts := a.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}
	res, err := s.db.Exec(
		`INSERT INTO attempts (question_id, error_type, explanation, timestamp) VALUES (?, ?, ?, ?)`,
		a.QuestionID, a.ErrorType, a.Explanation, ts,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListAttemptViews returns all attempts joined with their question data,
// ordered by insertion. Timestamps are rendered as ISO-8601 UTC with a Z
// suffix.
func (s *Store) ListAttemptViews() ([]model.AttemptView, error) {
	rows, err := s.db.Query(
		`SELECT a.id, a.question_id, a.error_type, a.explanation, a.timestamp, q.topic
		 FROM attempts a
		 JOIN questions q ON a.question_id = q.question_id
		 ORDER BY a.id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	views := []model.AttemptView{}
	for rows.Next() {
		var v model.AttemptView
		var ts time.Time
		if err := rows.Scan(&v.ID, &v.QuestionID, &v.ErrorType, &v.Explanation, &ts, &v.Question.Topic); err != nil {
			return nil, err
		}
		v.Timestamp = ts.UTC().Format(time.RFC3339)
		v.Question.QuestionID = v.QuestionID
		views = append(views, v)
	}
	return views, rows.Err()
}

// AttemptCount returns the number of stored attempts.
func (s *Store) AttemptCount() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM attempts`).Scan(&count)
	return count, err
}
