package model

import "time"

// ErrorType classifies what went wrong in a practice attempt.
type ErrorType string

const (
	// ErrorSilly marks a careless slip on a question the student understood.
	ErrorSilly ErrorType = "silly"
	// ErrorConcept marks a gap in understanding of the underlying concept.
	ErrorConcept ErrorType = "concept"
	// ErrorNone marks a correct attempt recorded for completeness.
	ErrorNone ErrorType = "none"
)

// Valid reports whether the value is one of the recognized error types.
func (e ErrorType) Valid() bool {
	switch e {
	case ErrorSilly, ErrorConcept, ErrorNone:
		return true
	}
	return false
}

// Question represents a practice question. Question content lives in image
// files referenced by name; the backend stores only the references.
type Question struct {
	ID          int64  `json:"question_id"`
	Topic       string `json:"topic"`
	QuestionImg string `json:"question_img"`
	AnswerImg   string `json:"answer_img"`
}

// Attempt represents a stored record of a student's response to a question.
type Attempt struct {
	ID          int64      `json:"id"`
	QuestionID  int64      `json:"question_id"`
	ErrorType   *ErrorType `json:"error_type"`
	Explanation *string    `json:"explanation"`
	Timestamp   time.Time  `json:"timestamp"`
}

// QuestionRef is the subset of question data embedded in attempt listings.
type QuestionRef struct {
	Topic      string `json:"topic"`
	QuestionID int64  `json:"question_id"`
}

// AttemptView combines an attempt with its question for API responses.
// Timestamp is pre-formatted as ISO-8601 UTC with a Z suffix.
type AttemptView struct {
	ID          int64       `json:"id"`
	QuestionID  int64       `json:"question_id"`
	ErrorType   *ErrorType  `json:"error_type"`
	Explanation *string     `json:"explanation"`
	Timestamp   string      `json:"timestamp"`
	Question    QuestionRef `json:"question"`
}

// AttemptInput is the request body for recording an attempt.
type AttemptInput struct {
	QuestionID  *int64  `json:"question_id"`
	ErrorType   *string `json:"error_type"`
	Explanation *string `json:"explanation"`
}

// AttemptRecord is a caller-supplied attempt used for report generation.
// All fields are optional; missing values degrade to formatter defaults.
// Unknown fields (ids, timestamps from earlier listings) are ignored.
type AttemptRecord struct {
	QuestionID  *int64       `json:"question_id"`
	ErrorType   string       `json:"error_type"`
	Explanation *string      `json:"explanation"`
	Question    *QuestionRef `json:"question"`
}

// ReportRequest is the request body for report generation.
type ReportRequest struct {
	Attempts []AttemptRecord `json:"attempts"`
}

// ReportResponse carries the generated or fallback report text.
type ReportResponse struct {
	Report string `json:"report"`
}

// QuestionImport is used for loading questions from JSON.
type QuestionImport struct {
	Topic       string `json:"topic"`
	QuestionImg string `json:"question_img"`
	AnswerImg   string `json:"answer_img"`
}
