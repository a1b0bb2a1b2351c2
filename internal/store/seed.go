package store

import "github.com/jmcrae/studytrack/internal/model"

// sampleQuestions is the starter question set inserted into an empty database
// so the app is usable before any real questions are loaded.
var sampleQuestions = []model.Question{
	{Topic: "Trigonometry", QuestionImg: "sample_trig_question.png", AnswerImg: "sample_trig_answer.png"},
	{Topic: "Algebra", QuestionImg: "sample_algebra_question.png", AnswerImg: "sample_algebra_answer.png"},
	{Topic: "Geometry", QuestionImg: "sample_geometry_question.png", AnswerImg: "sample_geometry_answer.png"},
	{Topic: "Linear graphs", QuestionImg: "sample_linear_question.png", AnswerImg: "sample_linear_answer.png"},
	{Topic: "Fractions", QuestionImg: "sample_fractions_question.png", AnswerImg: "sample_fractions_answer.png"},
}

// SeedSampleQuestions inserts the sample question set if the questions table
// is empty. It returns the number of questions inserted (zero when the table
// already has content).
func (s *Store) SeedSampleQuestions() (int, error) {
	count, err := s.QuestionCount()
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}
	for _, q := range sampleQuestions {
		if _, err := s.InsertQuestion(q); err != nil {
			return 0, err
		}
	}
	return len(sampleQuestions), nil
}
