package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jmcrae/studytrack/internal/model"
)

// noMistakesText is the fixed sentence used when no attempt qualifies as a
// mistake.
const noMistakesText = "No mistakes found in the provided attempts. All questions were answered correctly!"

// FormatAttempts renders attempt records as the plain-text mistake summary
// fed to the generation prompt. Attempts whose error type is absent or "none"
// are skipped. Missing fields are substituted with fixed placeholders, and
// input order is preserved.
func FormatAttempts(attempts []model.AttemptRecord) string {
	var blocks []string
	for _, a := range attempts {
		if a.ErrorType == "" || a.ErrorType == string(model.ErrorNone) {
			continue
		}
		topic := "Unknown"
		if a.Question != nil && a.Question.Topic != "" {
			topic = a.Question.Topic
		}
		explanation := "No explanation provided"
		if a.Explanation != nil {
			explanation = *a.Explanation
		}
		questionID := "Unknown"
		if a.QuestionID != nil {
			questionID = strconv.FormatInt(*a.QuestionID, 10)
		}
		blocks = append(blocks, fmt.Sprintf("\nTopic - %s\nMistake Type - %s\nExplanation - %s\nQuestion ID - %s\n",
			topic, a.ErrorType, explanation, questionID))
	}
	if len(blocks) == 0 {
		return noMistakesText
	}
	return strings.Join(blocks, "\n")
}
