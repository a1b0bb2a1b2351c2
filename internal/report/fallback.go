package report

import (
	"fmt"

	"github.com/jmcrae/studytrack/internal/model"
)

const fallbackTemplate = `**Overall Summary:**
Based on your recent practice sessions, you completed %d questions. You made %d silly mistakes and %d concept errors.

**Key Areas for Improvement:**
- Focus on double-checking your work to avoid silly mistakes
- Review fundamental concepts where you had difficulties
- Practice more problems in topics where you made errors

**General Advice:**
• Take your time when working through problems
• Show all working steps to catch errors early
• Review your mistakes to understand what went wrong
• Practice regularly to build confidence

Remember: Every mistake is a learning opportunity. Keep practicing and you'll continue to improve!

*Note: This is a basic report. For detailed AI analysis, please check your AWS Bedrock configuration.*`

// BuildFallback composes the deterministic report used when generation is
// unavailable. Identical inputs yield byte-identical output.
func BuildFallback(attempts []model.AttemptRecord) string {
	var silly, concept int
	for _, a := range attempts {
		switch model.ErrorType(a.ErrorType) {
		case model.ErrorSilly:
			silly++
		case model.ErrorConcept:
			concept++
		}
	}
	return fmt.Sprintf(fallbackTemplate, len(attempts), silly, concept)
}
