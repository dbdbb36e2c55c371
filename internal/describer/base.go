// Package describer turns cron expressions into English sentences.
package describer

//go:generate mockgen -typed -destination=../mocks/mock_describer.go -package=mocks . Describer

// InvalidExpression is shown in place of a description when the expression cannot be described.
const InvalidExpression = "Invalid cron expression"

// Describer describes cron expressions in a natural language.
type Describer interface {
	// Describe gives a sentence describing expr, or an error if expr is not understood.
	Describe(expr string) (string, error)
}

// Describe calls d.Describe and falls back to [InvalidExpression] on any error.
func Describe(d Describer, expr string) string {
	if d == nil {
		return InvalidExpression
	}

	desc, err := d.Describe(expr)
	if err != nil {
		return InvalidExpression
	}

	return desc
}
