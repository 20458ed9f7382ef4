package domain

import "strings"

// QueryClassification categorizes an incoming question.
type QueryClassification string

const (
	// ClassificationDataQuery marks questions that need data from the warehouse.
	ClassificationDataQuery QueryClassification = "data_query"
	// ClassificationExplanation marks questions about definitions or business rules.
	ClassificationExplanation QueryClassification = "explanation"
	// ClassificationGeneral marks greetings and general conversation.
	ClassificationGeneral QueryClassification = "general"
)

// ParseClassification validates a raw model response as a classification
// label. The response is lower-cased and trimmed before matching; anything
// that is not exactly one of the three labels is an error.
func ParseClassification(raw string) (QueryClassification, error) {
	label := QueryClassification(strings.ToLower(strings.TrimSpace(raw)))
	switch label {
	case ClassificationDataQuery, ClassificationExplanation, ClassificationGeneral:
		return label, nil
	}
	return "", NewDomainErrorWithCause(ErrCodeClassification,
		"model returned an unrecognized classification label", ErrUnknownClassification)
}
