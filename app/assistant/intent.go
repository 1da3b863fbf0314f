package assistant

import "strings"

// Intent is a coarse classification of a free-text user message.
type Intent int

// Possible intents of a user message.
const (
	IntentUnknown Intent = iota
	IntentGreeting
	IntentWantsNews
	IntentInterests
)

// Classifier tells the intent of a free-text user message.
type Classifier interface {
	Classify(message string) Intent
}

// KeywordClassifier classifies messages by keyword containment.
type KeywordClassifier struct{}

// Classify tells the intent of the given message.
func (KeywordClassifier) Classify(message string) Intent {
	msg := strings.ToLower(strings.TrimSpace(message))

	switch {
	case msg == "":
		return IntentUnknown
	case strings.Contains(msg, "hello") || strings.Contains(msg, "hi"):
		return IntentGreeting
	case strings.Contains(msg, "news") || strings.Contains(msg, "yes"):
		return IntentWantsNews
	default:
		return IntentInterests
	}
}
