// Package tutor is the content-provider boundary: everything generated by
// the LLM (quizzes, tutoring replies, feedback) comes through here. The
// Engine guarantees that provider failures never reach users — every call
// site gets a deterministic fallback instead.
package tutor

import (
	"context"
	"fmt"

	"studytutor/backend/quiz"
)

// Message is one tutor-chat exchange entry.
type Message struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// Provider generates educational content. Implementations: Gemini for
// production, Mock for tests.
type Provider interface {
	// GenerateQuiz returns a quiz about the topic. The result is not yet
	// validated; the Engine runs quiz.Validate on it.
	GenerateQuiz(ctx context.Context, subject, topic string, numQuestions int) (*quiz.Quiz, error)

	// TutorReply answers a student question given recent chat history.
	TutorReply(ctx context.Context, subject, topic, question string, history []Message) (string, error)

	// QuizFeedback writes personalized recommendations after a quiz score.
	QuizFeedback(ctx context.Context, subject, topic string, score float64) (string, error)

	// LearningTips returns study tips for a topic.
	LearningTips(ctx context.Context, subject, topic string) (string, error)

	// PracticeProblem returns a practice problem without its solution.
	PracticeProblem(ctx context.Context, subject, topic string) (string, error)

	// ExplainConcept returns a structured explanation of a topic.
	ExplainConcept(ctx context.Context, subject, topic string) (string, error)
}

// ErrProvider wraps any transport, auth or parse failure from a Provider.
type ErrProvider struct {
	Op  string
	Err error
}

func (e *ErrProvider) Error() string {
	return fmt.Sprintf("content provider: %s: %v", e.Op, e.Err)
}

func (e *ErrProvider) Unwrap() error { return e.Err }
