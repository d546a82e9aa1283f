package tutor

import (
	"context"
	"sync"

	"studytutor/backend/quiz"
)

// MockProvider is a deterministic Provider for tests. Set Quiz/Text/Err to
// control the outcome; every call is recorded in Calls.
type MockProvider struct {
	mu    sync.Mutex
	Quiz  *quiz.Quiz
	Text  string
	Err   error
	Calls []string
}

func (m *MockProvider) record(op string) {
	m.mu.Lock()
	m.Calls = append(m.Calls, op)
	m.mu.Unlock()
}

func (m *MockProvider) GenerateQuiz(_ context.Context, _, _ string, _ int) (*quiz.Quiz, error) {
	m.record("GenerateQuiz")
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Quiz, nil
}

func (m *MockProvider) TutorReply(_ context.Context, _, _, _ string, _ []Message) (string, error) {
	m.record("TutorReply")
	return m.Text, m.Err
}

func (m *MockProvider) QuizFeedback(_ context.Context, _, _ string, _ float64) (string, error) {
	m.record("QuizFeedback")
	return m.Text, m.Err
}

func (m *MockProvider) LearningTips(_ context.Context, _, _ string) (string, error) {
	m.record("LearningTips")
	return m.Text, m.Err
}

func (m *MockProvider) PracticeProblem(_ context.Context, _, _ string) (string, error) {
	m.record("PracticeProblem")
	return m.Text, m.Err
}

func (m *MockProvider) ExplainConcept(_ context.Context, _, _ string) (string, error) {
	m.record("ExplainConcept")
	return m.Text, m.Err
}
