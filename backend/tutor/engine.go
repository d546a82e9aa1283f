package tutor

import (
	"context"
	"log"
	"time"

	"studytutor/backend/quiz"
)

// Engine wraps a Provider with the degradation policy: every provider or
// validation failure is logged and replaced with deterministic fallback
// content. Callers never see a raw provider error.
type Engine struct {
	provider Provider
	logger   *log.Logger
	timeout  time.Duration
}

func NewEngine(provider Provider, logger *log.Logger, timeout time.Duration) *Engine {
	return &Engine{provider: provider, logger: logger, timeout: timeout}
}

func (e *Engine) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if e.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, e.timeout)
}

// GenerateQuiz returns a validated quiz, or the one-question fallback when
// generation fails or the structure violates the contract.
func (e *Engine) GenerateQuiz(ctx context.Context, subject, topic string, numQuestions int) *quiz.Quiz {
	ctx, cancel := e.withTimeout(ctx)
	defer cancel()

	q, err := e.provider.GenerateQuiz(ctx, subject, topic, numQuestions)
	if err != nil {
		e.logger.Printf("quiz generation failed for %s/%s: %v", subject, topic, err)
		return quiz.Fallback(subject, topic)
	}
	if err := quiz.Validate(q); err != nil {
		e.logger.Printf("quiz validation failed for %s/%s: %v", subject, topic, err)
		return quiz.Fallback(subject, topic)
	}
	return q
}

func (e *Engine) TutorReply(ctx context.Context, subject, topic, question string, history []Message) string {
	ctx, cancel := e.withTimeout(ctx)
	defer cancel()

	reply, err := e.provider.TutorReply(ctx, subject, topic, question, history)
	if err != nil || reply == "" {
		if err != nil {
			e.logger.Printf("tutor reply failed for %s/%s: %v", subject, topic, err)
		}
		return "I apologize, but I'm having trouble processing your question right now. Please try again or rephrase your question."
	}
	return reply
}

// QuizFeedback returns provider-written recommendations, or score-banded
// canned feedback when the provider is unavailable.
func (e *Engine) QuizFeedback(ctx context.Context, subject, topic string, score float64) string {
	ctx, cancel := e.withTimeout(ctx)
	defer cancel()

	feedback, err := e.provider.QuizFeedback(ctx, subject, topic, score)
	if err == nil && feedback != "" {
		return feedback
	}
	if err != nil {
		e.logger.Printf("quiz feedback failed for %s/%s: %v", subject, topic, err)
	}

	switch {
	case score >= 80:
		return "Great job! You've demonstrated a solid understanding of this topic. Consider exploring more advanced concepts or helping others learn this material."
	case score >= 60:
		return "Good effort! Review the areas where you had difficulty and try some practice problems to strengthen your understanding."
	default:
		return "Keep studying! Focus on the fundamental concepts and don't hesitate to ask questions. Consider reviewing the material again and taking practice quizzes."
	}
}

func (e *Engine) LearningTips(ctx context.Context, subject, topic string) string {
	ctx, cancel := e.withTimeout(ctx)
	defer cancel()

	tips, err := e.provider.LearningTips(ctx, subject, topic)
	if err != nil || tips == "" {
		if err != nil {
			e.logger.Printf("learning tips failed for %s/%s: %v", subject, topic, err)
		}
		return "Unable to generate learning tips at the moment. Please try again later."
	}
	return "Learning Tips for " + topic + ":\n\n" + tips
}

func (e *Engine) PracticeProblem(ctx context.Context, subject, topic string) string {
	ctx, cancel := e.withTimeout(ctx)
	defer cancel()

	problem, err := e.provider.PracticeProblem(ctx, subject, topic)
	if err != nil || problem == "" {
		if err != nil {
			e.logger.Printf("practice problem failed for %s/%s: %v", subject, topic, err)
		}
		return "Unable to generate a practice problem at the moment. Please try again later."
	}
	return "Practice Problem:\n\n" + problem + "\n\nTry to solve this step by step, and feel free to ask for hints if you get stuck!"
}

func (e *Engine) ExplainConcept(ctx context.Context, subject, topic string) string {
	ctx, cancel := e.withTimeout(ctx)
	defer cancel()

	explanation, err := e.provider.ExplainConcept(ctx, subject, topic)
	if err != nil || explanation == "" {
		if err != nil {
			e.logger.Printf("concept explanation failed for %s/%s: %v", subject, topic, err)
		}
		return "Unable to provide concept explanation at the moment. Please try again later."
	}
	return "Concept Explanation: " + topic + "\n\n" + explanation
}
