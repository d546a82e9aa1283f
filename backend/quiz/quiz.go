// Package quiz holds the quiz structure contract and the scoring logic.
// Quizzes are produced by the content provider (or the deterministic
// fallback) and must pass Validate before anything scores them.
package quiz

import (
	"errors"
	"fmt"
)

const optionsPerQuestion = 4

// ErrInvalidQuiz is wrapped by every validation failure.
var ErrInvalidQuiz = errors.New("invalid quiz structure")

type Quiz struct {
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}

type Question struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
	Difficulty    string   `json:"difficulty"` // easy, medium, hard
}

// Validate checks the structure contract: at least one question, exactly
// four options each, correct index in range. Difficulty defaults to medium
// when the provider leaves it blank.
func Validate(q *Quiz) error {
	if q == nil {
		return fmt.Errorf("%w: nil quiz", ErrInvalidQuiz)
	}
	if q.Title == "" {
		return fmt.Errorf("%w: missing title", ErrInvalidQuiz)
	}
	if len(q.Questions) == 0 {
		return fmt.Errorf("%w: no questions", ErrInvalidQuiz)
	}

	for i := range q.Questions {
		question := &q.Questions[i]
		if question.Question == "" {
			return fmt.Errorf("%w: question %d has no text", ErrInvalidQuiz, i+1)
		}
		if len(question.Options) != optionsPerQuestion {
			return fmt.Errorf("%w: question %d has %d options, want %d",
				ErrInvalidQuiz, i+1, len(question.Options), optionsPerQuestion)
		}
		if question.CorrectAnswer < 0 || question.CorrectAnswer >= optionsPerQuestion {
			return fmt.Errorf("%w: question %d correct answer %d out of range",
				ErrInvalidQuiz, i+1, question.CorrectAnswer)
		}
		switch question.Difficulty {
		case "easy", "medium", "hard":
		case "":
			question.Difficulty = "medium"
		default:
			return fmt.Errorf("%w: question %d has unknown difficulty %q",
				ErrInvalidQuiz, i+1, question.Difficulty)
		}
	}

	return nil
}

// Fallback returns the deterministic one-question quiz substituted when the
// provider fails or returns a malformed structure.
func Fallback(subject, topic string) *Quiz {
	return &Quiz{
		Title: fmt.Sprintf("%s Quiz", topic),
		Questions: []Question{
			{
				Question: fmt.Sprintf("Which of the following is a key concept in %s?", topic),
				Options: []string{
					"Concept A",
					"Concept B",
					"Concept C",
					"All of the above",
				},
				CorrectAnswer: 3,
				Explanation:   "This is a basic question about key concepts.",
				Difficulty:    "easy",
			},
		},
	}
}
