package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleQuiz() *Quiz {
	return &Quiz{
		Title: "Limits Quiz",
		Questions: []Question{
			{
				Question:      "What is the limit of 1/x as x approaches infinity?",
				Options:       []string{"A", "B", "C", "D"},
				CorrectAnswer: 2,
				Explanation:   "It tends to zero.",
				Difficulty:    "easy",
			},
			{
				Question:      "Which rule differentiates a product?",
				Options:       []string{"A", "B", "C", "D"},
				CorrectAnswer: 0,
				Explanation:   "The product rule.",
				Difficulty:    "medium",
			},
			{
				Question:      "What is d/dx of e^x?",
				Options:       []string{"A", "B", "C", "D"},
				CorrectAnswer: 1,
				Explanation:   "e^x is its own derivative.",
				Difficulty:    "hard",
			},
		},
	}
}

func TestScoreAllCorrect(t *testing.T) {
	q := sampleQuiz()
	score := Score(q, map[int]int{0: 2, 1: 0, 2: 1})
	assert.Equal(t, 100.0, score)
}

func TestScoreSingleQuestionQuiz(t *testing.T) {
	q := &Quiz{
		Title: "Mini",
		Questions: []Question{
			{Question: "q", Options: []string{"A", "B", "C", "D"}, CorrectAnswer: 2},
		},
	}
	assert.Equal(t, 100.0, Score(q, map[int]int{0: 2}))
}

func TestScoreRoundsToOneDecimal(t *testing.T) {
	// 1 of 3 correct = 33.333... -> 33.3
	q := sampleQuiz()
	score := Score(q, map[int]int{0: 2, 1: 3, 2: 3})
	assert.Equal(t, 33.3, score)

	// 2 of 3 correct = 66.666... -> 66.7
	score = Score(q, map[int]int{0: 2, 1: 0, 2: 3})
	assert.Equal(t, 66.7, score)
}

func TestScoreUnansweredCountAsWrong(t *testing.T) {
	q := sampleQuiz()
	// Only one question answered; denominator is still 3.
	score := Score(q, map[int]int{0: 2})
	assert.Equal(t, 33.3, score)
}

func TestScoreEmptyQuiz(t *testing.T) {
	assert.Equal(t, 0.0, Score(&Quiz{Title: "Empty"}, map[int]int{}))
	assert.Equal(t, 0.0, Score(nil, map[int]int{}))
}

func TestScoreRange(t *testing.T) {
	q := sampleQuiz()
	for _, answers := range []map[int]int{
		{}, {0: 0}, {0: 2, 1: 0}, {0: 2, 1: 0, 2: 1}, {5: 1},
	} {
		score := Score(q, answers)
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 100.0)
	}
}

func TestDetailedResults(t *testing.T) {
	q := sampleQuiz()
	results := DetailedResults(q, map[int]int{0: 2, 1: 3})

	require.Len(t, results, 3)

	assert.Equal(t, 1, results[0].QuestionNum)
	assert.True(t, results[0].IsCorrect)
	assert.Equal(t, "C", results[0].UserAnswer)
	assert.Equal(t, "C", results[0].CorrectAnswer)

	assert.False(t, results[1].IsCorrect)
	assert.Equal(t, "D", results[1].UserAnswer)
	assert.Equal(t, "A", results[1].CorrectAnswer)

	assert.False(t, results[2].IsCorrect)
	assert.Equal(t, "Not answered", results[2].UserAnswer)
	assert.Equal(t, "hard", results[2].Difficulty)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(sampleQuiz()))

	assert.ErrorIs(t, Validate(nil), ErrInvalidQuiz)
	assert.ErrorIs(t, Validate(&Quiz{Title: "t"}), ErrInvalidQuiz)

	q := sampleQuiz()
	q.Questions[0].Options = []string{"A", "B", "C"}
	assert.ErrorIs(t, Validate(q), ErrInvalidQuiz)

	q = sampleQuiz()
	q.Questions[1].CorrectAnswer = 4
	assert.ErrorIs(t, Validate(q), ErrInvalidQuiz)

	q = sampleQuiz()
	q.Questions[1].CorrectAnswer = -1
	assert.ErrorIs(t, Validate(q), ErrInvalidQuiz)

	q = sampleQuiz()
	q.Questions[2].Difficulty = "impossible"
	assert.ErrorIs(t, Validate(q), ErrInvalidQuiz)
}

func TestValidateDefaultsDifficulty(t *testing.T) {
	q := sampleQuiz()
	q.Questions[0].Difficulty = ""
	require.NoError(t, Validate(q))
	assert.Equal(t, "medium", q.Questions[0].Difficulty)
}

func TestFallbackQuizIsValid(t *testing.T) {
	q := Fallback("Calculus", "Limits and Continuity")
	require.NoError(t, Validate(q))
	assert.Equal(t, "Limits and Continuity Quiz", q.Title)
	require.Len(t, q.Questions, 1)
	assert.Equal(t, 3, q.Questions[0].CorrectAnswer)
}
