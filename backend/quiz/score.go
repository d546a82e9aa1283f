package quiz

import "math"

// Result is the per-question outcome in DetailedResults.
type Result struct {
	QuestionNum   int    `json:"question_num"`
	Question      string `json:"question"`
	UserAnswer    string `json:"user_answer"`
	CorrectAnswer string `json:"correct_answer"`
	IsCorrect     bool   `json:"is_correct"`
	Explanation   string `json:"explanation"`
	Difficulty    string `json:"difficulty"`
}

// Score computes the percentage of correct answers, rounded to one decimal.
// answers maps question index to selected option index; unanswered questions
// count as incorrect. An empty quiz scores 0.
func Score(q *Quiz, answers map[int]int) float64 {
	if q == nil || len(q.Questions) == 0 {
		return 0
	}

	correct := 0
	for i, question := range q.Questions {
		if selected, ok := answers[i]; ok && selected == question.CorrectAnswer {
			correct++
		}
	}

	score := float64(correct) / float64(len(q.Questions)) * 100
	return math.Round(score*10) / 10
}

// DetailedResults reports the outcome of every question in order. Pure
// function of its inputs.
func DetailedResults(q *Quiz, answers map[int]int) []Result {
	if q == nil {
		return nil
	}

	results := make([]Result, 0, len(q.Questions))
	for i, question := range q.Questions {
		userAnswer := "Not answered"
		selected, answered := answers[i]
		if answered && selected >= 0 && selected < len(question.Options) {
			userAnswer = question.Options[selected]
		}

		results = append(results, Result{
			QuestionNum:   i + 1,
			Question:      question.Question,
			UserAnswer:    userAnswer,
			CorrectAnswer: question.Options[question.CorrectAnswer],
			IsCorrect:     answered && selected == question.CorrectAnswer,
			Explanation:   question.Explanation,
			Difficulty:    question.Difficulty,
		})
	}
	return results
}
