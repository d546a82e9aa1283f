package controllers

import (
	"github.com/gofiber/fiber/v2"

	"studytutor/backend/config"
	"studytutor/backend/progress"
	"studytutor/backend/quiz"
	"studytutor/backend/subjects"
	"studytutor/backend/tutor"
	"studytutor/backend/utils"
)

type QuizController struct {
	Cfg     *config.Config
	Engine  *tutor.Engine
	Tracker *progress.Tracker
}

func NewQuizController(cfg *config.Config, engine *tutor.Engine, tracker *progress.Tracker) *QuizController {
	return &QuizController{Cfg: cfg, Engine: engine, Tracker: tracker}
}

// Generate godoc
// @Summary Generate a quiz
// @Description Generates a multiple-choice quiz for a topic via the content provider
// @Tags quiz
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /quiz/generate [post]
func (qc *QuizController) Generate(c *fiber.Ctx) error {
	type GenerateInput struct {
		Subject      string `json:"subject"`
		Topic        string `json:"topic"`
		NumQuestions int    `json:"num_questions"`
	}

	var input GenerateInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Topic == "" || !subjects.Valid(input.Subject, input.Topic) {
		return utils.BadRequest(c, "Unknown subject or topic")
	}
	if input.NumQuestions <= 0 {
		input.NumQuestions = qc.Cfg.QuizQuestions
	}

	// Falls back to a deterministic one-question quiz on provider failure,
	// so this never errors out.
	q := qc.Engine.GenerateQuiz(c.Context(), input.Subject, input.Topic, input.NumQuestions)

	return c.JSON(fiber.Map{
		"subject": input.Subject,
		"topic":   input.Topic,
		"quiz":    q,
	})
}

// Submit godoc
// @Summary Submit quiz answers
// @Description Scores the submitted answers, records the attempt and returns detailed results
// @Tags quiz
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /quiz/submit [post]
func (qc *QuizController) Submit(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	type SubmitInput struct {
		Subject string      `json:"subject"`
		Topic   string      `json:"topic"`
		Quiz    *quiz.Quiz  `json:"quiz"`
		Answers map[int]int `json:"answers"`
	}

	var input SubmitInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Topic == "" || !subjects.Valid(input.Subject, input.Topic) {
		return utils.BadRequest(c, "Unknown subject or topic")
	}
	if err := quiz.Validate(input.Quiz); err != nil {
		return utils.BadRequest(c, err.Error())
	}

	score := quiz.Score(input.Quiz, input.Answers)
	results := quiz.DetailedResults(input.Quiz, input.Answers)

	if err := qc.Tracker.UpdateOnQuiz(userID, input.Subject, input.Topic, score, input.Quiz, input.Answers); err != nil {
		return utils.InternalServerError(c, "Could not update progress")
	}

	feedback := qc.Engine.QuizFeedback(c.Context(), input.Subject, input.Topic, score)

	return c.JSON(fiber.Map{
		"score":     score,
		"results":   results,
		"feedback":  feedback,
		"completed": score >= progress.CompletionThreshold,
	})
}

// History godoc
// @Summary Quiz history
// @Description Returns past attempts most-recent-first, with a performance trend
// @Tags quiz
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security ApiKeyAuth
// @Router /quiz/history [get]
func (qc *QuizController) History(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	subject := c.Query("subject")
	topic := c.Query("topic")
	if !subjects.Valid(subject, topic) {
		return utils.BadRequest(c, "Unknown subject or topic")
	}

	attempts, err := qc.Tracker.Store.QuizHistory(userID, subject, topic)
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	type attemptView struct {
		Topic       string  `json:"topic"`
		Score       float64 `json:"score"`
		AttemptDate string  `json:"attempt_date"`
	}
	history := make([]attemptView, 0, len(attempts))
	for _, a := range attempts {
		history = append(history, attemptView{
			Topic:       a.Topic,
			Score:       a.Score,
			AttemptDate: a.AttemptDate.Format("2006-01-02 15:04:05"),
		})
	}

	return c.JSON(fiber.Map{
		"history": history,
		"trend":   progress.PerformanceTrend(attempts),
	})
}
